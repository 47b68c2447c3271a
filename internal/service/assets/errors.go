package assets

import "errors"

var (
	// ErrAssetNotFound is returned when no asset matches the lookup.
	ErrAssetNotFound = errors.New("assets: asset not found")

	// ErrCodeTaken is returned when the asset code is already in the catalog.
	ErrCodeTaken = errors.New("assets: asset code already used")

	// ErrInvalidInput is returned when the asset fails validation.
	ErrInvalidInput = errors.New("assets: invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("assets: internal error")
)
