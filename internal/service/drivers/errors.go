package drivers

import "errors"

var (
	// ErrDriverNotFound is returned when no driver matches the lookup.
	ErrDriverNotFound = errors.New("drivers: driver not found")

	// ErrCodeTaken is returned when the driver code is already in the directory.
	ErrCodeTaken = errors.New("drivers: driver code already used")

	// ErrInvalidInput is returned when the driver fails validation.
	ErrInvalidInput = errors.New("drivers: invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("drivers: internal error")
)
