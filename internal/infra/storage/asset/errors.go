package asset

import "errors"

var (
	// ErrAssetNotFound is returned when no asset matches the lookup.
	ErrAssetNotFound = errors.New("asset.repository: asset not found")

	// ErrCodeTaken is returned when the asset code is already in the catalog.
	ErrCodeTaken = errors.New("asset.repository: asset code already used")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("asset.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("asset.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("asset.repository: failed to scan row")
)
