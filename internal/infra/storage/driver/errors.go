package driver

import "errors"

var (
	// ErrDriverNotFound is returned when no driver matches the lookup.
	ErrDriverNotFound = errors.New("driver.repository: driver not found")

	// ErrCodeTaken is returned when the driver code is already used.
	ErrCodeTaken = errors.New("driver.repository: driver code already used")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("driver.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("driver.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("driver.repository: failed to scan row")
)
