package request

import "errors"

var (
	// ErrRequestNotFound is returned when no request matches the lookup.
	ErrRequestNotFound = errors.New("request.repository: request not found")

	// ErrRequestNotPending is returned when a state transition finds the
	// request already decided.
	ErrRequestNotPending = errors.New("request.repository: request is not pending")

	// ErrIDExhausted is returned when generated request codes kept colliding
	// with the unique index. The caller may retry the whole creation.
	ErrIDExhausted = errors.New("request.repository: could not allocate a unique request code")

	// ErrCodeTaken is returned when a caller-supplied request code is already
	// stored.
	ErrCodeTaken = errors.New("request.repository: request code already used")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("request.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("request.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("request.repository: failed to scan row")
)
