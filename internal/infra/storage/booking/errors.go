package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the lookup.
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrIDExhausted is returned when generated booking codes kept colliding
	// with the unique index. The caller may retry the whole creation.
	ErrIDExhausted = errors.New("booking.repository: could not allocate a unique booking code")

	// ErrCodeTaken is returned when a caller-supplied booking code is already
	// stored.
	ErrCodeTaken = errors.New("booking.repository: booking code already used")

	// ErrAssetWindowTaken is returned when the database-level overlap
	// constraint rejects the asset window. It converts a lost check-then-create
	// race into a conflict instead of a silent double booking.
	ErrAssetWindowTaken = errors.New("booking.repository: asset already booked in an overlapping window")

	// ErrDriverWindowTaken is the driver counterpart of ErrAssetWindowTaken.
	ErrDriverWindowTaken = errors.New("booking.repository: driver already assigned in an overlapping window")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
