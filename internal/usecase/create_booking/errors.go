package create_booking

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidTimeRange is returned when the window does not start before it ends.
	ErrInvalidTimeRange = errors.New("create_booking: invalid time range")

	// ErrOutsideBusinessHours is returned when a room window leaves the
	// configured daily hours.
	ErrOutsideBusinessHours = errors.New("create_booking: window outside business hours")

	// ErrAssetNotFound is returned when the booked asset is not in the catalog.
	ErrAssetNotFound = errors.New("create_booking: asset not found")

	// ErrAssetKindMismatch is returned when the asset exists but is not of the
	// kind the booking type requires.
	ErrAssetKindMismatch = errors.New("create_booking: asset kind does not match booking type")

	// ErrDriverNotFound is returned when the referenced driver does not exist.
	ErrDriverNotFound = errors.New("create_booking: driver not found")

	// ErrAssetConflict is returned when the asset is already booked in an
	// overlapping window.
	ErrAssetConflict = errors.New("create_booking: asset already booked")

	// ErrDriverConflict is returned when the driver is already assigned in an
	// overlapping window.
	ErrDriverConflict = errors.New("create_booking: driver already assigned")

	// ErrItemUnavailable is returned when a borrowed item code is unknown or
	// carries no capacity.
	ErrItemUnavailable = errors.New("create_booking: item not available")

	// ErrInsufficientStock is returned when the requested quantity exceeds the
	// stock remaining in the window.
	ErrInsufficientStock = errors.New("create_booking: insufficient item stock")

	// ErrCodeTaken is returned when a caller-supplied booking code is already
	// stored.
	ErrCodeTaken = errors.New("create_booking: booking code already used")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("create_booking: internal error")
)
