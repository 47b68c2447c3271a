package submit_request

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("submit_request: invalid input data")

	// ErrInvalidTimeRange is returned when the window does not start before it ends.
	ErrInvalidTimeRange = errors.New("submit_request: invalid time range")

	// ErrOutsideBusinessHours is returned when a room window leaves the
	// configured daily hours.
	ErrOutsideBusinessHours = errors.New("submit_request: window outside business hours")

	// ErrAssetNotFound is returned when the requested asset is not in the catalog.
	ErrAssetNotFound = errors.New("submit_request: asset not found")

	// ErrAssetKindMismatch is returned when the asset exists but is not of the
	// kind the request type requires.
	ErrAssetKindMismatch = errors.New("submit_request: asset kind does not match request type")

	// ErrDriverNotFound is returned when the referenced driver does not exist.
	ErrDriverNotFound = errors.New("submit_request: driver not found")

	// ErrItemUnavailable is returned when a borrowed item code is unknown.
	ErrItemUnavailable = errors.New("submit_request: item not available")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("submit_request: internal error")
)
