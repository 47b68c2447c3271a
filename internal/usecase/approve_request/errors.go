package approve_request

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("approve_request: invalid input data")

	// ErrRequestNotFound is returned when no request carries the given code.
	ErrRequestNotFound = errors.New("approve_request: request not found")

	// ErrRequestNotPending is returned when the request was already decided.
	ErrRequestNotPending = errors.New("approve_request: request is not pending")

	// ErrAssetNotFound is returned when the requested asset left the catalog
	// after submission.
	ErrAssetNotFound = errors.New("approve_request: asset not found")

	// ErrDriverNotFound is returned when the assigned driver does not exist.
	ErrDriverNotFound = errors.New("approve_request: driver not found")

	// ErrAssetConflict is returned when the asset was booked in an overlapping
	// window since submission.
	ErrAssetConflict = errors.New("approve_request: asset already booked")

	// ErrDriverConflict is returned when the driver was assigned in an
	// overlapping window since submission.
	ErrDriverConflict = errors.New("approve_request: driver already assigned")

	// ErrItemUnavailable is returned when a requested item left the catalog
	// after submission.
	ErrItemUnavailable = errors.New("approve_request: item not available")

	// ErrInsufficientStock is returned when the requested quantity no longer
	// fits the stock remaining in the window.
	ErrInsufficientStock = errors.New("approve_request: insufficient item stock")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("approve_request: internal error")
)
