package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the lookup.
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("bookings: internal error")
)
