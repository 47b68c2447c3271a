package requests

import "errors"

var (
	// ErrRequestNotFound is returned when no request matches the lookup.
	ErrRequestNotFound = errors.New("requests: request not found")

	// ErrRequestNotPending is returned when a transition finds the request
	// already decided.
	ErrRequestNotPending = errors.New("requests: request is not pending")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("requests: internal error")
)
