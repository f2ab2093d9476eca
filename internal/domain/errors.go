package domain

import "errors"

// Sentinel errors shared by repositories, services and controllers.
var (
	// ErrNotFound is returned when the requested event, form or response does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the caller may not act on the resource (e.g. not the event creator).
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized is returned when an operation requires a resolved identity and none is present.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidInput is returned when a payload fails schema validation.
	ErrInvalidInput = errors.New("invalid input")
)
