package campsite

import "errors"

var (
	// ErrCampsiteNotFound is returned when no listing matches the given id.
	ErrCampsiteNotFound = errors.New("campsite not found")

	// ErrValidation wraps body validation failures.
	ErrValidation = errors.New("validation failed")
)
