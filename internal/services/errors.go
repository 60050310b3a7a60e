package services

import "errors"

// Errors shared across services.
var (
	// ErrForbidden is returned when the actor lacks the admin role for a
	// gated mutation. The mutation is guaranteed not to have happened.
	ErrForbidden = errors.New("actor does not have permission for this action")

	// ErrValidation wraps input validation failures.
	ErrValidation = errors.New("validation failed")
)
