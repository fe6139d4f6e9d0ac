package domain

import "errors"

var (
	// ErrValidation marks a request that can never succeed as given.
	ErrValidation = errors.New("validation error")
	// ErrNotFound covers both absent records and records not visible to the caller.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the review gate denies access.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict marks a state transition that is no longer applicable.
	ErrConflict = errors.New("conflict")
)
