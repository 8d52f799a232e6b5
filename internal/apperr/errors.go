// Package apperr defines the sentinel errors shared by the service and
// HTTP layers. Handlers match them with errors.Is to pick a status code.
package apperr

import "errors"

var (
	// ErrInvalidArgument signals malformed or missing input detected
	// before any store access.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound signals that a mutating operation required an existing
	// user and none matched.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail signals that a write would violate the unique
	// email invariant.
	ErrDuplicateEmail = errors.New("email already in use")
)
