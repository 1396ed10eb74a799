package domain

import (
	"errors"
	"fmt"
)

// Expected outcomes of core operations. Callers match on these with
// errors.Is / errors.As and translate them to HTTP status codes; anything
// else is an unexpected internal fault.
var (
	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the caller is authenticated but is not the owner
	// of the entity it tries to mutate.
	ErrForbidden = errors.New("forbidden")

	// ErrDuplicate means the entity is already present in the target
	// collection (movie already in playlist/favorites, email already taken).
	ErrDuplicate = errors.New("duplicate")
)

// ValidationError reports malformed caller input (blank or overlong playlist
// name, missing movie id, short password). Always caller-recoverable.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
