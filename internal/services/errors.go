package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a primary key does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied is returned before any mutation when the actor
	// fails the policy check.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDuplicateTranslation is returned when the target language is
	// already occupied within a translation group.
	ErrDuplicateTranslation = errors.New("a translation in this language already exists")

	// ErrInvalidCredentials is returned on failed login attempts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountInactive is returned when an inactive user tries to log in.
	ErrAccountInactive = errors.New("account is inactive")
)

// ValidationError carries a field-level validation failure to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a field-level validation error.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
