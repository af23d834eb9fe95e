package registration

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when no wizard session exists for the id.
var ErrSessionNotFound = errors.New("registration session not found")

// ErrAlreadySubmitted is returned when a mutation targets a session that
// has already been submitted.
var ErrAlreadySubmitted = errors.New("registration session already submitted")

// ValidationError reports a rejected step payload. The session is left
// unchanged when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
