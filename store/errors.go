package store

import (
	"errors"
	"fmt"

	"sokohub/models"
)

var (
	// ErrInvalidQuantity is returned when a cart mutation carries a
	// non-positive quantity. The cart is left unchanged.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrBookingNotFound is returned by booking mutations referencing an
	// unknown booking id.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus is returned when a booking carries an unknown status.
	ErrInvalidStatus = errors.New("unknown booking status")
)

// TransitionError reports a booking status change outside the allowed
// lifecycle graph. It is distinct from ErrBookingNotFound so callers can
// map the two differently.
type TransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid booking transition: %s -> %s", e.From, e.To)
}

// IsTransitionError reports whether err is a TransitionError.
func IsTransitionError(err error) bool {
	var te *TransitionError
	return errors.As(err, &te)
}
