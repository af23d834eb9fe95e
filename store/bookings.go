package store

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sokohub/models"
)

// AddBooking appends a new booking. A blank id is filled with a generated
// uuid, blank timestamps with the current time, and a blank status with
// "pending". An unknown status is rejected and the list is left unchanged.
func (s *Store) AddBooking(b models.Booking) (models.Booking, error) {
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	if !b.Status.Valid() {
		return models.Booking{}, ErrInvalidStatus
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = models.PaymentPending
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
	s.logger.Debug("booking added",
		zap.String("bookingID", b.ID),
		zap.String("serviceID", b.ServiceID),
		zap.String("status", string(b.Status)))
	s.persistLocked()
	return b, nil
}

// UpdateBooking merges the set fields of upd into the booking and refreshes
// UpdatedAt. A status change must follow the lifecycle graph; an invalid
// transition is rejected with a TransitionError, distinct from
// ErrBookingNotFound.
func (s *Store) UpdateBooking(bookingID string, upd models.BookingUpdate) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findBooking(bookingID)
	if !ok {
		return models.Booking{}, ErrBookingNotFound
	}
	b := &s.bookings[i]

	if upd.Status != nil && *upd.Status != b.Status {
		if !upd.Status.Valid() {
			return models.Booking{}, ErrInvalidStatus
		}
		if !b.Status.CanTransitionTo(*upd.Status) {
			return models.Booking{}, &TransitionError{From: b.Status, To: *upd.Status}
		}
		b.Status = *upd.Status
	}
	if upd.BookingDate != nil {
		b.BookingDate = *upd.BookingDate
	}
	if upd.BookingTime != nil {
		b.BookingTime = *upd.BookingTime
	}
	if upd.Duration != nil {
		b.Duration = *upd.Duration
	}
	if upd.Quantity != nil {
		b.Quantity = *upd.Quantity
	}
	if upd.Location != nil {
		b.Location = *upd.Location
	}
	if upd.SpecialRequests != nil {
		b.SpecialRequests = *upd.SpecialRequests
	}
	if upd.StaffID != nil {
		b.StaffID = *upd.StaffID
	}
	if upd.PaymentStatus != nil {
		b.PaymentStatus = *upd.PaymentStatus
	}
	if upd.PaymentMethod != nil {
		b.PaymentMethod = *upd.PaymentMethod
	}
	b.UpdatedAt = time.Now().UTC()

	s.persistLocked()
	return *b, nil
}

// CancelBooking transitions the booking to "cancelled", stamps CancelledAt
// exactly once and records the optional reason. Cancellation is only
// allowed from "pending" or "ready"; anything else yields a
// TransitionError. An unknown id yields ErrBookingNotFound. The call never
// panics; failure is reported through the returned error.
func (s *Store) CancelBooking(bookingID string, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findBooking(bookingID)
	if !ok {
		return ErrBookingNotFound
	}
	b := &s.bookings[i]

	if !b.Status.CanTransitionTo(models.BookingCancelled) {
		return &TransitionError{From: b.Status, To: models.BookingCancelled}
	}

	now := time.Now().UTC()
	b.Status = models.BookingCancelled
	b.CancelledAt = &now
	b.CancellationReason = reason
	b.UpdatedAt = now

	s.logger.Info("booking cancelled",
		zap.String("bookingID", bookingID),
		zap.String("reason", reason))
	s.persistLocked()
	return nil
}

// BookingByID looks up a booking by id.
func (s *Store) BookingByID(bookingID string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.findBooking(bookingID)
	if !ok {
		return models.Booking{}, false
	}
	return s.bookings[i], true
}

// BookingsByStatus returns the bookings of a user in the given status.
// Bookings are always scoped to the owning user.
func (s *Store) BookingsByStatus(status models.BookingStatus, userID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Booking
	for _, b := range s.bookings {
		if b.Status == status && b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

// UserBookings returns all bookings of a user, unfiltered by status. An
// empty userID defaults to the session user.
func (s *Store) UserBookings(userID string) []models.Booking {
	if userID == "" {
		userID = s.userID
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) findBooking(bookingID string) (int, bool) {
	for i := range s.bookings {
		if s.bookings[i].ID == bookingID {
			return i, true
		}
	}
	return 0, false
}
