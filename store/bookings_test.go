package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokohub/models"
)

func addBooking(t *testing.T, s *Store, status models.BookingStatus, userID string) models.Booking {
	t.Helper()
	b, err := s.AddBooking(models.Booking{
		ServiceID:   "svc-a",
		ProviderID:  "prov-1",
		UserID:      userID,
		Status:      status,
		BookingDate: "2026-10-01",
		BookingTime: "10:00",
		Quantity:    1,
		TotalPrice:  100,
		Currency:    "KES",
	})
	require.NoError(t, err)
	return b
}

func TestAddBookingFillsDefaults(t *testing.T) {
	s := newTestStore(t)

	b, err := s.AddBooking(models.Booking{ServiceID: "svc-a", UserID: "user-001"})
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, models.PaymentPending, b.PaymentStatus)
	assert.False(t, b.CreatedAt.IsZero())
	assert.False(t, b.UpdatedAt.IsZero())

	stored, ok := s.BookingByID(b.ID)
	require.True(t, ok)
	assert.Equal(t, b, stored)
}

func TestAddBookingRejectsUnknownStatus(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddBooking(models.Booking{ServiceID: "svc-a", Status: "teleported"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Empty(t, s.UserBookings(""))
}

func TestBookingLifecycleProgression(t *testing.T) {
	s := newTestStore(t)
	b := addBooking(t, s, models.BookingPending, "user-001")

	for _, next := range []models.BookingStatus{models.BookingReady, models.BookingActive, models.BookingCompleted} {
		updated, err := s.UpdateBooking(b.ID, models.BookingUpdate{Status: &next})
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}
}

func TestBookingRejectsInvalidTransitions(t *testing.T) {
	s := newTestStore(t)
	b := addBooking(t, s, models.BookingPending, "user-001")

	// pending cannot jump straight to active or completed, and can never
	// go back once completed.
	for _, next := range []models.BookingStatus{models.BookingActive, models.BookingCompleted} {
		_, err := s.UpdateBooking(b.ID, models.BookingUpdate{Status: &next})
		assert.True(t, IsTransitionError(err), "expected transition error for pending -> %s", next)
	}

	stored, _ := s.BookingByID(b.ID)
	assert.Equal(t, models.BookingPending, stored.Status, "rejected transition must not change status")

	pending := models.BookingPending
	completed := addBooking(t, s, models.BookingPending, "user-001")
	for _, next := range []models.BookingStatus{models.BookingReady, models.BookingActive, models.BookingCompleted} {
		n := next
		_, err := s.UpdateBooking(completed.ID, models.BookingUpdate{Status: &n})
		require.NoError(t, err)
	}
	_, err := s.UpdateBooking(completed.ID, models.BookingUpdate{Status: &pending})
	assert.True(t, IsTransitionError(err), "completed -> pending must be rejected")
}

func TestUpdateBookingRefreshesUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	b := addBooking(t, s, models.BookingPending, "user-001")

	location := "Nairobi CBD"
	updated, err := s.UpdateBooking(b.ID, models.BookingUpdate{Location: &location})
	require.NoError(t, err)
	assert.Equal(t, "Nairobi CBD", updated.Location)
	assert.False(t, updated.UpdatedAt.Before(b.UpdatedAt))
}

func TestUpdateBookingNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.UpdateBooking("no-such", models.BookingUpdate{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancelBookingFromReady(t *testing.T) {
	s := newTestStore(t)
	b := addBooking(t, s, models.BookingReady, "user-001")

	require.NoError(t, s.CancelBooking(b.ID, "changed plans"))

	cancelled, ok := s.BookingByID(b.ID)
	require.True(t, ok)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
	assert.Equal(t, "changed plans", cancelled.CancellationReason)
	require.NotNil(t, cancelled.CancelledAt)
}

func TestCancelBookingIsMonotonic(t *testing.T) {
	s := newTestStore(t)
	b := addBooking(t, s, models.BookingPending, "user-001")

	require.NoError(t, s.CancelBooking(b.ID, "first"))
	first, _ := s.BookingByID(b.ID)
	require.NotNil(t, first.CancelledAt)
	stamp := *first.CancelledAt

	// A second cancellation fails and leaves the audit trail untouched.
	err := s.CancelBooking(b.ID, "second")
	assert.True(t, IsTransitionError(err))

	after, _ := s.BookingByID(b.ID)
	assert.Equal(t, "first", after.CancellationReason)
	require.NotNil(t, after.CancelledAt)
	assert.True(t, stamp.Equal(*after.CancelledAt), "cancelledAt must be set exactly once")

	// No status-changing call succeeds on a cancelled booking.
	for _, next := range []models.BookingStatus{models.BookingPending, models.BookingReady, models.BookingActive, models.BookingCompleted} {
		n := next
		_, err := s.UpdateBooking(b.ID, models.BookingUpdate{Status: &n})
		assert.True(t, IsTransitionError(err), "cancelled -> %s must be rejected", next)
	}
}

func TestCancelBookingFromActiveOrCompletedIsRejected(t *testing.T) {
	s := newTestStore(t)
	b := addBooking(t, s, models.BookingPending, "user-001")
	for _, next := range []models.BookingStatus{models.BookingReady, models.BookingActive} {
		n := next
		_, err := s.UpdateBooking(b.ID, models.BookingUpdate{Status: &n})
		require.NoError(t, err)
	}

	err := s.CancelBooking(b.ID, "too late")
	assert.True(t, IsTransitionError(err))

	stored, _ := s.BookingByID(b.ID)
	assert.Equal(t, models.BookingActive, stored.Status)
	assert.Nil(t, stored.CancelledAt)
}

func TestCancelBookingNotFoundReportsFailure(t *testing.T) {
	s := newTestStore(t)
	assert.ErrorIs(t, s.CancelBooking("no-such", "whatever"), ErrBookingNotFound)
}

func TestBookingsByStatusScopesToUser(t *testing.T) {
	s := newTestStore(t)
	mine := addBooking(t, s, models.BookingPending, "user-001")
	addBooking(t, s, models.BookingPending, "user-002")
	addBooking(t, s, models.BookingReady, "user-001")

	pending := s.BookingsByStatus(models.BookingPending, "user-001")
	require.Len(t, pending, 1)
	assert.Equal(t, mine.ID, pending[0].ID)

	assert.Len(t, s.UserBookings("user-001"), 2)
	assert.Len(t, s.UserBookings("user-002"), 1)
	assert.Empty(t, s.UserBookings("user-003"))
}

func TestUserBookingsDefaultsToSessionUser(t *testing.T) {
	s := newTestStore(t)
	addBooking(t, s, models.BookingPending, "user-001")

	assert.Len(t, s.UserBookings(""), 1)
}

func TestBookingsAreNeverPhysicallyDeleted(t *testing.T) {
	s := newTestStore(t)
	b := addBooking(t, s, models.BookingPending, "user-001")
	require.NoError(t, s.CancelBooking(b.ID, "changed plans"))

	all := s.UserBookings("user-001")
	require.Len(t, all, 1)
	assert.Equal(t, models.BookingCancelled, all[0].Status)
	assert.WithinDuration(t, time.Now().UTC(), *all[0].CancelledAt, 5*time.Second)
}
