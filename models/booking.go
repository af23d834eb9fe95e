package models

import "time"

// BookingStatus tracks a booking through its lifecycle.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingReady     BookingStatus = "ready"
	BookingActive    BookingStatus = "active"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingReady, BookingActive, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status progression s -> next is allowed.
// The graph is pending -> ready -> active -> completed, with cancellation
// reachable from pending or ready only.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingReady || next == BookingCancelled
	case BookingReady:
		return next == BookingActive || next == BookingCancelled
	case BookingActive:
		return next == BookingCompleted
	}
	return false
}

// PaymentStatus tracks payment state recorded on a booking.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking represents a booking record. Bookings are never physically
// deleted; cancellation is a status transition with an audit timestamp.
type Booking struct {
	ID                 string        `json:"id"`
	ServiceID          string        `json:"serviceId"`
	PackageID          string        `json:"packageId,omitempty"`
	ProviderID         string        `json:"providerId"`
	UserID             string        `json:"userId"`
	Status             BookingStatus `json:"status"`
	BookingDate        string        `json:"bookingDate"` // "YYYY-MM-DD"
	BookingTime        string        `json:"bookingTime"` // "HH:MM"
	Duration           int           `json:"duration"`    // minutes
	Quantity           int           `json:"quantity"`
	TotalPrice         float64       `json:"totalPrice"`
	Currency           string        `json:"currency"`
	Location           string        `json:"location,omitempty"`
	SpecialRequests    string        `json:"specialRequests,omitempty"`
	StaffID            string        `json:"staffId,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
	CancelledAt        *time.Time    `json:"cancelledAt,omitempty"`
	CancellationReason string        `json:"cancellationReason,omitempty"`
	PaymentStatus      PaymentStatus `json:"paymentStatus"`
	PaymentMethod      string        `json:"paymentMethod,omitempty"`
}

// BookingUpdate carries the optional fields of a partial booking update.
// Nil fields are left untouched.
type BookingUpdate struct {
	Status          *BookingStatus `json:"status,omitempty"`
	BookingDate     *string        `json:"bookingDate,omitempty"`
	BookingTime     *string        `json:"bookingTime,omitempty"`
	Duration        *int           `json:"duration,omitempty"`
	Quantity        *int           `json:"quantity,omitempty"`
	Location        *string        `json:"location,omitempty"`
	SpecialRequests *string        `json:"specialRequests,omitempty"`
	StaffID         *string        `json:"staffId,omitempty"`
	PaymentStatus   *PaymentStatus `json:"paymentStatus,omitempty"`
	PaymentMethod   *string        `json:"paymentMethod,omitempty"`
}
