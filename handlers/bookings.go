package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sokohub/models"
	"sokohub/store"
	"sokohub/utils"
)

// BookingHandler serves the booking lifecycle endpoints.
type BookingHandler struct {
	Store  *store.Store
	Logger *zap.Logger
}

func NewBookingHandler(s *store.Store, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Store: s, Logger: logger}
}

// CreateBookingInput is the checkout payload that turns into a booking.
type CreateBookingInput struct {
	ServiceID       string `json:"serviceId" binding:"required"`
	PackageID       string `json:"packageId,omitempty"`
	UserID          string `json:"userId,omitempty"`
	BookingDate     string `json:"bookingDate" binding:"required"`
	BookingTime     string `json:"bookingTime" binding:"required"`
	Quantity        int    `json:"quantity"`
	Location        string `json:"location,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
	StaffID         string `json:"staffId,omitempty"`
	PaymentMethod   string `json:"paymentMethod,omitempty"`
}

// CreateBooking handles POST /api/bookings. The total price is resolved
// from the catalog using the cart's price rules.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking input", err.Error())
		return
	}

	svc, ok := h.Store.Catalog().ServiceByID(input.ServiceID)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "service not found", input.ServiceID)
		return
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}
	if input.UserID == "" {
		input.UserID = h.Store.UserID()
	}

	duration := svc.Duration
	currency := svc.Currency
	if input.PackageID != "" {
		if pkg, ok := svc.Package(input.PackageID); ok {
			duration = pkg.Duration
			currency = pkg.Currency
		}
	}

	booking, err := h.Store.AddBooking(models.Booking{
		ServiceID:       input.ServiceID,
		PackageID:       input.PackageID,
		ProviderID:      svc.ProviderID,
		UserID:          input.UserID,
		Status:          models.BookingPending,
		BookingDate:     input.BookingDate,
		BookingTime:     input.BookingTime,
		Duration:        duration,
		Quantity:        input.Quantity,
		TotalPrice:      h.Store.ResolvePrice(input.ServiceID, input.PackageID) * float64(input.Quantity),
		Currency:        currency,
		Location:        input.Location,
		SpecialRequests: input.SpecialRequests,
		StaffID:         input.StaffID,
		PaymentMethod:   input.PaymentMethod,
	})
	if err != nil {
		h.Logger.Error("CreateBooking: failed to add booking", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ListBookings handles GET /api/bookings. An optional status query filters
// by lifecycle state; bookings are always scoped to the user.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		userID = h.Store.UserID()
	}

	if statusStr, ok := c.GetQuery("status"); ok {
		status := models.BookingStatus(statusStr)
		if !status.Valid() {
			utils.JSONError(c, http.StatusBadRequest, "unknown booking status", statusStr)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": h.Store.BookingsByStatus(status, userID)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": h.Store.UserBookings(userID)})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	booking, ok := h.Store.BookingByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "booking not found", id)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBooking handles PATCH /api/bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var upd models.BookingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking update", err.Error())
		return
	}

	booking, err := h.Store.UpdateBooking(c.Param("id"), upd)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBooking handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var body struct {
		Reason string `json:"reason"`
	}
	// The body is optional; cancellation without a reason is fine.
	_ = c.ShouldBindJSON(&body)

	id := c.Param("id")
	if err := h.Store.CancelBooking(id, body.Reason); err != nil {
		h.respondBookingError(c, err)
		return
	}
	booking, _ := h.Store.BookingByID(id)
	c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
	case store.IsTransitionError(err):
		utils.JSONError(c, http.StatusConflict, "invalid booking transition", err.Error())
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid booking update", err.Error())
	}
}
