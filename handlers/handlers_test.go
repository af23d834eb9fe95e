package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sokohub/catalog"
	"sokohub/handlers"
	"sokohub/models"
	"sokohub/registration"
	"sokohub/routes"
	"sokohub/storage"
	"sokohub/store"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	s := store.New(catalog.Seed(), storage.NewMemoryAdapter(), store.Options{Logger: logger})
	regSvc := &registration.DefaultService{Adapter: storage.NewMemoryAdapter(), Logger: logger}

	bundle := &handlers.HandlerBundle{
		Catalog:      handlers.NewCatalogHandler(s, logger),
		Cart:         handlers.NewCartHandler(s, logger),
		Favorites:    handlers.NewFavoritesHandler(s, logger),
		Booking:      handlers.NewBookingHandler(s, logger),
		Registration: handlers.NewRegistrationHandler(regSvc, logger),
	}

	r := gin.New()
	routes.RegisterRoutes(r, bundle)
	return r, s
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListServicesWithSort(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/catalog/services?sortBy=price-low", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Services []models.Service `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Services)
	for i := 1; i < len(resp.Services); i++ {
		assert.LessOrEqual(t, resp.Services[i-1].BasePrice, resp.Services[i].BasePrice)
	}
}

func TestListServicesRejectsUnknownSort(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/api/catalog/services?sortBy=cheapest", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartAddUpdateRemove(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/cart/items", models.CartItem{
		ServiceID: "home-deep-cleaning",
		Quantity:  2,
	})
	require.Equal(t, http.StatusOK, w.Code)
	cart := decode[models.Cart](t, w)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 9000.0, cart.Total)
	assert.Equal(t, "KES", cart.Currency)

	// Merging the same service bumps the quantity.
	w = do(t, r, http.MethodPost, "/api/cart/items", models.CartItem{
		ServiceID: "home-deep-cleaning",
		Quantity:  1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	cart = decode[models.Cart](t, w)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	w = do(t, r, http.MethodDelete, "/api/cart/items/home-deep-cleaning", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart = decode[models.Cart](t, w)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}

func TestCartRejectsNonPositiveQuantity(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/cart/items", models.CartItem{
		ServiceID: "home-deep-cleaning",
		Quantity:  0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoritesToggleRoundTrip(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/favorites/car-diagnostics/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/favorites/car-diagnostics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var check struct {
		Favorite bool `json:"favorite"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &check))
	assert.True(t, check.Favorite)

	w = do(t, r, http.MethodPost, "/api/favorites/car-diagnostics/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/favorites/car-diagnostics", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &check))
	assert.False(t, check.Favorite)
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/bookings", handlers.CreateBookingInput{
		ServiceID:   "nyama-choma-catering-20",
		PackageID:   "pkg-50",
		BookingDate: "2026-09-12",
		BookingTime: "11:00",
		Quantity:    1,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	booking := decode[models.Booking](t, w)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, 55000.0, booking.TotalPrice)
	assert.Equal(t, "kenyan-delights", booking.ProviderID)

	w = do(t, r, http.MethodPost, "/api/bookings/"+booking.ID+"/cancel", gin.H{"reason": "change of plans"})
	require.Equal(t, http.StatusOK, w.Code)
	cancelled := decode[models.Booking](t, w)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
	assert.Equal(t, "change of plans", cancelled.CancellationReason)
	assert.NotNil(t, cancelled.CancelledAt)

	// Cancelling twice is a conflict, not a repeatable action.
	w = do(t, r, http.MethodPost, "/api/bookings/"+booking.ID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBookingUnknownServiceIsNotFound(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/bookings", handlers.CreateBookingInput{
		ServiceID:   "no-such-service",
		BookingDate: "2026-09-12",
		BookingTime: "11:00",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingCancelUnknownIDIsNotFound(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodPost, "/api/bookings/nope/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBookingsFiltersByStatus(t *testing.T) {
	r, s := newTestRouter(t)

	_, err := s.AddBooking(models.Booking{ServiceID: "car-diagnostics", Status: models.BookingPending})
	require.NoError(t, err)

	w := do(t, r, http.MethodGet, "/api/bookings?status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Bookings []models.Booking `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Bookings, 1)

	w = do(t, r, http.MethodGet, "/api/bookings?status=teleported", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegistrationWizardOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/registration/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	session := decode[models.RegistrationSession](t, w)
	require.NotEmpty(t, session.SessionID)

	w = do(t, r, http.MethodPut, "/api/registration/sessions/"+session.SessionID+"/step1", models.RegistrationStep1{
		Country:      "Kenya",
		AgreeToTerms: true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/registration/sessions/"+session.SessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.RegistrationSession](t, w)
	assert.Equal(t, "Kenya", got.Data.Country)

	// An incomplete wizard cannot be submitted.
	w = do(t, r, http.MethodPost, "/api/registration/sessions/"+session.SessionID+"/submit", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodDelete, "/api/registration/sessions/"+session.SessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/registration/sessions/"+session.SessionID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
