package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokohub/models"
	"sokohub/storage"
)

// failingAdapter refuses every operation, standing in for broken storage.
type failingAdapter struct{}

func (failingAdapter) Load(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (failingAdapter) Save(string, []byte) error   { return errors.New("disk on fire") }
func (failingAdapter) Delete(string) error         { return errors.New("disk on fire") }
func (failingAdapter) Close() error                { return nil }

func TestPersistenceRoundTrip(t *testing.T) {
	adapter := storage.NewMemoryAdapter()

	first := New(testCatalog(), adapter, Options{})
	require.NoError(t, first.AddToCart(models.CartItem{ServiceID: "svc-a", Quantity: 2}))
	first.ToggleFavorite("svc-b")
	booking, err := first.AddBooking(models.Booking{ServiceID: "svc-a", UserID: "user-001"})
	require.NoError(t, err)

	// A brand-new store over the same adapter picks the state back up.
	second := New(testCatalog(), adapter, Options{})

	cart := second.Cart()
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 200, cart.Total, 1e-9)
	assert.True(t, second.IsFavorite("svc-b"))

	restored, ok := second.BookingByID(booking.ID)
	require.True(t, ok)
	assert.Equal(t, booking.ID, restored.ID)
}

func TestFiltersAreNotPersisted(t *testing.T) {
	adapter := storage.NewMemoryAdapter()

	first := New(testCatalog(), adapter, Options{})
	min := 50.0
	first.SetFilters(models.FiltersUpdate{MinPrice: &min})
	first.SetSearchQuery("cleaning")
	first.SetSelectedCategory("cleaning")
	// Filters alone never reach storage; force a persisted write through a
	// cart mutation so the blob exists.
	require.NoError(t, first.AddToCart(models.CartItem{ServiceID: "svc-a", Quantity: 1}))

	second := New(testCatalog(), adapter, Options{})
	assert.Equal(t, models.Filters{SortBy: models.SortPopular}, second.Filters())
	assert.Empty(t, second.SearchQuery())
	assert.Empty(t, second.SelectedCategory())
}

func TestRehydrateRecomputesStaleTotal(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	blob, err := json.Marshal(persistedState{
		Version: persistVersion,
		Cart: models.Cart{
			Items:    []models.CartItem{{ServiceID: "svc-a", Quantity: 3}},
			Total:    999999, // deliberately wrong
			Currency: "KES",
		},
	})
	require.NoError(t, err)
	require.NoError(t, adapter.Save(PersistKey, blob))

	s := New(testCatalog(), adapter, Options{})
	assert.InDelta(t, 300, s.CartTotal(), 1e-9, "stale persisted total must be recomputed")
}

func TestRehydrateIgnoresCorruptBlob(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	require.NoError(t, adapter.Save(PersistKey, []byte("{not json")))

	s := New(testCatalog(), adapter, Options{})
	assert.Empty(t, s.Cart().Items)
	assert.Empty(t, s.Favorites())
	assert.Empty(t, s.UserBookings(""))
}

func TestRehydrateIgnoresUnknownVersion(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	blob, err := json.Marshal(persistedState{
		Version:   99,
		Favorites: []string{"svc-a"},
	})
	require.NoError(t, err)
	require.NoError(t, adapter.Save(PersistKey, blob))

	s := New(testCatalog(), adapter, Options{})
	assert.Empty(t, s.Favorites())
}

func TestNilAdapterIsMemoryOnly(t *testing.T) {
	s := New(testCatalog(), nil, Options{})
	require.NoError(t, s.AddToCart(models.CartItem{ServiceID: "svc-a", Quantity: 1}))
	assert.InDelta(t, 100, s.CartTotal(), 1e-9)
	assert.False(t, s.Degraded())
}

func TestFailingAdapterDegradesButNeverBlocksMutations(t *testing.T) {
	s := New(testCatalog(), failingAdapter{}, Options{})

	require.NoError(t, s.AddToCart(models.CartItem{ServiceID: "svc-a", Quantity: 2}))
	s.ToggleFavorite("svc-b")
	_, err := s.AddBooking(models.Booking{ServiceID: "svc-a", UserID: "user-001"})
	require.NoError(t, err)

	assert.True(t, s.Degraded())
	assert.InDelta(t, 200, s.CartTotal(), 1e-9)
	assert.True(t, s.IsFavorite("svc-b"))
}

func TestPersistedSubsetShape(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	s := New(testCatalog(), adapter, Options{})
	require.NoError(t, s.AddToCart(models.CartItem{ServiceID: "svc-a", Quantity: 1}))

	blob, err := adapter.Load(PersistKey)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(blob, &raw))
	assert.Contains(t, raw, "version")
	assert.Contains(t, raw, "cart")
	assert.Contains(t, raw, "favorites")
	assert.Contains(t, raw, "bookings")
	// The read-only catalog and the transient filters must never be written.
	assert.NotContains(t, raw, "services")
	assert.NotContains(t, raw, "filters")
}
