// Package store implements the storefront session state: cart, favorites,
// bookings and the transient query filters, backed by an injected read-only
// catalog and an optional persistence adapter. All operations are
// synchronous; a mutex makes them atomic with respect to each other.
package store

import (
	"sync"

	"go.uber.org/zap"

	"sokohub/catalog"
	"sokohub/models"
	"sokohub/storage"
)

// Options configures a Store.
type Options struct {
	// Currency is the cart's currency code. Defaults to "KES".
	Currency string
	// UserID scopes favorites and bookings to the active session user.
	// Defaults to "user-001".
	UserID string
	// Logger defaults to zap.NewNop().
	Logger *zap.Logger
}

// Store owns the cart, favorites, bookings and filters of the active user
// session. The catalog is read-only reference data; the store never
// mutates it. State in the persisted subset (cart, favorites, bookings) is
// written through the adapter after every mutation and rehydrated at
// construction.
type Store struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	adapter storage.Adapter
	logger  *zap.Logger

	userID   string
	currency string

	cart models.Cart
	// favorites keeps insertion order for persistence; favSet backs the
	// O(1) membership check.
	favorites []string
	favSet    map[string]struct{}
	bookings  []models.Booking

	filters          models.Filters
	searchQuery      string
	selectedCategory string
	selectedProvider string

	// degraded is set when a storage write fails; the store then operates
	// memory-only until a later write succeeds.
	degraded bool
}

// New constructs a store over the given catalog, rehydrating any persisted
// state through the adapter. A nil adapter yields a memory-only store.
// Missing, corrupt or unreadable persisted state falls back to empty
// defaults; construction never fails because of storage.
func New(cat *catalog.Catalog, adapter storage.Adapter, opts Options) *Store {
	if opts.Currency == "" {
		opts.Currency = "KES"
	}
	if opts.UserID == "" {
		opts.UserID = "user-001"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Store{
		catalog:  cat,
		adapter:  adapter,
		logger:   opts.Logger,
		userID:   opts.UserID,
		currency: opts.Currency,
		cart:     models.Cart{Items: []models.CartItem{}, Currency: opts.Currency},
		favSet:   make(map[string]struct{}),
		filters:  models.Filters{SortBy: models.SortPopular},
	}
	s.rehydrate()
	return s
}

// Catalog exposes the injected read-only catalog.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}

// UserID returns the session user id.
func (s *Store) UserID() string {
	return s.userID
}

// Degraded reports whether the store has fallen back to memory-only
// operation after a storage failure.
func (s *Store) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// SetFilters merges the set fields of upd into the current filters.
func (s *Store) SetFilters(upd models.FiltersUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if upd.CategoryID != nil {
		s.filters.CategoryID = *upd.CategoryID
	}
	if upd.ProviderID != nil {
		s.filters.ProviderID = *upd.ProviderID
	}
	if upd.MinPrice != nil {
		s.filters.MinPrice = upd.MinPrice
	}
	if upd.MaxPrice != nil {
		s.filters.MaxPrice = upd.MaxPrice
	}
	if upd.Rating != nil {
		s.filters.Rating = upd.Rating
	}
	if upd.Verified != nil {
		s.filters.Verified = upd.Verified
	}
	if upd.SortBy != nil {
		s.filters.SortBy = *upd.SortBy
	}
}

// ResetFilters restores the default filters and clears the search text and
// category/provider selections.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = models.Filters{SortBy: models.SortPopular}
	s.searchQuery = ""
	s.selectedCategory = ""
	s.selectedProvider = ""
}

// SetSearchQuery sets the free-text search string.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

// SetSelectedCategory records the category selection and mirrors it into
// the filters. An empty id clears the selection.
func (s *Store) SetSelectedCategory(categoryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = categoryID
	s.filters.CategoryID = categoryID
}

// SetSelectedProvider records the provider selection and mirrors it into
// the filters. An empty id clears the selection.
func (s *Store) SetSelectedProvider(providerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedProvider = providerID
	s.filters.ProviderID = providerID
}

// SetSortBy sets the sort mode.
func (s *Store) SetSortBy(sortBy models.SortOption) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SortBy = sortBy
}

// Filters returns the current query descriptor.
func (s *Store) Filters() models.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SearchQuery returns the current free-text search string.
func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// SelectedCategory returns the current category selection, if any.
func (s *Store) SelectedCategory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedCategory
}

// SelectedProvider returns the current provider selection, if any.
func (s *Store) SelectedProvider() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedProvider
}

// FilteredServices answers the catalog query described by the current
// filters and search text.
func (s *Store) FilteredServices() []models.Service {
	s.mu.RLock()
	filters := s.filters
	query := s.searchQuery
	s.mu.RUnlock()
	return s.catalog.Query(filters, query)
}
