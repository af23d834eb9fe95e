package store

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"sokohub/models"
	"sokohub/storage"
)

// PersistKey is the storage key under which the session state is saved.
const PersistKey = "sokohub-marketplace-state"

// persistVersion guards the envelope layout. Rehydration ignores blobs
// with a different version and falls back to defaults.
const persistVersion = 1

// persistedState is the serialization boundary: exactly the subset of
// session state written to storage. The catalog and the transient filters
// are deliberately absent.
type persistedState struct {
	Version   int              `json:"version"`
	Cart      models.Cart      `json:"cart"`
	Favorites []string         `json:"favorites"`
	Bookings  []models.Booking `json:"bookings"`
}

// selectPersistable extracts the persisted subset of the current state.
// Callers must hold the lock.
func (s *Store) selectPersistable() persistedState {
	return persistedState{
		Version:   persistVersion,
		Cart:      s.cart,
		Favorites: s.favorites,
		Bookings:  s.bookings,
	}
}

// mergeRehydrated applies a persisted snapshot over the default initial
// state. Callers must hold the lock.
func (s *Store) mergeRehydrated(p persistedState) {
	if p.Cart.Items != nil {
		s.cart = p.Cart
		if s.cart.Currency == "" {
			s.cart.Currency = s.currency
		}
		// The cached total is recomputed rather than trusted: the catalog
		// may have changed since the snapshot was written.
		s.cart.Total = s.computeCartTotal(s.cart.Items)
	}
	if len(p.Favorites) > 0 {
		s.favorites = p.Favorites
		s.favSet = make(map[string]struct{}, len(p.Favorites))
		for _, id := range p.Favorites {
			s.favSet[id] = struct{}{}
		}
	}
	if len(p.Bookings) > 0 {
		s.bookings = p.Bookings
	}
}

// rehydrate loads the persisted snapshot at construction time. Missing,
// corrupt or version-mismatched blobs leave the defaults in place.
func (s *Store) rehydrate() {
	if s.adapter == nil {
		return
	}
	data, err := s.adapter.Load(PersistKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("failed to load persisted state, starting fresh", zap.Error(err))
		}
		return
	}
	var p persistedState
	if err := json.Unmarshal(data, &p); err != nil {
		s.logger.Warn("persisted state is corrupt, starting fresh", zap.Error(err))
		return
	}
	if p.Version != persistVersion {
		s.logger.Warn("persisted state has unknown version, starting fresh",
			zap.Int("version", p.Version))
		return
	}
	s.mu.Lock()
	s.mergeRehydrated(p)
	s.mu.Unlock()
}

// persistLocked writes the persisted subset through the adapter. Callers
// must hold the lock. Storage failures degrade the store to memory-only
// operation; they never fail the mutation that triggered the write.
func (s *Store) persistLocked() {
	if s.adapter == nil {
		return
	}
	data, err := json.Marshal(s.selectPersistable())
	if err != nil {
		s.logger.Error("failed to marshal state for persistence", zap.Error(err))
		return
	}
	if err := s.adapter.Save(PersistKey, data); err != nil {
		if !s.degraded {
			s.logger.Warn("storage write failed, continuing memory-only", zap.Error(err))
		}
		s.degraded = true
		return
	}
	s.degraded = false
}
