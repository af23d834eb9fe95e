package store

// ToggleFavorite adds the service id to the favorites set if absent and
// removes it if present. Toggling twice restores the original set.
func (s *Store) ToggleFavorite(serviceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.favSet[serviceID]; ok {
		delete(s.favSet, serviceID)
		for i, id := range s.favorites {
			if id == serviceID {
				s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
				break
			}
		}
	} else {
		s.favSet[serviceID] = struct{}{}
		s.favorites = append(s.favorites, serviceID)
	}
	s.persistLocked()
}

// IsFavorite reports whether the service id is in the favorites set.
func (s *Store) IsFavorite(serviceID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.favSet[serviceID]
	return ok
}

// Favorites returns a copy of the favorites set in insertion order.
func (s *Store) Favorites() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.favorites...)
}
