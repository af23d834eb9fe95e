package storage

import "sync"

// MemoryAdapter keeps blobs in process memory. It backs tests and the
// degraded mode entered when the configured backend is unavailable.
type MemoryAdapter struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{blobs: make(map[string][]byte)}
}

func (a *MemoryAdapter) Load(key string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	data, ok := a.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (a *MemoryAdapter) Save(key string, data []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.blobs[key] = append([]byte(nil), data...)
	return nil
}

func (a *MemoryAdapter) Delete(key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.blobs, key)
	return nil
}

func (a *MemoryAdapter) Close() error {
	return nil
}
