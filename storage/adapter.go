// Package storage provides the keyed-blob persistence adapters used by the
// state store and the registration wizard. An adapter stores opaque JSON
// blobs under string keys; the default backend is a bbolt file on the local
// device, with redis and in-memory alternatives.
package storage

import "errors"

// ErrNotFound is returned by Load when no blob exists under the key.
var ErrNotFound = errors.New("storage: key not found")

// Adapter is a minimal keyed-blob store. Implementations must tolerate
// concurrent calls; callers treat every failure as recoverable and degrade
// to memory-only operation.
type Adapter interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Delete(key string) error
	Close() error
}
