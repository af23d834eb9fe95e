package storage

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

var stateBucket = []byte("state")

// BoltAdapter persists blobs in a single-file bbolt database on the local
// device. This is the default backend.
type BoltAdapter struct {
	db *bolt.DB
}

// NewBoltAdapter opens (or creates) the database file at path.
func NewBoltAdapter(path string) (*BoltAdapter, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database at %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stateBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create state bucket: %w", err)
	}
	return &BoltAdapter{db: db}, nil
}

func (a *BoltAdapter) Load(key string) ([]byte, error) {
	var data []byte
	err := a.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(stateBucket).Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// The slice is only valid inside the transaction.
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (a *BoltAdapter) Save(key string, data []byte) error {
	return a.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Put([]byte(key), data)
	})
}

func (a *BoltAdapter) Delete(key string) error {
	return a.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Delete([]byte(key))
	})
}

func (a *BoltAdapter) Close() error {
	return a.db.Close()
}
