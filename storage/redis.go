package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisAdapter persists blobs in redis. Useful when the storefront state
// should survive the device, e.g. kiosk deployments sharing a cache.
type RedisAdapter struct {
	client *redis.Client
}

// NewRedisAdapter connects to redis and verifies the connection.
func NewRedisAdapter(addr, password string, db int) (*RedisAdapter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &RedisAdapter{client: client}, nil
}

func (a *RedisAdapter) Load(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	data, err := a.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (a *RedisAdapter) Save(key string, data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return a.client.Set(ctx, key, data, 0).Err()
}

func (a *RedisAdapter) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return a.client.Del(ctx, key).Err()
}

func (a *RedisAdapter) Close() error {
	return a.client.Close()
}
