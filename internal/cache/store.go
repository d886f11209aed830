// Package cache provides a Redis-backed key-value store with TTL expiration.
// It is used as a read cache in front of the database; callers must treat
// every operation as best effort.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store defines the interface for cache operations
type Store interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Health(ctx context.Context) map[string]string
}

// redisStore implements Store using Redis
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed cache store
func NewRedisStore(addr, password string, db int) Store {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &redisStore{client: client}
}

// Set stores a key-value pair with TTL
func (s *redisStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Get retrieves a value by key
func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, key).Result()
}

// Delete removes a key from the store
func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Health reports the status of the Redis connection
func (s *redisStore) Health(ctx context.Context) map[string]string {
	health := make(map[string]string)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.client.Ping(pingCtx).Err(); err != nil {
		health["status"] = "down"
		health["error"] = err.Error()
		return health
	}

	health["status"] = "up"
	return health
}
