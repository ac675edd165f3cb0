package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio-backend/internal/kv"
)

// Store implements kv.Store over a Redis connection.
type Store struct {
	client *redis.Client
}

// New connects to the Redis endpoint described by url (redis:// or rediss://).
func New(ctx context.Context, url string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Store{client: client}, nil
}

// Get returns the value at key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

// Set writes value at key, resetting the full TTL.
func (s *Store) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// IncrWindow increments the counter at key; the expiry is attached on the
// first increment of a window so the counter resets once it elapses.
func (s *Store) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr %s: %w", key, err)
	}
	if count == 1 {
		if err := s.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, fmt.Errorf("redis pexpire %s: %w", key, err)
		}
	}
	return count, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error { return s.client.Close() }

var _ kv.Store = (*Store)(nil)
