package kv

import (
	"context"
	"time"
)

// Store is a thin contract over a remote key-value store. History and rate
// limiting delegate to it; no caching or windowing logic lives in callers.
type Store interface {
	// Get returns the value at key; ok is false when the key is absent or expired.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set writes value at key with the given expiry. A zero ttl means no expiry.
	// Every call resets the key's full TTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// IncrWindow increments the counter at key and returns the new count. The
	// counter expires window after its first increment.
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}
