package ratelimit

import (
	"context"
	"time"

	"portfolio-backend/internal/kv"
)

const (
	// DefaultLimit admits this many requests per client per window.
	DefaultLimit = 5
	// DefaultWindow is the rolling admission window.
	DefaultWindow = time.Minute

	keyPrefix = "ratelimit:"
)

// Limiter admits or rejects requests per client by counting them in the
// shared key-value store. The windowing is the store's primitive, so
// counters are shared across instances.
type Limiter struct {
	KV     kv.Store
	Limit  int64
	Window time.Duration
}

// New creates a limiter with the default 5-per-minute rule.
func New(store kv.Store) *Limiter {
	return &Limiter{KV: store, Limit: DefaultLimit, Window: DefaultWindow}
}

// Allow reports whether the client may proceed with another request.
func (l *Limiter) Allow(ctx context.Context, clientID string) (bool, error) {
	count, err := l.KV.IncrWindow(ctx, keyPrefix+clientID, l.Window)
	if err != nil {
		return false, err
	}
	return count <= l.Limit, nil
}
