package memory

import (
	"context"
	"sync"
	"time"

	"portfolio-backend/internal/kv"
)

// Store is an in-process kv.Store for dev environments and tests.
type Store struct {
	mu       sync.Mutex
	values   map[string]entry
	counters map[string]*counter
	now      func() time.Time
}

type entry struct {
	value   string
	expires time.Time
}

type counter struct {
	count   int64
	expires time.Time
}

// New creates a memory store. now may be nil; tests inject a fixed clock.
func New(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		values:   make(map[string]entry),
		counters: make(map[string]*counter),
		now:      now,
	}
}

// Get returns the value at key if present and unexpired.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.values[key]
	if !ok {
		return "", false, nil
	}
	if !e.expires.IsZero() && !s.now().Before(e.expires) {
		delete(s.values, key)
		return "", false, nil
	}
	return e.value, true, nil
}

// Set writes value at key, resetting the full TTL.
func (s *Store) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{value: value}
	if ttl > 0 {
		e.expires = s.now().Add(ttl)
	}
	s.values[key] = e
	return nil
}

// IncrWindow increments the counter at key, starting a fresh window when the
// previous one has elapsed.
func (s *Store) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c, ok := s.counters[key]
	if !ok || !now.Before(c.expires) {
		c = &counter{expires: now.Add(window)}
		s.counters[key] = c
	}
	c.count++
	return c.count, nil
}

// TTL reports the remaining expiry for key; tests assert refresh behavior with it.
func (s *Store) TTL(key string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.values[key]
	if !ok || e.expires.IsZero() {
		return 0, false
	}
	return e.expires.Sub(s.now()), true
}

var _ kv.Store = (*Store)(nil)
