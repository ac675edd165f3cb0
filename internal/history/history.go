package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"portfolio-backend/internal/kv"
)

const (
	// MaxRecords caps the per-client history length.
	MaxRecords = 10
	// TTL is the key expiry, reset in full on every write.
	TTL = 30 * 24 * time.Hour

	keyPrefix = "history:"
)

// Record is the reduced per-generation view kept in history.
type Record struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Template  string    `json:"template"`
	CreatedAt time.Time `json:"createdAt"`
	FileName  string    `json:"fileName"`
	HasImage  bool      `json:"hasImage"`
}

// Store keeps per-client generation history in the key-value store.
type Store struct {
	KV kv.Store
}

// New creates a history store over the given key-value backend.
func New(store kv.Store) *Store {
	return &Store{KV: store}
}

// List returns the client's history, newest first. A missing key is an empty list.
func (s *Store) List(ctx context.Context, clientID string) ([]Record, error) {
	raw, ok, err := s.KV.Get(ctx, keyPrefix+clientID)
	if err != nil {
		return nil, fmt.Errorf("history get: %w", err)
	}
	if !ok {
		return []Record{}, nil
	}
	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		// A corrupt entry is discarded rather than blocking new generations.
		return []Record{}, nil
	}
	return records, nil
}

// Append prepends rec, truncates to MaxRecords and writes the list back with
// a fresh TTL.
func (s *Store) Append(ctx context.Context, clientID string, rec Record) error {
	records, err := s.List(ctx, clientID)
	if err != nil {
		return err
	}

	records = append([]Record{rec}, records...)
	if len(records) > MaxRecords {
		records = records[:MaxRecords]
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("history marshal: %w", err)
	}
	if err := s.KV.Set(ctx, keyPrefix+clientID, string(data), TTL); err != nil {
		return fmt.Errorf("history set: %w", err)
	}
	return nil
}
