package memory

import (
	"context"
	"testing"
	"time"
)

func TestSetGetRoundTrip(t *testing.T) {
	store := New(nil)
	ctx := context.Background()

	if err := store.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, ok, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || val != "v" {
		t.Fatalf("expected v, got %q ok=%v", val, ok)
	}
}

func TestGetMissingKey(t *testing.T) {
	store := New(nil)
	_, ok, err := store.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected missing key")
	}
}

func TestExpiry(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	store := New(func() time.Time { return now })
	ctx := context.Background()

	if err := store.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	now = now.Add(59 * time.Second)
	if _, ok, _ := store.Get(ctx, "k"); !ok {
		t.Fatalf("key should still be live")
	}

	now = now.Add(2 * time.Second)
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Fatalf("key should have expired")
	}
}

func TestSetResetsTTL(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	store := New(func() time.Time { return now })
	ctx := context.Background()

	store.Set(ctx, "k", "v1", time.Minute)
	now = now.Add(50 * time.Second)
	store.Set(ctx, "k", "v2", time.Minute)

	ttl, ok := store.TTL("k")
	if !ok {
		t.Fatalf("expected ttl")
	}
	if ttl != time.Minute {
		t.Fatalf("expected full ttl after rewrite, got %v", ttl)
	}
}

func TestIncrWindow(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	store := New(func() time.Time { return now })
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := store.IncrWindow(ctx, "c", time.Minute)
		if err != nil {
			t.Fatalf("incr: %v", err)
		}
		if got != want {
			t.Fatalf("expected count %d, got %d", want, got)
		}
	}

	now = now.Add(61 * time.Second)
	got, err := store.IncrWindow(ctx, "c", time.Minute)
	if err != nil {
		t.Fatalf("incr: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected fresh window count 1, got %d", got)
	}
}
