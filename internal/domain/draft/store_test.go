package draft

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestMemoryStoreExpiry(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Hour)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	if err := s.Save(ctx, &Draft{ID: "d1", OwnerID: "u1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if d, err := s.Get(ctx, "d1"); err != nil || d.OwnerID != "u1" {
		t.Fatalf("expected stored draft, got %v %v", d, err)
	}

	now = now.Add(2 * time.Hour)
	if _, err := s.Get(ctx, "d1"); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected expired draft, got %v", err)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()
	_ = s.Save(ctx, &Draft{ID: "d1", Lines: []Line{{RefID: "a", Quantity: 1}}})

	d, _ := s.Get(ctx, "d1")
	d.Lines[0].Quantity = 5

	again, _ := s.Get(ctx, "d1")
	if again.Lines[0].Quantity != 1 {
		t.Fatal("mutating a loaded draft must not change the store")
	}
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	client := redis.NewClient(opt)
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisStore(client, time.Minute)
	ctx := context.Background()
	start := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)

	if err := s.Save(ctx, &Draft{ID: "test-d1", OwnerID: "u1", StartTime: &start}); err != nil {
		t.Fatalf("save: %v", err)
	}
	d, err := s.Get(ctx, "test-d1")
	if err != nil || d.OwnerID != "u1" || !d.StartTime.Equal(start) {
		t.Fatalf("unexpected draft %#v %v", d, err)
	}
	if ttl := client.TTL(ctx, keyPrefix+"test-d1").Val(); ttl <= 0 || ttl > time.Minute {
		t.Fatalf("expected ttl set, got %v", ttl)
	}
	if err := s.Delete(ctx, "test-d1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "test-d1"); !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
