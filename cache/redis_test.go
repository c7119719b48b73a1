package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

var _ Cache = (*Redis)(nil)

// Redis tests need a live server; set TEST_REDIS_ADDR (e.g. localhost:6379)
// to run them.
func openTestRedis(t *testing.T) *Redis {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	r, err := ConnectRedis(context.Background(), addr, "", 0, time.Hour)
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	t.Cleanup(func() {
		if err := r.Close(); err != nil {
			t.Fatalf("close redis: %v", err)
		}
	})
	return r
}

func TestRedisRoundTrip(t *testing.T) {
	r := openTestRedis(t)
	ctx := context.Background()
	key := "ipinfo-cache-test-roundtrip"

	if err := r.Delete(ctx, key); err != nil {
		t.Fatalf("cleanup delete failed: %v", err)
	}
	if _, err := r.Get(ctx, key); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := r.Set(ctx, key, []byte("value"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := r.Get(ctx, key)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != "value" {
		t.Fatalf("got %q, want %q", got, "value")
	}
	ok, err := r.Contains(ctx, key)
	if err != nil || !ok {
		t.Fatalf("contains = %v %v, want true", ok, err)
	}
	if err := r.Delete(ctx, key); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if ok, _ := r.Contains(ctx, key); ok {
		t.Fatal("expected Contains false after delete")
	}
}
