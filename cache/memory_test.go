package cache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

var _ Cache = (*Memory)(nil)

func TestMemorySetGet(t *testing.T) {
	m := NewMemory(64, time.Hour)
	ctx := context.Background()

	if _, err := m.Get(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing key, got %v", err)
	}
	if err := m.Set(ctx, "k", []byte("value"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != "value" {
		t.Fatalf("got %q, want %q", got, "value")
	}
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	m := NewMemory(64, time.Hour)
	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("abc"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	first, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	first[0] = 'X'
	second, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if string(second) != "abc" {
		t.Fatalf("cached value mutated through returned slice: %q", second)
	}
}

func TestMemoryTTLExpiry(t *testing.T) {
	m := NewMemory(64, time.Hour)
	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := m.Get(ctx, "k"); err != ErrNotFound {
		t.Fatalf("expected expired entry to miss, got %v", err)
	}
	if ok, err := m.Contains(ctx, "k"); err != nil || ok {
		t.Fatalf("expected Contains false after expiry, got %v %v", ok, err)
	}
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory(64, time.Hour)
	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := m.Get(ctx, "k"); err != ErrNotFound {
		t.Fatalf("expected miss after delete, got %v", err)
	}
	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("deleting absent key should not error: %v", err)
	}
}

// sameShardKeys returns n keys that all hash to the shard of the first
// generated key, so LRU behavior can be exercised deterministically.
func sameShardKeys(m *Memory, n int) []string {
	keys := []string{"key-0"}
	want := m.shardFor("key-0")
	for i := 1; len(keys) < n; i++ {
		k := fmt.Sprintf("key-%d", i)
		if m.shardFor(k) == want {
			keys = append(keys, k)
		}
	}
	return keys
}

func TestMemoryLRUEviction(t *testing.T) {
	// 32 entries across 16 shards leaves room for two entries per shard.
	m := NewMemory(32, time.Hour)
	ctx := context.Background()
	keys := sameShardKeys(m, 3)

	if err := m.Set(ctx, keys[0], []byte("0"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := m.Set(ctx, keys[1], []byte("1"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	// Touch keys[0] so keys[1] becomes the eviction candidate.
	if _, err := m.Get(ctx, keys[0]); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if err := m.Set(ctx, keys[2], []byte("2"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if _, err := m.Get(ctx, keys[0]); err != nil {
		t.Fatalf("recently used key evicted: %v", err)
	}
	if _, err := m.Get(ctx, keys[1]); err != ErrNotFound {
		t.Fatalf("expected LRU key to be evicted, got %v", err)
	}
	if _, err := m.Get(ctx, keys[2]); err != nil {
		t.Fatalf("newest key missing: %v", err)
	}
}

func TestMemoryCapacityBound(t *testing.T) {
	m := NewMemory(16, time.Hour)
	ctx := context.Background()
	for i := 0; i < 200; i++ {
		if err := m.Set(ctx, fmt.Sprintf("key-%d", i), []byte("v"), 0); err != nil {
			t.Fatalf("set failed: %v", err)
		}
	}
	if stats := m.Stats(); stats.Entries > 16 {
		t.Fatalf("cache grew past capacity: %d entries", stats.Entries)
	}
}

func TestMemoryStats(t *testing.T) {
	m := NewMemory(64, time.Hour)
	ctx := context.Background()

	_, _ = m.Get(ctx, "a")
	_ = m.Set(ctx, "a", []byte("v"), 0)
	if _, err := m.Get(ctx, "a"); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	stats := m.Stats()
	if stats.Lookups != 2 {
		t.Fatalf("lookups = %d, want 2", stats.Lookups)
	}
	if stats.Hits != 1 {
		t.Fatalf("hits = %d, want 1", stats.Hits)
	}
	if stats.Entries != 1 {
		t.Fatalf("entries = %d, want 1", stats.Entries)
	}
}
