package cache

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const memoryShardCount = 16

const (
	defaultMaxEntries = 4096
	defaultTTL        = 24 * time.Hour
)

// Memory is the default in-process backend: a sharded LRU with per-entry
// TTL. Expired entries are dropped lazily when read; capacity pressure
// evicts the least recently used entry of the affected shard.
type Memory struct {
	shards     []memoryShard
	ttl        time.Duration
	maxEntries int

	lookups atomic.Uint64
	hits    atomic.Uint64
}

type memoryShard struct {
	mu      sync.Mutex
	max     int
	order   *list.List
	entries map[string]*list.Element
}

type memoryEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

// MemoryStats reports cumulative cache effectiveness counters.
type MemoryStats struct {
	Entries int
	Lookups uint64
	Hits    uint64
}

// NewMemory builds an in-memory cache holding at most maxEntries values,
// each living for ttl unless Set overrides it. Non-positive arguments take
// the defaults (4096 entries, 24h).
func NewMemory(maxEntries int, ttl time.Duration) *Memory {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	if maxEntries < memoryShardCount {
		maxEntries = memoryShardCount
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	perShard := maxEntries / memoryShardCount
	if perShard <= 0 {
		perShard = 1
	}
	shards := make([]memoryShard, memoryShardCount)
	for i := range shards {
		shards[i] = memoryShard{
			max:     perShard,
			order:   list.New(),
			entries: make(map[string]*list.Element),
		}
	}
	return &Memory{
		shards:     shards,
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Get returns a private copy of the stored value so callers can never
// mutate cached state through the returned slice.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.lookups.Add(1)
	shard := m.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	elem, ok := shard.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	entry := elem.Value.(*memoryEntry)
	if time.Now().After(entry.expiresAt) {
		shard.order.Remove(elem)
		delete(shard.entries, key)
		return nil, ErrNotFound
	}
	shard.order.MoveToFront(elem)
	m.hits.Add(1)
	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.ttl
	}
	expiresAt := time.Now().Add(ttl)
	shard := m.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	if elem, ok := shard.entries[key]; ok {
		entry := elem.Value.(*memoryEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		shard.order.MoveToFront(elem)
		return nil
	}
	elem := shard.order.PushFront(&memoryEntry{key: key, value: value, expiresAt: expiresAt})
	shard.entries[key] = elem
	if len(shard.entries) > shard.max {
		if tail := shard.order.Back(); tail != nil {
			shard.order.Remove(tail)
			if evicted, ok := tail.Value.(*memoryEntry); ok {
				delete(shard.entries, evicted.key)
			}
		}
	}
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	shard := m.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	if elem, ok := shard.entries[key]; ok {
		shard.order.Remove(elem)
		delete(shard.entries, key)
	}
	return nil
}

// Contains does not refresh LRU order; probing for presence should not
// keep an otherwise idle entry alive.
func (m *Memory) Contains(ctx context.Context, key string) (bool, error) {
	shard := m.shardFor(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	elem, ok := shard.entries[key]
	if !ok {
		return false, nil
	}
	entry := elem.Value.(*memoryEntry)
	if time.Now().After(entry.expiresAt) {
		shard.order.Remove(elem)
		delete(shard.entries, key)
		return false, nil
	}
	return true, nil
}

// Stats returns entry count and lookup/hit counters for stats display.
func (m *Memory) Stats() MemoryStats {
	total := 0
	for i := range m.shards {
		shard := &m.shards[i]
		shard.mu.Lock()
		total += len(shard.entries)
		shard.mu.Unlock()
	}
	return MemoryStats{
		Entries: total,
		Lookups: m.lookups.Load(),
		Hits:    m.hits.Load(),
	}
}

func (m *Memory) shardFor(key string) *memoryShard {
	hash := uint32(2166136261)
	for i := 0; i < len(key); i++ {
		hash ^= uint32(key[i])
		hash *= 16777619
	}
	return &m.shards[hash%uint32(len(m.shards))]
}
