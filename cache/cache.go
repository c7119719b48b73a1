// Package cache provides the pluggable storage used by the ipinfo handlers.
//
// A Cache stores serialized lookup results under versioned keys. The default
// backend is the in-memory LRU in this package; Redis, Pebble, and SQLite
// backends are provided for shared or persistent caching, and callers may
// supply their own implementation.
//
// Backends report a missing key with ErrNotFound. Any other error means the
// backend itself failed; handlers treat those as misses so a broken cache can
// degrade lookups to uncached but never fail them.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key is absent or expired.
var ErrNotFound = errors.New("cache: key not found")

// Cache is the capability the handlers need from a cache backend.
// Implementations must be safe for concurrent use; same-key races are
// last-write-wins.
type Cache interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key. A ttl <= 0 selects the backend's
	// default lifetime.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Contains reports whether key is present and not expired, without
	// touching recency state.
	Contains(ctx context.Context, key string) (bool, error)
}
