// Package stats provides lightweight counters for client activity.
package stats

import "sync/atomic"

// Counters tracks lookup activity. The zero value is ready to use and
// safe for concurrent updates.
type Counters struct {
	requests    atomic.Uint64
	failures    atomic.Uint64
	batches     atomic.Uint64
	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64
	bogons      atomic.Uint64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Requests    uint64
	Failures    uint64
	Batches     uint64
	CacheHits   uint64
	CacheMisses uint64
	Bogons      uint64
}

func (c *Counters) Request() {
	if c == nil {
		return
	}
	c.requests.Add(1)
}

func (c *Counters) Failure() {
	if c == nil {
		return
	}
	c.failures.Add(1)
}

func (c *Counters) Batch() {
	if c == nil {
		return
	}
	c.batches.Add(1)
}

func (c *Counters) CacheHit() {
	if c == nil {
		return
	}
	c.cacheHits.Add(1)
}

func (c *Counters) CacheMiss() {
	if c == nil {
		return
	}
	c.cacheMisses.Add(1)
}

func (c *Counters) Bogon() {
	if c == nil {
		return
	}
	c.bogons.Add(1)
}

// Snapshot copies the current counter values.
func (c *Counters) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	return Snapshot{
		Requests:    c.requests.Load(),
		Failures:    c.failures.Load(),
		Batches:     c.batches.Load(),
		CacheHits:   c.cacheHits.Load(),
		CacheMisses: c.cacheMisses.Load(),
		Bogons:      c.bogons.Load(),
	}
}
