package cache

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/bloom"
)

const (
	pebbleFormatVersion = 1

	pebbleEntryPrefix    = "e|"
	pebbleMetaVersionKey = "meta|version"

	pebbleValueHeaderSize = 9
)

const (
	defaultPebbleCacheBytes   = int64(16 << 20)
	defaultPebbleBloomBits    = 10
	defaultPebbleMemTableSize = uint64(8 << 20)
)

var errInvalidPebbleValue = errors.New("cache: invalid pebble value encoding")

// PebbleOptions tunes the on-disk store. Zero fields take defaults sized
// for a lookup cache, not a primary database.
type PebbleOptions struct {
	CacheSizeBytes        int64
	BloomFilterBitsPerKey int
	MemTableSizeBytes     uint64

	// DefaultTTL applies when Set is called with ttl <= 0.
	DefaultTTL time.Duration
}

// Pebble is a persistent backend over a Pebble key/value store. Values
// carry their own expiry; expired entries read as misses and are deleted
// in place. A format version key guards the keyspace: opening a store
// written by an incompatible release drops the cached entries rather than
// serving them.
type Pebble struct {
	db         *pebble.DB
	blockCache *pebble.Cache
	ttl        time.Duration
}

func sanitizePebbleOptions(opts PebbleOptions) PebbleOptions {
	if opts.CacheSizeBytes <= 0 {
		opts.CacheSizeBytes = defaultPebbleCacheBytes
	}
	if opts.BloomFilterBitsPerKey <= 0 {
		opts.BloomFilterBitsPerKey = defaultPebbleBloomBits
	}
	if opts.MemTableSizeBytes <= 0 {
		opts.MemTableSizeBytes = defaultPebbleMemTableSize
	}
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = defaultTTL
	}
	return opts
}

// OpenPebble opens or creates the cache database at path.
func OpenPebble(path string, opts PebbleOptions) (*Pebble, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("cache: pebble path is empty")
	}
	opts = sanitizePebbleOptions(opts)

	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("cache: ensure pebble directory: %w", err)
	}

	filter := bloom.FilterPolicy(opts.BloomFilterBitsPerKey)
	level := pebble.LevelOptions{
		FilterPolicy: filter,
		FilterType:   pebble.TableFilter,
	}
	pebbleOpts := &pebble.Options{
		Cache:        pebble.NewCache(opts.CacheSizeBytes),
		MemTableSize: opts.MemTableSizeBytes,
		Levels:       make([]pebble.LevelOptions, 7),
	}
	for i := range pebbleOpts.Levels {
		pebbleOpts.Levels[i] = level
	}

	db, err := pebble.Open(path, pebbleOpts)
	if err != nil {
		pebbleOpts.Cache.Unref()
		return nil, fmt.Errorf("cache: open pebble: %w", err)
	}

	p := &Pebble{
		db:         db,
		blockCache: pebbleOpts.Cache,
		ttl:        opts.DefaultTTL,
	}
	if err := p.checkFormatVersion(); err != nil {
		_ = db.Close()
		pebbleOpts.Cache.Unref()
		return nil, err
	}
	return p, nil
}

// checkFormatVersion wipes the entry keyspace when the on-disk format does
// not match this release. Cache contents are reconstructible, so dropping
// them beats decoding them wrong.
func (p *Pebble) checkFormatVersion() error {
	value, closer, err := p.db.Get([]byte(pebbleMetaVersionKey))
	if err == nil {
		stored := -1
		if len(value) == 8 {
			stored = int(binary.BigEndian.Uint64(value))
		}
		closer.Close()
		if stored == pebbleFormatVersion {
			return nil
		}
		lower := []byte(pebbleEntryPrefix)
		upper := pebblePrefixUpperBound(lower)
		if err := p.db.DeleteRange(lower, upper, pebble.Sync); err != nil {
			return fmt.Errorf("cache: clear stale pebble entries: %w", err)
		}
	} else if !errors.Is(err, pebble.ErrNotFound) {
		return fmt.Errorf("cache: read pebble version: %w", err)
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(pebbleFormatVersion))
	if err := p.db.Set([]byte(pebbleMetaVersionKey), buf, pebble.Sync); err != nil {
		return fmt.Errorf("cache: write pebble version: %w", err)
	}
	return nil
}

func (p *Pebble) Get(ctx context.Context, key string) ([]byte, error) {
	if p == nil || p.db == nil {
		return nil, errors.New("cache: pebble store is not initialized")
	}
	raw, closer, err := p.db.Get(pebbleEntryKey(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("cache: pebble get: %w", err)
	}
	value, expiresAt, err := decodePebbleValue(raw)
	closer.Close()
	if err != nil {
		return nil, err
	}
	if time.Now().After(expiresAt) {
		_ = p.db.Delete(pebbleEntryKey(key), pebble.NoSync)
		return nil, ErrNotFound
	}
	return value, nil
}

// Set writes without fsync; losing recent cache entries on a crash only
// costs refetches.
func (p *Pebble) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if p == nil || p.db == nil {
		return errors.New("cache: pebble store is not initialized")
	}
	if ttl <= 0 {
		ttl = p.ttl
	}
	encoded := encodePebbleValue(value, time.Now().Add(ttl))
	if err := p.db.Set(pebbleEntryKey(key), encoded, pebble.NoSync); err != nil {
		return fmt.Errorf("cache: pebble set: %w", err)
	}
	return nil
}

func (p *Pebble) Delete(ctx context.Context, key string) error {
	if p == nil || p.db == nil {
		return errors.New("cache: pebble store is not initialized")
	}
	if err := p.db.Delete(pebbleEntryKey(key), pebble.NoSync); err != nil {
		return fmt.Errorf("cache: pebble delete: %w", err)
	}
	return nil
}

func (p *Pebble) Contains(ctx context.Context, key string) (bool, error) {
	if p == nil || p.db == nil {
		return false, errors.New("cache: pebble store is not initialized")
	}
	raw, closer, err := p.db.Get(pebbleEntryKey(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("cache: pebble contains: %w", err)
	}
	_, expiresAt, err := decodePebbleValue(raw)
	closer.Close()
	if err != nil {
		return false, err
	}
	return !time.Now().After(expiresAt), nil
}

// PurgeExpired scans the entry keyspace and removes entries past their
// expiry, returning the number removed. Intended for periodic maintenance;
// reads already skip expired entries without it.
func (p *Pebble) PurgeExpired(ctx context.Context) (int, error) {
	if p == nil || p.db == nil {
		return 0, errors.New("cache: pebble store is not initialized")
	}
	lower := []byte(pebbleEntryPrefix)
	iter, err := p.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: pebblePrefixUpperBound(lower),
	})
	if err != nil {
		return 0, fmt.Errorf("cache: pebble purge iterator: %w", err)
	}
	defer iter.Close()

	batch := p.db.NewBatch()
	defer batch.Close()

	now := time.Now()
	removed := 0
	for iter.First(); iter.Valid(); iter.Next() {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		_, expiresAt, err := decodePebbleValue(iter.Value())
		if err != nil || now.After(expiresAt) {
			key := append([]byte(nil), iter.Key()...)
			if err := batch.Delete(key, nil); err != nil {
				return removed, fmt.Errorf("cache: pebble purge delete: %w", err)
			}
			removed++
		}
	}
	if err := iter.Error(); err != nil {
		return removed, fmt.Errorf("cache: pebble purge iterate: %w", err)
	}
	if removed > 0 {
		if err := batch.Commit(pebble.Sync); err != nil {
			return removed, fmt.Errorf("cache: pebble purge commit: %w", err)
		}
	}
	return removed, nil
}

func (p *Pebble) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	if p.blockCache != nil {
		p.blockCache.Unref()
		p.blockCache = nil
	}
	return err
}

func pebbleEntryKey(key string) []byte {
	return append([]byte(pebbleEntryPrefix), key...)
}

// Value layout: 1 version byte, 8 bytes big-endian expiry unix nanos,
// then the payload.
func encodePebbleValue(value []byte, expiresAt time.Time) []byte {
	buf := make([]byte, pebbleValueHeaderSize+len(value))
	buf[0] = pebbleFormatVersion
	binary.BigEndian.PutUint64(buf[1:], uint64(expiresAt.UnixNano()))
	copy(buf[pebbleValueHeaderSize:], value)
	return buf
}

func decodePebbleValue(raw []byte) ([]byte, time.Time, error) {
	if len(raw) < pebbleValueHeaderSize || raw[0] != pebbleFormatVersion {
		return nil, time.Time{}, errInvalidPebbleValue
	}
	expiresAt := time.Unix(0, int64(binary.BigEndian.Uint64(raw[1:])))
	value := make([]byte, len(raw)-pebbleValueHeaderSize)
	copy(value, raw[pebbleValueHeaderSize:])
	return value, expiresAt, nil
}

func pebblePrefixUpperBound(prefix []byte) []byte {
	upper := make([]byte, len(prefix))
	copy(upper, prefix)
	for i := len(upper) - 1; i >= 0; i-- {
		if upper[i] != 0xFF {
			upper[i]++
			return upper[:i+1]
		}
	}
	return nil
}
