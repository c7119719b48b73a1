package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLite is a single-file persistent backend. It suits CLI-style callers
// that want lookups cached across short-lived processes without running a
// cache server.
type SQLite struct {
	db  *sql.DB
	ttl time.Duration
}

// OpenSQLite opens (or creates) the cache database at path and ensures the
// schema exists. A non-positive ttl selects 24h.
func OpenSQLite(path string, ttl time.Duration) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("cache: sqlite path is empty")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cache: ensure sqlite dir: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("cache: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := initCacheSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db, ttl: ttl}, nil
}

func initCacheSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS cache_entries (
    key TEXT PRIMARY KEY,
    value BLOB NOT NULL,
    expires_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS cache_entries_expires_at ON cache_entries(expires_at);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("cache: init sqlite schema: %w", err)
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("cache: sqlite store is not initialized")
	}
	var value []byte
	var expiresAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM cache_entries WHERE key = ?", key,
	).Scan(&value, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("cache: sqlite get: %w", err)
	}
	if time.Now().UnixNano() > expiresAt {
		_, _ = s.db.ExecContext(ctx, "DELETE FROM cache_entries WHERE key = ?", key)
		return nil, ErrNotFound
	}
	return value, nil
}

func (s *SQLite) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if s == nil || s.db == nil {
		return errors.New("cache: sqlite store is not initialized")
	}
	if ttl <= 0 {
		ttl = s.ttl
	}
	expiresAt := time.Now().Add(ttl).UnixNano()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cache_entries (key, value, expires_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("cache: sqlite set: %w", err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	if s == nil || s.db == nil {
		return errors.New("cache: sqlite store is not initialized")
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM cache_entries WHERE key = ?", key); err != nil {
		return fmt.Errorf("cache: sqlite delete: %w", err)
	}
	return nil
}

func (s *SQLite) Contains(ctx context.Context, key string) (bool, error) {
	if s == nil || s.db == nil {
		return false, errors.New("cache: sqlite store is not initialized")
	}
	var expiresAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT expires_at FROM cache_entries WHERE key = ?", key,
	).Scan(&expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("cache: sqlite contains: %w", err)
	}
	return time.Now().UnixNano() <= expiresAt, nil
}

// PurgeExpired removes entries past their expiry and reports how many were
// dropped. Reads already treat expired rows as misses.
func (s *SQLite) PurgeExpired(ctx context.Context) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errors.New("cache: sqlite store is not initialized")
	}
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM cache_entries WHERE expires_at <= ?", time.Now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("cache: sqlite purge: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cache: sqlite purge count: %w", err)
	}
	return removed, nil
}

func (s *SQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
