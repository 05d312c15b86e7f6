// Package store keeps fetched pages in SQLite so repeated scrapes of the
// same URL within a TTL do not hit the upstream site.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned by Lookup when a key is absent or expired.
var ErrNotFound = errors.New("cache entry not found")

// Cache is a SQLite-backed key/value cache with per-entry expiry.
type Cache struct {
	db  *sql.DB
	now func() time.Time
}

// NewCache opens (or creates) the cache database at dsn.
func NewCache(dsn string) (*Cache, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	cache := &Cache{db: db, now: time.Now}
	if err := cache.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return cache, nil
}

// initSchema creates the pages table if it doesn't exist.
func (c *Cache) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pages (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		stored_at INTEGER NOT NULL,
		expires_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_pages_expires_at ON pages(expires_at);
	`

	_, err := c.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the value stored under key. Missing and expired entries report
// false without an error.
func (c *Cache) Get(key string) ([]byte, bool, error) {
	value, err := c.Lookup(key)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Lookup is Get with ErrNotFound for absent or expired keys.
func (c *Cache) Lookup(key string) ([]byte, error) {
	query := "SELECT value FROM pages WHERE key = ? AND expires_at > ?"

	var value []byte
	err := c.db.QueryRow(query, key, c.now().UnixNano()).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}

	return value, nil
}

// Put stores value under key for ttl, replacing any previous entry. A
// non-positive ttl is rejected.
func (c *Cache) Put(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("invalid cache ttl %s: must be positive", ttl)
	}

	now := c.now()
	query := "INSERT OR REPLACE INTO pages (key, value, stored_at, expires_at) VALUES (?, ?, ?, ?)"
	_, err := c.db.Exec(query, key, value, now.UnixNano(), now.Add(ttl).UnixNano())
	if err != nil {
		return fmt.Errorf("failed to store cache entry: %w", err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (c *Cache) Delete(key string) error {
	if _, err := c.db.Exec("DELETE FROM pages WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

// Purge deletes every expired entry and reports how many were removed.
func (c *Cache) Purge() (int64, error) {
	result, err := c.db.Exec("DELETE FROM pages WHERE expires_at <= ?", c.now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged entries: %w", err)
	}
	return n, nil
}
