package projects

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrCacheMiss is returned by Load when nothing is stored for the user.
var ErrCacheMiss = errors.New("cache miss")

// Cache keeps the last fetched repository list per user in sqlite so the
// project list survives offline starts and API rate limits.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
}

const createCacheTable = `
CREATE TABLE IF NOT EXISTS repo_cache (
	username   TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
)`

// OpenCache opens (creating if needed) the cache database at path.
func OpenCache(path string, ttl time.Duration) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(createCacheTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create cache table: %w", err)
	}
	return &Cache{db: db, ttl: ttl}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

// Store replaces the user's cached list.
func (c *Cache) Store(ctx context.Context, user string, repos []Repo, at time.Time) error {
	payload, err := json.Marshal(repos)
	if err != nil {
		return fmt.Errorf("encode repos: %w", err)
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO repo_cache (username, payload, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		user, string(payload), at.Unix())
	if err != nil {
		return fmt.Errorf("store repos: %w", err)
	}
	return nil
}

// Load returns the user's cached list and when it was fetched.
func (c *Cache) Load(ctx context.Context, user string) ([]Repo, time.Time, error) {
	var (
		payload string
		at      int64
	)
	err := c.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM repo_cache WHERE username = ?`, user).Scan(&payload, &at)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrCacheMiss
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("load repos: %w", err)
	}

	var repos []Repo
	if err := json.Unmarshal([]byte(payload), &repos); err != nil {
		return nil, time.Time{}, fmt.Errorf("decode repos: %w", err)
	}
	return repos, time.Unix(at, 0), nil
}

// Fresh reports whether an entry fetched at was fetched within the TTL.
func (c *Cache) Fresh(at, now time.Time) bool {
	return c.ttl > 0 && now.Sub(at) < c.ttl
}
