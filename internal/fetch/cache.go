package fetch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"crtracker/internal/logging"
)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS pages (
	url        TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	fetched_at TEXT NOT NULL
);
`

// Cache stores fetched page bodies in a SQLite database so repeated syncs
// skip the network for pages younger than the max age.
type Cache struct {
	db     *sql.DB
	maxAge time.Duration
	logger *slog.Logger
}

// OpenCache opens (creating if necessary) the page cache database under
// dir. A non-positive maxAge means entries never expire.
func OpenCache(dir string, maxAge time.Duration, logger *slog.Logger) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dir, "pages.db"))
	if err != nil {
		return nil, fmt.Errorf("open page cache: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create page cache schema: %w", err)
	}
	return &Cache{
		db:     db,
		maxAge: maxAge,
		logger: logging.NewComponentLogger(logger, "pagecache"),
	}, nil
}

// Get returns the cached body for url if present and fresh.
func (c *Cache) Get(ctx context.Context, url string) (string, bool) {
	var body, fetchedAt string
	row := c.db.QueryRowContext(ctx, "SELECT body, fetched_at FROM pages WHERE url = ?", url)
	if err := row.Scan(&body, &fetchedAt); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			c.logger.Warn("page cache read failed", logging.String(logging.FieldURL, url), logging.Error(err))
		}
		return "", false
	}
	if c.maxAge > 0 {
		at, err := time.Parse(time.RFC3339, fetchedAt)
		if err != nil || time.Since(at) > c.maxAge {
			return "", false
		}
	}
	return body, true
}

// Put stores a page body, replacing any previous entry for the URL.
func (c *Cache) Put(ctx context.Context, url, body string) error {
	_, err := c.db.ExecContext(ctx,
		"INSERT INTO pages (url, body, fetched_at) VALUES (?, ?, ?) "+
			"ON CONFLICT(url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at",
		url, body, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write page cache: %w", err)
	}
	return nil
}

// Prune deletes entries older than the max age. No-op when entries never
// expire.
func (c *Cache) Prune(ctx context.Context) error {
	if c.maxAge <= 0 {
		return nil
	}
	cutoff := time.Now().UTC().Add(-c.maxAge).Format(time.RFC3339)
	result, err := c.db.ExecContext(ctx, "DELETE FROM pages WHERE fetched_at < ?", cutoff)
	if err != nil {
		return fmt.Errorf("prune page cache: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n > 0 {
		c.logger.Debug("pruned stale cache entries", logging.Int("entries", int(n)))
	}
	return nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}
