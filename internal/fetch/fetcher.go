package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"crtracker/internal/config"
	"crtracker/internal/logging"
)

// ErrNotFound reports that a page returned HTTP 404, which for weekly
// schedules usually means the URL variant is wrong or the week was never
// posted.
var ErrNotFound = errors.New("page not found")

// Fetcher retrieves pages with a shared User-Agent, a per-request timeout,
// and a polite delay between live requests. A nil cache disables caching.
type Fetcher struct {
	client    *http.Client
	userAgent string
	delay     time.Duration
	cache     *Cache
	logger    *slog.Logger

	lastRequest time.Time
}

// New builds a fetcher from the fetch configuration.
func New(cfg config.Fetch, cache *Cache, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		userAgent: cfg.UserAgent,
		delay:     time.Duration(cfg.RequestDelayMS) * time.Millisecond,
		cache:     cache,
		logger:    logging.NewComponentLogger(logger, "fetch"),
	}
}

// Page returns the body of url, from cache when fresh.
func (f *Fetcher) Page(ctx context.Context, url string) (string, error) {
	if f.cache != nil {
		if body, ok := f.cache.Get(ctx, url); ok {
			f.logger.Debug("cache hit", logging.String(logging.FieldURL, url))
			return body, nil
		}
	}

	if err := f.throttle(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", ErrNotFound, url)
	default:
		return "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	body := string(data)

	if f.cache != nil {
		if err := f.cache.Put(ctx, url, body); err != nil {
			f.logger.Warn("page cache write failed", logging.String(logging.FieldURL, url), logging.Error(err))
		}
	}
	return body, nil
}

// FirstAvailable tries each URL variant in order and returns the first
// body found along with the variant that served it. Variants that 404
// are skipped; any other failure aborts. When every variant is missing
// the last ErrNotFound is returned.
func (f *Fetcher) FirstAvailable(ctx context.Context, variants []Variant) (string, Variant, error) {
	var err error
	for _, v := range variants {
		var body string
		body, err = f.Page(ctx, v.URL)
		if err == nil {
			return body, v, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", Variant{}, err
		}
		f.logger.Debug("variant missing, trying next", logging.String(logging.FieldURL, v.URL))
	}
	return "", Variant{}, err
}

// throttle sleeps out the remainder of the request delay, honoring
// cancellation.
func (f *Fetcher) throttle(ctx context.Context) error {
	if f.delay <= 0 {
		return nil
	}
	if !f.lastRequest.IsZero() {
		if wait := f.delay - time.Since(f.lastRequest); wait > 0 {
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	f.lastRequest = time.Now()
	return nil
}
