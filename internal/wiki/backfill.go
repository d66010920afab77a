package wiki

import (
	"context"
	"log/slog"
	"strings"

	"crtracker/internal/catalog"
	"crtracker/internal/logging"
)

// PageFetcher retrieves one page body. Satisfied by fetch.Fetcher.
type PageFetcher interface {
	Page(ctx context.Context, url string) (string, error)
}

// Backfill fills missing VOD links and runtimes from episode wiki pages.
// Only rows that already have a wiki_url are considered; populated fields
// are never overwritten. A page that fails to fetch or parse is logged
// and skipped so one bad page never aborts the pass.
func Backfill(ctx context.Context, snap *catalog.Snapshot, fetcher PageFetcher, logger *slog.Logger) int {
	logger = logging.NewComponentLogger(logger, "backfill")
	updated := 0
	for _, ep := range snap.Episodes {
		if !needsBackfill(ep) {
			continue
		}
		if ctx.Err() != nil {
			logger.Warn("backfill interrupted", logging.Error(ctx.Err()))
			break
		}

		html, err := fetcher.Page(ctx, ep.WikiURL)
		if err != nil {
			logger.Warn("episode page fetch failed",
				logging.String("title", ep.Title),
				logging.String(logging.FieldURL, ep.WikiURL),
				logging.Error(err))
			continue
		}
		details, err := ParsePage(html)
		if err != nil {
			logger.Warn("episode page parse failed",
				logging.String("title", ep.Title),
				logging.Error(err))
			continue
		}

		changed := false
		if ep.VODURL == "" && details.VODURL != "" {
			ep.VODURL = details.VODURL
			changed = true
		}
		if (ep.Runtime == "" || ep.Runtime == "0:00:00") && details.Runtime != "" {
			ep.Runtime = details.Runtime
			changed = true
		}
		if changed {
			updated++
			logger.Debug("episode backfilled", logging.String("title", ep.Title))
		}
	}
	logger.Info("backfill finished", logging.Int("updated", updated))
	return updated
}

// needsBackfill reports whether a row is worth a page fetch: it must have
// a wiki page, be already released, not be subscription-exclusive, and be
// missing at least one of the fields we can mine.
func needsBackfill(ep *catalog.Episode) bool {
	if strings.TrimSpace(ep.WikiURL) == "" {
		return false
	}
	notes := strings.ToLower(ep.Notes)
	if strings.Contains(notes, "forthcoming") || strings.Contains(notes, "available soon") {
		return false
	}
	if strings.Contains(notes, "beacon") || ep.VODURL == "https://www.beacon.tv" {
		return false
	}
	missingVOD := ep.VODURL == ""
	missingRuntime := ep.Runtime == "" || ep.Runtime == "0:00:00"
	return missingVOD || missingRuntime
}
