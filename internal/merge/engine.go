package merge

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"crtracker/internal/catalog"
	"crtracker/internal/logging"
	"crtracker/internal/schedule"
)

// Engine folds candidate batches into a catalog snapshot.
type Engine struct {
	placeholder *regexp.Regexp
	logger      *slog.Logger
}

// Options tunes a single merge run.
type Options struct {
	// AllowUpgrade enables the placeholder upgrade path. Only runs fed
	// by an authoritative source (the wiki) should set it; schedule runs
	// must never overwrite a title.
	AllowUpgrade bool
}

// Rejection records one candidate that was not added, with the reason.
type Rejection struct {
	Title  string
	Source string
	Reason string
}

// Summary is the structured result of one merge run.
type Summary struct {
	RunID      string
	Added      int
	Upgraded   int
	Rejected   int
	Rejections []Rejection
}

// NewEngine compiles the placeholder-title pattern and returns an engine.
func NewEngine(placeholderPattern string, logger *slog.Logger) (*Engine, error) {
	re, err := regexp.Compile(placeholderPattern)
	if err != nil {
		return nil, fmt.Errorf("compile placeholder pattern: %w", err)
	}
	return &Engine{
		placeholder: re,
		logger:      logging.NewComponentLogger(logger, "merge"),
	}, nil
}

// Run merges candidates into the snapshot in place and returns the run
// summary. The snapshot is re-sorted by airdate afterwards; the caller
// owns persisting it. A rejected candidate never aborts the run.
func (e *Engine) Run(snap *catalog.Snapshot, candidates []schedule.Candidate, opts Options) (*Summary, error) {
	if snap == nil {
		return nil, fmt.Errorf("merge run needs a loaded catalog snapshot")
	}

	summary := &Summary{RunID: uuid.New().String()}
	logger := e.logger.With(logging.String(logging.FieldRunID, summary.RunID))
	logger.Info("merge run started",
		logging.Int("candidates", len(candidates)),
		logging.Int("existing", len(snap.Episodes)),
		logging.Bool("allow_upgrade", opts.AllowUpgrade))

	ix := buildIndex(snap)
	for _, c := range candidates {
		v := ix.resolve(c, snap.Episodes, e.placeholder, opts.AllowUpgrade)
		switch v.kind {
		case verdictNew:
			ep := episodeFromCandidate(c)
			snap.Episodes = append(snap.Episodes, ep)
			ix.register(len(snap.Episodes)-1, ep)
			summary.Added++
			logger.Debug("candidate added",
				logging.String("title", c.Title),
				logging.String(logging.FieldSource, c.Source))
		case verdictUpgrade:
			e.upgrade(ix, snap.Episodes[v.row], v.row, c)
			summary.Upgraded++
			logger.Info("placeholder upgraded",
				logging.String("title", c.Title),
				logging.String(logging.FieldSource, c.Source))
		case verdictDuplicate:
			summary.Rejected++
			summary.Rejections = append(summary.Rejections, Rejection{
				Title:  c.Title,
				Source: c.Source,
				Reason: v.reason,
			})
			logger.Debug("candidate rejected",
				logging.String("title", c.Title),
				logging.String("reason", v.reason))
		}
	}

	catalog.SortEpisodes(snap.Episodes)
	logger.Info("merge run finished",
		logging.Int("added", summary.Added),
		logging.Int("upgraded", summary.Upgraded),
		logging.Int("rejected", summary.Rejected))
	return summary, nil
}

// upgrade rewrites a placeholder row with the authoritative title,
// backfills fields that are still empty, and recomputes the row's id.
// Populated fields are never overwritten.
func (e *Engine) upgrade(ix *index, ep *catalog.Episode, row int, c schedule.Candidate) {
	oldID := ep.EpisodeID
	ep.Title = c.Title
	if ep.WikiURL == "" {
		ep.WikiURL = c.WikiURL
	}
	if ep.Arc == "" {
		ep.Arc = c.Arc
	}
	if ep.Runtime == "" {
		ep.Runtime = c.Runtime
	}
	ep.Notes = stripWikiPending(ep.Notes)
	ep.EpisodeID = strings.Join([]string{ep.ShowType, ep.Campaign, ep.EpisodeNumber, ep.Title}, "|")
	ix.reindexID(row, oldID, ep.EpisodeID)
}

func episodeFromCandidate(c schedule.Candidate) *catalog.Episode {
	return &catalog.Episode{
		EpisodeID:     c.EpisodeID(),
		ShowType:      c.Category.ShowType(),
		Campaign:      c.Campaign,
		Arc:           c.Arc,
		EpisodeNumber: c.EpisodeNumber,
		Title:         c.Title,
		Airdate:       c.ReleaseDate,
		VODURL:        c.VODURL,
		WikiURL:       c.WikiURL,
		Runtime:       c.Runtime,
		Watched:       "False",
		Notes:         c.Notes,
		HasCooldown:   "False",
	}
}

func stripWikiPending(notes string) string {
	parts := strings.Split(notes, ";")
	kept := parts[:0]
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" || strings.EqualFold(trimmed, schedule.WikiPendingNote) {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, "; ")
}
