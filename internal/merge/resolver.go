package merge

import (
	"fmt"
	"regexp"

	"crtracker/internal/catalog"
	"crtracker/internal/schedule"
)

type verdictKind int

const (
	verdictNew verdictKind = iota
	verdictDuplicate
	verdictUpgrade
)

// verdict is the resolver's decision for one candidate. For duplicates the
// reason is surfaced in the run summary; for upgrades the row points at
// the placeholder to rewrite.
type verdict struct {
	kind   verdictKind
	reason string
	row    int
}

// resolve applies the two-tier duplicate policy. Tier one rejects exact
// episode_id repeats. Tier two consults the category's secondary key and,
// for main-campaign rows, may route the candidate to the placeholder
// upgrade path instead of rejecting it.
func (ix *index) resolve(c schedule.Candidate, episodes []*catalog.Episode, placeholder *regexp.Regexp, allowUpgrade bool) verdict {
	if c.Title == "" {
		return verdict{kind: verdictDuplicate, reason: "candidate has no title"}
	}

	id := c.EpisodeID()
	if _, exists := ix.lookupID(id); exists {
		return verdict{kind: verdictDuplicate, reason: "episode_id already present"}
	}

	key := secondaryKey(c.Category, c.Campaign, c.EpisodeNumber, c.Title)
	if key == "" {
		return verdict{kind: verdictNew}
	}
	row, exists := ix.lookupSecondary(c.Category, key)
	if !exists {
		return verdict{kind: verdictNew}
	}

	if c.Category == schedule.CategoryMainCampaign && allowUpgrade {
		existing := episodes[row]
		if placeholder.MatchString(existing.Title) && !placeholder.MatchString(c.Title) {
			return verdict{kind: verdictUpgrade, row: row}
		}
	}
	return verdict{
		kind:   verdictDuplicate,
		reason: fmt.Sprintf("matches existing %q under secondary key %q", episodes[row].Title, key),
		row:    row,
	}
}
