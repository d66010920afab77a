package merge

import (
	"regexp"
	"strings"

	"crtracker/internal/catalog"
	"crtracker/internal/schedule"
	"crtracker/internal/textutil"
)

var (
	trailingNumberRe = regexp.MustCompile(`(\d+)\s*$`)
	guestAfterWithRe = regexp.MustCompile(`(?i)\bwith\s+(.+)$`)
)

// index holds both duplicate-detection tiers for one merge run: the exact
// episode_id map and the per-category secondary keys. Values are row
// indexes into the snapshot so the upgrade path can find its target.
// Candidates accepted during the run are registered immediately, which
// catches duplicates inside a single batch.
type index struct {
	byID        map[string]int
	bySecondary map[string]int
}

// buildIndex scans the whole snapshot once. Rows without an id or title
// cannot be matched against and are skipped; they are still preserved in
// the output.
func buildIndex(snap *catalog.Snapshot) *index {
	ix := &index{
		byID:        make(map[string]int, len(snap.Episodes)),
		bySecondary: make(map[string]int, len(snap.Episodes)),
	}
	for i, ep := range snap.Episodes {
		if !ep.Valid() {
			continue
		}
		ix.register(i, ep)
	}
	return ix
}

func (ix *index) register(row int, ep *catalog.Episode) {
	if _, exists := ix.byID[ep.EpisodeID]; !exists {
		ix.byID[ep.EpisodeID] = row
	}
	category := rowCategory(ep)
	if key := secondaryKey(category, ep.Campaign, ep.EpisodeNumber, ep.Title); key != "" {
		full := string(category) + "|" + key
		if _, exists := ix.bySecondary[full]; !exists {
			ix.bySecondary[full] = row
		}
	}
}

// reindexID swaps a row's primary id after a placeholder upgrade.
func (ix *index) reindexID(row int, oldID, newID string) {
	delete(ix.byID, oldID)
	ix.byID[newID] = row
}

func (ix *index) lookupID(id string) (int, bool) {
	row, ok := ix.byID[id]
	return row, ok
}

func (ix *index) lookupSecondary(category schedule.Category, key string) (int, bool) {
	row, ok := ix.bySecondary[string(category)+"|"+key]
	return row, ok
}

// secondaryKey derives the category-specific duplicate signal. An empty
// key means the category relies on the primary id alone.
func secondaryKey(category schedule.Category, campaign, episodeNumber, title string) string {
	switch category {
	case schedule.CategoryCooldown:
		// Episode numbers drift across sources ("C3x95" vs "95"); the
		// trailing numeric index is the stable part.
		if m := trailingNumberRe.FindStringSubmatch(episodeNumber); m != nil {
			return m[1]
		}
		return ""
	case schedule.CategoryFiresideChat:
		if m := guestAfterWithRe.FindStringSubmatch(title); m != nil {
			return textutil.FoldKey(textutil.FirstToken(m[1]))
		}
		return ""
	case schedule.CategoryWeirdKids, schedule.CategoryLongRest,
		schedule.CategoryInsideMightyNein, schedule.CategoryGetYourSheetTogether:
		return strings.TrimSpace(episodeNumber)
	case schedule.CategoryTaleGate, schedule.CategoryPreviouslyOn, schedule.CategoryBackstagePass:
		return textutil.FoldKey(textutil.TailSegment(title))
	case schedule.CategoryMainCampaign:
		if campaign == "" || episodeNumber == "" {
			return ""
		}
		return textutil.FoldKey(campaign) + "|" + strings.TrimSpace(episodeNumber)
	case schedule.CategorySpecialEvent:
		return textutil.Slug(title)
	default:
		return ""
	}
}

// rowCategory infers which recognizer family produced a persisted row, so
// stored rows and fresh candidates share one secondary-key derivation.
func rowCategory(ep *catalog.Episode) schedule.Category {
	title := strings.ToLower(ep.Title)
	switch ep.ShowType {
	case "Main Campaign":
		return schedule.CategoryMainCampaign
	case "Fireside Chat":
		return schedule.CategoryFiresideChat
	case "Recap":
		return schedule.CategoryPreviouslyOn
	case "Companion Series":
		return schedule.CategoryInsideMightyNein
	case "Talk Show":
		switch {
		case strings.Contains(title, "cooldown"):
			return schedule.CategoryCooldown
		case strings.HasPrefix(title, "talegate"):
			return schedule.CategoryTaleGate
		case strings.Contains(title, "get your sheet together"):
			return schedule.CategoryGetYourSheetTogether
		}
		// A talk show without a known cue (e.g. wiki-sourced shows) must
		// not share keys with the cooldown family.
		return schedule.CategorySpecialEvent
	case "Podcast":
		switch {
		case strings.Contains(title, "long rest"):
			return schedule.CategoryLongRest
		case strings.Contains(title, "weird kids"):
			return schedule.CategoryWeirdKids
		}
		return schedule.CategorySpecialEvent
	case "Special":
		if strings.HasPrefix(title, "backstage pass") {
			return schedule.CategoryBackstagePass
		}
		return schedule.CategorySpecialEvent
	default:
		return schedule.CategorySpecialEvent
	}
}
