package schedule

import (
	"fmt"
	"strings"
)

// DateLayout is the calendar date format used throughout the tracker.
const DateLayout = "2006-01-02"

// Category identifies which recognizer produced a candidate.
type Category string

const (
	CategoryCooldown             Category = "cooldown"
	CategoryFiresideChat         Category = "fireside_chat"
	CategoryWeirdKids            Category = "weird_kids"
	CategoryLongRest             Category = "long_rest"
	CategoryBackstagePass        Category = "backstage_pass"
	CategoryInsideMightyNein     Category = "inside_mighty_nein"
	CategoryGetYourSheetTogether Category = "get_your_sheet_together"
	CategoryPreviouslyOn         Category = "previously_on"
	CategoryTaleGate             Category = "talegate"
	CategoryMainCampaign         Category = "main_campaign"
	CategorySpecialEvent         Category = "special_event"
)

// ShowType maps a category to the catalog's show_type value.
func (c Category) ShowType() string {
	switch c {
	case CategoryCooldown, CategoryGetYourSheetTogether, CategoryTaleGate:
		return "Talk Show"
	case CategoryFiresideChat:
		return "Fireside Chat"
	case CategoryWeirdKids, CategoryLongRest:
		return "Podcast"
	case CategoryInsideMightyNein:
		return "Companion Series"
	case CategoryPreviouslyOn:
		return "Recap"
	case CategoryMainCampaign:
		return "Main Campaign"
	default:
		return "Special"
	}
}

// Candidate is one recognizer match, normalized but not yet accepted into
// the catalog. Candidates are value types and never mutated after
// extraction.
type Candidate struct {
	Category      Category
	Campaign      string
	EpisodeNumber string
	Title         string
	WeekStartDate string
	ReleaseDate   string
	Notes         string
	Source        string

	// Enrichment fields, populated only by authoritative sources such as
	// the wiki. Empty for weekly schedule matches.
	Arc     string
	WikiURL string
	VODURL  string
	Runtime string
}

// EpisodeID derives the candidate's primary identity. The id is
// deterministic but format-sensitive, which is why duplicate resolution
// never relies on it alone.
func (c Candidate) EpisodeID() string {
	return strings.Join([]string{c.Category.ShowType(), c.Campaign, c.EpisodeNumber, c.Title}, "|")
}

// CampaignName returns the catalog's full campaign name for a campaign
// index. Unknown indexes fall back to the bare numbered form.
func CampaignName(index int) string {
	switch index {
	case 1:
		return "Campaign One: Vox Machina"
	case 2:
		return "Campaign Two: The Mighty Nein"
	case 3:
		return "Campaign Three: Bells Hells"
	case 4:
		return "Campaign Four"
	default:
		return fmt.Sprintf("Campaign %d", index)
	}
}

// PlaceholderTitle builds the provisional title used for a main-campaign
// episode announced on a schedule before the wiki has a page for it.
func PlaceholderTitle(campaignIndex int, episode string) string {
	return fmt.Sprintf("Campaign %d Episode %s", campaignIndex, episode)
}

// WikiPendingNote marks a record whose title is provisional until wiki
// data arrives. The merge engine strips it on upgrade.
const WikiPendingNote = "wiki pending"
