package catalog

// Canonical column names in catalog order. Unknown columns found in an
// existing file are appended after these.
var canonicalFields = []string{
	"episode_id",
	"show_type",
	"campaign",
	"arc",
	"episode_number",
	"title",
	"airdate",
	"vod_url",
	"wiki_url",
	"runtime",
	"watched",
	"notes",
	"has_cooldown",
	"cooldown_date",
}

// CanonicalFields returns the schema's column names in catalog order.
func CanonicalFields() []string {
	fields := make([]string, len(canonicalFields))
	copy(fields, canonicalFields)
	return fields
}

// Episode is one catalog row. All values are strings because the catalog
// is a CSV file and empty means unknown.
type Episode struct {
	EpisodeID     string
	ShowType      string
	Campaign      string
	Arc           string
	EpisodeNumber string
	Title         string
	Airdate       string
	VODURL        string
	WikiURL       string
	Runtime       string
	Watched       string
	Notes         string
	HasCooldown   string
	CooldownDate  string

	// Extra holds values for columns outside the canonical schema, keyed
	// by column name. They are written back verbatim on save.
	Extra map[string]string
}

// Valid reports whether the row carries the fields required for duplicate
// resolution. Invalid rows are preserved on save but never matched against.
func (e *Episode) Valid() bool {
	return e.EpisodeID != "" && e.Title != ""
}

func (e *Episode) field(name string) string {
	switch name {
	case "episode_id":
		return e.EpisodeID
	case "show_type":
		return e.ShowType
	case "campaign":
		return e.Campaign
	case "arc":
		return e.Arc
	case "episode_number":
		return e.EpisodeNumber
	case "title":
		return e.Title
	case "airdate":
		return e.Airdate
	case "vod_url":
		return e.VODURL
	case "wiki_url":
		return e.WikiURL
	case "runtime":
		return e.Runtime
	case "watched":
		return e.Watched
	case "notes":
		return e.Notes
	case "has_cooldown":
		return e.HasCooldown
	case "cooldown_date":
		return e.CooldownDate
	default:
		return e.Extra[name]
	}
}

func (e *Episode) setField(name, value string) {
	switch name {
	case "episode_id":
		e.EpisodeID = value
	case "show_type":
		e.ShowType = value
	case "campaign":
		e.Campaign = value
	case "arc":
		e.Arc = value
	case "episode_number":
		e.EpisodeNumber = value
	case "title":
		e.Title = value
	case "airdate":
		e.Airdate = value
	case "vod_url":
		e.VODURL = value
	case "wiki_url":
		e.WikiURL = value
	case "runtime":
		e.Runtime = value
	case "watched":
		e.Watched = value
	case "notes":
		e.Notes = value
	case "has_cooldown":
		e.HasCooldown = value
	case "cooldown_date":
		e.CooldownDate = value
	default:
		if e.Extra == nil {
			e.Extra = make(map[string]string)
		}
		e.Extra[name] = value
	}
}
