package wiki

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"crtracker/internal/catalog"
	"crtracker/internal/schedule"
	"crtracker/internal/textutil"
)

// Column aliases for the full catalog import. The episode list page mixes
// table layouts across sections, so the number column in particular has
// accumulated spellings.
var (
	bootstrapNumberColumns  = []string{"no.overall", "no.in chapter", "no.", "no", "episode", "#", "ep.", "ep"}
	bootstrapAirdateColumns = []string{"original airdate", "airdate", "air date", "date", "premiere date"}
	bootstrapVODColumns     = []string{"link", "vod", "video", "youtube"}
)

// Section headings that never introduce episode tables.
var skipHeadings = map[string]bool{
	"":           true,
	"Contents":   true,
	"References": true,
	"Art":        true,
}

// Placeholder platform cells that carry no information.
var emptyPlatforms = map[string]bool{
	"n/a":      true,
	"tbd":      true,
	"upcoming": true,
}

// ParseFullCatalog walks the complete episode list page, every section
// rather than only the main campaigns, and builds catalog rows for an
// initial import. Section headers classify the show type; h3/h4 headers
// below them become the arc. Rows without a title are dropped.
func ParseFullCatalog(html, baseURL string) ([]*catalog.Episode, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse episode list: %w", err)
	}

	var (
		out      []*catalog.Episode
		showType string
		campaign string
		arc      string
	)
	doc.Find("h2, h3, h4, table.wikitable").Each(func(_ int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "h2":
			heading := textutil.CleanWikiText(sel.Text())
			if skipHeadings[heading] {
				return
			}
			showType = sectionShowType(heading)
			campaign = sectionCampaign(heading)
			arc = ""
		case "h3", "h4":
			arc = textutil.CleanWikiText(sel.Text())
		case "table":
			if campaign == "" {
				return
			}
			out = append(out, parseSectionTable(sel, showType, campaign, arc, baseURL)...)
		}
	})
	return out, nil
}

// sectionShowType classifies a top-level section heading.
func sectionShowType(heading string) string {
	switch {
	case strings.Contains(heading, "Campaign") && containsAny(heading, "One", "Two", "Three", "Four"):
		return "Main Campaign"
	case strings.Contains(heading, "Legend of Vox Machina"), strings.Contains(heading, "Mighty Nein (animated)"):
		return "Animated Series"
	case strings.Contains(heading, "Special"):
		return "Special"
	case strings.Contains(heading, "4-Sided Dive"), strings.Contains(heading, "Talks Machina"):
		return "Talk Show"
	case containsAny(heading, "Exandria", "Candela", "UnDeadwood", "Miniseries"):
		return "Miniseries"
	default:
		return "Other"
	}
}

// sectionCampaign keeps the canonical campaign names for the main
// campaigns and falls back to the heading text for everything else.
func sectionCampaign(heading string) string {
	if name := campaignFromHeader(heading); name != "" {
		return name
	}
	return heading
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func parseSectionTable(table *goquery.Selection, showType, campaign, arc, baseURL string) []*catalog.Episode {
	rows := table.Find("tr")
	if rows.Length() < 2 {
		return nil
	}

	columns := make(map[string]int)
	rows.First().Find("th").Each(func(i int, th *goquery.Selection) {
		columns[strings.ToLower(textutil.CleanWikiText(th.Text()))] = i
	})
	if !hasTitleColumn(columns) {
		return nil
	}

	var out []*catalog.Episode
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		if ep := episodeFromRow(cells, columns, showType, campaign, arc, baseURL); ep != nil {
			out = append(out, ep)
		}
	})
	return out
}

func hasTitleColumn(columns map[string]int) bool {
	for _, name := range titleColumns {
		if _, ok := columns[name]; ok {
			return true
		}
	}
	return false
}

func episodeFromRow(cells *goquery.Selection, columns map[string]int, showType, campaign, arc, baseURL string) *catalog.Episode {
	ep := &catalog.Episode{
		ShowType:      showType,
		Campaign:      campaign,
		Arc:           arc,
		EpisodeNumber: cellText(cells, columns, bootstrapNumberColumns),
		Watched:       "False",
		HasCooldown:   "False",
	}

	title, wikiURL := titleAndLink(cells, columns, baseURL)
	ep.Title = textutil.StripEpisodeCode(title)
	ep.WikiURL = wikiURL
	ep.Airdate = textutil.ParseDate(cellText(cells, columns, bootstrapAirdateColumns))
	ep.Runtime = textutil.ParseRuntime(cellText(cells, columns, runtimeColumns))
	ep.VODURL, ep.Notes = vodOrPlatform(cells, columns)

	if ep.Title == "" {
		return nil
	}

	// Special rows go through the same cleanup and fallback the
	// schedule recognizers apply to one-off content.
	if showType == "Special" {
		if when, err := time.Parse(schedule.DateLayout, ep.Airdate); err == nil {
			c := schedule.NewSpecialEvent(ep.Title, when)
			ep.Title = c.Title
			ep.Airdate = c.ReleaseDate
		}
	}

	if showType == "Animated Series" && ep.VODURL == "" {
		ep.Notes = appendNote(ep.Notes, "Available on Prime Video")
	}

	ep.EpisodeID = strings.Join([]string{ep.ShowType, ep.Campaign, ep.EpisodeNumber, ep.Title}, "|")
	return ep
}

// vodOrPlatform reads the link column: a hyperlink becomes the VOD URL;
// plain text names a streaming platform and becomes a note instead.
func vodOrPlatform(cells *goquery.Selection, columns map[string]int) (vodURL, note string) {
	for _, name := range bootstrapVODColumns {
		idx, ok := columns[name]
		if !ok || idx >= cells.Length() {
			continue
		}
		cell := cells.Eq(idx)
		if href, ok := cell.Find("a").First().Attr("href"); ok {
			return href, ""
		}
		platform := textutil.CleanWikiText(cell.Text())
		if platform != "" && !emptyPlatforms[strings.ToLower(platform)] {
			return "", "Available on " + platform
		}
		return "", ""
	}
	return "", ""
}

func appendNote(notes, note string) string {
	if notes == "" {
		return note
	}
	if strings.Contains(notes, note) {
		return notes
	}
	return notes + " | " + note
}
