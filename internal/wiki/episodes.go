package wiki

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"crtracker/internal/schedule"
	"crtracker/internal/textutil"
)

var (
	digitsRe  = regexp.MustCompile(`(\d+)`)
	youtubeRe = regexp.MustCompile(`(?i)youtube\.com|youtu\.be`)
)

// Column aliases seen across arc tables, in lookup order.
var (
	numberColumns  = []string{"no.", "no", "#", "episode"}
	titleColumns   = []string{"title", "episode title", "name"}
	airdateColumns = []string{"original airdate", "airdate", "air date", "date"}
	runtimeColumns = []string{"runtime", "length", "duration"}
	vodColumns     = []string{"link", "vod", "video"}
)

// ParseEpisodeList extracts main-campaign episodes from the episode list
// page. Rows missing a title or episode number are dropped, never padded.
// Relative wiki links are resolved against baseURL.
func ParseEpisodeList(html, baseURL string) ([]schedule.Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse episode list: %w", err)
	}

	var (
		out      []schedule.Candidate
		campaign string
		arc      string
	)
	doc.Find("h2, h3, table.wikitable").Each(func(_ int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "h2":
			campaign = campaignFromHeader(textutil.CleanWikiText(sel.Text()))
			arc = ""
		case "h3":
			arc = textutil.CleanWikiText(sel.Text())
		case "table":
			if campaign == "" || !isArcHeader(arc) {
				return
			}
			out = append(out, parseArcTable(sel, campaign, arc, baseURL)...)
		}
	})
	return out, nil
}

// campaignFromHeader maps a section header to the catalog campaign name,
// or empty for non-campaign sections (specials, animated series).
func campaignFromHeader(header string) string {
	switch {
	case strings.Contains(header, "Campaign One"), strings.Contains(header, "Vox Machina"):
		return schedule.CampaignName(1)
	case strings.Contains(header, "Campaign Two"), strings.Contains(header, "Mighty Nein"):
		return schedule.CampaignName(2)
	case strings.Contains(header, "Campaign Three"), strings.Contains(header, "Bells Hells"):
		return schedule.CampaignName(3)
	case strings.Contains(header, "Campaign Four"):
		return schedule.CampaignName(4)
	default:
		return ""
	}
}

// isArcHeader filters out tables that sit under a campaign section but
// hold non-episode data.
func isArcHeader(arc string) bool {
	return strings.Contains(arc, "Arc") || strings.Contains(arc, "Campaign Four")
}

func parseArcTable(table *goquery.Selection, campaign, arc, baseURL string) []schedule.Candidate {
	rows := table.Find("tr")
	if rows.Length() < 2 {
		return nil
	}

	columns := make(map[string]int)
	rows.First().Find("th").Each(func(i int, th *goquery.Selection) {
		columns[strings.ToLower(textutil.CleanWikiText(th.Text()))] = i
	})

	var out []schedule.Candidate
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		c := schedule.Candidate{
			Category: schedule.CategoryMainCampaign,
			Campaign: campaign,
			Arc:      arc,
		}
		if value := cellText(cells, columns, numberColumns); value != "" {
			if m := digitsRe.FindStringSubmatch(value); m != nil {
				c.EpisodeNumber = m[1]
			}
		}
		c.Title, c.WikiURL = titleAndLink(cells, columns, baseURL)
		c.ReleaseDate = textutil.ParseDate(cellText(cells, columns, airdateColumns))
		c.Runtime = textutil.ParseRuntime(cellText(cells, columns, runtimeColumns))
		c.VODURL = vodLink(cells, columns)

		if c.Title == "" || c.EpisodeNumber == "" {
			return
		}
		out = append(out, c)
	})
	return out
}

func cellText(cells *goquery.Selection, columns map[string]int, names []string) string {
	for _, name := range names {
		idx, ok := columns[name]
		if !ok || idx >= cells.Length() {
			continue
		}
		return textutil.CleanWikiText(cells.Eq(idx).Text())
	}
	return ""
}

func titleAndLink(cells *goquery.Selection, columns map[string]int, baseURL string) (title, wikiURL string) {
	for _, name := range titleColumns {
		idx, ok := columns[name]
		if !ok || idx >= cells.Length() {
			continue
		}
		cell := cells.Eq(idx)
		link := cell.Find("a").First()
		if link.Length() > 0 {
			title = textutil.CleanWikiText(link.Text())
			if href, ok := link.Attr("href"); ok && strings.HasPrefix(href, "/wiki/") {
				wikiURL = baseURL + href
			}
			return title, wikiURL
		}
		return textutil.CleanWikiText(cell.Text()), ""
	}
	return "", ""
}

func vodLink(cells *goquery.Selection, columns map[string]int) string {
	for _, name := range vodColumns {
		idx, ok := columns[name]
		if !ok || idx >= cells.Length() {
			continue
		}
		var url string
		cells.Eq(idx).Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			if href, ok := a.Attr("href"); ok && youtubeRe.MatchString(href) {
				url = href
				return false
			}
			return true
		})
		return url
	}
	return ""
}
