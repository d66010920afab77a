package wiki

import (
	"testing"
)

const sampleFullCatalog = `
<html><body>
<h2>Contents</h2>
<h2>Campaign Three: Bells Hells</h2>
<h3>Arc 1</h3>
<table class="wikitable">
<tr><th>No.overall</th><th>Title</th><th>Original airdate</th><th>Runtime</th><th>Link</th></tr>
<tr>
  <td>1</td>
  <td><a href="/wiki/The_Draw_of_Destiny">The Draw of Destiny (3x01)</a></td>
  <td>October 21, 2021</td>
  <td>4:20:23</td>
  <td><a href="https://www.youtube.com/watch?v=ZZZ">Watch</a></td>
</tr>
</table>
<h2>The Legend of Vox Machina</h2>
<h3>Season 1</h3>
<table class="wikitable">
<tr><th>No.</th><th>Title</th><th>Premiere date</th><th>Link</th></tr>
<tr>
  <td>1</td>
  <td><a href="/wiki/The_Terror_of_Tal%27Dorei">The Terror of Tal'Dorei (1x01)</a></td>
  <td>January 28, 2022</td>
  <td>Prime Video</td>
</tr>
</table>
<h2>Specials</h2>
<table class="wikitable">
<tr><th>Title</th><th>Date</th></tr>
<tr>
  <td><a href="/wiki/The_Search_For_Grog">The Search For Grog[1]</a></td>
  <td>January 18, 2019</td>
</tr>
</table>
<h2>4-Sided Dive</h2>
<table class="wikitable">
<tr><th>Ep.</th><th>Title</th><th>Date</th></tr>
<tr>
  <td>1</td>
  <td>Making Hells Bells</td>
  <td>April 5, 2022</td>
</tr>
</table>
<h2>Exandria Unlimited</h2>
<table class="wikitable">
<tr><th>No.</th><th>Title</th><th>Airdate</th></tr>
<tr>
  <td>1</td>
  <td><a href="/wiki/The_Oh_No_Plateau">The Oh No Plateau</a></td>
  <td>June 24, 2021</td>
</tr>
</table>
</body></html>`

func TestParseFullCatalogSectionClassification(t *testing.T) {
	episodes, err := ParseFullCatalog(sampleFullCatalog, "https://criticalrole.fandom.com")
	if err != nil {
		t.Fatalf("ParseFullCatalog: %v", err)
	}
	if len(episodes) != 5 {
		t.Fatalf("got %d episodes, want 5", len(episodes))
	}

	byTitle := make(map[string]int)
	for i, ep := range episodes {
		byTitle[ep.Title] = i
	}

	tests := []struct {
		title    string
		showType string
		campaign string
	}{
		{"The Draw of Destiny", "Main Campaign", "Campaign Three: Bells Hells"},
		{"The Terror of Tal'Dorei", "Animated Series", "The Legend of Vox Machina"},
		{"The Search For Grog", "Special", "Specials"},
		{"Making Hells Bells", "Talk Show", "4-Sided Dive"},
		{"The Oh No Plateau", "Miniseries", "Exandria Unlimited"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			i, ok := byTitle[tt.title]
			if !ok {
				t.Fatalf("episode %q not found", tt.title)
			}
			ep := episodes[i]
			if ep.ShowType != tt.showType {
				t.Errorf("show type = %q, want %q", ep.ShowType, tt.showType)
			}
			if ep.Campaign != tt.campaign {
				t.Errorf("campaign = %q, want %q", ep.Campaign, tt.campaign)
			}
		})
	}
}

func TestParseFullCatalogRowDetails(t *testing.T) {
	episodes, err := ParseFullCatalog(sampleFullCatalog, "https://criticalrole.fandom.com")
	if err != nil {
		t.Fatalf("ParseFullCatalog: %v", err)
	}

	var main, animated *int
	for i, ep := range episodes {
		switch ep.Title {
		case "The Draw of Destiny":
			idx := i
			main = &idx
		case "The Terror of Tal'Dorei":
			idx := i
			animated = &idx
		}
	}
	if main == nil || animated == nil {
		t.Fatal("expected rows missing")
	}

	ep := episodes[*main]
	if ep.EpisodeNumber != "1" {
		t.Errorf("episode number = %q", ep.EpisodeNumber)
	}
	if ep.Arc != "Arc 1" {
		t.Errorf("arc = %q", ep.Arc)
	}
	if ep.Airdate != "2021-10-21" {
		t.Errorf("airdate = %q", ep.Airdate)
	}
	if ep.Runtime != "4:20:23" {
		t.Errorf("runtime = %q", ep.Runtime)
	}
	if ep.VODURL != "https://www.youtube.com/watch?v=ZZZ" {
		t.Errorf("vod url = %q", ep.VODURL)
	}
	if ep.WikiURL != "https://criticalrole.fandom.com/wiki/The_Draw_of_Destiny" {
		t.Errorf("wiki url = %q", ep.WikiURL)
	}
	if ep.EpisodeID != "Main Campaign|Campaign Three: Bells Hells|1|The Draw of Destiny" {
		t.Errorf("episode id = %q", ep.EpisodeID)
	}
	if ep.Watched != "False" || ep.HasCooldown != "False" {
		t.Errorf("flags = %q/%q, want False/False", ep.Watched, ep.HasCooldown)
	}

	// The animated row has a platform name instead of a link.
	if got := episodes[*animated].Notes; got != "Available on Prime Video" {
		t.Errorf("animated notes = %q", got)
	}
	if episodes[*animated].VODURL != "" {
		t.Errorf("animated vod url = %q", episodes[*animated].VODURL)
	}
}

func TestParseFullCatalogStripsEpisodeCodes(t *testing.T) {
	episodes, err := ParseFullCatalog(sampleFullCatalog, "https://criticalrole.fandom.com")
	if err != nil {
		t.Fatalf("ParseFullCatalog: %v", err)
	}
	for _, ep := range episodes {
		if containsAny(ep.Title, "(3x01)", "(1x01)") {
			t.Errorf("title %q keeps its episode code", ep.Title)
		}
	}
}

func TestParseFullCatalogCleansSpecialTitles(t *testing.T) {
	episodes, err := ParseFullCatalog(sampleFullCatalog, "https://criticalrole.fandom.com")
	if err != nil {
		t.Fatalf("ParseFullCatalog: %v", err)
	}
	for _, ep := range episodes {
		if ep.ShowType != "Special" {
			continue
		}
		if ep.Title != "The Search For Grog" {
			t.Errorf("special title = %q, want reference artifact stripped", ep.Title)
		}
		if ep.Airdate != "2019-01-18" {
			t.Errorf("special airdate = %q", ep.Airdate)
		}
		return
	}
	t.Fatal("no special row parsed")
}

func TestParseFullCatalogSkipsTablesWithoutTitles(t *testing.T) {
	html := `
<html><body>
<h2>Campaign Three: Bells Hells</h2>
<table class="wikitable">
<tr><th>Cast</th><th>Character</th></tr>
<tr><td>A</td><td>B</td></tr>
</table>
</body></html>`
	episodes, err := ParseFullCatalog(html, "https://criticalrole.fandom.com")
	if err != nil {
		t.Fatalf("ParseFullCatalog: %v", err)
	}
	if len(episodes) != 0 {
		t.Errorf("got %d episodes from a non-episode table, want 0", len(episodes))
	}
}
