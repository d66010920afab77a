package schedule

import (
	"testing"
	"time"
)

var testWeek = time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)

func TestRecognizeCooldown(t *testing.T) {
	text := "Critical Role Cooldown: Campaign 3, Episode 96 releases Tuesday."
	got := RecognizeCooldown(text, testWeek)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	c := got[0]
	if c.Campaign != "Campaign 3" {
		t.Errorf("campaign = %q, want Campaign 3", c.Campaign)
	}
	if c.EpisodeNumber != "96" {
		t.Errorf("episode = %q, want 96", c.EpisodeNumber)
	}
	if c.Title != "C3E96 Cooldown" {
		t.Errorf("title = %q", c.Title)
	}
	if c.WeekStartDate != "2024-05-13" {
		t.Errorf("week start = %q", c.WeekStartDate)
	}
}

func TestCooldownWithoutEpisodeNumberYieldsNothing(t *testing.T) {
	if got := RecognizeCooldown("Critical Role Cooldown returns soon!", testWeek); len(got) != 0 {
		t.Fatalf("got %d candidates, want 0", len(got))
	}
}

func TestRecognizeFiresideChatWithGuest(t *testing.T) {
	got := RecognizeFiresideChat("Fireside Chat with Sam Riegel releases Friday.", testWeek)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].Title != "Fireside Chat with Sam Riegel" {
		t.Errorf("title = %q", got[0].Title)
	}
}

func TestRecognizeFiresideChatWithoutGuest(t *testing.T) {
	got := RecognizeFiresideChat("Fireside Chat LIVE only on Beacon.", testWeek)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].Title != "Fireside Chat with Unknown" {
		t.Errorf("title = %q, want the Unknown fallback", got[0].Title)
	}
}

func TestRecognizeWeirdKids(t *testing.T) {
	got := RecognizeWeirdKids("New Weird Kids Episode 5 drops this week.", testWeek)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].EpisodeNumber != "5" {
		t.Errorf("episode = %q, want 5", got[0].EpisodeNumber)
	}
}

func TestRecognizeInsideMightyNeinRange(t *testing.T) {
	got := RecognizeInsideMightyNein("Inside The Mighty Nein | Episodes 1-5 available now.", testWeek)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].EpisodeNumber != "1-5" {
		t.Errorf("episode = %q, want 1-5", got[0].EpisodeNumber)
	}
	if got[0].Campaign != "Campaign Two: The Mighty Nein" {
		t.Errorf("campaign = %q", got[0].Campaign)
	}
}

func TestRecognizeBackstagePassVenue(t *testing.T) {
	text := "Join us in Sydney for an unforgettable night.\n" +
		"Backstage Pass streams LIVE after the show, only on Beacon."
	got := RecognizeBackstagePass(text, testWeek)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].Title != "Backstage Pass - Sydney" {
		t.Errorf("title = %q", got[0].Title)
	}
}

func TestRecognizeBackstagePassUnknownVenue(t *testing.T) {
	got := RecognizeBackstagePass("Backstage Pass airs only on Beacon.", testWeek)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].Title != "Backstage Pass - Live Show" {
		t.Errorf("title = %q, want the Live Show fallback", got[0].Title)
	}
}

func TestRecognizePreviouslyOnArc(t *testing.T) {
	got := RecognizePreviouslyOn("Previously On: The Mighty Nein returns Monday.", testWeek)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	if got[0].Title != "Previously On: The Mighty Nein" {
		t.Errorf("title = %q", got[0].Title)
	}
}

func TestRecognizeMainCampaignPlaceholder(t *testing.T) {
	got := RecognizeMainCampaign("Campaign 4, Episode 13 airs Thursday at 7pm Pacific.", testWeek)
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}
	c := got[0]
	if c.Campaign != "Campaign Four" {
		t.Errorf("campaign = %q, want Campaign Four", c.Campaign)
	}
	if c.Title != "Campaign 4 Episode 13" {
		t.Errorf("title = %q", c.Title)
	}
	if c.Notes != WikiPendingNote {
		t.Errorf("notes = %q, want %q", c.Notes, WikiPendingNote)
	}
}

func TestMainCampaignSkipsCooldownMentions(t *testing.T) {
	text := "Critical Role Cooldown: Campaign 3, Episode 96"
	if got := RecognizeMainCampaign(text, testWeek); len(got) != 0 {
		t.Fatalf("cooldown mention produced %d main-campaign candidates, want 0", len(got))
	}
}

func TestDefaultRegistryPrecision(t *testing.T) {
	text := "Critical Role Cooldown: Campaign 3, Episode 96"
	got := DefaultRegistry().Extract(text, testWeek, "critrole")
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want exactly 1", len(got))
	}
	if got[0].Category != CategoryCooldown {
		t.Errorf("category = %q, want cooldown", got[0].Category)
	}
	if got[0].Source != "critrole" {
		t.Errorf("source = %q, want critrole", got[0].Source)
	}
}

func TestDefaultRegistryNoContent(t *testing.T) {
	got := DefaultRegistry().Extract("Just some random text with nothing scheduled.", testWeek, "critrole")
	if len(got) != 0 {
		t.Fatalf("got %d candidates from empty schedule, want 0", len(got))
	}
}

func TestEpisodeID(t *testing.T) {
	c := Candidate{
		Category:      CategoryCooldown,
		Campaign:      "Campaign 3",
		EpisodeNumber: "96",
		Title:         "C3E96 Cooldown",
	}
	want := "Talk Show|Campaign 3|96|C3E96 Cooldown"
	if got := c.EpisodeID(); got != want {
		t.Errorf("EpisodeID = %q, want %q", got, want)
	}
}

func TestCampaignName(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{1, "Campaign One: Vox Machina"},
		{2, "Campaign Two: The Mighty Nein"},
		{3, "Campaign Three: Bells Hells"},
		{4, "Campaign Four"},
		{7, "Campaign 7"},
	}
	for _, tt := range tests {
		if got := CampaignName(tt.index); got != tt.want {
			t.Errorf("CampaignName(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestNewSpecialEvent(t *testing.T) {
	c := NewSpecialEvent("Daggerheart Critmas Special[1]", testWeek)
	if c.Title != "Daggerheart Critmas Special" {
		t.Errorf("title = %q", c.Title)
	}
	if c.Category.ShowType() != "Special" {
		t.Errorf("show type = %q, want Special", c.Category.ShowType())
	}
}
