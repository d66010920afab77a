package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"crtracker/internal/textutil"
)

var (
	cooldownRe     = regexp.MustCompile(`(?i)critical\s+(?:role\s+)?cooldown.*?campaign\s+(\d+).*?episode\s+(\d+)`)
	firesideRe     = regexp.MustCompile(`(?i)fireside\s+chat(?:\s+live)?(\s+with\s+)?`)
	weirdKidsRe    = regexp.MustCompile(`(?i)weird\s+kids.*?episode\s+(\d+)`)
	longRestRe     = regexp.MustCompile(`(?i)(?:the\s+)?long\s+rest.*?episode\s+(\d+)`)
	backstageRe    = regexp.MustCompile(`(?is)(?:backstage\s+pass|backstage\s+tour).*?(?:live|airs).*?only\s+on\s+beacon`)
	backstageVenue = regexp.MustCompile(`(?i)(sydney|melbourne|chicago|indianapolis|new york|radio city|daggerheart critmas)`)
	insideNeinRe   = regexp.MustCompile(`(?i)inside\s+the\s+mighty\s+nein.*?episodes?\s+(\d+(?:\s*[-–]\s*\d+)?)`)
	sheetRe        = regexp.MustCompile(`(?i)get\s+your\s+sheet\s+together.*?episode\s+(\d+)`)
	previouslyRe   = regexp.MustCompile(`(?i)previously\s+on[:,]?\s+`)
	taleGateRe     = regexp.MustCompile(`(?i)tale-?gate[:,]?\s+`)
	mainEpisodeRe  = regexp.MustCompile(`(?i)campaign\s+(\d+)[,:]?\s+episode\s+(\d+)`)
)

// Words that end a free-text name capture such as a guest or arc name.
var captureTerminators = []string{
	"releases", "premieres", "returns", "continues", "drops", "airs",
	"live", "only", "exclusively", "on", "at", "this", "tonight",
}

// RecognizeCooldown matches post-show cooldown announcements such as
// "Critical Role Cooldown: Campaign 3, Episode 96".
func RecognizeCooldown(text string, weekStart time.Time) []Candidate {
	var out []Candidate
	for _, m := range cooldownRe.FindAllStringSubmatch(text, -1) {
		campaign, episode := m[1], m[2]
		out = append(out, Candidate{
			Category:      CategoryCooldown,
			Campaign:      "Campaign " + campaign,
			EpisodeNumber: episode,
			Title:         fmt.Sprintf("C%sE%s Cooldown", campaign, episode),
			WeekStartDate: weekStart.Format(DateLayout),
			ReleaseDate:   weekStart.Format(DateLayout),
			Notes:         "Post-show reactions",
		})
	}
	return out
}

// RecognizeFiresideChat matches AMA announcements. The guest name is
// captured up to a sentence boundary or terminator word; when the
// announcement names no guest the candidate still stands with "Unknown".
func RecognizeFiresideChat(text string, weekStart time.Time) []Candidate {
	var out []Candidate
	for _, loc := range firesideRe.FindAllStringSubmatchIndex(text, -1) {
		guest := "Unknown"
		if loc[2] >= 0 {
			captured := textutil.CaptureUntil(text[loc[1]:], captureTerminators)
			if len(captured) >= 2 {
				guest = captured
			}
		}
		out = append(out, Candidate{
			Category:      CategoryFiresideChat,
			Title:         "Fireside Chat with " + guest,
			WeekStartDate: weekStart.Format(DateLayout),
			ReleaseDate:   weekStart.Format(DateLayout),
			Notes:         "Monthly AMA/Q&A",
		})
	}
	return out
}

// RecognizeWeirdKids matches podcast episode announcements; the episode
// number is required, so cue text without one yields nothing.
func RecognizeWeirdKids(text string, weekStart time.Time) []Candidate {
	var out []Candidate
	for _, m := range weirdKidsRe.FindAllStringSubmatch(text, -1) {
		out = append(out, Candidate{
			Category:      CategoryWeirdKids,
			EpisodeNumber: m[1],
			Title:         "Weird Kids Episode " + m[1],
			WeekStartDate: weekStart.Format(DateLayout),
			ReleaseDate:   weekStart.Format(DateLayout),
			Notes:         "Ashley Johnson & Taliesin Jaffe podcast",
		})
	}
	return out
}

// RecognizeLongRest matches rest-week podcast announcements.
func RecognizeLongRest(text string, weekStart time.Time) []Candidate {
	var out []Candidate
	for _, m := range longRestRe.FindAllStringSubmatch(text, -1) {
		out = append(out, Candidate{
			Category:      CategoryLongRest,
			EpisodeNumber: m[1],
			Title:         "The Long Rest Episode " + m[1],
			WeekStartDate: weekStart.Format(DateLayout),
			ReleaseDate:   weekStart.Format(DateLayout),
			Notes:         "Cast interview podcast",
		})
	}
	return out
}

// RecognizeBackstagePass matches behind-the-scenes live streams. The venue
// is looked up in a window around the match because announcements name the
// city well before the cue phrase.
func RecognizeBackstagePass(text string, weekStart time.Time) []Candidate {
	var out []Candidate
	for _, loc := range backstageRe.FindAllStringIndex(text, -1) {
		start := loc[0] - 200
		if start < 0 {
			start = 0
		}
		end := loc[1] + 50
		if end > len(text) {
			end = len(text)
		}
		event := "Live Show"
		if m := backstageVenue.FindString(text[start:end]); m != "" {
			event = m
		}
		out = append(out, Candidate{
			Category:      CategoryBackstagePass,
			Title:         "Backstage Pass - " + event,
			WeekStartDate: weekStart.Format(DateLayout),
			Notes:         "Behind-the-scenes live stream",
		})
	}
	return out
}

// RecognizeInsideMightyNein matches companion-series announcements, which
// often cover an episode range such as "Episodes 1-5".
func RecognizeInsideMightyNein(text string, weekStart time.Time) []Candidate {
	var out []Candidate
	for _, m := range insideNeinRe.FindAllStringSubmatch(text, -1) {
		number := normalizeRange(m[1])
		label := "Episode"
		if strings.Contains(number, "-") {
			label = "Episodes"
		}
		out = append(out, Candidate{
			Category:      CategoryInsideMightyNein,
			Campaign:      CampaignName(2),
			EpisodeNumber: number,
			Title:         fmt.Sprintf("Inside The Mighty Nein %s %s", label, number),
			WeekStartDate: weekStart.Format(DateLayout),
			ReleaseDate:   weekStart.Format(DateLayout),
			Notes:         "Companion series",
		})
	}
	return out
}

// RecognizeGetYourSheetTogether matches the character-building talk show.
func RecognizeGetYourSheetTogether(text string, weekStart time.Time) []Candidate {
	var out []Candidate
	for _, m := range sheetRe.FindAllStringSubmatch(text, -1) {
		out = append(out, Candidate{
			Category:      CategoryGetYourSheetTogether,
			EpisodeNumber: m[1],
			Title:         "Get Your Sheet Together Episode " + m[1],
			WeekStartDate: weekStart.Format(DateLayout),
			ReleaseDate:   weekStart.Format(DateLayout),
			Notes:         "Character building talk show",
		})
	}
	return out
}

// RecognizePreviouslyOn matches recap segments. The arc name after the cue
// is the candidate's identity, so an uncapturable arc falls back to
// "Unknown" rather than discarding the match.
func RecognizePreviouslyOn(text string, weekStart time.Time) []Candidate {
	return recognizeArcSeries(text, weekStart, previouslyRe, CategoryPreviouslyOn, "Previously On: %s", "Campaign recap")
}

// RecognizeTaleGate matches the fan-table talk show, identified by the arc
// it covers.
func RecognizeTaleGate(text string, weekStart time.Time) []Candidate {
	return recognizeArcSeries(text, weekStart, taleGateRe, CategoryTaleGate, "Talegate: %s", "Fan table talk show")
}

func recognizeArcSeries(text string, weekStart time.Time, cue *regexp.Regexp, category Category, titleFormat, notes string) []Candidate {
	var out []Candidate
	for _, loc := range cue.FindAllStringIndex(text, -1) {
		arc := textutil.CaptureUntil(text[loc[1]:], captureTerminators)
		if len(arc) < 2 {
			arc = "Unknown"
		}
		out = append(out, Candidate{
			Category:      category,
			Title:         fmt.Sprintf(titleFormat, arc),
			WeekStartDate: weekStart.Format(DateLayout),
			ReleaseDate:   weekStart.Format(DateLayout),
			Notes:         notes,
		})
	}
	return out
}

// RecognizeMainCampaign matches bare "Campaign N, Episode M" schedule
// mentions and emits a placeholder record pending wiki data. Mentions
// inside a cooldown announcement belong to the cooldown recognizer and
// are skipped here.
func RecognizeMainCampaign(text string, weekStart time.Time) []Candidate {
	var out []Candidate
	for _, loc := range mainEpisodeRe.FindAllStringSubmatchIndex(text, -1) {
		windowStart := loc[0] - 60
		if windowStart < 0 {
			windowStart = 0
		}
		if strings.Contains(strings.ToLower(text[windowStart:loc[0]]), "cooldown") {
			continue
		}
		campaignIndex, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		episode := text[loc[4]:loc[5]]
		out = append(out, Candidate{
			Category:      CategoryMainCampaign,
			Campaign:      CampaignName(campaignIndex),
			EpisodeNumber: episode,
			Title:         PlaceholderTitle(campaignIndex, episode),
			WeekStartDate: weekStart.Format(DateLayout),
			ReleaseDate:   weekStart.Format(DateLayout),
			Notes:         WikiPendingNote,
		})
	}
	return out
}

// NewSpecialEvent builds a candidate for one-off content that has no
// structural cue to match on. The title is taken as-is after cleanup.
func NewSpecialEvent(title string, weekStart time.Time) Candidate {
	cleaned := textutil.CleanWikiText(title)
	if cleaned == "" {
		cleaned = "Unknown"
	}
	return Candidate{
		Category:      CategorySpecialEvent,
		Title:         cleaned,
		WeekStartDate: weekStart.Format(DateLayout),
		ReleaseDate:   weekStart.Format(DateLayout),
	}
}

func normalizeRange(number string) string {
	number = strings.ReplaceAll(number, "–", "-")
	parts := strings.Split(number, "-")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return strings.Join(parts, "-")
}
