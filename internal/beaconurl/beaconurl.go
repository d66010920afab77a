// Package beaconurl predicts streaming-service content URLs from the
// naming patterns observed across published cooldown and companion
// episodes. Predictions are starting points for manual verification, not
// guaranteed links.
package beaconurl

import (
	"fmt"
	"strings"

	"crtracker/internal/textutil"
)

const baseURL = "https://beacon.tv/content/"

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Generate returns the predicted URL for a cooldown or companion episode.
// Each published series follows its own slug convention; unknown series
// fall back to a slug built from the series name.
func Generate(series, episodeNumber, title string) string {
	// Campaign 3 cooldowns: 3-{ep}-cr-cooldown-c3-e{ep}
	if strings.HasPrefix(episodeNumber, "C3x") {
		ep := strings.TrimPrefix(episodeNumber, "C3x")
		return fmt.Sprintf("%s3-%s-cr-cooldown-c3-e%s", baseURL, ep, ep)
	}

	// Campaign 4 cooldowns zero-pad to three digits.
	if strings.HasPrefix(episodeNumber, "C4x") {
		ep := strings.TrimPrefix(episodeNumber, "C4x")
		for len(ep) < 3 {
			ep = "0" + ep
		}
		return fmt.Sprintf("%scr-cooldown-c4-e%s", baseURL, ep)
	}

	if series == "Age of Umbra" && isDigits(episodeNumber) {
		return fmt.Sprintf("%sage-of-umbra-cooldown-e%s", baseURL, episodeNumber)
	}

	// The published URL says "wildings", not "wildlings".
	if strings.Contains(series, "Wildemount Wildlings") && isDigits(episodeNumber) {
		return fmt.Sprintf("%swildemount-wildings-cooldown-e%s", baseURL, episodeNumber)
	}

	if series == "Thresher" && isDigits(episodeNumber) {
		return fmt.Sprintf("%sthresher-cooldown-e%s", baseURL, episodeNumber)
	}

	if strings.Contains(episodeNumber, "E4x") && strings.Contains(title, "Divergence") {
		ep := strings.TrimPrefix(episodeNumber, "E4x")
		return fmt.Sprintf("%sexu-cooldown-divergence-e%s", baseURL, ep)
	}

	if url, ok := specialTitleURL(title); ok {
		return url
	}

	if series == "Inside The Mighty Nein" {
		return insideMightyNeinURL(episodeNumber, title)
	}

	// Specials without a numeric episode get a slug from the title.
	if strings.Contains(episodeNumber, "Special") || !isDigits(episodeNumber) {
		cleaned := strings.TrimSpace(strings.NewReplacer("Cooldown:", "", "(Special)", "").Replace(title))
		return baseURL + "cr-cooldown-" + textutil.Slug(cleaned)
	}

	return fmt.Sprintf("%s%s-cooldown-e%s", baseURL, textutil.Slug(series), episodeNumber)
}

// specialTitleURL covers one-off events whose published slugs do not
// follow any series convention.
func specialTitleURL(title string) (string, bool) {
	switch {
	case strings.Contains(title, "Menagerie Returns"):
		return baseURL + "daggerheart-cooldown-the-menagerie-returns-live-one-shot-open-beta", true
	case strings.Contains(title, "Ménagerie a Trois"), strings.Contains(title, "Menagerie a Trois"):
		return baseURL + "cr-cooldown-dh-03-menagerie-a-trois", true
	case strings.Contains(title, "Candela") && strings.Contains(title, "Silver Screen"):
		return baseURL + "candela-obscura-cooldown-candela-obscura-live-the-circle-of-the-silver-screen", true
	case strings.Contains(title, "Jester and Fjord"), strings.Contains(title, "Fjord's Wedding"):
		return baseURL + "cr-cooldown-jester-and-fjords-wedding-live-from-radio-city-music-hall", true
	default:
		return "", false
	}
}

func insideMightyNeinURL(episodeNumber, title string) string {
	switch {
	case strings.Contains(title, "Premiere Cocktail Party"):
		return baseURL + "inside-the-mighty-nein-premiere-cocktail-party"
	case strings.Contains(episodeNumber, "1-5"), strings.Contains(title, "Episodes 1-5"):
		return baseURL + "inside-the-mighty-nein-episodes-1-5"
	case strings.Contains(episodeNumber, "6-8"), strings.Contains(title, "Episodes 6-8"):
		return baseURL + "inside-the-mighty-nein-episodes-6-8"
	default:
		return baseURL + textutil.Slug(title)
	}
}
