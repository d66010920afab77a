// Package validate runs consistency checks over the episode catalog:
// missing required fields, duplicate ids, malformed dates, URLs, and
// runtimes, plus data-quality checks for aired episodes missing VOD links
// or runtimes.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"crtracker/internal/catalog"
)

// Issue types, ordered roughly by severity.
const (
	TypeMissingField         = "missing_field"
	TypeDuplicate            = "duplicate"
	TypeInvalidDate          = "invalid_date"
	TypeSuspiciousDate       = "suspicious_date"
	TypeInvalidURL           = "invalid_url"
	TypeMissingEpisodeNumber = "missing_episode_number"
	TypeInvalidRuntime       = "invalid_runtime"
	TypeMissingVODURL        = "missing_vod_url"
	TypeMissingRuntime       = "missing_runtime"
)

var (
	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	urlRe     = regexp.MustCompile(`^https?://\S+$`)
	runtimeRe = regexp.MustCompile(`^(\d+:)?\d{1,2}:\d{2}$`)
)

// Issue is one finding against one row (or the store as a whole for
// duplicate ids).
type Issue struct {
	Row     int
	Type    string
	Field   string
	Title   string
	Message string
}

// Catalog runs every check. Row numbers are 1-based over the snapshot
// order; now anchors the "already aired" checks.
func Catalog(snap *catalog.Snapshot, now time.Time) []Issue {
	var issues []Issue
	issues = append(issues, RequiredFields(snap)...)
	issues = append(issues, Duplicates(snap)...)
	issues = append(issues, Dates(snap)...)
	issues = append(issues, URLs(snap)...)
	issues = append(issues, EpisodeNumbers(snap)...)
	issues = append(issues, Runtimes(snap)...)
	issues = append(issues, MissingVODURLs(snap, now)...)
	issues = append(issues, MissingRuntimes(snap, now)...)
	return issues
}

// HasCritical reports whether any issue should fail the run.
func HasCritical(issues []Issue) bool {
	for _, issue := range issues {
		switch issue.Type {
		case TypeDuplicate, TypeInvalidDate, TypeMissingField:
			return true
		}
	}
	return false
}

// RequiredFields flags rows missing episode_id, show_type, title, or
// airdate. Future episodes may legitimately lack an airdate.
func RequiredFields(snap *catalog.Snapshot) []Issue {
	var issues []Issue
	for i, ep := range snap.Episodes {
		row := i + 1
		checks := []struct {
			field string
			value string
		}{
			{"episode_id", ep.EpisodeID},
			{"show_type", ep.ShowType},
			{"title", ep.Title},
			{"airdate", ep.Airdate},
		}
		for _, check := range checks {
			if strings.TrimSpace(check.value) != "" {
				continue
			}
			if check.field == "airdate" && isForthcoming(ep.Notes) {
				continue
			}
			issues = append(issues, Issue{
				Row:     row,
				Type:    TypeMissingField,
				Field:   check.field,
				Title:   titleOrUnknown(ep),
				Message: "missing " + check.field,
			})
		}
	}
	return issues
}

// Duplicates flags episode_ids appearing more than once.
func Duplicates(snap *catalog.Snapshot) []Issue {
	counts := make(map[string]int)
	for _, ep := range snap.Episodes {
		if ep.EpisodeID != "" {
			counts[ep.EpisodeID]++
		}
	}
	var issues []Issue
	for id, count := range counts {
		if count > 1 {
			issues = append(issues, Issue{
				Type:    TypeDuplicate,
				Field:   "episode_id",
				Title:   id,
				Message: fmt.Sprintf("duplicate episode_id appears %d times", count),
			})
		}
	}
	return issues
}

// Dates flags airdates that are not YYYY-MM-DD, and dates whose year is
// implausible for the catalog.
func Dates(snap *catalog.Snapshot) []Issue {
	var issues []Issue
	for i, ep := range snap.Episodes {
		airdate := strings.TrimSpace(ep.Airdate)
		if airdate == "" || airdate == "Forthcoming" {
			continue
		}
		if !isoDateRe.MatchString(airdate) {
			issues = append(issues, Issue{
				Row:     i + 1,
				Type:    TypeInvalidDate,
				Field:   "airdate",
				Title:   titleOrUnknown(ep),
				Message: fmt.Sprintf("invalid date format: %s (expected YYYY-MM-DD)", airdate),
			})
			continue
		}
		if t, err := time.Parse("2006-01-02", airdate); err == nil {
			if t.Year() < 2015 || t.Year() > 2030 {
				issues = append(issues, Issue{
					Row:     i + 1,
					Type:    TypeSuspiciousDate,
					Field:   "airdate",
					Title:   titleOrUnknown(ep),
					Message: fmt.Sprintf("suspicious date (year %d)", t.Year()),
				})
			}
		}
	}
	return issues
}

// URLs flags malformed vod_url and wiki_url values.
func URLs(snap *catalog.Snapshot) []Issue {
	var issues []Issue
	for i, ep := range snap.Episodes {
		for _, check := range []struct {
			field string
			value string
		}{
			{"vod_url", ep.VODURL},
			{"wiki_url", ep.WikiURL},
		} {
			url := strings.TrimSpace(check.value)
			if url == "" || url == "https://www.beacon.tv" {
				continue
			}
			if !urlRe.MatchString(url) {
				issues = append(issues, Issue{
					Row:     i + 1,
					Type:    TypeInvalidURL,
					Field:   check.field,
					Title:   titleOrUnknown(ep),
					Message: "invalid URL format in " + check.field,
				})
			}
		}
	}
	return issues
}

// EpisodeNumbers flags numbered series rows without an episode number.
func EpisodeNumbers(snap *catalog.Snapshot) []Issue {
	var issues []Issue
	for i, ep := range snap.Episodes {
		switch ep.ShowType {
		case "Main Campaign", "Talk Show", "Miniseries":
			if strings.TrimSpace(ep.EpisodeNumber) == "" {
				issues = append(issues, Issue{
					Row:     i + 1,
					Type:    TypeMissingEpisodeNumber,
					Field:   "episode_number",
					Title:   titleOrUnknown(ep),
					Message: "missing episode number for " + ep.ShowType,
				})
			}
		}
	}
	return issues
}

// Runtimes flags runtime values that are neither H:MM:SS nor MM:SS.
func Runtimes(snap *catalog.Snapshot) []Issue {
	var issues []Issue
	for i, ep := range snap.Episodes {
		runtime := strings.TrimSpace(ep.Runtime)
		if runtime == "" || runtime == "0:00:00" {
			continue
		}
		if !runtimeRe.MatchString(runtime) {
			issues = append(issues, Issue{
				Row:     i + 1,
				Type:    TypeInvalidRuntime,
				Field:   "runtime",
				Title:   titleOrUnknown(ep),
				Message: "invalid runtime format: " + runtime,
			})
		}
	}
	return issues
}

// MissingVODURLs flags aired main-campaign episodes with no VOD link.
// Subscription-exclusive rows are skipped.
func MissingVODURLs(snap *catalog.Snapshot, now time.Time) []Issue {
	var issues []Issue
	for i, ep := range snap.Episodes {
		if ep.ShowType != "Main Campaign" || strings.TrimSpace(ep.VODURL) != "" {
			continue
		}
		notes := strings.ToLower(ep.Notes)
		if isForthcoming(ep.Notes) || strings.Contains(notes, "beacon") {
			continue
		}
		if aired(ep.Airdate, now) {
			issues = append(issues, Issue{
				Row:     i + 1,
				Type:    TypeMissingVODURL,
				Field:   "vod_url",
				Title:   titleOrUnknown(ep),
				Message: "aired main campaign episode missing VOD URL",
			})
		}
	}
	return issues
}

// MissingRuntimes flags aired main-campaign episodes with no runtime.
func MissingRuntimes(snap *catalog.Snapshot, now time.Time) []Issue {
	var issues []Issue
	for i, ep := range snap.Episodes {
		if ep.ShowType != "Main Campaign" {
			continue
		}
		runtime := strings.TrimSpace(ep.Runtime)
		if runtime != "" && runtime != "0:00:00" {
			continue
		}
		if isForthcoming(ep.Notes) {
			continue
		}
		if aired(ep.Airdate, now) {
			issues = append(issues, Issue{
				Row:     i + 1,
				Type:    TypeMissingRuntime,
				Field:   "runtime",
				Title:   titleOrUnknown(ep),
				Message: "aired main campaign episode missing runtime",
			})
		}
	}
	return issues
}

func aired(airdate string, now time.Time) bool {
	airdate = strings.TrimSpace(airdate)
	if airdate == "" || airdate == "Forthcoming" {
		return false
	}
	t, err := time.Parse("2006-01-02", airdate)
	if err != nil {
		return false
	}
	return t.Before(now)
}

func isForthcoming(notes string) bool {
	lowered := strings.ToLower(notes)
	return strings.Contains(lowered, "forthcoming") || strings.Contains(lowered, "available soon")
}

func titleOrUnknown(ep *catalog.Episode) string {
	if ep.Title != "" {
		return ep.Title
	}
	return "Unknown"
}
