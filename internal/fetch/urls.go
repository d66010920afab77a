package fetch

import (
	"fmt"
	"strings"
	"time"

	"crtracker/internal/textutil"
)

const (
	critroleURLBase = "https://critrole.com/programming-schedule-week-of"
	beaconURLBase   = "https://beacon.tv/content/programming-schedule-week-of"
	// Beacon sometimes republishes the critrole.com slug verbatim under
	// its own host, URL-mangled into the path.
	beaconPrefixedURLBase = "https://beacon.tv/content/https-critrole-com-programming-schedule-week-of"

	// SourceCritrole and SourceBeacon label which site a schedule page
	// came from; candidates extracted from it carry the label.
	SourceCritrole = "critrole"
	SourceBeacon   = "beacon"
)

// Variant is one URL spelling for a schedule page and the source label
// for candidates extracted from it.
type Variant struct {
	URL    string
	Source string
}

// WeekPage is one weekly schedule page: the Monday it covers and the URL
// spellings to try, most likely first.
type WeekPage struct {
	WeekStart time.Time
	Variants  []Variant
}

// ScheduleURLs generates one WeekPage per Monday between start and end,
// inclusive. A start that is not a Monday advances to the next one.
// Each page lists the critrole.com spellings first, then the beacon.tv
// family including the previous-year fallbacks that cover schedules
// posted across a new-year boundary.
func ScheduleURLs(start, end time.Time) []WeekPage {
	current := start
	for current.Weekday() != time.Monday {
		current = current.AddDate(0, 0, 1)
	}

	var pages []WeekPage
	for !current.After(end) {
		pages = append(pages, WeekPage{
			WeekStart: current,
			Variants:  weekVariants(current),
		})
		current = current.AddDate(0, 0, 7)
	}
	return pages
}

func weekVariants(monday time.Time) []Variant {
	return []Variant{
		{URL: critroleURL(monday, true), Source: SourceCritrole},
		{URL: critroleURL(monday, false), Source: SourceCritrole},
		{URL: beaconURL(beaconURLBase, monday, monday.Year()), Source: SourceBeacon},
		{URL: beaconURL(beaconPrefixedURLBase, monday, monday.Year()), Source: SourceBeacon},
		{URL: beaconURL(beaconURLBase, monday, monday.Year()-1), Source: SourceBeacon},
		{URL: beaconURL(beaconPrefixedURLBase, monday, monday.Year()-1), Source: SourceBeacon},
	}
}

// critroleURL spells the schedule URL for a Monday. Pages are usually
// titled "week-of-may-13th-2024" but some omit the ordinal suffix.
func critroleURL(monday time.Time, ordinal bool) string {
	suffix := ""
	if ordinal {
		suffix = textutil.Ordinal(monday.Day())
	}
	return fmt.Sprintf("%s-%s-%d%s-%d/", critroleURLBase, monthSlug(monday), monday.Day(), suffix, monday.Year())
}

// beaconURL spells a beacon.tv schedule URL. The year is a parameter
// because early-January pages occasionally keep the previous year in
// their slug.
func beaconURL(base string, monday time.Time, year int) string {
	return fmt.Sprintf("%s-%s-%d%s-%d", base, monthSlug(monday), monday.Day(), textutil.Ordinal(monday.Day()), year)
}

func monthSlug(monday time.Time) string {
	return strings.ToLower(monday.Month().String())
}
