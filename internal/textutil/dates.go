package textutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// wikiDateFormats lists airdate layouts observed in wiki tables, most
// common first.
var wikiDateFormats = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	"2 January 2006",
	"2 Jan 2006",
}

var (
	runtimeFullRe  = regexp.MustCompile(`(\d+):(\d{2}):(\d{2})`)
	runtimeShortRe = regexp.MustCompile(`(\d+):(\d{2})`)
)

// ParseDate normalizes an airdate string to YYYY-MM-DD. Strings that match
// none of the known layouts are returned as-is so callers can surface them
// during validation instead of losing them.
func ParseDate(value string) string {
	value = CleanWikiText(value)
	if value == "" {
		return ""
	}
	for _, layout := range wikiDateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return value
}

// ParseRuntime normalizes a runtime string to H:MM:SS. A MM:SS value gains
// a ":00" seconds suffix to stay comparable; unparseable input is returned
// unchanged.
func ParseRuntime(value string) string {
	value = CleanWikiText(value)
	if value == "" {
		return ""
	}
	if m := runtimeFullRe.FindStringSubmatch(value); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%d:%s:%s", hours, m[2], m[3])
	}
	if m := runtimeShortRe.FindStringSubmatch(value); m != nil {
		return fmt.Sprintf("%s:%s:00", m[1], m[2])
	}
	return value
}

// Ordinal returns the English ordinal suffix for a day of month
// (1st, 2nd, 3rd, 4th, ..., 11th-13th th).
func Ordinal(day int) string {
	if day%100 >= 10 && day%100 <= 20 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
