package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

var keyFolder = cases.Fold()

// FoldKey case-folds and trims a string for use as a format-tolerant
// comparison key. Unicode case folding is used rather than a plain
// lowercase so guest and arc names with non-ASCII characters compare
// consistently.
func FoldKey(value string) string {
	return keyFolder.String(strings.TrimSpace(value))
}

// FirstToken returns the first whitespace-separated token of a string.
func FirstToken(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
