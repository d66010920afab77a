package textutil

import (
	"regexp"
	"strings"
)

var (
	editTagPattern   = regexp.MustCompile(`\[edit\]`)
	referencePattern = regexp.MustCompile(`\[\d+\]`)
	emptyBracketsRe  = regexp.MustCompile(`\[\]`)
	episodeCodeRe    = regexp.MustCompile(`\s*\(\d+x\d+\)\s*$`)
)

// CleanWikiText strips wiki formatting artifacts such as [edit] links,
// reference markers like [1], and leftover empty brackets.
func CleanWikiText(text string) string {
	if text == "" {
		return ""
	}
	text = editTagPattern.ReplaceAllString(text, "")
	text = referencePattern.ReplaceAllString(text, "")
	text = emptyBracketsRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// StripEpisodeCode removes a trailing episode code such as "(1x01)" from a
// title taken out of a wiki table cell.
func StripEpisodeCode(title string) string {
	return strings.TrimSpace(episodeCodeRe.ReplaceAllString(title, ""))
}

// TailSegment returns the portion of a title after the last ": " or " - "
// separator. Titles without a separator are returned whole. Used to pull an
// arc or event name out of a composed title like "Backstage Pass - Sydney".
func TailSegment(title string) string {
	title = strings.TrimSpace(title)
	idx := -1
	for _, sep := range []string{": ", " - ", " – ", "| "} {
		if i := strings.LastIndex(title, sep); i > idx {
			idx = i + len(sep) - 1
		}
	}
	if idx < 0 || idx+1 >= len(title) {
		return title
	}
	return strings.TrimSpace(title[idx+1:])
}

// CaptureUntil returns the prefix of text ending at the first sentence
// boundary or terminator word, whichever comes first. Terminators are
// matched as whole lowercase words. Used to bound free-text captures such
// as guest or event names.
func CaptureUntil(text string, terminators []string) string {
	if i := strings.IndexAny(text, ".!?\n"); i >= 0 {
		text = text[:i]
	}
	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	for _, word := range words {
		lowered := strings.ToLower(strings.Trim(word, ",;:"))
		stop := false
		for _, term := range terminators {
			if lowered == term {
				stop = true
				break
			}
		}
		if stop {
			break
		}
		out = append(out, strings.Trim(word, ",;"))
	}
	return strings.Join(out, " ")
}
