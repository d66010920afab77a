package textutil

import (
	"regexp"
	"strings"
)

var (
	slugStripPattern    = regexp.MustCompile(`[^\w\s-]`)
	slugSpacePattern    = regexp.MustCompile(`[\s_]+`)
	slugCollapsePattern = regexp.MustCompile(`-+`)
)

// Slug converts free text into a lowercase URL-safe slug: punctuation is
// dropped, whitespace and underscores become single hyphens.
func Slug(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = slugStripPattern.ReplaceAllString(text, "")
	text = slugSpacePattern.ReplaceAllString(text, "-")
	text = slugCollapsePattern.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}
