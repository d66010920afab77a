package wiki

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	youtubeURLRe   = regexp.MustCompile(`https?://(?:www\.)?youtube\.com/watch\?v=[\w-]+|https?://youtu\.be/[\w-]+`)
	infoboxTimeRe  = regexp.MustCompile(`(?i)(?:runtime|length|duration)[:\s]*(\d+:\d{2}:\d{2}|\d+:\d{2})`)
	pageRuntimeRe  = regexp.MustCompile(`(?i)runtime[:\s]*(\d+:\d{2}:\d{2})`)
	infoboxFilters = []string{"aside.portable-infobox", "table.infobox"}
)

// PageDetails holds the enrichment fields mined from one episode page.
type PageDetails struct {
	VODURL  string
	Runtime string
}

// ParsePage extracts the VOD link and runtime from an episode's wiki page.
// Fields the page does not carry stay empty.
func ParsePage(html string) (PageDetails, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return PageDetails{}, fmt.Errorf("parse episode page: %w", err)
	}
	return PageDetails{
		VODURL:  extractVODURL(doc),
		Runtime: extractRuntime(doc),
	}, nil
}

func extractVODURL(doc *goquery.Document) string {
	var url string
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if m := youtubeURLRe.FindString(href); m != "" {
			url = m
			return false
		}
		return true
	})
	if url != "" {
		return url
	}
	return youtubeURLRe.FindString(doc.Text())
}

func extractRuntime(doc *goquery.Document) string {
	for _, selector := range infoboxFilters {
		box := doc.Find(selector).First()
		if box.Length() == 0 {
			continue
		}
		if m := infoboxTimeRe.FindStringSubmatch(box.Text()); m != nil {
			return normalizeRuntime(m[1])
		}
	}
	if m := pageRuntimeRe.FindStringSubmatch(doc.Text()); m != nil {
		return m[1]
	}
	return ""
}

// normalizeRuntime pads a MM:SS infobox value to H:MM:SS.
func normalizeRuntime(runtime string) string {
	if strings.Count(runtime, ":") == 1 {
		return "0:" + runtime
	}
	return runtime
}
