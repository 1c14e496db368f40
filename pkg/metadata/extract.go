package metadata

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// MaxTitleLength is the maximum number of characters kept from a title.
	MaxTitleLength = 200
	// MaxDescriptionLength is the maximum number of characters kept from a description.
	MaxDescriptionLength = 500

	ellipsis = "..."
)

// candidate is a single extraction attempt. An empty attr means the element text is used.
type candidate struct {
	query string
	attr  string
}

//nolint: gochecknoglobals
var (
	titleCandidates = []candidate{
		{query: `meta[property="og:title"]`, attr: "content"},
		{query: `meta[name="twitter:title"]`, attr: "content"},
		{query: "title"},
	}
	descriptionCandidates = []candidate{
		{query: `meta[property="og:description"]`, attr: "content"},
		{query: `meta[name="twitter:description"]`, attr: "content"},
		{query: `meta[name="description"]`, attr: "content"},
	}
)

// Extract returns the normalized and truncated title and description found in
// doc. Candidates are tried in priority order and the first non-empty one wins;
// nil is returned for a field without any usable candidate.
func Extract(doc *goquery.Document) (title *string, description *string) {
	if t := firstMatch(doc, titleCandidates); t != "" {
		t = Truncate(t, MaxTitleLength)
		title = &t
	}
	if d := firstMatch(doc, descriptionCandidates); d != "" {
		d = Truncate(d, MaxDescriptionLength)
		description = &d
	}

	return title, description
}

func firstMatch(doc *goquery.Document, candidates []candidate) string {
	for _, c := range candidates {
		sel := doc.Find(c.query).First()
		if sel.Length() == 0 {
			continue
		}

		var value string
		if c.attr == "" {
			value = sel.Text()
		} else {
			value, _ = sel.Attr(c.attr)
		}

		if value = NormalizeSpace(value); value != "" {
			return value
		}
	}

	return ""
}

// NormalizeSpace collapses every run of whitespace (including newlines and
// tabs) into a single space and trims both ends.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most maxLen characters. Longer values keep their
// first maxLen-3 characters followed by "...".
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}
