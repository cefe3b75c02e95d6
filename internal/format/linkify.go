package format

import (
	"net/url"
	"regexp"
	"strings"
)

// Link is an inline link token with a short display label.
type Link struct {
	URL   string
	Label string
}

// Span is one run of inline content: plain text, or a link when Link is set.
type Span struct {
	Text string
	Link *Link
}

// linkPattern matches a URL occurrence together with its optional
// decoration: a "Source:" or "url:" label and/or wrapping asterisks. The
// decoration is consumed so only the bare URL survives as the link target.
var linkPattern = regexp.MustCompile(`(?i)\*{0,2}(?:(?:source|url):\s*)?\*{0,2}(https?://[^\s*]+)\*{0,2}`)

// linkLabel derives a short display label from a URL: the host with a
// leading "www." stripped. A URL that does not parse falls back to the raw
// text rather than erroring.
func linkLabel(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(u.Host, wwwPrefix)
}

// Linkify splits a text fragment into plain spans and link tokens. Text
// between matches is preserved verbatim, including anything before the
// first match and after the last.
func Linkify(fragment string) []Span {
	matches := linkPattern.FindAllStringSubmatchIndex(fragment, -1)
	if len(matches) == 0 {
		if fragment == "" {
			return nil
		}
		return []Span{{Text: fragment}}
	}

	var spans []Span
	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, Span{Text: fragment[last:m[0]]})
		}
		raw := fragment[m[2]:m[3]]
		spans = append(spans, Span{Link: &Link{URL: raw, Label: linkLabel(raw)}})
		last = m[1]
	}
	if last < len(fragment) {
		spans = append(spans, Span{Text: fragment[last:]})
	}
	return spans
}
