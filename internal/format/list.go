package format

import "strings"

// ListItem is one entry of an inline numbered list.
type ListItem struct {
	Number string // literal digit label, display only
	Title  string // emphasized lead-in before the first colon, may be empty
	Body   []Span
}

// ParseNumberedList detects a "N. item" list inside a paragraph. It
// returns the items in line order and true, or nil and false when no line
// matches, in which case the caller renders the paragraph as prose. Lines
// between items that match nothing are folded into the preceding item so
// wrapped item text is not dropped.
func ParseNumberedList(paragraph string) ([]ListItem, bool) {
	type rawItem struct {
		number string
		body   string
	}
	var raws []rawItem
	for _, line := range strings.Split(paragraph, "\n") {
		if number, rest, ok := splitNumberPrefix(line); ok {
			raws = append(raws, rawItem{number: number, body: rest})
			continue
		}
		if len(raws) > 0 && strings.TrimSpace(line) != "" {
			last := &raws[len(raws)-1]
			last.body += " " + strings.TrimSpace(line)
		}
	}
	if len(raws) == 0 {
		return nil, false
	}

	items := make([]ListItem, 0, len(raws))
	for _, r := range raws {
		item := ListItem{Number: r.number}
		if title, desc, ok := splitItemTitle(r.body); ok {
			item.Title = title
			item.Body = Linkify(desc)
		} else {
			item.Body = Linkify(strings.TrimSpace(r.body))
		}
		items = append(items, item)
	}
	return items, true
}

// splitItemTitle splits an item body on its first colon into a non-empty
// title and description. A colon immediately followed by "//" is a URL
// scheme, not a title separator.
func splitItemTitle(body string) (title, desc string, ok bool) {
	idx := strings.Index(body, ":")
	if idx < 0 || strings.HasPrefix(body[idx+1:], "//") {
		return "", "", false
	}
	title = strings.TrimSpace(body[:idx])
	desc = strings.TrimSpace(body[idx+1:])
	if title == "" || desc == "" {
		return "", "", false
	}
	return title, desc, true
}
