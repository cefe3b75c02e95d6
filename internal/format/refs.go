package format

import "strings"

// Reference is one entry of a trailing "N: url" reference list.
type Reference struct {
	Number string // literal captured label, not necessarily sequential
	URL    string
}

// ExtractReferences scans text line by line for references of the shape
// optional-asterisk, digits, colon, optional "url:" label, then an http(s)
// URL. The label and scheme match case-insensitively, and a reference may
// sit at the tail of a prose line. URLs already linkified in the body may
// reappear here; the format accepts that duplication.
func ExtractReferences(text string) []Reference {
	var refs []Reference
	for _, line := range strings.Split(text, "\n") {
		refs = append(refs, scanRefLine(line)...)
	}
	return refs
}

// scanRefLine finds every reference occurrence on a single line, in order.
func scanRefLine(line string) []Reference {
	var refs []Reference
	i := 0
	for i < len(line) {
		if !isDigit(line[i]) {
			i++
			continue
		}
		// A label must begin the line or follow whitespace or the
		// optional asterisk, so "v2:" style tokens are not picked up.
		if i > 0 && !isRefBoundary(line[i-1]) {
			i++
			for i < len(line) && isDigit(line[i]) {
				i++
			}
			continue
		}
		number, url, next, ok := matchRef(line, i)
		if !ok {
			i++
			continue
		}
		refs = append(refs, Reference{Number: number, URL: url})
		i = next
	}
	return refs
}

// matchRef attempts to match digits, colon, optional "url:" label and an
// http(s) URL starting at position i. It returns the captured label and
// URL plus the position just past the match.
func matchRef(line string, i int) (number, url string, next int, ok bool) {
	j := i
	for j < len(line) && isDigit(line[j]) {
		j++
	}
	number = line[i:j]
	if j >= len(line) || line[j] != ':' {
		return "", "", 0, false
	}
	j++
	j = skipSpaces(line, j)
	if hasFoldPrefix(line[j:], refURLLabel) {
		j += len(refURLLabel)
		j = skipSpaces(line, j)
	}
	if !hasFoldPrefix(line[j:], schemeHTTP) && !hasFoldPrefix(line[j:], schemeHTTPS) {
		return "", "", 0, false
	}
	end := j
	for end < len(line) && line[end] != ' ' && line[end] != '\t' && line[end] != '\r' {
		end++
	}
	return number, line[j:end], end, true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isRefBoundary(c byte) bool {
	return c == ' ' || c == '\t' || c == '*'
}

func skipSpaces(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// hasFoldPrefix reports whether s begins with prefix, ignoring case.
func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
