package format

import "strings"

// Grammar constants for the response format. Named so tests can reason
// about the delimiters instead of chasing literals through the scanner.
const (
	boldMarker  = "**" // delimits a section header token
	headerColon = ":"  // optional suffix after the closing marker
	numberedSep = ". " // separates a numeric prefix from header/item text
	refURLLabel = "url:"
	schemeHTTP  = "http://"
	schemeHTTPS = "https://"
	wwwPrefix   = "www."
)

// Section is a header-delimited block of paragraphs.
type Section struct {
	Header     string   // header text, numeric prefix already stripped
	Numbered   bool     // header carried a "N. " prefix; render it inline
	Paragraphs []string // trimmed, in source order, empties dropped
}

// headerToken is one "**header**:" occurrence in the raw text.
type headerToken struct {
	start int // byte offset of the opening marker
	end   int // byte offset just past the closing marker (and colon, if any)
	text  string
}

// scanHeaders finds all header tokens in source order. A token is the
// shortest "**...**" pair whose inner text is non-empty and single-line;
// keeping the match lazy stops one header from swallowing the next.
func scanHeaders(text string) []headerToken {
	var toks []headerToken
	i := 0
	for {
		open := strings.Index(text[i:], boldMarker)
		if open < 0 {
			break
		}
		open += i
		innerStart := open + len(boldMarker)
		close := strings.Index(text[innerStart:], boldMarker)
		if close < 0 {
			break
		}
		close += innerStart

		inner := text[innerStart:close]
		if inner == "" || strings.ContainsRune(inner, '\n') {
			// Not a header token; resume just past the opening marker so
			// the closing pair can still open the next candidate.
			i = innerStart
			continue
		}

		end := close + len(boldMarker)
		if strings.HasPrefix(text[end:], headerColon) {
			end += len(headerColon)
		}
		toks = append(toks, headerToken{start: open, end: end, text: inner})
		i = end
	}
	return toks
}

// splitNumberPrefix splits a leading "N. " prefix off s. It returns the
// digit label, the remainder, and whether the prefix was present.
func splitNumberPrefix(s string) (number, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || !strings.HasPrefix(s[i:], numberedSep) {
		return "", "", false
	}
	return s[:i], s[i+len(numberedSep):], true
}

// splitParagraphs breaks a section body on blank lines. Paragraphs are
// trimmed and empty ones dropped; runs of blank lines collapse into a
// single boundary.
func splitParagraphs(body string) []string {
	var paras []string
	var cur []string
	flush := func() {
		if len(cur) == 0 {
			return
		}
		p := strings.TrimSpace(strings.Join(cur, "\n"))
		if p != "" {
			paras = append(paras, p)
		}
		cur = cur[:0]
	}
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return paras
}

// Segment splits raw text into ordered sections. Each section's body runs
// from the end of its header token up to the next header token. Text with
// no header tokens at all becomes a single unheaded section, as does any
// prose before the first header, so no content is lost.
func Segment(text string) []Section {
	toks := scanHeaders(text)
	if len(toks) == 0 {
		if paras := splitParagraphs(text); len(paras) > 0 {
			return []Section{{Paragraphs: paras}}
		}
		return nil
	}

	var sections []Section
	if paras := splitParagraphs(text[:toks[0].start]); len(paras) > 0 {
		sections = append(sections, Section{Paragraphs: paras})
	}
	for i, tok := range toks {
		bodyEnd := len(text)
		if i+1 < len(toks) {
			bodyEnd = toks[i+1].start
		}
		sec := Section{
			Header:     strings.TrimSpace(tok.text),
			Paragraphs: splitParagraphs(text[tok.end:bodyEnd]),
		}
		if _, rest, ok := splitNumberPrefix(sec.Header); ok {
			sec.Header = rest
			sec.Numbered = true
		}
		sections = append(sections, sec)
	}
	return sections
}
