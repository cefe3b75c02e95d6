package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/AndreiNanescu/FinanceWatcher/internal/format"
)

// ============================================================================
// String Builder Pool - the transcript is re-rendered on every reveal tick
// ============================================================================

var builderPool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

func getBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

func putBuilder(b *strings.Builder) {
	if b.Cap() < 64*1024 { // Don't pool huge builders
		builderPool.Put(b)
	}
}

// ============================================================================
// Render tree -> styled text
// ============================================================================

// RenderTree renders a format tree as styled terminal text wrapped to the
// given width. A non-positive width disables wrapping.
func RenderTree(tree format.Tree, width int) string {
	b := getBuilder()
	defer putBuilder(b)

	wrap := lipgloss.NewStyle()
	if width > 0 {
		wrap = wrap.Width(width)
	}

	for i, block := range tree.Blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(wrap.Render(renderBlock(block)))
	}
	return b.String()
}

// renderBlock renders one block, including its header line or inline
// header label.
func renderBlock(block format.Block) string {
	b := getBuilder()
	defer putBuilder(b)

	if block.Header != "" {
		b.WriteString(styles.Header.Render(block.Header))
		if block.Kind != format.BlockParagraph || len(block.Spans) > 0 {
			b.WriteString("\n")
		}
	}
	if block.InlineHeader != "" {
		b.WriteString(styles.InlineHead.Render(block.InlineHeader + ":"))
		b.WriteString(" ")
	}

	switch block.Kind {
	case format.BlockParagraph:
		b.WriteString(renderSpans(block.Spans))
	case format.BlockList:
		for i, item := range block.Items {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(renderListItem(item))
		}
	case format.BlockReferences:
		b.WriteString(styles.Header.Render("References"))
		for _, ref := range block.Refs {
			b.WriteString("\n")
			b.WriteString(styles.ListNumber.Render(ref.Number + "."))
			b.WriteString(" ")
			b.WriteString(renderLink(ref.URL))
		}
	}
	return b.String()
}

// renderListItem renders "N. Title: body" with the title emphasized.
func renderListItem(item format.ListItem) string {
	b := getBuilder()
	defer putBuilder(b)

	b.WriteString(styles.ListNumber.Render(item.Number + "."))
	b.WriteString(" ")
	if item.Title != "" {
		b.WriteString(styles.ListTitle.Render(item.Title + ":"))
		b.WriteString(" ")
	}
	b.WriteString(renderSpans(item.Body))
	return b.String()
}

// renderSpans renders inline content, styling link tokens as an
// underlined label followed by the dimmed target URL.
func renderSpans(spans []format.Span) string {
	b := getBuilder()
	defer putBuilder(b)

	for _, span := range spans {
		if span.Link == nil {
			b.WriteString(span.Text)
			continue
		}
		b.WriteString(styles.Link.Render(span.Link.Label))
		if span.Link.URL != span.Link.Label {
			b.WriteString(" ")
			b.WriteString(styles.LinkURL.Render("(" + span.Link.URL + ")"))
		}
	}
	return b.String()
}

// renderLink renders a bare URL the same way a link span is shown.
func renderLink(url string) string {
	spans := format.Linkify(url)
	if len(spans) == 0 {
		return url
	}
	return renderSpans(spans)
}
