package format

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	input := "**Summary**\n\nMarkets were calm. Details at https://example.com/daily\n\n" +
		"**2. Movers**: Tech led the day.\n\n" +
		"1. AAPL: up on earnings\n2. MSFT\n\n" +
		"References\n1: url: http://example.com/daily\n2: http://www.example.org/movers"

	tree := Format(input)

	// Headed paragraph; paragraph with inline numbered header; list; the
	// "References" prose lines are separated only by single newlines, so
	// they stay one paragraph (inline/reference duplication is accepted);
	// then the extracted references block.
	if len(tree.Blocks) != 5 {
		t.Fatalf("expected 5 blocks, got %d: %#v", len(tree.Blocks), tree.Blocks)
	}

	first := tree.Blocks[0]
	if first.Kind != BlockParagraph || first.Header != "Summary" {
		t.Errorf("block 0: got kind %v header %q, want paragraph headed Summary", first.Kind, first.Header)
	}
	if len(first.Spans) == 0 || first.Spans[0].Text != "Markets were calm. Details at " {
		t.Errorf("block 0 spans = %#v", first.Spans)
	}

	second := tree.Blocks[1]
	if second.InlineHeader != "Movers" || second.Header != "" {
		t.Errorf("block 1: inline header = %q, header = %q; want numbered header inline", second.InlineHeader, second.Header)
	}

	third := tree.Blocks[2]
	if third.Kind != BlockList || len(third.Items) != 2 {
		t.Fatalf("block 2: expected 2-item list, got %#v", third)
	}
	if third.Items[0].Title != "AAPL" || third.Items[1].Title != "" {
		t.Errorf("list titles = %q, %q; want AAPL and none", third.Items[0].Title, third.Items[1].Title)
	}

	last := tree.Blocks[len(tree.Blocks)-1]
	if last.Kind != BlockReferences || len(last.Refs) != 2 {
		t.Fatalf("expected trailing references block with 2 refs, got %#v", last)
	}
	if last.Refs[0].Number != "1" || last.Refs[0].URL != "http://example.com/daily" {
		t.Errorf("ref 0 = %#v", last.Refs[0])
	}
}

func TestFormatNoHeadersFallback(t *testing.T) {
	tree := Format("plain response with no markup")
	if len(tree.Blocks) != 1 {
		t.Fatalf("expected a single paragraph block, got %#v", tree.Blocks)
	}
	b := tree.Blocks[0]
	if b.Kind != BlockParagraph || b.Header != "" || b.InlineHeader != "" {
		t.Errorf("fallback block = %#v, want unheaded paragraph", b)
	}
	if len(b.Spans) != 1 || b.Spans[0].Text != "plain response with no markup" {
		t.Errorf("fallback spans = %#v", b.Spans)
	}
}

func TestFormatEmptyInput(t *testing.T) {
	tree := Format("")
	if len(tree.Blocks) != 0 {
		t.Errorf("expected empty tree for empty input, got %#v", tree.Blocks)
	}
}

func TestFormatErrorTextFlowsThroughPipeline(t *testing.T) {
	// Backend failures are revealed as ordinary content; the formatter
	// must not treat them specially.
	tree := Format("backend unreachable: connection refused")
	if len(tree.Blocks) != 1 || tree.Blocks[0].Kind != BlockParagraph {
		t.Fatalf("error text should render as one paragraph, got %#v", tree.Blocks)
	}
}

// TestFormatReconstruction checks the lossless property: concatenating
// section paragraphs recovers the non-header content.
func TestFormatReconstruction(t *testing.T) {
	input := "**One**\n\nalpha beta\n\ngamma\n\n**Two**\n\ndelta"
	var got []string
	for _, sec := range Segment(input) {
		got = append(got, sec.Paragraphs...)
	}
	want := []string{"alpha beta", "gamma", "delta"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("reconstructed paragraphs = %v, want %v", got, want)
	}
}
