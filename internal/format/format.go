// Package format turns loosely-structured model responses into a render
// tree: header-delimited sections, paragraphs, inline numbered lists,
// linkified URLs and a trailing reference block. Parsing never fails;
// malformed input degrades to plain paragraphs.
package format

// BlockKind discriminates the Block variants of a render tree.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockList
	BlockReferences
)

// Block is one renderable unit of the tree.
type Block struct {
	Kind         BlockKind
	Header       string      // block title above the content, set on a section's first block
	InlineHeader string      // numbered-header label rendered inline with the content
	Spans        []Span      // BlockParagraph content
	Items        []ListItem  // BlockList content
	Refs         []Reference // BlockReferences content
}

// Tree is the ordered render tree for one response.
type Tree struct {
	Blocks []Block
}

// Format assembles the full pipeline: segment into sections, parse each
// paragraph as a numbered list or linkified prose, then append one
// References block extracted from the entire original text.
func Format(text string) Tree {
	var tree Tree
	for _, sec := range Segment(text) {
		if len(sec.Paragraphs) == 0 && sec.Header != "" {
			// Header with an empty body still renders as a title.
			tree.Blocks = append(tree.Blocks, headedBlock(sec, Block{Kind: BlockParagraph}))
			continue
		}
		for i, para := range sec.Paragraphs {
			var b Block
			if items, ok := ParseNumberedList(para); ok {
				b = Block{Kind: BlockList, Items: items}
			} else {
				b = Block{Kind: BlockParagraph, Spans: Linkify(para)}
			}
			if i == 0 {
				b = headedBlock(sec, b)
			}
			tree.Blocks = append(tree.Blocks, b)
		}
	}
	if refs := ExtractReferences(text); len(refs) > 0 {
		tree.Blocks = append(tree.Blocks, Block{Kind: BlockReferences, Refs: refs})
	}
	return tree
}

// headedBlock attaches a section's header to its first block: inline for
// numbered headers, as a block title otherwise.
func headedBlock(sec Section, b Block) Block {
	if sec.Header == "" {
		return b
	}
	if sec.Numbered {
		b.InlineHeader = sec.Header
	} else {
		b.Header = sec.Header
	}
	return b
}
