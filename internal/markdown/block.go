// Package markdown converts model-produced markdown into typed content
// blocks ready for a block-structured document store.
package markdown

import "strings"

// BlockType names a block variant.
type BlockType string

const (
	Heading   BlockType = "heading"
	Bulleted  BlockType = "bulleted_list_item"
	Numbered  BlockType = "numbered_list_item"
	Quote     BlockType = "quote"
	Code      BlockType = "code"
	Paragraph BlockType = "paragraph"
)

// Run is a span of text sharing one set of inline attributes.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Block is one unit of structured content.
type Block struct {
	Type BlockType
	// Level is 1-3 for headings, 0 otherwise.
	Level int
	Runs  []Run
	// Language is the code fence info string, if any.
	Language string
}

// PlainText returns the block text without attributes.
func (b Block) PlainText() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
