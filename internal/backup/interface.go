package backup

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/markdown"
)

// Writer persists the local copy of a processed note. The markdown file is
// the durable source of truth; publishing happens after it exists.
type Writer interface {
	Write(ctx context.Context, note Note) (*Files, error)
}

// Note is what gets backed up for one item.
type Note struct {
	Title        string
	OriginalFile string
	Body         string
	// Blocks feed the optional .docx twin.
	Blocks      []markdown.Block
	ProcessedAt time.Time
}

// Files lists what was written. Docx is empty when disabled or failed.
type Files struct {
	Markdown string
	Docx     string
}
