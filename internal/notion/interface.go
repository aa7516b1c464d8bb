package notion

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/markdown"
)

// Publisher creates pages in a Notion database.
type Publisher interface {
	Publish(ctx context.Context, page Page) (*Result, error)
}

// Page is one note to publish.
type Page struct {
	Title  string
	Date   time.Time
	Blocks []markdown.Block
}

// Result identifies the created page.
type Result struct {
	PageID string
	URL    string
}
