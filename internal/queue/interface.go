package queue

import "context"

// Queue is the durable FIFO list of items waiting to be processed.
type Queue interface {
	Load() ([]string, error)
	Save(items []string) error
	// Add appends items not already queued and reports what happened to each.
	Add(ctx context.Context, items ...string) ([]AddResult, error)
	// Remove deletes the first matching entry. It reports whether one existed.
	Remove(ctx context.Context, item string) (bool, error)
	Clear(ctx context.Context) error
	// Next returns the head of the queue without removing it.
	Next() (string, bool, error)
}

// Ledger is the append-only record of completed items.
type Ledger interface {
	MarkProcessed(item string) error
	IsProcessed(item string) (bool, error)
	Entries() (map[string]struct{}, error)
}

// AddResult describes the outcome of adding one item.
type AddResult struct {
	Item      string
	Duplicate bool
}
