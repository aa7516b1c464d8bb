package watcher

import "context"

// Watcher monitors the voice-notes folder and hands finished recordings to
// a handler, one at a time.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one new audio file.
type EventHandler func(ctx context.Context, filePath string) error

// Ledger is the part of the processed ledger the watcher reads.
type Ledger interface {
	Entries() (map[string]struct{}, error)
}
