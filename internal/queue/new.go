package queue

import "github.com/nguyentantai21042004/voice-notes/internal/logger"

type implQueue struct {
	path   string
	logger logger.Logger
}

// NewQueue returns a Queue persisted at path.
func NewQueue(path string, log logger.Logger) Queue {
	return &implQueue{
		path:   path,
		logger: log,
	}
}

type implLedger struct {
	path string
}

// NewLedger returns a Ledger persisted at path.
func NewLedger(path string) Ledger {
	return &implLedger{path: path}
}
