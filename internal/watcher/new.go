package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

// Options configures a Watcher.
type Options struct {
	Dir    string
	Filter Filter
	// Settle is how long a file must go without events before it is handled.
	Settle time.Duration
}

type implWatcher struct {
	dir     string
	filter  Filter
	settle  time.Duration
	handler EventHandler
	ledger  Ledger
	logger  logger.Logger
	watcher *fsnotify.Watcher

	pending map[string]time.Time
	handled map[string]struct{}
}

// New creates a Watcher on opts.Dir. Files recorded in ledger are ignored.
func New(opts Options, handler EventHandler, ledger Ledger, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(opts.Dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	settle := opts.Settle
	if settle <= 0 {
		settle = 3 * time.Second
	}

	return &implWatcher{
		dir:     opts.Dir,
		filter:  opts.Filter,
		settle:  settle,
		handler: handler,
		ledger:  ledger,
		logger:  log,
		watcher: watcher,
		pending: make(map[string]time.Time),
		handled: make(map[string]struct{}),
	}, nil
}
