package processor

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/notion"
	"github.com/nguyentantai21042004/voice-notes/internal/summarizer"
)

// Processor runs queue items through the pipeline one at a time.
type Processor interface {
	// Process runs a single item without touching the queue.
	Process(ctx context.Context, item string) Result
	// ProcessNext processes the head of the queue. ok is false when the
	// queue is empty.
	ProcessNext(ctx context.Context, decide DecisionFunc) (res Result, ok bool, err error)
	// ProcessAll works through a snapshot of the queue in order.
	ProcessAll(ctx context.Context, decide DecisionFunc) (Batch, error)
	// ProcessItems processes exactly the given items in order and settles
	// each one against the queue. Other queued items are left alone.
	ProcessItems(ctx context.Context, items []string, decide DecisionFunc) (Batch, error)
}

// DecisionFunc is asked whether a failed item should be dropped from the
// queue anyway. A nil DecisionFunc keeps every failed item.
type DecisionFunc func(item string, err error) bool

// Result describes how far one item got.
type Result struct {
	Item  string
	RunID string
	// Stage is StageDone or StageFailed.
	Stage Stage
	// FailedAt is the stage that failed, when Stage is StageFailed.
	FailedAt Stage
	Err      error

	Title         string
	Transcriber   string
	SummarySource summarizer.Source
	Summarizer    string
	BackupPath    string
	Page          *notion.Result
	// PublishErr is set when the backup was written but publishing failed.
	// The item still counts as processed.
	PublishErr error

	Duration time.Duration
}

// OK reports whether the item finished.
func (r Result) OK() bool {
	return r.Stage == StageDone
}

// Batch summarises a ProcessAll run.
type Batch struct {
	Total     int
	Succeeded int
	Removed   int
	Results   []Result
}
