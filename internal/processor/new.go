package processor

import (
	"time"

	"github.com/nguyentantai21042004/voice-notes/internal/backup"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/notion"
	"github.com/nguyentantai21042004/voice-notes/internal/queue"
	"github.com/nguyentantai21042004/voice-notes/internal/source"
	"github.com/nguyentantai21042004/voice-notes/internal/summarizer"
	"github.com/nguyentantai21042004/voice-notes/internal/transcriber"
)

// Deps are the collaborators of the pipeline. Publisher may be nil, in
// which case notes are only backed up.
type Deps struct {
	Resolver    source.Resolver
	Transcriber transcriber.Transcriber
	Summarizer  summarizer.Summarizer
	Backup      backup.Writer
	Publisher   notion.Publisher
	Queue       queue.Queue
	Ledger      queue.Ledger
}

type implProcessor struct {
	deps         Deps
	maxBlockSize int
	logger       logger.Logger
	now          func() time.Time
	onStage      func(item string, stage Stage)
	onItemDone   func(Result)
}

// Option customises a Processor.
type Option func(*implProcessor)

// WithStageHook is called every time an item enters a new stage.
func WithStageHook(fn func(item string, stage Stage)) Option {
	return func(p *implProcessor) {
		p.onStage = fn
	}
}

// WithItemDone is called after each item of ProcessAll.
func WithItemDone(fn func(Result)) Option {
	return func(p *implProcessor) {
		p.onItemDone = fn
	}
}

// New creates a Processor. maxBlockSize bounds converted blocks.
func New(deps Deps, maxBlockSize int, log logger.Logger, opts ...Option) Processor {
	p := &implProcessor{
		deps:         deps,
		maxBlockSize: maxBlockSize,
		logger:       log,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
