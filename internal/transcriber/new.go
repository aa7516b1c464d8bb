package transcriber

import (
	"github.com/nguyentantai21042004/voice-notes/internal/audio"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

type implTranscriber struct {
	chunker   audio.Chunker
	providers []Provider
	logger    logger.Logger
	progress  ProgressFunc
}

// Option customises a Transcriber.
type Option func(*implTranscriber)

// WithProgress registers a per-chunk progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(t *implTranscriber) {
		t.progress = fn
	}
}

// New creates a Transcriber that tries providers in the given order.
func New(chunker audio.Chunker, providers []Provider, log logger.Logger, opts ...Option) Transcriber {
	t := &implTranscriber{
		chunker:   chunker,
		providers: providers,
		logger:    log,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
