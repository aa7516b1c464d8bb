package summarizer

import (
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
)

type implSummarizer struct {
	providers []Provider
	prompt    PromptOptions
	logger    logger.Logger
}

// New creates a Summarizer that tries providers in the given order.
func New(providers []Provider, prompt PromptOptions, log logger.Logger) Summarizer {
	return &implSummarizer{
		providers: providers,
		prompt:    prompt,
		logger:    log,
	}
}
