package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/voice-notes/internal/provider"
)

// Summarizer turns a transcript into a structured markdown note.
type Summarizer interface {
	// Summarize returns nil when no provider produced a usable summary.
	Summarize(ctx context.Context, transcript string) *Summary
}

// Provider is an LLM backend taking a system instruction and user content.
type Provider interface {
	provider.Provider
	Complete(ctx context.Context, instruction, content string) (string, error)
}

// Source tells which path produced a Summary.
type Source string

const (
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
	SourceRaw      Source = "raw"
)

// Summary is the markdown body of a note.
type Summary struct {
	Text     string
	Source   Source
	Provider string
}

// Raw wraps an unsummarized transcript as a last-resort Summary.
func Raw(transcript string) *Summary {
	return &Summary{
		Text:   transcript,
		Source: SourceRaw,
	}
}
