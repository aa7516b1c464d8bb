package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/voice-notes/internal/provider"
)

// Transcriber turns an audio file into text.
type Transcriber interface {
	// Transcribe chunks the file and sends every chunk to one provider at a
	// time, moving to the next provider only when the whole run fails. It
	// never returns a partial transcript.
	Transcribe(ctx context.Context, path string) (*Transcript, error)
}

// Provider is a speech-to-text backend.
type Provider interface {
	provider.Provider
	TranscribeChunk(ctx context.Context, chunkPath string) (string, error)
}

// Transcript is the joined text of all chunks of one source.
type Transcript struct {
	Text     string
	Chunks   []string
	Provider string
}

// ProgressFunc is called after each chunk is transcribed.
type ProgressFunc func(provider string, done, total int)
