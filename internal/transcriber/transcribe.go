package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/voice-notes/internal/provider"
)

const chunkSeparator = "\n\n"

func (t *implTranscriber) Transcribe(ctx context.Context, path string) (*Transcript, error) {
	t.logger.Info(ctx, "Transcribing audio file: %s", path)

	out, err := provider.First(ctx, t.logger, "transcription", t.providers,
		func(ctx context.Context, p Provider) (*Transcript, error) {
			return t.transcribeWith(ctx, p, path)
		})
	if err != nil {
		return nil, fmt.Errorf("transcribe %s: %w", filepath.Base(path), err)
	}

	out.Value.Provider = out.Provider
	if out.Fallback() {
		t.logger.Warn(ctx, "Transcription used fallback provider %s", out.Provider)
	}
	return out.Value, nil
}

// transcribeWith runs the whole file through one provider. Chunks are
// rebuilt per provider and submitted one at a time so the joined text keeps
// chunk order.
func (t *implTranscriber) transcribeWith(ctx context.Context, p Provider, path string) (*Transcript, error) {
	set, err := t.chunker.Chunk(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("chunk audio: %w", err)
	}
	defer func() {
		if err := set.Close(); err != nil {
			t.logger.Warn(ctx, "Failed to remove chunk dir: %v", err)
		}
	}()

	if set.Len() == 0 {
		return nil, fmt.Errorf("chunk audio: no chunks produced")
	}

	texts := make([]string, 0, set.Len())
	for i, chunkPath := range set.Paths {
		t.logger.Info(ctx, "Transcribing chunk %d/%d with %s", i+1, set.Len(), p.Name())

		text, err := p.TranscribeChunk(ctx, chunkPath)
		if err != nil {
			return nil, fmt.Errorf("chunk %d/%d: %w", i+1, set.Len(), err)
		}
		texts = append(texts, strings.TrimSpace(text))

		if t.progress != nil {
			t.progress(p.Name(), i+1, set.Len())
		}
	}

	joined := strings.Join(texts, chunkSeparator)
	if strings.TrimSpace(joined) == "" {
		return nil, provider.ErrEmptyResponse
	}

	return &Transcript{Text: joined, Chunks: texts}, nil
}
