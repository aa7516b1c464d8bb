package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/voice-notes/internal/provider"
)

func (s *implSummarizer) Summarize(ctx context.Context, transcript string) *Summary {
	if strings.TrimSpace(transcript) == "" {
		s.logger.Error(ctx, "No text provided for summarization")
		return nil
	}

	instruction := LoadPrompt(s.prompt)

	out, err := provider.First(ctx, s.logger, "summarization", s.providers,
		func(ctx context.Context, p Provider) (string, error) {
			s.logger.Info(ctx, "Summarizing text with %s...", p.Name())
			resp, err := p.Complete(ctx, instruction, transcript)
			if err != nil {
				return "", err
			}
			cleaned := CleanResponse(resp)
			if cleaned == "" {
				return "", fmt.Errorf("%s: %w", p.Name(), provider.ErrEmptyResponse)
			}
			return cleaned, nil
		})
	if err != nil {
		s.logger.Warn(ctx, "No summary available: %v", err)
		return nil
	}

	src := SourcePrimary
	if out.Fallback() {
		src = SourceFallback
	}
	return &Summary{
		Text:     out.Value,
		Source:   src,
		Provider: out.Provider,
	}
}
