package transcriber

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// whisperAPI talks to an OpenAI-compatible /audio/transcriptions endpoint.
// OpenAI and Groq both speak it.
type whisperAPI struct {
	name   string
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAI creates the OpenAI Whisper provider.
func NewOpenAI(apiKey, model string) Provider {
	return newWhisperAPI("openai", apiKey, model, "")
}

// NewGroq creates the Groq Whisper provider.
func NewGroq(apiKey, model, baseURL string) Provider {
	return newWhisperAPI("groq", apiKey, model, baseURL)
}

func newWhisperAPI(name, apiKey, model, baseURL string) *whisperAPI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &whisperAPI{
		name:   name,
		apiKey: apiKey,
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

func (w *whisperAPI) Name() string {
	return w.name
}

func (w *whisperAPI) Available() bool {
	return w.apiKey != ""
}

func (w *whisperAPI) TranscribeChunk(ctx context.Context, chunkPath string) (string, error) {
	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: chunkPath,
	})
	if err != nil {
		return "", fmt.Errorf("%s transcription: %w", w.name, err)
	}
	return strings.TrimSpace(resp.Text), nil
}
