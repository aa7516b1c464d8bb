package summarizer

import (
	"context"
	"fmt"
	"sync"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/ollama"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// langchainProvider adapts any langchaingo model. The model is built on
// first use so an unconfigured provider costs nothing.
type langchainProvider struct {
	name      string
	available bool
	maxTokens int
	build     func() (contentGenerator, error)

	once    sync.Once
	llm     contentGenerator
	initErr error
}

// NewAnthropic creates a Claude provider.
func NewAnthropic(apiKey, model string, maxTokens int) Provider {
	return &langchainProvider{
		name:      "anthropic",
		available: apiKey != "",
		maxTokens: maxTokens,
		build: func() (contentGenerator, error) {
			return anthropic.New(anthropic.WithToken(apiKey), anthropic.WithModel(model))
		},
	}
}

// NewOllama creates a provider for a local Ollama server.
func NewOllama(serverURL, model string, maxTokens int) Provider {
	return &langchainProvider{
		name:      "ollama",
		available: serverURL != "",
		maxTokens: maxTokens,
		build: func() (contentGenerator, error) {
			return ollama.New(ollama.WithModel(model), ollama.WithServerURL(serverURL))
		},
	}
}

func (l *langchainProvider) Name() string {
	return l.name
}

func (l *langchainProvider) Available() bool {
	return l.available
}

func (l *langchainProvider) Complete(ctx context.Context, instruction, content string) (string, error) {
	l.once.Do(func() {
		l.llm, l.initErr = l.build()
	})
	if l.initErr != nil {
		return "", fmt.Errorf("initialize %s: %w", l.name, l.initErr)
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, instruction),
		llms.TextParts(llms.ChatMessageTypeHuman, content),
	}

	var opts []llms.CallOption
	if l.maxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(l.maxTokens))
	}

	resp, err := l.llm.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", fmt.Errorf("%s generate: %w", l.name, err)
	}
	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return "", fmt.Errorf("%s returned no choices", l.name)
	}
	return resp.Choices[0].Content, nil
}
