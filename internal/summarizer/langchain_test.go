package summarizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeGenerator struct {
	messages []llms.MessageContent
	resp     *llms.ContentResponse
	err      error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.messages = messages
	return f.resp, f.err
}

func TestLangchainComplete(t *testing.T) {
	gen := &fakeGenerator{resp: &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: "# From Claude"}},
	}}
	builds := 0
	p := &langchainProvider{
		name:      "anthropic",
		available: true,
		maxTokens: 4000,
		build: func() (contentGenerator, error) {
			builds++
			return gen, nil
		},
	}

	for range 2 {
		got, err := p.Complete(context.Background(), "instruction", "transcript")
		require.NoError(t, err)
		assert.Equal(t, "# From Claude", got)
	}

	assert.Equal(t, 1, builds)
	require.Len(t, gen.messages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, gen.messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, gen.messages[1].Role)
}

func TestLangchainErrors(t *testing.T) {
	tests := []struct {
		name  string
		build func() (contentGenerator, error)
	}{
		{
			name: "init fails",
			build: func() (contentGenerator, error) {
				return nil, errors.New("missing token")
			},
		},
		{
			name: "generate fails",
			build: func() (contentGenerator, error) {
				return &fakeGenerator{err: errors.New("overloaded")}, nil
			},
		},
		{
			name: "no choices",
			build: func() (contentGenerator, error) {
				return &fakeGenerator{resp: &llms.ContentResponse{}}, nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &langchainProvider{name: "ollama", available: true, build: tt.build}
			_, err := p.Complete(context.Background(), "a", "b")
			assert.Error(t, err)
		})
	}
}

func TestLangchainAvailability(t *testing.T) {
	assert.False(t, NewAnthropic("", "claude", 100).Available())
	assert.True(t, NewAnthropic("key", "claude", 100).Available())
	assert.False(t, NewOllama("", "mistral", 100).Available())
	assert.Equal(t, "ollama", NewOllama("http://localhost:11434", "mistral", 100).Name())
}
