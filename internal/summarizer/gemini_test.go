package summarizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiRotatesKeysOnQuota(t *testing.T) {
	var used []string
	g := &geminiProvider{
		apiKeys: []string{"k1", "k2", "k3"},
		model:   "gemini-2.5-pro",
		generate: func(ctx context.Context, key, model, instruction, content string) (string, error) {
			used = append(used, key)
			if key == "k3" {
				return "# done", nil
			}
			return "", errors.New("Error 429: RESOURCE_EXHAUSTED")
		},
	}

	got, err := g.Complete(context.Background(), "sys", "text")
	require.NoError(t, err)
	assert.Equal(t, "# done", got)
	assert.Equal(t, []string{"k1", "k2", "k3"}, used)
	assert.Equal(t, 2, g.currentKey)
}

func TestGeminiStopsOnOtherErrors(t *testing.T) {
	calls := 0
	g := &geminiProvider{
		apiKeys: []string{"k1", "k2"},
		generate: func(ctx context.Context, key, model, instruction, content string) (string, error) {
			calls++
			return "", errors.New("invalid argument")
		},
	}

	_, err := g.Complete(context.Background(), "sys", "text")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestGeminiAllKeysExhausted(t *testing.T) {
	g := &geminiProvider{
		apiKeys: []string{"k1", "k2"},
		generate: func(ctx context.Context, key, model, instruction, content string) (string, error) {
			return "", errors.New("quota exceeded")
		},
	}

	_, err := g.Complete(context.Background(), "sys", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all API keys exhausted")
}

func TestGeminiAvailable(t *testing.T) {
	assert.False(t, NewGemini(nil, "m").Available())
	assert.True(t, NewGemini([]string{"k"}, "m").Available())
	assert.Equal(t, "gemini", NewGemini(nil, "m").Name())
}
