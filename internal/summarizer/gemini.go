package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type generateFunc func(ctx context.Context, apiKey, model, instruction, content string) (string, error)

type geminiProvider struct {
	apiKeys    []string
	currentKey int
	model      string
	generate   generateFunc
}

// NewGemini creates a Gemini provider that rotates through the supplied API
// keys when one is rate limited.
func NewGemini(apiKeys []string, model string) Provider {
	return &geminiProvider{
		apiKeys:  apiKeys,
		model:    model,
		generate: callGemini,
	}
}

func (g *geminiProvider) Name() string {
	return "gemini"
}

func (g *geminiProvider) Available() bool {
	return len(g.apiKeys) > 0
}

// Complete rotates API keys on 429 / quota errors.
func (g *geminiProvider) Complete(ctx context.Context, instruction, content string) (string, error) {
	var lastErr error

	for range len(g.apiKeys) {
		key := g.apiKeys[g.currentKey]

		text, err := g.generate(ctx, key, g.model, instruction, content)
		if err == nil {
			return text, nil
		}
		if !isQuotaError(err) {
			return "", err
		}
		lastErr = err
		g.rotateKey()
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *geminiProvider) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func callGemini(ctx context.Context, apiKey, model, instruction, content string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(content), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		return text.String(), nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
