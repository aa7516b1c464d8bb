package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type openAIProvider struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAI creates a chat-completion provider. baseURL may be empty.
func NewOpenAI(apiKey, model, baseURL string) Provider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &openAIProvider{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

func (o *openAIProvider) Name() string {
	return "openai"
}

func (o *openAIProvider) Available() bool {
	return o.apiKey != ""
}

func (o *openAIProvider) Complete(ctx context.Context, instruction, content string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instruction},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
