package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Grok generates text through xAI's OpenAI-compatible chat completions API.
type Grok struct {
	client *openai.Client
}

// NewGrok creates a Grok generator pointed at the given xAI base URL.
func NewGrok(apiKey, baseURL string) *Grok {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &Grok{client: openai.NewClientWithConfig(cfg)}
}

func (g *Grok) DefaultModel() string {
	return "grok-beta"
}

func (g *Grok) Generate(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
