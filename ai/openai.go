package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI generates text through the OpenAI chat completions API.
type OpenAI struct {
	client *openai.Client
}

// NewOpenAI creates an OpenAI generator.
func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{client: openai.NewClient(apiKey)}
}

// NewOpenAIWithBaseURL creates an OpenAI generator against a non-default
// endpoint. Used by tests and by any OpenAI-compatible backend.
func NewOpenAIWithBaseURL(apiKey, baseURL string) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &OpenAI{client: openai.NewClientWithConfig(cfg)}
}

func (o *OpenAI) DefaultModel() string {
	return "gpt-4-turbo"
}

func (o *OpenAI) Generate(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
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
