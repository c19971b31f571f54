package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Gemini generates text through the Google Gemini API.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates a Gemini generator.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: client}, nil
}

func (g *Gemini) DefaultModel() string {
	return "gemini-1.5-flash"
}

func (g *Gemini) Generate(ctx context.Context, model, systemPrompt, userPrompt string) (string, error) {
	// Concatenating the system prompt is stable across Gemini model
	// generations; the dedicated system_instruction field is not.
	prompt := fmt.Sprintf("System Instruction: %s\n\nUser Question: %s", systemPrompt, userPrompt)

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}
