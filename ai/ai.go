// Package ai routes text-generation requests to one of the fixed set of LLM
// vendors. Callers hand it a provider tag, prompts and an optional model and
// always get plain text back; vendor errors and missing credentials degrade to
// inline error strings so a single failing provider never aborts a request.
package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/pacispopuli/radio-backend/config"
	"github.com/pacispopuli/radio-backend/core"
)

// Generator is the capability every vendor client implements: given a model
// and a pair of prompts, return generated text or an error.
type Generator interface {
	Generate(ctx context.Context, model, systemPrompt, userPrompt string) (string, error)
	DefaultModel() string
}

// Service dispatches generation requests to the vendor client matching an
// agent's provider tag. Safe for concurrent use; the generator map is never
// mutated after construction.
type Service struct {
	generators map[core.Provider]Generator
}

// NewService builds a dispatch service with one generator per provider whose
// credential was supplied. Providers without a key are left out so that
// requests for them degrade to a "not configured" message.
func NewService(ctx context.Context, cfg config.Settings) *Service {
	generators := make(map[core.Provider]Generator)

	if cfg.OpenAIAPIKey != "" {
		generators[core.ProviderOpenAI] = NewOpenAI(cfg.OpenAIAPIKey)
	}
	if cfg.AnthropicAPIKey != "" {
		generators[core.ProviderClaude] = NewClaude(cfg.AnthropicAPIKey)
	}
	if cfg.GeminiAPIKey != "" {
		gemini, err := NewGemini(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("Warning: Gemini client init failed, provider disabled: %v\n", err)
		} else {
			generators[core.ProviderGemini] = gemini
		}
	}
	if cfg.GrokAPIKey != "" {
		generators[core.ProviderGrok] = NewGrok(cfg.GrokAPIKey, cfg.GrokBaseURL)
	}

	return &Service{generators: generators}
}

// NewServiceWith builds a dispatch service from explicit generators. Used by
// tests to plug in deterministic fakes.
func NewServiceWith(generators map[core.Provider]Generator) *Service {
	return &Service{generators: generators}
}

// Generate routes the request to the vendor client for provider and returns
// the generated text. It never fails: unknown providers, missing credentials
// and vendor errors all come back as descriptive strings in place of output.
func (s *Service) Generate(ctx context.Context, provider core.Provider, model, systemPrompt, userPrompt string) string {
	if !provider.Valid() {
		return fmt.Sprintf("Error: Unknown provider %s", provider)
	}

	generator, ok := s.generators[provider]
	if !ok {
		return fmt.Sprintf("Error: %s API key not configured.", vendorName(provider))
	}

	if model == "" {
		model = generator.DefaultModel()
	}

	text, err := generator.Generate(ctx, model, systemPrompt, userPrompt)
	if err != nil {
		return fmt.Sprintf("Error generating response from %s: %v", provider, err)
	}
	return text
}

func vendorName(provider core.Provider) string {
	switch provider {
	case core.ProviderOpenAI:
		return "OpenAI"
	case core.ProviderClaude:
		return "Anthropic"
	case core.ProviderGemini:
		return "Gemini"
	case core.ProviderGrok:
		return "Grok"
	}
	return string(provider)
}
