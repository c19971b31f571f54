// Package handlers implements the HTTP endpoints of the AI radio pipeline.
// Each handler runs its sequence of storage and vendor calls synchronously
// and returns JSON; there is no background processing.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pacispopuli/radio-backend/config"
	"github.com/pacispopuli/radio-backend/core"
	"github.com/pacispopuli/radio-backend/storage"
	"github.com/pacispopuli/radio-backend/tts"
)

// Dispatcher generates text for a provider tag. Failures come back as inline
// strings, never as errors.
type Dispatcher interface {
	Generate(ctx context.Context, provider core.Provider, model, systemPrompt, userPrompt string) string
}

// Handler carries the shared dependencies of every endpoint.
type Handler struct {
	store storage.Store
	llm   Dispatcher
	tts   tts.Synthesizer
	cfg   config.Settings
}

// New builds the endpoint handler set.
func New(store storage.Store, llm Dispatcher, synthesizer tts.Synthesizer, cfg config.Settings) *Handler {
	return &Handler{
		store: store,
		llm:   llm,
		tts:   synthesizer,
		cfg:   cfg,
	}
}

// Root - Service banner
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Radio Pacis Populi API",
	})
}

// Health - Reports which external collaborators are configured
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":                "ok",
		"supabase_configured":   h.cfg.SupabaseURL != "" && h.cfg.SupabaseKey != "",
		"elevenlabs_configured": h.cfg.ElevenLabsAPIKey != "",
		"providers_configured": gin.H{
			"openai": h.cfg.OpenAIAPIKey != "",
			"claude": h.cfg.AnthropicAPIKey != "",
			"gemini": h.cfg.GeminiAPIKey != "",
			"grok":   h.cfg.GrokAPIKey != "",
		},
	})
}
