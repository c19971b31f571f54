package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pacispopuli/radio-backend/core"
	"github.com/pacispopuli/radio-backend/storage"
)

// reporterSystemPrompt instructs the reporter model to return a raw JSON
// script. The reply is persisted as-is; parsing is deferred to the audio
// endpoint.
const reporterSystemPrompt = "You are a Radio Reporter synthesizing a consensus report. " +
	"Create a script that alternates between your narration and direct quotes from the interviewed personas. " +
	"The script should be formatted as a list of segments, e.g., " +
	`[{"speaker": "Reporter", "text": "..."}, {"speaker": "The Concerned Mother", "text": "..."}]. ` +
	"Return ONLY the raw JSON list."

// reporterModel pins report synthesis to one provider for consistency of the
// narration voice.
const (
	reporterProvider = core.ProviderOpenAI
	reporterModel    = "gpt-4-turbo-preview"
)

type reportRequest struct {
	TopicID string `json:"topic_id" binding:"required"`
}

// GenerateReport - Synthesizes a speaker-tagged narration script from a
// topic's interview responses and persists it
func (h *Handler) GenerateReport(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report request"})
		return
	}

	ctx := c.Request.Context()

	topic, err := h.store.GetTopic(ctx, req.TopicID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	interviews, err := h.store.ListInterviews(ctx, topic.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var context strings.Builder
	fmt.Fprintf(&context, "Topic: %s\n\nInterviews:\n", topic.Title)
	for _, interview := range interviews {
		name := interview.AgentName
		if name == "" {
			name = "Unknown Agent"
		}
		fmt.Fprintf(&context, "- %s: %s\n", name, interview.Text)
	}

	script := h.llm.Generate(ctx, reporterProvider, reporterModel, reporterSystemPrompt, context.String())
	script = core.StripCodeFences(script)

	report, err := h.store.InsertReport(ctx, topic.ID, script)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, []core.ConsensusReport{report})
}
