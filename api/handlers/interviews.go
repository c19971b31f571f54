package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pacispopuli/radio-backend/core"
	"github.com/pacispopuli/radio-backend/storage"
)

type interviewRequest struct {
	TopicID string `json:"topic_id" binding:"required"`
}

// InterviewAnswer is one agent's slot in an interview round. A provider
// failure shows up here as an error string, never as a missing slot.
type InterviewAnswer struct {
	Agent    string `json:"agent"`
	Response string `json:"response"`
}

// interviewModel returns the model override used for interview rounds, or ""
// to use the provider default.
func interviewModel(provider core.Provider) string {
	switch provider {
	case core.ProviderOpenAI:
		return "gpt-4-turbo-preview"
	case core.ProviderClaude:
		return "claude-3-sonnet-20240229"
	}
	return ""
}

// ConductInterviews - Asks every persona the topic question, one LLM call per
// agent, and persists each answer
func (h *Handler) ConductInterviews(c *gin.Context) {
	var req interviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview request"})
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

	agents, err := h.store.ListAgents(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	answers := make([]InterviewAnswer, 0, len(agents))
	for _, agent := range agents {
		systemPrompt := fmt.Sprintf("You are %s. %s. Answer the following question in character.", agent.Name, agent.Bio)

		answer := h.llm.Generate(ctx, agent.Provider, interviewModel(agent.Provider), systemPrompt, topic.Title)

		answers = append(answers, InterviewAnswer{
			Agent:    agent.Name,
			Response: answer,
		})

		if err := h.store.InsertInterview(ctx, core.InterviewResponse{
			TopicID: topic.ID,
			AgentID: agent.ID,
			Text:    answer,
		}); err != nil {
			// The caller still gets this agent's answer; only the row is lost.
			log.Printf("Failed to store interview for %s: %v", agent.Name, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"topic_id":  topic.ID,
		"topic":     topic.Title,
		"responses": answers,
	})
}
