package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pacispopuli/radio-backend/core"
	"github.com/pacispopuli/radio-backend/data"
)

// SeedAgents - Upserts the bundled persona roster, keyed on name
func (h *Handler) SeedAgents(c *gin.Context) {
	var seeds []core.AgentSeed
	if err := json.Unmarshal(data.AgentsJSON, &seeds); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid bundled agents file: " + err.Error()})
		return
	}

	for _, seed := range seeds {
		if !seed.Provider.Valid() {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Invalid provider tag in bundled agents file: " + string(seed.Provider),
			})
			return
		}
	}

	agents, err := h.store.UpsertAgents(c.Request.Context(), seeds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, agents)
}

// ListAgents - Returns all agent rows
func (h *Handler) ListAgents(c *gin.Context) {
	agents, err := h.store.ListAgents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, agents)
}
