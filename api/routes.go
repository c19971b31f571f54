package api

import (
	"github.com/gin-gonic/gin"
	"github.com/pacispopuli/radio-backend/api/handlers"
)

// SetupRoutes initializes all API endpoints
func SetupRoutes(router *gin.Engine, h *handlers.Handler) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	agents := router.Group("/agents")
	{
		agents.POST("/seed", h.SeedAgents)
		agents.GET("/", h.ListAgents)
	}

	topics := router.Group("/topics")
	{
		topics.POST("/", h.CreateTopic)
		topics.GET("/", h.ListTopics)
	}

	router.POST("/interviews/conduct", h.ConductInterviews)
	router.POST("/reports/generate", h.GenerateReport)
	router.POST("/audio/synthesize", h.SynthesizeAudio)
}
