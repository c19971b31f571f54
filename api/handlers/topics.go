package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createTopicRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreateTopic - Opens a new discussion subject for interview rounds
func (h *Handler) CreateTopic(c *gin.Context) {
	var req createTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic data"})
		return
	}

	topic, err := h.store.CreateTopic(c.Request.Context(), req.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, topic)
}

// ListTopics - Returns all topics
func (h *Handler) ListTopics(c *gin.Context) {
	topics, err := h.store.ListTopics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, topics)
}
