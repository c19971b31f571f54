package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pacispopuli/radio-backend/core"
	"github.com/pacispopuli/radio-backend/storage"
)

// narratorSpeaker is the fixed fallback role for segments whose speaker has no
// registered agent voice.
const narratorSpeaker = "Reporter"

type audioRequest struct {
	ReportID string `json:"report_id" binding:"required"`
}

// SynthesizeAudio - Turns a persisted report script into one stitched audio
// artifact and records its public URL on the report
func (h *Handler) SynthesizeAudio(c *gin.Context) {
	var req audioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid audio request"})
		return
	}

	ctx := c.Request.Context()

	report, err := h.store.GetReport(ctx, req.ReportID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	segments, err := core.ParseScript(report.NarrativeText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse report script JSON"})
		return
	}

	agents, err := h.store.ListAgents(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	voices := make(map[string]string, len(agents)+1)
	for _, agent := range agents {
		voices[agent.Name] = agent.VoiceID
	}
	voices[narratorSpeaker] = h.cfg.NarratorVoiceID

	var audio bytes.Buffer
	for _, segment := range segments {
		voiceID, ok := voices[segment.Speaker]
		if !ok {
			voiceID = voices[narratorSpeaker]
		}

		chunk, err := h.tts.Synthesize(ctx, segment.Text, voiceID)
		if err != nil {
			// A failed segment is skipped, not retried; the stitched
			// artifact just loses that clip.
			log.Printf("Error generating audio for speaker %q: %v", segment.Speaker, err)
			continue
		}
		if len(chunk) > 0 {
			audio.Write(chunk)
		}
	}

	path := fmt.Sprintf("reports/%s.mp3", report.ID)
	publicURL, err := h.store.UploadAudio(ctx, path, audio.Bytes())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage upload failed: " + err.Error()})
		return
	}

	if err := h.store.SetReportAudioURL(ctx, report.ID, publicURL); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage upload failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"audio_url": publicURL})
}
