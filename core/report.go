package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Topic is one discussion subject driving an interview round.
type Topic struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// InterviewResponse is one persona's answer to a topic. Rows are append-only:
// repeating a round for the same topic adds responses, it never overwrites.
type InterviewResponse struct {
	ID        string    `json:"id,omitempty"`
	TopicID   string    `json:"topic_id"`
	AgentID   string    `json:"agent_id"`
	AgentName string    `json:"agent_name,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ConsensusReport is a synthesized, speaker-tagged narration script for a
// topic. NarrativeText holds the raw script string as returned by the LLM;
// AudioURL is filled in later by the audio endpoint.
type ConsensusReport struct {
	ID            string    `json:"id"`
	TopicID       string    `json:"topic_id"`
	NarrativeText string    `json:"narrative_text"`
	AudioURL      string    `json:"audio_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Segment is one speaker/text unit within a report's script, mapped to one
// synthesized audio clip.
type Segment struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// ParseScript decodes a report's narrative text into its ordered segments.
func ParseScript(script string) ([]Segment, error) {
	var segments []Segment
	if err := json.Unmarshal([]byte(script), &segments); err != nil {
		return nil, fmt.Errorf("parse report script: %w", err)
	}
	return segments, nil
}

// StripCodeFences removes a wrapping markdown code fence from an LLM reply.
// Models regularly return the requested JSON inside a ```json block even when
// told not to.
func StripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
