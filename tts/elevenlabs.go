package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const elevenLabsModel = "eleven_monolingual_v1"

// ElevenLabs synthesizes speech through the ElevenLabs text-to-speech API.
type ElevenLabs struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewElevenLabs creates an ElevenLabs client. baseURL is the API root,
// normally https://api.elevenlabs.io.
func NewElevenLabs(apiKey, baseURL string) *ElevenLabs {
	return &ElevenLabs{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Synthesize posts text to the voice's text-to-speech endpoint and returns
// the complete audio body.
func (e *ElevenLabs) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if e.apiKey == "" {
		return nil, fmt.Errorf("elevenlabs: API key not configured")
	}

	body, err := json.Marshal(synthesisRequest{
		Text:    text,
		ModelID: elevenLabsModel,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", e.baseURL, voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", e.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("elevenlabs: status %d: %s", resp.StatusCode, msg)
	}

	return io.ReadAll(resp.Body)
}
