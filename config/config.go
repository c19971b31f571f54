package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultGrokBaseURL       = "https://api.x.ai/v1"
	defaultElevenLabsBaseURL = "https://api.elevenlabs.io"

	// ElevenLabs "Rachel" voice, used for narration when a segment's
	// speaker has no registered agent voice.
	defaultNarratorVoiceID = "21m00Tcm4TlvDq8ikWAM"
)

// Settings holds all environment-sourced configuration. It is built once at
// startup and passed to each component; nothing mutates it afterwards.
type Settings struct {
	SupabaseURL string
	SupabaseKey string

	OpenAIAPIKey    string
	AnthropicAPIKey string
	GeminiAPIKey    string
	GrokAPIKey      string
	GrokBaseURL     string

	ElevenLabsAPIKey  string
	ElevenLabsBaseURL string
	NarratorVoiceID   string

	ListenAddr string
}

// Load reads a .env file if present, then collects settings from the
// environment. An error names the first missing required variable.
func Load() (Settings, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	s := Settings{
		SupabaseURL:       os.Getenv("SUPABASE_URL"),
		SupabaseKey:       os.Getenv("SUPABASE_KEY"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey:   os.Getenv("ANTHROPIC_API_KEY"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GrokAPIKey:        os.Getenv("GROK_API_KEY"),
		GrokBaseURL:       envOrDefault("GROK_BASE_URL", defaultGrokBaseURL),
		ElevenLabsAPIKey:  os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsBaseURL: envOrDefault("ELEVENLABS_BASE_URL", defaultElevenLabsBaseURL),
		NarratorVoiceID:   envOrDefault("NARRATOR_VOICE_ID", defaultNarratorVoiceID),
		ListenAddr:        envOrDefault("LISTEN_ADDR", ":8080"),
	}

	if s.SupabaseURL == "" {
		return Settings{}, fmt.Errorf("SUPABASE_URL environment variable not set")
	}
	if s.SupabaseKey == "" {
		return Settings{}, fmt.Errorf("SUPABASE_KEY environment variable not set")
	}

	optional := []struct {
		name  string
		value string
	}{
		{"OPENAI_API_KEY", s.OpenAIAPIKey},
		{"ANTHROPIC_API_KEY", s.AnthropicAPIKey},
		{"GEMINI_API_KEY", s.GeminiAPIKey},
		{"GROK_API_KEY", s.GrokAPIKey},
		{"ELEVENLABS_API_KEY", s.ElevenLabsAPIKey},
	}
	for _, env := range optional {
		if env.value == "" {
			log.Printf("Warning: %s environment variable not set\n", env.name)
		}
	}

	return s, nil
}

func envOrDefault(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
