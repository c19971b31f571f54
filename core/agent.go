package core

import "time"

// Provider identifies which LLM vendor answers for an agent.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderClaude Provider = "claude"
	ProviderGemini Provider = "gemini"
	ProviderGrok   Provider = "grok"
)

// Providers lists every supported provider tag.
var Providers = []Provider{ProviderOpenAI, ProviderClaude, ProviderGemini, ProviderGrok}

// Valid reports whether p is one of the fixed provider tags.
func (p Provider) Valid() bool {
	switch p {
	case ProviderOpenAI, ProviderClaude, ProviderGemini, ProviderGrok:
		return true
	}
	return false
}

// Agent represents one AI radio persona: a named character with a biography,
// an assigned TTS voice and an assigned LLM provider.
type Agent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	VoiceID   string    `json:"voice_id"`
	Provider  Provider  `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}

// AgentSeed is an agent definition as it appears in the bundled seed file,
// before the store assigns an id.
type AgentSeed struct {
	Name     string   `json:"name"`
	Bio      string   `json:"bio"`
	VoiceID  string   `json:"voice_id"`
	Provider Provider `json:"provider"`
}
