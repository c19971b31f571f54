// Package tts converts text to speech. The audio pipeline depends only on the
// Synthesizer interface; the ElevenLabs client is the one concrete backend.
package tts

import "context"

// Synthesizer turns text into a fully materialized audio byte buffer using
// the given vendor voice id.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
}
