// Package tts defines the capability boundary to an external speech
// synthesis service. Implementations live under internal/platform; tests
// substitute a deterministic stub.
package tts

import "context"

// Synthesizer converts a short text into spoken audio.
type Synthesizer interface {
	// Synthesize returns the MP3-encoded pronunciation of text in the given
	// language (an IETF tag such as "ru" or "en").
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}
