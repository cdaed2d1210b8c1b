package generation

import "context"

// Generator is the capability boundary to the external text-generation
// service. It receives a fully rendered prompt and returns the raw text of
// the model's reply.
type Generator interface {
	// Generate submits the prompt and returns the reply text.
	//
	// The returned error wraps one of the sentinel errors in errors.go so
	// that callers can classify failures with errors.Is.
	Generate(ctx context.Context, prompt string) (string, error)
}
