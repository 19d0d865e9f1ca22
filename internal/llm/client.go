package llm

import "context"

// Client is the seam between domain services and the model backend, so tests
// can swap in fakes and the backend can change without touching callers.
type Client interface {
	// GenerateText runs a text-only prompt and returns the raw model output.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateVision runs a prompt against an inline image.
	GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)

	// EmbedText returns the embedding vector for a piece of text.
	EmbedText(ctx context.Context, text string) ([]float64, error)
}
