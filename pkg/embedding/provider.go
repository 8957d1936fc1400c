// Package embedding provides text embedding clients behind a common
// interface, selectable per deployment (hosted Gemini or local Ollama).
package embedding

import "context"

// Provider turns text into a dense vector. Implementations must be safe for
// concurrent use.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
