// Package llm abstracts the text generation backend behind a provider
// interface with functional options, so services never depend on a concrete
// vendor client.
package llm

import "context"

// Message is one turn of a chat-style exchange.
type Message struct {
	Role    string // "user", "assistant" or "system"
	Content string
}

// LLMProvider is the generation contract. Generate is single-prompt, Chat is
// multi-turn. Both honor context cancellation, which is how callers bound the
// generation timeout.
type LLMProvider interface {
	Generate(ctx context.Context, prompt string, opts ...Option) (string, error)
	Chat(ctx context.Context, messages []Message, opts ...Option) (string, error)
}

// Options collect per-call overrides.
type Options struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

type Option func(*Options)

func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

func WithTemperature(t float64) Option {
	return func(o *Options) { o.Temperature = t }
}

func WithMaxTokens(n int) Option {
	return func(o *Options) { o.MaxTokens = n }
}

// ApplyOptions folds opts over the provider defaults.
func ApplyOptions(defaults Options, opts []Option) Options {
	out := defaults
	for _, opt := range opts {
		opt(&out)
	}
	return out
}
