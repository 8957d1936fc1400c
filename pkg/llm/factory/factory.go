// Package factory builds the configured llm.LLMProvider.
package factory

import (
	"fmt"

	"carepal-be/pkg/llm"
	"carepal-be/pkg/llm/gemini"
	"carepal-be/pkg/llm/ollama"
)

type ProviderConfig struct {
	Provider     string
	Model        string
	GeminiAPIKey string
	OllamaURL    string
}

func NewProvider(cfg ProviderConfig) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("gemini provider requires GOOGLE_GEMINI_API_KEY")
		}
		return gemini.NewProvider(cfg.GeminiAPIKey, cfg.Model), nil
	case "ollama":
		return ollama.NewProvider(cfg.OllamaURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %q", cfg.Provider)
	}
}
