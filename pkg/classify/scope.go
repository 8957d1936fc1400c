package classify

import (
	"context"
	"fmt"
	"strings"

	"carepal-be/pkg/embedding"
)

// ScopeGate decides whether a message belongs to the assistant's domain at
// all, by embedding it and comparing against the reference corpus.
type ScopeGate struct {
	embedder  embedding.Provider
	corpus    *Corpus
	threshold float64
}

// NewScopeGate builds a gate. embedder may be nil when no embedding backend
// is configured; Check then reports ErrModelUnavailable and the pipeline
// applies its degraded-mode policy.
func NewScopeGate(embedder embedding.Provider, corpus *Corpus, threshold float64) *ScopeGate {
	return &ScopeGate{
		embedder:  embedder,
		corpus:    corpus,
		threshold: threshold,
	}
}

// Check returns whether the message clears the similarity threshold, together
// with the best similarity score observed. Negative similarity is simply
// below every sane threshold; it is not special-cased.
func (g *ScopeGate) Check(ctx context.Context, message string) (bool, float64, error) {
	if strings.TrimSpace(message) == "" {
		return false, 0, nil
	}
	if g.embedder == nil {
		return false, 0, ErrModelUnavailable
	}

	vec, err := g.embedder.Embed(ctx, message)
	if err != nil {
		return false, 0, fmt.Errorf("%w: %v", ErrInference, err)
	}

	score := g.corpus.MaxSimilarity(vec)
	return score >= g.threshold, score, nil
}
