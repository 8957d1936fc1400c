// Package inference talks to a hosted text-classification endpoint and wraps
// its availability in an explicit state, so callers can tell "model is not
// deployed" apart from "model answered".
package inference

import "context"

// LabelScore is one entry of the score distribution a classifier returns.
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier scores a single text against the model's label set. The returned
// slice is the full distribution, not just the winner.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]LabelScore, error)
}

// ArgMax picks the highest-scoring label. ok is false for an empty
// distribution.
func ArgMax(scores []LabelScore) (LabelScore, bool) {
	if len(scores) == 0 {
		return LabelScore{}, false
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best, true
}
