package classify

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1},
		{name: "scaled copy", a: []float32{1, 1}, b: []float32{3, 3}, want: 1},
		{name: "length mismatch", a: []float32{1, 2}, b: []float32{1, 2, 3}, want: 0},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 2}, want: 0},
		{name: "both empty", a: nil, b: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCorpusMaxSimilarity(t *testing.T) {
	corpus := NewCorpus([]Example{
		{Utterance: "a", Intent: IntentANCTracker, Vector: []float32{1, 0, 0}},
		{Utterance: "b", Intent: IntentBloodType, Vector: []float32{0, 1, 0}},
	})

	got := corpus.MaxSimilarity([]float32{0.6, 0.8, 0})
	if math.Abs(got-0.8) > 1e-6 {
		t.Errorf("MaxSimilarity() = %v, want 0.8", got)
	}
}

func TestCorpusMaxSimilarityEmpty(t *testing.T) {
	corpus := NewCorpus(nil)
	if got := corpus.MaxSimilarity([]float32{1, 0}); got != 0 {
		t.Errorf("MaxSimilarity() on empty corpus = %v, want 0", got)
	}
}

func TestNewCorpusFiltersUnusableExamples(t *testing.T) {
	corpus := NewCorpus([]Example{
		{Utterance: "kept", Intent: IntentANCTracker, Vector: []float32{1}},
		{Utterance: "", Intent: IntentANCTracker, Vector: []float32{1}},
		{Utterance: "no vector", Intent: IntentANCTracker},
	})

	if corpus.Len() != 1 {
		t.Errorf("Len() = %d, want 1", corpus.Len())
	}
}
