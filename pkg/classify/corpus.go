package classify

import "math"

// Example is one labeled reference utterance with its embedding.
type Example struct {
	Utterance string
	Intent    Intent
	Vector    []float32
}

// Corpus is the read-only reference set the scope gate compares against. It
// is built once at boot and never mutated afterwards.
type Corpus struct {
	examples []Example
}

func NewCorpus(examples []Example) *Corpus {
	out := make([]Example, 0, len(examples))
	for _, ex := range examples {
		if ex.Utterance == "" || len(ex.Vector) == 0 {
			continue
		}
		out = append(out, ex)
	}
	return &Corpus{examples: out}
}

func (c *Corpus) Len() int {
	return len(c.examples)
}

func (c *Corpus) Examples() []Example {
	return c.examples
}

// MaxSimilarity returns the highest cosine similarity between the query
// vector and any corpus example. An empty corpus scores zero.
func (c *Corpus) MaxSimilarity(query []float32) float64 {
	best := math.Inf(-1)
	for _, ex := range c.examples {
		if s := CosineSimilarity(query, ex.Vector); s > best {
			best = s
		}
	}
	if math.IsInf(best, -1) {
		return 0
	}
	return best
}

// CosineSimilarity computes cosine similarity in [-1, 1]. Mismatched lengths
// and zero vectors score zero.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
