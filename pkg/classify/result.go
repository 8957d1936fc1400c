package classify

// Stage names the pipeline stages, used in fallback records and telemetry.
type Stage string

const (
	StageScopeGate Stage = "scope_gate"
	StageDomain    Stage = "domain"
	StageIntent    Stage = "intent"
)

// Result is the full outcome of classifying one message. Invariant: a
// non-NONE intent implies a non-NONE domain, which implies InScope.
type Result struct {
	InScope          bool     `json:"in_scope"`
	Domain           Domain   `json:"domain"`
	Intent           Intent   `json:"intent"`
	SimilarityScore  float64  `json:"similarity_score"`
	DomainConfidence *float64 `json:"domain_confidence,omitempty"`
	IntentConfidence *float64 `json:"intent_confidence,omitempty"`
	UsedFallback     []Stage  `json:"used_fallback,omitempty"`
}

// FellBack reports whether the given stage resolved via its fallback path.
func (r Result) FellBack(stage Stage) bool {
	for _, s := range r.UsedFallback {
		if s == stage {
			return true
		}
	}
	return false
}

// Resolved reports whether the pipeline produced an actionable intent.
func (r Result) Resolved() bool {
	return r.Intent != IntentNone
}

func confidence(v float64) *float64 {
	return &v
}
