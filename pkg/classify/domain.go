package classify

import (
	"context"
	"strings"

	"carepal-be/pkg/inference"
)

// KeywordTable is the deterministic substitute for the domain model: a match
// against the pregnancy list selects KEHAMILAN, anything else falls through
// to UMUM. Lists come from config with compiled defaults.
type KeywordTable struct {
	Pregnancy []string
	General   []string
}

// DomainClassifier assigns one of the two domains to an in-scope message.
// When the model is unavailable or errors, it falls back to keyword matching
// so the pipeline always gets a domain.
type DomainClassifier struct {
	state              inference.State
	keywords           KeywordTable
	fallbackConfidence float64
}

func NewDomainClassifier(state inference.State, keywords KeywordTable, fallbackConfidence float64) *DomainClassifier {
	return &DomainClassifier{
		state:              state,
		keywords:           keywords,
		fallbackConfidence: fallbackConfidence,
	}
}

// Classify never fails: the keyword fallback covers model unavailability,
// inference errors and unknown labels. usedFallback reports which path ran.
func (c *DomainClassifier) Classify(ctx context.Context, message string) (domain Domain, confidence float64, usedFallback bool) {
	if model, ok := c.state.Get(); ok {
		scores, err := model.Classify(ctx, message)
		if err == nil {
			if best, ok := inference.ArgMax(scores); ok {
				if d, known := ParseDomain(best.Label); known {
					return d, best.Score, false
				}
			}
		}
	}

	return c.keywordFallback(message), c.fallbackConfidence, true
}

// keywordFallback is deterministic: pregnancy keywords win, everything else
// is general. The general list only exists for telemetry symmetry; a message
// with no keyword match at all still lands in the general domain.
func (c *DomainClassifier) keywordFallback(message string) Domain {
	lowered := strings.ToLower(message)
	for _, kw := range c.keywords.Pregnancy {
		if strings.Contains(lowered, kw) {
			return DomainPregnancy
		}
	}
	return DomainGeneral
}
