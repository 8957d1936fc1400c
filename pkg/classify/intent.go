package classify

import (
	"context"
	"fmt"

	"carepal-be/pkg/inference"
)

// IntentClassifier resolves the concrete intent within an already-decided
// domain. Each domain has its own model. There is no keyword fallback here:
// acting on a guessed intent would surface the wrong medical records, so the
// stage fails closed and the caller reports intent NONE.
type IntentClassifier struct {
	pregnancy inference.State
	general   inference.State
}

func NewIntentClassifier(pregnancy, general inference.State) *IntentClassifier {
	return &IntentClassifier{
		pregnancy: pregnancy,
		general:   general,
	}
}

func (c *IntentClassifier) stateFor(domain Domain) inference.State {
	switch domain {
	case DomainPregnancy:
		return c.pregnancy
	case DomainGeneral:
		return c.general
	default:
		return inference.Unavailable()
	}
}

// Classify returns the winning intent for the domain, or an error when the
// model is unavailable, inference fails, or the predicted label is not tagged
// with the active domain.
func (c *IntentClassifier) Classify(ctx context.Context, message string, domain Domain) (Intent, float64, error) {
	model, ok := c.stateFor(domain).Get()
	if !ok {
		return IntentNone, 0, ErrModelUnavailable
	}

	scores, err := model.Classify(ctx, message)
	if err != nil {
		return IntentNone, 0, fmt.Errorf("%w: %v", ErrInference, err)
	}

	best, ok := inference.ArgMax(scores)
	if !ok {
		return IntentNone, 0, fmt.Errorf("%w: empty distribution", ErrInference)
	}

	it, known := ParseIntent(best.Label)
	if !known || DomainOf(it) != domain {
		return IntentNone, 0, fmt.Errorf("%w: %q for domain %s", ErrLabelOutOfDomain, best.Label, domain)
	}

	return it, best.Score, nil
}
