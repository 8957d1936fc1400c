package classify

import (
	"context"

	"carepal-be/internal/pkg/logger"
)

// Pipeline runs the three stages in order with early exit. It never returns
// an error: every degraded path collapses into a well-formed Result with the
// fallback recorded, so one flaky model can never take the chat down.
type Pipeline struct {
	gate    *ScopeGate
	domains *DomainClassifier
	intents *IntentClassifier
	logger  logger.ILogger
}

func NewPipeline(gate *ScopeGate, domains *DomainClassifier, intents *IntentClassifier, log logger.ILogger) *Pipeline {
	return &Pipeline{
		gate:    gate,
		domains: domains,
		intents: intents,
		logger:  log,
	}
}

// Classify produces the definitive Result for one message.
func (p *Pipeline) Classify(ctx context.Context, message string) Result {
	result := Result{
		InScope: false,
		Domain:  DomainNone,
		Intent:  IntentNone,
	}

	inScope, score, err := p.gate.Check(ctx, message)
	result.SimilarityScore = score
	if err != nil {
		// Degraded gate: fail closed to out-of-scope rather than let
		// unvetted messages through, and make the substitution visible.
		p.logger.Warn("classify", "Scope gate degraded, rejecting message", map[string]interface{}{
			"error": err.Error(),
		})
		result.UsedFallback = append(result.UsedFallback, StageScopeGate)
		return result
	}
	if !inScope {
		return result
	}

	result.InScope = true

	domain, domainConf, domainFellBack := p.domains.Classify(ctx, message)
	result.Domain = domain
	result.DomainConfidence = confidence(domainConf)
	if domainFellBack {
		result.UsedFallback = append(result.UsedFallback, StageDomain)
		p.logger.Warn("classify", "Domain model unavailable, used keyword fallback", map[string]interface{}{
			"domain": string(domain),
		})
	}

	intent, intentConf, err := p.intents.Classify(ctx, message, domain)
	if err != nil {
		// Fail closed: in scope, domain known, intent unresolved.
		result.UsedFallback = append(result.UsedFallback, StageIntent)
		p.logger.Warn("classify", "Intent unresolved, failing closed", map[string]interface{}{
			"domain": string(domain),
			"error":  err.Error(),
		})
		return result
	}

	result.Intent = intent
	result.IntentConfidence = confidence(intentConf)
	return result
}
