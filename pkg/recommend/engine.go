// Package recommend produces the four suggested follow-up questions shown
// under every assistant reply.
package recommend

import (
	"context"
	"strings"
	"time"

	"carepal-be/internal/entity"
	"carepal-be/internal/pkg/logger"
	"carepal-be/pkg/classify"
	"carepal-be/pkg/llm"
)

// setSize is the contract: a recommendation set always has exactly this many
// distinct non-empty questions.
const setSize = 4

// minQuestionLength filters generation noise (numbering stubs, "Tentu!"
// openers) out of the parsed lines.
const minQuestionLength = 10

type Provenance string

const (
	ProvenanceGenerated Provenance = "GENERATED"
	ProvenanceFallback  Provenance = "FALLBACK_DEFAULT"
)

// Set is an ordered list of exactly four suggestions plus where they came
// from.
type Set struct {
	Questions  []string   `json:"questions"`
	Provenance Provenance `json:"provenance"`
}

// Engine tries a personalized generation first and falls back to the
// deterministic table. Recommend never fails: some valid set always comes
// back.
type Engine struct {
	provider llm.LLMProvider // nil when no generation backend is configured
	table    *Table
	timeout  time.Duration
	logger   logger.ILogger
}

func NewEngine(provider llm.LLMProvider, table *Table, timeout time.Duration, log logger.ILogger) *Engine {
	return &Engine{
		provider: provider,
		table:    table,
		timeout:  timeout,
		logger:   log,
	}
}

// Recommend returns the suggestion set for a customer. last carries the
// session's most recent classification; pass nil when there is none.
func (e *Engine) Recommend(ctx context.Context, userCtx *entity.UserContext, last *classify.Result) Set {
	if e.provider != nil && userCtx != nil && userCtx.HasHistory() {
		if set, ok := e.generate(ctx, userCtx); ok {
			return set
		}
	}
	return e.fallback(last)
}

func (e *Engine) generate(ctx context.Context, userCtx *entity.UserContext) (Set, bool) {
	genCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.provider.Generate(genCtx, buildRecommendationPrompt(userCtx), llm.WithTemperature(0.7))
	if err != nil {
		e.logger.Warn("recommend", "Generation failed, using default table", map[string]interface{}{
			"error": err.Error(),
		})
		return Set{}, false
	}

	questions := parseQuestions(raw)
	if len(questions) < setSize {
		e.logger.Warn("recommend", "Generation returned too few usable questions", map[string]interface{}{
			"usable": len(questions),
		})
		return Set{}, false
	}

	return Set{Questions: questions[:setSize], Provenance: ProvenanceGenerated}, true
}

// fallback assembles the set from the table: intent-specific questions first
// when the last turn resolved an intent, padded from the generic list. The
// generic list alone is enough to fill a set, so this always succeeds.
func (e *Engine) fallback(last *classify.Result) Set {
	questions := make([]string, 0, setSize)
	seen := make(map[string]bool, setSize)

	add := func(q string) {
		q = strings.TrimSpace(q)
		if q == "" || seen[q] || len(questions) >= setSize {
			return
		}
		seen[q] = true
		questions = append(questions, q)
	}

	if last != nil && last.Intent != classify.IntentNone {
		for _, q := range e.table.ByIntent[last.Intent] {
			add(q)
		}
	}
	for _, q := range e.table.Generic {
		add(q)
	}

	return Set{Questions: questions, Provenance: ProvenanceFallback}
}

// parseQuestions extracts candidate questions from raw generation output:
// one per line, stripped of list markers, deduplicated, too-short lines
// dropped.
func parseQuestions(raw string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789. )")
		line = strings.Trim(line, "\"")
		line = strings.TrimSpace(line)
		if len(line) <= minQuestionLength || seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
	}
	return out
}

func buildRecommendationPrompt(userCtx *entity.UserContext) string {
	var sb strings.Builder

	sb.WriteString("Anda membuat saran pertanyaan untuk pasien bernama ")
	sb.WriteString(userCtx.Name)
	sb.WriteString(" pada aplikasi asisten kesehatan.\n")
	sb.WriteString("Riwayat singkat pasien:\n")

	for _, v := range userCtx.RecentVisits {
		sb.WriteString("- Berobat ")
		sb.WriteString(v.VisitDate.Format("02-01-2006"))
		sb.WriteString(": ")
		sb.WriteString(v.Complaint)
		sb.WriteString("\n")
	}
	for _, d := range userCtx.RecentDiagnoses {
		sb.WriteString("- Diagnosis: ")
		sb.WriteString(d.Name)
		sb.WriteString("\n")
	}
	for _, p := range userCtx.RecentPrescriptions {
		sb.WriteString("- Obat: ")
		sb.WriteString(p.DrugName)
		sb.WriteString("\n")
	}
	for _, l := range userCtx.RecentLabResults {
		sb.WriteString("- Lab ")
		sb.WriteString(l.TestType)
		sb.WriteString(": ")
		sb.WriteString(l.ResultValue)
		sb.WriteString("\n")
	}
	if userCtx.ActivePregnancy != nil {
		sb.WriteString("- Sedang hamil (HPHT ")
		sb.WriteString(userCtx.ActivePregnancy.LMPDate.Format("02-01-2006"))
		sb.WriteString(")\n")
	}

	sb.WriteString("\nBuat TEPAT 4 pertanyaan singkat yang kemungkinan besar ingin diajukan pasien ini, ")
	sb.WriteString("dalam Bahasa Indonesia, dari sudut pandang pasien, satu pertanyaan per baris, tanpa nomor dan tanpa penjelasan.")
	return sb.String()
}
