package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"carepal-be/pkg/inference"
)

// nopLogger satisfies logger.ILogger for tests.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakeEmbedder returns a fixed vector or a fixed error.
type fakeEmbedder struct {
	vector []float32
	err    error
}

func (f *fakeEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

// fakeClassifier returns a fixed distribution or a fixed error.
type fakeClassifier struct {
	scores []inference.LabelScore
	err    error
}

func (f *fakeClassifier) Classify(ctx context.Context, text string) ([]inference.LabelScore, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.scores, nil
}

func label(name string, score float64) inference.LabelScore {
	return inference.LabelScore{Label: name, Score: score}
}

// testCorpus is a one-example corpus along a single axis, so the similarity
// score of a query is easy to reason about.
func testCorpus() *Corpus {
	return NewCorpus([]Example{
		{Utterance: "Kapan jadwal kontrol kehamilan saya?", Intent: IntentANCReminder, Vector: []float32{1, 0, 0}},
	})
}

func defaultKeywords() KeywordTable {
	return KeywordTable{
		Pregnancy: []string{"hamil", "kehamilan", "kandungan", "anc", "persalinan"},
		General:   []string{"dokter", "obat", "lab"},
	}
}

func newTestPipeline(embedder *fakeEmbedder, domainModel, pregnancyModel, generalModel inference.State) *Pipeline {
	gate := NewScopeGate(embedder, testCorpus(), 0.7)
	domains := NewDomainClassifier(domainModel, defaultKeywords(), 0.5)
	intents := NewIntentClassifier(pregnancyModel, generalModel)
	return NewPipeline(gate, domains, intents, nopLogger{})
}

func TestPipelineHappyPath(t *testing.T) {
	p := newTestPipeline(
		&fakeEmbedder{vector: []float32{1, 0, 0}},
		inference.Loaded(&fakeClassifier{scores: []inference.LabelScore{
			label("UMUM", 0.2), label("KEHAMILAN", 0.8),
		}}),
		inference.Loaded(&fakeClassifier{scores: []inference.LabelScore{
			label("anc_tracker", 0.1), label("reminder_kontrol_kehamilan", 0.9),
		}}),
		inference.Unavailable(),
	)

	result := p.Classify(context.Background(), "Kapan jadwal kontrol kehamilan saya?")

	assert.True(t, result.InScope)
	assert.Equal(t, DomainPregnancy, result.Domain)
	assert.Equal(t, IntentANCReminder, result.Intent)
	assert.InDelta(t, 1.0, result.SimilarityScore, 1e-6)
	assert.Empty(t, result.UsedFallback)
	if assert.NotNil(t, result.DomainConfidence) {
		assert.InDelta(t, 0.8, *result.DomainConfidence, 1e-6)
	}
	if assert.NotNil(t, result.IntentConfidence) {
		assert.InDelta(t, 0.9, *result.IntentConfidence, 1e-6)
	}
}

func TestPipelineOutOfScopeIsTerminal(t *testing.T) {
	// Query orthogonal to the corpus: similarity 0, well below threshold.
	domainModel := &fakeClassifier{scores: []inference.LabelScore{label("UMUM", 0.9)}}
	p := newTestPipeline(
		&fakeEmbedder{vector: []float32{0, 1, 0}},
		inference.Loaded(domainModel),
		inference.Unavailable(),
		inference.Unavailable(),
	)

	result := p.Classify(context.Background(), "Berapa harga saham hari ini?")

	assert.False(t, result.InScope)
	assert.Equal(t, DomainNone, result.Domain)
	assert.Equal(t, IntentNone, result.Intent)
	assert.Empty(t, result.UsedFallback)
	assert.Nil(t, result.DomainConfidence)
	assert.Nil(t, result.IntentConfidence)
}

func TestPipelineDomainKeywordFallback(t *testing.T) {
	// Domain model unavailable, message carries a pregnancy keyword.
	p := newTestPipeline(
		&fakeEmbedder{vector: []float32{1, 0, 0}},
		inference.Unavailable(),
		inference.Loaded(&fakeClassifier{scores: []inference.LabelScore{
			label("riwayat_suplemen_kehamilan", 0.7),
		}}),
		inference.Unavailable(),
	)

	result := p.Classify(context.Background(), "Apa itu diabetes saat kehamilan?")

	assert.True(t, result.InScope)
	assert.Equal(t, DomainPregnancy, result.Domain)
	assert.Equal(t, []Stage{StageDomain}, result.UsedFallback)
	assert.True(t, result.FellBack(StageDomain))
	if assert.NotNil(t, result.DomainConfidence) {
		assert.InDelta(t, 0.5, *result.DomainConfidence, 1e-6)
	}
	assert.Equal(t, IntentSupplementHistory, result.Intent)
}

func TestPipelineIntentFailsClosed(t *testing.T) {
	tests := []struct {
		name      string
		pregnancy inference.State
	}{
		{
			name:      "model unavailable",
			pregnancy: inference.Unavailable(),
		},
		{
			name:      "inference error",
			pregnancy: inference.Loaded(&fakeClassifier{err: errors.New("endpoint 503")}),
		},
		{
			name: "label outside active domain",
			pregnancy: inference.Loaded(&fakeClassifier{scores: []inference.LabelScore{
				label("jadwal_dokter", 0.9),
			}}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPipeline(
				&fakeEmbedder{vector: []float32{1, 0, 0}},
				inference.Loaded(&fakeClassifier{scores: []inference.LabelScore{label("KEHAMILAN", 0.9)}}),
				tt.pregnancy,
				inference.Unavailable(),
			)

			result := p.Classify(context.Background(), "Kapan jadwal kontrol kehamilan saya?")

			assert.True(t, result.InScope)
			assert.Equal(t, DomainPregnancy, result.Domain)
			assert.Equal(t, IntentNone, result.Intent)
			assert.True(t, result.FellBack(StageIntent))
			assert.False(t, result.Resolved())
			assert.Nil(t, result.IntentConfidence)
		})
	}
}

func TestPipelineDegradedGateFailsClosed(t *testing.T) {
	tests := []struct {
		name     string
		embedder *fakeEmbedder
		gateNil  bool
	}{
		{name: "embedding error", embedder: &fakeEmbedder{err: errors.New("quota exceeded")}},
		{name: "no embedding backend", gateNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gate *ScopeGate
			if tt.gateNil {
				gate = NewScopeGate(nil, testCorpus(), 0.7)
			} else {
				gate = NewScopeGate(tt.embedder, testCorpus(), 0.7)
			}
			domains := NewDomainClassifier(inference.Unavailable(), defaultKeywords(), 0.5)
			intents := NewIntentClassifier(inference.Unavailable(), inference.Unavailable())
			p := NewPipeline(gate, domains, intents, nopLogger{})

			result := p.Classify(context.Background(), "Kapan jadwal kontrol kehamilan saya?")

			assert.False(t, result.InScope)
			assert.Equal(t, DomainNone, result.Domain)
			assert.Equal(t, IntentNone, result.Intent)
			assert.Equal(t, []Stage{StageScopeGate}, result.UsedFallback)
		})
	}
}

func TestPipelineIsDeterministic(t *testing.T) {
	p := newTestPipeline(
		&fakeEmbedder{vector: []float32{1, 0, 0}},
		inference.Unavailable(),
		inference.Loaded(&fakeClassifier{scores: []inference.LabelScore{
			label("anc_tracker", 0.6), label("riwayat_persalinan", 0.4),
		}}),
		inference.Unavailable(),
	)

	first := p.Classify(context.Background(), "Bagaimana perkembangan kehamilan saya?")
	second := p.Classify(context.Background(), "Bagaimana perkembangan kehamilan saya?")

	assert.Equal(t, first.InScope, second.InScope)
	assert.Equal(t, first.Domain, second.Domain)
	assert.Equal(t, first.Intent, second.Intent)
	assert.Equal(t, first.UsedFallback, second.UsedFallback)
}

// The structural invariant: a resolved intent implies a resolved domain, which
// implies the message was in scope.
func TestPipelineResultInvariant(t *testing.T) {
	pipelines := []*Pipeline{
		newTestPipeline(&fakeEmbedder{vector: []float32{1, 0, 0}},
			inference.Loaded(&fakeClassifier{scores: []inference.LabelScore{label("KEHAMILAN", 0.9)}}),
			inference.Loaded(&fakeClassifier{scores: []inference.LabelScore{label("anc_tracker", 0.8)}}),
			inference.Unavailable()),
		newTestPipeline(&fakeEmbedder{vector: []float32{0, 1, 0}},
			inference.Unavailable(), inference.Unavailable(), inference.Unavailable()),
		newTestPipeline(&fakeEmbedder{err: errors.New("down")},
			inference.Unavailable(), inference.Unavailable(), inference.Unavailable()),
	}

	for _, p := range pipelines {
		result := p.Classify(context.Background(), "Bagaimana kunjungan ANC saya?")
		if result.Intent != IntentNone {
			assert.NotEqual(t, DomainNone, result.Domain)
		}
		if result.Domain != DomainNone {
			assert.True(t, result.InScope)
		}
	}
}

func TestPipelineEmptyMessage(t *testing.T) {
	p := newTestPipeline(
		&fakeEmbedder{vector: []float32{1, 0, 0}},
		inference.Unavailable(),
		inference.Unavailable(),
		inference.Unavailable(),
	)

	result := p.Classify(context.Background(), "   ")

	assert.False(t, result.InScope)
	assert.Empty(t, result.UsedFallback)
}
