package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"carepal-be/pkg/inference"
)

func TestDomainClassifierPrefersModel(t *testing.T) {
	c := NewDomainClassifier(
		inference.Loaded(&fakeClassifier{scores: []inference.LabelScore{
			label("KEHAMILAN", 0.3), label("UMUM", 0.7),
		}}),
		defaultKeywords(), 0.5,
	)

	// Keyword would say pregnancy; the model wins.
	domain, conf, fellBack := c.Classify(context.Background(), "obat untuk ibu hamil")

	assert.Equal(t, DomainGeneral, domain)
	assert.InDelta(t, 0.7, conf, 1e-6)
	assert.False(t, fellBack)
}

func TestDomainClassifierKeywordFallback(t *testing.T) {
	tests := []struct {
		name    string
		state   inference.State
		message string
		want    Domain
	}{
		{
			name:    "model unavailable with pregnancy keyword",
			state:   inference.Unavailable(),
			message: "Kapan jadwal ANC saya?",
			want:    DomainPregnancy,
		},
		{
			name:    "model unavailable without pregnancy keyword",
			state:   inference.Unavailable(),
			message: "Siapa dokter saya?",
			want:    DomainGeneral,
		},
		{
			name:    "model errors",
			state:   inference.Loaded(&fakeClassifier{err: errors.New("timeout")}),
			message: "riwayat persalinan saya",
			want:    DomainPregnancy,
		},
		{
			name: "model returns unknown label",
			state: inference.Loaded(&fakeClassifier{scores: []inference.LabelScore{
				label("LAINNYA", 0.99),
			}}),
			message: "hasil lab saya",
			want:    DomainGeneral,
		},
		{
			name:    "keyword match is case insensitive",
			state:   inference.Unavailable(),
			message: "USIA KEHAMILAN SAYA BERAPA?",
			want:    DomainPregnancy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewDomainClassifier(tt.state, defaultKeywords(), 0.5)

			domain, conf, fellBack := c.Classify(context.Background(), tt.message)

			assert.Equal(t, tt.want, domain)
			assert.InDelta(t, 0.5, conf, 1e-6)
			assert.True(t, fellBack)
		})
	}
}

func TestIntentClassifierRoutesByDomain(t *testing.T) {
	c := NewIntentClassifier(
		inference.Loaded(&fakeClassifier{scores: []inference.LabelScore{label("anc_tracker", 0.9)}}),
		inference.Loaded(&fakeClassifier{scores: []inference.LabelScore{label("jadwal_dokter", 0.8)}}),
	)

	it, conf, err := c.Classify(context.Background(), "kunjungan anc", DomainPregnancy)
	assert.NoError(t, err)
	assert.Equal(t, IntentANCTracker, it)
	assert.InDelta(t, 0.9, conf, 1e-6)

	it, conf, err = c.Classify(context.Background(), "jadwal dokter", DomainGeneral)
	assert.NoError(t, err)
	assert.Equal(t, IntentDoctorSchedule, it)
	assert.InDelta(t, 0.8, conf, 1e-6)
}

func TestIntentClassifierFailsClosed(t *testing.T) {
	tests := []struct {
		name    string
		c       *IntentClassifier
		domain  Domain
		wantErr error
	}{
		{
			name:    "model unavailable",
			c:       NewIntentClassifier(inference.Unavailable(), inference.Unavailable()),
			domain:  DomainPregnancy,
			wantErr: ErrModelUnavailable,
		},
		{
			name: "inference error",
			c: NewIntentClassifier(
				inference.Loaded(&fakeClassifier{err: errors.New("boom")}),
				inference.Unavailable()),
			domain:  DomainPregnancy,
			wantErr: ErrInference,
		},
		{
			name: "empty distribution",
			c: NewIntentClassifier(
				inference.Loaded(&fakeClassifier{}),
				inference.Unavailable()),
			domain:  DomainPregnancy,
			wantErr: ErrInference,
		},
		{
			name: "label from the other domain",
			c: NewIntentClassifier(
				inference.Loaded(&fakeClassifier{scores: []inference.LabelScore{label("jadwal_dokter", 0.95)}}),
				inference.Unavailable()),
			domain:  DomainPregnancy,
			wantErr: ErrLabelOutOfDomain,
		},
		{
			name: "unknown label",
			c: NewIntentClassifier(
				inference.Unavailable(),
				inference.Loaded(&fakeClassifier{scores: []inference.LabelScore{label("intent_baru", 0.95)}})),
			domain:  DomainGeneral,
			wantErr: ErrLabelOutOfDomain,
		},
		{
			name:    "domain NONE has no model",
			c:       NewIntentClassifier(inference.Unavailable(), inference.Unavailable()),
			domain:  DomainNone,
			wantErr: ErrModelUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, _, err := tt.c.Classify(context.Background(), "pesan", tt.domain)

			assert.Equal(t, IntentNone, it)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
