package grounding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"carepal-be/internal/entity"
	"carepal-be/pkg/classify"
)

func TestBuildResponsePromptWithRecords(t *testing.T) {
	b := NewPromptBuilder()
	customer := &entity.Customer{Name: "Siti Aminah"}
	ictx := &IntentContext{
		Description: classify.Describe(classify.IntentBloodType),
		Sections: []Section{
			{
				Title: "Data Pasien",
				Records: []Record{
					{{Key: "Nama", Value: "Siti Aminah"}, {Key: "Golongan Darah", Value: "O"}},
				},
			},
		},
	}

	prompt := b.BuildResponsePrompt(customer, "Golongan darah saya apa?", classify.IntentBloodType, ictx)

	assert.Contains(t, prompt, "ATURAN KETAT")
	assert.Contains(t, prompt, "PASIEN: Siti Aminah")
	assert.Contains(t, prompt, "PERTANYAAN: Golongan darah saya apa?")
	assert.Contains(t, prompt, "TOPIK: cek_golongan_darah")
	assert.Contains(t, prompt, "- Nama: Siti Aminah, Golongan Darah: O")
	assert.Contains(t, prompt, "INSTRUKSI:")
	assert.True(t, strings.HasSuffix(prompt, "JAWABAN:"))
	assert.NotContains(t, prompt, "tidak ada data tercatat")
}

func TestBuildResponsePromptEmptyContext(t *testing.T) {
	b := NewPromptBuilder()
	ictx := &IntentContext{
		Description: classify.Describe(classify.IntentDeliveryHistory),
		Sections: []Section{
			{Title: "Riwayat Persalinan"},
		},
	}

	prompt := b.BuildResponsePrompt(nil, "Riwayat persalinan saya?", classify.IntentDeliveryHistory, ictx)

	assert.Contains(t, prompt, "(tidak ada data tercatat untuk topik ini)")
	assert.NotContains(t, prompt, "Riwayat Persalinan")
	// No patient line without a customer. Substring alone cannot check this:
	// the DATA PASIEN header is always present.
	for _, line := range strings.Split(prompt, "\n") {
		assert.False(t, strings.HasPrefix(line, "PASIEN:"), "unexpected patient line %q", line)
	}
}

func TestBuildResponsePromptCapsSectionRows(t *testing.T) {
	records := make([]Record, 5)
	for i := range records {
		records[i] = Record{{Key: "Tanggal", Value: "01-01-2026"}}
	}
	ictx := &IntentContext{
		Sections: []Section{{Title: "Riwayat Berobat", Records: records}},
	}

	prompt := NewPromptBuilder().BuildResponsePrompt(nil, "riwayat", classify.IntentTreatmentHistory, ictx)

	assert.Equal(t, sectionLimit, strings.Count(prompt, "- Tanggal: 01-01-2026"))
	assert.Contains(t, prompt, "(hanya 3 data terbaru yang ditampilkan)")
}

func TestBuildResponsePromptTruncatesKnowledge(t *testing.T) {
	ictx := &IntentContext{
		Sections: []Section{
			{Title: "Kehamilan", Records: []Record{{{Key: "Usia", Value: "30 minggu"}}}},
		},
		Knowledge: strings.Repeat("a", knowledgeLimit+100),
	}

	prompt := NewPromptBuilder().BuildResponsePrompt(nil, "persiapan persalinan", classify.IntentBirthPrepGuide, ictx)

	assert.Contains(t, prompt, "PENGETAHUAN:")
	assert.Contains(t, prompt, strings.Repeat("a", knowledgeLimit)+"...")
	assert.NotContains(t, prompt, strings.Repeat("a", knowledgeLimit+1))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcde", truncate("abcde", 5))
	assert.Equal(t, "abcde...", truncate("abcdefgh", 5))
}
