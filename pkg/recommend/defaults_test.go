package recommend

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"carepal-be/pkg/classify"
)

func TestDefaultTableGenericFillsASet(t *testing.T) {
	table := DefaultTable()

	assert.GreaterOrEqual(t, len(table.Generic), setSize)
	for intent := range table.ByIntent {
		assert.NotEqual(t, classify.DomainNone, classify.DomainOf(intent), "unknown intent %s in table", intent)
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recommendations.json")
	payload := `{
		"generic": ["Satu?", "Dua?", "Tiga?", "Empat?"],
		"by_intent": {"cek_golongan_darah": ["Golongan darah saya apa?"]}
	}`
	assert.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	table, err := LoadTable(path)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Satu?", "Dua?", "Tiga?", "Empat?"}, table.Generic)
	assert.Equal(t, []string{"Golongan darah saya apa?"}, table.ByIntent[classify.IntentBloodType])
}

func TestLoadTableShortGenericFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recommendations.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"generic": ["Hanya satu?"]}`), 0o644))

	table, err := LoadTable(path)

	assert.NoError(t, err)
	assert.Equal(t, DefaultTable().Generic, table.Generic)
	assert.NotNil(t, table.ByIntent)
}

func TestLoadTableDuplicateGenericFallsBackToDefaults(t *testing.T) {
	// Four raw entries but only three distinct ones: such a list cannot fill a
	// set, so the compiled generic list must win.
	path := filepath.Join(t.TempDir(), "recommendations.json")
	payload := `{"generic": [
		"Apakah ada catatan kunjungan baru?",
		"Apakah ada catatan kunjungan baru?",
		"Siapa dokter saya hari ini?",
		"Golongan darah saya apa?"
	]}`
	assert.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	table, err := LoadTable(path)

	assert.NoError(t, err)
	assert.Equal(t, DefaultTable().Generic, table.Generic)

	engine := NewEngine(nil, table, time.Second, nopLogger{})
	set := engine.Recommend(context.Background(), nil, nil)
	assertValidSet(t, set)
}

func TestLoadTableTrimsAndDeduplicatesGeneric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recommendations.json")
	payload := `{"generic": [
		"  Pertanyaan pertama saya?  ",
		"Pertanyaan kedua saya?",
		"Pertanyaan kedua saya?",
		"Pertanyaan ketiga saya?",
		"Pertanyaan keempat saya?",
		""
	]}`
	assert.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	table, err := LoadTable(path)

	assert.NoError(t, err)
	assert.Equal(t, []string{
		"Pertanyaan pertama saya?",
		"Pertanyaan kedua saya?",
		"Pertanyaan ketiga saya?",
		"Pertanyaan keempat saya?",
	}, table.Generic)
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
