package recommend

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"carepal-be/pkg/classify"
)

// Table is the deterministic recommendation source: per-intent follow-up
// questions plus the generic list used when nothing better applies. It can be
// overridden wholesale from a JSON file.
type Table struct {
	ByIntent map[classify.Intent][]string `json:"by_intent"`
	Generic  []string                     `json:"generic"`
}

// DefaultTable returns the compiled-in table.
func DefaultTable() *Table {
	return &Table{
		Generic: []string{
			"Tampilkan ringkasan data kesehatan saya",
			"Apakah ada catatan kunjungan terakhir?",
			"Siapa dokter yang biasa menangani saya?",
			"Golongan darah saya apa?",
		},
		ByIntent: map[classify.Intent][]string{
			classify.IntentANCTracker: {
				"Bagaimana perkembangan kunjungan ANC saya?",
				"Kapan kunjungan ANC terakhir saya?",
				"Berapa berat badan saya pada kontrol terakhir?",
			},
			classify.IntentImmunizationTracker: {
				"Imunisasi apa saja yang sudah saya terima?",
				"Kapan imunisasi TT terakhir saya?",
			},
			classify.IntentBirthPrepGuide: {
				"Apa saja yang perlu disiapkan menjelang persalinan?",
				"Apa tanda-tanda persalinan sudah dekat?",
			},
			classify.IntentANCReminder: {
				"Kapan jadwal kontrol kehamilan saya berikutnya?",
				"Berapa usia kehamilan saya sekarang?",
			},
			classify.IntentDeliveryHistory: {
				"Bagaimana riwayat persalinan saya sebelumnya?",
			},
			classify.IntentSupplementHistory: {
				"Suplemen apa saja yang pernah saya terima?",
				"Apakah saya masih perlu minum tablet tambah darah?",
			},
			classify.IntentCustomerData: {
				"Tampilkan data profil saya",
			},
			classify.IntentBloodType: {
				"Golongan darah saya apa?",
			},
			classify.IntentDoctorDetail: {
				"Siapa dokter yang menangani saya terakhir kali?",
			},
			classify.IntentDoctorSchedule: {
				"Kapan jadwal praktik dokter terdekat?",
			},
			classify.IntentPrescriptionDetail: {
				"Apa saja obat yang sedang saya konsumsi?",
				"Bagaimana aturan pakai obat terakhir saya?",
			},
			classify.IntentPrescriptionHistory: {
				"Tampilkan riwayat resep obat saya",
			},
			classify.IntentLabResultDetail: {
				"Tampilkan detail hasil lab terakhir saya",
			},
			classify.IntentLabResultSummary: {
				"Ringkas hasil lab terbaru saya",
				"Apakah ada hasil lab saya yang tidak normal?",
			},
			classify.IntentTreatmentHistory: {
				"Kapan terakhir kali saya berobat?",
				"Apa keluhan saya pada kunjungan terakhir?",
			},
			classify.IntentDiagnosisHistory: {
				"Apa diagnosis saya pada kunjungan terakhir?",
			},
			classify.IntentPhysicalConditionHistory: {
				"Bagaimana perkembangan berat badan saya?",
				"Berapa tekanan darah saya terakhir?",
			},
		},
	}
}

// LoadTable reads a table from JSON, for deployments that tune the lists
// without a rebuild. The generic list must be able to fill a set on its own,
// so it is trimmed and deduplicated first; a list with fewer than setSize
// distinct questions falls back to the compiled one.
func LoadTable(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recommendation table: %w", err)
	}
	var t Table
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("parse recommendation table: %w", err)
	}
	t.Generic = distinctQuestions(t.Generic)
	if len(t.Generic) < setSize {
		t.Generic = DefaultTable().Generic
	}
	if t.ByIntent == nil {
		t.ByIntent = map[classify.Intent][]string{}
	}
	return &t, nil
}

func distinctQuestions(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, q := range in {
		q = strings.TrimSpace(q)
		if q == "" || seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
	}
	return out
}
