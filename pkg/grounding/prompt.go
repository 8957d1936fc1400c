package grounding

import (
	"strconv"
	"strings"

	"carepal-be/internal/entity"
	"carepal-be/pkg/classify"
)

// knowledgeLimit caps the knowledge-base snippet so the prompt stays inside
// the model's context comfortably.
const knowledgeLimit = 2000

// intentInstructions sharpen the generation for intents where a generic
// "present the data" instruction reads poorly.
var intentInstructions = map[classify.Intent]string{
	classify.IntentLabResultSummary: "Ringkas hasil laboratorium terbaru dalam 2-3 kalimat, sebutkan nilai yang berada di luar rentang rujukan jika ada.",
	classify.IntentBloodType:        "Jawab langsung golongan darah pasien dalam satu kalimat.",
	classify.IntentBirthPrepGuide:   "Gunakan panduan pada bagian PENGETAHUAN sebagai sumber utama, sesuaikan dengan usia kehamilan pasien bila tersedia.",
	classify.IntentANCTracker:       "Uraikan perkembangan kunjungan ANC secara kronologis dan sebutkan tanggal kunjungan terakhir.",
	classify.IntentDoctorSchedule:   "Sebutkan jadwal praktik terdekat beserta dokter dan jamnya.",
}

// PromptBuilder renders the grounded generation prompt. It is stateless;
// every call starts from a fresh strings.Builder.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResponsePrompt assembles the full prompt for one chat turn.
func (b *PromptBuilder) BuildResponsePrompt(customer *entity.Customer, message string, intent classify.Intent, ictx *IntentContext) string {
	var sb strings.Builder

	sb.WriteString("Anda adalah CarePal, asisten kesehatan ibu dan anak.\n")
	sb.WriteString("ATURAN KETAT:\n")
	sb.WriteString("1. Jawab HANYA berdasarkan DATA PASIEN di bawah. Jangan mengarang data yang tidak ada.\n")
	sb.WriteString("2. Jika data yang diminta kosong, katakan dengan sopan bahwa datanya belum tercatat.\n")
	sb.WriteString("3. Jangan memberikan diagnosis atau saran pengobatan baru; arahkan ke dokter untuk hal medis.\n")
	sb.WriteString("4. Jawab dalam Bahasa Indonesia yang ramah dan ringkas.\n\n")

	if customer != nil {
		sb.WriteString("PASIEN: ")
		sb.WriteString(customer.Name)
		sb.WriteString("\n")
	}

	sb.WriteString("PERTANYAAN: ")
	sb.WriteString(message)
	sb.WriteString("\n")

	sb.WriteString("TOPIK: ")
	sb.WriteString(string(intent))
	if ictx.Description != "" {
		sb.WriteString(" (")
		sb.WriteString(ictx.Description)
		sb.WriteString(")")
	}
	sb.WriteString("\n")

	if instruction, ok := intentInstructions[intent]; ok {
		sb.WriteString("INSTRUKSI: ")
		sb.WriteString(instruction)
		sb.WriteString("\n")
	}

	sb.WriteString("\nDATA PASIEN:\n")
	if !hasRecords(ictx.Sections) {
		sb.WriteString("(tidak ada data tercatat untuk topik ini)\n")
	} else {
		for _, section := range ictx.Sections {
			writeSection(&sb, section)
		}
	}

	if ictx.Knowledge != "" {
		sb.WriteString("\nPENGETAHUAN:\n")
		sb.WriteString(truncate(ictx.Knowledge, knowledgeLimit))
		sb.WriteString("\n")
	}

	sb.WriteString("\nJAWABAN:")
	return sb.String()
}

func writeSection(sb *strings.Builder, section Section) {
	sb.WriteString("## ")
	sb.WriteString(section.Title)
	sb.WriteString("\n")

	if len(section.Records) == 0 {
		sb.WriteString("(kosong)\n")
		return
	}

	limit := len(section.Records)
	if limit > sectionLimit {
		limit = sectionLimit
	}
	for _, record := range section.Records[:limit] {
		parts := make([]string, 0, len(record))
		for _, f := range record {
			parts = append(parts, f.Key+": "+f.Value)
		}
		sb.WriteString("- ")
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("\n")
	}
	if len(section.Records) > limit {
		sb.WriteString("(hanya ")
		sb.WriteString(strconv.Itoa(limit))
		sb.WriteString(" data terbaru yang ditampilkan)\n")
	}
}

func hasRecords(sections []Section) bool {
	for _, s := range sections {
		if len(s.Records) > 0 {
			return true
		}
	}
	return false
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
