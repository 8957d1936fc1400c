package main

import (
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"carepal-be/internal/config"
	"carepal-be/internal/model"
	"carepal-be/pkg/classify"
	"carepal-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	seedDoctors(db)
	seedDemoCustomer(db)
	seedIntentExamples(db)

	color.Green("Seeding completed")
}

func seedDoctors(db *gorm.DB) {
	doctors := []model.Doctor{
		{Name: "dr. Ratna Dewi, Sp.OG", Specialty: "Obstetri dan Ginekologi", Location: strPtr("Poli Kebidanan Lt. 2")},
		{Name: "dr. Budi Santoso", Specialty: "Dokter Umum", Location: strPtr("Poli Umum Lt. 1")},
		{Name: "dr. Sari Wulandari, Sp.A", Specialty: "Anak", Location: strPtr("Poli Anak Lt. 2")},
	}

	for _, d := range doctors {
		var count int64
		db.Model(&model.Doctor{}).Where("name = ?", d.Name).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&d).Error; err != nil {
			color.Red("Failed to seed doctor %s: %v", d.Name, err)
			continue
		}

		schedule := model.DoctorSchedule{
			DoctorId:     d.Id,
			PracticeDate: time.Now().AddDate(0, 0, 3),
			StartTime:    "08:00",
			EndTime:      "12:00",
			Location:     d.Location,
		}
		if err := db.Create(&schedule).Error; err != nil {
			color.Red("Failed to seed schedule for %s: %v", d.Name, err)
		}
	}
	color.Cyan("Doctors seeded")
}

func seedDemoCustomer(db *gorm.DB) {
	const nik = "3201234567890001"

	var count int64
	db.Model(&model.Customer{}).Where("nik = ?", nik).Count(&count)
	if count > 0 {
		color.Yellow("Demo customer already exists, skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("carepal123"), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Failed to hash demo password: %v", err)
		return
	}

	birthDate := time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC)
	customer := model.Customer{
		Id:           uuid.New(),
		NIK:          nik,
		PasswordHash: string(hash),
		Name:         "Siti Aminah",
		Email:        strPtr("siti.aminah@example.com"),
		Phone:        strPtr("081234567890"),
		BirthDate:    &birthDate,
		BloodType:    strPtr("O"),
	}
	if err := db.Create(&customer).Error; err != nil {
		color.Red("Failed to seed demo customer: %v", err)
		return
	}

	pregnancy := model.Pregnancy{
		CustomerId:    customer.Id,
		LMPDate:       time.Now().AddDate(0, 0, -20*7),
		Status:        model.PregnancyStatusActive,
		GravidaNumber: 1,
	}
	if err := db.Create(&pregnancy).Error; err != nil {
		color.Red("Failed to seed pregnancy: %v", err)
	}

	color.Cyan("Demo customer seeded (NIK %s)", nik)
}

// seedIntentExamples loads the labeled reference utterances the scope gate
// compares against. Embeddings are computed lazily at application boot.
func seedIntentExamples(db *gorm.DB) {
	utterances := map[classify.Intent][]string{
		classify.IntentANCTracker: {
			"Bagaimana perkembangan kunjungan ANC saya?",
			"Tampilkan catatan pemeriksaan kehamilan saya",
		},
		classify.IntentImmunizationTracker: {
			"Imunisasi apa saja yang sudah saya terima selama hamil?",
			"Kapan saya terakhir suntik TT?",
		},
		classify.IntentBirthPrepGuide: {
			"Apa saja yang perlu disiapkan untuk persalinan?",
			"Bagaimana cara mempersiapkan kelahiran bayi?",
		},
		classify.IntentANCReminder: {
			"Kapan jadwal kontrol kehamilan saya berikutnya?",
			"Ingatkan saya jadwal periksa kandungan",
		},
		classify.IntentDeliveryHistory: {
			"Bagaimana riwayat persalinan saya?",
			"Tampilkan catatan kelahiran anak saya",
		},
		classify.IntentSupplementHistory: {
			"Suplemen apa saja yang pernah diberikan selama kehamilan saya?",
			"Apakah saya dapat tablet tambah darah?",
		},
		classify.IntentCustomerData: {
			"Tampilkan data diri saya",
			"Cek data pasien atas nama saya",
		},
		classify.IntentBloodType: {
			"Golongan darah saya apa?",
			"Cek golongan darah saya",
		},
		classify.IntentDoctorDetail: {
			"Siapa dokter yang menangani saya?",
			"Info detail dokter kandungan saya",
		},
		classify.IntentPrescriptionDetail: {
			"Apa detail resep obat terakhir saya?",
			"Bagaimana aturan minum obat saya?",
		},
		classify.IntentLabResultDetail: {
			"Tampilkan detail hasil lab saya",
			"Berapa hasil pemeriksaan hemoglobin saya?",
		},
		classify.IntentLabResultSummary: {
			"Ringkas hasil laboratorium terbaru saya",
			"Apakah hasil lab saya normal?",
		},
		classify.IntentDoctorSchedule: {
			"Kapan jadwal praktik dokter?",
			"Jam berapa dokter kandungan praktik minggu ini?",
		},
		classify.IntentTreatmentHistory: {
			"Kapan terakhir saya berobat?",
			"Tampilkan riwayat kunjungan berobat saya",
		},
		classify.IntentDiagnosisHistory: {
			"Apa diagnosis saya pada kunjungan terakhir?",
			"Riwayat penyakit saya apa saja?",
		},
		classify.IntentPhysicalConditionHistory: {
			"Bagaimana perkembangan berat badan saya?",
			"Berapa tekanan darah saya saat kontrol terakhir?",
		},
		classify.IntentPrescriptionHistory: {
			"Obat apa saja yang pernah diresepkan untuk saya?",
			"Tampilkan riwayat resep obat saya",
		},
	}

	var seeded int
	for intent, texts := range utterances {
		for _, text := range texts {
			var count int64
			db.Model(&model.IntentExample{}).Where("utterance = ?", text).Count(&count)
			if count > 0 {
				continue
			}
			row := model.IntentExample{
				Utterance: text,
				Intent:    string(intent),
			}
			if err := db.Create(&row).Error; err != nil {
				color.Red("Failed to seed example %q: %v", text, err)
				continue
			}
			seeded++
		}
	}
	color.Cyan("Intent examples seeded (%d new)", seeded)
}

func strPtr(s string) *string {
	return &s
}
