package main

import (
	"log"

	"carepal-be/internal/config"
	"carepal-be/internal/model"
	"carepal-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	// pgvector must exist before the intent_examples table.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("Failed to create vector extension: %v", err)
	}

	err = db.AutoMigrate(
		&model.Customer{},
		&model.Doctor{},
		&model.DoctorSchedule{},
		&model.TreatmentVisit{},
		&model.Diagnosis{},
		&model.Prescription{},
		&model.LabResult{},
		&model.PhysicalCondition{},
		&model.Pregnancy{},
		&model.ANCVisit{},
		&model.Delivery{},
		&model.Immunization{},
		&model.Supplement{},
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.IntentExample{},
		&model.SystemLog{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration completed")
}
