package model

import (
	"time"

	"github.com/google/uuid"
)

// Pregnancy status values stored in pregnancies.status.
const (
	PregnancyStatusActive    = "aktif"
	PregnancyStatusDelivered = "selesai"
)

type Pregnancy struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId       uuid.UUID `gorm:"type:uuid;not null;index"`
	LMPDate          time.Time `gorm:"not null"` // first day of last menstrual period
	EstimatedDueDate *time.Time
	Status           string    `gorm:"type:varchar(20);not null;default:'aktif'"`
	GravidaNumber    int       `gorm:"default:1"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (Pregnancy) TableName() string {
	return "pregnancies"
}

type ANCVisit struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PregnancyId      uuid.UUID `gorm:"type:uuid;not null;index"`
	VisitDate        time.Time `gorm:"not null;index"`
	GestationalWeeks int       `gorm:"not null"`
	WeightKg         *float64
	BloodPressure    *string `gorm:"type:varchar(20)"`
	FetalHeartRate   *int
	Notes            *string   `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (ANCVisit) TableName() string {
	return "anc_visits"
}

type Delivery struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PregnancyId   uuid.UUID `gorm:"type:uuid;not null;index"`
	BirthDate     time.Time `gorm:"not null"`
	Place         string    `gorm:"type:varchar(255)"`
	Method        string    `gorm:"type:varchar(50)"`
	BabySex       *string   `gorm:"type:varchar(10)"`
	BabyWeightKg  *float64
	BabyLengthCm  *float64
	Complications *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Delivery) TableName() string {
	return "deliveries"
}

type Immunization struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PregnancyId uuid.UUID `gorm:"type:uuid;not null;index"`
	VaccineType string    `gorm:"type:varchar(100);not null"`
	GivenDate   time.Time `gorm:"not null"`
	DoseNumber  int       `gorm:"default:1"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Immunization) TableName() string {
	return "immunizations"
}

type Supplement struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ANCVisitId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Dose       string    `gorm:"type:varchar(100)"`
	Quantity   *int
	Notes      *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Supplement) TableName() string {
	return "supplements"
}
