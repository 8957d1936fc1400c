package model

import (
	"time"

	"github.com/google/uuid"
)

type TreatmentVisit struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId uuid.UUID `gorm:"type:uuid;not null;index"`
	DoctorId   uuid.UUID `gorm:"type:uuid;not null;index"`
	VisitDate  time.Time `gorm:"not null;index"`
	Complaint  string    `gorm:"type:text"`
	Notes      *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (TreatmentVisit) TableName() string {
	return "treatment_visits"
}

type Diagnosis struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VisitId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Code      string    `gorm:"type:varchar(20)"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Notes     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Diagnosis) TableName() string {
	return "diagnoses"
}

type Prescription struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VisitId   uuid.UUID `gorm:"type:uuid;not null;index"`
	DrugName  string    `gorm:"type:varchar(255);not null"`
	Dose      string    `gorm:"type:varchar(100)"`
	Frequency string    `gorm:"type:varchar(100)"`
	StartDate *time.Time
	EndDate   *time.Time
	Notes     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

type LabResult struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId     uuid.UUID `gorm:"type:uuid;not null;index"`
	TestType       string    `gorm:"type:varchar(255);not null"`
	TestDate       time.Time `gorm:"not null;index"`
	ResultValue    string    `gorm:"type:varchar(255)"`
	Unit           *string   `gorm:"type:varchar(50)"`
	ReferenceRange *string   `gorm:"type:varchar(100)"`
	Notes          *string   `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (LabResult) TableName() string {
	return "lab_results"
}

type PhysicalCondition struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId    uuid.UUID `gorm:"type:uuid;not null;index"`
	CheckDate     time.Time `gorm:"not null;index"`
	WeightKg      *float64
	HeightCm      *float64
	BloodPressure *string   `gorm:"type:varchar(20)"`
	Notes         *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (PhysicalCondition) TableName() string {
	return "physical_conditions"
}
