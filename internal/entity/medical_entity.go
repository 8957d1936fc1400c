package entity

import (
	"time"

	"github.com/google/uuid"
)

type TreatmentVisit struct {
	Id         uuid.UUID
	CustomerId uuid.UUID
	DoctorId   uuid.UUID
	DoctorName string
	VisitDate  time.Time
	Complaint  string
	Notes      string
}

type Diagnosis struct {
	Id        uuid.UUID
	VisitId   uuid.UUID
	Code      string
	Name      string
	Notes     string
	VisitDate time.Time
}

type Prescription struct {
	Id        uuid.UUID
	VisitId   uuid.UUID
	DrugName  string
	Dose      string
	Frequency string
	StartDate *time.Time
	EndDate   *time.Time
	Notes     string
}

type LabResult struct {
	Id             uuid.UUID
	CustomerId     uuid.UUID
	TestType       string
	TestDate       time.Time
	ResultValue    string
	Unit           string
	ReferenceRange string
	Notes          string
}

type PhysicalCondition struct {
	Id            uuid.UUID
	CustomerId    uuid.UUID
	CheckDate     time.Time
	WeightKg      *float64
	HeightCm      *float64
	BloodPressure string
	Notes         string
}
