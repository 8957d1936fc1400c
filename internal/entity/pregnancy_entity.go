package entity

import (
	"time"

	"github.com/google/uuid"
)

type Pregnancy struct {
	Id               uuid.UUID
	CustomerId       uuid.UUID
	LMPDate          time.Time
	EstimatedDueDate *time.Time
	Status           string
	GravidaNumber    int
}

type ANCVisit struct {
	Id               uuid.UUID
	PregnancyId      uuid.UUID
	VisitDate        time.Time
	GestationalWeeks int
	WeightKg         *float64
	BloodPressure    string
	FetalHeartRate   *int
	Notes            string
}

type Delivery struct {
	Id            uuid.UUID
	PregnancyId   uuid.UUID
	BirthDate     time.Time
	Place         string
	Method        string
	BabySex       string
	BabyWeightKg  *float64
	BabyLengthCm  *float64
	Complications string
}

type Immunization struct {
	Id          uuid.UUID
	PregnancyId uuid.UUID
	VaccineType string
	GivenDate   time.Time
	DoseNumber  int
}

type Supplement struct {
	Id         uuid.UUID
	ANCVisitId uuid.UUID
	Name       string
	Dose       string
	Quantity   *int
	Notes      string
}
