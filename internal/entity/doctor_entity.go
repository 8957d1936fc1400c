package entity

import (
	"time"

	"github.com/google/uuid"
)

type Doctor struct {
	Id        uuid.UUID
	Name      string
	Specialty string
	Phone     string
	Location  string
}

type DoctorSchedule struct {
	Id           uuid.UUID
	DoctorId     uuid.UUID
	DoctorName   string
	PracticeDate time.Time
	StartTime    string
	EndTime      string
	Location     string
}
