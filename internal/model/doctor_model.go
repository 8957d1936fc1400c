package model

import (
	"time"

	"github.com/google/uuid"
)

type Doctor struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Specialty string    `gorm:"type:varchar(255)"`
	Phone     *string   `gorm:"type:varchar(20)"`
	Location  *string   `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Doctor) TableName() string {
	return "doctors"
}

type DoctorSchedule struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DoctorId     uuid.UUID `gorm:"type:uuid;not null;index"`
	PracticeDate time.Time `gorm:"not null;index"`
	StartTime    string    `gorm:"type:varchar(5);not null"` // HH:MM
	EndTime      string    `gorm:"type:varchar(5);not null"`
	Location     *string   `gorm:"type:varchar(255)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (DoctorSchedule) TableName() string {
	return "doctor_schedules"
}
