package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NIK          string    `gorm:"type:varchar(16);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        *string   `gorm:"type:varchar(255)"`
	Phone        *string   `gorm:"type:varchar(20)"`
	Address      *string   `gorm:"type:text"`
	BirthDate    *time.Time
	BloodType    *string        `gorm:"type:varchar(3)"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Customer) TableName() string {
	return "customers"
}
