package entity

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id           uuid.UUID
	NIK          string
	PasswordHash string
	Name         string
	Email        string
	Phone        string
	Address      string
	BirthDate    *time.Time
	BloodType    string
	CreatedAt    time.Time
}
