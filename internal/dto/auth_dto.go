package dto

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	NIK      string `json:"nik" validate:"required,len=16"`
	Password string `json:"password" validate:"required"`
}

type CustomerResponse struct {
	Id        uuid.UUID  `json:"id"`
	NIK       string     `json:"nik"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	BloodType string     `json:"blood_type,omitempty"`
}

type LoginResponse struct {
	Token    string           `json:"token"`
	Customer CustomerResponse `json:"customer"`
}
