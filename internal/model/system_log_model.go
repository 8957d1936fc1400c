package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SystemLog struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Level     string         `gorm:"type:varchar(10);not null;index"`
	Module    string         `gorm:"type:varchar(100);not null;index"`
	Message   string         `gorm:"type:text;not null"`
	Details   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (SystemLog) TableName() string {
	return "system_logs"
}
