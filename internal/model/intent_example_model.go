package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// IntentExample is one labeled reference utterance. Embedding is filled in
// lazily at boot for rows seeded without one.
type IntentExample struct {
	Id        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Utterance string          `gorm:"type:text;not null"`
	Intent    string          `gorm:"type:varchar(100);not null;index"`
	Embedding *pgvector.Vector `gorm:"type:vector(768)"`
	Embedded  bool            `gorm:"default:false;index"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}

func (IntentExample) TableName() string {
	return "intent_examples"
}
