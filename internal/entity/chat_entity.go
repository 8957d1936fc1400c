package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id         uuid.UUID
	CustomerId uuid.UUID
	Title      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          string
	Content       string
	CreatedAt     time.Time
}
