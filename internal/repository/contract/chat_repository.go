package contract

import (
	"context"

	"github.com/google/uuid"

	"carepal-be/internal/entity"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.ChatSession, error)
	FindAllByCustomer(ctx context.Context, customerId uuid.UUID) ([]entity.ChatSession, error)
}

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	// CreateWithClassification stores an assistant turn together with its
	// classification snapshot as JSONB.
	CreateWithClassification(ctx context.Context, message *entity.ChatMessage, classification []byte) error
	FindBySession(ctx context.Context, sessionId uuid.UUID) ([]entity.ChatMessage, error)
}
