package contract

import (
	"context"

	"carepal-be/internal/entity"
)

type IntentExampleRepository interface {
	Create(ctx context.Context, example *entity.IntentExample) error
	FindAll(ctx context.Context) ([]entity.IntentExample, error)
	// UpdateEmbedding persists a computed vector for a seeded utterance.
	UpdateEmbedding(ctx context.Context, example *entity.IntentExample) error
}
