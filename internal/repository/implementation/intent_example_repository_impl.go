package implementation

import (
	"context"

	"gorm.io/gorm"

	"carepal-be/internal/entity"
	"carepal-be/internal/mapper"
	"carepal-be/internal/model"
	"carepal-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
)

type IntentExampleRepositoryImpl struct {
	db *gorm.DB
}

func NewIntentExampleRepository(db *gorm.DB) contract.IntentExampleRepository {
	return &IntentExampleRepositoryImpl{db: db}
}

func (r *IntentExampleRepositoryImpl) Create(ctx context.Context, example *entity.IntentExample) error {
	m := mapper.IntentExampleEntityToModel(*example)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*example = mapper.IntentExampleModelToEntity(m)
	return nil
}

func (r *IntentExampleRepositoryImpl) FindAll(ctx context.Context) ([]entity.IntentExample, error) {
	var models []model.IntentExample
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]entity.IntentExample, 0, len(models))
	for _, m := range models {
		out = append(out, mapper.IntentExampleModelToEntity(m))
	}
	return out, nil
}

func (r *IntentExampleRepositoryImpl) UpdateEmbedding(ctx context.Context, example *entity.IntentExample) error {
	return r.db.WithContext(ctx).
		Model(&model.IntentExample{}).
		Where("id = ?", example.Id).
		Updates(map[string]interface{}{
			"embedding": pgvector.NewVector(example.Embedding),
			"embedded":  true,
		}).Error
}
