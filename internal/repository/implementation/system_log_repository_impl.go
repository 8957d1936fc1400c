package implementation

import (
	"context"

	"gorm.io/gorm"

	"carepal-be/internal/model"
	"carepal-be/internal/repository/contract"
)

type SystemLogRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) contract.SystemLogRepository {
	return &SystemLogRepositoryImpl{db: db}
}

func (r *SystemLogRepositoryImpl) Create(ctx context.Context, log *model.SystemLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
