package contract

import (
	"context"

	"carepal-be/internal/model"
)

type SystemLogRepository interface {
	Create(ctx context.Context, log *model.SystemLog) error
}
