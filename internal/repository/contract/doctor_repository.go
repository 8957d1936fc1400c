package contract

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carepal-be/internal/entity"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	FindByIds(ctx context.Context, ids []uuid.UUID) ([]entity.Doctor, error)
}

type DoctorScheduleRepository interface {
	// FindUpcoming returns schedules on or after the given day, soonest first.
	FindUpcoming(ctx context.Context, from time.Time, limit int) ([]entity.DoctorSchedule, error)
}
