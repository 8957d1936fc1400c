package contract

import (
	"context"

	"github.com/google/uuid"

	"carepal-be/internal/entity"
)

// Read-side repositories over the medical record tables. All listings are
// newest-first; limit <= 0 means no limit.

type TreatmentVisitRepository interface {
	FindRecentByCustomer(ctx context.Context, customerId uuid.UUID, limit int) ([]entity.TreatmentVisit, error)
}

type DiagnosisRepository interface {
	FindRecentByCustomer(ctx context.Context, customerId uuid.UUID, limit int) ([]entity.Diagnosis, error)
}

type PrescriptionRepository interface {
	FindRecentByCustomer(ctx context.Context, customerId uuid.UUID, limit int) ([]entity.Prescription, error)
}

type LabResultRepository interface {
	FindRecentByCustomer(ctx context.Context, customerId uuid.UUID, limit int) ([]entity.LabResult, error)
}

type PhysicalConditionRepository interface {
	FindRecentByCustomer(ctx context.Context, customerId uuid.UUID, limit int) ([]entity.PhysicalCondition, error)
}
