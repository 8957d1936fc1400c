package contract

import (
	"context"

	"github.com/google/uuid"

	"carepal-be/internal/entity"
)

type PregnancyRepository interface {
	FindByCustomer(ctx context.Context, customerId uuid.UUID) ([]entity.Pregnancy, error)
	// FindActiveByCustomer returns nil when the customer has no active pregnancy.
	FindActiveByCustomer(ctx context.Context, customerId uuid.UUID) (*entity.Pregnancy, error)
}

type ANCVisitRepository interface {
	FindByPregnancyIds(ctx context.Context, pregnancyIds []uuid.UUID) ([]entity.ANCVisit, error)
}

type DeliveryRepository interface {
	FindByPregnancyIds(ctx context.Context, pregnancyIds []uuid.UUID) ([]entity.Delivery, error)
}

type ImmunizationRepository interface {
	FindByPregnancyIds(ctx context.Context, pregnancyIds []uuid.UUID) ([]entity.Immunization, error)
}

type SupplementRepository interface {
	FindByANCVisitIds(ctx context.Context, visitIds []uuid.UUID) ([]entity.Supplement, error)
}
