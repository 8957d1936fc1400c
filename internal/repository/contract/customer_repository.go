package contract

import (
	"context"

	"carepal-be/internal/entity"
	"carepal-be/internal/repository/specification"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error)
	FindByNIK(ctx context.Context, nik string) (*entity.Customer, error)
}
