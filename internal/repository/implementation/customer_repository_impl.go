package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"carepal-be/internal/entity"
	"carepal-be/internal/mapper"
	"carepal-be/internal/model"
	"carepal-be/internal/repository/contract"
	"carepal-be/internal/repository/specification"
)

type CustomerRepositoryImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) contract.CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *entity.Customer) error {
	m := mapper.CustomerEntityToModel(customer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*customer = *mapper.CustomerModelToEntity(m)
	return nil
}

func (r *CustomerRepositoryImpl) Update(ctx context.Context, customer *entity.Customer) error {
	m := mapper.CustomerEntityToModel(customer)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*customer = *mapper.CustomerModelToEntity(m)
	return nil
}

func (r *CustomerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error) {
	var m model.Customer
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapper.CustomerModelToEntity(&m), nil
}

func (r *CustomerRepositoryImpl) FindByNIK(ctx context.Context, nik string) (*entity.Customer, error) {
	return r.FindOne(ctx, specification.Filter("nik", nik))
}
