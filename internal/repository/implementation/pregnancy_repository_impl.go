package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carepal-be/internal/entity"
	"carepal-be/internal/mapper"
	"carepal-be/internal/model"
	"carepal-be/internal/repository/contract"
)

type PregnancyRepositoryImpl struct {
	db *gorm.DB
}

func NewPregnancyRepository(db *gorm.DB) contract.PregnancyRepository {
	return &PregnancyRepositoryImpl{db: db}
}

func (r *PregnancyRepositoryImpl) FindByCustomer(ctx context.Context, customerId uuid.UUID) ([]entity.Pregnancy, error) {
	var models []model.Pregnancy
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerId).
		Order("lmp_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.Pregnancy, 0, len(models))
	for _, m := range models {
		out = append(out, mapper.PregnancyModelToEntity(m))
	}
	return out, nil
}

func (r *PregnancyRepositoryImpl) FindActiveByCustomer(ctx context.Context, customerId uuid.UUID) (*entity.Pregnancy, error) {
	var m model.Pregnancy
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerId, model.PregnancyStatusActive).
		Order("lmp_date DESC").
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	e := mapper.PregnancyModelToEntity(m)
	return &e, nil
}

type ANCVisitRepositoryImpl struct {
	db *gorm.DB
}

func NewANCVisitRepository(db *gorm.DB) contract.ANCVisitRepository {
	return &ANCVisitRepositoryImpl{db: db}
}

func (r *ANCVisitRepositoryImpl) FindByPregnancyIds(ctx context.Context, pregnancyIds []uuid.UUID) ([]entity.ANCVisit, error) {
	if len(pregnancyIds) == 0 {
		return nil, nil
	}
	var models []model.ANCVisit
	err := r.db.WithContext(ctx).
		Where("pregnancy_id IN ?", pregnancyIds).
		Order("visit_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.ANCVisit, 0, len(models))
	for _, m := range models {
		out = append(out, mapper.ANCVisitModelToEntity(m))
	}
	return out, nil
}

type DeliveryRepositoryImpl struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) contract.DeliveryRepository {
	return &DeliveryRepositoryImpl{db: db}
}

func (r *DeliveryRepositoryImpl) FindByPregnancyIds(ctx context.Context, pregnancyIds []uuid.UUID) ([]entity.Delivery, error) {
	if len(pregnancyIds) == 0 {
		return nil, nil
	}
	var models []model.Delivery
	err := r.db.WithContext(ctx).
		Where("pregnancy_id IN ?", pregnancyIds).
		Order("birth_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.Delivery, 0, len(models))
	for _, m := range models {
		out = append(out, mapper.DeliveryModelToEntity(m))
	}
	return out, nil
}

type ImmunizationRepositoryImpl struct {
	db *gorm.DB
}

func NewImmunizationRepository(db *gorm.DB) contract.ImmunizationRepository {
	return &ImmunizationRepositoryImpl{db: db}
}

func (r *ImmunizationRepositoryImpl) FindByPregnancyIds(ctx context.Context, pregnancyIds []uuid.UUID) ([]entity.Immunization, error) {
	if len(pregnancyIds) == 0 {
		return nil, nil
	}
	var models []model.Immunization
	err := r.db.WithContext(ctx).
		Where("pregnancy_id IN ?", pregnancyIds).
		Order("given_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.Immunization, 0, len(models))
	for _, m := range models {
		out = append(out, mapper.ImmunizationModelToEntity(m))
	}
	return out, nil
}

type SupplementRepositoryImpl struct {
	db *gorm.DB
}

func NewSupplementRepository(db *gorm.DB) contract.SupplementRepository {
	return &SupplementRepositoryImpl{db: db}
}

func (r *SupplementRepositoryImpl) FindByANCVisitIds(ctx context.Context, visitIds []uuid.UUID) ([]entity.Supplement, error) {
	if len(visitIds) == 0 {
		return nil, nil
	}
	var models []model.Supplement
	err := r.db.WithContext(ctx).
		Joins("JOIN anc_visits ON anc_visits.id = supplements.anc_visit_id").
		Where("supplements.anc_visit_id IN ?", visitIds).
		Order("anc_visits.visit_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.Supplement, 0, len(models))
	for _, m := range models {
		out = append(out, mapper.SupplementModelToEntity(m))
	}
	return out, nil
}
