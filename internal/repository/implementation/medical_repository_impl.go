package implementation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carepal-be/internal/entity"
	"carepal-be/internal/mapper"
	"carepal-be/internal/model"
	"carepal-be/internal/repository/contract"
)

func withLimit(db *gorm.DB, limit int) *gorm.DB {
	if limit > 0 {
		return db.Limit(limit)
	}
	return db
}

// --- Treatment visits ---

type TreatmentVisitRepositoryImpl struct {
	db *gorm.DB
}

func NewTreatmentVisitRepository(db *gorm.DB) contract.TreatmentVisitRepository {
	return &TreatmentVisitRepositoryImpl{db: db}
}

type visitRow struct {
	model.TreatmentVisit
	DoctorName string
}

func (r *TreatmentVisitRepositoryImpl) FindRecentByCustomer(ctx context.Context, customerId uuid.UUID, limit int) ([]entity.TreatmentVisit, error) {
	var rows []visitRow
	query := r.db.WithContext(ctx).
		Model(&model.TreatmentVisit{}).
		Select("treatment_visits.*, doctors.name AS doctor_name").
		Joins("LEFT JOIN doctors ON doctors.id = treatment_visits.doctor_id").
		Where("treatment_visits.customer_id = ?", customerId).
		Order("treatment_visits.visit_date DESC")
	if err := withLimit(query, limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.TreatmentVisit, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapper.TreatmentVisitModelToEntity(row.TreatmentVisit, row.DoctorName))
	}
	return out, nil
}

// --- Diagnoses ---

type DiagnosisRepositoryImpl struct {
	db *gorm.DB
}

func NewDiagnosisRepository(db *gorm.DB) contract.DiagnosisRepository {
	return &DiagnosisRepositoryImpl{db: db}
}

type diagnosisRow struct {
	model.Diagnosis
	VisitDate time.Time
}

func (r *DiagnosisRepositoryImpl) FindRecentByCustomer(ctx context.Context, customerId uuid.UUID, limit int) ([]entity.Diagnosis, error) {
	var rows []diagnosisRow
	query := r.db.WithContext(ctx).
		Model(&model.Diagnosis{}).
		Select("diagnoses.*, treatment_visits.visit_date AS visit_date").
		Joins("JOIN treatment_visits ON treatment_visits.id = diagnoses.visit_id").
		Where("treatment_visits.customer_id = ?", customerId).
		Order("treatment_visits.visit_date DESC")
	if err := withLimit(query, limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Diagnosis, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapper.DiagnosisModelToEntity(row.Diagnosis, row.VisitDate))
	}
	return out, nil
}

// --- Prescriptions ---

type PrescriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) contract.PrescriptionRepository {
	return &PrescriptionRepositoryImpl{db: db}
}

func (r *PrescriptionRepositoryImpl) FindRecentByCustomer(ctx context.Context, customerId uuid.UUID, limit int) ([]entity.Prescription, error) {
	var models []model.Prescription
	query := r.db.WithContext(ctx).
		Joins("JOIN treatment_visits ON treatment_visits.id = prescriptions.visit_id").
		Where("treatment_visits.customer_id = ?", customerId).
		Order("treatment_visits.visit_date DESC")
	if err := withLimit(query, limit).Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Prescription, 0, len(models))
	for _, m := range models {
		out = append(out, mapper.PrescriptionModelToEntity(m))
	}
	return out, nil
}

// --- Lab results ---

type LabResultRepositoryImpl struct {
	db *gorm.DB
}

func NewLabResultRepository(db *gorm.DB) contract.LabResultRepository {
	return &LabResultRepositoryImpl{db: db}
}

func (r *LabResultRepositoryImpl) FindRecentByCustomer(ctx context.Context, customerId uuid.UUID, limit int) ([]entity.LabResult, error) {
	var models []model.LabResult
	query := r.db.WithContext(ctx).
		Where("customer_id = ?", customerId).
		Order("test_date DESC")
	if err := withLimit(query, limit).Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]entity.LabResult, 0, len(models))
	for _, m := range models {
		out = append(out, mapper.LabResultModelToEntity(m))
	}
	return out, nil
}

// --- Physical conditions ---

type PhysicalConditionRepositoryImpl struct {
	db *gorm.DB
}

func NewPhysicalConditionRepository(db *gorm.DB) contract.PhysicalConditionRepository {
	return &PhysicalConditionRepositoryImpl{db: db}
}

func (r *PhysicalConditionRepositoryImpl) FindRecentByCustomer(ctx context.Context, customerId uuid.UUID, limit int) ([]entity.PhysicalCondition, error) {
	var models []model.PhysicalCondition
	query := r.db.WithContext(ctx).
		Where("customer_id = ?", customerId).
		Order("check_date DESC")
	if err := withLimit(query, limit).Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]entity.PhysicalCondition, 0, len(models))
	for _, m := range models {
		out = append(out, mapper.PhysicalConditionModelToEntity(m))
	}
	return out, nil
}
