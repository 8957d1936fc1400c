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

type DoctorRepositoryImpl struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) contract.DoctorRepository {
	return &DoctorRepositoryImpl{db: db}
}

func (r *DoctorRepositoryImpl) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	var models []model.Doctor
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Doctor, 0, len(models))
	for _, m := range models {
		out = append(out, mapper.DoctorModelToEntity(m))
	}
	return out, nil
}

func (r *DoctorRepositoryImpl) FindByIds(ctx context.Context, ids []uuid.UUID) ([]entity.Doctor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var models []model.Doctor
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]entity.Doctor, 0, len(models))
	for _, m := range models {
		out = append(out, mapper.DoctorModelToEntity(m))
	}
	return out, nil
}

type DoctorScheduleRepositoryImpl struct {
	db *gorm.DB
}

func NewDoctorScheduleRepository(db *gorm.DB) contract.DoctorScheduleRepository {
	return &DoctorScheduleRepositoryImpl{db: db}
}

type scheduleRow struct {
	model.DoctorSchedule
	DoctorName string
}

func (r *DoctorScheduleRepositoryImpl) FindUpcoming(ctx context.Context, from time.Time, limit int) ([]entity.DoctorSchedule, error) {
	var rows []scheduleRow
	query := r.db.WithContext(ctx).
		Model(&model.DoctorSchedule{}).
		Select("doctor_schedules.*, doctors.name AS doctor_name").
		Joins("LEFT JOIN doctors ON doctors.id = doctor_schedules.doctor_id").
		Where("doctor_schedules.practice_date >= ?", from).
		Order("doctor_schedules.practice_date ASC, doctor_schedules.start_time ASC")
	if err := withLimit(query, limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.DoctorSchedule, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapper.DoctorScheduleModelToEntity(row.DoctorSchedule, row.DoctorName))
	}
	return out, nil
}
