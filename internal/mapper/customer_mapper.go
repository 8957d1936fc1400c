package mapper

import (
	"carepal-be/internal/entity"
	"carepal-be/internal/model"
)

func CustomerModelToEntity(m *model.Customer) *entity.Customer {
	if m == nil {
		return nil
	}
	return &entity.Customer{
		Id:           m.Id,
		NIK:          m.NIK,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Email:        deref(m.Email),
		Phone:        deref(m.Phone),
		Address:      deref(m.Address),
		BirthDate:    m.BirthDate,
		BloodType:    deref(m.BloodType),
		CreatedAt:    m.CreatedAt,
	}
}

func CustomerEntityToModel(e *entity.Customer) *model.Customer {
	if e == nil {
		return nil
	}
	return &model.Customer{
		Id:           e.Id,
		NIK:          e.NIK,
		PasswordHash: e.PasswordHash,
		Name:         e.Name,
		Email:        optional(e.Email),
		Phone:        optional(e.Phone),
		Address:      optional(e.Address),
		BirthDate:    e.BirthDate,
		BloodType:    optional(e.BloodType),
	}
}
