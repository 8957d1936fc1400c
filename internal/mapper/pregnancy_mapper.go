package mapper

import (
	"carepal-be/internal/entity"
	"carepal-be/internal/model"
)

func PregnancyModelToEntity(m model.Pregnancy) entity.Pregnancy {
	return entity.Pregnancy{
		Id:               m.Id,
		CustomerId:       m.CustomerId,
		LMPDate:          m.LMPDate,
		EstimatedDueDate: m.EstimatedDueDate,
		Status:           m.Status,
		GravidaNumber:    m.GravidaNumber,
	}
}

func ANCVisitModelToEntity(m model.ANCVisit) entity.ANCVisit {
	return entity.ANCVisit{
		Id:               m.Id,
		PregnancyId:      m.PregnancyId,
		VisitDate:        m.VisitDate,
		GestationalWeeks: m.GestationalWeeks,
		WeightKg:         m.WeightKg,
		BloodPressure:    deref(m.BloodPressure),
		FetalHeartRate:   m.FetalHeartRate,
		Notes:            deref(m.Notes),
	}
}

func DeliveryModelToEntity(m model.Delivery) entity.Delivery {
	return entity.Delivery{
		Id:            m.Id,
		PregnancyId:   m.PregnancyId,
		BirthDate:     m.BirthDate,
		Place:         m.Place,
		Method:        m.Method,
		BabySex:       deref(m.BabySex),
		BabyWeightKg:  m.BabyWeightKg,
		BabyLengthCm:  m.BabyLengthCm,
		Complications: deref(m.Complications),
	}
}

func ImmunizationModelToEntity(m model.Immunization) entity.Immunization {
	return entity.Immunization{
		Id:          m.Id,
		PregnancyId: m.PregnancyId,
		VaccineType: m.VaccineType,
		GivenDate:   m.GivenDate,
		DoseNumber:  m.DoseNumber,
	}
}

func SupplementModelToEntity(m model.Supplement) entity.Supplement {
	return entity.Supplement{
		Id:         m.Id,
		ANCVisitId: m.ANCVisitId,
		Name:       m.Name,
		Dose:       m.Dose,
		Quantity:   m.Quantity,
		Notes:      deref(m.Notes),
	}
}
