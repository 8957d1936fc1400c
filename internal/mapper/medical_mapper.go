package mapper

import (
	"time"

	"carepal-be/internal/entity"
	"carepal-be/internal/model"
)

func TreatmentVisitModelToEntity(m model.TreatmentVisit, doctorName string) entity.TreatmentVisit {
	return entity.TreatmentVisit{
		Id:         m.Id,
		CustomerId: m.CustomerId,
		DoctorId:   m.DoctorId,
		DoctorName: doctorName,
		VisitDate:  m.VisitDate,
		Complaint:  m.Complaint,
		Notes:      deref(m.Notes),
	}
}

func DiagnosisModelToEntity(m model.Diagnosis, visitDate time.Time) entity.Diagnosis {
	return entity.Diagnosis{
		Id:        m.Id,
		VisitId:   m.VisitId,
		Code:      m.Code,
		Name:      m.Name,
		Notes:     deref(m.Notes),
		VisitDate: visitDate,
	}
}

func PrescriptionModelToEntity(m model.Prescription) entity.Prescription {
	return entity.Prescription{
		Id:        m.Id,
		VisitId:   m.VisitId,
		DrugName:  m.DrugName,
		Dose:      m.Dose,
		Frequency: m.Frequency,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Notes:     deref(m.Notes),
	}
}

func LabResultModelToEntity(m model.LabResult) entity.LabResult {
	return entity.LabResult{
		Id:             m.Id,
		CustomerId:     m.CustomerId,
		TestType:       m.TestType,
		TestDate:       m.TestDate,
		ResultValue:    m.ResultValue,
		Unit:           deref(m.Unit),
		ReferenceRange: deref(m.ReferenceRange),
		Notes:          deref(m.Notes),
	}
}

func PhysicalConditionModelToEntity(m model.PhysicalCondition) entity.PhysicalCondition {
	return entity.PhysicalCondition{
		Id:            m.Id,
		CustomerId:    m.CustomerId,
		CheckDate:     m.CheckDate,
		WeightKg:      m.WeightKg,
		HeightCm:      m.HeightCm,
		BloodPressure: deref(m.BloodPressure),
		Notes:         deref(m.Notes),
	}
}
