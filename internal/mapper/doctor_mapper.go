package mapper

import (
	"carepal-be/internal/entity"
	"carepal-be/internal/model"
)

func DoctorModelToEntity(m model.Doctor) entity.Doctor {
	return entity.Doctor{
		Id:        m.Id,
		Name:      m.Name,
		Specialty: m.Specialty,
		Phone:     deref(m.Phone),
		Location:  deref(m.Location),
	}
}

func DoctorScheduleModelToEntity(m model.DoctorSchedule, doctorName string) entity.DoctorSchedule {
	return entity.DoctorSchedule{
		Id:           m.Id,
		DoctorId:     m.DoctorId,
		DoctorName:   doctorName,
		PracticeDate: m.PracticeDate,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Location:     deref(m.Location),
	}
}
