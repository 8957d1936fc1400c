package grounding

import (
	"fmt"
	"time"

	"carepal-be/internal/entity"
	"carepal-be/internal/model"
)

// Schedule is the deterministic ANC reminder computation. It never goes
// through the generation service: dates must be exact.
type Schedule struct {
	HasActivePregnancy bool
	GestationalWeeks   int
	NextVisitDate      time.Time
	Overdue            bool
	Message            string
}

// visit intervals by gestational age, following the standard ANC cadence:
// monthly until week 28, fortnightly until week 36, weekly after.
func ancInterval(weeks int) time.Duration {
	const week = 7 * 24 * time.Hour
	switch {
	case weeks <= 28:
		return 4 * week
	case weeks <= 36:
		return 2 * week
	default:
		return week
	}
}

// ComputeANCSchedule derives the next control visit for a pregnancy. now is
// injected so the math is testable. visits may be empty; the newest visit
// date anchors the interval, otherwise the LMP does.
func ComputeANCSchedule(pregnancy *entity.Pregnancy, visits []entity.ANCVisit, now time.Time) Schedule {
	if pregnancy == nil {
		return Schedule{
			Message: "Saat ini tidak ada data kehamilan aktif atas nama Anda. Jika Anda sedang hamil, silakan hubungi fasilitas kesehatan untuk mendaftarkan kehamilan Anda.",
		}
	}

	switch pregnancy.Status {
	case model.PregnancyStatusActive:
		// continue below
	case model.PregnancyStatusDelivered:
		return Schedule{
			Message: "Selamat! Kehamilan Anda tercatat sudah selesai. Jadwal kontrol kehamilan tidak lagi berlaku. Untuk kontrol pasca persalinan, silakan konsultasikan dengan dokter Anda.",
		}
	default:
		return Schedule{
			Message: fmt.Sprintf("Status kehamilan Anda (%s) tidak dikenali, sehingga jadwal kontrol tidak dapat dihitung. Silakan hubungi fasilitas kesehatan Anda.", pregnancy.Status),
		}
	}

	weeks := int(now.Sub(pregnancy.LMPDate).Hours() / 24 / 7)
	if weeks < 0 {
		weeks = 0
	}

	var next time.Time
	if weeks <= 12 {
		// First trimester: the next milestone visit is at week 13.
		next = pregnancy.LMPDate.Add(13 * 7 * 24 * time.Hour)
	} else {
		anchor := pregnancy.LMPDate
		for _, v := range visits {
			if v.VisitDate.After(anchor) {
				anchor = v.VisitDate
			}
		}
		next = anchor.Add(ancInterval(weeks))
	}

	overdue := !next.After(now)
	if overdue {
		next = now.Add(24 * time.Hour)
	}

	s := Schedule{
		HasActivePregnancy: true,
		GestationalWeeks:   weeks,
		NextVisitDate:      next,
		Overdue:            overdue,
	}
	s.Message = renderScheduleMessage(s)
	return s
}

func renderScheduleMessage(s Schedule) string {
	date := s.NextVisitDate.Format("02-01-2006")
	if s.Overdue {
		return fmt.Sprintf(
			"Usia kehamilan Anda saat ini sekitar %d minggu. Jadwal kontrol Anda sudah terlewat. Mohon segera lakukan kunjungan ANC, paling lambat %s.",
			s.GestationalWeeks, date)
	}
	return fmt.Sprintf(
		"Usia kehamilan Anda saat ini sekitar %d minggu. Jadwal kontrol kehamilan berikutnya adalah tanggal %s. Jangan lupa membawa buku KIA Anda.",
		s.GestationalWeeks, date)
}
