package entity

import "github.com/google/uuid"

// UserContext is the per-customer snapshot the recommendation engine and the
// response assembler read from. Recent slices hold at most the three newest
// records each.
type UserContext struct {
	CustomerId          uuid.UUID
	Name                string
	Email               string
	BloodType           string
	RecentVisits        []TreatmentVisit
	RecentDiagnoses     []Diagnosis
	RecentPrescriptions []Prescription
	RecentLabResults    []LabResult
	ActivePregnancy     *Pregnancy
}

// HasHistory reports whether any medical history exists to personalize on.
func (c UserContext) HasHistory() bool {
	return len(c.RecentVisits) > 0 ||
		len(c.RecentDiagnoses) > 0 ||
		len(c.RecentPrescriptions) > 0 ||
		len(c.RecentLabResults) > 0
}
