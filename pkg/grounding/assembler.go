package grounding

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"carepal-be/internal/entity"
	"carepal-be/internal/repository/specification"
	"carepal-be/internal/repository/unitofwork"
	"carepal-be/pkg/classify"
)

// sectionLimit caps how many rows of a section make it into the prompt. The
// prompt states the cap so the generator does not present a truncated list as
// complete.
const sectionLimit = 3

// Assembler routes a resolved intent to the record queries that ground its
// answer. Missing records are not errors: the section just comes back empty
// and the generator is instructed to say so.
type Assembler struct {
	repos     unitofwork.RepositoryFactory
	knowledge string // birth preparation guide text, loaded at boot
}

func NewAssembler(repos unitofwork.RepositoryFactory, knowledge string) *Assembler {
	return &Assembler{
		repos:     repos,
		knowledge: knowledge,
	}
}

// BuildContext assembles the grounding context for one intent and customer.
func (a *Assembler) BuildContext(ctx context.Context, intent classify.Intent, customerId uuid.UUID) (*IntentContext, error) {
	out := &IntentContext{Description: classify.Describe(intent)}

	var err error
	switch intent {
	case classify.IntentANCTracker, classify.IntentANCReminder:
		err = a.addPregnancyWithVisits(ctx, out, customerId)
	case classify.IntentImmunizationTracker:
		err = a.addImmunizations(ctx, out, customerId)
	case classify.IntentBirthPrepGuide:
		out.Knowledge = a.knowledge
		err = a.addActivePregnancy(ctx, out, customerId)
	case classify.IntentDeliveryHistory:
		err = a.addDeliveries(ctx, out, customerId)
	case classify.IntentSupplementHistory:
		err = a.addSupplements(ctx, out, customerId)
	case classify.IntentCustomerData:
		err = a.addCustomerProfile(ctx, out, customerId, false)
	case classify.IntentBloodType:
		err = a.addCustomerProfile(ctx, out, customerId, true)
	case classify.IntentDoctorDetail:
		err = a.addDoctors(ctx, out, customerId)
	case classify.IntentDoctorSchedule:
		err = a.addDoctorSchedules(ctx, out)
	case classify.IntentPrescriptionDetail, classify.IntentPrescriptionHistory:
		err = a.addPrescriptions(ctx, out, customerId)
	case classify.IntentLabResultDetail, classify.IntentLabResultSummary:
		err = a.addLabResults(ctx, out, customerId)
	case classify.IntentTreatmentHistory:
		err = a.addTreatmentVisits(ctx, out, customerId)
	case classify.IntentDiagnosisHistory:
		err = a.addDiagnoses(ctx, out, customerId)
	case classify.IntentPhysicalConditionHistory:
		err = a.addPhysicalConditions(ctx, out, customerId)
	default:
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

// PregnancyState fetches the active pregnancy and its visits for the
// deterministic ANC reminder path.
func (a *Assembler) PregnancyState(ctx context.Context, customerId uuid.UUID) (*entity.Pregnancy, []entity.ANCVisit, error) {
	pregnancy, err := a.repos.PregnancyRepository().FindActiveByCustomer(ctx, customerId)
	if err != nil {
		return nil, nil, fmt.Errorf("find active pregnancy: %w", err)
	}
	if pregnancy == nil {
		return nil, nil, nil
	}
	visits, err := a.repos.ANCVisitRepository().FindByPregnancyIds(ctx, []uuid.UUID{pregnancy.Id})
	if err != nil {
		return nil, nil, fmt.Errorf("find anc visits: %w", err)
	}
	return pregnancy, visits, nil
}

func (a *Assembler) pregnancyIds(ctx context.Context, customerId uuid.UUID) ([]entity.Pregnancy, []uuid.UUID, error) {
	pregnancies, err := a.repos.PregnancyRepository().FindByCustomer(ctx, customerId)
	if err != nil {
		return nil, nil, fmt.Errorf("find pregnancies: %w", err)
	}
	ids := make([]uuid.UUID, 0, len(pregnancies))
	for _, p := range pregnancies {
		ids = append(ids, p.Id)
	}
	return pregnancies, ids, nil
}

func (a *Assembler) addPregnancyWithVisits(ctx context.Context, out *IntentContext, customerId uuid.UUID) error {
	pregnancies, ids, err := a.pregnancyIds(ctx, customerId)
	if err != nil {
		return err
	}
	out.Sections = append(out.Sections, pregnancySection(pregnancies))

	visits, err := a.repos.ANCVisitRepository().FindByPregnancyIds(ctx, ids)
	if err != nil {
		return fmt.Errorf("find anc visits: %w", err)
	}
	records := make([]Record, 0, len(visits))
	for _, v := range visits {
		r := Record{
			{"tanggal", fmtDate(v.VisitDate)},
			{"usia kehamilan", fmt.Sprintf("%d minggu", v.GestationalWeeks)},
		}
		if v.WeightKg != nil {
			r = append(r, Field{"berat badan", fmtFloat(*v.WeightKg) + " kg"})
		}
		if v.BloodPressure != "" {
			r = append(r, Field{"tekanan darah", v.BloodPressure})
		}
		if v.FetalHeartRate != nil {
			r = append(r, Field{"detak jantung janin", strconv.Itoa(*v.FetalHeartRate)})
		}
		if v.Notes != "" {
			r = append(r, Field{"catatan", v.Notes})
		}
		records = append(records, r)
	}
	out.Sections = append(out.Sections, Section{Title: "Kunjungan ANC", Records: records})
	return nil
}

func (a *Assembler) addActivePregnancy(ctx context.Context, out *IntentContext, customerId uuid.UUID) error {
	pregnancy, err := a.repos.PregnancyRepository().FindActiveByCustomer(ctx, customerId)
	if err != nil {
		return fmt.Errorf("find active pregnancy: %w", err)
	}
	if pregnancy == nil {
		out.Sections = append(out.Sections, Section{Title: "Kehamilan"})
		return nil
	}
	out.Sections = append(out.Sections, pregnancySection([]entity.Pregnancy{*pregnancy}))
	return nil
}

func (a *Assembler) addImmunizations(ctx context.Context, out *IntentContext, customerId uuid.UUID) error {
	_, ids, err := a.pregnancyIds(ctx, customerId)
	if err != nil {
		return err
	}
	items, err := a.repos.ImmunizationRepository().FindByPregnancyIds(ctx, ids)
	if err != nil {
		return fmt.Errorf("find immunizations: %w", err)
	}
	records := make([]Record, 0, len(items))
	for _, im := range items {
		records = append(records, Record{
			{"vaksin", im.VaccineType},
			{"tanggal", fmtDate(im.GivenDate)},
			{"dosis ke", strconv.Itoa(im.DoseNumber)},
		})
	}
	out.Sections = append(out.Sections, Section{Title: "Imunisasi Kehamilan", Records: records})
	return nil
}

func (a *Assembler) addDeliveries(ctx context.Context, out *IntentContext, customerId uuid.UUID) error {
	_, ids, err := a.pregnancyIds(ctx, customerId)
	if err != nil {
		return err
	}
	items, err := a.repos.DeliveryRepository().FindByPregnancyIds(ctx, ids)
	if err != nil {
		return fmt.Errorf("find deliveries: %w", err)
	}
	records := make([]Record, 0, len(items))
	for _, d := range items {
		r := Record{
			{"tanggal", fmtDate(d.BirthDate)},
			{"tempat", d.Place},
			{"metode", d.Method},
		}
		if d.BabySex != "" {
			r = append(r, Field{"jenis kelamin bayi", d.BabySex})
		}
		if d.BabyWeightKg != nil {
			r = append(r, Field{"berat bayi", fmtFloat(*d.BabyWeightKg) + " kg"})
		}
		if d.Complications != "" {
			r = append(r, Field{"komplikasi", d.Complications})
		}
		records = append(records, r)
	}
	out.Sections = append(out.Sections, Section{Title: "Riwayat Persalinan", Records: records})
	return nil
}

func (a *Assembler) addSupplements(ctx context.Context, out *IntentContext, customerId uuid.UUID) error {
	_, ids, err := a.pregnancyIds(ctx, customerId)
	if err != nil {
		return err
	}
	visits, err := a.repos.ANCVisitRepository().FindByPregnancyIds(ctx, ids)
	if err != nil {
		return fmt.Errorf("find anc visits: %w", err)
	}
	visitIds := make([]uuid.UUID, 0, len(visits))
	visitDates := make(map[uuid.UUID]time.Time, len(visits))
	for _, v := range visits {
		visitIds = append(visitIds, v.Id)
		visitDates[v.Id] = v.VisitDate
	}

	items, err := a.repos.SupplementRepository().FindByANCVisitIds(ctx, visitIds)
	if err != nil {
		return fmt.Errorf("find supplements: %w", err)
	}
	records := make([]Record, 0, len(items))
	for _, s := range items {
		r := Record{
			{"suplemen", s.Name},
			{"dosis", s.Dose},
		}
		if date, ok := visitDates[s.ANCVisitId]; ok {
			r = append(r, Field{"diberikan pada", fmtDate(date)})
		}
		records = append(records, r)
	}
	out.Sections = append(out.Sections, Section{Title: "Suplemen Kehamilan", Records: records})
	return nil
}

func (a *Assembler) addCustomerProfile(ctx context.Context, out *IntentContext, customerId uuid.UUID, bloodTypeOnly bool) error {
	customer, err := a.repos.CustomerRepository().FindOne(ctx, specification.ByID{ID: customerId})
	if err != nil {
		return fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		out.Sections = append(out.Sections, Section{Title: "Data Pasien"})
		return nil
	}

	if bloodTypeOnly {
		r := Record{{"nama", customer.Name}}
		if customer.BloodType != "" {
			r = append(r, Field{"golongan darah", customer.BloodType})
		} else {
			r = append(r, Field{"golongan darah", "belum tercatat"})
		}
		out.Sections = append(out.Sections, Section{Title: "Golongan Darah", Records: []Record{r}})
		return nil
	}

	r := Record{{"nama", customer.Name}}
	if customer.BirthDate != nil {
		r = append(r, Field{"tanggal lahir", fmtDate(*customer.BirthDate)})
	}
	if customer.Address != "" {
		r = append(r, Field{"alamat", customer.Address})
	}
	if customer.Phone != "" {
		r = append(r, Field{"no. telepon", customer.Phone})
	}
	if customer.Email != "" {
		r = append(r, Field{"email", customer.Email})
	}
	if customer.BloodType != "" {
		r = append(r, Field{"golongan darah", customer.BloodType})
	}
	out.Sections = append(out.Sections, Section{Title: "Data Pasien", Records: []Record{r}})
	return nil
}

func (a *Assembler) addDoctors(ctx context.Context, out *IntentContext, customerId uuid.UUID) error {
	// Doctors who handled the customer's recent visits, falling back to the
	// full roster when there is no visit history.
	visits, err := a.repos.TreatmentVisitRepository().FindRecentByCustomer(ctx, customerId, sectionLimit)
	if err != nil {
		return fmt.Errorf("find visits: %w", err)
	}

	var doctors []entity.Doctor
	if len(visits) > 0 {
		ids := make([]uuid.UUID, 0, len(visits))
		for _, v := range visits {
			ids = append(ids, v.DoctorId)
		}
		doctors, err = a.repos.DoctorRepository().FindByIds(ctx, ids)
	} else {
		doctors, err = a.repos.DoctorRepository().FindAll(ctx)
	}
	if err != nil {
		return fmt.Errorf("find doctors: %w", err)
	}

	records := make([]Record, 0, len(doctors))
	for _, d := range doctors {
		r := Record{
			{"nama", d.Name},
			{"spesialisasi", d.Specialty},
		}
		if d.Location != "" {
			r = append(r, Field{"lokasi praktik", d.Location})
		}
		records = append(records, r)
	}
	out.Sections = append(out.Sections, Section{Title: "Dokter", Records: records})
	return nil
}

func (a *Assembler) addDoctorSchedules(ctx context.Context, out *IntentContext) error {
	schedules, err := a.repos.DoctorScheduleRepository().FindUpcoming(ctx, time.Now(), sectionLimit)
	if err != nil {
		return fmt.Errorf("find schedules: %w", err)
	}
	records := make([]Record, 0, len(schedules))
	for _, s := range schedules {
		r := Record{
			{"dokter", s.DoctorName},
			{"tanggal", fmtDate(s.PracticeDate)},
			{"jam", s.StartTime + "-" + s.EndTime},
		}
		if s.Location != "" {
			r = append(r, Field{"lokasi", s.Location})
		}
		records = append(records, r)
	}
	out.Sections = append(out.Sections, Section{Title: "Jadwal Dokter", Records: records})
	return nil
}

func (a *Assembler) addPrescriptions(ctx context.Context, out *IntentContext, customerId uuid.UUID) error {
	items, err := a.repos.PrescriptionRepository().FindRecentByCustomer(ctx, customerId, 0)
	if err != nil {
		return fmt.Errorf("find prescriptions: %w", err)
	}
	records := make([]Record, 0, len(items))
	for _, p := range items {
		r := Record{
			{"obat", p.DrugName},
			{"dosis", p.Dose},
			{"aturan pakai", p.Frequency},
		}
		if p.Notes != "" {
			r = append(r, Field{"catatan", p.Notes})
		}
		records = append(records, r)
	}
	out.Sections = append(out.Sections, Section{Title: "Resep Obat", Records: records})
	return nil
}

func (a *Assembler) addLabResults(ctx context.Context, out *IntentContext, customerId uuid.UUID) error {
	items, err := a.repos.LabResultRepository().FindRecentByCustomer(ctx, customerId, 0)
	if err != nil {
		return fmt.Errorf("find lab results: %w", err)
	}
	records := make([]Record, 0, len(items))
	for _, l := range items {
		r := Record{
			{"pemeriksaan", l.TestType},
			{"tanggal", fmtDate(l.TestDate)},
			{"hasil", l.ResultValue},
		}
		if l.Unit != "" {
			r = append(r, Field{"satuan", l.Unit})
		}
		if l.ReferenceRange != "" {
			r = append(r, Field{"nilai rujukan", l.ReferenceRange})
		}
		records = append(records, r)
	}
	out.Sections = append(out.Sections, Section{Title: "Hasil Laboratorium", Records: records})
	return nil
}

func (a *Assembler) addTreatmentVisits(ctx context.Context, out *IntentContext, customerId uuid.UUID) error {
	items, err := a.repos.TreatmentVisitRepository().FindRecentByCustomer(ctx, customerId, 0)
	if err != nil {
		return fmt.Errorf("find visits: %w", err)
	}
	records := make([]Record, 0, len(items))
	for _, v := range items {
		r := Record{
			{"tanggal", fmtDate(v.VisitDate)},
			{"dokter", v.DoctorName},
			{"keluhan", v.Complaint},
		}
		if v.Notes != "" {
			r = append(r, Field{"catatan", v.Notes})
		}
		records = append(records, r)
	}
	out.Sections = append(out.Sections, Section{Title: "Riwayat Berobat", Records: records})
	return nil
}

func (a *Assembler) addDiagnoses(ctx context.Context, out *IntentContext, customerId uuid.UUID) error {
	items, err := a.repos.DiagnosisRepository().FindRecentByCustomer(ctx, customerId, 0)
	if err != nil {
		return fmt.Errorf("find diagnoses: %w", err)
	}
	records := make([]Record, 0, len(items))
	for _, d := range items {
		r := Record{
			{"diagnosis", d.Name},
			{"tanggal", fmtDate(d.VisitDate)},
		}
		if d.Code != "" {
			r = append(r, Field{"kode", d.Code})
		}
		if d.Notes != "" {
			r = append(r, Field{"catatan", d.Notes})
		}
		records = append(records, r)
	}
	out.Sections = append(out.Sections, Section{Title: "Riwayat Diagnosis", Records: records})
	return nil
}

func (a *Assembler) addPhysicalConditions(ctx context.Context, out *IntentContext, customerId uuid.UUID) error {
	items, err := a.repos.PhysicalConditionRepository().FindRecentByCustomer(ctx, customerId, 0)
	if err != nil {
		return fmt.Errorf("find physical conditions: %w", err)
	}
	records := make([]Record, 0, len(items))
	for _, c := range items {
		r := Record{{"tanggal", fmtDate(c.CheckDate)}}
		if c.WeightKg != nil {
			r = append(r, Field{"berat badan", fmtFloat(*c.WeightKg) + " kg"})
		}
		if c.HeightCm != nil {
			r = append(r, Field{"tinggi badan", fmtFloat(*c.HeightCm) + " cm"})
		}
		if c.BloodPressure != "" {
			r = append(r, Field{"tekanan darah", c.BloodPressure})
		}
		records = append(records, r)
	}
	out.Sections = append(out.Sections, Section{Title: "Riwayat Kondisi Fisik", Records: records})
	return nil
}

func pregnancySection(pregnancies []entity.Pregnancy) Section {
	records := make([]Record, 0, len(pregnancies))
	for _, p := range pregnancies {
		r := Record{
			{"HPHT", fmtDate(p.LMPDate)},
			{"status", p.Status},
			{"kehamilan ke", strconv.Itoa(p.GravidaNumber)},
		}
		if p.EstimatedDueDate != nil {
			r = append(r, Field{"perkiraan lahir", fmtDate(*p.EstimatedDueDate)})
		}
		records = append(records, r)
	}
	return Section{Title: "Kehamilan", Records: records}
}

func fmtDate(t time.Time) string {
	return t.Format("02-01-2006")
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
