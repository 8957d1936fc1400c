// Package classify implements the message understanding pipeline: a semantic
// scope gate, a two-class domain classifier and per-domain intent classifiers,
// composed with a deterministic fallback policy.
package classify

// Domain partitions in-scope messages. Values match the labels the domain
// model was trained on.
type Domain string

const (
	DomainNone      Domain = "NONE"
	DomainPregnancy Domain = "KEHAMILAN"
	DomainGeneral   Domain = "UMUM"
)

// Intent is an actionable user goal. Values match the labels of the intent
// models and the keys of the recommendation table.
type Intent string

const (
	IntentNone Intent = "NONE"

	// Pregnancy domain
	IntentANCTracker          Intent = "anc_tracker"
	IntentImmunizationTracker Intent = "imunisasi_tracker"
	IntentBirthPrepGuide      Intent = "panduan_persiapan_persalinan"
	IntentANCReminder         Intent = "reminder_kontrol_kehamilan"
	IntentDeliveryHistory     Intent = "riwayat_persalinan"
	IntentSupplementHistory   Intent = "riwayat_suplemen_kehamilan"

	// General domain
	IntentCustomerData             Intent = "cek_data_customer"
	IntentBloodType                Intent = "cek_golongan_darah"
	IntentDoctorDetail             Intent = "detail_dokter"
	IntentPrescriptionDetail       Intent = "detail_preskripsi_obat"
	IntentLabResultDetail          Intent = "hasil_lab_detail"
	IntentLabResultSummary         Intent = "hasil_lab_ringkasan"
	IntentDoctorSchedule           Intent = "jadwal_dokter"
	IntentTreatmentHistory         Intent = "riwayat_berobat"
	IntentDiagnosisHistory         Intent = "riwayat_diagnosis"
	IntentPhysicalConditionHistory Intent = "riwayat_kondisi_fisik"
	IntentPrescriptionHistory      Intent = "riwayat_preskripsi_obat"
)

// pregnancyIntents and generalIntents are in model label-index order. Keep
// that order: it is also the order corpora and seed data use.
var pregnancyIntents = []Intent{
	IntentANCTracker,
	IntentImmunizationTracker,
	IntentBirthPrepGuide,
	IntentANCReminder,
	IntentDeliveryHistory,
	IntentSupplementHistory,
}

var generalIntents = []Intent{
	IntentCustomerData,
	IntentBloodType,
	IntentDoctorDetail,
	IntentPrescriptionDetail,
	IntentLabResultDetail,
	IntentLabResultSummary,
	IntentDoctorSchedule,
	IntentTreatmentHistory,
	IntentDiagnosisHistory,
	IntentPhysicalConditionHistory,
	IntentPrescriptionHistory,
}

var intentDomains = buildIntentDomains()

func buildIntentDomains() map[Intent]Domain {
	m := make(map[Intent]Domain, len(pregnancyIntents)+len(generalIntents))
	for _, it := range pregnancyIntents {
		m[it] = DomainPregnancy
	}
	for _, it := range generalIntents {
		m[it] = DomainGeneral
	}
	return m
}

// intentDescriptions feed the prompt builder so the generator knows what each
// resolved intent means.
var intentDescriptions = map[Intent]string{
	IntentANCTracker:          "Memantau riwayat dan perkembangan kunjungan ANC (antenatal care) pasien.",
	IntentImmunizationTracker: "Melihat riwayat imunisasi yang diterima selama kehamilan.",
	IntentBirthPrepGuide:      "Memberikan panduan persiapan persalinan.",
	IntentANCReminder:         "Menghitung dan mengingatkan jadwal kontrol kehamilan berikutnya.",
	IntentDeliveryHistory:     "Melihat riwayat persalinan pasien.",
	IntentSupplementHistory:   "Melihat riwayat suplemen yang diberikan selama kehamilan.",

	IntentCustomerData:             "Menampilkan data profil pasien yang terdaftar.",
	IntentBloodType:                "Menampilkan golongan darah pasien.",
	IntentDoctorDetail:             "Menampilkan detail dokter yang menangani pasien.",
	IntentPrescriptionDetail:       "Menampilkan detail resep obat tertentu.",
	IntentLabResultDetail:          "Menampilkan detail hasil pemeriksaan laboratorium.",
	IntentLabResultSummary:         "Menampilkan ringkasan hasil laboratorium terbaru.",
	IntentDoctorSchedule:           "Menampilkan jadwal praktik dokter.",
	IntentTreatmentHistory:         "Menampilkan riwayat kunjungan berobat pasien.",
	IntentDiagnosisHistory:         "Menampilkan riwayat diagnosis pasien.",
	IntentPhysicalConditionHistory: "Menampilkan riwayat kondisi fisik pasien (berat badan, tekanan darah).",
	IntentPrescriptionHistory:      "Menampilkan riwayat resep obat pasien.",
}

// IntentsForDomain returns the intent subset tagged with the given domain, in
// label order. Unknown domains get an empty set.
func IntentsForDomain(d Domain) []Intent {
	switch d {
	case DomainPregnancy:
		out := make([]Intent, len(pregnancyIntents))
		copy(out, pregnancyIntents)
		return out
	case DomainGeneral:
		out := make([]Intent, len(generalIntents))
		copy(out, generalIntents)
		return out
	default:
		return nil
	}
}

// DomainOf returns the domain an intent is tagged with, or DomainNone for
// unknown labels and IntentNone.
func DomainOf(it Intent) Domain {
	if d, ok := intentDomains[it]; ok {
		return d
	}
	return DomainNone
}

// ParseIntent maps a raw model label onto a known intent.
func ParseIntent(label string) (Intent, bool) {
	it := Intent(label)
	_, ok := intentDomains[it]
	return it, ok
}

// ParseDomain maps a raw model label onto a known domain.
func ParseDomain(label string) (Domain, bool) {
	switch Domain(label) {
	case DomainPregnancy:
		return DomainPregnancy, true
	case DomainGeneral:
		return DomainGeneral, true
	default:
		return DomainNone, false
	}
}

// Describe returns the human description of an intent, empty for unknown ones.
func Describe(it Intent) string {
	return intentDescriptions[it]
}

// AllIntents returns every known intent, pregnancy first, in label order.
func AllIntents() []Intent {
	out := make([]Intent, 0, len(pregnancyIntents)+len(generalIntents))
	out = append(out, pregnancyIntents...)
	out = append(out, generalIntents...)
	return out
}
