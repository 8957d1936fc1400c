package unitofwork

import "carepal-be/internal/repository/contract"

// RepositoryFactory hands out repositories bound to the ambient connection
// and creates units of work for transactional write paths.
type RepositoryFactory interface {
	NewUnitOfWork() UnitOfWork

	CustomerRepository() contract.CustomerRepository
	TreatmentVisitRepository() contract.TreatmentVisitRepository
	DiagnosisRepository() contract.DiagnosisRepository
	PrescriptionRepository() contract.PrescriptionRepository
	LabResultRepository() contract.LabResultRepository
	PhysicalConditionRepository() contract.PhysicalConditionRepository
	PregnancyRepository() contract.PregnancyRepository
	ANCVisitRepository() contract.ANCVisitRepository
	DeliveryRepository() contract.DeliveryRepository
	ImmunizationRepository() contract.ImmunizationRepository
	SupplementRepository() contract.SupplementRepository
	DoctorRepository() contract.DoctorRepository
	DoctorScheduleRepository() contract.DoctorScheduleRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	IntentExampleRepository() contract.IntentExampleRepository
	SystemLogRepository() contract.SystemLogRepository
}
