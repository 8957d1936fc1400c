package unitofwork

import (
	"gorm.io/gorm"

	"carepal-be/internal/repository/contract"
	"carepal-be/internal/repository/implementation"
)

type RepositoryFactoryImpl struct {
	db *gorm.DB
}

func NewRepositoryFactory(db *gorm.DB) RepositoryFactory {
	return &RepositoryFactoryImpl{db: db}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork() UnitOfWork {
	return newUnitOfWork(f.db)
}

func (f *RepositoryFactoryImpl) CustomerRepository() contract.CustomerRepository {
	return implementation.NewCustomerRepository(f.db)
}

func (f *RepositoryFactoryImpl) TreatmentVisitRepository() contract.TreatmentVisitRepository {
	return implementation.NewTreatmentVisitRepository(f.db)
}

func (f *RepositoryFactoryImpl) DiagnosisRepository() contract.DiagnosisRepository {
	return implementation.NewDiagnosisRepository(f.db)
}

func (f *RepositoryFactoryImpl) PrescriptionRepository() contract.PrescriptionRepository {
	return implementation.NewPrescriptionRepository(f.db)
}

func (f *RepositoryFactoryImpl) LabResultRepository() contract.LabResultRepository {
	return implementation.NewLabResultRepository(f.db)
}

func (f *RepositoryFactoryImpl) PhysicalConditionRepository() contract.PhysicalConditionRepository {
	return implementation.NewPhysicalConditionRepository(f.db)
}

func (f *RepositoryFactoryImpl) PregnancyRepository() contract.PregnancyRepository {
	return implementation.NewPregnancyRepository(f.db)
}

func (f *RepositoryFactoryImpl) ANCVisitRepository() contract.ANCVisitRepository {
	return implementation.NewANCVisitRepository(f.db)
}

func (f *RepositoryFactoryImpl) DeliveryRepository() contract.DeliveryRepository {
	return implementation.NewDeliveryRepository(f.db)
}

func (f *RepositoryFactoryImpl) ImmunizationRepository() contract.ImmunizationRepository {
	return implementation.NewImmunizationRepository(f.db)
}

func (f *RepositoryFactoryImpl) SupplementRepository() contract.SupplementRepository {
	return implementation.NewSupplementRepository(f.db)
}

func (f *RepositoryFactoryImpl) DoctorRepository() contract.DoctorRepository {
	return implementation.NewDoctorRepository(f.db)
}

func (f *RepositoryFactoryImpl) DoctorScheduleRepository() contract.DoctorScheduleRepository {
	return implementation.NewDoctorScheduleRepository(f.db)
}

func (f *RepositoryFactoryImpl) ChatSessionRepository() contract.ChatSessionRepository {
	return implementation.NewChatSessionRepository(f.db)
}

func (f *RepositoryFactoryImpl) ChatMessageRepository() contract.ChatMessageRepository {
	return implementation.NewChatMessageRepository(f.db)
}

func (f *RepositoryFactoryImpl) IntentExampleRepository() contract.IntentExampleRepository {
	return implementation.NewIntentExampleRepository(f.db)
}

func (f *RepositoryFactoryImpl) SystemLogRepository() contract.SystemLogRepository {
	return implementation.NewSystemLogRepository(f.db)
}
