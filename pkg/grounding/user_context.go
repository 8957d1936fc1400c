package grounding

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"carepal-be/internal/entity"
	"carepal-be/internal/repository/specification"
	"carepal-be/internal/repository/unitofwork"
)

// recentLimit is how many of each record type the user context carries.
const recentLimit = 3

// BuildUserContext snapshots a customer's recent history for the
// recommendation engine. A customer with no records still gets a valid,
// empty context.
func BuildUserContext(ctx context.Context, repos unitofwork.RepositoryFactory, customerId uuid.UUID) (*entity.UserContext, error) {
	customer, err := repos.CustomerRepository().FindOne(ctx, specification.ByID{ID: customerId})
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s not found", customerId)
	}

	out := &entity.UserContext{
		CustomerId: customer.Id,
		Name:       customer.Name,
		Email:      customer.Email,
		BloodType:  customer.BloodType,
	}

	if out.RecentVisits, err = repos.TreatmentVisitRepository().FindRecentByCustomer(ctx, customerId, recentLimit); err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	if out.RecentDiagnoses, err = repos.DiagnosisRepository().FindRecentByCustomer(ctx, customerId, recentLimit); err != nil {
		return nil, fmt.Errorf("recent diagnoses: %w", err)
	}
	if out.RecentPrescriptions, err = repos.PrescriptionRepository().FindRecentByCustomer(ctx, customerId, recentLimit); err != nil {
		return nil, fmt.Errorf("recent prescriptions: %w", err)
	}
	if out.RecentLabResults, err = repos.LabResultRepository().FindRecentByCustomer(ctx, customerId, recentLimit); err != nil {
		return nil, fmt.Errorf("recent lab results: %w", err)
	}
	if out.ActivePregnancy, err = repos.PregnancyRepository().FindActiveByCustomer(ctx, customerId); err != nil {
		return nil, fmt.Errorf("active pregnancy: %w", err)
	}

	return out, nil
}
