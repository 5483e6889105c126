package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
)

// TreatmentPlanService manages treatment plans.
type TreatmentPlanService struct {
	planRepo     portsrepo.TreatmentPlanRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

func NewTreatmentPlanService(planRepo portsrepo.TreatmentPlanRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade) *TreatmentPlanService {
	return &TreatmentPlanService{planRepo: planRepo, customerRepo: customerRepo}
}

func (s *TreatmentPlanService) GetTreatmentPlanByID(ctx context.Context, planID string) (*domain.TreatmentPlan, error) {
	plan, err := s.planRepo.FindTreatmentPlanByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to get treatment plan %s: %w", planID, err)
	}
	return plan, nil
}

func (s *TreatmentPlanService) ListTreatmentPlansByCustomer(ctx context.Context, customerID string) ([]domain.TreatmentPlan, error) {
	plans, err := s.planRepo.ListTreatmentPlansByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list treatment plans for customer %s: %w", customerID, err)
	}
	if plans == nil {
		return []domain.TreatmentPlan{}, nil
	}
	return plans, nil
}

func toPlanItems(items []dto.PlanItemRequest) []domain.TreatmentPlanItem {
	out := make([]domain.TreatmentPlanItem, len(items))
	for i, item := range items {
		out[i] = domain.TreatmentPlanItem{
			ServiceName: item.ServiceName,
			ToothRange:  item.ToothRange,
			Note:        item.Note,
		}
	}
	return out
}

// CreateTreatmentPlan creates a plan in the PROPOSED state.
func (s *TreatmentPlanService) CreateTreatmentPlan(ctx context.Context, req dto.CreateTreatmentPlanRequest, creatorID string) (*domain.TreatmentPlan, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("failed to resolve customer %s: %w", req.CustomerID, err)
	}

	now := time.Now()
	plan := domain.TreatmentPlan{
		PlanID:     uuid.NewString(),
		CustomerID: req.CustomerID,
		Name:       req.Name,
		Status:     domain.PlanProposed,
		Items:      toPlanItems(req.Items),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}
	if err := s.planRepo.CreateTreatmentPlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create treatment plan: %w", err)
	}
	return &plan, nil
}

// UpdateTreatmentPlan updates a plan's fields; a provided item list
// replaces the stored one wholesale.
func (s *TreatmentPlanService) UpdateTreatmentPlan(ctx context.Context, planID string, req dto.UpdateTreatmentPlanRequest, updaterID string) (*domain.TreatmentPlan, error) {
	plan, err := s.planRepo.FindTreatmentPlanByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to get treatment plan %s for update: %w", planID, err)
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Status != nil {
		plan.Status = domain.TreatmentPlanStatus(*req.Status)
	}
	if req.Items != nil {
		plan.Items = toPlanItems(req.Items)
	}
	plan.LastUpdatedAt = time.Now()
	plan.LastUpdatedBy = updaterID

	if err := s.planRepo.UpdateTreatmentPlan(ctx, *plan); err != nil {
		return nil, fmt.Errorf("failed to update treatment plan %s: %w", planID, err)
	}
	return plan, nil
}
