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

const defaultRecentCallLimit = 50

// FollowUpService manages the append-only care-call log.
type FollowUpService struct {
	followUpRepo portsrepo.FollowUpRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

func NewFollowUpService(followUpRepo portsrepo.FollowUpRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade) *FollowUpService {
	return &FollowUpService{followUpRepo: followUpRepo, customerRepo: customerRepo}
}

// AddFollowUpCall appends one call record. Calls are never edited or
// deleted afterwards.
func (s *FollowUpService) AddFollowUpCall(ctx context.Context, req dto.CreateFollowUpCallRequest, creatorID string) (*domain.FollowUpCall, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("failed to resolve customer %s: %w", req.CustomerID, err)
	}

	call := domain.FollowUpCall{
		CallID:       uuid.NewString(),
		CustomerID:   req.CustomerID,
		CallDate:     req.CallDate,
		Result:       req.Result,
		Notes:        req.Notes,
		NextCallDate: req.NextCallDate,
		CreatedAt:    time.Now(),
		CreatedBy:    creatorID,
	}
	if err := s.followUpRepo.CreateFollowUpCall(ctx, call); err != nil {
		return nil, fmt.Errorf("failed to create follow-up call: %w", err)
	}
	return &call, nil
}

func (s *FollowUpService) ListFollowUpCallsByCustomer(ctx context.Context, customerID string) ([]domain.FollowUpCall, error) {
	calls, err := s.followUpRepo.ListFollowUpCallsByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow-up calls for customer %s: %w", customerID, err)
	}
	if calls == nil {
		return []domain.FollowUpCall{}, nil
	}
	return calls, nil
}

func (s *FollowUpService) ListRecentFollowUpCalls(ctx context.Context, limit int) ([]domain.FollowUpCall, error) {
	if limit <= 0 {
		limit = defaultRecentCallLimit
	}
	calls, err := s.followUpRepo.ListRecentFollowUpCalls(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent follow-up calls: %w", err)
	}
	if calls == nil {
		return []domain.FollowUpCall{}, nil
	}
	return calls, nil
}
