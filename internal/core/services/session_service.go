package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
)

// SessionService manages per-day treatment sessions. At most one session
// exists per (customer, day); it is keyed by the natural
// "{customerID}_{YYYY-MM-DD}" ID.
type SessionService struct {
	sessionRepo  portsrepo.SessionRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

func NewSessionService(sessionRepo portsrepo.SessionRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade) *SessionService {
	return &SessionService{sessionRepo: sessionRepo, customerRepo: customerRepo}
}

// AddSessionDetails appends procedures to the customer's session on the
// given day. An existing session keeps its stored details; the new ones are
// merged after them. A day with no session gets a fresh one.
func (s *SessionService) AddSessionDetails(ctx context.Context, req dto.AddSessionDetailsRequest, updaterID string) (*domain.TreatmentSession, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("failed to resolve customer %s: %w", req.CustomerID, err)
	}

	day := req.SessionDate.Truncate(24 * time.Hour)
	sessionID := domain.SessionID(req.CustomerID, day)

	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
		}
		session = &domain.TreatmentSession{
			SessionID:   sessionID,
			CustomerID:  req.CustomerID,
			SessionDate: day,
		}
	}

	for _, detail := range req.TreatmentDetails {
		session.TreatmentDetails = append(session.TreatmentDetails, domain.TreatmentDetail{
			ServiceName: detail.ServiceName,
			ToothRange:  detail.ToothRange,
			Dentist:     detail.Dentist,
			Note:        detail.Note,
		})
	}
	session.LastUpdatedAt = time.Now()
	session.LastUpdatedBy = updaterID

	if err := s.sessionRepo.UpsertSession(ctx, *session); err != nil {
		return nil, fmt.Errorf("failed to upsert session %s: %w", sessionID, err)
	}
	return session, nil
}

func (s *SessionService) ListSessionsByCustomer(ctx context.Context, customerID string) ([]domain.TreatmentSession, error) {
	sessions, err := s.sessionRepo.ListSessionsByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for customer %s: %w", customerID, err)
	}
	if sessions == nil {
		return []domain.TreatmentSession{}, nil
	}
	return sessions, nil
}
