package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
	"github.com/hndang/clinic_mgmt_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// ConsultedServiceService manages debt-bearing consulted services. It owns
// their descriptive lifecycle; balances are the payment allocator's.
type ConsultedServiceService struct {
	consultedRepo portsrepo.ConsultedServiceRepositoryFacade
	catalogRepo   portsrepo.DentalServiceRepositoryFacade
	customerRepo  portsrepo.CustomerRepositoryFacade
}

func NewConsultedServiceService(consultedRepo portsrepo.ConsultedServiceRepositoryFacade, catalogRepo portsrepo.DentalServiceRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade) *ConsultedServiceService {
	return &ConsultedServiceService{
		consultedRepo: consultedRepo,
		catalogRepo:   catalogRepo,
		customerRepo:  customerRepo,
	}
}

func (s *ConsultedServiceService) GetConsultedServiceByID(ctx context.Context, consultedServiceID string) (*domain.ConsultedService, error) {
	service, err := s.consultedRepo.FindConsultedServiceByID(ctx, consultedServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get consulted service %s: %w", consultedServiceID, err)
	}
	return service, nil
}

func (s *ConsultedServiceService) ListConsultedServicesByCustomer(ctx context.Context, customerID string) ([]domain.ConsultedService, error) {
	services, err := s.consultedRepo.ListConsultedServicesByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list consulted services for customer %s: %w", customerID, err)
	}
	if services == nil {
		return []domain.ConsultedService{}, nil
	}
	return services, nil
}

// CreateConsultedService records a catalog service sold to a customer. Name
// and unit price are denormalized from the catalog at sale time; later
// catalog edits do not reprice past sales. Amount paid always starts at
// zero, so the full final price is initially owed.
func (s *ConsultedServiceService) CreateConsultedService(ctx context.Context, req dto.CreateConsultedServiceRequest, creatorID string) (*domain.ConsultedService, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, fmt.Errorf("failed to resolve customer %s: %w", req.CustomerID, err)
	}

	catalogEntry, err := s.catalogRepo.FindDentalServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dental service %s: %w", req.ServiceID, err)
	}
	if !catalogEntry.IsActive {
		return nil, fmt.Errorf("%w: dental service %s is inactive", apperrors.ErrValidation, req.ServiceID)
	}

	if req.Discount.IsNegative() {
		return nil, fmt.Errorf("%w: discount must not be negative", apperrors.ErrValidation)
	}
	finalPrice := domain.CalculateFinalPrice(req.Quantity, catalogEntry.UnitPrice, req.Discount)
	if finalPrice.IsNegative() {
		return nil, fmt.Errorf("%w: discount exceeds gross price", apperrors.ErrValidation)
	}

	now := time.Now()
	service := domain.ConsultedService{
		ConsultedServiceID: uuid.NewString(),
		CustomerID:         req.CustomerID,
		ServiceID:          req.ServiceID,
		ServiceName:        catalogEntry.Name,
		Quantity:           req.Quantity,
		UnitPrice:          catalogEntry.UnitPrice,
		Discount:           req.Discount,
		FinalPrice:         finalPrice,
		AmountPaid:         decimal.Zero,
		Status:             domain.ConsultedServiceConfirmed,
		ConsultedAt:        req.ConsultedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}
	if err := s.consultedRepo.CreateConsultedService(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create consulted service: %w", err)
	}

	logger.Info("Consulted service created",
		slog.String("consulted_service_id", service.ConsultedServiceID),
		slog.String("customer_id", service.CustomerID),
		slog.String("final_price", service.FinalPrice.String()),
	)
	return &service, nil
}

// UpdateConsultedService updates descriptive fields only. Balance fields
// have no path through here.
func (s *ConsultedServiceService) UpdateConsultedService(ctx context.Context, consultedServiceID string, req dto.UpdateConsultedServiceRequest, updaterID string) (*domain.ConsultedService, error) {
	service, err := s.consultedRepo.FindConsultedServiceByID(ctx, consultedServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get consulted service %s for update: %w", consultedServiceID, err)
	}

	if req.Status != nil {
		service.Status = domain.ConsultedServiceStatus(*req.Status)
	}
	service.LastUpdatedAt = time.Now()
	service.LastUpdatedBy = updaterID

	if err := s.consultedRepo.UpdateConsultedService(ctx, *service); err != nil {
		return nil, fmt.Errorf("failed to update consulted service %s: %w", consultedServiceID, err)
	}
	return service, nil
}
