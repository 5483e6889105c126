package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
)

// DentalServiceService manages the priced service catalog.
type DentalServiceService struct {
	catalogRepo portsrepo.DentalServiceRepositoryFacade
}

func NewDentalServiceService(catalogRepo portsrepo.DentalServiceRepositoryFacade) *DentalServiceService {
	return &DentalServiceService{catalogRepo: catalogRepo}
}

func (s *DentalServiceService) GetDentalServiceByID(ctx context.Context, serviceID string) (*domain.DentalService, error) {
	service, err := s.catalogRepo.FindDentalServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dental service %s: %w", serviceID, err)
	}
	return service, nil
}

func (s *DentalServiceService) ListDentalServices(ctx context.Context, activeOnly bool) ([]domain.DentalService, error) {
	services, err := s.catalogRepo.ListDentalServices(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list dental services: %w", err)
	}
	if services == nil {
		return []domain.DentalService{}, nil
	}
	return services, nil
}

func (s *DentalServiceService) CreateDentalService(ctx context.Context, req dto.CreateDentalServiceRequest, creatorID string) (*domain.DentalService, error) {
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	service := domain.DentalService{
		ServiceID: uuid.NewString(),
		Name:      req.Name,
		Category:  req.Category,
		UnitPrice: req.UnitPrice,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}
	if err := s.catalogRepo.CreateDentalService(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create dental service: %w", err)
	}
	return &service, nil
}

func (s *DentalServiceService) UpdateDentalService(ctx context.Context, serviceID string, req dto.UpdateDentalServiceRequest, updaterID string) (*domain.DentalService, error) {
	service, err := s.catalogRepo.FindDentalServiceByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dental service %s for update: %w", serviceID, err)
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price must not be negative", apperrors.ErrValidation)
		}
		service.UnitPrice = *req.UnitPrice
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	service.LastUpdatedAt = time.Now()
	service.LastUpdatedBy = updaterID

	if err := s.catalogRepo.UpdateDentalService(ctx, *service); err != nil {
		return nil, fmt.Errorf("failed to update dental service %s: %w", serviceID, err)
	}
	return service, nil
}
