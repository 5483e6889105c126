package services

import (
	"context"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
)

// ConsultedServiceSvcFacade manages debt-bearing consulted services.
type ConsultedServiceSvcFacade interface {
	// GetConsultedServiceByID retrieves one consulted service.
	GetConsultedServiceByID(ctx context.Context, consultedServiceID string) (*domain.ConsultedService, error)

	// ListConsultedServicesByCustomer retrieves a customer's consulted
	// services with their outstanding debts.
	ListConsultedServicesByCustomer(ctx context.Context, customerID string) ([]domain.ConsultedService, error)

	// CreateConsultedService records a catalog service sold to a customer,
	// pricing it from the catalog entry at sale time.
	CreateConsultedService(ctx context.Context, req dto.CreateConsultedServiceRequest, creatorID string) (*domain.ConsultedService, error)

	// UpdateConsultedService updates descriptive fields only.
	UpdateConsultedService(ctx context.Context, consultedServiceID string, req dto.UpdateConsultedServiceRequest, updaterID string) (*domain.ConsultedService, error)
}
