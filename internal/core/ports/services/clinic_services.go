package services

import (
	"context"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/dto"
)

// ClinicSvcFacade reads clinic reference data. The accessor is injected
// where needed; nothing reads clinic data through ambient globals.
type ClinicSvcFacade interface {
	// GetClinicByID retrieves one clinic.
	GetClinicByID(ctx context.Context, clinicID string) (*domain.Clinic, error)

	// ListClinics retrieves all clinics.
	ListClinics(ctx context.Context) ([]domain.Clinic, error)
}

// DentalServiceSvcFacade manages the priced service catalog.
type DentalServiceSvcFacade interface {
	// GetDentalServiceByID retrieves one catalog entry.
	GetDentalServiceByID(ctx context.Context, serviceID string) (*domain.DentalService, error)

	// ListDentalServices retrieves the catalog, optionally active entries only.
	ListDentalServices(ctx context.Context, activeOnly bool) ([]domain.DentalService, error)

	// CreateDentalService adds a catalog entry.
	CreateDentalService(ctx context.Context, req dto.CreateDentalServiceRequest, creatorID string) (*domain.DentalService, error)

	// UpdateDentalService updates a catalog entry.
	UpdateDentalService(ctx context.Context, serviceID string, req dto.UpdateDentalServiceRequest, updaterID string) (*domain.DentalService, error)
}
