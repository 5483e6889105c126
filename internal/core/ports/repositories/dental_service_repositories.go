package repositories

import (
	"context"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
)

// DentalServiceRepositoryFacade covers the priced service catalog.
type DentalServiceRepositoryFacade interface {
	// FindDentalServiceByID retrieves one catalog entry.
	FindDentalServiceByID(ctx context.Context, serviceID string) (*domain.DentalService, error)

	// ListDentalServices retrieves catalog entries, optionally only active ones.
	ListDentalServices(ctx context.Context, activeOnly bool) ([]domain.DentalService, error)

	// CreateDentalService inserts a new catalog entry.
	CreateDentalService(ctx context.Context, service domain.DentalService) error

	// UpdateDentalService updates a catalog entry.
	UpdateDentalService(ctx context.Context, service domain.DentalService) error
}
