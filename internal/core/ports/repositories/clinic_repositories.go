package repositories

import (
	"context"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
)

// ClinicRepository reads clinic reference data. Clinics are seeded by
// migration; there is no write path.
type ClinicRepository interface {
	// FindClinicByID retrieves one clinic.
	FindClinicByID(ctx context.Context, clinicID string) (*domain.Clinic, error)

	// ListClinics retrieves all clinics.
	ListClinics(ctx context.Context) ([]domain.Clinic, error)
}
