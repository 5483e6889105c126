package services

import (
	"context"
	"fmt"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
)

// ClinicService reads clinic reference data. Clinics are seeded by
// migration and never written at runtime.
type ClinicService struct {
	clinicRepo portsrepo.ClinicRepository
}

func NewClinicService(clinicRepo portsrepo.ClinicRepository) *ClinicService {
	return &ClinicService{clinicRepo: clinicRepo}
}

func (s *ClinicService) GetClinicByID(ctx context.Context, clinicID string) (*domain.Clinic, error) {
	clinic, err := s.clinicRepo.FindClinicByID(ctx, clinicID)
	if err != nil {
		return nil, fmt.Errorf("failed to get clinic %s: %w", clinicID, err)
	}
	return clinic, nil
}

func (s *ClinicService) ListClinics(ctx context.Context) ([]domain.Clinic, error) {
	clinics, err := s.clinicRepo.ListClinics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}
	if clinics == nil {
		return []domain.Clinic{}, nil
	}
	return clinics, nil
}
