package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/hndang/clinic_mgmt_app/internal/models"
	"github.com/hndang/clinic_mgmt_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClinicRepository struct {
	pool *pgxpool.Pool
}

// NewPgxClinicRepository creates a new read-only repository for the clinic
// reference table (rows are seeded by migration).
func NewPgxClinicRepository(pool *pgxpool.Pool) portsrepo.ClinicRepository {
	return &PgxClinicRepository{pool: pool}
}

// FindClinicByID retrieves one clinic.
func (r *PgxClinicRepository) FindClinicByID(ctx context.Context, clinicID string) (*domain.Clinic, error) {
	var m models.Clinic
	err := r.pool.QueryRow(ctx, `SELECT clinic_id, prefix, name FROM clinics WHERE clinic_id = $1;`, clinicID).
		Scan(&m.ClinicID, &m.Prefix, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find clinic %s: %w", clinicID, err)
	}
	d := mapping.ToDomainClinic(m)
	return &d, nil
}

// ListClinics retrieves all clinics.
func (r *PgxClinicRepository) ListClinics(ctx context.Context) ([]domain.Clinic, error) {
	rows, err := r.pool.Query(ctx, `SELECT clinic_id, prefix, name FROM clinics ORDER BY clinic_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clinics: %w", err)
	}
	defer rows.Close()

	clinics := []models.Clinic{}
	for rows.Next() {
		var m models.Clinic
		if err := rows.Scan(&m.ClinicID, &m.Prefix, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan clinic row: %w", err)
		}
		clinics = append(clinics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clinic rows: %w", err)
	}
	return mapping.ToDomainClinicSlice(clinics), nil
}
