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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dentalServiceColumns = `service_id, name, category, unit_price, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxDentalServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgxDentalServiceRepository creates a new repository for the priced
// service catalog.
func NewPgxDentalServiceRepository(pool *pgxpool.Pool) portsrepo.DentalServiceRepositoryFacade {
	return &PgxDentalServiceRepository{pool: pool}
}

func scanDentalService(row pgx.Row) (*models.DentalService, error) {
	var m models.DentalService
	err := row.Scan(
		&m.ServiceID,
		&m.Name,
		&m.Category,
		&m.UnitPrice,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindDentalServiceByID retrieves one catalog entry.
func (r *PgxDentalServiceRepository) FindDentalServiceByID(ctx context.Context, serviceID string) (*domain.DentalService, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+dentalServiceColumns+` FROM dental_services WHERE service_id = $1;`, serviceID)
	m, err := scanDentalService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find dental service %s: %w", serviceID, err)
	}
	d := mapping.ToDomainDentalService(*m)
	return &d, nil
}

// ListDentalServices retrieves catalog entries ordered by category and name.
func (r *PgxDentalServiceRepository) ListDentalServices(ctx context.Context, activeOnly bool) ([]domain.DentalService, error) {
	query := `SELECT ` + dentalServiceColumns + ` FROM dental_services`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY category, name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query dental services: %w", err)
	}
	defer rows.Close()

	services := []models.DentalService{}
	for rows.Next() {
		m, err := scanDentalService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dental service row: %w", err)
		}
		services = append(services, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dental service rows: %w", err)
	}
	return mapping.ToDomainDentalServiceSlice(services), nil
}

// CreateDentalService inserts a new catalog entry.
func (r *PgxDentalServiceRepository) CreateDentalService(ctx context.Context, service domain.DentalService) error {
	m := mapping.ToModelDentalService(service)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO dental_services (`+dentalServiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`,
		m.ServiceID,
		m.Name,
		m.Category,
		m.UnitPrice,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("dental service named %q: %w", service.Name, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert dental service %s: %w", service.ServiceID, err)
	}
	return nil
}

// UpdateDentalService updates a catalog entry.
func (r *PgxDentalServiceRepository) UpdateDentalService(ctx context.Context, service domain.DentalService) error {
	m := mapping.ToModelDentalService(service)
	tag, err := r.pool.Exec(ctx, `
		UPDATE dental_services
		SET name = $1, category = $2, unit_price = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE service_id = $7;
	`, m.Name, m.Category, m.UnitPrice, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.ServiceID)
	if err != nil {
		return fmt.Errorf("failed to update dental service %s: %w", service.ServiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
