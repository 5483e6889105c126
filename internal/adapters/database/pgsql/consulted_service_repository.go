package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/hndang/clinic_mgmt_app/internal/models"
	"github.com/hndang/clinic_mgmt_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const consultedServiceColumns = `consulted_service_id, customer_id, service_id, service_name, quantity, unit_price, discount, final_price, amount_paid, status, consulted_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxConsultedServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgxConsultedServiceRepository creates a new repository for debt-bearing
// consulted services.
func NewPgxConsultedServiceRepository(pool *pgxpool.Pool) portsrepo.ConsultedServiceRepositoryFacade {
	return &PgxConsultedServiceRepository{pool: pool}
}

func scanConsultedService(row pgx.Row) (*models.ConsultedService, error) {
	var m models.ConsultedService
	err := row.Scan(
		&m.ConsultedServiceID,
		&m.CustomerID,
		&m.ServiceID,
		&m.ServiceName,
		&m.Quantity,
		&m.UnitPrice,
		&m.Discount,
		&m.FinalPrice,
		&m.AmountPaid,
		&m.Status,
		&m.ConsultedAt,
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

// CreateConsultedService inserts a new consulted service. AmountPaid must
// come in as zero; the allocator owns it from then on.
func (r *PgxConsultedServiceRepository) CreateConsultedService(ctx context.Context, service domain.ConsultedService) error {
	m := mapping.ToModelConsultedService(service)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO consulted_services (`+consultedServiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`,
		m.ConsultedServiceID,
		m.CustomerID,
		m.ServiceID,
		m.ServiceName,
		m.Quantity,
		m.UnitPrice,
		m.Discount,
		m.FinalPrice,
		m.AmountPaid,
		m.Status,
		m.ConsultedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert consulted service %s: %w", service.ConsultedServiceID, err)
	}
	return nil
}

// FindConsultedServiceByID retrieves a consulted service by ID.
func (r *PgxConsultedServiceRepository) FindConsultedServiceByID(ctx context.Context, consultedServiceID string) (*domain.ConsultedService, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+consultedServiceColumns+` FROM consulted_services WHERE consulted_service_id = $1;`, consultedServiceID)
	m, err := scanConsultedService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find consulted service %s: %w", consultedServiceID, err)
	}
	d := mapping.ToDomainConsultedService(*m)
	return &d, nil
}

// FindConsultedServiceInTx retrieves a consulted service on the caller's
// transaction. The allocator's read phase goes through here so concurrent
// allocations against the same target conflict on commit.
func (r *PgxConsultedServiceRepository) FindConsultedServiceInTx(ctx context.Context, tx pgx.Tx, consultedServiceID string) (*domain.ConsultedService, error) {
	row := tx.QueryRow(ctx, `SELECT `+consultedServiceColumns+` FROM consulted_services WHERE consulted_service_id = $1;`, consultedServiceID)
	m, err := scanConsultedService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("consulted service %s: %w", consultedServiceID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find consulted service %s in tx: %w", consultedServiceID, err)
	}
	d := mapping.ToDomainConsultedService(*m)
	return &d, nil
}

// ListConsultedServicesByCustomer retrieves a customer's consulted
// services, newest first.
func (r *PgxConsultedServiceRepository) ListConsultedServicesByCustomer(ctx context.Context, customerID string) ([]domain.ConsultedService, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+consultedServiceColumns+` FROM consulted_services WHERE customer_id = $1 ORDER BY consulted_at DESC;
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query consulted services for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	services := []models.ConsultedService{}
	for rows.Next() {
		m, err := scanConsultedService(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan consulted service row: %w", err)
		}
		services = append(services, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating consulted service rows: %w", err)
	}
	return mapping.ToDomainConsultedServiceSlice(services), nil
}

// UpdateConsultedService updates descriptive fields. Balance columns are
// not in the statement; they change only via ApplyAllocationInTx.
func (r *PgxConsultedServiceRepository) UpdateConsultedService(ctx context.Context, service domain.ConsultedService) error {
	m := mapping.ToModelConsultedService(service)
	tag, err := r.pool.Exec(ctx, `
		UPDATE consulted_services
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE consulted_service_id = $4;
	`, m.Status, m.LastUpdatedAt, m.LastUpdatedBy, m.ConsultedServiceID)
	if err != nil {
		return fmt.Errorf("failed to update consulted service %s: %w", service.ConsultedServiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ApplyAllocationInTx writes the new cumulative amount paid on the caller's
// transaction. Full overwrite of the balance, not an in-place increment:
// the allocator computed the value from this transaction's own reads, and
// serializable isolation rejects the commit if those reads went stale.
func (r *PgxConsultedServiceRepository) ApplyAllocationInTx(ctx context.Context, tx pgx.Tx, consultedServiceID string, amountPaid decimal.Decimal, updatedAt time.Time, updatedBy string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE consulted_services
		SET amount_paid = $1, last_updated_at = $2, last_updated_by = $3
		WHERE consulted_service_id = $4;
	`, amountPaid, updatedAt, updatedBy, consultedServiceID)
	if err != nil {
		return fmt.Errorf("failed to apply allocation to consulted service %s: %w", consultedServiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("consulted service %s: %w", consultedServiceID, apperrors.ErrNotFound)
	}
	return nil
}
