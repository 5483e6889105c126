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

const treatmentPlanColumns = `plan_id, customer_id, name, status, items, created_at, created_by, last_updated_at, last_updated_by`

type PgxTreatmentPlanRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTreatmentPlanRepository creates a new repository for treatment plans.
func NewPgxTreatmentPlanRepository(pool *pgxpool.Pool) portsrepo.TreatmentPlanRepositoryFacade {
	return &PgxTreatmentPlanRepository{pool: pool}
}

func scanTreatmentPlan(row pgx.Row) (*models.TreatmentPlan, error) {
	var m models.TreatmentPlan
	err := row.Scan(
		&m.PlanID,
		&m.CustomerID,
		&m.Name,
		&m.Status,
		&m.Items,
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

// FindTreatmentPlanByID retrieves one plan.
func (r *PgxTreatmentPlanRepository) FindTreatmentPlanByID(ctx context.Context, planID string) (*domain.TreatmentPlan, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+treatmentPlanColumns+` FROM treatment_plans WHERE plan_id = $1;`, planID)
	m, err := scanTreatmentPlan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find treatment plan %s: %w", planID, err)
	}
	d, err := mapping.ToDomainTreatmentPlan(*m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListTreatmentPlansByCustomer retrieves all plans of a customer, newest first.
func (r *PgxTreatmentPlanRepository) ListTreatmentPlansByCustomer(ctx context.Context, customerID string) ([]domain.TreatmentPlan, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+treatmentPlanColumns+` FROM treatment_plans WHERE customer_id = $1 ORDER BY created_at DESC;
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query treatment plans for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	plans := []models.TreatmentPlan{}
	for rows.Next() {
		m, err := scanTreatmentPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan treatment plan row: %w", err)
		}
		plans = append(plans, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating treatment plan rows: %w", err)
	}
	return mapping.ToDomainTreatmentPlanSlice(plans)
}

// CreateTreatmentPlan inserts a new plan.
func (r *PgxTreatmentPlanRepository) CreateTreatmentPlan(ctx context.Context, plan domain.TreatmentPlan) error {
	m, err := mapping.ToModelTreatmentPlan(plan)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO treatment_plans (`+treatmentPlanColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`,
		m.PlanID,
		m.CustomerID,
		m.Name,
		m.Status,
		m.Items,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert treatment plan %s: %w", plan.PlanID, err)
	}
	return nil
}

// UpdateTreatmentPlan updates a plan, replacing its item list.
func (r *PgxTreatmentPlanRepository) UpdateTreatmentPlan(ctx context.Context, plan domain.TreatmentPlan) error {
	m, err := mapping.ToModelTreatmentPlan(plan)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE treatment_plans
		SET name = $1, status = $2, items = $3, last_updated_at = $4, last_updated_by = $5
		WHERE plan_id = $6;
	`, m.Name, m.Status, m.Items, m.LastUpdatedAt, m.LastUpdatedBy, m.PlanID)
	if err != nil {
		return fmt.Errorf("failed to update treatment plan %s: %w", plan.PlanID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
