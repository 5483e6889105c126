package pgsql

import (
	"context"
	"fmt"

	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/hndang/clinic_mgmt_app/internal/models"
	"github.com/hndang/clinic_mgmt_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const followUpColumns = `call_id, customer_id, call_date, result, notes, next_call_date, created_at, created_by`

type PgxFollowUpRepository struct {
	pool *pgxpool.Pool
}

// NewPgxFollowUpRepository creates a new repository for the append-only
// care-call log.
func NewPgxFollowUpRepository(pool *pgxpool.Pool) portsrepo.FollowUpRepositoryFacade {
	return &PgxFollowUpRepository{pool: pool}
}

func scanFollowUpCall(row pgx.Row) (*models.FollowUpCall, error) {
	var m models.FollowUpCall
	err := row.Scan(
		&m.CallID,
		&m.CustomerID,
		&m.CallDate,
		&m.Result,
		&m.Notes,
		&m.NextCallDate,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateFollowUpCall appends one call record.
func (r *PgxFollowUpRepository) CreateFollowUpCall(ctx context.Context, call domain.FollowUpCall) error {
	m := mapping.ToModelFollowUpCall(call)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO follow_up_calls (`+followUpColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`,
		m.CallID,
		m.CustomerID,
		m.CallDate,
		m.Result,
		m.Notes,
		m.NextCallDate,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert follow-up call %s: %w", call.CallID, err)
	}
	return nil
}

// ListFollowUpCallsByCustomer retrieves a customer's calls, newest first.
func (r *PgxFollowUpRepository) ListFollowUpCallsByCustomer(ctx context.Context, customerID string) ([]domain.FollowUpCall, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+followUpColumns+` FROM follow_up_calls WHERE customer_id = $1 ORDER BY call_date DESC, call_id DESC;
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query follow-up calls for customer %s: %w", customerID, err)
	}
	return collectFollowUpCalls(rows)
}

// ListRecentFollowUpCalls retrieves the most recent calls across customers.
func (r *PgxFollowUpRepository) ListRecentFollowUpCalls(ctx context.Context, limit int) ([]domain.FollowUpCall, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+followUpColumns+` FROM follow_up_calls ORDER BY call_date DESC, call_id DESC LIMIT $1;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent follow-up calls: %w", err)
	}
	return collectFollowUpCalls(rows)
}

func collectFollowUpCalls(rows pgx.Rows) ([]domain.FollowUpCall, error) {
	defer rows.Close()

	calls := []models.FollowUpCall{}
	for rows.Next() {
		m, err := scanFollowUpCall(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan follow-up call row: %w", err)
		}
		calls = append(calls, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follow-up call rows: %w", err)
	}
	return mapping.ToDomainFollowUpCallSlice(calls), nil
}
