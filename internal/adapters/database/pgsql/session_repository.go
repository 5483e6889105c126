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

const sessionColumns = `session_id, customer_id, session_date, treatment_details, last_updated_at, last_updated_by`

type PgxSessionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSessionRepository creates a new repository for per-day treatment
// sessions, keyed by their natural "{customerID}_{date}" ID.
func NewPgxSessionRepository(pool *pgxpool.Pool) portsrepo.SessionRepositoryFacade {
	return &PgxSessionRepository{pool: pool}
}

func scanSession(row pgx.Row) (*models.TreatmentSession, error) {
	var m models.TreatmentSession
	err := row.Scan(
		&m.SessionID,
		&m.CustomerID,
		&m.SessionDate,
		&m.TreatmentDetails,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindSessionByID retrieves one session by its natural key.
func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.TreatmentSession, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE session_id = $1;`, sessionID)
	m, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session %s: %w", sessionID, err)
	}
	d, err := mapping.ToDomainTreatmentSession(*m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListSessionsByCustomer retrieves all sessions of a customer, newest first.
func (r *PgxSessionRepository) ListSessionsByCustomer(ctx context.Context, customerID string) ([]domain.TreatmentSession, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+sessionColumns+` FROM sessions WHERE customer_id = $1 ORDER BY session_date DESC;
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	sessions := []domain.TreatmentSession{}
	for rows.Next() {
		m, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		d, err := mapping.ToDomainTreatmentSession(*m)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}
	return sessions, nil
}

// UpsertSession writes the session row. The stored detail list is replaced
// wholesale; the service merges same-day details before calling this.
func (r *PgxSessionRepository) UpsertSession(ctx context.Context, session domain.TreatmentSession) error {
	m, err := mapping.ToModelTreatmentSession(session)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (session_id) DO UPDATE
		SET treatment_details = EXCLUDED.treatment_details,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`,
		m.SessionID,
		m.CustomerID,
		m.SessionDate,
		m.TreatmentDetails,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert session %s: %w", session.SessionID, err)
	}
	return nil
}
