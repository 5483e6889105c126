package pgsql

import (
	"context"
	"errors"
	"fmt"

	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// PgxCounterRepository mints per-scope sequence numbers. It is stateless:
// every operation runs on the caller's transaction, so the counter update
// commits or rolls back with the writes that consume the value.
type PgxCounterRepository struct{}

// NewPgxCounterRepository creates a new repository for sequence counters.
func NewPgxCounterRepository() portsrepo.CounterRepository {
	return &PgxCounterRepository{}
}

// NextSequence reads the counter row for scope (absent counts as zero) and
// writes back current+1 as a full overwrite. Under SERIALIZABLE isolation
// two transactions reading the same base value cannot both commit; the
// loser aborts with a serialization failure and the runner retries it.
func (r *PgxCounterRepository) NextSequence(ctx context.Context, tx pgx.Tx, scope string) (int64, error) {
	var current int64
	err := tx.QueryRow(ctx, `SELECT sequence FROM counters WHERE scope = $1`, scope).Scan(&current)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("failed to read counter for scope %s: %w", scope, err)
		}
		current = 0 // first use of this scope
	}

	next := current + 1
	_, err = tx.Exec(ctx, `
		INSERT INTO counters (scope, sequence)
		VALUES ($1, $2)
		ON CONFLICT (scope) DO UPDATE SET sequence = EXCLUDED.sequence;
	`, scope, next)
	if err != nil {
		return 0, fmt.Errorf("failed to write counter for scope %s: %w", scope, err)
	}

	return next, nil
}
