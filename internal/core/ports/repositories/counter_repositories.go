package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// CounterRepository mints per-scope sequence numbers. NextSequence must be
// called with the transaction that consumes the value: the counter update
// commits or rolls back together with the dependent writes, never
// independently.
//
// Calling NextSequence twice for one scope inside one transaction yields two
// values from the same base; both are consumed on commit. The repository
// does not deduplicate.
type CounterRepository interface {
	// NextSequence reads the counter for scope (absent counts as 0),
	// writes back current+1 as a full overwrite, and returns the new value.
	NextSequence(ctx context.Context, tx pgx.Tx, scope string) (int64, error)
}
