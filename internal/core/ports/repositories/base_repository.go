package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxRunner executes a function inside one atomic serializable transaction.
// The store detects write conflicts between concurrent transactions and
// retries fn from scratch with fresh reads; fn must therefore be safe to run
// more than once and must not capture reads made outside the transaction.
// When the retry budget is exhausted the runner returns
// apperrors.ErrConflictExhausted. Any error returned by fn aborts the
// transaction without retrying and is returned unwrapped.
type TxRunner interface {
	RunSerializable(ctx context.Context, fn func(tx pgx.Tx) error) error
}
