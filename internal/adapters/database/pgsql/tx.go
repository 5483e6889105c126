package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes that mean "the transaction lost a race, run it again".
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// DefaultTxMaxAttempts bounds the retry loop when config does not override it.
const DefaultTxMaxAttempts = 5

// txBeginner is the slice of pgxpool.Pool the runner needs; tests substitute it.
type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// TxRunner executes closures in SERIALIZABLE transactions. Postgres detects
// read/write conflicts between concurrent transactions and aborts the loser
// with a serialization failure; the runner rolls back and re-runs the whole
// closure with fresh reads, which is exactly the optimistic read-modify-write
// contract the sequence counter and the payment allocator are built on.
type TxRunner struct {
	db          txBeginner
	maxAttempts int
}

var _ portsrepo.TxRunner = (*TxRunner)(nil)

// NewTxRunner creates a TxRunner over a pool. maxAttempts <= 0 selects the
// default budget.
func NewTxRunner(pool *pgxpool.Pool, maxAttempts int) *TxRunner {
	if maxAttempts <= 0 {
		maxAttempts = DefaultTxMaxAttempts
	}
	return &TxRunner{db: pool, maxAttempts: maxAttempts}
}

// RunSerializable implements portsrepo.TxRunner. fn runs at least once and
// at most maxAttempts times; only conflict aborts trigger a retry. Errors
// returned by fn pass through unchanged so callers can match sentinels.
func (r *TxRunner) RunSerializable(ctx context.Context, fn func(tx pgx.Tx) error) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 10 * time.Millisecond
	bo.MaxInterval = 500 * time.Millisecond

	operation := func() error {
		err := r.attempt(ctx, fn)
		if err == nil {
			return nil
		}
		if isRetryableTxError(err) {
			return err
		}
		return backoff.Permanent(err)
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(r.maxAttempts-1)), ctx))
	if err == nil {
		return nil
	}
	if isRetryableTxError(err) {
		return fmt.Errorf("%w after %d attempts: %v", apperrors.ErrConflictExhausted, r.maxAttempts, err)
	}
	return err
}

func (r *TxRunner) attempt(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("failed to begin serializable transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// isRetryableTxError reports whether the error is a conflict abort that a
// fresh attempt can resolve.
func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	return false
}
