package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTx satisfies pgx.Tx through embedding; only the methods the runner
// touches are overridden.
type stubTx struct {
	pgx.Tx
	commitErr  error
	committed  *int
	rolledBack *int
}

func (s stubTx) Commit(ctx context.Context) error {
	if s.commitErr != nil {
		return s.commitErr
	}
	if s.committed != nil {
		*s.committed++
	}
	return nil
}

func (s stubTx) Rollback(ctx context.Context) error {
	if s.rolledBack != nil {
		*s.rolledBack++
	}
	return nil
}

type stubBeginner struct {
	begun    int
	beginErr error
	nextTx   func(attempt int) stubTx
}

func (b *stubBeginner) BeginTx(ctx context.Context, _ pgx.TxOptions) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	b.begun++
	return b.nextTx(b.begun), nil
}

func serializationFailure() error {
	return &pgconn.PgError{Code: pgSerializationFailure, Message: "could not serialize access"}
}

func TestRunSerializable_CommitsFirstAttempt(t *testing.T) {
	var committed int
	beginner := &stubBeginner{nextTx: func(int) stubTx { return stubTx{committed: &committed} }}
	runner := &TxRunner{db: beginner, maxAttempts: 5}

	calls := 0
	err := runner.RunSerializable(context.Background(), func(tx pgx.Tx) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, beginner.begun)
	assert.Equal(t, 1, committed)
}

func TestRunSerializable_RetriesOnSerializationFailure(t *testing.T) {
	var committed int
	beginner := &stubBeginner{nextTx: func(attempt int) stubTx {
		// first two commits collide with a concurrent writer
		if attempt <= 2 {
			return stubTx{commitErr: serializationFailure()}
		}
		return stubTx{committed: &committed}
	}}
	runner := &TxRunner{db: beginner, maxAttempts: 5}

	calls := 0
	err := runner.RunSerializable(context.Background(), func(tx pgx.Tx) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls, "fn must be re-run from scratch per attempt")
	assert.Equal(t, 3, beginner.begun)
	assert.Equal(t, 1, committed)
}

func TestRunSerializable_ExhaustsRetryBudget(t *testing.T) {
	beginner := &stubBeginner{nextTx: func(int) stubTx {
		return stubTx{commitErr: serializationFailure()}
	}}
	runner := &TxRunner{db: beginner, maxAttempts: 3}

	err := runner.RunSerializable(context.Background(), func(tx pgx.Tx) error { return nil })

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflictExhausted)
	assert.Equal(t, 3, beginner.begun)
}

func TestRunSerializable_DoesNotRetryApplicationErrors(t *testing.T) {
	var rolledBack int
	beginner := &stubBeginner{nextTx: func(int) stubTx { return stubTx{rolledBack: &rolledBack} }}
	runner := &TxRunner{db: beginner, maxAttempts: 5}

	calls := 0
	err := runner.RunSerializable(context.Background(), func(tx pgx.Tx) error {
		calls++
		return apperrors.ErrNotFound
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 1, calls, "application errors must abort without retry")
	assert.GreaterOrEqual(t, rolledBack, 1)
}

func TestRunSerializable_BeginFailure(t *testing.T) {
	beginner := &stubBeginner{beginErr: errors.New("pool closed")}
	runner := &TxRunner{db: beginner, maxAttempts: 5}

	err := runner.RunSerializable(context.Background(), func(tx pgx.Tx) error { return nil })
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrConflictExhausted)
}

func TestIsRetryableTxError(t *testing.T) {
	assert.True(t, isRetryableTxError(serializationFailure()))
	assert.True(t, isRetryableTxError(&pgconn.PgError{Code: pgDeadlockDetected}))
	assert.False(t, isRetryableTxError(errors.New("plain error")))
	assert.False(t, isRetryableTxError(&pgconn.PgError{Code: "23505"}))
}
