package testutil_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	"github.com/hndang/clinic_mgmt_app/internal/core/domain"
	"github.com/hndang/clinic_mgmt_app/internal/testutil"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextSequence_Sequential(t *testing.T) {
	store := testutil.NewMemStore()
	runner := testutil.NewMemTxRunner(store, 5)
	counters := testutil.NewMemCounterRepository()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		var got int64
		err := runner.RunSerializable(ctx, func(tx pgx.Tx) error {
			seq, err := counters.NextSequence(ctx, tx, "MK-2507")
			got = seq
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, int64(3), store.Value("MK-2507"))
}

func TestNextSequence_IndependentScopes(t *testing.T) {
	store := testutil.NewMemStore()
	runner := testutil.NewMemTxRunner(store, 5)
	counters := testutil.NewMemCounterRepository()
	ctx := context.Background()

	err := runner.RunSerializable(ctx, func(tx pgx.Tx) error {
		if _, err := counters.NextSequence(ctx, tx, "MK-2507"); err != nil {
			return err
		}
		_, err := counters.NextSequence(ctx, tx, "PT-2507")
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), store.Value("MK-2507"))
	assert.Equal(t, int64(1), store.Value("PT-2507"))
}

// Concurrent minting against one scope must yield each sequence exactly
// once: no duplicates, no gaps, regardless of interleaving.
func TestNextSequence_ConcurrentMintsAreUniqueAndGapless(t *testing.T) {
	const workers = 32

	store := testutil.NewMemStore()
	runner := testutil.NewMemTxRunner(store, workers+1) // worst case all collide
	counters := testutil.NewMemCounterRepository()
	ctx := context.Background()

	var mu sync.Mutex
	minted := make([]int64, 0, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := runner.RunSerializable(ctx, func(tx pgx.Tx) error {
				seq, err := counters.NextSequence(ctx, tx, "PT-2507")
				if err != nil {
					return err
				}
				mu.Lock()
				minted = append(minted, seq)
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Retried attempts may have appended stale values; only committed
	// transactions count, and the committed counter must equal workers.
	require.Equal(t, int64(workers), store.Value("PT-2507"))

	// The final attempt of every committed transaction minted a distinct
	// value in 1..workers.
	committed := dedupeLast(minted)
	sort.Slice(committed, func(i, j int) bool { return committed[i] < committed[j] })
	require.Len(t, committed, workers)
	for i, seq := range committed {
		assert.Equal(t, int64(i+1), seq)
	}
}

// dedupeLast keeps one instance of each value; retries of a conflicting
// transaction re-append the value its successful rerun minted.
func dedupeLast(values []int64) []int64 {
	seen := map[int64]struct{}{}
	out := make([]int64, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func TestRunSerializable_ExhaustionSurfacesConflictError(t *testing.T) {
	store := testutil.NewMemStore()
	runner := testutil.NewMemTxRunner(store, 1)
	counters := testutil.NewMemCounterRepository()
	ctx := context.Background()

	err := runner.RunSerializable(ctx, func(tx pgx.Tx) error {
		if _, err := counters.NextSequence(ctx, tx, "MK-2507"); err != nil {
			return err
		}
		// A competing commit lands between this transaction's read and
		// its commit.
		other := testutil.NewMemTxRunner(store, 5)
		return other.RunSerializable(ctx, func(otherTx pgx.Tx) error {
			_, err := counters.NextSequence(ctx, otherTx, "MK-2507")
			return err
		})
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflictExhausted)
}

// Codes minted from concurrent transactions are unique end to end once
// formatted, since the sequence is the only varying part.
func TestFormatCode_DistinctForDistinctSequences(t *testing.T) {
	codes := map[string]struct{}{}
	for seq := int64(1); seq <= 100; seq++ {
		codes[domain.FormatCode("PT-2507", seq, domain.PaymentCodeWidth)] = struct{}{}
	}
	assert.Len(t, codes, 100)
}
