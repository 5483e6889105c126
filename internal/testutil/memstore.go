// Package testutil provides an in-memory stand-in for the serializable
// transaction store, for tests that exercise transactional semantics
// (conflict detection, retry, counter atomicity) without a database.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/hndang/clinic_mgmt_app/internal/apperrors"
	portsrepo "github.com/hndang/clinic_mgmt_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// errSerialization is the in-memory analogue of SQLSTATE 40001.
var errSerialization = errors.New("serialization conflict")

// MemStore is a versioned key-value store for counter rows. Every write
// bumps the key's version; a committing transaction whose read set has a
// stale version is rejected, mirroring serializable isolation.
type MemStore struct {
	mu       sync.Mutex
	values   map[string]int64
	versions map[string]int64
}

func NewMemStore() *MemStore {
	return &MemStore{
		values:   map[string]int64{},
		versions: map[string]int64{},
	}
}

// Value returns the committed value for a scope (absent counts as 0).
func (s *MemStore) Value(scope string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[scope]
}

// MemTx records a transaction's reads and buffered writes. It embeds pgx.Tx
// so it can travel through the TxRunner signature; none of the embedded
// methods are ever called.
type MemTx struct {
	pgx.Tx
	store  *MemStore
	reads  map[string]int64 // scope -> version at read time
	writes map[string]int64 // scope -> new value
}

func (t *MemTx) read(scope string) int64 {
	if v, ok := t.writes[scope]; ok {
		return v
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if _, seen := t.reads[scope]; !seen {
		t.reads[scope] = t.store.versions[scope]
	}
	return t.store.values[scope]
}

func (t *MemTx) write(scope string, value int64) {
	t.writes[scope] = value
}

// commit applies the buffered writes if no read has gone stale.
func (t *MemTx) commit() error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for scope, version := range t.reads {
		if t.store.versions[scope] != version {
			return errSerialization
		}
	}
	for scope, value := range t.writes {
		t.store.values[scope] = value
		t.store.versions[scope]++
	}
	return nil
}

// MemTxRunner runs functions against a MemStore with optimistic retry,
// matching the TxRunner contract: fn reruns from scratch on conflict, app
// errors abort without retry, and an exhausted budget surfaces
// ErrConflictExhausted.
type MemTxRunner struct {
	Store       *MemStore
	MaxAttempts int
}

func NewMemTxRunner(store *MemStore, maxAttempts int) *MemTxRunner {
	return &MemTxRunner{Store: store, MaxAttempts: maxAttempts}
}

func (r *MemTxRunner) RunSerializable(ctx context.Context, fn func(tx pgx.Tx) error) error {
	for attempt := 0; attempt < r.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		tx := &MemTx{
			store:  r.Store,
			reads:  map[string]int64{},
			writes: map[string]int64{},
		}
		if err := fn(tx); err != nil {
			return err
		}
		if err := tx.commit(); err == nil {
			return nil
		}
	}
	return apperrors.ErrConflictExhausted
}

// MemCounterRepository mints sequences against the MemStore with the same
// read-increment-overwrite shape as the real repository.
type MemCounterRepository struct{}

func NewMemCounterRepository() portsrepo.CounterRepository {
	return MemCounterRepository{}
}

func (MemCounterRepository) NextSequence(ctx context.Context, tx pgx.Tx, scope string) (int64, error) {
	mt, ok := tx.(*MemTx)
	if !ok {
		return 0, errors.New("transaction is not a MemTx")
	}
	next := mt.read(scope) + 1
	mt.write(scope, next)
	return next, nil
}

var _ portsrepo.TxRunner = (*MemTxRunner)(nil)
