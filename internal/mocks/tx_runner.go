package mocks

import (
	"context"

	"github.com/placez/placez-api/internal/store"
)

// MemoryTxRunner implements store.TxRunner over the in-memory stores by
// snapshotting their state before the function runs and restoring it if
// the function fails. This mirrors the visibility guarantee of the real
// transaction: a failed dual write leaves nothing behind.
type MemoryTxRunner struct {
	Users  *MemoryUserStore
	Places *MemoryPlaceStore

	BeginErr error
}

// NewMemoryTxRunner creates a transaction runner over the given stores.
func NewMemoryTxRunner(users *MemoryUserStore, places *MemoryPlaceStore) *MemoryTxRunner {
	return &MemoryTxRunner{Users: users, Places: places}
}

// Ensure MemoryTxRunner implements store.TxRunner.
var _ store.TxRunner = (*MemoryTxRunner)(nil)

// InTransaction implements store.TxRunner.InTransaction.
func (r *MemoryTxRunner) InTransaction(ctx context.Context, fn store.TxFn) error {
	if r.BeginErr != nil {
		return r.BeginErr
	}

	userSnap := r.Users.snapshot()
	placeSnap := r.Places.snapshot()

	if err := fn(ctx); err != nil {
		r.Users.restore(userSnap)
		r.Places.restore(placeSnap)
		return err
	}
	return nil
}
