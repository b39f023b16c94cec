package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/rafaelleal24/smartretail/internal/adapters/outbox"
	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/rafaelleal24/smartretail/internal/core/port"
)

type txKey struct{}

// Store holds every record of the in-process backend behind one mutex. Repositories
// called with a transaction context run under the lock the TransactionManager holds.
type Store struct {
	mu        sync.Mutex
	products  []domain.Product
	customers []domain.Customer
	outbox    []outbox.Entry
}

func NewStore(products []domain.Product, customers []domain.Customer) *Store {
	return &Store{
		products:  slices.Clone(products),
		customers: slices.Clone(customers),
	}
}

func inTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(bool)
	return ok
}

func (s *Store) locked(ctx context.Context, fn func()) {
	if inTransaction(ctx) {
		fn()
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

type snapshot struct {
	products  []domain.Product
	customers []domain.Customer
	outbox    []outbox.Entry
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		products:  slices.Clone(s.products),
		customers: slices.Clone(s.customers),
		outbox:    slices.Clone(s.outbox),
	}
}

func (s *Store) restore(snap snapshot) {
	s.products = snap.products
	s.customers = snap.customers
	s.outbox = snap.outbox
}

type TransactionManager struct {
	store *Store
}

func NewTransactionManager(store *Store) port.TransactionManager {
	return &TransactionManager{store: store}
}

// WithTransaction runs fn holding the store lock. Changes made by fn are rolled back
// when it returns an error. Nested calls join the outer transaction.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTransaction(ctx) {
		return fn(ctx)
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snap := tm.store.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		tm.store.restore(snap)
		return err
	}
	return nil
}
