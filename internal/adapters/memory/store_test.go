package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rafaelleal24/smartretail/internal/adapters/outbox"
	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/rafaelleal24/smartretail/internal/core/serviceerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore() *Store {
	return NewStore(domain.SeedProducts(), domain.SeedCustomers())
}

func TestProductRepository(t *testing.T) {
	store := seededStore()
	repo := NewProductRepository(store)
	ctx := context.Background()

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 5)
	assert.Equal(t, "Laptop", products[0].Name)

	products[0].Stock = 0
	again, _ := repo.GetAll(ctx)
	assert.Equal(t, 50, again[0].Stock, "GetAll must return a copy")

	monitor, err := repo.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Monitor", monitor.Name)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	sold := monitor.Sold()
	require.NoError(t, repo.Save(ctx, sold))
	saved, _ := repo.GetByID(ctx, 4)
	assert.Equal(t, 29, saved.Stock)
	assert.Equal(t, 11, saved.Sales)

	assert.ErrorIs(t, repo.Save(ctx, domain.Product{ID: 99}), domain.ErrProductNotFound)
}

func TestCustomerRepository(t *testing.T) {
	store := seededStore()
	repo := NewCustomerRepository(store)
	ctx := context.Background()

	ada := domain.Customer{ID: 4, Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, repo.Create(ctx, ada))

	err := repo.Create(ctx, ada)
	assert.True(t, serviceerrors.IsOfKind(err, serviceerrors.KindConflict))

	customers, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 4)
	assert.Equal(t, domain.ID(4), customers[3].ID)

	john := customers[0].WithPurchase(domain.NewAmountFromInt(100))
	require.NoError(t, repo.Save(ctx, john))
	customers, _ = repo.GetAll(ctx)
	assert.Equal(t, int64(55), customers[0].LoyaltyPoints)

	err = repo.Save(ctx, domain.Customer{ID: 42})
	assert.True(t, serviceerrors.IsOfKind(err, serviceerrors.KindNotFound))
}

func TestTransactionManager(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		store := seededStore()
		tm := NewTransactionManager(store)
		products := NewProductRepository(store)
		events := NewOutboxRepository(store)

		err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
			p, err := products.GetByID(ctx, 1)
			if err != nil {
				return err
			}
			if err := products.Save(ctx, p.Sold()); err != nil {
				return err
			}
			return events.Insert(ctx, outbox.Entry{EventName: "product.purchased", EntityName: "product"})
		})
		require.NoError(t, err)

		p, _ := products.GetByID(context.Background(), 1)
		assert.Equal(t, 49, p.Stock)
		pending, _ := events.FetchPending(context.Background(), 10)
		assert.Len(t, pending, 1)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		store := seededStore()
		tm := NewTransactionManager(store)
		products := NewProductRepository(store)
		customers := NewCustomerRepository(store)
		events := NewOutboxRepository(store)
		boom := errors.New("boom")

		err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
			p, _ := products.GetByID(ctx, 1)
			_ = products.Save(ctx, p.Sold())
			_ = customers.Create(ctx, domain.Customer{ID: 4})
			_ = events.Insert(ctx, outbox.Entry{EventName: "x"})
			return boom
		})
		assert.ErrorIs(t, err, boom)

		p, _ := products.GetByID(context.Background(), 1)
		assert.Equal(t, 50, p.Stock)
		all, _ := customers.GetAll(context.Background())
		assert.Len(t, all, 3)
		pending, _ := events.FetchPending(context.Background(), 10)
		assert.Empty(t, pending)
	})

	t.Run("nested calls join the outer transaction", func(t *testing.T) {
		store := seededStore()
		tm := NewTransactionManager(store)

		err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
			return tm.WithTransaction(ctx, func(context.Context) error { return nil })
		})
		assert.NoError(t, err)
	})

	t.Run("serializes purchases of the last unit", func(t *testing.T) {
		store := NewStore([]domain.Product{{ID: 1, Name: "Last", Price: domain.NewAmountFromInt(10), Stock: 1}}, nil)
		tm := NewTransactionManager(store)
		products := NewProductRepository(store)

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			refused   int
		)
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
					all, _ := products.GetAll(ctx)
					outcome, err := domain.Purchase(1, all, nil, domain.Anonymous{})
					if err != nil {
						return err
					}
					return products.Save(ctx, outcome.Product)
				})
				mu.Lock()
				defer mu.Unlock()
				if errors.Is(err, domain.ErrOutOfStock) {
					refused++
				} else if err == nil {
					succeeded++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 9, refused)
		p, _ := products.GetByID(context.Background(), 1)
		assert.Equal(t, 0, p.Stock)
		assert.Equal(t, 1, p.Sales)
	})
}

func TestOutboxRepository(t *testing.T) {
	repo := NewOutboxRepository(seededStore())
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Insert(ctx, outbox.Entry{EventName: name}))
	}

	batch, err := repo.FetchPending(ctx, 2)
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, "a", batch[0].EventName)
	assert.NotEmpty(t, batch[0].ID)
	assert.NotEqual(t, batch[0].ID, batch[1].ID)

	require.NoError(t, repo.Delete(ctx, batch[0].ID))
	rest, _ := repo.FetchPending(ctx, 10)
	require.Len(t, rest, 2)
	assert.Equal(t, "b", rest[0].EventName)
}
