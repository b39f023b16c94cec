package repository_test

import (
	"testing"

	"github.com/rafaelleal24/smartretail/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_GetAll(t *testing.T) {
	ctx, db := seededDB(t, "test_products_all")
	repo := repository.NewProductRepository(db)

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 5)

	seed := domain.SeedProducts()
	for i, p := range products {
		assert.Equal(t, seed[i].ID, p.ID)
		assert.Equal(t, seed[i].Name, p.Name)
		assert.True(t, seed[i].Price.Equal(p.Price), "%s price %s", p.Name, p.Price)
		assert.Equal(t, seed[i].Stock, p.Stock)
		assert.Equal(t, seed[i].Sales, p.Sales)
	}
}

func TestProductRepository_GetByID(t *testing.T) {
	ctx, db := seededDB(t, "test_products_get")
	repo := repository.NewProductRepository(db)

	t.Run("found", func(t *testing.T) {
		p, err := repo.GetByID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "Headphones", p.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestProductRepository_Save(t *testing.T) {
	ctx, db := seededDB(t, "test_products_save")
	repo := repository.NewProductRepository(db)

	laptop, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, laptop.Sold()))

	saved, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 49, saved.Stock)
	assert.Equal(t, 21, saved.Sales)

	err = repo.Save(ctx, domain.Product{ID: 404, Price: domain.NewAmountFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
