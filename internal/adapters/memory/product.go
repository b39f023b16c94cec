package memory

import (
	"context"
	"slices"

	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/rafaelleal24/smartretail/internal/core/port"
)

type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) port.ProductPort {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	r.store.locked(ctx, func() {
		products = slices.Clone(r.store.products)
	})
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	var (
		product domain.Product
		found   bool
	)
	r.store.locked(ctx, func() {
		product, found = domain.FindProduct(r.store.products, id)
	})
	if !found {
		return nil, domain.ErrProductNotFound
	}
	return &product, nil
}

func (r *ProductRepository) Save(ctx context.Context, product domain.Product) error {
	err := domain.ErrProductNotFound
	r.store.locked(ctx, func() {
		for i := range r.store.products {
			if r.store.products[i].ID == product.ID {
				r.store.products[i] = product
				err = nil
				return
			}
		}
	})
	return err
}
