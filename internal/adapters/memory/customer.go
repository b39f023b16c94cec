package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/rafaelleal24/smartretail/internal/core/port"
	"github.com/rafaelleal24/smartretail/internal/core/serviceerrors"
)

type CustomerRepository struct {
	store *Store
}

func NewCustomerRepository(store *Store) port.CustomerPort {
	return &CustomerRepository{store: store}
}

func (r *CustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	r.store.locked(ctx, func() {
		customers = slices.Clone(r.store.customers)
	})
	return customers, nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer domain.Customer) error {
	var err error
	r.store.locked(ctx, func() {
		if slices.ContainsFunc(r.store.customers, func(c domain.Customer) bool { return c.ID == customer.ID }) {
			err = serviceerrors.NewConflictError(fmt.Sprintf("customer %s already exists", customer.ID))
			return
		}
		r.store.customers = append(r.store.customers, customer)
	})
	return err
}

func (r *CustomerRepository) Save(ctx context.Context, customer domain.Customer) error {
	var err error = serviceerrors.NewNotFoundError("customer not found")
	r.store.locked(ctx, func() {
		for i := range r.store.customers {
			if r.store.customers[i].ID == customer.ID {
				r.store.customers[i] = customer
				err = nil
				return
			}
		}
	})
	return err
}
