package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rafaelleal24/smartretail/internal/adapters/mongo/document"
	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/rafaelleal24/smartretail/internal/core/port"
	"github.com/rafaelleal24/smartretail/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/mongo"
)

const CustomersCollection = "customers"

type CustomerRepository struct {
	*BaseRepository[document.CustomerDocument]
}

func NewCustomerRepository(db *mongo.Database) port.CustomerPort {
	return &CustomerRepository{
		BaseRepository: NewBaseRepository[document.CustomerDocument](db, CustomersCollection),
	}
}

func (r *CustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	docs, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, len(docs))
	for i, doc := range docs {
		c, err := doc.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("customer %d: %w", doc.ID, err)
		}
		customers[i] = *c
	}
	return customers, nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer domain.Customer) error {
	doc, err := document.ToCustomerDocument(customer)
	if err != nil {
		return err
	}
	return r.Insert(ctx, doc)
}

func (r *CustomerRepository) Save(ctx context.Context, customer domain.Customer) error {
	doc, err := document.ToCustomerDocument(customer)
	if err != nil {
		return err
	}
	if err := r.Replace(ctx, doc); err != nil {
		if errors.Is(err, errNoMatch) {
			return serviceerrors.NewNotFoundError("customer not found")
		}
		return err
	}
	return nil
}
