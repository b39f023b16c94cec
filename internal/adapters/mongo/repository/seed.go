package repository

import (
	"context"
	"fmt"

	"github.com/rafaelleal24/smartretail/internal/adapters/mongo/document"
	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"go.mongodb.org/mongo-driver/mongo"
)

// Seed drops the product, customer and outbox collections and inserts the given
// records, so every run starts from the same catalog.
func Seed(ctx context.Context, db *mongo.Database, products []domain.Product, customers []domain.Customer) error {
	for _, name := range []string{ProductsCollection, CustomersCollection, OutboxCollection} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", name, err)
		}
	}

	productDocs := make([]any, len(products))
	for i, p := range products {
		doc, err := document.ToProductDocument(p)
		if err != nil {
			return err
		}
		productDocs[i] = doc
	}
	if len(productDocs) > 0 {
		if _, err := db.Collection(ProductsCollection).InsertMany(ctx, productDocs); err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}

	customerDocs := make([]any, len(customers))
	for i, c := range customers {
		doc, err := document.ToCustomerDocument(c)
		if err != nil {
			return err
		}
		customerDocs[i] = doc
	}
	if len(customerDocs) > 0 {
		if _, err := db.Collection(CustomersCollection).InsertMany(ctx, customerDocs); err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
	}

	// Collections must exist before the first transaction writes to them.
	if err := db.CreateCollection(ctx, OutboxCollection); err != nil {
		return fmt.Errorf("create %s: %w", OutboxCollection, err)
	}
	return nil
}
