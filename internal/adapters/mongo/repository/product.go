package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rafaelleal24/smartretail/internal/adapters/mongo/document"
	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/rafaelleal24/smartretail/internal/core/port"
	"go.mongodb.org/mongo-driver/mongo"
)

const ProductsCollection = "products"

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
}

func NewProductRepository(db *mongo.Database) port.ProductPort {
	return &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, ProductsCollection),
	}
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]domain.Product, error) {
	docs, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, len(docs))
	for i, doc := range docs {
		p, err := doc.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", doc.ID, err)
		}
		products[i] = *p
	}
	return products, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.FindByID(ctx, int64(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, parseError(err)
	}
	return doc.ToDomain()
}

func (r *ProductRepository) Save(ctx context.Context, product domain.Product) error {
	doc, err := document.ToProductDocument(product)
	if err != nil {
		return err
	}
	if err := r.Replace(ctx, doc); err != nil {
		if errors.Is(err, errNoMatch) {
			return domain.ErrProductNotFound
		}
		return err
	}
	return nil
}
