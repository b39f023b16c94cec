package document

import (
	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID    int64                `bson:"_id"`
	Name  string               `bson:"name"`
	Price primitive.Decimal128 `bson:"price"`
	Stock int                  `bson:"stock"`
	Sales int                  `bson:"sales"`
}

func (doc ProductDocument) GetID() int64 {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() (*domain.Product, error) {
	price, err := FromDecimal128(doc.Price)
	if err != nil {
		return nil, err
	}
	return domain.NewProduct(domain.ID(doc.ID), doc.Name, price, doc.Stock, doc.Sales), nil
}

func ToProductDocument(p domain.Product) (*ProductDocument, error) {
	price, err := ToDecimal128(p.Price)
	if err != nil {
		return nil, err
	}
	return &ProductDocument{
		ID:    int64(p.ID),
		Name:  p.Name,
		Price: price,
		Stock: p.Stock,
		Sales: p.Sales,
	}, nil
}
