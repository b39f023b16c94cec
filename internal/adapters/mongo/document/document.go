package document

import (
	"fmt"

	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is any stored record keyed by an integer domain ID.
type Document interface {
	GetID() int64
}

func ToDecimal128(a domain.Amount) (primitive.Decimal128, error) {
	d, err := primitive.ParseDecimal128(a.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("convert %s to decimal128: %w", a, err)
	}
	return d, nil
}

func FromDecimal128(d primitive.Decimal128) (domain.Amount, error) {
	a, err := domain.NewAmountFromString(d.String())
	if err != nil {
		return domain.Amount{}, fmt.Errorf("convert decimal128 %s: %w", d, err)
	}
	return a, nil
}
