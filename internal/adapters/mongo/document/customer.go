package document

import (
	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomerDocument struct {
	ID            int64                `bson:"_id"`
	Name          string               `bson:"name"`
	Email         string               `bson:"email"`
	TotalSpent    primitive.Decimal128 `bson:"total_spent"`
	LoyaltyPoints int64                `bson:"loyalty_points"`
}

func (doc CustomerDocument) GetID() int64 {
	return doc.ID
}

func (doc *CustomerDocument) ToDomain() (*domain.Customer, error) {
	spent, err := FromDecimal128(doc.TotalSpent)
	if err != nil {
		return nil, err
	}
	return &domain.Customer{
		ID:            domain.ID(doc.ID),
		Name:          doc.Name,
		Email:         doc.Email,
		TotalSpent:    spent,
		LoyaltyPoints: doc.LoyaltyPoints,
	}, nil
}

func ToCustomerDocument(c domain.Customer) (*CustomerDocument, error) {
	spent, err := ToDecimal128(c.TotalSpent)
	if err != nil {
		return nil, err
	}
	return &CustomerDocument{
		ID:            int64(c.ID),
		Name:          c.Name,
		Email:         c.Email,
		TotalSpent:    spent,
		LoyaltyPoints: c.LoyaltyPoints,
	}, nil
}
