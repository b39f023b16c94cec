package dto

import (
	"time"

	"github.com/rafaelleal24/smartretail/internal/core/domain"
)

type PurchaseReceipt struct {
	Product      ProductView   `json:"product"`
	Customer     *CustomerView `json:"customer,omitempty"`
	PointsEarned int64         `json:"points_earned"`
	PurchasedAt  time.Time     `json:"purchased_at"`
}

func NewPurchaseReceipt(outcome *domain.PurchaseOutcome, at time.Time) *PurchaseReceipt {
	receipt := &PurchaseReceipt{
		Product:      NewProductView(outcome.Product),
		PointsEarned: outcome.PointsEarned,
		PurchasedAt:  at,
	}
	if outcome.Customer != nil {
		receipt.Customer = NewCustomerView(*outcome.Customer)
	}
	return receipt
}
