package domain

import "time"

type PurchaseOutcome struct {
	Product   Product
	Products  []Product
	Customers []Customer
	Session   Session

	// Customer is set only when the purchase was made by an authenticated customer.
	Customer     *Customer
	PointsEarned int64
}

// Purchase applies one unit sale to the product with the given ID. Inputs are not
// modified; the outcome carries new slices.
func Purchase(productID ID, products []Product, customers []Customer, session Session) (*PurchaseOutcome, error) {
	product, ok := FindProduct(products, productID)
	if !ok {
		return nil, ErrProductNotFound
	}
	if !product.InStock() {
		return nil, ErrOutOfStock
	}

	sold := product.Sold()
	updatedProducts := make([]Product, len(products))
	for i, p := range products {
		if p.ID == productID {
			updatedProducts[i] = sold
			continue
		}
		updatedProducts[i] = p
	}

	outcome := &PurchaseOutcome{
		Product:   sold,
		Products:  updatedProducts,
		Customers: customers,
		Session:   session,
	}

	switch s := session.(type) {
	case Authenticated:
		updated := s.Customer.WithPurchase(product.Price)
		outcome.Customer = &updated
		outcome.PointsEarned = updated.LoyaltyPoints - s.Customer.LoyaltyPoints
		outcome.Customers = ReplaceCustomer(customers, updated)
		outcome.Session = Authenticated{Customer: updated}
	case Anonymous, nil:
		outcome.Session = Anonymous{}
	}

	return outcome, nil
}

type ProductPurchasedEvent struct {
	ProductID    ID        `json:"product_id"`
	ProductName  string    `json:"product_name"`
	BasePrice    Amount    `json:"base_price"`
	StockLeft    int       `json:"stock_left"`
	Sales        int       `json:"sales"`
	CustomerID   *ID       `json:"customer_id,omitempty"`
	PointsEarned int64     `json:"points_earned"`
	PurchasedAt  time.Time `json:"purchased_at"`
}

func (e *ProductPurchasedEvent) GetName() string {
	return "product.purchased"
}

func (e *ProductPurchasedEvent) GetEntityName() string {
	return "product"
}

func NewProductPurchasedEvent(outcome *PurchaseOutcome, at time.Time) *ProductPurchasedEvent {
	event := &ProductPurchasedEvent{
		ProductID:    outcome.Product.ID,
		ProductName:  outcome.Product.Name,
		BasePrice:    outcome.Product.Price,
		StockLeft:    outcome.Product.Stock,
		Sales:        outcome.Product.Sales,
		PointsEarned: outcome.PointsEarned,
		PurchasedAt:  at,
	}
	if outcome.Customer != nil {
		id := outcome.Customer.ID
		event.CustomerID = &id
	}
	return event
}
