package dto

import "github.com/rafaelleal24/smartretail/internal/core/domain"

// ProductView is a catalog row as the screen shows it. Price is the adjusted price;
// BasePrice is what purchases are booked at.
type ProductView struct {
	ID        domain.ID        `json:"id"`
	Name      string           `json:"name"`
	BasePrice domain.Amount    `json:"base_price"`
	Price     domain.Amount    `json:"price"`
	PriceRule domain.PriceRule `json:"price_rule"`
	Stock     int              `json:"stock"`
	Sales     int              `json:"sales"`
	Available bool             `json:"available"`
}

func NewProductView(p domain.Product) ProductView {
	return ProductView{
		ID:        p.ID,
		Name:      p.Name,
		BasePrice: p.Price,
		Price:     domain.AdjustedPrice(p),
		PriceRule: domain.ClassifyPrice(p),
		Stock:     p.Stock,
		Sales:     p.Sales,
		Available: p.InStock(),
	}
}

func NewProductViews(products []domain.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = NewProductView(p)
	}
	return views
}
