package domain

type Product struct {
	ID    ID
	Name  string
	Price Amount
	Stock int
	Sales int
}

func NewProduct(id ID, name string, price Amount, stock, sales int) *Product {
	return &Product{
		ID:    id,
		Name:  name,
		Price: price,
		Stock: stock,
		Sales: sales,
	}
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// Sold returns the product after one unit left the shelf.
func (p Product) Sold() Product {
	p.Stock--
	p.Sales++
	return p
}

func FindProduct(products []Product, id ID) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
