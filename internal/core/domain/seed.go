package domain

// SeedProducts is the catalog every process starts with.
func SeedProducts() []Product {
	return []Product{
		*NewProduct(1, "Laptop", NewAmountFromInt(1200), 50, 20),
		*NewProduct(2, "Keyboard", NewAmountFromInt(100), 100, 50),
		*NewProduct(3, "Mouse", NewAmountFromInt(50), 150, 100),
		*NewProduct(4, "Monitor", NewAmountFromInt(300), 30, 10),
		*NewProduct(5, "Headphones", NewAmountFromInt(150), 80, 30),
	}
}

func SeedCustomers() []Customer {
	return []Customer{
		{ID: 1, Name: "John Doe", Email: "john.doe@example.com", TotalSpent: NewAmountFromInt(500), LoyaltyPoints: 50},
		{ID: 2, Name: "Jane Smith", Email: "jane.smith@example.com", TotalSpent: NewAmountFromInt(1000), LoyaltyPoints: 100},
		{ID: 3, Name: "Peter Jones", Email: "peter.jones@example.com", TotalSpent: NewAmountFromInt(250), LoyaltyPoints: 25},
	}
}
