package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var loyaltyRate = decimal.RequireFromString("0.05")

type Customer struct {
	ID            ID
	Name          string
	Email         string
	TotalSpent    Amount
	LoyaltyPoints int64
}

// LoyaltyPointsFor returns floor(5% of the base price).
func LoyaltyPointsFor(basePrice Amount) int64 {
	return basePrice.Mul(loyaltyRate).Floor().IntPart()
}

// WithPurchase books a purchase at the product's base price.
func (c Customer) WithPurchase(basePrice Amount) Customer {
	c.TotalSpent = c.TotalSpent.Add(basePrice)
	c.LoyaltyPoints += LoyaltyPointsFor(basePrice)
	return c
}

// NextCustomerID is max(existing IDs) + 1, or 1 for an empty list.
func NextCustomerID(customers []Customer) ID {
	var maxID ID
	for _, c := range customers {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID + 1
}

// FindByCredentials matches name and email exactly, case included.
func FindByCredentials(customers []Customer, name, email string) (Customer, bool) {
	for _, c := range customers {
		if c.Name == name && c.Email == email {
			return c, true
		}
	}
	return Customer{}, false
}

// NewSignup builds the customer a signup creates. The password is accepted so the
// form contract stays the same, but it is not kept on the record and login never
// checks it.
func NewSignup(customers []Customer, name, email, password string) (Customer, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return Customer{}, ErrMissingSignupFields
	}
	return Customer{
		ID:            NextCustomerID(customers),
		Name:          name,
		Email:         email,
		TotalSpent:    decimal.Zero,
		LoyaltyPoints: 0,
	}, nil
}

func ReplaceCustomer(customers []Customer, updated Customer) []Customer {
	out := make([]Customer, len(customers))
	for i, c := range customers {
		if c.ID == updated.ID {
			out[i] = updated
			continue
		}
		out[i] = c
	}
	return out
}

type CustomerSignedUpEvent struct {
	CustomerID ID     `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

func (e *CustomerSignedUpEvent) GetName() string {
	return "customer.signed_up"
}

func (e *CustomerSignedUpEvent) GetEntityName() string {
	return "customer"
}

func NewCustomerSignedUpEvent(c Customer) *CustomerSignedUpEvent {
	return &CustomerSignedUpEvent{CustomerID: c.ID, Name: c.Name, Email: c.Email}
}

type CustomerLoggedInEvent struct {
	CustomerID ID `json:"customer_id"`
}

func (e *CustomerLoggedInEvent) GetName() string {
	return "customer.logged_in"
}

func (e *CustomerLoggedInEvent) GetEntityName() string {
	return "customer"
}
