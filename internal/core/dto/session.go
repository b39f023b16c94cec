package dto

import "github.com/rafaelleal24/smartretail/internal/core/domain"

type LoginRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SignupRequest keeps the password field of the signup form. It is checked for
// presence only.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CustomerView struct {
	ID            domain.ID     `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	TotalSpent    domain.Amount `json:"total_spent"`
	LoyaltyPoints int64         `json:"loyalty_points"`
}

func NewCustomerView(c domain.Customer) *CustomerView {
	return &CustomerView{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		TotalSpent:    c.TotalSpent,
		LoyaltyPoints: c.LoyaltyPoints,
	}
}

type SessionView struct {
	Mode          string        `json:"mode"`
	Authenticated bool          `json:"authenticated"`
	Customer      *CustomerView `json:"customer,omitempty"`
}

func NewSessionView(mode domain.ViewMode, session domain.Session) *SessionView {
	view := &SessionView{Mode: mode.String()}
	if c, ok := domain.CurrentCustomer(session); ok {
		view.Authenticated = true
		view.Customer = NewCustomerView(c)
	}
	return view
}
