package domain

import (
	"errors"
	"testing"
)

func TestViewMode_Next(t *testing.T) {
	tests := []struct {
		from   ViewMode
		action ViewAction
		want   ViewMode
		ok     bool
	}{
		{ViewLoggingIn, ActionLogin, ViewDashboard, true},
		{ViewLoggingIn, ActionBeginSignup, ViewSigningUp, true},
		{ViewSigningUp, ActionCancelSignup, ViewLoggingIn, true},
		{ViewSigningUp, ActionCompleteSignup, ViewLoggingIn, true},
		{ViewDashboard, ActionLogout, ViewLoggingIn, true},

		{ViewLoggingIn, ActionLogout, ViewLoggingIn, false},
		{ViewLoggingIn, ActionCancelSignup, ViewLoggingIn, false},
		{ViewLoggingIn, ActionCompleteSignup, ViewLoggingIn, false},
		{ViewSigningUp, ActionLogin, ViewSigningUp, false},
		{ViewSigningUp, ActionLogout, ViewSigningUp, false},
		{ViewDashboard, ActionLogin, ViewDashboard, false},
		{ViewDashboard, ActionBeginSignup, ViewDashboard, false},
	}
	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			got, err := tt.from.Next(tt.action)
			if tt.ok && err != nil {
				t.Fatalf("%s + action %d: unexpected error %v", tt.from, tt.action, err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("%s + action %d: expected ErrInvalidTransition, got %v", tt.from, tt.action, err)
			}
			if got != tt.want {
				t.Errorf("%s + action %d = %s, want %s", tt.from, tt.action, got, tt.want)
			}
		})
	}
}

func TestViewMode_String(t *testing.T) {
	tests := map[ViewMode]string{
		ViewLoggingIn: "logging_in",
		ViewSigningUp: "signing_up",
		ViewDashboard: "dashboard",
		ViewMode(42):  "unknown",
	}
	for mode, want := range tests {
		if got := mode.String(); got != want {
			t.Errorf("ViewMode(%d).String() = %q, want %q", int(mode), got, want)
		}
	}
}

func TestCurrentCustomer(t *testing.T) {
	if _, ok := CurrentCustomer(Anonymous{}); ok {
		t.Fatal("anonymous session must not carry a customer")
	}
	c, ok := CurrentCustomer(Authenticated{Customer: Customer{ID: 2}})
	if !ok || c.ID != 2 {
		t.Fatalf("expected customer 2, got %+v (ok=%v)", c, ok)
	}
}
