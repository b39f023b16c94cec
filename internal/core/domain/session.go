package domain

// Session is either Anonymous or Authenticated. Callers switch on the concrete type.
type Session interface {
	isSession()
}

type Anonymous struct{}

type Authenticated struct {
	Customer Customer
}

func (Anonymous) isSession()     {}
func (Authenticated) isSession() {}

// CurrentCustomer unwraps an Authenticated session.
func CurrentCustomer(s Session) (Customer, bool) {
	if auth, ok := s.(Authenticated); ok {
		return auth.Customer, true
	}
	return Customer{}, false
}

type ViewMode int

const (
	ViewLoggingIn ViewMode = iota
	ViewSigningUp
	ViewDashboard
)

func (m ViewMode) String() string {
	switch m {
	case ViewLoggingIn:
		return "logging_in"
	case ViewSigningUp:
		return "signing_up"
	case ViewDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

type ViewAction int

const (
	ActionLogin ViewAction = iota
	ActionBeginSignup
	ActionCancelSignup
	ActionCompleteSignup
	ActionLogout
)

// Next returns the view an action leads to, or ErrInvalidTransition.
func (m ViewMode) Next(action ViewAction) (ViewMode, error) {
	switch {
	case m == ViewLoggingIn && action == ActionLogin:
		return ViewDashboard, nil
	case m == ViewLoggingIn && action == ActionBeginSignup:
		return ViewSigningUp, nil
	case m == ViewSigningUp && action == ActionCancelSignup:
		return ViewLoggingIn, nil
	case m == ViewSigningUp && action == ActionCompleteSignup:
		return ViewLoggingIn, nil
	case m == ViewDashboard && action == ActionLogout:
		return ViewLoggingIn, nil
	default:
		return m, ErrInvalidTransition
	}
}
