package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/rafaelleal24/smartretail/internal/core/dto"
	"github.com/rafaelleal24/smartretail/internal/core/logger"
	"github.com/rafaelleal24/smartretail/internal/core/port"
	"github.com/rafaelleal24/smartretail/internal/core/serviceerrors"
)

const InvalidCredentialsMessage = "Invalid credentials. Please try again."

// SessionService owns the single kiosk session: who is logged in and which view is
// showing. All actions are serialized by mu.
type SessionService struct {
	mu      sync.Mutex
	mode    domain.ViewMode
	session domain.Session

	customerRepository port.CustomerPort
	events             port.EventPort
	txManager          port.TransactionManager
	metrics            port.MetricsPort
}

func NewSessionService(
	customerRepository port.CustomerPort,
	events port.EventPort,
	txManager port.TransactionManager,
	metrics port.MetricsPort,
) *SessionService {
	return &SessionService{
		mode:               domain.ViewLoggingIn,
		session:            domain.Anonymous{},
		customerRepository: customerRepository,
		events:             events,
		txManager:          txManager,
		metrics:            metrics,
	}
}

func (s *SessionService) Current() *dto.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return dto.NewSessionView(s.mode, s.session)
}

// Session returns the session as it is right now.
func (s *SessionService) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *SessionService) Login(ctx context.Context, request *dto.LoginRequest) (*dto.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.transition(domain.ActionLogin)
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepository.GetAll(ctx)
	if err != nil {
		logger.Error(ctx, "session: load customers failed", err, nil)
		return nil, err
	}

	customer, ok := domain.FindByCredentials(customers, request.Name, request.Email)
	if !ok {
		s.metrics.LoginRecorded(false)
		logger.Info(ctx, "Login rejected", map[string]any{"email": request.Email})
		return nil, serviceerrors.Wrap(serviceerrors.KindUnauthorized, InvalidCredentialsMessage, domain.ErrInvalidCredentials)
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.events.Append(txCtx, &domain.CustomerLoggedInEvent{CustomerID: customer.ID})
	})
	if err != nil {
		logger.Error(ctx, "session: record login failed", err, map[string]any{
			"customer_id": customer.ID,
		})
		return nil, err
	}

	s.session = domain.Authenticated{Customer: customer}
	s.mode = next
	s.metrics.LoginRecorded(true)

	logger.Info(ctx, "Customer logged in", map[string]any{"customer_id": customer.ID})
	return dto.NewSessionView(s.mode, s.session), nil
}

func (s *SessionService) BeginSignup(ctx context.Context) (*dto.SessionView, error) {
	return s.move(ctx, domain.ActionBeginSignup)
}

func (s *SessionService) CancelSignup(ctx context.Context) (*dto.SessionView, error) {
	return s.move(ctx, domain.ActionCancelSignup)
}

// Signup registers a new customer and returns to the login view. The new customer
// is not logged in.
func (s *SessionService) Signup(ctx context.Context, request *dto.SignupRequest) (*dto.CustomerView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.transition(domain.ActionCompleteSignup)
	if err != nil {
		return nil, err
	}

	var customer domain.Customer
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		customers, err := s.customerRepository.GetAll(txCtx)
		if err != nil {
			return fmt.Errorf("load customers: %w", err)
		}

		customer, err = domain.NewSignup(customers, request.Name, request.Email, request.Password)
		if err != nil {
			return err
		}

		if err := s.customerRepository.Create(txCtx, customer); err != nil {
			return fmt.Errorf("create customer: %w", err)
		}
		return s.events.Append(txCtx, domain.NewCustomerSignedUpEvent(customer))
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingSignupFields) {
			return nil, serviceerrors.Wrap(serviceerrors.KindInvalidRequest, "name, email and password are required", err)
		}
		logger.Error(ctx, "session: signup failed", err, map[string]any{"email": request.Email})
		return nil, err
	}

	s.mode = next
	s.metrics.SignupRecorded()

	logger.Info(ctx, "Customer signed up", map[string]any{"customer_id": customer.ID})
	return dto.NewCustomerView(customer), nil
}

func (s *SessionService) Logout(ctx context.Context) (*dto.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.transition(domain.ActionLogout)
	if err != nil {
		return nil, err
	}

	if c, ok := domain.CurrentCustomer(s.session); ok {
		logger.Info(ctx, "Customer logged out", map[string]any{"customer_id": c.ID})
	}
	s.session = domain.Anonymous{}
	s.mode = next
	return dto.NewSessionView(s.mode, s.session), nil
}

// Refresh replaces the logged-in customer's record after a purchase. It is a no-op
// when that customer is no longer logged in.
func (s *SessionService) Refresh(customer domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh(customer)
}

// WithSession runs fn against the current session and holds the session lock until
// fn returns, so no login or logout can change who is credited halfway through.
// A customer returned by fn replaces the session copy when still logged in.
func (s *SessionService) WithSession(fn func(session domain.Session) (*domain.Customer, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := fn(s.session)
	if err != nil {
		return err
	}
	if updated != nil {
		s.refresh(*updated)
	}
	return nil
}

func (s *SessionService) refresh(customer domain.Customer) {
	if current, ok := domain.CurrentCustomer(s.session); ok && current.ID == customer.ID {
		s.session = domain.Authenticated{Customer: customer}
	}
}

func (s *SessionService) move(ctx context.Context, action domain.ViewAction) (*dto.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.transition(action)
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "View changed", map[string]any{
		"from": s.mode.String(),
		"to":   next.String(),
	})
	s.mode = next
	return dto.NewSessionView(s.mode, s.session), nil
}

func (s *SessionService) transition(action domain.ViewAction) (domain.ViewMode, error) {
	next, err := s.mode.Next(action)
	if err != nil {
		return s.mode, serviceerrors.Wrap(
			serviceerrors.KindConflict,
			fmt.Sprintf("action not available while %s", s.mode),
			err,
		)
	}
	return next, nil
}
