package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/rafaelleal24/smartretail/internal/core/dto"
	"github.com/rafaelleal24/smartretail/internal/core/logger"
	"github.com/rafaelleal24/smartretail/internal/core/port"
	"github.com/rafaelleal24/smartretail/internal/core/serviceerrors"
)

const (
	PurchaseResultSuccess    = "success"
	PurchaseResultOutOfStock = "out_of_stock"
	PurchaseResultNotFound   = "not_found"
	PurchaseResultError      = "error"
)

type purchasePayload struct {
	ProductID domain.ID `json:"product_id"`
}

type PurchaseService struct {
	productRepository  port.ProductPort
	customerRepository port.CustomerPort
	events             port.EventPort
	sessions           *SessionService
	idempotency        *IdempotencyService[dto.PurchaseReceipt]
	txManager          port.TransactionManager
	metrics            port.MetricsPort
	now                func() time.Time
}

func NewPurchaseService(
	productRepository port.ProductPort,
	customerRepository port.CustomerPort,
	events port.EventPort,
	sessions *SessionService,
	idempotency *IdempotencyService[dto.PurchaseReceipt],
	txManager port.TransactionManager,
	metrics port.MetricsPort,
) *PurchaseService {
	return &PurchaseService{
		productRepository:  productRepository,
		customerRepository: customerRepository,
		events:             events,
		sessions:           sessions,
		idempotency:        idempotency,
		txManager:          txManager,
		metrics:            metrics,
		now:                time.Now,
	}
}

// Purchase sells one unit of a product to whoever is at the kiosk. A non-empty
// idempotencyKey makes retries return the first receipt.
func (s *PurchaseService) Purchase(ctx context.Context, idempotencyKey string, productID domain.ID) (*dto.PurchaseReceipt, error) {
	return s.idempotency.Do(ctx, idempotencyKey, purchasePayload{ProductID: productID}, func(ctx context.Context) (*dto.PurchaseReceipt, error) {
		return s.processPurchase(ctx, productID)
	})
}

func (s *PurchaseService) processPurchase(ctx context.Context, productID domain.ID) (*dto.PurchaseReceipt, error) {
	purchasedAt := s.now()

	// The session lock is taken before the transaction, the same order login and
	// signup use.
	var outcome *domain.PurchaseOutcome
	err := s.sessions.WithSession(func(session domain.Session) (*domain.Customer, error) {
		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			var err error
			outcome, err = s.applyPurchase(txCtx, productID, session, purchasedAt)
			return err
		})
		if err != nil {
			return nil, err
		}
		return outcome.Customer, nil
	})
	if err != nil {
		return nil, s.purchaseFailed(ctx, productID, err)
	}

	if outcome.Customer != nil {
		s.metrics.LoyaltyPointsAwarded(outcome.PointsEarned)
	}
	s.metrics.PurchaseRecorded(PurchaseResultSuccess)

	logger.Info(ctx, "Purchase completed", map[string]any{
		"product_id":    productID,
		"stock_left":    outcome.Product.Stock,
		"points_earned": outcome.PointsEarned,
	})
	return dto.NewPurchaseReceipt(outcome, purchasedAt), nil
}

func (s *PurchaseService) applyPurchase(
	txCtx context.Context,
	productID domain.ID,
	session domain.Session,
	purchasedAt time.Time,
) (*domain.PurchaseOutcome, error) {
	products, err := s.productRepository.GetAll(txCtx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	customers, err := s.customerRepository.GetAll(txCtx)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	outcome, err := domain.Purchase(productID, products, customers, withStoredCustomer(session, customers))
	if err != nil {
		return nil, err
	}

	if err := s.productRepository.Save(txCtx, outcome.Product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}
	if outcome.Customer != nil {
		if err := s.customerRepository.Save(txCtx, *outcome.Customer); err != nil {
			return nil, fmt.Errorf("save customer: %w", err)
		}
	}
	if err := s.events.Append(txCtx, domain.NewProductPurchasedEvent(outcome, purchasedAt)); err != nil {
		return nil, err
	}
	return outcome, nil
}

func (s *PurchaseService) purchaseFailed(ctx context.Context, productID domain.ID, err error) error {
	switch {
	case errors.Is(err, domain.ErrOutOfStock):
		s.metrics.PurchaseRecorded(PurchaseResultOutOfStock)
		return serviceerrors.Wrap(serviceerrors.KindUnprocessableEntity, "Out of stock", err)
	case errors.Is(err, domain.ErrProductNotFound):
		s.metrics.PurchaseRecorded(PurchaseResultNotFound)
		return serviceerrors.Wrap(serviceerrors.KindNotFound, "product not found", err)
	default:
		s.metrics.PurchaseRecorded(PurchaseResultError)
		logger.Error(ctx, "transaction: purchase failed", err, map[string]any{
			"product_id": productID,
		})
		return err
	}
}

// withStoredCustomer swaps the session's copy of the customer for the stored record.
// The session copy may lag behind the store.
func withStoredCustomer(session domain.Session, customers []domain.Customer) domain.Session {
	current, ok := domain.CurrentCustomer(session)
	if !ok {
		return domain.Anonymous{}
	}
	for _, c := range customers {
		if c.ID == current.ID {
			return domain.Authenticated{Customer: c}
		}
	}
	return session
}
