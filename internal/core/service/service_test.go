package service

import (
	"context"
	"testing"

	"github.com/rafaelleal24/smartretail/internal/core/port/mock"
	"go.uber.org/mock/gomock"
)

// passthroughTx makes the mocked transaction manager run the callback directly.
func passthroughTx(tx *mock.MockTransactionManager) *gomock.Call {
	return tx.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

type sessionMocks struct {
	customerRepo *mock.MockCustomerPort
	events       *mock.MockEventPort
	txManager    *mock.MockTransactionManager
	metrics      *mock.MockMetricsPort
}

func setupSessionService(t *testing.T) (*SessionService, *sessionMocks) {
	ctrl := gomock.NewController(t)
	m := &sessionMocks{
		customerRepo: mock.NewMockCustomerPort(ctrl),
		events:       mock.NewMockEventPort(ctrl),
		txManager:    mock.NewMockTransactionManager(ctrl),
		metrics:      mock.NewMockMetricsPort(ctrl),
	}
	return NewSessionService(m.customerRepo, m.events, m.txManager, m.metrics), m
}
