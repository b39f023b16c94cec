package port

import (
	"context"

	"github.com/rafaelleal24/smartretail/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// BrokerPort delivers domain events to subscribers outside the kiosk. Events are
// routed by entity name, so a product purchase and a customer signup can go to
// different exchanges.
type BrokerPort interface {
	Publish(ctx context.Context, event domain.Event) error
	// PublishRaw sends an already encoded payload. The outbox relay uses it.
	PublishRaw(ctx context.Context, eventName, entityName string, data []byte) error
	Close() error
}
