package memory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/rafaelleal24/smartretail/internal/core/logger"
	"github.com/rafaelleal24/smartretail/internal/core/port"
)

// LogBroker stands in for RabbitMQ when it is disabled. Every event is written to
// the log and dropped.
type LogBroker struct{}

func NewLogBroker() port.BrokerPort {
	return &LogBroker{}
}

func (b *LogBroker) Publish(ctx context.Context, event domain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return b.PublishRaw(ctx, event.GetName(), event.GetEntityName(), body)
}

func (b *LogBroker) PublishRaw(ctx context.Context, eventName, entityName string, data []byte) error {
	logger.Info(ctx, "event published", map[string]any{
		"event_name":  eventName,
		"entity_name": entityName,
		"event_data":  string(data),
	})
	return nil
}

func (b *LogBroker) Close() error {
	return nil
}
