package outbox

import (
	"context"
	"time"

	"github.com/rafaelleal24/smartretail/internal/adapters/config"
	"github.com/rafaelleal24/smartretail/internal/core/logger"
	"github.com/rafaelleal24/smartretail/internal/core/port"
)

// Handler relays outbox entries to the broker. An entry is deleted only after it was
// published, so delivery is at least once.
type Handler struct {
	outbox   Repository
	broker   port.BrokerPort
	interval time.Duration
	batch    int
}

func NewHandler(outbox Repository, broker port.BrokerPort, config config.OutboxConfig) *Handler {
	return &Handler{
		outbox:   outbox,
		broker:   broker,
		interval: config.Interval,
		batch:    config.BatchSize,
	}
}

// Start polls until ctx is cancelled, then makes one last pass with a short deadline.
func (h *Handler) Start(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			drainCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			h.Flush(drainCtx)
			cancel()
			return
		case <-ticker.C:
			h.Flush(ctx)
		}
	}
}

// Flush publishes one batch and returns how many entries left the outbox.
func (h *Handler) Flush(ctx context.Context) int {
	entries, err := h.outbox.FetchPending(ctx, h.batch)
	if err != nil {
		logger.Error(ctx, "outbox: failed to fetch pending events", err, map[string]any{
			"batch": h.batch,
		})
		return 0
	}

	published := 0
	for _, entry := range entries {
		attrs := map[string]any{
			"event_id":    entry.ID,
			"event_name":  entry.EventName,
			"entity_name": entry.EntityName,
		}
		if err := h.broker.PublishRaw(ctx, entry.EventName, entry.EntityName, entry.EventData); err != nil {
			logger.Error(ctx, "outbox: failed to publish event", err, attrs)
			continue
		}

		logger.Debug(ctx, "outbox: event published", attrs)

		if err := h.outbox.Delete(ctx, entry.ID); err != nil {
			logger.Error(ctx, "outbox: failed to delete event after publish", err, attrs)
			continue
		}
		published++
	}
	return published
}
