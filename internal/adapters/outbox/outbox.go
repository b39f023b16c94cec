package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/rafaelleal24/smartretail/internal/core/port"
)

type Entry struct {
	ID         string
	EventName  string
	EntityName string
	EventData  []byte
	CreatedAt  time.Time
}

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
type Repository interface {
	Insert(ctx context.Context, entry Entry) error
	FetchPending(ctx context.Context, limit int) ([]Entry, error)
	Delete(ctx context.Context, id string) error
}

// EventStore appends domain events to the outbox. Inside a transaction the entry is
// written with the state change; the Handler publishes it later.
type EventStore struct {
	repository Repository
	now        func() time.Time
}

func NewEventStore(repository Repository) port.EventPort {
	return &EventStore{repository: repository, now: time.Now}
}

func (s *EventStore) Append(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.GetName(), err)
	}

	entry := Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  data,
		CreatedAt:  s.now(),
	}
	if err := s.repository.Insert(ctx, entry); err != nil {
		return fmt.Errorf("append event %s: %w", event.GetName(), err)
	}
	return nil
}
