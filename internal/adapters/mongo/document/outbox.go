package document

import (
	"time"

	"github.com/rafaelleal24/smartretail/internal/adapters/outbox"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OutboxDocument is one pending event. The payload is kept as the JSON the event
// store produced so the relay can publish it byte for byte.
type OutboxDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	EventName  string             `bson:"event_name"`
	EntityName string             `bson:"entity_name"`
	EventData  []byte             `bson:"event_data"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func NewOutboxDocument(entry outbox.Entry, now time.Time) OutboxDocument {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	return OutboxDocument{
		EventName:  entry.EventName,
		EntityName: entry.EntityName,
		EventData:  entry.EventData,
		CreatedAt:  createdAt.UTC(),
	}
}

func (d OutboxDocument) ToEntry() outbox.Entry {
	return outbox.Entry{
		ID:         d.ID.Hex(),
		EventName:  d.EventName,
		EntityName: d.EntityName,
		EventData:  d.EventData,
		CreatedAt:  d.CreatedAt,
	}
}
