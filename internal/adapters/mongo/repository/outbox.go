package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/smartretail/internal/adapters/mongo/document"
	"github.com/rafaelleal24/smartretail/internal/adapters/outbox"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const OutboxCollection = "outbox"

type OutboxRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewOutboxRepository(db *mongo.Database) outbox.Repository {
	return &OutboxRepository{
		collection: db.Collection(OutboxCollection),
		now:        time.Now,
	}
}

func (r *OutboxRepository) Insert(ctx context.Context, entry outbox.Entry) error {
	if _, err := r.collection.InsertOne(ctx, document.NewOutboxDocument(entry, r.now())); err != nil {
		return fmt.Errorf("insert outbox entry %s: %w", entry.EventName, err)
	}
	return nil
}

// FetchPending returns the oldest entries first. ObjectIDs break ties between
// entries written in the same millisecond.
func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]outbox.Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []document.OutboxDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	entries := make([]outbox.Entry, len(docs))
	for i, doc := range docs {
		entries[i] = doc.ToEntry()
	}
	return entries, nil
}

func (r *OutboxRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid outbox id %q: %w", id, err)
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
