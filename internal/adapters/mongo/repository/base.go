package repository

import (
	"context"
	"errors"

	"github.com/rafaelleal24/smartretail/internal/adapters/mongo/document"
	"github.com/rafaelleal24/smartretail/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var errNoMatch = errors.New("no document matched")

type BaseRepository[T document.Document] struct {
	collection *mongo.Collection
}

func NewBaseRepository[T document.Document](db *mongo.Database, collectionName string) *BaseRepository[T] {
	return &BaseRepository[T]{
		collection: db.Collection(collectionName),
	}
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindAll returns every document ordered by ID.
func (r *BaseRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, parseError(err)
	}
	defer cursor.Close(ctx)

	var entities []T
	if err = cursor.All(ctx, &entities); err != nil {
		return nil, parseError(err)
	}
	return entities, nil
}

func (r *BaseRepository[T]) Insert(ctx context.Context, entity *T) error {
	if _, err := r.collection.InsertOne(ctx, entity); err != nil {
		return parseError(err)
	}
	return nil
}

// Replace overwrites the stored document with the same ID. errNoMatch means there
// was none.
func (r *BaseRepository[T]) Replace(ctx context.Context, entity *T) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": (*entity).GetID()}, entity)
	if err != nil {
		return parseError(err)
	}
	if result.MatchedCount == 0 {
		return errNoMatch
	}
	return nil
}

func parseError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return serviceerrors.NewNotFoundError("entity not found")
	}
	if mongo.IsDuplicateKeyError(err) {
		return serviceerrors.NewConflictError("duplicate key error")
	}
	return err
}
