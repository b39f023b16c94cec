package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/smartretail/internal/adapters/config"
	"github.com/rafaelleal24/smartretail/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewConnection(config config.MongoConfig) (*mongo.Client, error) {
	clientOpts := options.Client().
		ApplyURI(config.URI).
		SetTimeout(config.Timeout).
		SetConnectTimeout(config.ConnectTimeout).
		SetServerSelectionTimeout(config.ServerSelectionTimeout).
		SetMaxPoolSize(config.MaxPoolSize).
		SetMinPoolSize(config.MinPoolSize)

	ctx, cancel := context.WithTimeout(context.Background(), config.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

// Open connects and reseeds the configured database with the built-in catalog.
func Open(ctx context.Context, config config.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	client, err := NewConnection(config)
	if err != nil {
		return nil, nil, err
	}

	db := client.Database(config.Database)
	if err := repository.Seed(ctx, db, domain.SeedProducts(), domain.SeedCustomers()); err != nil {
		_ = Disconnect(client)
		return nil, nil, fmt.Errorf("failed to seed MongoDB: %w", err)
	}
	return client, db, nil
}

func Disconnect(client *mongo.Client) error {
	if client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}
