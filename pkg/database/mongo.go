package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pmslab/catalog-service/pkg/logger"
)

// Config holds document store configuration
type Config struct {
	URI      string
	Database string
}

// Connect opens a MongoDB client and verifies the connection. The returned
// client is the single long-lived handle shared by all repositories; callers
// own its lifecycle and must Disconnect it on shutdown.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Logger.Info().Str("database", cfg.Database).Msg("Connected to MongoDB")
	return client, client.Database(cfg.Database), nil
}

// Disconnect closes the client, logging rather than failing on error
func Disconnect(ctx context.Context, client *mongo.Client) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}
