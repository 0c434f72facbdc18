package database

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Connect builds a Mongo client from the connection string and verifies it
// with a ping. A missing URI or a failed connection returns nil rather than
// aborting the process: every endpoint that needs the database checks the
// handle and reports "unavailable" instead.
func Connect(uri string) *mongo.Client {
	if uri == "" {
		slog.Warn("DATABASE_URL not set, starting without database")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		slog.Error("failed to connect to MongoDB", slog.Any("err", err))
		return nil
	}

	if err := client.Ping(ctx, nil); err != nil {
		slog.Error("MongoDB ping failed", slog.Any("err", err))
		return nil
	}

	slog.Info("connected to MongoDB")
	return client
}
