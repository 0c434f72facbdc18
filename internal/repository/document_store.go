package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	insertTimeout = 5 * time.Second
	queryTimeout  = 10 * time.Second
)

// ErrDatabaseUnavailable is returned by every operation when the process
// started without a usable database handle.
var ErrDatabaseUnavailable = errors.New("database not available")

// MongoStore is a thin gateway over a Mongo database. Each call is a
// single, independent round-trip; there are no transactions, retries or
// batching.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps the given database handle, which may be nil when the
// connection could not be established at startup.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// CreateDocument inserts one record into the named collection and returns
// the backend-assigned identifier as a hex string.
func (s *MongoStore) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.db == nil {
		return "", ErrDatabaseUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

// GetDocuments returns at most limit documents matching the filter, as
// free-form mappings in the backend's native order.
func (s *MongoStore) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if s.db == nil {
		return nil, ErrDatabaseUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetLimit(limit)
	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return docs, nil
}
