// Package mongo implements db.Store on top of the official MongoDB driver.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kailas-cloud/askdb/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a MongoDB store.
type Config struct {
	URI      string
	Database string
}

// Store implements db.Store via the official mongo driver.
type Store struct {
	client *mongo.Client
	dbName string
}

// NewStore connects to MongoDB. Connect does not block on the handshake;
// readiness is checked via WaitForReady.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("uri is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("database is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{client: client, dbName: cfg.Database}, nil
}

// Ping checks connectivity against the primary.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	return nil
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// ListCollections returns the current collection catalog. The catalog is
// fetched live on every call: schemas can change between requests.
func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.client.Database(s.dbName).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, &db.Error{Op: db.OpListCollections, Err: err}
	}
	return names, nil
}

// Find runs a filtered find and materializes the full result set.
// A nil filter matches everything.
func (s *Store) Find(ctx context.Context, collection string, filter map[string]any) ([]map[string]any, error) {
	if filter == nil {
		filter = map[string]any{}
	}

	cur, err := s.client.Database(s.dbName).Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, &db.Error{Op: db.OpFind, Err: err}
	}
	return drain(ctx, cur, db.OpFind)
}

// Aggregate runs the pipeline verbatim and materializes the full result set.
func (s *Store) Aggregate(ctx context.Context, collection string, pipeline []any) ([]map[string]any, error) {
	cur, err := s.client.Database(s.dbName).Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, &db.Error{Op: db.OpAggregate, Err: err}
	}
	return drain(ctx, cur, db.OpAggregate)
}

func drain(ctx context.Context, cur *mongo.Cursor, op string) ([]map[string]any, error) {
	defer func() { _ = cur.Close(ctx) }()

	docs := []map[string]any{}
	for cur.Next(ctx) {
		var doc map[string]any
		if err := cur.Decode(&doc); err != nil {
			return nil, &db.Error{Op: op, Err: err}
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, &db.Error{Op: op, Err: err}
	}
	return docs, nil
}
