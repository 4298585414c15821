// Package db defines the document-store contract consumed by the query
// pipeline. Consumers depend on the narrow sub-interfaces; Store is the
// facade implemented by concrete drivers under internal/db/<driver>.
package db

import (
	"context"
	"time"
)

// Store is the document database facade.
type Store interface {
	Pinger
	CollectionLister
	Querier
	Close(ctx context.Context) error
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CollectionLister enumerates the current collection catalog.
type CollectionLister interface {
	ListCollections(ctx context.Context) ([]string, error)
}

// Querier executes read operations. Filter and pipeline are opaque: they are
// handed to the driver verbatim, exactly as the model produced them.
type Querier interface {
	Find(ctx context.Context, collection string, filter map[string]any) ([]map[string]any, error)
	Aggregate(ctx context.Context, collection string, pipeline []any) ([]map[string]any, error)
}
