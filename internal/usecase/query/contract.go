package query

import "context"

// SchemaLister enumerates the live collection catalog.
type SchemaLister interface {
	ListCollections(ctx context.Context) ([]string, error)
}

// DocumentQuerier executes read operations against the document store.
type DocumentQuerier interface {
	Find(ctx context.Context, collection string, filter map[string]any) ([]map[string]any, error)
	Aggregate(ctx context.Context, collection string, pipeline []any) ([]map[string]any, error)
}

// Completer turns a prompt into raw model text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
