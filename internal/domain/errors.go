package domain

import "errors"

var (
	// ErrModelUnavailable signals that the completion provider could not be
	// reached or did not answer in time.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrStoreUnavailable signals that the document store could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrUnsupportedQueryShape signals that a validated intent still carries a
	// query the dispatcher cannot execute (e.g. an aggregation whose query is
	// not a stage sequence). This is an upstream defect, not user input.
	ErrUnsupportedQueryShape = errors.New("unsupported query shape")
	// ErrNoCollections signals that schema discovery found no collections, so
	// there is nothing to execute a query against.
	ErrNoCollections = errors.New("no collections available")
	// ErrMissingField signals a required request field was absent or blank.
	ErrMissingField = errors.New("missing required field")
)
