// Package query implements the natural-language query pipeline:
// schema discovery, prompt construction, model invocation, intent
// extraction and repair, and dispatch against the document store.
package query

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/askdb/internal/domain"
	"github.com/kailas-cloud/askdb/internal/domain/extract"
	"github.com/kailas-cloud/askdb/internal/domain/intent"
	"github.com/kailas-cloud/askdb/internal/domain/prompt"
	"github.com/kailas-cloud/askdb/internal/logger"
	"github.com/kailas-cloud/askdb/internal/metrics"
)

// Answer is the pipeline result for one question.
type Answer struct {
	Question string
	Analysis intent.Intent
	Results  []map[string]any
}

// Service runs one sequential pipeline invocation per question. It holds no
// per-request state; the store and model clients it wraps are safe for
// concurrent use.
type Service struct {
	schema            SchemaLister
	store             DocumentQuerier
	model             Completer
	defaultCollection string
	queryTimeout      time.Duration
}

// New creates a query pipeline service.
func New(schema SchemaLister, store DocumentQuerier, model Completer, defaultCollection string) *Service {
	return &Service{
		schema:            schema,
		store:             store,
		model:             model,
		defaultCollection: defaultCollection,
	}
}

// WithQueryTimeout bounds each store dispatch. Zero means no extra bound
// beyond the request context.
func (s *Service) WithQueryTimeout(d time.Duration) *Service {
	s.queryTimeout = d
	return s
}

// Ask answers a free-text question with documents from the store.
//
// Extraction and validation failures self-heal into the fallback intent and
// never surface. Two error classes do surface: domain.ErrModelUnavailable
// (the pipeline cannot proceed without model output) and dispatch failures
// (domain.ErrStoreUnavailable, domain.ErrUnsupportedQueryShape,
// domain.ErrNoCollections).
func (s *Service) Ask(ctx context.Context, question string) (Answer, error) {
	log := logger.FromContext(ctx)

	collections := s.discoverCollections(ctx)

	raw, err := s.model.Complete(ctx, prompt.Build(question, collections))
	if err != nil {
		return Answer{}, fmt.Errorf("complete: %w", err)
	}

	obj, err := extract.JSON(raw)
	if err != nil {
		// Recovered locally: Normalize turns nil into the fallback intent.
		log.Warn("intent extraction failed, falling back",
			zap.Error(err),
			zap.Int("completion_len", len(raw)),
		)
		metrics.ParseFailuresTotal.WithLabelValues(parseFailureReason(err)).Inc()
	}

	it := intent.Normalize(obj, collections, s.defaultCollection)
	s.observeRepairs(log, obj, it)

	docs, err := s.dispatch(ctx, it)
	if err != nil {
		return Answer{}, err
	}

	return Answer{Question: question, Analysis: it, Results: docs}, nil
}

// discoverCollections fetches the catalog fresh for this request. A store
// failure here degrades to an empty set: the validator then has no safe
// fallback target and dispatch rejects with ErrNoCollections.
func (s *Service) discoverCollections(ctx context.Context) []string {
	names, err := s.schema.ListCollections(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn("schema discovery failed, proceeding without catalog", zap.Error(err))
		return nil
	}
	return names
}

// dispatch maps a validated intent to a concrete store operation.
// It is a pure function of (kind, collection, query).
func (s *Service) dispatch(ctx context.Context, it intent.Intent) ([]map[string]any, error) {
	if it.Collection == intent.NoCollection {
		return nil, domain.ErrNoCollections
	}

	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	switch it.Kind {
	case intent.KindAggregate:
		stages, ok := it.Query.([]any)
		if !ok {
			metrics.DispatchTotal.WithLabelValues(string(it.Kind), "rejected").Inc()
			return nil, fmt.Errorf("aggregate query must be a stage sequence, got %T: %w",
				it.Query, domain.ErrUnsupportedQueryShape)
		}
		docs, err := s.store.Aggregate(ctx, it.Collection, stages)
		if err != nil {
			metrics.DispatchTotal.WithLabelValues(string(it.Kind), "error").Inc()
			return nil, fmt.Errorf("%w: aggregate on %q: %v", domain.ErrStoreUnavailable, it.Collection, err)
		}
		metrics.DispatchTotal.WithLabelValues(string(it.Kind), "success").Inc()
		return docs, nil

	case intent.KindList, intent.KindSearch:
		filter, err := filterObject(it.Query)
		if err != nil {
			metrics.DispatchTotal.WithLabelValues(string(it.Kind), "rejected").Inc()
			return nil, err
		}
		docs, err := s.store.Find(ctx, it.Collection, filter)
		if err != nil {
			metrics.DispatchTotal.WithLabelValues(string(it.Kind), "error").Inc()
			return nil, fmt.Errorf("%w: find on %q: %v", domain.ErrStoreUnavailable, it.Collection, err)
		}
		metrics.DispatchTotal.WithLabelValues(string(it.Kind), "success").Inc()
		return docs, nil

	default:
		// Normalize guarantees one of the three kinds; reaching here is a defect.
		return nil, fmt.Errorf("kind %q: %w", it.Kind, domain.ErrUnsupportedQueryShape)
	}
}

// filterObject coerces the opaque query into a find filter.
// nil means match-all; anything that is not an object is rejected.
func filterObject(q any) (map[string]any, error) {
	switch v := q.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("find filter must be an object, got %T: %w",
			q, domain.ErrUnsupportedQueryShape)
	}
}

// observeRepairs logs and counts fields the validator rewrote, so the
// availability-over-precision trade-off stays visible to operators.
func (s *Service) observeRepairs(log *zap.Logger, raw map[string]any, it intent.Intent) {
	if raw == nil {
		metrics.IntentRepairsTotal.WithLabelValues("all").Inc()
		return
	}
	if k, _ := raw["intent"].(string); !strings.EqualFold(k, string(it.Kind)) {
		metrics.IntentRepairsTotal.WithLabelValues("kind").Inc()
		log.Warn("intent kind repaired", zap.Any("raw_kind", raw["intent"]), zap.String("kind", string(it.Kind)))
	}
	if c, _ := raw["collection"].(string); c != it.Collection {
		metrics.IntentRepairsTotal.WithLabelValues("collection").Inc()
		log.Warn("intent collection repaired",
			zap.Any("raw_collection", raw["collection"]),
			zap.String("collection", it.Collection),
		)
	}
}

func parseFailureReason(err error) string {
	if errors.Is(err, extract.ErrNoJSONDelimiters) {
		return "no_delimiters"
	}
	return "malformed"
}
