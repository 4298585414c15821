// Package intent holds the validated representation of a database operation
// inferred from a natural-language question. An Intent is only ever built
// through Normalize, which repairs untrusted model output instead of
// rejecting it: later stages can rely on Kind and Collection being sane.
package intent

import "strings"

// Kind enumerates the supported operation kinds.
type Kind string

const (
	// KindList is a filtered find, typically with an empty filter.
	KindList Kind = "list"
	// KindSearch is a filtered find with a non-trivial filter.
	KindSearch Kind = "search"
	// KindAggregate is an aggregation pipeline run.
	KindAggregate Kind = "aggregate"
)

// NoCollection is the collection sentinel used when schema discovery returned
// nothing: there is no safe fallback target, and the dispatcher must reject it.
const NoCollection = ""

// Intent is a trusted, normalized database operation. Query stays opaque:
// a filter object for list/search, a stage sequence for aggregate. Its shape
// is enforced at dispatch time, not here.
type Intent struct {
	Kind       Kind   `json:"intent"`
	Collection string `json:"collection"`
	Query      any    `json:"query"`
}

// Raw field names produced by the model, per the prompt contract.
const (
	rawKeyKind       = "intent"
	rawKeyCollection = "collection"
	rawKeyQuery      = "query"
)

// Normalize turns untrusted model output into a usable Intent. It never
// fails; every invalid or missing field is repaired:
//
//   - raw == nil (extraction failed) yields the fallback intent: list with an
//     empty filter on the fallback collection.
//   - an unknown kind becomes KindList.
//   - a collection outside the discovered set is rewritten to preferred (if
//     discovered) else the first discovered name; an empty discovered set
//     yields NoCollection.
//   - the query passes through untouched.
func Normalize(raw map[string]any, collections []string, preferred string) Intent {
	if raw == nil {
		return Intent{
			Kind:       KindList,
			Collection: fallbackCollection(collections, preferred),
			Query:      map[string]any{},
		}
	}

	it := Intent{
		Kind:  normalizeKind(raw[rawKeyKind]),
		Query: raw[rawKeyQuery],
	}

	name, _ := raw[rawKeyCollection].(string)
	if contains(collections, name) {
		it.Collection = name
	} else {
		it.Collection = fallbackCollection(collections, preferred)
	}

	return it
}

// IsFallback reports whether it is exactly the intent Normalize produces for
// nil input against the same discovered set. Used for observability only.
func (it Intent) IsFallback(collections []string, preferred string) bool {
	if it.Kind != KindList || it.Collection != fallbackCollection(collections, preferred) {
		return false
	}
	q, ok := it.Query.(map[string]any)
	return ok && len(q) == 0
}

func normalizeKind(v any) Kind {
	s, _ := v.(string)
	switch Kind(strings.ToLower(s)) {
	case KindList, KindSearch, KindAggregate:
		return Kind(strings.ToLower(s))
	default:
		return KindList
	}
}

func fallbackCollection(collections []string, preferred string) string {
	if len(collections) == 0 {
		return NoCollection
	}
	if preferred != "" && contains(collections, preferred) {
		return preferred
	}
	return collections[0]
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
