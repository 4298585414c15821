package intent

import (
	"reflect"
	"testing"
)

func TestNormalize_NilRawProducesFallback(t *testing.T) {
	it := Normalize(nil, []string{"articles", "categories"}, "articles")

	if it.Kind != KindList {
		t.Errorf("kind = %q, want %q", it.Kind, KindList)
	}
	if it.Collection != "articles" {
		t.Errorf("collection = %q, want %q", it.Collection, "articles")
	}
	q, ok := it.Query.(map[string]any)
	if !ok || len(q) != 0 {
		t.Errorf("query = %#v, want empty filter", it.Query)
	}
	if !it.IsFallback([]string{"articles", "categories"}, "articles") {
		t.Error("IsFallback = false, want true")
	}
}

func TestNormalize_NilRawEmptyCatalog(t *testing.T) {
	it := Normalize(nil, nil, "articles")

	if it.Collection != NoCollection {
		t.Errorf("collection = %q, want NoCollection sentinel", it.Collection)
	}
	if it.Kind != KindList {
		t.Errorf("kind = %q, want %q", it.Kind, KindList)
	}
}

func TestNormalize_ValidRawPassesThrough(t *testing.T) {
	raw := map[string]any{
		"intent":     "search",
		"collection": "categories",
		"query":      map[string]any{"name": "tools"},
	}

	it := Normalize(raw, []string{"articles", "categories"}, "articles")

	if it.Kind != KindSearch {
		t.Errorf("kind = %q, want %q", it.Kind, KindSearch)
	}
	if it.Collection != "categories" {
		t.Errorf("collection = %q, want %q", it.Collection, "categories")
	}
	if !reflect.DeepEqual(it.Query, map[string]any{"name": "tools"}) {
		t.Errorf("query = %#v, want original filter untouched", it.Query)
	}
}

func TestNormalize_KindRepair(t *testing.T) {
	tests := []struct {
		name string
		kind any
		want Kind
	}{
		{"unknown string", "drop", KindList},
		{"absent", nil, KindList},
		{"non-string", 42, KindList},
		{"uppercase accepted", "AGGREGATE", KindAggregate},
		{"mixed case accepted", "List", KindList},
		{"search accepted", "search", KindSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{"collection": "articles"}
			if tt.kind != nil {
				raw["intent"] = tt.kind
			}
			it := Normalize(raw, []string{"articles"}, "articles")
			if it.Kind != tt.want {
				t.Errorf("kind = %q, want %q", it.Kind, tt.want)
			}
		})
	}
}

func TestNormalize_CollectionRepair(t *testing.T) {
	tests := []struct {
		name        string
		collection  any
		collections []string
		preferred   string
		want        string
	}{
		{"unknown rewritten to preferred", "users", []string{"articles", "categories"}, "articles", "articles"},
		{"preferred absent falls back to first", "users", []string{"categories", "orders"}, "articles", "categories"},
		{"absent field", nil, []string{"articles"}, "articles", "articles"},
		{"non-string field", 7, []string{"articles"}, "articles", "articles"},
		{"member kept verbatim", "orders", []string{"categories", "orders"}, "articles", "orders"},
		{"empty catalog yields sentinel", "users", nil, "articles", NoCollection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]any{"intent": "list"}
			if tt.collection != nil {
				raw["collection"] = tt.collection
			}
			it := Normalize(raw, tt.collections, tt.preferred)
			if it.Collection != tt.want {
				t.Errorf("collection = %q, want %q", it.Collection, tt.want)
			}
		})
	}
}

func TestNormalize_QueryNeverValidatedHere(t *testing.T) {
	// A kind/query mismatch is the dispatcher's problem; Normalize must not touch it.
	raw := map[string]any{
		"intent":     "aggregate",
		"collection": "articles",
		"query":      "not a pipeline",
	}

	it := Normalize(raw, []string{"articles"}, "articles")

	if it.Query != "not a pipeline" {
		t.Errorf("query = %#v, want passed through unchanged", it.Query)
	}
}

func TestIsFallback_RealIntentIsNot(t *testing.T) {
	raw := map[string]any{
		"intent":     "list",
		"collection": "articles",
		"query":      map[string]any{"stock": 0},
	}
	it := Normalize(raw, []string{"articles"}, "articles")

	if it.IsFallback([]string{"articles"}, "articles") {
		t.Error("intent with a non-empty filter reported as fallback")
	}
}
