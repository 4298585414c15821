package prompt

import (
	"strings"
	"testing"
)

func TestBuild_Deterministic(t *testing.T) {
	collections := []string{"articles", "categories"}

	first := Build("what is in stock?", collections)
	second := Build("what is in stock?", collections)

	if first != second {
		t.Error("identical inputs produced different prompts")
	}
}

func TestBuild_EmbedsCatalogAndQuestion(t *testing.T) {
	p := Build("how many orders?", []string{"articles", "categories", "orders"})

	if !strings.Contains(p, "articles, categories, orders") {
		t.Error("prompt missing comma-joined collection catalog")
	}
	if !strings.Contains(p, "Question: how many orders?") {
		t.Error("prompt missing user question")
	}
	if !strings.Contains(p, "ONLY a single JSON object") {
		t.Error("prompt missing single-object output instruction")
	}
}

func TestBuild_CarriesWorkedExamples(t *testing.T) {
	p := Build("q", []string{"articles"})

	// Top-N exemplar.
	for _, stage := range []string{`"$sort"`, `"$limit"`} {
		if !strings.Contains(p, stage) {
			t.Errorf("prompt missing %s in top-N example", stage)
		}
	}
	// Relational exemplar.
	for _, stage := range []string{`"$lookup"`, `"$unwind"`, `"$project"`} {
		if !strings.Contains(p, stage) {
			t.Errorf("prompt missing %s in lookup example", stage)
		}
	}
}

func TestBuild_EmptyCatalog(t *testing.T) {
	// Discovery can degrade to an empty set; the prompt must still be well formed.
	p := Build("anything", nil)

	if !strings.Contains(p, "Available collections: \n") {
		t.Error("prompt malformed for empty catalog")
	}
}
