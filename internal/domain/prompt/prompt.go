// Package prompt composes the instruction prompt sent to the completion
// model. Build is pure and deterministic: the same question and catalog
// always yield byte-identical output, so prompt changes show up in review
// diffs and tests instead of drifting at runtime.
package prompt

import "strings"

// The worked examples are load-bearing. Without aggregation exemplars the
// model reliably emits broken pipeline syntax for "top N" and relational
// questions, which raises the malformed-output rate downstream. Keep both
// when editing.
const (
	header = `You translate user questions into MongoDB operations.
Respond with ONLY a single JSON object, no prose, no code fences, matching:
{"intent": "list" | "search" | "aggregate", "collection": "<name>", "query": <filter object or pipeline array>}

Rules:
- "collection" must be one of the available collections listed below.
- For "list" and "search", "query" is a find filter object ({} matches all).
- For "aggregate", "query" is an ordered array of pipeline stages.`

	exampleTopN = `Example — "which article has the highest stock?":
{"intent": "aggregate", "collection": "articles", "query": [{"$sort": {"qtestock": -1}}, {"$limit": 1}]}`

	exampleLookup = `Example — "list articles with their category names":
{"intent": "aggregate", "collection": "articles", "query": [{"$lookup": {"from": "categories", "localField": "categorie", "foreignField": "_id", "as": "categorie"}}, {"$unwind": "$categorie"}, {"$project": {"designation": 1, "categorie.nom": 1}}]}`
)

// Build composes the full prompt for a question against the discovered
// collection catalog.
func Build(question string, collections []string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\nAvailable collections: ")
	b.WriteString(strings.Join(collections, ", "))
	b.WriteString("\n\n")
	b.WriteString(exampleTopN)
	b.WriteString("\n\n")
	b.WriteString(exampleLookup)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	return b.String()
}
