// Package extract pulls a single JSON object out of free-form model output.
//
// The contract is deliberately a best-effort heuristic: take the substring
// from the first '{' to the last '}' and parse it. Output wrapped in prose or
// code fences is handled; a JSON value that is not the outermost brace pair
// (e.g. unbalanced braces in surrounding text) can mis-extract. That is a
// documented limitation, not a bug to fix with a markdown-aware parser —
// callers and the prompt contract depend on exactly this behavior.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrParseFailure is the common ancestor of all extraction errors.
var ErrParseFailure = errors.New("parse failure")

var (
	// ErrNoJSONDelimiters signals that the text holds no '{'/'}' pair.
	ErrNoJSONDelimiters = fmt.Errorf("%w: no JSON delimiters", ErrParseFailure)
	// ErrMalformedJSON signals that the bracketed substring is not valid JSON.
	ErrMalformedJSON = fmt.Errorf("%w: malformed JSON", ErrParseFailure)
)

// JSON extracts and parses the outermost JSON object in text.
// The returned map is nil exactly when err is non-nil.
func JSON(text string) (map[string]any, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoJSONDelimiters
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedJSON, err)
	}
	return obj, nil
}
