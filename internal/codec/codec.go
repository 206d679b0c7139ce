// Package codec parses and stringifies blueprint documents to and from their
// persisted JSON form. Parsing distinguishes empty input, malformed JSON and
// schema mismatches so callers can decide between synthesizing a fresh
// document and surfacing an error.
package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vk/blueprintgo/internal/schema"
)

// Kind classifies why a Parse call failed.
type Kind string

const (
	// KindEmpty means the input was empty or whitespace-only. Callers
	// typically fall back to schema.NewDocument.
	KindEmpty Kind = "empty"
	// KindSyntax means the input was not valid JSON.
	KindSyntax Kind = "syntax"
	// KindSchema means the JSON did not match the document schema. Err holds
	// the underlying *schema.SchemaError.
	KindSchema Kind = "schema"
)

// ParseError is the discriminated failure result of Parse.
type ParseError struct {
	Kind Kind
	Err  error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindEmpty:
		return "parse: empty document"
	case KindSyntax:
		return fmt.Sprintf("parse: invalid JSON: %v", e.Err)
	default:
		return fmt.Sprintf("parse: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes and schema-validates blueprint text. On failure the returned
// error is always a *ParseError; the document is never partially populated.
func Parse(text string) (*schema.Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Kind: KindEmpty}
	}

	data := []byte(text)
	if !json.Valid(data) {
		// Re-decode to surface the standard library's syntax position.
		var probe any
		err := json.Unmarshal(data, &probe)
		return nil, &ParseError{Kind: KindSyntax, Err: err}
	}

	doc, err := schema.Validate(data)
	if err != nil {
		return nil, &ParseError{Kind: KindSchema, Err: err}
	}
	return doc, nil
}

// Stringify renders the document as pretty-printed, human-diffable JSON with
// two-space indentation and a trailing newline. It panics only if the
// document holds values that cannot be represented as JSON, which is a
// programmer error, not an input error.
func Stringify(doc *schema.Document) string {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		panic(fmt.Errorf("codec: document not representable as JSON: %w", err))
	}
	return string(b) + "\n"
}
