package schema

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// SchemaError describes the first structural mismatch found while validating
// a raw document. Path addresses the offending value (e.g. "nodes[2].type")
// and Expected names the shape it should have had.
type SchemaError struct {
	Path     string
	Expected string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: %s: expected %s", e.Path, e.Expected)
}

// rawDocument is the loosely-typed first decoding pass, kept raw so each
// section can be validated with a precise path.
type rawDocument struct {
	Version     *string           `json:"version"`
	Nodes       []json.RawMessage `json:"nodes"`
	Edges       []json.RawMessage `json:"edges"`
	Definitions json.RawMessage   `json:"definitions"`
	EntryNodeID *string           `json:"entryNodeId"`
}

// Validate checks an arbitrary JSON value against the document schema and
// returns the typed document on success. The input must already be
// syntactically valid JSON; syntax-level failures are the codec package's
// concern. On mismatch the returned error is a *SchemaError for the first
// offending value.
//
// Unknown keys on nodes are preserved (see Node.Extra); unknown keys
// elsewhere are ignored.
func Validate(data []byte) (*Document, error) {
	var rd rawDocument
	if err := json.Unmarshal(data, &rd); err != nil {
		return nil, asSchemaError("", err)
	}

	if rd.Version == nil || *rd.Version == "" {
		return nil, &SchemaError{Path: "version", Expected: "non-empty string"}
	}

	doc := &Document{
		Version: *rd.Version,
		Nodes:   make([]Node, 0, len(rd.Nodes)),
		Edges:   make([]Edge, 0, len(rd.Edges)),
	}

	seenNodeIDs := make(map[string]bool, len(rd.Nodes))
	for i, raw := range rd.Nodes {
		path := fmt.Sprintf("nodes[%d]", i)
		var n Node
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, asSchemaError(path, err)
		}
		if err := uuid.Validate(n.ID); err != nil {
			return nil, &SchemaError{Path: path + ".id", Expected: "UUID-shaped string"}
		}
		if seenNodeIDs[n.ID] {
			return nil, &SchemaError{Path: path + ".id", Expected: "unique node id"}
		}
		seenNodeIDs[n.ID] = true
		if !n.Type.Valid() {
			return nil, &SchemaError{Path: path + ".type", Expected: "one of the defined node types"}
		}
		doc.Nodes = append(doc.Nodes, n)
	}

	seenEdgeIDs := make(map[string]bool, len(rd.Edges))
	for i, raw := range rd.Edges {
		path := fmt.Sprintf("edges[%d]", i)
		var e Edge
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, asSchemaError(path, err)
		}
		if err := uuid.Validate(e.ID); err != nil {
			return nil, &SchemaError{Path: path + ".id", Expected: "UUID-shaped string"}
		}
		if seenEdgeIDs[e.ID] {
			return nil, &SchemaError{Path: path + ".id", Expected: "unique edge id"}
		}
		seenEdgeIDs[e.ID] = true
		doc.Edges = append(doc.Edges, e)
	}

	defs, err := validateDefinitions(rd.Definitions)
	if err != nil {
		return nil, err
	}
	doc.Definitions = defs

	if rd.EntryNodeID != nil {
		doc.EntryNodeID = *rd.EntryNodeID
	}

	return doc, nil
}

// validateDefinitions decodes the definitions side table, defaulting missing
// sections to empty and enforcing the access-mode enum.
func validateDefinitions(raw json.RawMessage) (Definitions, error) {
	defs := Definitions{
		AccessGates:    map[string]AccessGate{},
		AccessContexts: map[string]AccessContext{},
		UserProfile:    UserProfile{Roles: []string{}},
	}
	if len(raw) == 0 {
		return defs, nil
	}

	var decoded Definitions
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return defs, asSchemaError("definitions", err)
	}

	for key, gate := range decoded.AccessGates {
		if gate.ID == "" {
			gate.ID = key
		}
		if gate.AllowedRoles == nil {
			gate.AllowedRoles = []string{}
		}
		defs.AccessGates[key] = gate
	}
	for key, actx := range decoded.AccessContexts {
		for role, mode := range actx.AccessModeByRole {
			if !mode.Valid() {
				return defs, &SchemaError{
					Path:     fmt.Sprintf("definitions.accessContexts.%s.accessModeByRole.%s", key, role),
					Expected: "one of read, write, delete, read_only",
				}
			}
		}
		if actx.ID == "" {
			actx.ID = key
		}
		if actx.AccessModeByRole == nil {
			actx.AccessModeByRole = map[string]AccessMode{}
		}
		defs.AccessContexts[key] = actx
	}
	if decoded.UserProfile.Roles != nil {
		defs.UserProfile.Roles = decoded.UserProfile.Roles
	}

	return defs, nil
}

// asSchemaError converts a JSON decoding error into a path-addressed
// SchemaError rooted at base.
func asSchemaError(base string, err error) *SchemaError {
	join := func(field string) string {
		if base == "" {
			return field
		}
		if field == "" {
			return base
		}
		return base + "." + field
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		return &SchemaError{Path: join(fe.Field), Expected: fe.Expected}
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		return &SchemaError{Path: join(te.Field), Expected: te.Type.String()}
	}
	return &SchemaError{Path: join(""), Expected: "a value matching the document schema"}
}
