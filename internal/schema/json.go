package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldError reports a single node field that failed to decode. The validator
// wraps it with the node's position in the document to build a full path.
type FieldError struct {
	Field    string
	Expected string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: expected %s", e.Field, e.Expected)
}

// nodeFieldExpectations maps each recognized node key to the type description
// used in decode errors.
var nodeFieldExpectations = map[string]string{
	"id":                   "string",
	"type":                 "string",
	"label":                "string",
	"position":             "object with numeric x and y",
	"ruleId":               "string",
	"contextId":            "string",
	"connectorId":          "string",
	"resourceId":           "string",
	"route":                "string",
	"linkedResourceStatus": "string",
}

// UnmarshalJSON decodes a node, routing recognized keys into typed fields and
// preserving everything else in the Extra bag.
func (n *Node) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*n = Node{}
	for key, raw := range fields {
		var dst any
		switch key {
		case "id":
			dst = &n.ID
		case "type":
			dst = &n.Type
		case "label":
			dst = &n.Label
		case "position":
			dst = &n.Position
		case "ruleId":
			dst = &n.RuleID
		case "contextId":
			dst = &n.ContextID
		case "connectorId":
			dst = &n.ConnectorID
		case "resourceId":
			dst = &n.ResourceID
		case "route":
			dst = &n.Route
		case "linkedResourceStatus":
			dst = &n.LinkedResourceStatus
		default:
			if n.Extra == nil {
				n.Extra = make(map[string]json.RawMessage)
			}
			// Stored compacted so a parse/stringify round trip is stable
			// regardless of the source formatting.
			var buf bytes.Buffer
			if err := json.Compact(&buf, raw); err != nil {
				return &FieldError{Field: key, Expected: "valid JSON value"}
			}
			n.Extra[key] = append(json.RawMessage(nil), buf.Bytes()...)
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return &FieldError{Field: key, Expected: nodeFieldExpectations[key]}
		}
	}
	return nil
}

// MarshalJSON encodes the node's typed fields merged with its Extra bag.
// Recognized fields win over same-named Extra entries. Optional reference
// fields are omitted when empty.
func (n Node) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(n.Extra)+10)
	for k, v := range n.Extra {
		out[k] = v
	}

	set := func(key string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		out[key] = b
		return nil
	}

	if err := set("id", n.ID); err != nil {
		return nil, err
	}
	if err := set("type", n.Type); err != nil {
		return nil, err
	}
	if err := set("label", n.Label); err != nil {
		return nil, err
	}
	if err := set("position", n.Position); err != nil {
		return nil, err
	}

	optional := []struct {
		key string
		val string
	}{
		{"ruleId", n.RuleID},
		{"contextId", n.ContextID},
		{"connectorId", n.ConnectorID},
		{"resourceId", n.ResourceID},
		{"route", n.Route},
		{"linkedResourceStatus", string(n.LinkedResourceStatus)},
	}
	for _, f := range optional {
		if f.val == "" {
			// Omit the empty typed field, but an Extra entry that happens to
			// share the name (a non-string payload value) is real data and
			// stays in the output.
			continue
		}
		if err := set(f.key, f.val); err != nil {
			return nil, err
		}
	}

	return json.Marshal(out)
}
