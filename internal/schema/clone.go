package schema

import "encoding/json"

// Clone returns a structurally independent deep copy of the document. The
// command package relies on this to keep every mutation copy-on-write.
func (d *Document) Clone() *Document {
	out := &Document{
		Version:     d.Version,
		Nodes:       make([]Node, len(d.Nodes)),
		Edges:       make([]Edge, len(d.Edges)),
		Definitions: d.Definitions.clone(),
		EntryNodeID: d.EntryNodeID,
	}
	for i := range d.Nodes {
		out.Nodes[i] = d.Nodes[i].Clone()
	}
	for i := range d.Edges {
		out.Edges[i] = d.Edges[i].clone()
	}
	return out
}

// Clone returns a deep copy of the node, including its Extra bag.
func (n Node) Clone() Node {
	out := n
	if n.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(n.Extra))
		for k, v := range n.Extra {
			out.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return out
}

func (e Edge) clone() Edge {
	out := e
	if e.ContextPayload != nil {
		out.ContextPayload = cloneAnyMap(e.ContextPayload)
	}
	return out
}

func (defs Definitions) clone() Definitions {
	out := Definitions{
		AccessGates:    make(map[string]AccessGate, len(defs.AccessGates)),
		AccessContexts: make(map[string]AccessContext, len(defs.AccessContexts)),
		UserProfile:    UserProfile{Roles: append([]string(nil), defs.UserProfile.Roles...)},
	}
	for k, gate := range defs.AccessGates {
		gate.AllowedRoles = append([]string(nil), gate.AllowedRoles...)
		out.AccessGates[k] = gate
	}
	for k, actx := range defs.AccessContexts {
		modes := make(map[string]AccessMode, len(actx.AccessModeByRole))
		for role, mode := range actx.AccessModeByRole {
			modes[role] = mode
		}
		actx.AccessModeByRole = modes
		if actx.ConnectorBindings != nil {
			bindings := make(map[string]string, len(actx.ConnectorBindings))
			for ck, cv := range actx.ConnectorBindings {
				bindings[ck] = cv
			}
			actx.ConnectorBindings = bindings
		}
		out.AccessContexts[k] = actx
	}
	return out
}

// cloneAnyMap deep-copies a parsed-JSON-shaped map. Values outside the JSON
// scalar/map/slice vocabulary are copied by reference.
func cloneAnyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneAny(v)
	}
	return out
}

func cloneAny(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneAnyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneAny(item)
		}
		return out
	default:
		return v
	}
}
