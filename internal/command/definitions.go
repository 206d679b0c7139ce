package command

import "github.com/vk/blueprintgo/internal/schema"

func applyEditAccessGate(doc *schema.Document, c EditAccessGate) {
	if doc.Definitions.AccessGates == nil {
		doc.Definitions.AccessGates = map[string]schema.AccessGate{}
	}

	gate, ok := doc.Definitions.AccessGates[c.GateID]
	if !ok {
		gate = schema.AccessGate{ID: c.GateID, AllowedRoles: []string{}}
	}
	if c.AllowedRoles != nil {
		gate.AllowedRoles = append([]string(nil), c.AllowedRoles...)
	}
	if c.Expression != nil {
		gate.Expression = *c.Expression
	}
	gate.ID = c.GateID

	doc.Definitions.AccessGates[c.GateID] = gate
}

func applyEditAccessContext(doc *schema.Document, c EditAccessContext) {
	if doc.Definitions.AccessContexts == nil {
		doc.Definitions.AccessContexts = map[string]schema.AccessContext{}
	}

	actx, ok := doc.Definitions.AccessContexts[c.ContextID]
	if !ok {
		actx = schema.AccessContext{ID: c.ContextID, AccessModeByRole: map[string]schema.AccessMode{}}
	}
	if c.AccessModeByRole != nil {
		modes := make(map[string]schema.AccessMode, len(c.AccessModeByRole))
		for role, mode := range c.AccessModeByRole {
			modes[role] = mode
		}
		actx.AccessModeByRole = modes
	}
	if c.ConnectorBindings != nil {
		bindings := make(map[string]string, len(c.ConnectorBindings))
		for k, v := range c.ConnectorBindings {
			bindings[k] = v
		}
		actx.ConnectorBindings = bindings
	}
	actx.ID = c.ContextID

	doc.Definitions.AccessContexts[c.ContextID] = actx
}

func applyAddRole(doc *schema.Document, c AddRole) {
	for _, r := range doc.Definitions.UserProfile.Roles {
		if r == c.Role {
			return
		}
	}
	doc.Definitions.UserProfile.Roles = append(doc.Definitions.UserProfile.Roles, c.Role)
}

func applyRemoveRole(doc *schema.Document, c RemoveRole) {
	kept := doc.Definitions.UserProfile.Roles[:0]
	for _, r := range doc.Definitions.UserProfile.Roles {
		if r != c.Role {
			kept = append(kept, r)
		}
	}
	doc.Definitions.UserProfile.Roles = kept
}
