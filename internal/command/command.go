// Package command is the mutation layer over blueprint documents. Every
// command is a discrete, undo-friendly edit: Apply never mutates its input
// and always returns a structurally independent document.
//
// Commands never reject based on graph-level invariants. Dangling endpoints,
// duplicate routers and the like are the graph package's job to report after
// the fact; a command referencing a non-existent id is silently absorbed.
package command

import (
	"github.com/vk/blueprintgo/internal/nodeid"
	"github.com/vk/blueprintgo/internal/schema"
)

// Command is a tagged edit operation. The concrete types in this package are
// the full set; Apply treats anything else as a no-op.
type Command interface {
	isCommand()
}

// CreateNode appends a new node with a fresh id. Payload entries are merged
// into the node body: recognized keys populate typed fields, unrecognized
// keys land in the node's Extra bag. The new node becomes the entry node if
// it is the first node ever added or its type is app_router (last writer
// wins, no uniqueness enforced here).
type CreateNode struct {
	Type     schema.NodeType
	Label    string
	Position schema.Position
	Payload  map[string]any
}

// DeleteNode removes the node and every edge touching it in one atomic step.
// If the deleted node was the entry, the entry falls back to the new first
// node, or to unset if the document is now empty.
type DeleteNode struct {
	NodeID string
}

// MoveNode replaces the node's position only.
type MoveNode struct {
	NodeID   string
	Position schema.Position
}

// UpdateNode shallow-merges the provided optional fields onto the node. Nil
// fields are left untouched.
type UpdateNode struct {
	NodeID               string
	Label                *string
	ResourceID           *string
	Route                *string
	LinkedResourceStatus *schema.LinkedResourceStatus
}

// CreateEdge appends a new edge with a fresh id. Endpoint existence is not
// checked.
type CreateEdge struct {
	SourceNodeID string
	TargetNodeID string
	SourceHandle string
	TargetHandle string
}

// DeleteEdge removes the matching edge.
type DeleteEdge struct {
	EdgeID string
}

// EditAccessGate upserts a gate definition, merging the provided fields over
// the existing definition (or over an empty-roles default if new).
type EditAccessGate struct {
	GateID       string
	AllowedRoles []string // nil leaves existing roles untouched
	Expression   *string
}

// EditAccessContext upserts an access-context definition symmetrically to
// EditAccessGate.
type EditAccessContext struct {
	ContextID         string
	AccessModeByRole  map[string]schema.AccessMode // nil leaves existing modes untouched
	ConnectorBindings map[string]string            // nil leaves existing bindings untouched
}

// AddRole appends a role to the user profile if not already present.
type AddRole struct {
	Role string
}

// RemoveRole filters the role out of the user profile.
type RemoveRole struct {
	Role string
}

func (CreateNode) isCommand()        {}
func (DeleteNode) isCommand()        {}
func (MoveNode) isCommand()          {}
func (UpdateNode) isCommand()        {}
func (CreateEdge) isCommand()        {}
func (DeleteEdge) isCommand()        {}
func (EditAccessGate) isCommand()    {}
func (EditAccessContext) isCommand() {}
func (AddRole) isCommand()           {}
func (RemoveRole) isCommand()        {}

// Apply executes one command against the document and returns the edited
// copy. A nil generator defaults to random UUIDs. Unknown or nil commands
// return an unmodified deep copy.
func Apply(doc *schema.Document, cmd Command, gen nodeid.Generator) *schema.Document {
	if gen == nil {
		gen = nodeid.New
	}
	out := doc.Clone()

	switch c := cmd.(type) {
	case CreateNode:
		applyCreateNode(out, c, gen)
	case DeleteNode:
		applyDeleteNode(out, c)
	case MoveNode:
		applyMoveNode(out, c)
	case UpdateNode:
		applyUpdateNode(out, c)
	case CreateEdge:
		applyCreateEdge(out, c, gen)
	case DeleteEdge:
		applyDeleteEdge(out, c)
	case EditAccessGate:
		applyEditAccessGate(out, c)
	case EditAccessContext:
		applyEditAccessContext(out, c)
	case AddRole:
		applyAddRole(out, c)
	case RemoveRole:
		applyRemoveRole(out, c)
	}

	return out
}
