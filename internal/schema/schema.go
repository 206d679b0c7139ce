package schema

import "encoding/json"

// DocVersion is the format version written into freshly created documents.
const DocVersion = "1.0"

// NodeType identifies the semantic type of a node in the blueprint graph.
type NodeType string

const (
	NodeAppRouter      NodeType = "app_router"
	NodeMenu           NodeType = "menu"
	NodeView           NodeType = "view"
	NodeModal          NodeType = "modal"
	NodeAuth           NodeType = "auth"
	NodeAccessGate     NodeType = "access_gate"
	NodeAccessContext  NodeType = "access_context"
	NodeConnector      NodeType = "connector"
	NodeStateInjection NodeType = "state_injection"
	NodeRedirector     NodeType = "redirector"
	NodeSwitchRole     NodeType = "switch_role"
)

// nodeTypes is the closed set of valid node types.
var nodeTypes = map[NodeType]bool{
	NodeAppRouter:      true,
	NodeMenu:           true,
	NodeView:           true,
	NodeModal:          true,
	NodeAuth:           true,
	NodeAccessGate:     true,
	NodeAccessContext:  true,
	NodeConnector:      true,
	NodeStateInjection: true,
	NodeRedirector:     true,
	NodeSwitchRole:     true,
}

// Valid reports whether t is one of the defined node types.
func (t NodeType) Valid() bool { return nodeTypes[t] }

// Terminal reports whether a node of this type is legitimately a leaf of the
// graph. Terminal-typed nodes with no outgoing edges are not dead ends.
func (t NodeType) Terminal() bool {
	return t == NodeView || t == NodeModal || t == NodeMenu
}

// AccessMode is the per-role access level recorded in an access context.
type AccessMode string

const (
	AccessRead     AccessMode = "read"
	AccessWrite    AccessMode = "write"
	AccessDelete   AccessMode = "delete"
	AccessReadOnly AccessMode = "read_only"
)

// Valid reports whether m is one of the four defined access modes.
func (m AccessMode) Valid() bool {
	switch m {
	case AccessRead, AccessWrite, AccessDelete, AccessReadOnly:
		return true
	}
	return false
}

// LinkedResourceStatus tracks whether a node's external resource reference
// currently resolves.
type LinkedResourceStatus string

const (
	ResourceLinked     LinkedResourceStatus = "linked"
	ResourceMissing    LinkedResourceStatus = "missing"
	ResourceUnassigned LinkedResourceStatus = "unassigned"
)

// Position is an editor-only canvas coordinate. It has no semantic effect.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node is a typed vertex in the blueprint graph. Type-specific fields carry
// weak references by id and may dangle; the graph validator reports dangling
// references, the type system does not prevent them.
//
// Extra holds unrecognized fields found on the node during parsing. They are
// preserved byte-for-byte across a parse/stringify round trip.
type Node struct {
	ID       string
	Type     NodeType
	Label    string
	Position Position

	RuleID               string
	ContextID            string
	ConnectorID          string
	ResourceID           string
	Route                string
	LinkedResourceStatus LinkedResourceStatus

	Extra map[string]json.RawMessage
}

// Edge is a directed connection between two nodes. Both endpoints are weak
// references into the document's node list.
type Edge struct {
	ID             string         `json:"id"`
	SourceNodeID   string         `json:"sourceNodeId"`
	TargetNodeID   string         `json:"targetNodeId"`
	SourceHandle   string         `json:"sourceHandle,omitempty"`
	TargetHandle   string         `json:"targetHandle,omitempty"`
	ContextPayload map[string]any `json:"contextPayload,omitempty"`
}

// AccessGate is a named role rule referenced by access_gate nodes.
type AccessGate struct {
	ID           string   `json:"id"`
	AllowedRoles []string `json:"allowedRoles"`
	Expression   string   `json:"expression,omitempty"`
}

// AccessContext is a named per-role access-mode mapping referenced by
// access_context nodes.
type AccessContext struct {
	ID                string                `json:"id"`
	AccessModeByRole  map[string]AccessMode `json:"accessModeByRole"`
	ConnectorBindings map[string]string     `json:"connectorBindings,omitempty"`
}

// UserProfile is the single role catalogue of the document.
type UserProfile struct {
	Roles []string `json:"roles"`
}

// Definitions is the side table of named rule objects.
type Definitions struct {
	AccessGates    map[string]AccessGate    `json:"accessGates"`
	AccessContexts map[string]AccessContext `json:"accessContexts"`
	UserProfile    UserProfile              `json:"userProfile"`
}

// Document is the root aggregate of a blueprint. It is immutable by
// convention: every mutation produces a new value via the command package,
// never an in-place edit.
type Document struct {
	Version     string      `json:"version"`
	Nodes       []Node      `json:"nodes"`
	Edges       []Edge      `json:"edges"`
	Definitions Definitions `json:"definitions"`
	EntryNodeID string      `json:"entryNodeId,omitempty"`
}

// NewDocument returns a fresh empty document with the current format version
// and empty definition tables.
func NewDocument() *Document {
	return &Document{
		Version: DocVersion,
		Nodes:   []Node{},
		Edges:   []Edge{},
		Definitions: Definitions{
			AccessGates:    map[string]AccessGate{},
			AccessContexts: map[string]AccessContext{},
			UserProfile:    UserProfile{Roles: []string{}},
		},
	}
}

// NodeByID returns a pointer to the node with the given id, or nil.
func (d *Document) NodeByID(id string) *Node {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			return &d.Nodes[i]
		}
	}
	return nil
}

// EntryNode resolves the traversal root: the explicit entry node when set and
// present, otherwise the first node in document order. Returns nil for an
// empty document.
func (d *Document) EntryNode() *Node {
	if d.EntryNodeID != "" {
		if n := d.NodeByID(d.EntryNodeID); n != nil {
			return n
		}
	}
	if len(d.Nodes) > 0 {
		return &d.Nodes[0]
	}
	return nil
}

// OutgoingEdges returns the edges whose source is the given node, in
// document order.
func (d *Document) OutgoingEdges(nodeID string) []Edge {
	var out []Edge
	for _, e := range d.Edges {
		if e.SourceNodeID == nodeID {
			out = append(out, e)
		}
	}
	return out
}
