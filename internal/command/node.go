package command

import (
	"encoding/json"

	"github.com/vk/blueprintgo/internal/nodeid"
	"github.com/vk/blueprintgo/internal/schema"
)

func applyCreateNode(doc *schema.Document, c CreateNode, gen nodeid.Generator) {
	n := schema.Node{
		ID:       gen(),
		Type:     c.Type,
		Label:    c.Label,
		Position: c.Position,
	}
	mergePayload(&n, c.Payload)

	firstEver := len(doc.Nodes) == 0
	doc.Nodes = append(doc.Nodes, n)

	if firstEver || c.Type == schema.NodeAppRouter {
		doc.EntryNodeID = n.ID
	}
}

// mergePayload folds command payload entries into the node body. Recognized
// keys populate the typed fields; everything else is preserved in Extra.
func mergePayload(n *schema.Node, payload map[string]any) {
	for key, val := range payload {
		if s, ok := val.(string); ok {
			switch key {
			case "label":
				n.Label = s
				continue
			case "ruleId":
				n.RuleID = s
				continue
			case "contextId":
				n.ContextID = s
				continue
			case "connectorId":
				n.ConnectorID = s
				continue
			case "resourceId":
				n.ResourceID = s
				continue
			case "route":
				n.Route = s
				continue
			case "linkedResourceStatus":
				n.LinkedResourceStatus = schema.LinkedResourceStatus(s)
				continue
			}
		}
		raw, err := json.Marshal(val)
		if err != nil {
			continue
		}
		if n.Extra == nil {
			n.Extra = make(map[string]json.RawMessage)
		}
		n.Extra[key] = raw
	}
}

func applyDeleteNode(doc *schema.Document, c DeleteNode) {
	idx := -1
	for i := range doc.Nodes {
		if doc.Nodes[i].ID == c.NodeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	doc.Nodes = append(doc.Nodes[:idx], doc.Nodes[idx+1:]...)

	kept := doc.Edges[:0]
	for _, e := range doc.Edges {
		if e.SourceNodeID == c.NodeID || e.TargetNodeID == c.NodeID {
			continue
		}
		kept = append(kept, e)
	}
	doc.Edges = kept

	if doc.EntryNodeID == c.NodeID {
		if len(doc.Nodes) > 0 {
			doc.EntryNodeID = doc.Nodes[0].ID
		} else {
			doc.EntryNodeID = ""
		}
	}
}

func applyMoveNode(doc *schema.Document, c MoveNode) {
	if n := doc.NodeByID(c.NodeID); n != nil {
		n.Position = c.Position
	}
}

func applyUpdateNode(doc *schema.Document, c UpdateNode) {
	n := doc.NodeByID(c.NodeID)
	if n == nil {
		return
	}
	if c.Label != nil {
		n.Label = *c.Label
	}
	if c.ResourceID != nil {
		n.ResourceID = *c.ResourceID
	}
	if c.Route != nil {
		n.Route = *c.Route
	}
	if c.LinkedResourceStatus != nil {
		n.LinkedResourceStatus = *c.LinkedResourceStatus
	}
}
