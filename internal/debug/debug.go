// Package debug is a pure one-step traversal simulator for a debugger
// overlay. Each step follows the first outgoing edge in document order and
// records whether the node it lands on let the session through, giving
// per-step observability into gate decisions without re-walking the graph.
package debug

import (
	"github.com/vk/blueprintgo/internal/access"
	"github.com/vk/blueprintgo/internal/schema"
	"github.com/vk/blueprintgo/internal/session"
)

// Transition records one executed step: the node arrived at, the gate that
// was consulted (empty when the target is not a gate node) and whether the
// step passed.
type Transition struct {
	NodeID string
	GateID string
	Passed bool
}

// Snapshot is the debugger's full state between steps.
type Snapshot struct {
	Session       session.Context
	CurrentNodeID string
	Trail         []Transition
}

// NewSnapshot returns the initial debugger state for a session. The first
// Step call starts from the document's entry node.
func NewSnapshot(sess session.Context) Snapshot {
	return Snapshot{Session: sess}
}

// Step advances the snapshot by one edge. From the current node (or the
// document entry when the snapshot is fresh) it deterministically takes the
// first outgoing edge in document order. When there is nowhere to go the
// snapshot is returned unchanged, which is the halt state.
func Step(doc *schema.Document, snap Snapshot, ev *access.Evaluator) Snapshot {
	currentID := snap.CurrentNodeID
	if currentID == "" {
		entry := doc.EntryNode()
		if entry == nil {
			return snap
		}
		currentID = entry.ID
	}

	edges := doc.OutgoingEdges(currentID)
	if len(edges) == 0 {
		return snap
	}

	target := doc.NodeByID(edges[0].TargetNodeID)
	if target == nil {
		return snap
	}

	t := Transition{NodeID: target.ID, Passed: true}
	if target.Type == schema.NodeAccessGate && target.RuleID != "" {
		t.GateID = target.RuleID
		t.Passed = ev.Evaluate(target.RuleID, snap.Session, doc)
	}

	out := snap
	out.CurrentNodeID = target.ID
	out.Trail = append(append([]Transition(nil), snap.Trail...), t)
	return out
}
