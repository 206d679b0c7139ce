package graph

import (
	"fmt"

	"github.com/vk/blueprintgo/internal/schema"
)

// Kind identifies one class of graph diagnostic.
type Kind string

const (
	KindOrphanEdge     Kind = "orphan_edge"
	KindInvalidEntry   Kind = "invalid_entry"
	KindCycle          Kind = "cycle"
	KindUnreachable    Kind = "unreachable"
	KindDeadEnd        Kind = "dead_end"
	KindMissingGate    Kind = "missing_gate_definition"
	KindMissingContext Kind = "missing_context_definition"
)

// Diagnostic is one finding of the graph validator. Exactly the id fields
// relevant to the Kind are set.
type Diagnostic struct {
	Kind         Kind
	NodeID       string
	EdgeID       string
	DefinitionID string
	Message      string
}

// Report is the full result of a validation pass. OK is true iff Errors is
// empty; warnings never affect OK.
type Report struct {
	OK       bool
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Validate runs all graph-level checks over the document in a fixed order:
// orphan-edge scan, entry resolution, reachability and cycle detection,
// dead-end scan, definition-reference scan. An empty document is valid with
// no diagnostics.
func Validate(doc *schema.Document) Report {
	var r Report

	nodeSet := make(map[string]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		nodeSet[n.ID] = true
	}

	// Orphan edges: one diagnostic per dangling endpoint.
	for _, e := range doc.Edges {
		if !nodeSet[e.SourceNodeID] {
			r.Errors = append(r.Errors, Diagnostic{
				Kind:    KindOrphanEdge,
				EdgeID:  e.ID,
				NodeID:  e.SourceNodeID,
				Message: fmt.Sprintf("edge %s references missing source node %s", e.ID, e.SourceNodeID),
			})
		}
		if !nodeSet[e.TargetNodeID] {
			r.Errors = append(r.Errors, Diagnostic{
				Kind:    KindOrphanEdge,
				EdgeID:  e.ID,
				NodeID:  e.TargetNodeID,
				Message: fmt.Sprintf("edge %s references missing target node %s", e.ID, e.TargetNodeID),
			})
		}
	}

	// Entry resolution. A set-but-unresolvable entry is an error and leaves
	// no entry to traverse from, so reachability and cycle detection are
	// skipped rather than run from a guessed root. An unset entry falls back
	// to the first node with a warning.
	entryID := ""
	if doc.EntryNodeID != "" {
		if nodeSet[doc.EntryNodeID] {
			entryID = doc.EntryNodeID
		} else {
			r.Errors = append(r.Errors, Diagnostic{
				Kind:    KindInvalidEntry,
				NodeID:  doc.EntryNodeID,
				Message: fmt.Sprintf("entry node %s does not exist", doc.EntryNodeID),
			})
		}
	} else if len(doc.Nodes) > 0 {
		entryID = doc.Nodes[0].ID
		r.Warnings = append(r.Warnings, Diagnostic{
			Kind:    KindInvalidEntry,
			NodeID:  entryID,
			Message: fmt.Sprintf("no entry node set; falling back to first node %s", entryID),
		})
	}

	// Reachability and cycle detection from the resolved entry.
	if entryID != "" {
		visited, cycleNode := traverse(doc, nodeSet, entryID)
		if cycleNode != "" {
			r.Errors = append(r.Errors, Diagnostic{
				Kind:    KindCycle,
				NodeID:  cycleNode,
				Message: fmt.Sprintf("cycle detected involving node %s", cycleNode),
			})
		}
		for _, n := range doc.Nodes {
			if !visited[n.ID] {
				r.Warnings = append(r.Warnings, Diagnostic{
					Kind:    KindUnreachable,
					NodeID:  n.ID,
					Message: fmt.Sprintf("node %s is not reachable from the entry node", n.ID),
				})
			}
		}
	}

	// Dead ends: incoming but no outgoing, and not terminal by design.
	outgoing := make(map[string]int)
	incoming := make(map[string]int)
	for _, e := range doc.Edges {
		if nodeSet[e.SourceNodeID] {
			outgoing[e.SourceNodeID]++
		}
		if nodeSet[e.TargetNodeID] {
			incoming[e.TargetNodeID]++
		}
	}
	for _, n := range doc.Nodes {
		if outgoing[n.ID] == 0 && incoming[n.ID] > 0 && !n.Type.Terminal() {
			r.Warnings = append(r.Warnings, Diagnostic{
				Kind:    KindDeadEnd,
				NodeID:  n.ID,
				Message: fmt.Sprintf("node %s (%s) has incoming edges but no way out", n.ID, n.Type),
			})
		}
	}

	// Definition references.
	for _, n := range doc.Nodes {
		switch n.Type {
		case schema.NodeAccessGate:
			if n.RuleID != "" {
				if _, ok := doc.Definitions.AccessGates[n.RuleID]; !ok {
					r.Errors = append(r.Errors, Diagnostic{
						Kind:         KindMissingGate,
						NodeID:       n.ID,
						DefinitionID: n.RuleID,
						Message:      fmt.Sprintf("node %s references undefined access gate %s", n.ID, n.RuleID),
					})
				}
			}
		case schema.NodeAccessContext:
			if n.ContextID != "" {
				if _, ok := doc.Definitions.AccessContexts[n.ContextID]; !ok {
					r.Errors = append(r.Errors, Diagnostic{
						Kind:         KindMissingContext,
						NodeID:       n.ID,
						DefinitionID: n.ContextID,
						Message:      fmt.Sprintf("node %s references undefined access context %s", n.ID, n.ContextID),
					})
				}
			}
		}
	}

	r.OK = len(r.Errors) == 0
	return r
}

// traverse runs a depth-first walk from entryID following edges by source,
// skipping edges whose target does not exist. It returns the visited set and
// the id of the first node found on the active recursion stack, or "" when
// the reachable subgraph is acyclic. Only the first cycle node is reported.
func traverse(doc *schema.Document, nodeSet map[string]bool, entryID string) (map[string]bool, string) {
	adjacent := make(map[string][]string, len(doc.Nodes))
	for _, e := range doc.Edges {
		if nodeSet[e.SourceNodeID] && nodeSet[e.TargetNodeID] {
			adjacent[e.SourceNodeID] = append(adjacent[e.SourceNodeID], e.TargetNodeID)
		}
	}

	visited := make(map[string]bool, len(doc.Nodes))
	onStack := make(map[string]bool, len(doc.Nodes))
	cycleNode := ""

	var visit func(id string)
	visit = func(id string) {
		if onStack[id] {
			if cycleNode == "" {
				cycleNode = id
			}
			return
		}
		if visited[id] {
			return
		}
		visited[id] = true
		onStack[id] = true
		for _, next := range adjacent[id] {
			visit(next)
		}
		delete(onStack, id)
	}

	visit(entryID)
	return visited, cycleNode
}
