package graph

import "github.com/vk/blueprintgo/internal/schema"

// RouteStep is one hop of a structural route. EdgeID is the edge taken to
// arrive at the node and is empty for the first step of a route.
type RouteStep struct {
	NodeID string
	Label  string
	Type   schema.NodeType
	EdgeID string
}

// Routes enumerates every simple path from fromNodeID (or the document's
// resolved entry node when empty) to the edges of the graph, branching at
// every node with multiple outgoing edges.
//
// Each path carries its own visited set: sibling branches may revisit a node
// the other branch already used, but a single path never revisits a node, so
// cyclic graphs terminate without a prior validation pass. Access-gate
// semantics are deliberately ignored; this is structural reachability only.
func Routes(doc *schema.Document, fromNodeID string) [][]RouteStep {
	start := fromNodeID
	if start == "" {
		entry := doc.EntryNode()
		if entry == nil {
			return nil
		}
		start = entry.ID
	}
	if doc.NodeByID(start) == nil {
		return nil
	}

	adjacent := make(map[string][]schema.Edge, len(doc.Nodes))
	for _, e := range doc.Edges {
		if doc.NodeByID(e.TargetNodeID) != nil {
			adjacent[e.SourceNodeID] = append(adjacent[e.SourceNodeID], e)
		}
	}

	var routes [][]RouteStep
	visited := make(map[string]bool)
	var path []RouteStep

	var walk func(nodeID, viaEdgeID string)
	walk = func(nodeID, viaEdgeID string) {
		n := doc.NodeByID(nodeID)
		visited[nodeID] = true
		path = append(path, RouteStep{NodeID: n.ID, Label: n.Label, Type: n.Type, EdgeID: viaEdgeID})

		extended := false
		for _, e := range adjacent[nodeID] {
			if visited[e.TargetNodeID] {
				continue
			}
			extended = true
			walk(e.TargetNodeID, e.ID)
		}
		if !extended {
			routes = append(routes, append([]RouteStep(nil), path...))
		}

		path = path[:len(path)-1]
		delete(visited, nodeID)
	}

	walk(start, "")
	return routes
}
