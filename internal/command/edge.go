package command

import (
	"github.com/vk/blueprintgo/internal/nodeid"
	"github.com/vk/blueprintgo/internal/schema"
)

func applyCreateEdge(doc *schema.Document, c CreateEdge, gen nodeid.Generator) {
	doc.Edges = append(doc.Edges, schema.Edge{
		ID:           gen(),
		SourceNodeID: c.SourceNodeID,
		TargetNodeID: c.TargetNodeID,
		SourceHandle: c.SourceHandle,
		TargetHandle: c.TargetHandle,
	})
}

func applyDeleteEdge(doc *schema.Document, c DeleteEdge) {
	for i := range doc.Edges {
		if doc.Edges[i].ID == c.EdgeID {
			doc.Edges = append(doc.Edges[:i], doc.Edges[i+1:]...)
			return
		}
	}
}
