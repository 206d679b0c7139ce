// Package graph is the inference layer over a blueprint document. It walks
// the node/edge graph to report dangling edges, entry problems, cycles,
// unreachable nodes, dead ends and missing definition references, and it
// enumerates structural routes from the entry node.
//
// Everything here is a pure computation over an in-memory document; nothing
// mutates its input and nothing does I/O.
package graph
