package graph

import (
	"github.com/modelgrid/layout/pkg/geometry"
)

// Metadata stores arbitrary key-value pairs attached to nodes or edges.
// It carries caller-defined extra fields through a layout computation
// untouched, so round-tripping a diagram never loses information the
// engine does not understand.
type Metadata map[string]any

// Clone returns a shallow copy of the metadata, or nil if m is nil.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Node is a diagram element requiring a 2-D position.
//
// Position is a pointer so that "no position yet" is representable: a
// node that enters a computation without a position leaves the manual
// strategy without one, while the other strategies populate it.
type Node struct {
	ID       string          `json:"id"`
	Position *geometry.Point `json:"position,omitempty"`
	Meta     Metadata        `json:"meta,omitempty"`
}

// Clone returns a deep copy of the node. The position, when present,
// is copied so mutating the clone never touches the original.
func (n Node) Clone() Node {
	out := Node{ID: n.ID, Meta: n.Meta.Clone()}
	if n.Position != nil {
		p := *n.Position
		out.Position = &p
	}
	return out
}

// Edge is a directed connection between two nodes. Direction carries
// diagram semantics; spacing and attraction treat it as undirected.
type Edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Meta   Metadata `json:"meta,omitempty"`
}

// Graph is the canonical serialization format for a diagram's node-link
// structure, as supplied by the diagram-persistence service.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Constraints restrict what a layout computation may change.
type Constraints struct {
	// PinnedNodeIDs lists nodes whose position must not be altered by
	// any layout computation.
	PinnedNodeIDs []string `json:"pinned_node_ids,omitempty"`
}

// Pinned returns a set view of the pinned node IDs.
func (c Constraints) Pinned() map[string]bool {
	if len(c.PinnedNodeIDs) == 0 {
		return nil
	}
	out := make(map[string]bool, len(c.PinnedNodeIDs))
	for _, id := range c.PinnedNodeIDs {
		out[id] = true
	}
	return out
}
