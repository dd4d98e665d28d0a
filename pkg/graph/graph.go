// Package graph defines the node-link types exchanged between the
// layout engine and its callers.
//
// The types here are transient: callers construct them for a single
// layout invocation and consume the positioned result. The engine never
// retains them between calls. Extra caller-defined fields travel in
// per-node and per-edge metadata maps and pass through every strategy
// untouched.
package graph

// CloneNodes returns deep copies of the given nodes, preserving input
// order. Strategies operate on clones so a caller's slice is never
// mutated, even when a computation fails partway.
func CloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}

// Index maps node IDs to their position in the input order. When an ID
// appears more than once, the first occurrence wins; later duplicates
// share the first node's computed position rather than raising an error.
func Index(nodes []Node) map[string]int {
	idx := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if _, seen := idx[n.ID]; !seen {
			idx[n.ID] = i
		}
	}
	return idx
}

// Adjacency builds a forward-adjacency index (source -> target indices)
// over the given nodes. Edges whose endpoints do not resolve to known
// node IDs are skipped rather than treated as errors.
func Adjacency(nodes []Node, edges []Edge) map[int][]int {
	idx := Index(nodes)
	adj := make(map[int][]int, len(nodes))
	for _, e := range edges {
		src, okSrc := idx[e.Source]
		dst, okDst := idx[e.Target]
		if !okSrc || !okDst {
			continue
		}
		adj[src] = append(adj[src], dst)
	}
	return adj
}
