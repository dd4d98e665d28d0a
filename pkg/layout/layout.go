// Package layout computes 2-D coordinates for diagram nodes.
//
// This package is the layout core of the modelgrid platform: external
// collaborators supply a node-link graph plus optional constraints and
// settings, select an algorithm by name, and receive the same nodes
// back with positions populated.
//
// # Algorithms
//
// Three strategies are registered by default:
//   - manual: identity pass-through of existing positions
//   - layered: discrete hierarchical layering with axis-aligned positioning
//   - force_directed: iterative physical simulation (repulsion, spring
//     attraction, damping)
//
// # Usage
//
//	engine := layout.New()
//	result, err := engine.Compute(ctx, layout.Request{
//	    Algorithm: layout.AlgorithmLayered,
//	    Nodes:     nodes,
//	    Edges:     edges,
//	})
//
// The engine holds no state between calls. Every computation either
// returns a complete result covering all input nodes or fails with an
// UNKNOWN_ALGORITHM error before any node is touched.
package layout

import (
	"github.com/modelgrid/layout/pkg/graph"
)

// Supported algorithm names.
const (
	AlgorithmManual        = "manual"
	AlgorithmLayered       = "layered"
	AlgorithmForceDirected = "force_directed"
)

// Strategy computes positions for a single layout request.
//
// Implementations are stateless pure functions over their inputs once
// any injected randomness is fixed: they may mutate the nodes in the
// request (the engine hands them clones) but retain nothing between
// calls.
type Strategy interface {
	// Name returns the algorithm name the strategy registers under.
	Name() string

	// Compute positions the request's nodes and returns the result.
	Compute(req Request) (Result, error)
}

// Request carries the inputs of one layout computation.
type Request struct {
	// Algorithm selects the strategy by name.
	Algorithm string `json:"algorithm"`

	// Nodes is the ordered node sequence. Input order is significant:
	// the layered strategy spaces nodes within a layer by it, and
	// deterministic tie-breaks resolve to the lowest input index.
	Nodes []graph.Node `json:"nodes"`

	// Edges is the ordered edge sequence. Edges referencing unknown
	// node IDs are tolerated by omission, never rejected.
	Edges []graph.Edge `json:"edges"`

	// Constraints restrict what the computation may change.
	// The zero value imposes no constraints.
	Constraints graph.Constraints `json:"constraints,omitempty"`

	// Settings is the per-algorithm option bag. Missing options fall
	// back to the documented defaults.
	Settings Settings `json:"settings,omitempty"`
}

// Result is the outcome of one layout computation.
type Result struct {
	// Nodes are the input nodes, same identities and order, with
	// positions populated according to the algorithm.
	Nodes []graph.Node `json:"nodes"`

	// Edges are the input edges, unchanged.
	Edges []graph.Edge `json:"edges"`

	// Algorithm is the name of the strategy that ran.
	Algorithm string `json:"algorithm"`

	// Applied reports that the computation ran to completion.
	Applied bool `json:"applied"`

	// Meta carries the algorithm-specific outcome summary.
	Meta ResultMeta `json:"metadata"`
}

// ResultMeta is the algorithm-specific outcome summary.
type ResultMeta struct {
	// Iterations is the number of simulation steps run (force_directed).
	Iterations int `json:"iterations,omitempty"`

	// Layers is the number of distinct layers assigned (layered).
	Layers int `json:"layers,omitempty"`
}
