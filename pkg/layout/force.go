package layout

import (
	"math/rand/v2"

	"github.com/modelgrid/layout/pkg/geometry"
	"github.com/modelgrid/layout/pkg/graph"
)

// initialSpread is the half-width of the square from which nodes
// without a position receive a uniformly random starting point.
const initialSpread = 200.0

// ForceDirected is the iterative physical simulation strategy. Each
// call runs a fixed number of discrete steps: pairwise repulsion
// (inverse-square, distance floored at 1), linear spring attraction
// along edges, then damped velocity integration. There is no
// convergence check; the iteration count is caller-controlled.
//
// Simulation state (velocity, accumulated force) lives in a per-call
// map keyed by node ID and is discarded when Compute returns. It is
// never part of the node's persistent shape.
type ForceDirected struct {
	rng *rand.Rand
}

// ForceOption configures a ForceDirected strategy.
type ForceOption func(*ForceDirected)

// WithRand injects the random source used for initial placement of
// nodes without a position. When set, the source is shared across calls
// and the seed setting is ignored; this is how tests obtain fully
// deterministic placement.
func WithRand(rng *rand.Rand) ForceOption {
	return func(f *ForceDirected) { f.rng = rng }
}

// NewForceDirected creates the force-directed strategy. Without
// options, each call derives its own PCG source from the seed setting,
// so identical requests yield identical layouts.
func NewForceDirected(opts ...ForceOption) *ForceDirected {
	f := &ForceDirected{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the algorithm name.
func (*ForceDirected) Name() string { return AlgorithmForceDirected }

// simState is the ephemeral per-node simulation state for one call.
type simState struct {
	velocity geometry.Vector
	force    geometry.Vector
}

// Compute runs the simulation and returns the final positions.
// Pinned nodes keep their position across all iterations; they still
// repel their neighbors. A pinned node without a position stays absent
// and takes no part in the simulation.
func (f *ForceDirected) Compute(req Request) (Result, error) {
	cfg := req.Settings.Force()
	nodes := req.Nodes
	idx := graph.Index(nodes)
	pinned := req.Constraints.Pinned()

	rng := f.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0xdeadbeef))
	}

	// Active nodes: first occurrence of each ID, with a position either
	// supplied or randomly initialized. Pinned nodes cannot receive an
	// initial position, so an unplaced pinned node is left out.
	var active []int
	state := make(map[string]*simState, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		if idx[n.ID] != i {
			continue
		}
		if n.Position == nil {
			if pinned[n.ID] {
				continue
			}
			n.Position = &geometry.Point{
				X: rng.Float64()*2*initialSpread - initialSpread,
				Y: rng.Float64()*2*initialSpread - initialSpread,
			}
		}
		active = append(active, i)
		state[n.ID] = &simState{}
	}

	for step := 0; step < cfg.Iterations; step++ {
		for _, i := range active {
			state[nodes[i].ID].force = geometry.Vector{}
		}
		applyRepulsion(nodes, active, state, cfg.Repulsion)
		applyAttraction(nodes, req.Edges, idx, state, cfg.Attraction)
		integrate(nodes, active, state, pinned, cfg.Damping)
	}

	// Duplicate IDs: later occurrences mirror the first one's outcome.
	for i := range nodes {
		if first := idx[nodes[i].ID]; first != i && !pinned[nodes[i].ID] {
			if p := nodes[first].Position; p != nil {
				q := *p
				nodes[i].Position = &q
			}
		}
	}

	return Result{
		Nodes:     nodes,
		Edges:     req.Edges,
		Algorithm: AlgorithmForceDirected,
		Applied:   true,
		Meta:      ResultMeta{Iterations: cfg.Iterations},
	}, nil
}

// applyRepulsion accumulates an inverse-square force for every
// unordered node pair, equal and opposite on both nodes. The distance
// is floored at 1 to avoid division by zero; exactly coincident nodes
// have no defined direction and do not repel.
func applyRepulsion(nodes []graph.Node, active []int, state map[string]*simState, strength float64) {
	for ai := 0; ai < len(active); ai++ {
		for bi := ai + 1; bi < len(active); bi++ {
			a, b := &nodes[active[ai]], &nodes[active[bi]]
			delta := b.Position.Sub(*a.Position)
			dist := delta.Length()
			if dist < 1 {
				dist = 1
			}
			push := delta.Scale(strength / (dist * dist * dist))
			state[a.ID].force = state[a.ID].force.Add(push.Scale(-1))
			state[b.ID].force = state[b.ID].force.Add(push)
		}
	}
}

// applyAttraction accumulates a linear spring force for every edge
// whose endpoints both exist in the simulation, pulling source and
// target together. Dangling edges contribute nothing.
func applyAttraction(nodes []graph.Node, edges []graph.Edge, idx map[string]int, state map[string]*simState, strength float64) {
	for _, e := range edges {
		src, okSrc := idx[e.Source]
		dst, okDst := idx[e.Target]
		if !okSrc || !okDst {
			continue
		}
		stSrc, okSrc := state[e.Source]
		stDst, okDst := state[e.Target]
		if !okSrc || !okDst {
			continue
		}
		delta := nodes[dst].Position.Sub(*nodes[src].Position)
		pull := delta.Scale(strength)
		stSrc.force = stSrc.force.Add(pull)
		stDst.force = stDst.force.Add(pull.Scale(-1))
	}
}

// integrate folds accumulated forces into velocities and moves every
// non-pinned node. Damping below 1 dissipates energy so the simulation
// settles.
func integrate(nodes []graph.Node, active []int, state map[string]*simState, pinned map[string]bool, damping float64) {
	for _, i := range active {
		n := &nodes[i]
		if pinned[n.ID] {
			continue
		}
		st := state[n.ID]
		st.velocity = st.velocity.Add(st.force).Scale(damping)
		*n.Position = n.Position.Translate(st.velocity)
	}
}
