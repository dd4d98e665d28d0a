package layout

import (
	"github.com/modelgrid/layout/pkg/geometry"
	"github.com/modelgrid/layout/pkg/graph"
)

// Layered is the discrete hierarchical strategy: it assigns each node a
// layer via level-synchronized topological leveling, then spaces nodes
// evenly within their layer along the axis orthogonal to layer growth.
//
// Layer assignment uses in-degree counters (Kahn's algorithm) processed
// level by level, so the whole assignment runs in O(N+E). A node is
// ready once every predecessor is assigned; the entire ready set forms
// the next layer. When a cycle blocks every remaining node, the pending
// node with the lowest input index is forced into the current layer.
// This may violate the strict "predecessor layer < successor layer"
// rule for one edge of the cycle, but guarantees termination within at
// most N layers.
type Layered struct{}

// Name returns the algorithm name.
func (Layered) Name() string { return AlgorithmLayered }

// Compute assigns layers and positions. Pinned nodes keep their
// original position (or lack of one) but still occupy a slot in their
// layer, so their siblings are spaced as if they had moved.
func (Layered) Compute(req Request) (Result, error) {
	cfg := req.Settings.Layered()
	nodes := req.Nodes
	idx := graph.Index(nodes)
	pinned := req.Constraints.Pinned()

	layers, layerCount := assignLayers(nodes, req.Edges, idx)
	placeLayers(nodes, layers, layerCount, idx, cfg, pinned)

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
		Algorithm: AlgorithmLayered,
		Applied:   true,
		Meta:      ResultMeta{Layers: layerCount},
	}, nil
}

// assignLayers computes a layer per node index. Only first occurrences
// of an ID participate; layers[i] is meaningful where i == idx[ID].
func assignLayers(nodes []graph.Node, edges []graph.Edge, idx map[string]int) (layers []int, layerCount int) {
	layers = make([]int, len(nodes))
	succ := graph.Adjacency(nodes, edges)
	inDegree := make([]int, len(nodes))
	for _, targets := range succ {
		for _, t := range targets {
			inDegree[t]++
		}
	}

	assigned := make([]bool, len(nodes))
	pending := 0
	for i, n := range nodes {
		if idx[n.ID] != i {
			assigned[i] = true // duplicate occurrence, mirrored later
			continue
		}
		pending++
	}

	layer := 0
	for pending > 0 {
		var ready []int
		for i := range nodes {
			if !assigned[i] && inDegree[i] == 0 {
				ready = append(ready, i)
			}
		}
		if len(ready) == 0 {
			// Every remaining node is blocked by a cycle. Force the
			// pending node with the lowest input index into this layer.
			for i := range nodes {
				if !assigned[i] {
					ready = []int{i}
					break
				}
			}
		}
		for _, i := range ready {
			layers[i] = layer
			assigned[i] = true
			pending--
			for _, t := range succ[i] {
				inDegree[t]--
			}
		}
		layer++
	}

	return layers, layer
}

// placeLayers converts layer assignments into coordinates. Within a
// layer, nodes keep input order and are spaced evenly, centered at
// zero. Direction selects which axis carries layer depth; BT and RL
// flip its sign.
func placeLayers(nodes []graph.Node, layers []int, layerCount int, idx map[string]int, cfg LayeredSettings, pinned map[string]bool) {
	byLayer := make([][]int, layerCount)
	for i, n := range nodes {
		if idx[n.ID] != i {
			continue
		}
		l := layers[i]
		byLayer[l] = append(byLayer[l], i)
	}

	for l, members := range byLayer {
		depth := float64(l) * cfg.LayerSpacing
		for slot, i := range members {
			if pinned[nodes[i].ID] {
				continue
			}
			offset := (float64(slot) - float64(len(members)-1)/2) * cfg.NodeSpacing

			var p geometry.Point
			switch cfg.Direction {
			case DirectionBT:
				p = geometry.Point{X: offset, Y: -depth}
			case DirectionLR:
				p = geometry.Point{X: depth, Y: offset}
			case DirectionRL:
				p = geometry.Point{X: -depth, Y: offset}
			default: // TB
				p = geometry.Point{X: offset, Y: depth}
			}
			nodes[i].Position = &p
		}
	}
}
