package layout_test

import (
	"context"
	"fmt"

	"github.com/modelgrid/layout/pkg/graph"
	"github.com/modelgrid/layout/pkg/layout"
)

// Demonstrates the basic compute flow: pick an algorithm, hand the
// engine a node-link graph, and read back positioned nodes.
func ExampleEngine_Compute() {
	engine := layout.New()

	result, err := engine.Compute(context.Background(), layout.Request{
		Algorithm: layout.AlgorithmLayered,
		Nodes: []graph.Node{
			{ID: "customer"},
			{ID: "order"},
			{ID: "invoice"},
		},
		Edges: []graph.Edge{
			{Source: "customer", Target: "order"},
			{Source: "order", Target: "invoice"},
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, n := range result.Nodes {
		fmt.Printf("%s: (%.0f, %.0f)\n", n.ID, n.Position.X, n.Position.Y)
	}
	fmt.Println("layers:", result.Meta.Layers)
	// Output:
	// customer: (0, 0)
	// order: (0, 100)
	// invoice: (0, 200)
	// layers: 3
}

// Pinned nodes survive any computation untouched, so hand-placed
// elements keep their spot while the rest of the diagram settles
// around them.
func ExampleEngine_Compute_pinned() {
	engine := layout.New()

	result, err := engine.Compute(context.Background(), layout.Request{
		Algorithm: layout.AlgorithmLayered,
		Nodes: []graph.Node{
			{ID: "root"},
			{ID: "leaf"},
		},
		Edges:       []graph.Edge{{Source: "root", Target: "leaf"}},
		Constraints: graph.Constraints{PinnedNodeIDs: []string{"leaf"}},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("leaf positioned:", result.Nodes[1].Position != nil)
	// Output:
	// leaf positioned: false
}
