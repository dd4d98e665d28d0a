package layout

import (
	"context"
	"reflect"
	"testing"

	"github.com/modelgrid/layout/pkg/geometry"
	"github.com/modelgrid/layout/pkg/graph"
)

func TestManualIdentity(t *testing.T) {
	engine := New()
	nodes := []graph.Node{
		{ID: "a", Position: &geometry.Point{X: 3.5, Y: -7}},
		{ID: "b"},
		{ID: "c", Position: &geometry.Point{}, Meta: graph.Metadata{"kind": "process"}},
	}
	edges := []graph.Edge{{Source: "a", Target: "b", Meta: graph.Metadata{"weight": 2}}}

	result, err := engine.Compute(context.Background(), Request{
		Algorithm:   AlgorithmManual,
		Nodes:       nodes,
		Edges:       edges,
		Constraints: graph.Constraints{PinnedNodeIDs: []string{"a"}},
		Settings:    Settings{"iterations": 3, "direction": "LR"},
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if result.Nodes[0].Position.X != 3.5 || result.Nodes[0].Position.Y != -7 {
		t.Errorf("position changed: %+v", result.Nodes[0].Position)
	}
	if result.Nodes[1].Position != nil {
		t.Error("absent position should remain absent")
	}
	if result.Nodes[2].Meta["kind"] != "process" {
		t.Error("metadata should pass through untouched")
	}
	if len(result.Edges) != 1 || !reflect.DeepEqual(result.Edges[0], edges[0]) {
		t.Errorf("edges changed: %v", result.Edges)
	}
	if result.Algorithm != AlgorithmManual || !result.Applied {
		t.Errorf("summary = %q/%v, want manual/true", result.Algorithm, result.Applied)
	}
	if result.Meta.Iterations != 0 || result.Meta.Layers != 0 {
		t.Errorf("manual should report empty metadata, got %+v", result.Meta)
	}
}
