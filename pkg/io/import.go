// Package io reads node-link graphs and writes layout snapshots as JSON.
//
// The layout engine itself owns no file format or wire protocol; this
// package is the boundary the CLI and the diagram-persistence service
// use to exchange graphs and positioned results. The graph format is a
// JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": [{"id": "a"}, {"id": "b", "position": {"x": 10, "y": 0}}],
//	  "edges": [{"source": "a", "target": "b"}]
//	}
//
// Snapshots add an identifier and the algorithm outcome summary on top
// of the positioned graph, so a persistence service can store them as
// named layout snapshots.
package io

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/modelgrid/layout/pkg/errors"
	"github.com/modelgrid/layout/pkg/graph"
	"github.com/modelgrid/layout/pkg/observability"
)

// ReadGraph decodes a JSON node-link graph from r.
//
// Node IDs are validated for basic hygiene (non-empty, no control
// characters); structural oddities such as duplicate IDs or edges
// referencing unknown nodes are left for the engine, which tolerates
// them by omission. ReadGraph does not close r.
func ReadGraph(r io.Reader) (graph.Graph, error) {
	var g graph.Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return graph.Graph{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode graph")
	}

	for _, n := range g.Nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return graph.Graph{}, err
		}
	}

	return g, nil
}

// ImportGraph reads the JSON graph file at path and reports the read
// to the registered snapshot hooks.
func ImportGraph(ctx context.Context, path string) (graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		observability.Snapshot().OnSnapshotRead(ctx, path, 0, err)
		return graph.Graph{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "open graph %s", path)
	}

	var g graph.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		err = errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode graph %s", path)
		observability.Snapshot().OnSnapshotRead(ctx, path, len(data), err)
		return graph.Graph{}, err
	}

	for _, n := range g.Nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			observability.Snapshot().OnSnapshotRead(ctx, path, len(data), err)
			return graph.Graph{}, err
		}
	}

	observability.Snapshot().OnSnapshotRead(ctx, path, len(data), nil)
	return g, nil
}
