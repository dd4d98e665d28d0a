// Package pkg provides the core libraries of the modelgrid layout engine.
//
// # Overview
//
// The layout engine computes 2-D positions for the nodes of a diagram
// graph. The pkg directory is organized by concern:
//
//   - [layout] - The engine: strategies, settings, and dispatch
//   - [graph] - Node-link graph types shared across the module
//   - [geometry] - Points and vectors used by the strategies
//   - [io] - JSON import of graphs and export of layout snapshots
//   - [errors] - Structured error codes for programmatic handling
//   - [observability] - Optional hooks around compute and snapshot I/O
//   - [buildinfo] - Version information injected at build time
//
// # Data flow
//
// A caller (the CLI or the diagram-persistence service) reads a graph,
// asks the engine for a layout, and stores the positioned result:
//
//	graph.json
//	     ↓  io.ImportGraph
//	graph.Graph
//	     ↓  layout.Engine.Compute (manual | layered | force_directed)
//	layout.Result
//	     ↓  io.NewSnapshot + io.ExportSnapshot
//	snapshot.json
//
// The engine never mutates its input: nodes are cloned before any
// strategy runs, so a failed computation leaves the caller's graph
// untouched.
package pkg
