package layout

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/modelgrid/layout/pkg/errors"
	"github.com/modelgrid/layout/pkg/graph"
	"github.com/modelgrid/layout/pkg/observability"
)

// Engine resolves algorithm names to strategies and dispatches layout
// requests to them. It is the single entry point external collaborators
// call.
//
// The engine is a pure function of its inputs except for the randomness
// consumed internally by the force-directed strategy. It has no side
// effects and retains no state between calls, so a single Engine can be
// shared by concurrent callers.
type Engine struct {
	strategies map[string]Strategy
}

// New creates an engine with the three built-in strategies registered:
// manual, layered, and force_directed. Options configure individual
// strategies, e.g. [WithStrategy] to override or extend the registry.
func New(opts ...Option) *Engine {
	e := &Engine{strategies: make(map[string]Strategy)}
	e.register(Manual{})
	e.register(Layered{})
	e.register(NewForceDirected())
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrategy registers s, replacing any strategy with the same name.
// This is how callers inject a force-directed strategy with a fixed
// random source, or add custom algorithms.
func WithStrategy(s Strategy) Option {
	return func(e *Engine) { e.register(s) }
}

func (e *Engine) register(s Strategy) {
	e.strategies[s.Name()] = s
}

// Algorithms returns the registered algorithm names in sorted order.
func (e *Engine) Algorithms() []string {
	names := make([]string, 0, len(e.strategies))
	for name := range e.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compute resolves the requested algorithm and delegates to it.
//
// The algorithm name is checked before any node is touched: an
// unrecognized name fails with ErrCodeUnknownAlgorithm and the caller's
// input is left unmodified. Strategies receive cloned nodes, so the
// caller's slice is never mutated regardless of outcome.
//
// The context is used for observability hooks only; a computation runs
// to completion once dispatched and has no cancellation point mid-call.
func (e *Engine) Compute(ctx context.Context, req Request) (Result, error) {
	strategy, ok := e.strategies[req.Algorithm]
	if !ok {
		return Result{}, errors.New(errors.ErrCodeUnknownAlgorithm,
			"unknown layout algorithm: %q (must be one of: %s)",
			req.Algorithm, strings.Join(e.Algorithms(), ", "))
	}

	hooks := observability.Layout()
	hooks.OnComputeStart(ctx, req.Algorithm, len(req.Nodes), len(req.Edges))
	start := time.Now()

	req.Nodes = graph.CloneNodes(req.Nodes)
	result, err := strategy.Compute(req)

	hooks.OnComputeComplete(ctx, req.Algorithm, time.Since(start), err)
	return result, err
}
