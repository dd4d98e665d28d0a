package layout

// Manual is the identity strategy: it returns the input nodes and edges
// unchanged, verbatim. Nodes without a position keep none. It is used
// when a user has hand-placed nodes and no recomputation is wanted.
type Manual struct{}

// Name returns the algorithm name.
func (Manual) Name() string { return AlgorithmManual }

// Compute returns the request's nodes and edges as-is. Constraints and
// settings are ignored; the computation always succeeds.
func (Manual) Compute(req Request) (Result, error) {
	return Result{
		Nodes:     req.Nodes,
		Edges:     req.Edges,
		Algorithm: AlgorithmManual,
		Applied:   true,
	}, nil
}
