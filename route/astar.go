package route

import (
	"fmt"

	"github.com/katalvlaran/georoute/search"
)

// AStarOption is a functional option for configuring the A* reduction.
type AStarOption func(*astarOptions)

type astarOptions struct {
	consistent bool
}

// WithConsistentCosts switches the reduction to the telescoping adjustment
// cost + h(next) − h(current). Along any path the adjustments collapse to
// h(goal) − h(start), a per-path constant, so uniform-cost search over the
// reduced problem reproduces A* over the base problem exactly. Requires a
// consistent heuristic (h(current) ≤ cost + h(next)), otherwise an adjusted
// cost can go negative and the engine rejects it.
func WithConsistentCosts() AStarOption {
	return func(o *astarOptions) { o.consistent = true }
}

// AStar reduces a heuristic-guided search to a plain optimal-cost search: it
// wraps base into a new problem with the start state and goal test forwarded
// unchanged and every successor's cost adjusted by the heuristic.
//
// By default the adjustment is cost + h(next) — the historically observed
// form. It omits the −h(current) subtraction of the textbook reduction, so
// the adjustments along a path do not telescope and the exploration order is
// only approximately A*; the engine still returns a valid path, and under the
// zero heuristic the reduction is exactly uniform-cost search. Pass
// WithConsistentCosts for the exact A*-equivalent form. Both modes leave the
// goal-reaching guarantee intact; reported costs are the adjusted ones, so
// callers wanting the true edge cost should re-sum the returned path with
// citymap.TotalCost.
func AStar(base search.Problem, h Heuristic, opts ...AStarOption) search.Problem {
	var cfg astarOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	return &astarProblem{base: base, heuristic: h, consistent: cfg.consistent}
}

// astarProblem is the reduction wrapper: a small named type holding the base
// problem and heuristic rather than an anonymous closure-built object.
type astarProblem struct {
	base       search.Problem
	heuristic  Heuristic
	consistent bool
}

// Start forwards the base problem's start state.
func (p *astarProblem) Start() search.State { return p.base.Start() }

// IsEnd forwards the base problem's goal test.
func (p *astarProblem) IsEnd(s search.State) bool { return p.base.IsEnd(s) }

// Successors forwards the base enumeration with heuristic-adjusted costs.
// Heuristic evaluation errors surface here, wrapped with the state they
// occurred on.
func (p *astarProblem) Successors(s search.State) ([]search.Successor, error) {
	successors, err := p.base.Successors(s)
	if err != nil {
		return nil, err
	}

	var current float64
	if p.consistent {
		if current, err = p.heuristic.Estimate(s); err != nil {
			return nil, fmt.Errorf("route: heuristic at %v: %w", s, err)
		}
	}

	out := make([]search.Successor, len(successors))
	for i, succ := range successors {
		next, err := p.heuristic.Estimate(succ.State)
		if err != nil {
			return nil, fmt.Errorf("route: heuristic at %v: %w", succ.State, err)
		}
		succ.Cost += next - current
		out[i] = succ
	}

	return out, nil
}
