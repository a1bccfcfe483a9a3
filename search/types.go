// Package search defines the polymorphic search-problem abstraction and
// configuration options for the uniform-cost engine.
//
// A Problem exposes exactly three capabilities: produce the start State, test
// whether a State is a goal, and enumerate (action, next State, cost) triples.
// The engine in this package explores any such problem with non-negative
// costs and reports the optimal-cost action path, or a defined failure when
// no goal is reachable.
//
// Errors (sentinel):
//
//	ErrNilProblem   — Solve was called with a nil Problem.
//	ErrNegativeCost — a successor reported a negative transition cost.
package search

import (
	"errors"
	"math"
)

// Sentinel errors returned by the uniform-cost engine.
var (
	// ErrNilProblem indicates Solve was invoked with a nil Problem.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNegativeCost indicates a successor carried a negative cost, which
	// breaks the optimality guarantee of uniform-cost search.
	ErrNegativeCost = errors.New("search: negative successor cost")

	// ErrBadMaxCost indicates WithMaxCost was given a negative bound.
	ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")
)

// State is the unit of search: a current location label plus optional
// immutable auxiliary memory. Memory is an opaque canonical encoding owned by
// the problem (empty when unused); because State is a plain comparable value,
// states reachable along different routes but with identical fields collapse
// to a single search-graph node.
type State struct {
	// Location is the label of the current map location.
	Location string

	// Memory carries problem-specific obligations in canonical form.
	// Problems without auxiliary state leave it empty.
	Memory string
}

// Successor is one outgoing transition of a State: the action taken (for path
// reconstruction), the resulting State, and the non-negative transition cost.
type Successor struct {
	Action string
	State  State
	Cost   float64
}

// Problem is the capability set required by the engine.
type Problem interface {
	// Start returns the initial State.
	Start() State

	// IsEnd reports whether s satisfies the goal. A Problem whose IsEnd is
	// identically false drives the engine into exhaustive mode: the frontier
	// runs dry and Result.PastCosts covers every reachable State.
	IsEnd(s State) bool

	// Successors enumerates the outgoing transitions of s.
	Successors(s State) ([]Successor, error)
}

// Result is the outcome of one Solve invocation.
type Result struct {
	// Found reports whether a goal state was reached. When false, Path is nil
	// and Cost is zero: failure is a value, never a fabricated partial path.
	Found bool

	// Path is the optimal action sequence from the start state (the start
	// itself is not included).
	Path []string

	// Cost is the optimal total cost of Path.
	Cost float64

	// PastCosts maps every finalized State to its optimal cost from the
	// start. On frontier exhaustion it covers the complete reachable state
	// space — the basis for exact precomputed heuristics.
	PastCosts map[State]float64

	// Explored counts finalized states.
	Explored int
}

// Options configures a Solve invocation.
//
// MaxCost — states whose optimal cost would exceed this bound are not
// explored. Must be ≥ 0. Default is +Inf (no bound).
type Options struct {
	MaxCost float64
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithMaxCost bounds exploration: any state whose cost from the start exceeds
// max is left unexplored. Panics on a negative bound, signaling invalid
// configuration at the call site.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// defaultOptions returns the baseline configuration: unbounded exploration.
func defaultOptions() Options {
	return Options{MaxCost: math.Inf(1)}
}
