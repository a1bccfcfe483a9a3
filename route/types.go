// Package route builds concrete routing problems and heuristics on top of the
// citymap model and the search engine.
//
// This file declares sentinel errors, shared constants, and the functional
// options used across the package.
package route

import "errors"

// Sentinel errors for routing problems and heuristics.
var (
	// ErrNoEndLocation indicates no location in the map carries the end tag,
	// so a heuristic targeting that tag cannot be constructed.
	ErrNoEndLocation = errors.New("route: no location carries end tag")

	// ErrNoEstimate indicates a heuristic was evaluated on a state it holds
	// no precomputed entry for (e.g. a disconnected location). Failing
	// explicitly avoids masking inadmissibility behind a stale or zero value.
	ErrNoEstimate = errors.New("route: no precomputed estimate for state")

	// ErrBadWaypointPenalty indicates WithWaypointPenalty was given a
	// negative surcharge.
	ErrBadWaypointPenalty = errors.New("route: waypoint penalty must be non-negative")
)

// DefaultWaypointPenalty is the surcharge added per still-unsatisfied
// waypoint tag on every transition. It is a cost-shaping device that biases
// the search toward collecting waypoints early, not a physical edge weight:
// nonzero values trade strict optimality of the true edge cost for pruning.
const DefaultWaypointPenalty = 50.0

// Options configures WaypointsShortestPathProblem.
type Options struct {
	// WaypointPenalty is the per-unsatisfied-waypoint transition surcharge.
	WaypointPenalty float64
}

// Option is a functional option for configuring a waypoints problem.
type Option func(*Options)

// WithWaypointPenalty overrides the per-unsatisfied-waypoint surcharge.
// Panics on a negative value, signaling invalid configuration at the call
// site. A penalty of 0 makes transition costs purely geometric.
func WithWaypointPenalty(penalty float64) Option {
	return func(o *Options) {
		if penalty < 0 {
			panic(ErrBadWaypointPenalty.Error())
		}
		o.WaypointPenalty = penalty
	}
}

// defaultOptions returns the baseline waypoints configuration.
func defaultOptions() Options {
	return Options{WaypointPenalty: DefaultWaypointPenalty}
}
