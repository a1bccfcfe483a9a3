package route

import (
	"fmt"
	"math"

	"github.com/katalvlaran/georoute/citymap"
	"github.com/katalvlaran/georoute/search"
)

// Heuristic estimates the remaining cost from a state to the nearest goal.
// For the A* reduction to preserve optimality the estimate must be
// admissible: it never overestimates the true remaining cost.
type Heuristic interface {
	Estimate(s search.State) (float64, error)
}

// ZeroHeuristic estimates every remaining cost as 0. Trivially admissible and
// maximally uninformative: the A* reduction under ZeroHeuristic is exactly
// uniform-cost search.
type ZeroHeuristic struct{}

// Estimate always returns 0.
func (ZeroHeuristic) Estimate(search.State) (float64, error) { return 0, nil }

// StraightLineHeuristic estimates remaining cost as the minimum great-circle
// distance from the state's location to any end-tagged location. Admissible
// because every connection cost is at least the straight-line distance
// between its endpoints, so by the triangle inequality no path can beat the
// geodesic.
type StraightLineHeuristic struct {
	m     *citymap.CityMap
	goals []citymap.GeoLocation
}

// NewStraightLineHeuristic precomputes the coordinates of every location
// carrying endTag. Returns ErrNoEndLocation when the tag matches nothing.
func NewStraightLineHeuristic(endTag string, m *citymap.CityMap) (*StraightLineHeuristic, error) {
	var goals []citymap.GeoLocation
	for _, label := range m.Labels() {
		if !m.HasTag(label, endTag) {
			continue
		}
		geo, err := m.Location(label)
		if err != nil {
			return nil, err
		}
		goals = append(goals, geo)
	}
	if len(goals) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoEndLocation, endTag)
	}

	return &StraightLineHeuristic{m: m, goals: goals}, nil
}

// Estimate returns the minimum haversine distance from the state's location
// to any precomputed goal coordinate.
func (h *StraightLineHeuristic) Estimate(s search.State) (float64, error) {
	geo, err := h.m.Location(s.Location)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNoEstimate, s.Location)
	}

	best := math.Inf(1)
	for _, goal := range h.goals {
		if d := citymap.Distance(geo, goal); d < best {
			best = d
		}
	}

	return best, nil
}

// reverseSourceLabel names the virtual state the reverse sweep starts from.
// The NUL prefix keeps it out of any real label space.
const reverseSourceLabel = "\x00reverse-source"

// NoWaypointsHeuristic estimates remaining cost as the exact minimum path
// cost from the state's location to the nearest end-tagged location, ignoring
// any waypoint constraint. Admissible for the waypoint-constrained problem by
// the relaxation principle: dropping a constraint can only lower or match the
// constrained optimum. Exactness relies on connection costs being symmetric,
// which the citymap model guarantees.
type NoWaypointsHeuristic struct {
	costs map[string]float64
}

// reverseShortestPathProblem drives the exhaustive precomputation sweep: a
// virtual source joined by zero-cost transitions to every end-tagged
// location, ordinary graph connections elsewhere, and a goal test that never
// fires so the engine runs to frontier exhaustion.
type reverseShortestPathProblem struct {
	m    *citymap.CityMap
	ends []string
}

// Start returns the virtual source state.
func (p *reverseShortestPathProblem) Start() search.State {
	return search.State{Location: reverseSourceLabel}
}

// IsEnd is identically false: the sweep must cost every reachable state.
func (p *reverseShortestPathProblem) IsEnd(search.State) bool { return false }

// Successors connects the virtual source to all end-tagged locations at zero
// cost, and every ordinary location to its graph neighbors.
func (p *reverseShortestPathProblem) Successors(s search.State) ([]search.Successor, error) {
	if s.Location == reverseSourceLabel {
		out := make([]search.Successor, 0, len(p.ends))
		for _, label := range p.ends {
			out = append(out, search.Successor{
				Action: label,
				State:  search.State{Location: label},
			})
		}

		return out, nil
	}

	neighbors, err := p.m.Neighbors(s.Location)
	if err != nil {
		return nil, err
	}
	out := make([]search.Successor, 0, len(neighbors))
	for _, n := range neighbors {
		out = append(out, search.Successor{
			Action: n.Label,
			State:  search.State{Location: n.Label},
			Cost:   n.Cost,
		})
	}

	return out, nil
}

// NewNoWaypointsHeuristic runs one exhaustive engine sweep over the reversed
// problem and stores the exact minimum cost from every reachable location to
// the nearest end-tagged location. Returns ErrNoEndLocation when the tag
// matches nothing. The nested search completes before this constructor
// returns; the resulting heuristic is read-only and shareable.
func NewNoWaypointsHeuristic(endTag string, m *citymap.CityMap) (*NoWaypointsHeuristic, error) {
	var ends []string
	for _, label := range m.Labels() {
		if m.HasTag(label, endTag) {
			ends = append(ends, label)
		}
	}
	if len(ends) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoEndLocation, endTag)
	}

	res, err := search.Solve(&reverseShortestPathProblem{m: m, ends: ends})
	if err != nil {
		return nil, err
	}

	costs := make(map[string]float64, len(res.PastCosts))
	for state, cost := range res.PastCosts {
		if state.Location == reverseSourceLabel {
			continue
		}
		costs[state.Location] = cost
	}

	return &NoWaypointsHeuristic{costs: costs}, nil
}

// Estimate looks up the precomputed exact remaining cost for the state's
// location. A location without an entry (disconnected from every end-tagged
// location) yields a wrapped ErrNoEstimate rather than a stale or zero value.
func (h *NoWaypointsHeuristic) Estimate(s search.State) (float64, error) {
	cost, ok := h.costs[s.Location]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNoEstimate, s.Location)
	}

	return cost, nil
}
