// Package route assembles the georoute search stack into concrete routing
// problems over a citymap.CityMap, plus the heuristics and the A*-via-UCS
// reduction that accelerate them.
//
// Problems:
//
//   - ShortestPathProblem — minimum-cost path from a start location to any
//     location carrying an end tag. States are bare locations.
//   - WaypointsShortestPathProblem — same, with the additional obligation to
//     pass through locations covering an unordered set of waypoint tags.
//     State memory is the canonical sorted encoding of tags still owed, with
//     the state's own location always credited; a tunable per-unsatisfied-
//     waypoint surcharge (DefaultWaypointPenalty, WithWaypointPenalty) shapes
//     transition costs toward early waypoint collection. The surcharge is a
//     search bias, not a physical cost: the true edge cost of a returned path
//     is recovered with citymap.TotalCost.
//
// Heuristics:
//
//   - ZeroHeuristic — always 0; the reduction under it is plain uniform-cost
//     search.
//   - StraightLineHeuristic — minimum haversine distance to any end-tagged
//     location; admissible since no chain of geodesic edges can undercut the
//     straight line.
//   - NoWaypointsHeuristic — exact waypoint-free remaining cost per location,
//     precomputed by one exhaustive engine sweep over a reversed problem
//     whose virtual source connects at zero cost to every end-tagged
//     location; admissible by relaxation. Evaluation on a location without an
//     entry fails with ErrNoEstimate instead of guessing.
//
// Reduction:
//
//   - AStar wraps any problem + heuristic into a new problem solvable by the
//     plain engine. Default cost adjustment is +h(next) (the observed
//     historical form, exact only under the zero heuristic);
//     WithConsistentCosts selects the telescoping +h(next)−h(current) form
//     for true A*-equivalence under consistent heuristics.
//
// Errors (sentinel):
//
//   - ErrNoEndLocation — heuristic construction against a tag nothing carries.
//   - ErrNoEstimate    — heuristic evaluated outside its precomputed domain.
//   - ErrBadWaypointPenalty — negative surcharge passed to WithWaypointPenalty
//     (panics).
//
// An unsatisfiable query (e.g. a waypoint tag no location carries) is not an
// error at construction: the finite state space simply exhausts and
// search.Solve reports Found == false.
package route
