// Package search provides a polymorphic best-first search core: a
// three-capability Problem abstraction (start state, goal test, successor
// enumeration) and a uniform-cost (Dijkstra) engine that finds the
// minimum-cost action path to any goal state under non-negative transition
// costs.
//
// Overview:
//
//   - State is a comparable (location, memory) value; problems with extra
//     obligations encode them canonically in Memory so that equivalent search
//     nodes collapse.
//   - Problem is duck typing made explicit: any type exposing Start, IsEnd
//     and Successors can be solved, including wrappers that transform another
//     problem (see the route package's A* reduction).
//   - Solve explores states in increasing cost order with a lazy decrease-key
//     min-heap and an explored set; the first goal extracted is optimal.
//
// Failure semantics:
//
//   - An unreachable (or empty) goal set yields Result.Found == false with a
//     nil path — frontier exhaustion is the termination guarantee, and the
//     engine never fabricates a partial path.
//   - A goal test that is identically false turns Solve into an exhaustive
//     sweep: Result.PastCosts then maps every reachable state to its exact
//     optimal cost, which is how relaxation-based heuristics precompute
//     remaining costs.
//
// Key properties:
//
//   - Tie-breaking among equal-cost frontier entries is unspecified; any
//     consistent resolution leaves the optimal cost unchanged.
//   - One Solve invocation exclusively owns its frontier and cost maps; the
//     engine is synchronous and single-threaded, and nested invocations (a
//     heuristic solving a derived problem) complete before the outer search
//     proceeds.
//
// Errors (sentinel):
//
//   - ErrNilProblem   — nil Problem passed to Solve.
//   - ErrNegativeCost — a successor reported a negative cost.
//   - ErrBadMaxCost   — WithMaxCost given a negative bound (panics).
//
// API sketch:
//
//	res, err := search.Solve(problem)
//	if err != nil { ... }            // malformed problem, not "no path"
//	if !res.Found { ... }            // defined failure: no reachable goal
//	fmt.Println(res.Path, res.Cost)  // optimal action path and its cost
//
// See also: route.ShortestPathProblem, route.WaypointsShortestPathProblem,
// and route.AStar for concrete problems and the heuristic-guided reduction.
package search
