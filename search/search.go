// Package search implements uniform-cost search (Dijkstra's algorithm over an
// implicit state graph) for any Problem with non-negative transition costs.
//
// The engine explores states in order of increasing cost using a min-heap
// priority queue with a "lazy decrease-key" strategy: improvements push
// duplicate entries, and stale entries are skipped on extraction via the
// explored set. The first goal state extracted therefore carries its optimal
// cost, and the recorded predecessor links reconstruct the action path.
//
// Complexity, for S reachable states and T transitions:
//
//   - Time:  O((S + T) log S) — each state finalized once, each transition
//     relaxed once, each heap operation logarithmic.
//   - Space: O(S + T) — cost/predecessor maps plus worst-case duplicate heap
//     entries under lazy decrease-key.
package search

import (
	"container/heap"
	"fmt"
)

// Solve runs uniform-cost search over problem and returns the outcome.
//
// Semantics:
//
//  1. The frontier starts with problem.Start() at cost 0.
//  2. The minimum-cost unexplored state is extracted repeatedly. An empty
//     frontier terminates with Found=false — no reachable goal is a defined
//     result, not an error.
//  3. Extracting a goal state terminates with its (optimal) cost and the
//     action path back to the start.
//  4. Otherwise the state is finalized and each successor is relaxed:
//     a strictly lower cost updates the frontier entry and predecessor link.
//  5. A Problem whose goal test never fires exhausts the frontier; the
//     returned Result.PastCosts then maps every reachable state to its
//     optimal cost (exhaustive mode).
//
// Errors: ErrNilProblem for a nil problem, ErrNegativeCost if any successor
// reports a negative cost, and wrapped enumeration errors from
// problem.Successors. Solve owns all per-invocation structures; concurrent
// Solve calls never share state.
func Solve(problem Problem, opts ...Option) (*Result, error) {
	if problem == nil {
		return nil, ErrNilProblem
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		problem: problem,
		options: cfg,
		past:    make(map[State]float64),
		best:    make(map[State]float64),
		prev:    make(map[State]prevLink),
	}
	r.init()

	return r.run()
}

// prevLink records how a state was first improved: the predecessor state and
// the action that produced the transition.
type prevLink struct {
	state  State
	action string
}

// runner holds the mutable state of a single Solve invocation.
type runner struct {
	problem Problem
	options Options

	past map[State]float64  // finalized optimal costs
	best map[State]float64  // best-known tentative costs
	prev map[State]prevLink // predecessor links for path reconstruction
	pq   statePQ            // min-heap frontier, lazy decrease-key
}

// init seeds the frontier with the start state at cost 0.
func (r *runner) init() {
	start := r.problem.Start()
	r.best[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{state: start, cost: 0})
}

// run is the main loop: extract-min, goal test, relax successors.
func (r *runner) run() (*Result, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)

		// Skip stale heap entries for already-finalized states.
		if _, done := r.past[item.state]; done {
			continue
		}

		r.past[item.state] = item.cost

		if r.problem.IsEnd(item.state) {
			return &Result{
				Found:     true,
				Path:      r.reconstruct(item.state),
				Cost:      item.cost,
				PastCosts: r.past,
				Explored:  len(r.past),
			}, nil
		}

		if err := r.relax(item.state, item.cost); err != nil {
			return nil, err
		}
	}

	// Frontier exhausted: no reachable goal. PastCosts now covers the whole
	// explored state space.
	return &Result{PastCosts: r.past, Explored: len(r.past)}, nil
}

// relax enumerates the successors of state (finalized at cost) and applies
// the standard strict-improvement relaxation to each.
func (r *runner) relax(state State, cost float64) error {
	successors, err := r.problem.Successors(state)
	if err != nil {
		return fmt.Errorf("search: expand %v: %w", state, err)
	}

	for _, succ := range successors {
		if succ.Cost < 0 {
			return fmt.Errorf("%w: %v → %v cost=%v", ErrNegativeCost, state, succ.State, succ.Cost)
		}
		if _, done := r.past[succ.State]; done {
			continue
		}

		next := cost + succ.Cost
		if next > r.options.MaxCost {
			continue
		}
		// Strict improvement only: equal-cost rediscoveries push nothing.
		if known, ok := r.best[succ.State]; ok && next >= known {
			continue
		}

		r.best[succ.State] = next
		r.prev[succ.State] = prevLink{state: state, action: succ.Action}
		heap.Push(&r.pq, &stateItem{state: succ.State, cost: next})
	}

	return nil
}

// reconstruct follows predecessor links from goal back to the start and
// returns the action sequence in forward order.
func (r *runner) reconstruct(goal State) []string {
	var actions []string
	for cur := goal; ; {
		link, ok := r.prev[cur]
		if !ok {
			break
		}
		actions = append(actions, link.action)
		cur = link.state
	}

	// Reverse in place: links were collected goal→start.
	for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
		actions[i], actions[j] = actions[j], actions[i]
	}

	return actions
}

// stateItem is one frontier entry: a state and its tentative cost at push
// time. Stale duplicates are filtered on extraction.
type stateItem struct {
	state State
	cost  float64
}

// statePQ is a min-heap of *stateItem ordered by cost ascending, used with
// the lazy decrease-key strategy.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders items by increasing cost.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two heap entries.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new entry; called by heap.Push.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
