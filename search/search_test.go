// Package search_test contains unit tests for the uniform-cost engine:
// validation, optimality, failure semantics, exhaustive mode, and options.
package search_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/georoute/search"
)

// graphProblem is a minimal explicit-graph Problem used as a test fixture:
// directed edges with float costs, a start node, and a set of goal nodes.
type graphProblem struct {
	start string
	goals map[string]bool
	edges map[string][]search.Successor
}

func (p *graphProblem) Start() search.State { return search.State{Location: p.start} }

func (p *graphProblem) IsEnd(s search.State) bool { return p.goals[s.Location] }

func (p *graphProblem) Successors(s search.State) ([]search.Successor, error) {
	return p.edges[s.Location], nil
}

// edge builds the successor triple for a plain location transition.
func edge(to string, cost float64) search.Successor {
	return search.Successor{Action: to, State: search.State{Location: to}, Cost: cost}
}

// triangleProblem: A—B(1), B—C(2), A—C(5); optimal A→C is 3 via B.
func triangleProblem(goal string) *graphProblem {
	return &graphProblem{
		start: "A",
		goals: map[string]bool{goal: true},
		edges: map[string][]search.Successor{
			"A": {edge("B", 1), edge("C", 5)},
			"B": {edge("A", 1), edge("C", 2)},
			"C": {edge("A", 5), edge("B", 2)},
		},
	}
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestSolve_NilProblem(t *testing.T) {
	_, err := search.Solve(nil)
	require.ErrorIs(t, err, search.ErrNilProblem)
}

func TestSolve_NegativeCost(t *testing.T) {
	p := &graphProblem{
		start: "A",
		goals: map[string]bool{"C": true},
		edges: map[string][]search.Successor{"A": {edge("B", -1)}},
	}
	_, err := search.Solve(p)
	require.ErrorIs(t, err, search.ErrNegativeCost)
}

func TestSolve_SuccessorErrorPropagates(t *testing.T) {
	p := &failingProblem{}
	_, err := search.Solve(p)
	require.ErrorIs(t, err, errBoom)
}

var errBoom = errors.New("boom")

type failingProblem struct{}

func (*failingProblem) Start() search.State     { return search.State{Location: "A"} }
func (*failingProblem) IsEnd(search.State) bool { return false }
func (*failingProblem) Successors(search.State) ([]search.Successor, error) {
	return nil, errBoom
}

// ------------------------------------------------------------------------
// 2. Optimality and path reconstruction.
// ------------------------------------------------------------------------

func TestSolve_TriangleOptimal(t *testing.T) {
	res, err := search.Solve(triangleProblem("C"))
	require.NoError(t, err)

	require.True(t, res.Found)
	require.Equal(t, 3.0, res.Cost)
	require.Equal(t, []string{"B", "C"}, res.Path)
}

func TestSolve_StartIsGoal(t *testing.T) {
	res, err := search.Solve(triangleProblem("A"))
	require.NoError(t, err)

	require.True(t, res.Found)
	require.Equal(t, 0.0, res.Cost)
	require.Empty(t, res.Path)
}

func TestSolve_PastCostsAreOptimal(t *testing.T) {
	// Goal C is popped last, so A and B are finalized first with exact costs.
	res, err := search.Solve(triangleProblem("C"))
	require.NoError(t, err)

	require.Equal(t, 0.0, res.PastCosts[search.State{Location: "A"}])
	require.Equal(t, 1.0, res.PastCosts[search.State{Location: "B"}])
	require.Equal(t, 3.0, res.PastCosts[search.State{Location: "C"}])
}

// ------------------------------------------------------------------------
// 3. Failure semantics and exhaustive mode.
// ------------------------------------------------------------------------

func TestSolve_UnreachableGoal(t *testing.T) {
	p := triangleProblem("Z") // no such node: frontier exhausts
	res, err := search.Solve(p)
	require.NoError(t, err)

	require.False(t, res.Found)
	require.Nil(t, res.Path)
	require.Equal(t, 0.0, res.Cost)
	require.Equal(t, 3, res.Explored)
}

func TestSolve_ExhaustiveModeCoversStateSpace(t *testing.T) {
	// A goal test that never fires drives the engine to frontier exhaustion;
	// PastCosts must then map every reachable state to its optimal cost.
	p := triangleProblem("never")
	res, err := search.Solve(p)
	require.NoError(t, err)

	require.False(t, res.Found)
	require.Len(t, res.PastCosts, 3)
	require.Equal(t, 3.0, res.PastCosts[search.State{Location: "C"}])
}

// ------------------------------------------------------------------------
// 4. Options.
// ------------------------------------------------------------------------

func TestSolve_MaxCostCutoff(t *testing.T) {
	// With a bound of 2 the only route to C (cost 3) is out of reach.
	res, err := search.Solve(triangleProblem("C"), search.WithMaxCost(2))
	require.NoError(t, err)

	require.False(t, res.Found)
	_, hasC := res.PastCosts[search.State{Location: "C"}]
	require.False(t, hasC)
}

func TestSolve_MaxCostExactBoundIncluded(t *testing.T) {
	res, err := search.Solve(triangleProblem("C"), search.WithMaxCost(3))
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 3.0, res.Cost)
}

func TestWithMaxCost_PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for negative MaxCost")
		}
	}()
	search.WithMaxCost(-1)(&search.Options{})
}

// ------------------------------------------------------------------------
// 5. Memory-bearing states collapse correctly.
// ------------------------------------------------------------------------

func TestSolve_StatesWithMemoryAreDistinct(t *testing.T) {
	// The same location with different memory is a different search node.
	withMem := func(loc, mem string, cost float64) search.Successor {
		return search.Successor{Action: loc, State: search.State{Location: loc, Memory: mem}, Cost: cost}
	}
	p := &memProblem{
		edges: map[search.State][]search.Successor{
			{Location: "A"}:                    {withMem("B", "pending", 1)},
			{Location: "B", Memory: "pending"}: {withMem("B", "", 1)},
		},
	}

	res, err := search.Solve(p)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 2.0, res.Cost)
	require.Equal(t, []string{"B", "B"}, res.Path)
}

type memProblem struct {
	edges map[search.State][]search.Successor
}

func (p *memProblem) Start() search.State { return search.State{Location: "A"} }

func (p *memProblem) IsEnd(s search.State) bool {
	return s.Location == "B" && s.Memory == ""
}

func (p *memProblem) Successors(s search.State) ([]search.Successor, error) {
	return p.edges[s], nil
}

// ------------------------------------------------------------------------
// 6. Defaults.
// ------------------------------------------------------------------------

func TestOptions_DefaultUnbounded(t *testing.T) {
	// Sanity: with no options, an expensive goal is still reachable.
	p := &graphProblem{
		start: "A",
		goals: map[string]bool{"B": true},
		edges: map[string][]search.Successor{"A": {edge("B", math.MaxFloat32)}},
	}
	res, err := search.Solve(p)
	require.NoError(t, err)
	require.True(t, res.Found)
}
