package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/georoute/citymap"
	"github.com/katalvlaran/georoute/route"
	"github.com/katalvlaran/georoute/search"
)

// ------------------------------------------------------------------------
// 1. ZeroHeuristic.
// ------------------------------------------------------------------------

func TestZeroHeuristic(t *testing.T) {
	est, err := route.ZeroHeuristic{}.Estimate(search.State{Location: "anywhere"})
	require.NoError(t, err)
	require.Equal(t, 0.0, est)
}

// ------------------------------------------------------------------------
// 2. StraightLineHeuristic.
// ------------------------------------------------------------------------

func TestStraightLine_GridDiagonal(t *testing.T) {
	// Great-circle distance across two unit-delta steps of latitude and
	// longitude on the 3×5 grid.
	m := citymap.NewGridMap(3, 5)
	h, err := route.NewStraightLineHeuristic("label=2,2", m)
	require.NoError(t, err)

	est, err := h.Estimate(search.State{Location: "0,0"})
	require.NoError(t, err)
	require.InDelta(t, 3.145067466556296, est, 1e-9)
}

func TestStraightLine_PicksNearestGoal(t *testing.T) {
	// Multiple end-tagged locations: the estimate is the minimum distance.
	m := citymap.NewGridMap(30, 30)
	h, err := route.NewStraightLineHeuristic("x=5", m)
	require.NoError(t, err)

	// From (20,10) the nearest x=5 location is (5,10), 15 unit-deltas away.
	est, err := h.Estimate(search.State{Location: citymap.GridLabel(20, 10)})
	require.NoError(t, err)

	from, _ := m.Location("20,10")
	to, _ := m.Location("5,10")
	require.InDelta(t, citymap.Distance(from, to), est, 1e-9)
}

func TestStraightLine_NoEndLocation(t *testing.T) {
	m := citymap.NewGridMap(2, 2)
	_, err := route.NewStraightLineHeuristic("label=5,5", m)
	require.ErrorIs(t, err, route.ErrNoEndLocation)
}

func TestStraightLine_UnknownLocation(t *testing.T) {
	m := citymap.NewGridMap(2, 2)
	h, err := route.NewStraightLineHeuristic("label=1,1", m)
	require.NoError(t, err)

	_, err = h.Estimate(search.State{Location: "9,9"})
	require.ErrorIs(t, err, route.ErrNoEstimate)
}

// haversineLattice builds a width×height lattice whose connections carry the
// default haversine cost, so edge costs are true geodesic distances —
// the precondition for straight-line admissibility.
func haversineLattice(t *testing.T, width, height int) *citymap.CityMap {
	t.Helper()
	m := citymap.New()
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			geo := citymap.GeoLocation{Latitude: float64(x) * 0.0001, Longitude: float64(y) * 0.0001}
			require.NoError(t, m.AddLocation(citymap.GridLabel(x, y), geo, nil))
			if x > 0 {
				require.NoError(t, m.AddConnection(citymap.GridLabel(x-1, y), citymap.GridLabel(x, y)))
			}
			if y > 0 {
				require.NoError(t, m.AddConnection(citymap.GridLabel(x, y-1), citymap.GridLabel(x, y)))
			}
		}
	}

	return m
}

func TestStraightLine_Admissible(t *testing.T) {
	// On haversine-costed connections no chain of edges can undercut the
	// straight line; compare against the exact remaining cost from the
	// relaxed exhaustive sweep.
	m := haversineLattice(t, 3, 5)
	endTag := "label=2,2"

	straight, err := route.NewStraightLineHeuristic(endTag, m)
	require.NoError(t, err)
	exact, err := route.NewNoWaypointsHeuristic(endTag, m)
	require.NoError(t, err)

	for _, label := range m.Labels() {
		s := search.State{Location: label}
		lower, err := straight.Estimate(s)
		require.NoError(t, err)
		truth, err := exact.Estimate(s)
		require.NoError(t, err)
		require.LessOrEqual(t, lower, truth+1e-9, "inadmissible at %s", label)
	}
}

// ------------------------------------------------------------------------
// 3. NoWaypointsHeuristic.
// ------------------------------------------------------------------------

func TestNoWaypoints_ExactRemainingCosts(t *testing.T) {
	// The precomputed estimate must equal the cost of an independent forward
	// solve from every location (costs are symmetric, so directions agree).
	m := citymap.NewGridMap(4, 4)
	endTag := "x=3"

	h, err := route.NewNoWaypointsHeuristic(endTag, m)
	require.NoError(t, err)

	for _, label := range m.Labels() {
		res, err := search.Solve(route.NewShortestPathProblem(label, endTag, m))
		require.NoError(t, err)
		require.True(t, res.Found)

		est, err := h.Estimate(search.State{Location: label})
		require.NoError(t, err)
		require.InDelta(t, res.Cost, est, 1e-9, "location %s", label)
	}
}

func TestNoWaypoints_MemoryIsIgnored(t *testing.T) {
	// The relaxation drops the waypoint constraint: estimates depend only on
	// the location, whatever obligations the state still carries.
	m := citymap.NewGridMap(3, 3)
	h, err := route.NewNoWaypointsHeuristic("label=2,2", m)
	require.NoError(t, err)

	plain, err := h.Estimate(search.State{Location: "0,0"})
	require.NoError(t, err)
	loaded, err := h.Estimate(search.State{Location: "0,0", Memory: "food\x1ffuel"})
	require.NoError(t, err)
	require.Equal(t, plain, loaded)
}

func TestNoWaypoints_DisconnectedLocationFailsExplicitly(t *testing.T) {
	// An island location has no precomputed entry; the heuristic must refuse
	// to answer rather than return a stale or zero value.
	m := citymap.NewGridMap(2, 2)
	require.NoError(t, m.AddLocation("island", citymap.GeoLocation{Latitude: 1}, nil))

	h, err := route.NewNoWaypointsHeuristic("label=1,1", m)
	require.NoError(t, err)

	_, err = h.Estimate(search.State{Location: "island"})
	require.ErrorIs(t, err, route.ErrNoEstimate)
}

func TestNoWaypoints_NoEndLocation(t *testing.T) {
	m := citymap.NewGridMap(2, 2)
	_, err := route.NewNoWaypointsHeuristic("landmark=atlantis", m)
	require.ErrorIs(t, err, route.ErrNoEndLocation)
}

func TestNoWaypoints_AdmissibleForWaypointProblem(t *testing.T) {
	// Relaxation principle: the waypoint-free remaining cost can never exceed
	// the true constrained remaining cost. Spot-check from the start state of
	// a waypoint problem solved with zero penalty (true constrained optimum).
	m := citymap.NewGridMap(3, 5)
	endTag := "label=2,2"

	h, err := route.NewNoWaypointsHeuristic(endTag, m)
	require.NoError(t, err)

	p := route.NewWaypointsShortestPathProblem("0,0", []string{"y=4"}, endTag, m,
		route.WithWaypointPenalty(0))
	res, err := search.Solve(p)
	require.NoError(t, err)
	require.True(t, res.Found)

	est, err := h.Estimate(p.Start())
	require.NoError(t, err)
	require.LessOrEqual(t, est, res.Cost)
}
