package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/evrouter/core/model"
	"github.com/kilianp07/evrouter/core/network"
)

func TestHeuristicGuided_FindsNearestStationWithFewerExpansions(t *testing.T) {
	net := network.Default()
	strat, err := NewHeuristicGuided(net, "A", 6.0)
	require.NoError(t, err)

	res, err := strat.Search()
	require.NoError(t, err)

	// Same optimum as the cost-ordered strategy, but C (h=0, f=5.1) beats
	// B (f=3.6+h(B)) on the frontier so only two entries get popped.
	assert.Equal(t, model.Path{"A", "C"}, res.Path)
	assert.InDelta(t, 5.1, res.Cost, 1e-9)
	assert.Equal(t, 2, res.NodesExpanded)
}

func TestHeuristicGuided_Unreachable(t *testing.T) {
	net := network.Default()
	strat, err := NewHeuristicGuided(net, "A", 2.0)
	require.NoError(t, err)

	res, err := strat.Search()
	require.NoError(t, err)

	assert.Empty(t, res.Path)
	assert.True(t, math.IsInf(res.Cost, 1))
	assert.Equal(t, 1, res.NodesExpanded)
}

func TestHeuristicGuided_StartAtStationZeroCapacity(t *testing.T) {
	net := network.Default()
	strat, err := NewHeuristicGuided(net, "G", 0)
	require.NoError(t, err)

	res, err := strat.Search()
	require.NoError(t, err)

	assert.Equal(t, model.Path{"G"}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Equal(t, 1, res.NodesExpanded)
}

func TestHeuristicGuided_UnknownStart(t *testing.T) {
	// The start entry carries priority zero, so an unknown start exhausts
	// silently instead of failing its heuristic lookup.
	net := network.Default()
	strat, err := NewHeuristicGuided(net, "Z", 10)
	require.NoError(t, err)

	res, err := strat.Search()
	require.NoError(t, err)
	assert.False(t, res.Reachable())
	assert.Equal(t, 1, res.NodesExpanded)
}

func TestHeuristicGuided_PropagatesLookupError(t *testing.T) {
	// An edge pointing at an undefined node is malformed data: the heuristic
	// needs the missing coordinate and the failure must not be masked.
	net, err := network.New(network.Config{
		Nodes:    []network.NodeConfig{{ID: "X"}, {ID: "S", X: 2}},
		Edges:    []network.EdgeConfig{{From: "X", To: "ghost", Distance: 1}, {From: "X", To: "S", Distance: 2}},
		Stations: []string{"S"},
	})
	require.NoError(t, err)

	strat, err := NewHeuristicGuided(net, "X", 5)
	require.NoError(t, err)

	_, err = strat.Search()
	assert.ErrorIs(t, err, network.ErrUnknownLocation)
}

func TestCostOrdered_ToleratesEdgeToUndefinedNode(t *testing.T) {
	// The cost-ordered strategy never looks coordinates up; the ghost node is
	// just a dead end on its frontier.
	net, err := network.New(network.Config{
		Nodes:    []network.NodeConfig{{ID: "X"}, {ID: "S", X: 2}},
		Edges:    []network.EdgeConfig{{From: "X", To: "ghost", Distance: 1}, {From: "X", To: "S", Distance: 2}},
		Stations: []string{"S"},
	})
	require.NoError(t, err)

	strat, err := NewCostOrdered(net, "X", 5)
	require.NoError(t, err)

	res, err := strat.Search()
	require.NoError(t, err)
	assert.Equal(t, model.Path{"X", "S"}, res.Path)
	assert.InDelta(t, 2.0, res.Cost, 1e-9)
}

func TestHeuristicGuided_RejectsNegativeCapacity(t *testing.T) {
	_, err := NewHeuristicGuided(network.Default(), "A", -0.5)
	assert.ErrorIs(t, err, ErrNegativeCapacity)
}

func TestStrategies_AgreeOnOptimalCost(t *testing.T) {
	// With admissible heuristic data both strategies return the same optimal
	// cost for every (start, capacity) combination.
	net := network.Default()
	for _, start := range net.Locations() {
		for _, capacity := range []float64{2, 4, 6, 15} {
			ucs, err := NewCostOrdered(net, start, capacity)
			require.NoError(t, err)
			ucsRes, err := ucs.Search()
			require.NoError(t, err)

			astar, err := NewHeuristicGuided(net, start, capacity)
			require.NoError(t, err)
			astarRes, err := astar.Search()
			require.NoError(t, err)

			if math.IsInf(ucsRes.Cost, 1) {
				assert.True(t, math.IsInf(astarRes.Cost, 1),
					"start=%s capacity=%v: ucs unreachable but astar found %v", start, capacity, astarRes.Cost)
				continue
			}
			assert.InDelta(t, ucsRes.Cost, astarRes.Cost, 1e-9,
				"start=%s capacity=%v", start, capacity)
		}
	}
}

func TestStrategies_PathInvariants(t *testing.T) {
	// A returned non-empty path starts at the start location, ends at a
	// station, sums to the reported cost and never uses an edge longer than
	// the capacity.
	net := network.Default()
	for _, start := range net.Locations() {
		for _, capacity := range []float64{4, 6, 15} {
			for _, build := range []func() (Strategy, error){
				func() (Strategy, error) { return NewCostOrdered(net, start, capacity) },
				func() (Strategy, error) { return NewHeuristicGuided(net, start, capacity) },
			} {
				strat, err := build()
				require.NoError(t, err)
				res, err := strat.Search()
				require.NoError(t, err)
				if !res.Reachable() {
					continue
				}

				assert.Equal(t, start, res.Path.Start())
				assert.True(t, net.IsChargingStation(res.Path.End()))

				var sum float64
				for i := 0; i+1 < len(res.Path); i++ {
					d, ok := edgeDistance(net, res.Path[i], res.Path[i+1])
					require.True(t, ok, "no edge %s->%s", res.Path[i], res.Path[i+1])
					assert.LessOrEqual(t, d, capacity)
					sum += d
				}
				assert.InDelta(t, res.Cost, sum, 1e-9)
			}
		}
	}
}

func edgeDistance(net *network.Network, from, to model.Location) (float64, bool) {
	for _, e := range net.Neighbors(from) {
		if e.To == to {
			return e.Distance, true
		}
	}
	return 0, false
}
