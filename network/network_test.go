package network_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadload/network"
)

func linear(slope float64) network.CongestionFunc {
	return func(n int) float64 { return slope * float64(n) }
}

func constant(t float64) network.CongestionFunc {
	return func(int) float64 { return t }
}

// braessEdges is the four-road diamond: 0→1→3 and 0→2→3.
func braessEdges() []network.Edge {
	return []network.Edge{
		{From: 0, To: 1, Time: linear(0.01)},
		{From: 0, To: 2, Time: constant(45)},
		{From: 1, To: 3, Time: constant(45)},
		{From: 2, To: 3, Time: linear(0.01)},
	}
}

func TestBuild_EmptyEdgeList(t *testing.T) {
	net, err := network.Build(nil)
	assert.Nil(t, net)
	assert.ErrorIs(t, err, network.ErrEmptyEdgeList)
	assert.ErrorIs(t, err, network.ErrConfiguration)
}

func TestBuild_DuplicateRoad(t *testing.T) {
	edges := append(braessEdges(), network.Edge{From: 0, To: 1, Time: constant(1)})
	_, err := network.Build(edges)
	assert.ErrorIs(t, err, network.ErrDuplicateRoad)
	assert.ErrorIs(t, err, network.ErrConfiguration)
}

func TestBuild_ReverseDirectionIsNotDuplicate(t *testing.T) {
	net, err := network.Build([]network.Edge{
		{From: 0, To: 1, Time: constant(1)},
		{From: 1, To: 0, Time: constant(2)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, net.RoadCount())
	assert.Equal(t, 1.0, net.TravelTime(0, 1))
	assert.Equal(t, 2.0, net.TravelTime(1, 0))
}

func TestBuild_BadCongestion(t *testing.T) {
	cases := map[string]network.CongestionFunc{
		"nil":      nil,
		"negative": constant(-1),
		"nan":      constant(math.NaN()),
		"inf":      constant(math.Inf(1)),
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := network.Build([]network.Edge{{From: 0, To: 1, Time: fn}})
			assert.ErrorIs(t, err, network.ErrBadCongestion)
			assert.ErrorIs(t, err, network.ErrConfiguration)
		})
	}
}

func TestBuild_NodesSortedAndIndexed(t *testing.T) {
	net, err := network.Build([]network.Edge{
		{From: 7, To: 3, Time: constant(1)},
		{From: 3, To: 11, Time: constant(1)},
		{From: -2, To: 7, Time: constant(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, []network.Node{-2, 3, 7, 11}, net.Nodes())
	assert.Equal(t, 0, net.Index(-2))
	assert.Equal(t, 3, net.Index(11))
	assert.Equal(t, -1, net.Index(5))
	assert.True(t, net.HasNode(3))
	assert.False(t, net.HasNode(4))

	roads := net.Roads()
	require.Len(t, roads, 3)
	assert.Equal(t, network.Node(-2), roads[0].From)
	assert.Equal(t, network.Node(3), roads[1].From)
	assert.Equal(t, network.Node(7), roads[2].From)

	assert.Same(t, roads[1], net.RoadAt(net.Index(3), net.Index(11)))
	assert.Nil(t, net.RoadAt(0, 0))
	assert.Nil(t, net.RoadAt(-1, 9))
}

func TestNeighbors_Ascending(t *testing.T) {
	net, err := network.Build([]network.Edge{
		{From: 0, To: 5, Time: constant(1)},
		{From: 0, To: 2, Time: constant(1)},
		{From: 0, To: 9, Time: constant(1)},
	})
	require.NoError(t, err)
	assert.Equal(t, []network.Node{2, 5, 9}, net.Neighbors(0))
	assert.Empty(t, net.Neighbors(9))
	assert.Nil(t, net.Neighbors(42))
}

func TestTravelTime_NoRoadIsInfinite(t *testing.T) {
	net, err := network.Build(braessEdges())
	require.NoError(t, err)
	assert.True(t, math.IsInf(net.TravelTime(1, 2), 1))
	assert.True(t, math.IsInf(net.TravelTime(3, 0), 1))
	assert.True(t, math.IsInf(net.TravelTime(0, 99), 1))
	assert.Equal(t, 45.0, net.TravelTime(0, 2))
}

func TestAddVehicle_UpdatesTravelTime(t *testing.T) {
	net, err := network.Build(braessEdges())
	require.NoError(t, err)

	assert.Equal(t, 0.0, net.TravelTime(0, 1))
	require.NoError(t, net.AddVehicle(0, 1))
	require.NoError(t, net.AddVehicle(0, 1))
	assert.InDelta(t, 0.02, net.TravelTime(0, 1), 1e-12)

	n, err := net.Vehicles(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAddVehicle_MissingRoad(t *testing.T) {
	net, err := network.Build(braessEdges())
	require.NoError(t, err)

	err = net.AddVehicle(1, 2)
	assert.ErrorIs(t, err, network.ErrRoadNotFound)
	assert.ErrorIs(t, err, network.ErrNotFound)
	assert.NotErrorIs(t, err, network.ErrConfiguration)

	_, err = net.Vehicles(3, 1)
	assert.ErrorIs(t, err, network.ErrNotFound)
	_, err = net.Road(3, 1)
	assert.ErrorIs(t, err, network.ErrNotFound)
}

func TestTotalTime(t *testing.T) {
	net, err := network.Build(braessEdges())
	require.NoError(t, err)
	assert.Equal(t, 0.0, net.TotalTime())

	require.NoError(t, net.AddVehicle(0, 1))
	require.NoError(t, net.AddVehicle(1, 3))
	assert.InDelta(t, 45.01, net.TotalTime(), 1e-9)

	flows := net.Flows()
	require.Len(t, flows, 4)
	assert.Equal(t, network.RoadFlow{From: 0, To: 1, Vehicles: 1, Time: 0.01}, flows[0])
	assert.Equal(t, 0, flows[1].Vehicles)
}

func TestReset(t *testing.T) {
	net, err := network.Build(braessEdges())
	require.NoError(t, err)
	require.NoError(t, net.AddVehicle(0, 2))
	assert.Equal(t, "0→1(n=0) 0→2(n=1) 1→3(n=0) 2→3(n=0)", net.String())

	net.Reset()
	assert.Equal(t, 0.0, net.TotalTime())
	assert.Equal(t, "0→1(n=0) 0→2(n=0) 1→3(n=0) 2→3(n=0)", net.String())
}
