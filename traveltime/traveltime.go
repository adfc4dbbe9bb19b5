package traveltime

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/roadload/network"
	"github.com/katalvlaran/roadload/paths"
)

// ErrBadTime indicates a congestion function produced a negative or NaN time.
var ErrBadTime = fmt.Errorf("traveltime: invalid travel time: %w", network.ErrConfiguration)

// ErrNilNetwork is returned when RecomputeAll receives a nil network.
var ErrNilNetwork = fmt.Errorf("traveltime: network is nil: %w", network.ErrConfiguration)

// Times is a snapshot of all road travel times at one instant.
type Times struct {
	net *network.Network
	m   *mat.Dense
}

// RecomputeAll evaluates every road of net at its current flow.
// A +Inf result is accepted and marks the road as impassable at that flow.
//
// Complexity: O(V² + E) plus E congestion-function calls.
func RecomputeAll(net *network.Network) (*Times, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	n := net.NodeCount()
	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.Inf(1)
	}
	m := mat.NewDense(n, n, data)

	for _, r := range net.Roads() {
		t := net.TravelTime(r.From, r.To)
		if math.IsNaN(t) || t < 0 {
			return nil, fmt.Errorf("%w: road %d→%d at flow %d: %g", ErrBadTime, r.From, r.To, vehicles(net, r), t)
		}
		m.Set(net.Index(r.From), net.Index(r.To), t)
	}

	return &Times{net: net, m: m}, nil
}

// At returns the travel time from a to b, or +Inf when there is no such road.
func (t *Times) At(a, b network.Node) float64 {
	i, j := t.net.Index(a), t.net.Index(b)
	if i < 0 || j < 0 {
		return math.Inf(1)
	}

	return t.m.At(i, j)
}

// AtIndex returns the travel time between node positions i and j.
func (t *Times) AtIndex(i, j int) float64 { return t.m.At(i, j) }

// Size reports the matrix dimension (number of nodes).
func (t *Times) Size() int {
	r, _ := t.m.Dims()
	return r
}

// PathTime sums the road times along p. A single-node path costs 0.
func (t *Times) PathTime(p paths.Path) float64 {
	var total float64
	for i := 0; i+1 < len(p); i++ {
		total += t.At(p[i], p[i+1])
	}

	return total
}

// Matrix returns a copy of the underlying matrix.
func (t *Times) Matrix() *mat.Dense {
	return mat.DenseCopyOf(t.m)
}

// String formats the matrix for debug logs.
func (t *Times) String() string {
	return fmt.Sprintf("%v", mat.Formatted(t.m, mat.Squeeze()))
}

// Total returns Σ vehicles × time over all roads of net using the times in t.
// Roads without vehicles contribute nothing, even when their time is +Inf.
// t must come from RecomputeAll on the current flows for the result to equal
// net.TotalTime().
func Total(net *network.Network, t *Times) float64 {
	var total float64
	for _, r := range net.Roads() {
		v := vehicles(net, r)
		if v == 0 {
			continue
		}
		total += float64(v) * t.At(r.From, r.To)
	}

	return total
}

func vehicles(net *network.Network, r *network.Road) int {
	v, _ := net.Vehicles(r.From, r.To)
	return v
}
