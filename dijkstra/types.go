package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/roadload/network"
)

// Sentinel errors returned by ShortestTime.
var (
	// ErrNilNetwork indicates that a nil *network.Network was passed.
	ErrNilNetwork = fmt.Errorf("dijkstra: network is nil: %w", network.ErrConfiguration)

	// ErrNilTimes indicates that a nil *traveltime.Times was passed.
	ErrNilTimes = fmt.Errorf("dijkstra: travel times are nil: %w", network.ErrConfiguration)

	// ErrNodeNotFound indicates that source or sink is absent from the network.
	ErrNodeNotFound = fmt.Errorf("dijkstra: node: %w", network.ErrNotFound)

	// ErrNegativeTime indicates a negative road time in the snapshot.
	ErrNegativeTime = fmt.Errorf("dijkstra: negative travel time: %w", network.ErrConfiguration)
)

// nodeItem is a node position and its tentative distance from the source.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by idx so equal
// distances pop in ascending node order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by node position.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
