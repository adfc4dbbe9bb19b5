package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/roadload/network"
	"github.com/katalvlaran/roadload/paths"
	"github.com/katalvlaran/roadload/traveltime"
)

// ShortestTime returns the minimum travel time from source to sink under times,
// together with one path achieving it.
//
// Preconditions and validation (in order):
//  1. net and times must be non-nil.
//  2. source and sink must be nodes of net (ErrNodeNotFound).
//  3. No road time may be negative (ErrNegativeTime).
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the dense grid scan adding O(V²).
//   - Space: O(V + E)
func ShortestTime(net *network.Network, times *traveltime.Times, source, sink network.Node) (float64, paths.Path, error) {
	// 1) Validate pointers
	if net == nil {
		return 0, nil, ErrNilNetwork
	}
	if times == nil {
		return 0, nil, ErrNilTimes
	}

	// 2) Validate endpoints
	src, dst := net.Index(source), net.Index(sink)
	if src < 0 {
		return 0, nil, fmt.Errorf("%w: source %d", ErrNodeNotFound, source)
	}
	if dst < 0 {
		return 0, nil, fmt.Errorf("%w: sink %d", ErrNodeNotFound, sink)
	}

	// 3) Pre-scan road times
	for _, r := range net.Roads() {
		if t := times.At(r.From, r.To); t < 0 {
			return 0, nil, fmt.Errorf("%w: road %d→%d time=%g", ErrNegativeTime, r.From, r.To, t)
		}
	}

	// 4) Run
	r := newRunner(net, times, src)
	r.process(dst)

	if math.IsInf(r.dist[dst], 1) {
		return math.Inf(1), nil, nil
	}

	return r.dist[dst], r.path(dst), nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	net     *network.Network
	times   *traveltime.Times
	dist    []float64 // node position → best-known distance
	prev    []int     // node position → predecessor position, -1 if none
	visited []bool
	pq      nodePQ
}

func newRunner(net *network.Network, times *traveltime.Times, src int) *runner {
	n := net.NodeCount()
	r := &runner{
		net:     net,
		times:   times,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})

	return r
}

// process settles nodes in distance order until the heap drains or dst is settled.
func (r *runner) process(dst int) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true
		if u == dst {
			return
		}
		r.relax(u)
	}
}

// relax improves the distances of every road head leaving u.
func (r *runner) relax(u int) {
	n := r.net.NodeCount()
	for v := 0; v < n; v++ {
		if r.net.RoadAt(u, v) == nil || r.visited[v] {
			continue
		}
		w := r.times.AtIndex(u, v)
		if math.IsInf(w, 1) {
			continue // impassable at current flow
		}
		// Strict "<" keeps the first-found predecessor on ties.
		if nd := r.dist[u] + w; nd < r.dist[v] {
			r.dist[v] = nd
			r.prev[v] = u
			heap.Push(&r.pq, &nodeItem{idx: v, dist: nd})
		}
	}
}

// path walks prev back from dst.
func (r *runner) path(dst int) paths.Path {
	nodes := r.net.Nodes()
	var rev []network.Node
	for v := dst; v >= 0; v = r.prev[v] {
		rev = append(rev, nodes[v])
	}
	out := make(paths.Path, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}

	return out
}
