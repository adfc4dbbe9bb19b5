// File: network.go
// Role: Build plus the read/mutate surface used by the loader.
// Concurrency:
//   - Vehicle counts are mutated under mu write lock, read under mu read lock.
//   - Topology is immutable after Build.

package network

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Build constructs a Network from an ordered edge list.
//
// Steps:
//  1. Reject an empty list.
//  2. Validate every congestion function (non-nil, finite non-negative at flow 0).
//  3. Reject duplicate (from, to) pairs.
//  4. Collect sorted unique endpoints and index them.
//  5. Fill the adjacency grid.
//
// All roads start with zero vehicles.
// Complexity: O(E log E + V²).
func Build(edges []Edge) (*Network, error) {
	// 1) Empty input
	if len(edges) == 0 {
		return nil, ErrEmptyEdgeList
	}

	type pair struct{ from, to Node }
	seen := make(map[pair]struct{}, len(edges))
	roads := make([]*Road, 0, len(edges))
	nodeSet := make(map[Node]struct{}, 2*len(edges))

	for i, e := range edges {
		// 2) Congestion function must be callable and sane at zero flow
		if err := probe(e.Time); err != nil {
			return nil, fmt.Errorf("edge %d (%d→%d): %w", i, e.From, e.To, err)
		}

		// 3) One road per ordered pair
		k := pair{e.From, e.To}
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: %d→%d", ErrDuplicateRoad, e.From, e.To)
		}
		seen[k] = struct{}{}

		roads = append(roads, &Road{From: e.From, To: e.To, Time: e.Time})
		nodeSet[e.From] = struct{}{}
		nodeSet[e.To] = struct{}{}
	}

	// 4) Sorted node set and position index
	nodes := make([]Node, 0, len(nodeSet))
	for n := range nodeSet {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	index := make(map[Node]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}

	// 5) Dense adjacency grid
	adj := make([][]*Road, len(nodes))
	for i := range adj {
		adj[i] = make([]*Road, len(nodes))
	}
	for _, r := range roads {
		adj[index[r.From]][index[r.To]] = r
	}

	sort.Slice(roads, func(i, j int) bool {
		if roads[i].From != roads[j].From {
			return roads[i].From < roads[j].From
		}
		return roads[i].To < roads[j].To
	})

	return &Network{nodes: nodes, index: index, roads: roads, adj: adj}, nil
}

// probe checks that fn exists and returns a usable time for an empty road.
func probe(fn CongestionFunc) error {
	if fn == nil {
		return fmt.Errorf("%w: nil function", ErrBadCongestion)
	}
	t := fn(0)
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return fmt.Errorf("%w: f(0)=%g", ErrBadCongestion, t)
	}

	return nil
}

// Nodes returns a copy of the node set in ascending order.
func (n *Network) Nodes() []Node {
	out := make([]Node, len(n.nodes))
	copy(out, n.nodes)

	return out
}

// NodeCount reports the number of distinct nodes.
func (n *Network) NodeCount() int { return len(n.nodes) }

// RoadCount reports the number of roads.
func (n *Network) RoadCount() int { return len(n.roads) }

// HasNode reports whether id is an endpoint of some road.
func (n *Network) HasNode(id Node) bool {
	_, ok := n.index[id]
	return ok
}

// Index returns the position of id in Nodes(), or -1 if absent.
func (n *Network) Index(id Node) int {
	if i, ok := n.index[id]; ok {
		return i
	}

	return -1
}

// Neighbors returns the heads of all roads leaving id, in ascending node order.
// An unknown node has no neighbors.
func (n *Network) Neighbors(id Node) []Node {
	i, ok := n.index[id]
	if !ok {
		return nil
	}
	var out []Node
	for j, r := range n.adj[i] {
		if r != nil {
			out = append(out, n.nodes[j])
		}
	}

	return out
}

// Road returns the road from a to b.
// The returned pointer aliases network state; callers must not mutate it.
func (n *Network) Road(a, b Node) (*Road, error) {
	r := n.lookup(a, b)
	if r == nil {
		return nil, fmt.Errorf("%w: %d→%d", ErrRoadNotFound, a, b)
	}

	return r, nil
}

// HasRoad reports whether a road from a to b exists.
func (n *Network) HasRoad(a, b Node) bool { return n.lookup(a, b) != nil }

// Roads returns the roads ordered by (From, To).
// The returned pointers alias network state; callers must not mutate them.
func (n *Network) Roads() []*Road {
	out := make([]*Road, len(n.roads))
	copy(out, n.roads)

	return out
}

// TravelTime returns the current travel time from a to b, re-evaluating the
// road's congestion function at its current flow on every call.
// It returns +Inf when there is no road.
func (n *Network) TravelTime(a, b Node) float64 {
	r := n.lookup(a, b)
	if r == nil {
		return math.Inf(1)
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	return r.TravelTime()
}

// AddVehicle increments the flow on the road from a to b by one.
func (n *Network) AddVehicle(a, b Node) error {
	r := n.lookup(a, b)
	if r == nil {
		return fmt.Errorf("%w: %d→%d", ErrRoadNotFound, a, b)
	}
	n.mu.Lock()
	r.Vehicles++
	n.mu.Unlock()

	return nil
}

// Vehicles returns the current flow on the road from a to b.
func (n *Network) Vehicles(a, b Node) (int, error) {
	r := n.lookup(a, b)
	if r == nil {
		return 0, fmt.Errorf("%w: %d→%d", ErrRoadNotFound, a, b)
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	return r.Vehicles, nil
}

// TotalTime returns Σ vehicles × travel time over all roads, evaluating every
// congestion function at its current flow.
func (n *Network) TotalTime() float64 {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var total float64
	for _, r := range n.roads {
		if r.Vehicles == 0 {
			continue
		}
		total += float64(r.Vehicles) * r.TravelTime()
	}

	return total
}

// Flows returns a snapshot of every road's flow and current travel time.
func (n *Network) Flows() []RoadFlow {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]RoadFlow, len(n.roads))
	for i, r := range n.roads {
		out[i] = RoadFlow{From: r.From, To: r.To, Vehicles: r.Vehicles, Time: r.TravelTime()}
	}

	return out
}

// Reset sets every road's flow back to zero.
func (n *Network) Reset() {
	n.mu.Lock()
	for _, r := range n.roads {
		r.Vehicles = 0
	}
	n.mu.Unlock()
}

// String renders the roads as "0→1(n=3) 0→2(n=0) ...".
func (n *Network) String() string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var sb strings.Builder
	for i, r := range n.roads {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d→%d(n=%d)", r.From, r.To, r.Vehicles)
	}

	return sb.String()
}

// RoadAt returns the road between positions i and j of Nodes(), or nil.
// Out-of-range positions yield nil.
func (n *Network) RoadAt(i, j int) *Road {
	if i < 0 || j < 0 || i >= len(n.nodes) || j >= len(n.nodes) {
		return nil
	}

	return n.adj[i][j]
}

func (n *Network) lookup(a, b Node) *Road {
	i, ok := n.index[a]
	if !ok {
		return nil
	}
	j, ok := n.index[b]
	if !ok {
		return nil
	}

	return n.adj[i][j]
}
