// File: types.go
// Role: Node, Edge, Road, RoadFlow, Network and the error taxonomy.
// Determinism:
//   - Nodes are kept in ascending order; Roads() follows that order by (From, To).

package network

import (
	"errors"
	"fmt"
	"sync"
)

// Taxonomy roots. Every error produced by this module wraps one of these, so
// callers can branch with errors.Is(err, network.ErrConfiguration).
var (
	// ErrConfiguration indicates malformed caller input: bad edge lists, missing
	// paths, invalid vehicle counts and similar misconfiguration.
	ErrConfiguration = errors.New("configuration error")

	// ErrNotFound indicates a query or mutation against a road that does not exist.
	ErrNotFound = errors.New("not found")
)

// Sentinel errors for network construction and road access.
var (
	// ErrEmptyEdgeList indicates Build was called without any edges.
	ErrEmptyEdgeList = fmt.Errorf("network: edge list is empty: %w", ErrConfiguration)

	// ErrDuplicateRoad indicates two edges share the same ordered (from, to) pair.
	ErrDuplicateRoad = fmt.Errorf("network: duplicate road: %w", ErrConfiguration)

	// ErrBadCongestion indicates a nil congestion function or one that does not
	// produce a finite, non-negative travel time.
	ErrBadCongestion = fmt.Errorf("network: invalid congestion function: %w", ErrConfiguration)

	// ErrRoadNotFound indicates no road exists between the given ordered pair.
	ErrRoadNotFound = fmt.Errorf("network: road: %w", ErrNotFound)
)

// Node identifies an intersection. Nodes carry no attributes beyond identity.
type Node int

// CongestionFunc maps the number of vehicles on a road to its travel time.
// The network treats it as opaque; monotonicity is expected but not enforced.
type CongestionFunc func(flow int) float64

// Edge is one entry of the input edge list.
type Edge struct {
	From Node
	To   Node
	Time CongestionFunc
}

// Road is a directed edge together with its current vehicle count.
type Road struct {
	From Node
	To   Node

	// Time is the congestion function supplied at Build time.
	Time CongestionFunc

	// Vehicles is the current flow. It only ever grows, by one per commit.
	Vehicles int
}

// TravelTime evaluates the congestion function at the road's current flow.
func (r *Road) TravelTime() float64 { return r.Time(r.Vehicles) }

// RoadFlow is a read-only snapshot of one road.
type RoadFlow struct {
	From     Node    `json:"from" yaml:"from"`
	To       Node    `json:"to" yaml:"to"`
	Vehicles int     `json:"vehicles" yaml:"vehicles"`
	Time     float64 `json:"time" yaml:"time"`
}

// Network owns the road set, the sorted node set and the adjacency grid.
//
// mu guards Road.Vehicles; the topology (nodes, index, adj, roads) is immutable
// after Build and read without locking.
type Network struct {
	mu sync.RWMutex

	nodes []Node       // ascending
	index map[Node]int // node → position in nodes
	roads []*Road      // ordered by (From, To)

	// adj[i][j] is the road from nodes[i] to nodes[j], or nil.
	adj [][]*Road
}
