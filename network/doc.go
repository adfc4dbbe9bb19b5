// Package network defines the road network that every loading run operates on:
// nodes, directed roads carrying a congestion function and a vehicle count, and a
// dense node×node adjacency grid indexed by node position.
//
// What:
//
//   - Build(edges): derive the sorted node set and adjacency from an edge list.
//   - TravelTime(a, b): evaluate a road's congestion function at its current flow.
//   - AddVehicle(a, b): commit one vehicle to a road.
//   - TotalTime(): Σ vehicles × travel time over all roads (total time spent).
//
// Topology is frozen after Build; only vehicle counts change afterwards. A fresh
// Network is built for every run, so two runs never observe each other's flows.
//
// Complexity:
//
//   - Build:      Time O(E log E + V²), Memory O(V² + E)
//   - TravelTime: Time O(1) plus one congestion-function call
//   - AddVehicle: Time O(1)
//   - TotalTime:  Time O(E)
//
// The dense grid suits the handful-of-nodes networks this package targets. For
// large sparse graphs swap the grid for per-node road lists; the contracts above
// stay the same.
//
// Errors:
//
//   - ErrConfiguration      root of every malformed-input error
//   - ErrEmptyEdgeList      Build got no edges
//   - ErrDuplicateRoad      two edges share the same (from, to) pair
//   - ErrBadCongestion      nil congestion function or invalid probe value
//   - ErrNotFound           root of every missing-road error
//   - ErrRoadNotFound       no road between the given ordered pair
package network
