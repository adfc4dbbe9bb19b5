// SPDX-License-Identifier: MIT
// Package builder produces edge lists for canonical road topologies, so tests,
// benchmarks and the CLI share one deterministic source of networks.
//
// Constructors:
//
//   - Braess(shortcut):  the four-road diamond 0→{1,2}→3, optionally with the
//     1→2 shortcut that triggers Braess's paradox.
//   - Path(n):           chain 0→1→…→n-1.
//   - Parallel(k):       k disjoint two-road routes 0→i→k+1.
//   - Grid(rows, cols):  east/south lattice; node r·cols+c.
//
// Constructors compose through BuildEdges; WithOffset shifts node IDs and
// WithCongestion sets the travel-time function for generated roads.
//
// Determinism: the same options and constructor order always yield the same
// edge list in the same order.
package builder
