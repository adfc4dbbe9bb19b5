// Package dijkstra computes the minimum travel time between two nodes of a
// network.Network over a frozen traveltime.Times snapshot.
//
// Overview:
//
//   - With non-negative times, the Dijkstra distance equals the minimum total
//     over all simple source→sink paths, i.e. what selector.Select finds by
//     exhaustive comparison. The loader uses it to report the free-flow travel
//     time; tests use it to cross-check the selector at every loading step.
//   - A min-heap with lazy decrease-key keeps the work at O((V + E) log V).
//   - Roads whose time is +Inf are treated as impassable.
//
// Errors (sentinel):
//
//   - ErrNilNetwork     network pointer is nil.
//   - ErrNilTimes       times pointer is nil.
//   - ErrNodeNotFound   source or sink is not a node of the network.
//   - ErrNegativeTime   a road time below zero was found in the snapshot.
//
// An unreachable sink is not an error: ShortestTime returns +Inf and a nil path.
package dijkstra
