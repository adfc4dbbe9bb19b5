// Package paths enumerates every simple directed path between two nodes of a
// network.Network.
//
// What:
//
//   - Enumerate(net, source, sink, opts...): depth-first search from source that
//     extends the current path with any neighbor not already on it, recording the
//     path whenever sink is reached. Neighbors are visited in ascending node order,
//     so the returned order is the discovery order and is identical across calls.
//   - Hops(net, source, sink) / Reachable: breadth-first road count, used to
//     reject disconnected endpoints before the exponential enumeration starts.
//
// Why:
//
//   - The incremental loader needs the complete candidate set once per run; the
//     topology is static, so only the travel times over these paths change.
//
// Options:
//
//   - WithContext(ctx)     abort enumeration when ctx is done.
//   - WithMaxDepth(d)      ignore paths with more than d roads (d ≥ 0).
//   - WithMaxPaths(n)      fail with ErrPathLimit once more than n paths exist.
//
// Complexity:
//
//   - Time:   O(P·V) for P simple paths; P is exponential in general graphs.
//   - Memory: O(V) recursion plus the returned paths.
//
// Enumeration is meant for small networks. On lattices or dense graphs set
// WithMaxPaths to bound the work.
//
// Errors:
//
//   - ErrNilNetwork   net is nil
//   - ErrPathLimit    more than MaxPaths paths exist
//   - ctx.Err()       enumeration canceled
package paths
