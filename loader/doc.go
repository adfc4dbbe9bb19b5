// Package loader runs incremental traffic loading on a road network.
//
// What:
//
//	Run adds vehicles one at a time between a fixed source and sink. Each
//	vehicle takes the currently fastest simple path, which raises the flow and
//	therefore the travel time of every road on it. After each vehicle the total
//	time spent (TTS, Σ flow × travel time over all roads) is appended to a
//	series of length exactly equal to the vehicle count.
//
// Why:
//
//	Comparing TTS series of two topologies shows how an added road changes
//	the greedy assignment. On the Braess network the shortcut makes everyone
//	worse off.
//
// Step order (per vehicle):
//  1. Recompute every road time from current flows.
//  2. Select the fastest enumerated path (ties → first enumerated).
//  3. Commit one vehicle to every road of that path.
//  4. Recompute every road time again.
//  5. Append the network total to the series.
//
// Complexity:
//
//   - Enumeration once: exponential in the worst case, fine for small networks.
//   - Per step: O(V² + E + P·L) for P paths of at most L roads.
//
// Errors:
//
//   - ErrNegativeVehicles  vehicle count below zero.
//   - ErrNoPath            no path connects source and sink.
//   - Any error from network.Build, paths.Enumerate or the step hook.
//
// All errors abort the run and no partial Result is returned. Every run
// builds its own network, so independent runs never share state.
package loader
