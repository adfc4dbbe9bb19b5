// Package traveltime evaluates every road's congestion function at its current
// flow and exposes the result as a dense node×node matrix.
//
// RecomputeAll pays the full evaluation cost on every call; nothing is cached
// between calls because flows change after every committed vehicle. Cells without
// a road hold +Inf, so summing times along a non-existent hop yields +Inf.
//
// The matrix is a gonum mat.Dense indexed by network.Network.Index positions.
package traveltime
