// SPDX-License-Identifier: MIT
// Package: roadload/builder
//
// impl_path.go - Path(n) and Parallel(k).

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadload/network"
)

const (
	methodPath       = "Path"
	methodParallel   = "Parallel"
	minPathNodes     = 2
	minParallelRoute = 1
)

// Path returns a Constructor for the chain offset+0 → … → offset+n-1.
func Path(n int) Constructor {
	return func(edges []network.Edge, cfg builderConfig) ([]network.Edge, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		for i := 1; i < n; i++ {
			edges = append(edges, network.Edge{
				From: cfg.offset + network.Node(i-1),
				To:   cfg.offset + network.Node(i),
				Time: cfg.congestion,
			})
		}

		return edges, nil
	}
}

// Parallel returns a Constructor for k disjoint routes offset+0 → offset+i →
// offset+k+1, i = 1..k. Both roads of each route use the configured congestion.
func Parallel(k int) Constructor {
	return func(edges []network.Edge, cfg builderConfig) ([]network.Edge, error) {
		if k < minParallelRoute {
			return nil, fmt.Errorf("%s: k=%d < min=%d: %w", methodParallel, k, minParallelRoute, ErrTooFewNodes)
		}
		src, dst := cfg.offset, cfg.offset+network.Node(k+1)
		for i := 1; i <= k; i++ {
			mid := cfg.offset + network.Node(i)
			edges = append(edges,
				network.Edge{From: src, To: mid, Time: cfg.congestion},
				network.Edge{From: mid, To: dst, Time: cfg.congestion},
			)
		}

		return edges, nil
	}
}
