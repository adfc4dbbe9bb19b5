// SPDX-License-Identifier: MIT
// Package: roadload/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows, cols ≥ 1 and rows·cols ≥ 2 (else ErrTooFewNodes).
//   - Node (r, c) is offset + r·cols + c.
//   - Roads point east (c→c+1) and south (r→r+1), emitted row-major.
//   - Source offset+0 reaches sink offset+rows·cols-1 by C(rows+cols-2, rows-1) paths.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadload/network"
)

const methodGrid = "Grid"

// Grid returns a Constructor for a directed east/south lattice.
func Grid(rows, cols int) Constructor {
	return func(edges []network.Edge, cfg builderConfig) ([]network.Edge, error) {
		if rows < 1 || cols < 1 || rows*cols < minPathNodes {
			return nil, fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewNodes)
		}
		id := func(r, c int) network.Node { return cfg.offset + network.Node(r*cols+c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					edges = append(edges, network.Edge{From: id(r, c), To: id(r, c+1), Time: cfg.congestion})
				}
				if r+1 < rows {
					edges = append(edges, network.Edge{From: id(r, c), To: id(r+1, c), Time: cfg.congestion})
				}
			}
		}

		return edges, nil
	}
}
