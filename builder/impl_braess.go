// SPDX-License-Identifier: MIT
// Package: roadload/builder
//
// impl_braess.go - the Braess diamond.
//
//	    n/100      45
//	  0 ─────▶ 1 ─────▶ 3
//	  │        │5       ▲
//	  │ 45     ▼  n/100 │
//	  └──────▶ 2 ───────┘
//
// Roads: 0→1 n/100, 0→2 45, 1→3 45, 2→3 n/100, optional shortcut 1→2 5.

package builder

import "github.com/katalvlaran/roadload/network"

// Braess travel-time constants.
const (
	BraessFixedTime    = 45.0
	BraessShortcutTime = 5.0
	BraessSlope        = 0.01
)

// Braess returns a Constructor for the Braess diamond with source offset+0
// and sink offset+3. Congestion functions are fixed; WithCongestion is ignored.
func Braess(shortcut bool) Constructor {
	return func(edges []network.Edge, cfg builderConfig) ([]network.Edge, error) {
		o := cfg.offset
		variable := func(n int) float64 { return float64(n) * BraessSlope }
		fixed := func(int) float64 { return BraessFixedTime }

		edges = append(edges,
			network.Edge{From: o + 0, To: o + 1, Time: variable},
			network.Edge{From: o + 0, To: o + 2, Time: fixed},
			network.Edge{From: o + 1, To: o + 3, Time: fixed},
			network.Edge{From: o + 2, To: o + 3, Time: variable},
		)
		if shortcut {
			edges = append(edges, network.Edge{
				From: o + 1, To: o + 2,
				Time: func(int) float64 { return BraessShortcutTime },
			})
		}

		return edges, nil
	}
}
