// SPDX-License-Identifier: MIT
// Package: roadload/builder
//
// api.go - the single orchestrator BuildEdges plus the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadload/network"
)

// Constructor appends roads for one topology to edges using cfg.
// Constructors validate parameters and return sentinel errors; they never panic.
type Constructor func(edges []network.Edge, cfg builderConfig) ([]network.Edge, error)

// BuildEdges resolves opts and applies every constructor in order.
// Constructor errors are wrapped with "BuildEdges: %w".
//
// Complexity: Σ cost of each constructor.
func BuildEdges(opts []Option, cons ...Constructor) ([]network.Edge, error) {
	cfg := newBuilderConfig(opts...)

	var edges []network.Edge
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		var err error
		if edges, err = fn(edges, cfg); err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return edges, nil
}

// MustBuild is BuildEdges for fixtures whose parameters are known to be valid.
// It panics on error.
func MustBuild(opts []Option, cons ...Constructor) []network.Edge {
	edges, err := BuildEdges(opts, cons...)
	if err != nil {
		panic(err)
	}

	return edges
}
