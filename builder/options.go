// SPDX-License-Identifier: MIT
// Package: roadload/builder
//
// options.go - functional options. Option constructors panic on nil inputs;
// constructors themselves return errors.

package builder

import "github.com/katalvlaran/roadload/network"

// DefaultCongestion is 1 + n/100: one time unit free-flow, slowing with load.
func DefaultCongestion(n int) float64 { return 1 + float64(n)/100 }

// Option customizes builderConfig.
type Option func(*builderConfig)

// builderConfig is resolved once per BuildEdges call.
type builderConfig struct {
	offset     network.Node
	congestion network.CongestionFunc
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{congestion: DefaultCongestion}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

// WithCongestion sets the congestion function used by Path, Parallel and Grid.
func WithCongestion(fn network.CongestionFunc) Option {
	if fn == nil {
		panic("builder: WithCongestion(nil)")
	}
	return func(c *builderConfig) { c.congestion = fn }
}

// WithOffset adds base to every generated node ID.
func WithOffset(base network.Node) Option {
	return func(c *builderConfig) { c.offset = base }
}
