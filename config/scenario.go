package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/roadload/builder"
	"github.com/katalvlaran/roadload/compare"
	"github.com/katalvlaran/roadload/congestion"
	"github.com/katalvlaran/roadload/network"
)

// ScenarioConfig describes one loading run. The network is the optional
// generated topology followed by the explicit roads.
type ScenarioConfig struct {
	Name     string          `json:"name"`
	Source   network.Node    `json:"source"`
	Sink     network.Node    `json:"sink"`
	Vehicles int             `json:"vehicles"`
	MaxPaths int             `json:"max_paths"`
	Topology *TopologyConfig `json:"topology"`
	Roads    []RoadConfig    `json:"roads"`
}

// RoadConfig is one directed road.
type RoadConfig struct {
	From       network.Node    `json:"from"`
	To         network.Node    `json:"to"`
	Congestion congestion.Spec `json:"congestion"`
}

// TopologyConfig generates roads with the builder package.
// Kind is one of braess, path, parallel, grid.
type TopologyConfig struct {
	Kind       string           `json:"kind"`
	Shortcut   bool             `json:"shortcut"` // braess
	N          int              `json:"n"`        // path nodes, parallel routes
	Rows       int              `json:"rows"`
	Cols       int              `json:"cols"`
	Offset     network.Node     `json:"offset"`
	Congestion *congestion.Spec `json:"congestion"` // path, parallel, grid
}

// Validate checks the scenario without building congestion functions.
func (s ScenarioConfig) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: scenario name is required", ErrInvalid)
	}
	if s.Vehicles < 0 {
		return fmt.Errorf("%w: scenario %q: vehicles=%d", ErrInvalid, s.Name, s.Vehicles)
	}
	if s.MaxPaths < 0 {
		return fmt.Errorf("%w: scenario %q: max_paths=%d", ErrInvalid, s.Name, s.MaxPaths)
	}
	if s.Topology == nil && len(s.Roads) == 0 {
		return fmt.Errorf("%w: scenario %q has no roads", ErrInvalid, s.Name)
	}

	return nil
}

// Edges materialises the scenario's edge list.
func (s ScenarioConfig) Edges() ([]network.Edge, error) {
	var edges []network.Edge
	if s.Topology != nil {
		gen, err := s.Topology.edges()
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		edges = gen
	}
	for i, r := range s.Roads {
		fn, err := r.Congestion.Func()
		if err != nil {
			return nil, fmt.Errorf("scenario %q road %d (%d→%d): %w", s.Name, i, r.From, r.To, err)
		}
		edges = append(edges, network.Edge{From: r.From, To: r.To, Time: fn})
	}

	return edges, nil
}

// Compare converts the scenario for compare.Run.
func (s ScenarioConfig) Compare() (compare.Scenario, error) {
	edges, err := s.Edges()
	if err != nil {
		return compare.Scenario{}, err
	}

	return compare.Scenario{
		Name:     s.Name,
		Edges:    edges,
		Source:   s.Source,
		Sink:     s.Sink,
		Vehicles: s.Vehicles,
		MaxPaths: s.MaxPaths,
	}, nil
}

func (t TopologyConfig) edges() ([]network.Edge, error) {
	opts := []builder.Option{builder.WithOffset(t.Offset)}
	if t.Congestion != nil {
		fn, err := t.Congestion.Func()
		if err != nil {
			return nil, err
		}
		opts = append(opts, builder.WithCongestion(fn))
	}

	var cons builder.Constructor
	switch strings.ToLower(t.Kind) {
	case "braess":
		cons = builder.Braess(t.Shortcut)
	case "path":
		cons = builder.Path(t.N)
	case "parallel":
		cons = builder.Parallel(t.N)
	case "grid":
		cons = builder.Grid(t.Rows, t.Cols)
	default:
		return nil, fmt.Errorf("%w: topology kind %q", ErrInvalid, t.Kind)
	}

	return builder.BuildEdges(opts, cons)
}
