package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadload/network"
	"github.com/katalvlaran/roadload/paths"
	"github.com/katalvlaran/roadload/traveltime"
)

type pathReport struct {
	Path     string         `json:"path" yaml:"path"`
	Nodes    []network.Node `json:"nodes" yaml:"nodes"`
	FreeFlow number         `json:"free_flow_time" yaml:"free_flow_time"`
}

func (a *app) pathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths <scenario>",
		Short: "List the simple paths of a scenario with their free-flow times",
		Args:  cobra.ExactArgs(1),
		RunE:  a.paths,
	}
}

func (a *app) paths(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	s, err := cfg.Scenario(args[0])
	if err != nil {
		return err
	}
	edges, err := s.Edges()
	if err != nil {
		return err
	}
	net, err := network.Build(edges)
	if err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	var opts []paths.Option
	if s.MaxPaths > 0 {
		opts = append(opts, paths.WithMaxPaths(s.MaxPaths))
	}
	found, err := paths.Enumerate(net, s.Source, s.Sink, opts...)
	if err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	times, err := traveltime.RecomputeAll(net)
	if err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	out := make([]pathReport, len(found))
	for i, p := range found {
		out[i] = pathReport{Path: p.String(), Nodes: p, FreeFlow: number(times.PathTime(p))}
	}

	return encode(a.out, cfg.Output.Format, out)
}
