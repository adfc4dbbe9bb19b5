// Package cmd implements the roadload command line.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadload/config"
	"github.com/katalvlaran/roadload/logger"
)

// app carries flag values shared by all subcommands.
type app struct {
	cfgPath  string
	logLevel string
	format   string
	braess   bool
	vehicles int
	series   bool

	out io.Writer
	err io.Writer
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd(os.Stdout, os.Stderr).Execute()
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, err: errOut}
	root := &cobra.Command{
		Use:           "roadload",
		Short:         "Incremental traffic loading simulator",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgPath, "config", "c", "roadload.yaml", "configuration file (.yaml, .json or .toml)")
	pf.StringVar(&a.logLevel, "log-level", "", "override log level")
	pf.StringVarP(&a.format, "output", "o", "", "override output format (json or yaml)")
	pf.BoolVar(&a.braess, "braess", false, "use the built-in Braess before/after scenarios instead of a config file")
	pf.IntVarP(&a.vehicles, "vehicles", "n", 4000, "vehicles per built-in scenario")

	root.AddCommand(a.runCmd(), a.compareCmd(), a.pathsCmd())

	return root
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// loadConfig reads the config file, or builds the Braess pair when --braess is set.
func (a *app) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if a.braess {
		cfg, err = config.Default()
		if err == nil {
			cfg.Scenarios = braessScenarios(a.vehicles)
			err = cfg.Validate()
		}
	} else {
		cfg, err = config.Load(a.cfgPath)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.format != "" {
		cfg.Output.Format = a.format
	}
	if err := cfg.Log.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Output.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (a *app) logger(cfg *config.Config, component string) logger.Logger {
	return logger.NewFormatted(a.err, component, cfg.Log.Level, cfg.Log.Format)
}

func braessScenarios(vehicles int) []config.ScenarioConfig {
	return []config.ScenarioConfig{
		{Name: "before", Source: 0, Sink: 3, Vehicles: vehicles, Topology: &config.TopologyConfig{Kind: "braess"}},
		{Name: "after", Source: 0, Sink: 3, Vehicles: vehicles, Topology: &config.TopologyConfig{Kind: "braess", Shortcut: true}},
	}
}
