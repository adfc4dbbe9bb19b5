package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadload/compare"
	"github.com/katalvlaran/roadload/config"
	"github.com/katalvlaran/roadload/logger"
	"github.com/katalvlaran/roadload/metrics"
)

func (a *app) runCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "run [scenario...]",
		Short: "Load vehicles onto the configured scenarios (all when none named)",
		RunE:  a.run,
	}
	c.Flags().BoolVar(&a.series, "series", false, "include the full total-time series in the output")

	return c
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	log := a.logger(cfg, "run")

	selected, err := selectScenarios(cfg, args)
	if err != nil {
		return err
	}

	sink, serve, err := a.metricsSink(cfg, log)
	if err != nil {
		return err
	}

	outcomes, err := runScenarios(ctx, cfg, selected, log, sink)
	if err != nil {
		return err
	}

	reports := make([]scenarioReport, len(outcomes))
	for i, o := range outcomes {
		reports[i] = newScenarioReport(o, a.series)
	}
	if err := encode(a.out, cfg.Output.Format, reports); err != nil {
		return err
	}

	if serve != nil {
		log.Infof("serving metrics on %s until interrupted", cfg.Metrics.Addr)
		return serve(ctx)
	}

	return nil
}

// metricsSink returns the Prometheus sink and a blocking server function when
// metrics are enabled.
func (a *app) metricsSink(cfg *config.Config, log logger.Logger) (metrics.Sink, func(context.Context) error, error) {
	if !cfg.Metrics.Enabled {
		return metrics.NopSink{}, nil, nil
	}
	reg := prometheus.NewRegistry()
	sink, err := metrics.NewPromSink(reg)
	if err != nil {
		return nil, nil, fmt.Errorf("prom sink: %w", err)
	}
	serve := func(ctx context.Context) error {
		if err := metrics.ServeGatherer(ctx, cfg.Metrics.Addr, reg); err != nil {
			log.Errorf("prom server: %v", err)
			return err
		}
		return nil
	}

	return sink, serve, nil
}

func selectScenarios(cfg *config.Config, names []string) ([]config.ScenarioConfig, error) {
	if len(names) == 0 {
		return cfg.Scenarios, nil
	}
	out := make([]config.ScenarioConfig, 0, len(names))
	var errs []error
	for _, n := range names {
		s, err := cfg.Scenario(n)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, s)
	}

	return out, errors.Join(errs...)
}

func runScenarios(ctx context.Context, cfg *config.Config, selected []config.ScenarioConfig, log logger.Logger, sink metrics.Sink) ([]compare.Outcome, error) {
	scenarios := make([]compare.Scenario, len(selected))
	for i, s := range selected {
		sc, err := s.Compare()
		if err != nil {
			return nil, err
		}
		scenarios[i] = sc
	}

	return compare.Run(ctx, scenarios,
		compare.WithWorkers(cfg.Workers),
		compare.WithLogger(log),
		compare.WithMetrics(sink),
	)
}
