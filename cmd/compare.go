package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadload/compare"
)

type compareReport struct {
	Before scenarioReport `json:"before" yaml:"before"`
	After  scenarioReport `json:"after" yaml:"after"`
	Delta  deltaReport    `json:"delta" yaml:"delta"`
}

type deltaReport struct {
	FinalDelta number `json:"final_delta" yaml:"final_delta"`
	MeanDelta  number `json:"mean_delta" yaml:"mean_delta"`
	Ratio      number `json:"ratio" yaml:"ratio"`
	Paradox    bool   `json:"paradox" yaml:"paradox"`
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <before> <after>",
		Short: "Run two scenarios and report the change in total time spent",
		Long: "Run two scenarios and report the change in total time spent.\n" +
			"With --braess and no arguments the built-in before/after pair is used.",
		Args: func(cmd *cobra.Command, args []string) error {
			if a.braess && len(args) == 0 {
				return nil
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: a.compare,
	}
}

func (a *app) compare(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"before", "after"}
	}
	selected, err := selectScenarios(cfg, args)
	if err != nil {
		return err
	}

	outcomes, err := runScenarios(ctx, cfg, selected, a.logger(cfg, "compare"), nil)
	if err != nil {
		return err
	}
	d := compare.Diff(outcomes[0], outcomes[1])

	return encode(a.out, cfg.Output.Format, compareReport{
		Before: newScenarioReport(outcomes[0], false),
		After:  newScenarioReport(outcomes[1], false),
		Delta: deltaReport{
			FinalDelta: number(d.FinalDelta),
			MeanDelta:  number(d.MeanDelta),
			Ratio:      number(d.Ratio),
			Paradox:    d.Paradox,
		},
	})
}
