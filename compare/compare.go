package compare

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/roadload/loader"
	"github.com/katalvlaran/roadload/logger"
	"github.com/katalvlaran/roadload/metrics"
	"github.com/katalvlaran/roadload/network"
)

// ErrNoScenarios indicates Run was called with an empty scenario list.
var ErrNoScenarios = fmt.Errorf("compare: no scenarios: %w", network.ErrConfiguration)

// Scenario is one independent loading configuration.
type Scenario struct {
	Name     string
	Edges    []network.Edge
	Source   network.Node
	Sink     network.Node
	Vehicles int
	MaxPaths int
}

// Outcome pairs a scenario name with its run result and summary.
type Outcome struct {
	Name   string         `json:"name" yaml:"name"`
	Result *loader.Result `json:"result" yaml:"result"`
	Stats  Stats          `json:"stats" yaml:"stats"`
}

// Options configures Run.
type Options struct {
	Workers int
	Logger  logger.Logger
	Sink    metrics.Sink
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions uses one worker per available CPU.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  logger.NopLogger{},
		Sink:    metrics.NopSink{},
	}
}

// WithWorkers sets the pool size. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithLogger forwards l to every run.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics forwards sink to every run, labelled with the scenario name.
func WithMetrics(sink metrics.Sink) Option {
	return func(o *Options) {
		if sink != nil {
			o.Sink = sink
		}
	}
}

// Run loads every scenario and returns their outcomes in input order.
// Failures of individual scenarios are joined into one error; in that case
// no outcomes are returned.
func Run(ctx context.Context, scenarios []Scenario, opts ...Option) ([]Outcome, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	pool, err := ants.NewPool(o.Workers)
	if err != nil {
		return nil, fmt.Errorf("compare: worker pool: %w", err)
	}
	defer pool.Release()

	out := make([]Outcome, len(scenarios))
	errs := make([]error, len(scenarios))
	var wg sync.WaitGroup

	for i := range scenarios {
		i, sc := i, scenarios[i]
		wg.Add(1)
		task := func() {
			defer wg.Done()
			out[i], errs[i] = runOne(ctx, sc, o)
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("compare: scenario %q: submit: %w", sc.Name, err)
		}
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return out, nil
}

func runOne(ctx context.Context, sc Scenario, o Options) (Outcome, error) {
	o.Logger.Debugf("scenario %q: %d vehicles %d→%d", sc.Name, sc.Vehicles, sc.Source, sc.Sink)
	res, err := loader.Run(sc.Edges, sc.Source, sc.Sink, sc.Vehicles,
		loader.WithContext(ctx),
		loader.WithLogger(o.Logger),
		loader.WithMetrics(o.Sink, sc.Name),
		loader.WithMaxPaths(sc.MaxPaths),
	)
	if err != nil {
		return Outcome{}, fmt.Errorf("compare: scenario %q: %w", sc.Name, err)
	}

	return Outcome{Name: sc.Name, Result: res, Stats: Summarize(res.Series)}, nil
}
