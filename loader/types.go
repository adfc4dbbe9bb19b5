package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/roadload/logger"
	"github.com/katalvlaran/roadload/metrics"
	"github.com/katalvlaran/roadload/network"
	"github.com/katalvlaran/roadload/paths"
)

var (
	// ErrNegativeVehicles indicates a vehicle count below zero.
	ErrNegativeVehicles = fmt.Errorf("loader: negative vehicle count: %w", network.ErrConfiguration)

	// ErrNoPath indicates that source and sink are not connected.
	ErrNoPath = fmt.Errorf("loader: no path between source and sink: %w", network.ErrConfiguration)
)

// Step describes one loaded vehicle.
type Step struct {
	Index     int        `json:"index" yaml:"index"`           // 0-based vehicle number
	PathIndex int        `json:"path_index" yaml:"path_index"` // position in Result.Paths
	Path      paths.Path `json:"path" yaml:"path"`
	PathTime  float64    `json:"path_time" yaml:"path_time"`   // chosen path cost before commit
	TotalTime float64    `json:"total_time" yaml:"total_time"` // network TTS after commit
}

// Result is the outcome of one loading run.
type Result struct {
	RunID        string             `json:"run_id" yaml:"run_id"`
	Series       []float64          `json:"series" yaml:"series"`
	Paths        []paths.Path       `json:"paths" yaml:"paths"`
	PathCounts   []int              `json:"path_counts" yaml:"path_counts"`
	Flows        []network.RoadFlow `json:"flows" yaml:"flows"`
	FreeFlowTime float64            `json:"free_flow_time" yaml:"free_flow_time"`
	Elapsed      time.Duration      `json:"elapsed" yaml:"elapsed"`
}

// Final returns the last series entry, or 0 for an empty run.
func (r *Result) Final() float64 {
	if len(r.Series) == 0 {
		return 0
	}

	return r.Series[len(r.Series)-1]
}

// Vehicles returns the number of loaded vehicles.
func (r *Result) Vehicles() int { return len(r.Series) }

// Options configures Run.
type Options struct {
	Ctx      context.Context
	Logger   logger.Logger
	Sink     metrics.Sink
	Scenario string           // metrics label
	OnStep   func(Step) error // called after each step; an error aborts the run
	MaxPaths int              // forwarded to paths.WithMaxPaths; 0 = unlimited
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns a silent, uninstrumented configuration.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Logger:   logger.NopLogger{},
		Sink:     metrics.NopSink{},
		Scenario: "default",
	}
}

// WithContext sets a context checked between steps.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes run progress to l.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics reports every step to sink under the given scenario label.
func WithMetrics(sink metrics.Sink, scenario string) Option {
	return func(o *Options) {
		if sink != nil {
			o.Sink = sink
		}
		if scenario != "" {
			o.Scenario = scenario
		}
	}
}

// WithOnStep installs a per-step hook.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) { o.OnStep = fn }
}

// WithMaxPaths caps path enumeration; see paths.WithMaxPaths.
func WithMaxPaths(limit int) Option {
	return func(o *Options) { o.MaxPaths = limit }
}
