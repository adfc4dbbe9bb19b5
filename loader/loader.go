package loader

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/roadload/dijkstra"
	"github.com/katalvlaran/roadload/network"
	"github.com/katalvlaran/roadload/paths"
	"github.com/katalvlaran/roadload/selector"
	"github.com/katalvlaran/roadload/traveltime"
)

// run holds the state of one Run call.
type run struct {
	opts   Options
	net    *network.Network
	paths  []paths.Path
	counts []int
	series []float64
}

// Run loads vehicles onto the network described by edges, routing each one
// from source to sink along the currently fastest path.
//
// vehicles == 0 returns an empty series and leaves every road empty.
func Run(edges []network.Edge, source, sink network.Node, vehicles int, opts ...Option) (*Result, error) {
	// 1) Validate input and apply options
	if vehicles < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVehicles, vehicles)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	start := time.Now()

	// 2) Build network and enumerate paths once
	net, err := network.Build(edges)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	if !paths.Reachable(net, source, sink) {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, source, sink)
	}
	enumOpts := []paths.Option{paths.WithContext(o.Ctx)}
	if o.MaxPaths > 0 {
		enumOpts = append(enumOpts, paths.WithMaxPaths(o.MaxPaths))
	}
	candidates, err := paths.Enumerate(net, source, sink, enumOpts...)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, source, sink)
	}

	// 3) Free-flow reference time
	free, err := traveltime.RecomputeAll(net)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	freeFlow, _, err := dijkstra.ShortestTime(net, free, source, sink)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	runID := uuid.NewString()
	o.Logger.Infof("run %s scenario=%s: %d roads, %d paths, %d vehicles, free-flow time %g",
		runID, o.Scenario, net.RoadCount(), len(candidates), vehicles, freeFlow)

	r := &run{
		opts:   o,
		net:    net,
		paths:  candidates,
		counts: make([]int, len(candidates)),
		series: make([]float64, 0, vehicles),
	}

	// 4) Step
	for i := 0; i < vehicles; i++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("loader: step %d: %w", i, err)
		}
		if err := r.step(i); err != nil {
			return nil, err
		}
	}

	res := &Result{
		RunID:        runID,
		Series:       r.series,
		Paths:        r.paths,
		PathCounts:   r.counts,
		Flows:        net.Flows(),
		FreeFlowTime: freeFlow,
		Elapsed:      time.Since(start),
	}
	o.Sink.RecordRun(o.Scenario, res.Elapsed)
	o.Logger.Infof("run %s scenario=%s done in %s: final TTS %g", runID, o.Scenario, res.Elapsed, res.Final())

	return res, nil
}

// step loads vehicle i.
func (r *run) step(i int) error {
	// a) Times before commit
	before, err := traveltime.RecomputeAll(r.net)
	if err != nil {
		return fmt.Errorf("loader: step %d: %w", i, err)
	}

	// b) Fastest path
	best, idx, cost, err := selector.SelectWithCost(r.paths, before)
	if err != nil {
		return fmt.Errorf("loader: step %d: %w", i, err)
	}

	// c) Commit
	if err := best.Each(r.net.AddVehicle); err != nil {
		return fmt.Errorf("loader: step %d: %w", i, err)
	}
	r.counts[idx]++

	// d) Times after commit
	after, err := traveltime.RecomputeAll(r.net)
	if err != nil {
		return fmt.Errorf("loader: step %d: %w", i, err)
	}

	// e) Record
	total := traveltime.Total(r.net, after)
	r.series = append(r.series, total)

	r.opts.Sink.RecordVehicle(r.opts.Scenario, best.String(), total)
	r.opts.Logger.Debugw("vehicle loaded", map[string]any{
		"step": i, "path": best.String(), "path_time": cost, "tts": total,
	})

	if r.opts.OnStep != nil {
		s := Step{Index: i, PathIndex: idx, Path: best, PathTime: cost, TotalTime: total}
		if err := r.opts.OnStep(s); err != nil {
			return fmt.Errorf("loader: step %d hook: %w", i, err)
		}
	}

	return nil
}
