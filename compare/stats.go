package compare

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises a total-time-spent series.
type Stats struct {
	Vehicles int     `json:"vehicles" yaml:"vehicles"`
	Final    float64 `json:"final" yaml:"final"`
	Mean     float64 `json:"mean" yaml:"mean"`
	Max      float64 `json:"max" yaml:"max"`
	StdDev   float64 `json:"std_dev" yaml:"std_dev"`
}

// Summarize computes Stats for series. An empty series yields zero Stats;
// a single entry has zero deviation.
func Summarize(series []float64) Stats {
	n := len(series)
	if n == 0 {
		return Stats{}
	}
	s := Stats{
		Vehicles: n,
		Final:    series[n-1],
		Mean:     stat.Mean(series, nil),
		Max:      floats.Max(series),
	}
	if n > 1 {
		s.StdDev = stat.StdDev(series, nil)
	}

	return s
}

// Delta relates an "after" run to a "before" run.
type Delta struct {
	FinalDelta float64 `json:"final_delta" yaml:"final_delta"` // after.Final - before.Final
	MeanDelta  float64 `json:"mean_delta" yaml:"mean_delta"`
	Ratio      float64 `json:"ratio" yaml:"ratio"` // after.Final / before.Final, NaN if before.Final is 0
	Paradox    bool    `json:"paradox" yaml:"paradox"`
}

// Diff compares two outcomes. Paradox is set when after offers every path of
// before (plus possibly more) and still ends with a higher total time.
func Diff(before, after Outcome) Delta {
	d := Delta{
		FinalDelta: after.Stats.Final - before.Stats.Final,
		MeanDelta:  after.Stats.Mean - before.Stats.Mean,
		Ratio:      math.NaN(),
	}
	if before.Stats.Final != 0 {
		d.Ratio = after.Stats.Final / before.Stats.Final
	}
	if before.Result != nil && after.Result != nil && d.FinalDelta > 0 {
		d.Paradox = supersetPaths(before, after)
	}

	return d
}

// supersetPaths reports whether every path of before is also a path of after.
func supersetPaths(before, after Outcome) bool {
	have := make(map[string]struct{}, len(after.Result.Paths))
	for _, p := range after.Result.Paths {
		have[p.String()] = struct{}{}
	}
	for _, p := range before.Result.Paths {
		if _, ok := have[p.String()]; !ok {
			return false
		}
	}

	return true
}
