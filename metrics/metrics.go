// Package metrics records loading-run observations.
//
// The loader reports through the Sink interface; NopSink discards everything
// and PromSink exports Prometheus collectors.
package metrics

import "time"

// Sink receives loader events. Implementations must be safe for concurrent
// use because scenarios may run on parallel workers.
type Sink interface {
	// RecordVehicle is called once per loaded vehicle with the chosen path
	// (rendered as "0→1→3") and the total time spent after the commit.
	RecordVehicle(scenario, path string, totalTime float64)

	// RecordRun is called once after a run completes.
	RecordRun(scenario string, elapsed time.Duration)
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordVehicle(string, string, float64) {}
func (NopSink) RecordRun(string, time.Duration)       {}
