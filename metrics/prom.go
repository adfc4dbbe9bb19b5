package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records loader events in Prometheus metrics.
type PromSink struct {
	vehicles *prometheus.CounterVec
	selected *prometheus.CounterVec
	tts      *prometheus.GaugeVec
	duration *prometheus.HistogramVec
}

// NewPromSink registers the loader metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the collectors
// are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	vehicles := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roadload_vehicles_loaded_total",
		Help: "Total number of vehicles loaded onto the network",
	}, []string{"scenario"})
	selected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roadload_path_selected_total",
		Help: "Number of times each path was chosen as shortest",
	}, []string{"scenario", "path"})
	tts := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "roadload_total_time_spent",
		Help: "Total time spent by all loaded vehicles after the latest step",
	}, []string{"scenario"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roadload_run_duration_seconds",
		Help:    "Wall-clock duration of a loading run",
		Buckets: prometheus.DefBuckets,
	}, []string{"scenario"})

	var err error
	if vehicles, err = register(reg, vehicles); err != nil {
		return nil, err
	}
	if selected, err = register(reg, selected); err != nil {
		return nil, err
	}
	if tts, err = register(reg, tts); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}

	return &PromSink{vehicles: vehicles, selected: selected, tts: tts, duration: duration}, nil
}

// register adds c to reg, returning the already registered collector if any.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}

	return c, nil
}

// RecordVehicle increments the vehicle and path counters and sets the TTS gauge.
func (s *PromSink) RecordVehicle(scenario, path string, totalTime float64) {
	s.vehicles.WithLabelValues(scenario).Inc()
	s.selected.WithLabelValues(scenario, path).Inc()
	s.tts.WithLabelValues(scenario).Set(totalTime)
}

// RecordRun observes the run duration histogram.
func (s *PromSink) RecordRun(scenario string, elapsed time.Duration) {
	s.duration.WithLabelValues(scenario).Observe(elapsed.Seconds())
}
