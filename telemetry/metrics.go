package telemetry

import (
	"time"

	"github.com/evroute/evroute/config"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes run counters and duration histograms for the core's
// public operations (dijkstra_profile, fw_profile, fw_profile_with_history,
// cs_fw, cs_fw_final), registered under a configurable namespace and
// subsystem.
type Metrics struct {
	runs     *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
	stations prometheus.Gauge
}

// NewMetrics constructs and registers a Metrics against reg. Pass
// prometheus.NewRegistry() in tests to avoid colliding with the global
// default registry across parallel test runs.
func NewMetrics(cfg config.MetricsConfig, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "operation_runs_total",
			Help:      "Total number of core operation invocations, by operation name.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "operation_failures_total",
			Help:      "Total number of core operation invocations that returned an error.",
		}, []string{"operation"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "operation_duration_seconds",
			Help:      "Wall-clock duration of a core operation invocation.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 16),
		}, []string{"operation"}),
		stations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "cs_fw_stations_selected",
			Help:      "Number of charging stations selected by the most recent cs_fw run.",
		}),
	}
	reg.MustRegister(m.runs, m.failures, m.duration, m.stations)
	return m
}

// Observe records one invocation of operation, its duration, and whether
// it returned an error.
func (m *Metrics) Observe(operation string, d time.Duration, err error) {
	m.runs.WithLabelValues(operation).Inc()
	m.duration.WithLabelValues(operation).Observe(d.Seconds())
	if err != nil {
		m.failures.WithLabelValues(operation).Inc()
	}
}

// SetStationCount records the station count of the most recent cs_fw run.
func (m *Metrics) SetStationCount(n int) {
	m.stations.Set(float64(n))
}

// Track times fn, observing it under operation regardless of outcome,
// and returns fn's error.
func (m *Metrics) Track(operation string, fn func() error) error {
	start := time.Now()
	err := fn()
	m.Observe(operation, time.Since(start), err)
	return err
}
