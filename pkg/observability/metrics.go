package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Attempt results.
const (
	ResultPassed = "passed"
	ResultFailed = "failed"
)

// Metrics collects counters for test runs. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry
	attempts *prometheus.CounterVec
	retries  *prometheus.CounterVec
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "detox",
				Subsystem: "test",
				Name:      "attempts_total",
				Help:      "Test runner launches by result.",
			},
			[]string{"runner", "result"},
		),
		retries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "detox",
				Subsystem: "test",
				Name:      "retries_total",
				Help:      "Launches that re-ran previously failed specs.",
			},
			[]string{"runner"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "detox",
				Subsystem: "test",
				Name:      "runs_total",
				Help:      "Completed test commands by final state.",
			},
			[]string{"runner", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "detox",
				Subsystem: "test",
				Name:      "attempt_duration_seconds",
				Help:      "Wall time of a single test runner launch.",
				Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200, 2400},
			},
			[]string{"runner"},
		),
	}
	m.registry.MustRegister(m.attempts, m.retries, m.runs, m.duration)
	return m
}

// ObserveAttempt records one launch. Attempts after the first count as retries.
func (m *Metrics) ObserveAttempt(runner string, attempt int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	result := ResultPassed
	if err != nil {
		result = ResultFailed
	}
	m.attempts.WithLabelValues(runner, result).Inc()
	if attempt > 1 {
		m.retries.WithLabelValues(runner).Inc()
	}
	m.duration.WithLabelValues(runner).Observe(elapsed.Seconds())
}

// ObserveOutcome records the final state of a test command.
func (m *Metrics) ObserveOutcome(runner, outcome string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(runner, outcome).Inc()
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
