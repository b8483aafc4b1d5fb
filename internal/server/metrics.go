// Package server exposes Prometheus metrics for long-running benchmark loops.
// It is only active in serve mode (--listen); the one-shot CLI run and the
// bare kernel binaries have no network surface.
package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the suite's Prometheus collectors behind a dedicated
// registry, so tests and embedded use never collide with the global default
// registry.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	runsTotal   *prometheus.CounterVec
	activeRuns  prometheus.Gauge
	runDuration *prometheus.HistogramVec
}

// NewMetrics creates the registry, registers the suite collectors plus the
// standard Go runtime collector, and prepares the HTTP handler.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ubench_runs_total",
			Help: "Total number of benchmark runs, labeled by kernel and outcome.",
		}, []string{"bench", "status"}),
		activeRuns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ubench_active_runs",
			Help: "Number of benchmark runs currently executing.",
		}),
		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "ubench_run_duration_seconds",
			Help: "Wall time of benchmark runs, labeled by kernel.",
			// The kernels complete in microseconds; the default buckets
			// would collapse everything into the first one.
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"bench"}),
	}

	reg.MustRegister(m.runsTotal, m.activeRuns, m.runDuration)
	reg.MustRegister(collectors.NewGoCollector())

	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// RunStarted records the start of a benchmark run.
func (m *Metrics) RunStarted() {
	m.activeRuns.Inc()
}

// RunFinished records the completion of a benchmark run.
//
// Parameters:
//   - bench: The kernel name.
//   - duration: The wall time of the run.
//   - err: The run error, nil on success.
func (m *Metrics) RunFinished(bench string, duration time.Duration, err error) {
	m.activeRuns.Dec()
	status := "success"
	if err != nil {
		status = "error"
	}
	m.runsTotal.WithLabelValues(bench, status).Inc()
	if err == nil {
		m.runDuration.WithLabelValues(bench).Observe(duration.Seconds())
	}
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
