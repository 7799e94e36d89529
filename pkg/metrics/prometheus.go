// Package metrics exposes Prometheus instrumentation for the solver core:
// one counter/histogram pair per solver family, plus model-size and
// iteration-count observations used to watch for degenerate inputs.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the process-wide metrics container.
type Metrics struct {
	SolveOperationsTotal *prometheus.CounterVec
	SolveDuration        *prometheus.HistogramVec
	SolveIterations       *prometheus.HistogramVec
	ModelVariablesTotal   *prometheus.HistogramVec
	ModelConstraintsTotal *prometheus.HistogramVec

	ServiceInfo *prometheus.GaugeVec
}

var defaultMetrics *Metrics

// InitMetrics initializes the process-wide metrics container under the
// given namespace/subsystem.
func InitMetrics(namespace, subsystem string) *Metrics {
	m := &Metrics{
		SolveOperationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solve_operations_total",
				Help:      "Total number of solve operations by family, method, and outcome",
			},
			[]string{"family", "method", "status"},
		),

		SolveDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solve_duration_seconds",
				Help:      "Duration of solve operations",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5, 10},
			},
			[]string{"family", "method"},
		),

		SolveIterations: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "solve_iterations",
				Help:      "Number of pivot/augmentation iterations a solve required",
				Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
			},
			[]string{"family", "method"},
		),

		ModelVariablesTotal: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "model_variables_total",
				Help:      "Number of decision variables (or nodes, for network models) in solved models",
				Buckets:   []float64{1, 5, 10, 25, 50, 100, 500, 1000, 5000},
			},
			[]string{"family"},
		),

		ModelConstraintsTotal: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "model_constraints_total",
				Help:      "Number of constraints (or edges, for network models) in solved models",
				Buckets:   []float64{1, 5, 10, 25, 50, 100, 500, 1000, 5000},
			},
			[]string{"family"},
		),

		ServiceInfo: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "service_info",
				Help:      "Solver core build information",
			},
			[]string{"version", "environment"},
		),
	}

	defaultMetrics = m
	return m
}

// Get returns the process-wide metrics container, initializing it with
// defaults on first use.
func Get() *Metrics {
	if defaultMetrics == nil {
		return InitMetrics("opticore", "")
	}
	return defaultMetrics
}

// RecordSolveOperation records a completed solve: its family (lp, transport,
// network), the method used, whether it succeeded, and how long it took.
func (m *Metrics) RecordSolveOperation(family, method string, success bool, duration time.Duration, iterations int) {
	status := "success"
	if !success {
		status = "error"
	}

	m.SolveOperationsTotal.WithLabelValues(family, method, status).Inc()
	m.SolveDuration.WithLabelValues(family, method).Observe(duration.Seconds())
	m.SolveIterations.WithLabelValues(family, method).Observe(float64(iterations))
}

// RecordModelSize records the size of a model entering a solve.
func (m *Metrics) RecordModelSize(family string, variables, constraints int) {
	m.ModelVariablesTotal.WithLabelValues(family).Observe(float64(variables))
	m.ModelConstraintsTotal.WithLabelValues(family).Observe(float64(constraints))
}

// SetServiceInfo sets the build information gauge.
func (m *Metrics) SetServiceInfo(version, environment string) {
	m.ServiceInfo.WithLabelValues(version, environment).Set(1)
}

// Handler returns the HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// StartMetricsServer starts an HTTP server exposing /metrics and /health.
func StartMetricsServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return server.ListenAndServe()
}
