package solver

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	runsTotal        *prometheus.CounterVec
	generationsTotal prometheus.Counter
	evaluationsTotal prometheus.Counter
	bestValue        *prometheus.GaugeVec
	runSeconds       *prometheus.HistogramVec
)

// newCollectors creates new metric collectors.
func newCollectors() (*prometheus.CounterVec, prometheus.Counter, prometheus.Counter, *prometheus.GaugeVec, *prometheus.HistogramVec) {
	runs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solver_runs_total",
			Help: "Number of completed solver runs",
		},
		[]string{"solver"},
	)
	gens := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "solver_generations_total",
			Help: "Number of genetic generations completed",
		},
	)
	evals := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "solver_evaluations_total",
			Help: "Number of sequence evaluations performed",
		},
	)
	best := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "solver_best_value",
			Help: "Best discounted value found so far",
		},
		[]string{"solver", "instance"},
	)
	dur := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solver_run_duration_seconds",
			Help:    "Wall-clock duration of solver runs",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"solver"},
	)
	return runs, gens, evals, best, dur
}

func init() {
	runsTotal, generationsTotal, evaluationsTotal, bestValue, runSeconds = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers solver metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(runsTotal, generationsTotal, evaluationsTotal, bestValue, runSeconds)
}

// ResetMetrics reinitializes metric collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	runsTotal, generationsTotal, evaluationsTotal, bestValue, runSeconds = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
