package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/metrics"
)

// PromSink records search progress in Prometheus metrics.
type PromSink struct {
	genBest  *prometheus.GaugeVec
	genMean  *prometheus.GaugeVec
	runs     *prometheus.CounterVec
	runValue *prometheus.GaugeVec
	runTime  *prometheus.HistogramVec
}

// NewPromSink registers search metrics on the default Prometheus registerer.
// The /metrics server is started separately with StartPromServer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// that are already registered are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	genBest := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "search_generation_best_value",
		Help: "Best discounted value after the latest generation",
	}, []string{"instance"})
	genMean := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "search_generation_mean_value",
		Help: "Mean population value of the latest generation",
	}, []string{"instance"})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "search_runs_total",
		Help: "Total number of recorded solver runs",
	}, []string{"solver", "complete"})
	runValue := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "search_run_value",
		Help: "Final discounted value of the last run",
	}, []string{"solver", "instance"})
	runTime := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "search_run_duration_seconds",
		Help:    "Wall-clock duration of recorded runs",
		Buckets: prometheus.DefBuckets,
	}, []string{"solver"})

	if err := reg.Register(genBest); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			genBest = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(genMean); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			genMean = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(runValue); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runValue = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(runTime); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runTime = are.ExistingCollector.(*prometheus.HistogramVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{genBest: genBest, genMean: genMean, runs: runs, runValue: runValue, runTime: runTime}, nil
}

// RecordGeneration updates the per-generation gauges.
func (s *PromSink) RecordGeneration(ev coremetrics.GenerationEvent) error {
	s.genBest.WithLabelValues(ev.Instance).Set(ev.BestValue)
	s.genMean.WithLabelValues(ev.Instance).Set(ev.MeanValue)
	return nil
}

// RecordRun counts the run and records its value and duration.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	s.runs.WithLabelValues(ev.Solver, strconv.FormatBool(ev.Complete)).Inc()
	s.runValue.WithLabelValues(ev.Solver, ev.Instance).Set(ev.Value)
	s.runTime.WithLabelValues(ev.Solver).Observe(ev.Duration.Seconds())
	return nil
}
