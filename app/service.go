// Package app wires configuration, model loading, solvers, metrics and
// history persistence into one runnable scheduling pipeline.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/config"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/economics"
	corehistory "github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/history"
	coremetrics "github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/metrics"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/solver"
	_ "github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/infra/history"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/infra/logger"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/infra/metrics"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/infra/minelib"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/internal/progress"
)

// Service runs the full scheduling pipeline for one instance.
type Service struct {
	cfg   *config.Config
	log   logger.Logger
	sink  coremetrics.MetricsSink
	store corehistory.Store
}

// Summary is the outcome of a full run: the baseline reference, the genetic
// result and their comparison.
type Summary struct {
	Instance       string                    `json:"instance"`
	RunID          string                    `json:"run_id"`
	Baseline       solver.BaselineResult     `json:"baseline"`
	Genetic        solver.Result             `json:"genetic"`
	Valuation      economics.Valuation       `json:"valuation"`
	Plan           []economics.Assignment    `json:"plan"`
	ByPeriod       []economics.PeriodSummary `json:"by_period"`
	ImprovementPct float64                   `json:"improvement_pct"`
	Duration       time.Duration             `json:"duration"`
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	store, err := corehistory.NewStore(cfg.History.ModuleConfig())
	if err != nil {
		return nil, fmt.Errorf("history store: %w", err)
	}
	return &Service{cfg: cfg, log: logger.New("service"), sink: sink, store: store}, nil
}

// Run loads the instance, schedules it with the baseline and the genetic
// solver, persists the convergence history and returns the comparison.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	runID := uuid.NewString()
	instance := InstanceName(s.cfg.Instance)

	s.log.Infof("loading instance %s", s.cfg.Instance)
	m, err := minelib.LoadModel(s.cfg.Instance)
	if err != nil {
		return nil, fmt.Errorf("load instance: %w", err)
	}
	eval, err := economics.NewEvaluator(m, s.cfg.Evaluator)
	if err != nil {
		return nil, fmt.Errorf("evaluator: %w", err)
	}

	if s.cfg.Metrics.PrometheusAddr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	base := solver.NewBaselineScheduler(m, eval, s.cfg.Solver.Seed,
		solver.Options{Logger: logger.New("baseline"), Instance: instance})
	baseRes := base.Run()

	bus := progress.NewBus()
	defer bus.Close()
	ga, err := solver.NewGeneticScheduler(m, eval, s.cfg.Solver,
		solver.Options{Logger: logger.New("genetic"), Bus: bus, RunID: runID, Instance: instance})
	if err != nil {
		return nil, fmt.Errorf("genetic scheduler: %w", err)
	}
	metrics.StartProgressCollector(ctx, bus, s.sink, instance)

	gaRes, err := ga.Run(ctx)
	if err != nil {
		return nil, err
	}

	val, plan := eval.Plan(gaRes.Best)
	s.recordRuns(instance, runID, m.Len(), baseRes, gaRes, val)

	recs := make([]corehistory.Record, len(gaRes.History))
	now := time.Now()
	for i, v := range gaRes.History {
		recs[i] = corehistory.Record{
			RunID:      runID,
			Instance:   instance,
			Generation: i + 1,
			BestValue:  v,
			CreatedAt:  now,
		}
	}
	if err := s.store.Append(ctx, recs); err != nil {
		s.log.Errorf("history append: %v", err)
	}

	improvement := 0.0
	if baseRes.Valuation.Value != 0 {
		improvement = (gaRes.Value - baseRes.Valuation.Value) / baseRes.Valuation.Value * 100
	} else {
		s.log.Warnf("baseline value is zero, improvement undefined")
	}
	summary := &Summary{
		Instance:       instance,
		RunID:          runID,
		Baseline:       baseRes,
		Genetic:        gaRes,
		Valuation:      val,
		Plan:           plan,
		ByPeriod:       eval.Summarize(plan),
		ImprovementPct: improvement,
		Duration:       time.Since(start),
	}
	s.log.Infof("run %s done: baseline=%.2f genetic=%.2f improvement=%.2f%% duration=%s",
		runID, baseRes.Valuation.Value, gaRes.Value, improvement, summary.Duration)
	return summary, nil
}

// recordRuns pushes one run-level event per solver to sinks that take them.
func (s *Service) recordRuns(instance, runID string, blocks int,
	baseRes solver.BaselineResult, gaRes solver.Result, val economics.Valuation) {
	rr, ok := s.sink.(coremetrics.RunRecorder)
	if !ok {
		return
	}
	now := time.Now()
	events := []coremetrics.RunEvent{
		{
			RunID:       runID,
			Instance:    instance,
			Solver:      solver.SolverBaseline,
			Value:       baseRes.Valuation.Value,
			Blocks:      blocks,
			Periods:     baseRes.Valuation.Periods,
			Evaluations: 1,
			Complete:    baseRes.Complete,
			Duration:    baseRes.Duration,
			Time:        now,
		},
		{
			RunID:       runID,
			Instance:    instance,
			Solver:      solver.SolverGenetic,
			Value:       gaRes.Value,
			Generations: gaRes.Generations,
			Blocks:      blocks,
			Periods:     val.Periods,
			Evaluations: gaRes.Evaluations,
			Complete:    val.Skipped == 0,
			Duration:    gaRes.Duration,
			Time:        now,
		},
	}
	for _, ev := range events {
		if err := rr.RecordRun(ev); err != nil {
			s.log.Errorf("record run %s: %v", ev.Solver, err)
		}
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error { return s.store.Close() }

// InstanceName is the file base name without extension, the key under which
// runs are stored and tagged.
func InstanceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
