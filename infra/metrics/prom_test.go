package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/metrics"
)

func TestPromSink_RecordGeneration(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink, ok := sinkIf.(*PromSink)
	if !ok {
		t.Fatalf("expected PromSink")
	}
	ev := coremetrics.GenerationEvent{
		RunID:      "run-1",
		Instance:   "marvin",
		Generation: 3,
		BestValue:  120.5,
		MeanValue:  96.25,
		Time:       time.Now(),
	}
	if err := sink.RecordGeneration(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP search_generation_best_value Best discounted value after the latest generation
# TYPE search_generation_best_value gauge
search_generation_best_value{instance="marvin"} 120.5
`
	if err := testutil.CollectAndCompare(sink.genBest, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}

	expectedMean := `
# HELP search_generation_mean_value Mean population value of the latest generation
# TYPE search_generation_mean_value gauge
search_generation_mean_value{instance="marvin"} 96.25
`
	if err := testutil.CollectAndCompare(sink.genMean, strings.NewReader(expectedMean)); err != nil {
		t.Errorf("unexpected mean metric: %v", err)
	}
}

func TestPromSink_RecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("create sink: %v", err)
	}
	sink, ok := sinkIf.(*PromSink)
	if !ok {
		t.Fatalf("expected PromSink")
	}
	ev := coremetrics.RunEvent{
		RunID:       "run-1",
		Instance:    "marvin",
		Solver:      "genetic",
		Value:       1523.75,
		Generations: 50,
		Complete:    true,
		Duration:    2 * time.Second,
		Time:        time.Now(),
	}
	if err := sink.RecordRun(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP search_runs_total Total number of recorded solver runs
# TYPE search_runs_total counter
search_runs_total{complete="true",solver="genetic"} 1
`
	if err := testutil.CollectAndCompare(sink.runs, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}

	expectedValue := `
# HELP search_run_value Final discounted value of the last run
# TYPE search_run_value gauge
search_run_value{instance="marvin",solver="genetic"} 1523.75
`
	if err := testutil.CollectAndCompare(sink.runValue, strings.NewReader(expectedValue)); err != nil {
		t.Errorf("unexpected value metric: %v", err)
	}

	if c := testutil.CollectAndCount(sink.runTime); c == 0 {
		t.Errorf("duration not recorded")
	}
}

func TestNewPromSinkWithRegistry_Reregister(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("first sink: %v", err)
	}
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("second sink should reuse collectors: %v", err)
	}
}
