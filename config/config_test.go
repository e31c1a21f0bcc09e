package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `instance: "pits/marvin.csv"
solver:
  population_size: 80
  generations: 120
  mutation_rate: 0.1
  seed: 7
evaluator:
  discount_rate: 0.1
  capacity: 1500000
  mining_cost: 0.8
history:
  backend: "sqlite"
  path: "runs.db"
metrics:
  sinks:
    - type: "nop"
  prometheus_addr: ":9100"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"instance", cfg.Instance, "pits/marvin.csv"},
		{"population_size", cfg.Solver.PopulationSize, 80},
		{"generations", cfg.Solver.Generations, 120},
		{"mutation_rate", cfg.Solver.MutationRate, 0.1},
		{"seed", cfg.Solver.Seed, int64(7)},
		{"discount_rate", cfg.Evaluator.DiscountRate, 0.1},
		{"capacity", cfg.Evaluator.Capacity, 1500000.0},
		{"mining_cost", cfg.Evaluator.MiningCost, 0.8},
		{"history.backend", cfg.History.Backend, "sqlite"},
		{"history.path", cfg.History.Path, "runs.db"},
		{"metrics_sink", len(cfg.Metrics.Sinks) == 1 && cfg.Metrics.Sinks[0].Type == "nop", true},
		{"prometheus_addr", cfg.Metrics.PrometheusAddr, ":9100"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s mismatch: %v", c.name, c.got)
		}
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `solver:
  seed: 9
  mutation_rate: 0
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Solver.Seed != 9 {
		t.Errorf("seed = %d, want 9", cfg.Solver.Seed)
	}
	if cfg.Solver.PopulationSize != 50 || cfg.Solver.Generations != 50 {
		t.Errorf("population/generations defaults lost: %+v", cfg.Solver)
	}
	// explicit zero mutation rate is a valid setting, not a missing value
	if cfg.Solver.MutationRate != 0 {
		t.Errorf("mutation_rate = %v, want 0", cfg.Solver.MutationRate)
	}
	if cfg.Evaluator.Capacity != 10_000_000 {
		t.Errorf("capacity default lost: %v", cfg.Evaluator.Capacity)
	}
	if cfg.History.Backend != "csv" || cfg.History.Path != "history.csv" {
		t.Errorf("history defaults lost: %+v", cfg.History)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Solver.PopulationSize != 50 || cfg.Solver.MutationRate != 0.05 {
		t.Errorf("unexpected defaults: %+v", cfg.Solver)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CPIT_SOLVER__SEED", "99")
	t.Setenv("CPIT_INSTANCE", "pits/env.csv")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Solver.Seed != 99 {
		t.Errorf("seed = %d, want 99", cfg.Solver.Seed)
	}
	if cfg.Instance != "pits/env.csv" {
		t.Errorf("instance = %q", cfg.Instance)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `solver:
  mutation_rate: 2
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for mutation_rate 2")
	}
	if _, err := Load(filepath.Join(dir, "config.toml")); err == nil {
		t.Error("expected error for unsupported format")
	}
}
