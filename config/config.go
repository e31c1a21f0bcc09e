package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/economics"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/metrics"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/solver"
)

type Config struct {
	// Instance is the path of the block-model CSV to schedule.
	Instance  string           `json:"instance"`
	Solver    solver.Config    `json:"solver"`
	Evaluator economics.Config `json:"evaluator"`
	History   HistoryConfig    `json:"history"`
	Metrics   metrics.Config   `json:"metrics"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Solver: solver.DefaultConfig(),
		Evaluator: economics.Config{
			DiscountRate: economics.DefaultDiscountRate,
			Capacity:     economics.DefaultCapacity,
			MiningCost:   economics.DefaultMiningCost,
		},
		History: HistoryConfig{Backend: "csv", Path: "history.csv"},
	}
}

// Load layers the optional config file at path and CPIT_ environment
// overrides (CPIT_SOLVER__SEED=7 sets solver.seed) over the defaults.
// An empty path skips the file layer.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider("CPIT_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "cpit_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Evaluator.SetDefaults()
	cfg.History.SetDefaults()
	if err := cfg.Solver.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Evaluator.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.History.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
