package solver

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Reference search parameters.
const (
	DefaultPopulationSize = 50
	DefaultGenerations    = 50
	DefaultMutationRate   = 0.05
	DefaultSeed           = 42
)

// Config defines search parameters loaded from configuration. A mutation
// rate of zero is a valid setting, so defaults are not inferred from zero
// values; start from DefaultConfig and override.
type Config struct {
	PopulationSize int     `json:"population_size" yaml:"population_size"`
	Generations    int     `json:"generations" yaml:"generations"`
	MutationRate   float64 `json:"mutation_rate" yaml:"mutation_rate"`
	Seed           int64   `json:"seed" yaml:"seed"`
}

// DefaultConfig returns the reference parameters.
func DefaultConfig() Config {
	return Config{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		MutationRate:   DefaultMutationRate,
		Seed:           DefaultSeed,
	}
}

// Validate rejects parameter combinations the genetic operators cannot
// handle.
func (c Config) Validate() error {
	if c.PopulationSize < 2 {
		return fmt.Errorf("solver: population size must be at least 2, got %d", c.PopulationSize)
	}
	if c.Generations < 1 {
		return fmt.Errorf("solver: generations must be at least 1, got %d", c.Generations)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("solver: mutation rate must be within [0,1], got %v", c.MutationRate)
	}
	return nil
}

// LoadConfig loads a Config from a JSON or YAML file.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	cfg := DefaultConfig()
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	default:
		return Config{}, fmt.Errorf("unsupported config format: %s", ext)
	}
	return cfg, err
}

// DecodeConfig reads from r to decode a Config.
func DecodeConfig(r io.Reader, format string) (Config, error) {
	cfg := DefaultConfig()
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, err
		}
	case "json":
		dec := json.NewDecoder(r)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported format: %s", format)
	}
	return cfg, nil
}
