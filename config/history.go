package config

import (
	"fmt"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/factory"
)

// HistoryConfig defines where per-generation convergence history is stored.
type HistoryConfig struct {
	// Backend selects the store type: "csv", "sqlite" or "nop".
	Backend string `json:"backend"`
	// Path is the file location of the store.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *HistoryConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "csv"
	}
	if c.Path == "" && c.Backend != "nop" {
		c.Path = "history.csv"
	}
}

// Validate checks mandatory fields.
func (c HistoryConfig) Validate() error {
	switch c.Backend {
	case "csv", "sqlite":
		if c.Path == "" {
			return fmt.Errorf("history: path is required for backend %s", c.Backend)
		}
	case "nop":
	default:
		return fmt.Errorf("history: unknown backend %s", c.Backend)
	}
	return nil
}

// ModuleConfig translates the section into a store factory config.
func (c HistoryConfig) ModuleConfig() factory.ModuleConfig {
	return factory.ModuleConfig{Type: c.Backend, Conf: map[string]any{"path": c.Path}}
}
