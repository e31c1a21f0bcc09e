// Package cmd implements the cpit command line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "cpit",
	Short: "Open-pit block extraction scheduling",
	Long: `cpit schedules precedence-constrained block extraction to maximise
discounted value under per-period ore capacity, comparing a random
topological baseline against a genetic search.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (YAML or JSON)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
