package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/app"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/economics"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/pkg/export"
)

var (
	solveInstance    string
	solvePopulation  int
	solveGenerations int
	solveMutation    float64
	solveSeed        int64
	solveOut         string
	solveHistoryOut  string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Schedule an instance with the genetic search",
	RunE:  runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.StringVarP(&solveInstance, "instance", "i", "", "block-model CSV to schedule")
	f.IntVar(&solvePopulation, "population", 0, "population size")
	f.IntVar(&solveGenerations, "generations", 0, "number of generations")
	f.Float64Var(&solveMutation, "mutation", 0, "mutation rate in [0,1]")
	f.Int64Var(&solveSeed, "seed", 0, "random seed")
	f.StringVarP(&solveOut, "out", "o", "", "write the elite schedule to this .csv or .json file")
	f.StringVar(&solveHistoryOut, "history-out", "", "write per-generation best values to this CSV file")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if solveInstance != "" {
		cfg.Instance = solveInstance
	}
	if flags.Changed("population") {
		cfg.Solver.PopulationSize = solvePopulation
	}
	if flags.Changed("generations") {
		cfg.Solver.Generations = solveGenerations
	}
	if flags.Changed("mutation") {
		cfg.Solver.MutationRate = solveMutation
	}
	if flags.Changed("seed") {
		cfg.Solver.Seed = solveSeed
	}
	if cfg.Instance == "" {
		return fmt.Errorf("an instance file is required (--instance or the config file)")
	}
	if err := cfg.Solver.Validate(); err != nil {
		return err
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "service close: %v\n", err)
		}
	}()

	sum, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	if solveOut != "" {
		if err := writePlan(solveOut, sum.Plan); err != nil {
			return err
		}
	}
	if solveHistoryOut != "" {
		if err := writeHistory(solveHistoryOut, sum.Genetic.History); err != nil {
			return err
		}
	}
	printSummary(cmd, sum)
	return nil
}

func printSummary(cmd *cobra.Command, sum *app.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "instance:    %s\n", sum.Instance)
	fmt.Fprintf(out, "run id:      %s\n", sum.RunID)
	fmt.Fprintf(out, "baseline:    %.4f\n", sum.Baseline.Valuation.Value)
	fmt.Fprintf(out, "genetic:     %.4f (%d periods, %d evaluations)\n",
		sum.Genetic.Value, sum.Valuation.Periods, sum.Genetic.Evaluations)
	fmt.Fprintf(out, "improvement: %.2f%%\n", sum.ImprovementPct)
	fmt.Fprintf(out, "duration:    %s\n", sum.Duration.Round(time.Millisecond))
	for _, p := range sum.ByPeriod {
		fmt.Fprintf(out, "  period %d: %d blocks, ore %.1ft, waste %.1ft, strip %.2f, value %.4f\n",
			p.Period, p.Blocks, p.OreTonnage, p.WasteTonnage, p.StripRatio(), p.Discounted)
	}
}

// writePlan picks the export format from the file extension before touching
// the filesystem, so a bad flag never leaves a partial file behind.
func writePlan(path string, plan []economics.Assignment) error {
	var write func(io.Writer, []economics.Assignment) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		write = export.WriteScheduleJSON
	case ".csv":
		write = export.WriteScheduleCSV
	default:
		return fmt.Errorf("unsupported schedule format %q, use .csv or .json", filepath.Ext(path))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f, plan); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeHistory(path string, history []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteHistoryCSV(f, history); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
