package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/app"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/economics"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/solver"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/infra/logger"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/infra/minelib"
)

var (
	baselineInstance string
	baselineSeed     int64
	baselineOut      string
)

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Value a uniformly random topological schedule",
	RunE:  runBaseline,
}

func init() {
	f := baselineCmd.Flags()
	f.StringVarP(&baselineInstance, "instance", "i", "", "block-model CSV to schedule")
	f.Int64Var(&baselineSeed, "seed", 0, "random seed")
	f.StringVarP(&baselineOut, "out", "o", "", "write the schedule to this .csv or .json file")
	rootCmd.AddCommand(baselineCmd)
}

func runBaseline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if baselineInstance != "" {
		cfg.Instance = baselineInstance
	}
	if cmd.Flags().Changed("seed") {
		cfg.Solver.Seed = baselineSeed
	}
	if cfg.Instance == "" {
		return fmt.Errorf("an instance file is required (--instance or the config file)")
	}

	m, err := minelib.LoadModel(cfg.Instance)
	if err != nil {
		return err
	}
	eval, err := economics.NewEvaluator(m, cfg.Evaluator)
	if err != nil {
		return err
	}
	sched := solver.NewBaselineScheduler(m, eval, cfg.Solver.Seed,
		solver.Options{Logger: logger.New("baseline"), Instance: app.InstanceName(cfg.Instance)})
	res := sched.Run()

	if baselineOut != "" {
		_, plan := eval.Plan(res.Sequence)
		if err := writePlan(baselineOut, plan); err != nil {
			return err
		}
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "value:    %.4f\n", res.Valuation.Value)
	fmt.Fprintf(out, "periods:  %d\n", res.Valuation.Periods)
	fmt.Fprintf(out, "complete: %t\n", res.Complete)
	return nil
}
