package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	corehistory "github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/history"
	_ "github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/infra/history"
)

var (
	historyRun      string
	historyInstance string
	historySince    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Query the stored convergence history",
	RunE:  runHistory,
}

func init() {
	f := historyCmd.Flags()
	f.StringVar(&historyRun, "run", "", "filter by run id")
	f.StringVar(&historyInstance, "instance", "", "filter by instance name")
	f.StringVar(&historySince, "since", "", "only records created at or after this RFC 3339 time")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	q := corehistory.Query{RunID: historyRun, Instance: historyInstance}
	if historySince != "" {
		since, err := time.Parse(time.RFC3339, historySince)
		if err != nil {
			return fmt.Errorf("parse since: %w", err)
		}
		q.Since = since
	}

	store, err := corehistory.NewStore(cfg.History.ModuleConfig())
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "store close: %v\n", err)
		}
	}()

	recs, err := store.Query(cmd.Context(), q)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(recs) == 0 {
		fmt.Fprintln(out, "no records")
		return nil
	}
	for _, r := range recs {
		fmt.Fprintf(out, "%s  %s  gen=%d  best=%.4f  %s\n",
			r.RunID, r.Instance, r.Generation, r.BestValue, r.CreatedAt.Format(time.RFC3339))
	}
	return nil
}
