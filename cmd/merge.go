package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/infra/minelib"
)

var mergeOut string

var mergeCmd = &cobra.Command{
	Use:   "merge <blocks.csv> <precedences.csv>",
	Short: "Merge a raw block export with its precedence file into one instance",
	Args:  cobra.ExactArgs(2),
	RunE:  runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOut, "out", "o", "merged.csv", "output instance file")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	blocksData, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	precData, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	blocks, err := minelib.Normalize(bytes.NewReader(blocksData), bytes.NewReader(precData))
	if err != nil {
		return err
	}
	if err := minelib.WriteInstance(mergeOut, blocks); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d blocks to %s\n", len(blocks), mergeOut)
	return nil
}
