package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/model"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/infra/minelib"
)

var (
	genCfg      minelib.GenerateConfig
	generateOut string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic block-model instance",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.IntVar(&genCfg.NX, "nx", 6, "blocks along x")
	f.IntVar(&genCfg.NY, "ny", 6, "blocks along y")
	f.IntVar(&genCfg.NZ, "nz", 4, "benches")
	f.Float64Var(&genCfg.Tonnage, "tonnage", model.DefaultTonnage, "tonnage per block")
	f.Float64Var(&genCfg.Noise, "noise", 20, "uniform value noise amplitude")
	f.Int64Var(&genCfg.Seed, "seed", 42, "random seed")
	f.StringVarP(&generateOut, "out", "o", "", "output instance file")
	if err := generateCmd.MarkFlagRequired("out"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	blocks, err := minelib.Generate(genCfg)
	if err != nil {
		return err
	}
	if err := minelib.WriteInstance(generateOut, blocks); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d blocks to %s\n", len(blocks), generateOut)
	return nil
}
