package main

import (
	"os"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
