package minelib

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/model"
)

var canonicalHeader = []string{"id", "x", "y", "z", "tonn", "val_ore", "dest", "precedentes"}

// Write writes blocks to w in the canonical schema and column order.
func Write(w io.Writer, blocks []model.Block) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(canonicalHeader); err != nil {
		return err
	}
	for _, b := range blocks {
		row := []string{
			strconv.Itoa(b.ID),
			strconv.FormatFloat(b.X, 'f', -1, 64),
			strconv.FormatFloat(b.Y, 'f', -1, 64),
			strconv.FormatFloat(b.Z, 'f', -1, 64),
			strconv.FormatFloat(b.Tonnage, 'f', -1, 64),
			strconv.FormatFloat(b.OreValue, 'f', -1, 64),
			strconv.Itoa(b.Destination),
			model.FormatPredecessors(b.Predecessors),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteInstance writes blocks to the file at path.
func WriteInstance(path string, blocks []model.Block) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, blocks); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
