// Package export writes solver outputs in interchange formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/economics"
)

// WriteScheduleJSON writes the period assignments of a schedule to w in JSON.
func WriteScheduleJSON(w io.Writer, plan []economics.Assignment) error {
	enc := json.NewEncoder(w)
	return enc.Encode(plan)
}

// WriteScheduleCSV writes the period assignments of a schedule to w in CSV,
// one row per extraction position.
func WriteScheduleCSV(w io.Writer, plan []economics.Assignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"position", "block_id", "period", "cash_flow", "discounted"}); err != nil {
		return err
	}
	for i, a := range plan {
		rec := []string{
			strconv.Itoa(i),
			strconv.Itoa(a.BlockID),
			strconv.Itoa(a.Period),
			strconv.FormatFloat(a.CashFlow, 'f', -1, 64),
			strconv.FormatFloat(a.Discounted, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHistoryCSV writes the per-generation best-value history to w as a
// two-column CSV, generations numbered from 1.
func WriteHistoryCSV(w io.Writer, history []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"generation", "best_value"}); err != nil {
		return err
	}
	for i, v := range history {
		rec := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(v, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
