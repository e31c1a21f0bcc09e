package minelib

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/model"
)

// Normalize merges a raw block-model export with a raw precedence export
// into canonical blocks. It tolerates the column shapes seen in the wild:
// missing id columns (synthesized sequentially, or matched by row order),
// prec1..precN slot columns with -1 as the empty sentinel, blockvalue /
// destination names for val_ore / dest, and absent coordinate or tonnage
// columns. Destination is inferred from the sign of the ore value when no
// destination column exists.
func Normalize(blocks, precedences io.Reader) ([]model.Block, error) {
	bt, err := readTable(blocks)
	if err != nil {
		return nil, fmt.Errorf("blocks: %w", err)
	}
	pt, err := readTable(precedences)
	if err != nil {
		return nil, fmt.Errorf("precedences: %w", err)
	}

	ids, err := blockIDs(bt)
	if err != nil {
		return nil, err
	}
	preds, err := predecessorsByID(pt, ids)
	if err != nil {
		return nil, err
	}

	valCol := pickColumn(bt, "val_ore", "blockvalue")
	destCol := pickColumn(bt, "dest", "destination")
	tonnCol := pickColumn(bt, "tonn", "ton", "tonnage", "mass", "weight")

	out := make([]model.Block, len(bt.rows))
	maxZ := 0.0
	for i, row := range bt.rows {
		line := i + 2
		b := model.Block{ID: ids[i], Tonnage: model.DefaultTonnage, Predecessors: preds[ids[i]]}
		if b.X, err = coord(bt, row, "x"); err != nil {
			return nil, fmt.Errorf("blocks: line %d: %w", line, err)
		}
		if b.Y, err = coord(bt, row, "y"); err != nil {
			return nil, fmt.Errorf("blocks: line %d: %w", line, err)
		}
		if b.Z, err = coord(bt, row, "z"); err != nil {
			return nil, fmt.Errorf("blocks: line %d: %w", line, err)
		}
		if tonnCol != "" {
			if b.Tonnage, err = strconv.ParseFloat(bt.cell(row, tonnCol), 64); err != nil {
				return nil, fmt.Errorf("blocks: line %d: %s: %w", line, tonnCol, err)
			}
		}
		if valCol != "" {
			if b.OreValue, err = strconv.ParseFloat(bt.cell(row, valCol), 64); err != nil {
				return nil, fmt.Errorf("blocks: line %d: %s: %w", line, valCol, err)
			}
		}
		if i == 0 || b.Z > maxZ {
			maxZ = b.Z
		}
		out[i] = b
	}
	for i := range out {
		if valCol == "" {
			out[i].OreValue = model.DefaultOreValue(out[i].Z, maxZ)
		}
		if destCol != "" {
			d, err := strconv.Atoi(bt.cell(bt.rows[i], destCol))
			if err != nil {
				return nil, fmt.Errorf("blocks: line %d: %s: %w", i+2, destCol, err)
			}
			out[i].Destination = d
		} else if out[i].OreValue > 0 {
			out[i].Destination = model.DestinationOre
		} else {
			out[i].Destination = model.DestinationWaste
		}
	}
	return out, nil
}

// blockIDs returns one id per block row, synthesizing 0..n-1 when the
// export carries no id column.
func blockIDs(bt *table) ([]int, error) {
	ids := make([]int, len(bt.rows))
	if !bt.has("id") {
		for i := range ids {
			ids[i] = i
		}
		return ids, nil
	}
	for i, row := range bt.rows {
		id, err := strconv.Atoi(bt.cell(row, "id"))
		if err != nil {
			return nil, fmt.Errorf("blocks: line %d: id: %w", i+2, err)
		}
		ids[i] = id
	}
	return ids, nil
}

// predecessorsByID collapses the precedence export into per-id predecessor
// lists. The id column is matched loosely (any column whose name contains
// "id"); with none, rows are aligned with the block rows by position.
func predecessorsByID(pt *table, blockIDs []int) (map[int][]int, error) {
	idCol := ""
	if pt.has("id") {
		idCol = "id"
	} else {
		for _, name := range pt.header {
			if strings.Contains(name, "id") {
				idCol = name
				break
			}
		}
	}
	if idCol == "" && len(pt.rows) != len(blockIDs) {
		return nil, fmt.Errorf("precedences: no id column and %d rows do not align with %d blocks",
			len(pt.rows), len(blockIDs))
	}

	slotCols := precSlotColumns(pt)
	preds := make(map[int][]int, len(pt.rows))
	for i, row := range pt.rows {
		id := 0
		if idCol == "" {
			id = blockIDs[i]
		} else {
			v, err := strconv.Atoi(pt.cell(row, idCol))
			if err != nil {
				return nil, fmt.Errorf("precedences: line %d: %s: %w", i+2, idCol, err)
			}
			id = v
		}
		preds[id] = collapseRow(pt, row, slotCols)
	}
	return preds, nil
}

// precSlotColumns returns the prec1..precN slot columns in header order,
// falling back to any column mentioning "prec". The canonical precedentes
// column is not a slot.
func precSlotColumns(pt *table) []string {
	var cols []string
	for _, name := range pt.header {
		if name != "precedentes" && strings.HasPrefix(name, "prec") {
			cols = append(cols, name)
		}
	}
	if len(cols) == 0 {
		for _, name := range pt.header {
			if name != "precedentes" && strings.Contains(name, "prec") {
				cols = append(cols, name)
			}
		}
	}
	return cols
}

// collapseRow extracts the predecessor ids of one precedence row. A
// non-empty precedentes cell wins; it accepts "," or ";" separated integers
// and drops anything else. Slot cells equal to the -1 sentinel are empty.
func collapseRow(pt *table, row []string, slotCols []string) []int {
	if s := pt.cell(row, "precedentes"); s != "" {
		s = strings.ReplaceAll(s, ";", ",")
		s = strings.Trim(s, "[]")
		var out []int
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			v, err := strconv.Atoi(part)
			if err != nil {
				continue
			}
			out = append(out, v)
		}
		return out
	}
	var out []int
	for _, name := range slotCols {
		v := pt.cell(row, name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		iv := int(f)
		if float64(iv) != f || iv == -1 {
			continue
		}
		out = append(out, iv)
	}
	return out
}

// pickColumn returns the first of names present in the table, or "".
func pickColumn(t *table, names ...string) string {
	for _, name := range names {
		if t.has(name) {
			return name
		}
	}
	return ""
}

// coord parses the named coordinate column, defaulting to 0 when absent.
func coord(t *table, row []string, name string) (float64, error) {
	if !t.has(name) {
		return 0, nil
	}
	v, err := strconv.ParseFloat(t.cell(row, name), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}
