// Package minelib reads, writes and synthesizes CPIT block-model instances
// in the canonical CSV schema (id,x,y,z,tonn,val_ore,dest,precedentes) and
// normalizes heterogeneous raw exports into it.
package minelib

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/model"
)

var requiredColumns = []string{"id", "precedentes", "x", "y", "z"}

// table is a parsed CSV with trimmed, lowercased header names.
type table struct {
	header []string
	cols   map[string]int
	rows   [][]string
}

// readTable parses CSV from r, sniffing the delimiter (';' wins over ',')
// from the header line.
func readTable(r io.Reader) (*table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	head, _, _ := strings.Cut(string(data), "\n")
	if strings.TrimSpace(head) == "" {
		return nil, errors.New("minelib: empty input")
	}
	cr := csv.NewReader(bytes.NewReader(data))
	if strings.Contains(head, ";") {
		cr.Comma = ';'
	}
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("minelib: parse csv: %w", err)
	}
	t := &table{header: records[0], cols: make(map[string]int, len(records[0])), rows: records[1:]}
	for i, name := range t.header {
		name = strings.ToLower(strings.TrimSpace(name))
		t.header[i] = name
		if _, ok := t.cols[name]; !ok {
			t.cols[name] = i
		}
	}
	return t, nil
}

func (t *table) has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// cell returns the trimmed value of the named column in row, or "" when the
// column is absent.
func (t *table) cell(row []string, name string) string {
	i, ok := t.cols[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Read parses a canonical instance CSV. Columns id,x,y,z,precedentes are
// required; tonn, val_ore and dest default per the block model when the
// whole column is absent. An empty cell in a present column is an error.
func Read(r io.Reader) ([]model.Block, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	var missing []string
	for _, name := range requiredColumns {
		if !t.has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &model.SchemaError{Missing: missing}
	}

	hasTonn := t.has("tonn")
	hasVal := t.has("val_ore")
	hasDest := t.has("dest")

	blocks := make([]model.Block, 0, len(t.rows))
	maxZ := 0.0
	for i, row := range t.rows {
		line := i + 2
		b := model.Block{Tonnage: model.DefaultTonnage, Destination: model.DefaultDestination}
		if b.ID, err = strconv.Atoi(t.cell(row, "id")); err != nil {
			return nil, fmt.Errorf("minelib: line %d: id: %w", line, err)
		}
		if b.X, err = strconv.ParseFloat(t.cell(row, "x"), 64); err != nil {
			return nil, fmt.Errorf("minelib: line %d: x: %w", line, err)
		}
		if b.Y, err = strconv.ParseFloat(t.cell(row, "y"), 64); err != nil {
			return nil, fmt.Errorf("minelib: line %d: y: %w", line, err)
		}
		if b.Z, err = strconv.ParseFloat(t.cell(row, "z"), 64); err != nil {
			return nil, fmt.Errorf("minelib: line %d: z: %w", line, err)
		}
		if b.Predecessors, err = model.ParsePredecessors(t.cell(row, "precedentes")); err != nil {
			return nil, fmt.Errorf("minelib: line %d: %w", line, err)
		}
		if hasTonn {
			if b.Tonnage, err = strconv.ParseFloat(t.cell(row, "tonn"), 64); err != nil {
				return nil, fmt.Errorf("minelib: line %d: tonn: %w", line, err)
			}
		}
		if hasVal {
			if b.OreValue, err = strconv.ParseFloat(t.cell(row, "val_ore"), 64); err != nil {
				return nil, fmt.Errorf("minelib: line %d: val_ore: %w", line, err)
			}
		}
		if hasDest {
			if b.Destination, err = strconv.Atoi(t.cell(row, "dest")); err != nil {
				return nil, fmt.Errorf("minelib: line %d: dest: %w", line, err)
			}
		}
		if len(blocks) == 0 || b.Z > maxZ {
			maxZ = b.Z
		}
		blocks = append(blocks, b)
	}
	if !hasVal {
		for i := range blocks {
			blocks[i].OreValue = model.DefaultOreValue(blocks[i].Z, maxZ)
		}
	}
	return blocks, nil
}

// ReadInstance loads the canonical instance CSV at path.
func ReadInstance(path string) ([]model.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	blocks, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return blocks, nil
}

// LoadModel reads the instance at path and builds a validated BlockModel.
func LoadModel(path string) (*model.BlockModel, error) {
	blocks, err := ReadInstance(path)
	if err != nil {
		return nil, err
	}
	m, err := model.New(blocks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
