package history

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	corehistory "github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/history"
)

var csvHeader = []string{"run_id", "instance", "generation", "best_value", "created_at"}

// CSVStore appends convergence history to a CSV file.
type CSVStore struct {
	path string
	mu   sync.Mutex
}

// NewCSVStore creates the file at path with a header row if it does not exist.
func NewCSVStore(path string) (*CSVStore, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if st.Size() == 0 {
		cw := csv.NewWriter(f)
		if err := cw.Write(csvHeader); err != nil {
			_ = f.Close()
			return nil, err
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	if cerr := f.Close(); cerr != nil {
		return nil, cerr
	}
	return &CSVStore{path: path}, nil
}

// Append writes the records as CSV rows.
func (s *CSVStore) Append(ctx context.Context, recs []corehistory.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	cw := csv.NewWriter(f)
	for _, r := range recs {
		row := []string{
			r.RunID,
			r.Instance,
			strconv.Itoa(r.Generation),
			strconv.FormatFloat(r.BestValue, 'f', -1, 64),
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Query scans the whole file and returns records matching q.
func (s *CSVStore) Query(ctx context.Context, q corehistory.Query) ([]corehistory.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	cr := csv.NewReader(f)
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	var res []corehistory.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		r, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		if q.RunID != "" && r.RunID != q.RunID {
			continue
		}
		if q.Instance != "" && r.Instance != q.Instance {
			continue
		}
		if !q.Since.IsZero() && r.CreatedAt.Before(q.Since) {
			continue
		}
		res = append(res, r)
	}
	return res, nil
}

// Close is a no-op; the file is reopened per operation.
func (s *CSVStore) Close() error { return nil }

func parseRow(row []string) (corehistory.Record, error) {
	if len(row) != len(csvHeader) {
		return corehistory.Record{}, fmt.Errorf("history: malformed row with %d columns", len(row))
	}
	gen, err := strconv.Atoi(row[2])
	if err != nil {
		return corehistory.Record{}, fmt.Errorf("history: generation: %w", err)
	}
	best, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return corehistory.Record{}, fmt.Errorf("history: best_value: %w", err)
	}
	ts, err := time.Parse(time.RFC3339, row[4])
	if err != nil {
		return corehistory.Record{}, fmt.Errorf("history: created_at: %w", err)
	}
	return corehistory.Record{
		RunID:      row[0],
		Instance:   row[1],
		Generation: gen,
		BestValue:  best,
		CreatedAt:  ts,
	}, nil
}
