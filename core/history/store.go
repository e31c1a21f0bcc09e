// Package history defines the convergence-history records produced by solver
// runs and the store interface used to persist them.
package history

import (
	"context"
	"time"
)

// Record captures the best value known after one generation of a run.
type Record struct {
	RunID      string    `json:"run_id"`
	Instance   string    `json:"instance"`
	Generation int       `json:"generation"`
	BestValue  float64   `json:"best_value"`
	CreatedAt  time.Time `json:"created_at"`
}

// Query defines filters for retrieving records.
type Query struct {
	RunID    string
	Instance string
	Since    time.Time
}

// Store persists Records and supports querying.
type Store interface {
	Append(ctx context.Context, recs []Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}

// NopStore discards all records.
type NopStore struct{}

func (NopStore) Append(context.Context, []Record) error         { return nil }
func (NopStore) Query(context.Context, Query) ([]Record, error) { return nil, nil }
func (NopStore) Close() error                                   { return nil }
