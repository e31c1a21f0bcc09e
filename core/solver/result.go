package solver

import (
	"time"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/schedule"
)

// Solver labels used in logs and metrics.
const (
	SolverGenetic  = "genetic"
	SolverBaseline = "baseline"
)

// Result is the outcome of a genetic run.
type Result struct {
	// Best is the elite sequence, feasible by construction.
	Best schedule.Sequence `json:"best"`
	// Value is the discounted value of Best.
	Value float64 `json:"value"`
	// History holds the best value known after each generation. It is
	// non-decreasing and has one entry per completed generation.
	History []float64 `json:"history"`
	// Generations actually completed; lower than configured only when the
	// run was cancelled.
	Generations int           `json:"generations"`
	Evaluations int           `json:"evaluations"`
	Duration    time.Duration `json:"duration"`
}
