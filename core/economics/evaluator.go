// Package economics values extraction sequences: per-block net cash flows
// assigned to capacity-bounded periods and discounted back to present value.
package economics

import (
	"math"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/model"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/schedule"
)

// Valuation is the outcome of evaluating a sequence.
type Valuation struct {
	// Value is the discounted value of every counted block.
	Value float64
	// Periods is the last period the evaluation reached, at least 1.
	Periods int
	// Counted is the number of blocks that produced cash flow.
	Counted int
	// Skipped is the number of blocks left out because a predecessor had
	// not been counted when they came up. Zero for feasible sequences.
	Skipped int
}

// Assignment places one counted block in its extraction period.
type Assignment struct {
	BlockID    int     `json:"block_id"`
	Period     int     `json:"period"`
	CashFlow   float64 `json:"cash_flow"`
	Discounted float64 `json:"discounted"`
}

// Evaluator values sequences against one model and one set of parameters.
// It is stateless between calls and safe for concurrent use.
type Evaluator struct {
	m   *model.BlockModel
	cfg Config
}

// NewEvaluator validates cfg, applying defaults to zero fields first.
func NewEvaluator(m *model.BlockModel, cfg Config) (*Evaluator, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{m: m, cfg: cfg}, nil
}

// Config returns the parameters the evaluator runs with, defaults applied.
func (e *Evaluator) Config() Config { return e.cfg }

// Evaluate walks the sequence once. Blocks whose predecessors have not all
// been counted are skipped without cash flow and without becoming available
// as predecessors themselves. Ore consumes period capacity, rolling to the
// next period when it would overflow; waste is paid in whatever period is
// current. Cash flows are discounted by (1+rate)^(period-1).
func (e *Evaluator) Evaluate(seq schedule.Sequence) Valuation {
	v, _ := e.run(seq, false)
	return v
}

// Plan evaluates the sequence and additionally reports the period placement
// of every counted block, in extraction order.
func (e *Evaluator) Plan(seq schedule.Sequence) (Valuation, []Assignment) {
	v, plan := e.run(seq, true)
	return v, plan
}

func (e *Evaluator) run(seq schedule.Sequence, keep bool) (Valuation, []Assignment) {
	var (
		value   float64
		period  = 1
		used    float64
		counted = make(map[int]bool, len(seq))
		out     Valuation
		plan    []Assignment
	)
	if keep {
		plan = make([]Assignment, 0, len(seq))
	}
	for _, id := range seq {
		if !e.met(id, counted) {
			out.Skipped++
			continue
		}
		ton := e.m.Tonnage(id)
		var cash float64
		if e.m.IsOre(id) {
			if used+ton > e.cfg.Capacity {
				period++
				used = 0
			}
			used += ton
			cash = e.m.OreValue(id) - e.cfg.MiningCost*ton
		} else {
			cash = -e.cfg.MiningCost * ton
		}
		disc := cash / math.Pow(1+e.cfg.DiscountRate, float64(period-1))
		value += disc
		counted[id] = true
		out.Counted++
		if keep {
			plan = append(plan, Assignment{BlockID: id, Period: period, CashFlow: cash, Discounted: disc})
		}
	}
	out.Value = value
	out.Periods = period
	return out, plan
}

func (e *Evaluator) met(id int, counted map[int]bool) bool {
	for _, p := range e.m.Predecessors(id) {
		if !counted[p] {
			return false
		}
	}
	return true
}
