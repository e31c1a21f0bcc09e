package solver

import (
	"math/rand"
	"time"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/economics"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/logger"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/model"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/schedule"
)

// BaselineResult is a random topological schedule with its valuation.
type BaselineResult struct {
	Sequence  schedule.Sequence   `json:"sequence"`
	Valuation economics.Valuation `json:"valuation"`
	// Complete is false when some blocks were unreachable, which only
	// happens on models that slipped past load-time validation.
	Complete bool          `json:"complete"`
	Duration time.Duration `json:"duration"`
}

// BaselineScheduler draws a uniformly random topological order as the
// reference point for the genetic result.
type BaselineScheduler struct {
	m        *model.BlockModel
	eval     *economics.Evaluator
	seed     int64
	log      logger.Logger
	instance string
}

// NewBaselineScheduler builds a scheduler over a validated model.
func NewBaselineScheduler(m *model.BlockModel, eval *economics.Evaluator, seed int64, opts Options) *BaselineScheduler {
	if opts.Logger == nil {
		opts.Logger = logger.NopLogger{}
	}
	return &BaselineScheduler{m: m, eval: eval, seed: seed, log: opts.Logger, instance: opts.Instance}
}

// Run repeatedly picks uniformly among the blocks whose predecessors are all
// placed, until no eligible block remains, then values the sequence.
func (b *BaselineScheduler) Run() BaselineResult {
	start := time.Now()
	rng := rand.New(rand.NewSource(b.seed))

	remaining := make(map[int]map[int]bool, b.m.Len())
	var ready []int
	for _, id := range b.m.IDs() {
		preds := b.m.Predecessors(id)
		if len(preds) == 0 {
			ready = append(ready, id)
			continue
		}
		set := make(map[int]bool, len(preds))
		for _, p := range preds {
			set[p] = true
		}
		remaining[id] = set
	}

	seq := make(schedule.Sequence, 0, b.m.Len())
	for len(ready) > 0 {
		k := rng.Intn(len(ready))
		id := ready[k]
		ready[k] = ready[len(ready)-1]
		ready = ready[:len(ready)-1]
		seq = append(seq, id)
		for _, s := range b.m.Successors(id) {
			set, ok := remaining[s]
			if !ok {
				continue
			}
			delete(set, id)
			if len(set) == 0 {
				delete(remaining, s)
				ready = append(ready, s)
			}
		}
	}

	val := b.eval.Evaluate(seq)
	res := BaselineResult{
		Sequence:  seq,
		Valuation: val,
		Complete:  len(seq) == b.m.Len(),
		Duration:  time.Since(start),
	}
	evaluationsTotal.Inc()
	runsTotal.WithLabelValues(SolverBaseline).Inc()
	runSeconds.WithLabelValues(SolverBaseline).Observe(res.Duration.Seconds())
	bestValue.WithLabelValues(SolverBaseline, b.instance).Set(val.Value)
	if !res.Complete {
		b.log.Warnf("baseline schedule incomplete: placed %d of %d blocks", len(seq), b.m.Len())
	}
	b.log.Infof("baseline schedule: value=%.2f periods=%d blocks=%d", val.Value, val.Periods, len(seq))
	return res
}
