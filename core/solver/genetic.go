package solver

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/economics"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/logger"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/model"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/schedule"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/internal/progress"
)

// Options carries the optional collaborators of a scheduler. Zero values
// are replaced with no-op implementations.
type Options struct {
	Logger   logger.Logger
	Bus      *progress.Bus
	RunID    string
	Instance string
}

// GeneticScheduler evolves a population of repaired permutations. Each Run
// draws from a fresh source seeded with Config.Seed, so runs with equal
// seeds and parameters reproduce the same elite exactly.
type GeneticScheduler struct {
	m        *model.BlockModel
	eval     *economics.Evaluator
	cfg      Config
	log      logger.Logger
	bus      *progress.Bus
	runID    string
	instance string
}

// NewGeneticScheduler validates the parameters against the model.
func NewGeneticScheduler(m *model.BlockModel, eval *economics.Evaluator, cfg Config, opts Options) (*GeneticScheduler, error) {
	if m == nil || eval == nil {
		return nil, fmt.Errorf("solver: model and evaluator are required")
	}
	if m.Len() < 2 {
		return nil, fmt.Errorf("solver: need at least 2 blocks, got %d", m.Len())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = logger.NopLogger{}
	}
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	return &GeneticScheduler{
		m:        m,
		eval:     eval,
		cfg:      cfg,
		log:      opts.Logger,
		bus:      opts.Bus,
		runID:    opts.RunID,
		instance: opts.Instance,
	}, nil
}

// RunID identifies this scheduler's runs in history and metrics.
func (g *GeneticScheduler) RunID() string { return g.runID }

// Run executes the generational loop. On context cancellation it returns
// the partial result together with the context error; History then holds
// one entry per generation that completed.
func (g *GeneticScheduler) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(g.cfg.Seed))
	g.log.Infof("genetic search: instance=%s blocks=%d population=%d generations=%d mutation=%.3f seed=%d",
		g.instance, g.m.Len(), g.cfg.PopulationSize, g.cfg.Generations, g.cfg.MutationRate, g.cfg.Seed)

	pop := g.initialPopulation(rng)
	elite := bestOf(pop).Clone()
	evals := len(pop)
	evaluationsTotal.Add(float64(len(pop)))

	history := make([]float64, 0, g.cfg.Generations)
	for gen := 1; gen <= g.cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			g.log.Warnf("genetic search cancelled at generation %d/%d", gen, g.cfg.Generations)
			return g.finish(elite, history, evals, gen-1, start), err
		}
		next := make([]Solution, 0, g.cfg.PopulationSize)
		for len(next) < g.cfg.PopulationSize {
			p1, p2 := g.parents(rng, pop)
			child := g.crossover(rng, p1.Sequence, p2.Sequence)
			if !schedule.IsFeasible(g.m, child) {
				child = schedule.Repair(g.m, child)
			}
			if g.mutate(rng, child) && !schedule.IsFeasible(g.m, child) {
				child = schedule.Repair(g.m, child)
			}
			next = append(next, Solution{Sequence: child, Value: g.eval.Evaluate(child).Value})
		}
		pop = next
		evals += len(pop)
		evaluationsTotal.Add(float64(len(pop)))
		if best := bestOf(pop); best.Value > elite.Value {
			elite = best.Clone()
		}
		history = append(history, elite.Value)
		g.observe(gen, pop, elite.Value)
	}

	res := g.finish(elite, history, evals, g.cfg.Generations, start)
	g.log.Infof("genetic search done: best=%.2f evaluations=%d duration=%s", res.Value, res.Evaluations, res.Duration)
	return res, nil
}

// initialPopulation draws uniform permutations and repairs the infeasible
// ones.
func (g *GeneticScheduler) initialPopulation(rng *rand.Rand) []Solution {
	pop := make([]Solution, 0, g.cfg.PopulationSize)
	for i := 0; i < g.cfg.PopulationSize; i++ {
		seq := schedule.Sequence(g.m.IDs())
		rng.Shuffle(len(seq), func(a, b int) { seq[a], seq[b] = seq[b], seq[a] })
		if !schedule.IsFeasible(g.m, seq) {
			seq = schedule.Repair(g.m, seq)
		}
		pop = append(pop, Solution{Sequence: seq, Value: g.eval.Evaluate(seq).Value})
	}
	return pop
}

// parents picks two distinct population members uniformly. Mating ignores
// fitness entirely.
func (g *GeneticScheduler) parents(rng *rand.Rand, pop []Solution) (Solution, Solution) {
	i := rng.Intn(len(pop))
	j := rng.Intn(len(pop) - 1)
	if j >= i {
		j++
	}
	return pop[i], pop[j]
}

// crossover builds a child from parent 1's segment [a,b) followed by parent
// 2's remaining ids in their relative order.
func (g *GeneticScheduler) crossover(rng *rand.Rand, p1, p2 schedule.Sequence) schedule.Sequence {
	n := len(p1)
	a := rng.Intn(n)
	b := rng.Intn(n - 1)
	if b >= a {
		b++
	}
	if a > b {
		a, b = b, a
	}
	child := make(schedule.Sequence, 0, n)
	child = append(child, p1[a:b]...)
	taken := make(map[int]bool, b-a)
	for _, id := range p1[a:b] {
		taken[id] = true
	}
	for _, id := range p2 {
		if !taken[id] {
			child = append(child, id)
		}
	}
	return child
}

// mutate swaps two distinct positions with the configured probability and
// reports whether the swap happened.
func (g *GeneticScheduler) mutate(rng *rand.Rand, s schedule.Sequence) bool {
	if rng.Float64() >= g.cfg.MutationRate {
		return false
	}
	i := rng.Intn(len(s))
	j := rng.Intn(len(s) - 1)
	if j >= i {
		j++
	}
	s[i], s[j] = s[j], s[i]
	return true
}

// bestOf returns the first member with the highest value.
func bestOf(pop []Solution) *Solution {
	best := &pop[0]
	for i := 1; i < len(pop); i++ {
		if pop[i].Value > best.Value {
			best = &pop[i]
		}
	}
	return best
}

func (g *GeneticScheduler) observe(gen int, pop []Solution, best float64) {
	vals := make([]float64, len(pop))
	for i, s := range pop {
		vals[i] = s.Value
	}
	mean := stat.Mean(vals, nil)
	sd := stat.StdDev(vals, nil)
	generationsTotal.Inc()
	bestValue.WithLabelValues(SolverGenetic, g.instance).Set(best)
	g.log.Infof("generation %d/%d best=%.2f mean=%.2f", gen, g.cfg.Generations, best, mean)
	if g.bus != nil {
		g.bus.Publish(progress.Update{
			RunID:      g.runID,
			Generation: gen,
			Total:      g.cfg.Generations,
			BestValue:  best,
			MeanValue:  mean,
			StdDev:     sd,
		})
	}
}

func (g *GeneticScheduler) finish(elite *Solution, history []float64, evals, gens int, start time.Time) Result {
	d := time.Since(start)
	runsTotal.WithLabelValues(SolverGenetic).Inc()
	runSeconds.WithLabelValues(SolverGenetic).Observe(d.Seconds())
	return Result{
		Best:        elite.Sequence,
		Value:       elite.Value,
		History:     history,
		Generations: gens,
		Evaluations: evals,
		Duration:    d,
	}
}
