package economics

import (
	"testing"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/model"
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/schedule"
)

func TestSummarize(t *testing.T) {
	e := newEval(t, []model.Block{
		{ID: 0, Tonnage: 10, Destination: model.DestinationOre, OreValue: 5},
		{ID: 1, Tonnage: 10, Destination: model.DestinationWaste, Predecessors: []int{0}},
		{ID: 2, Tonnage: 10, Destination: model.DestinationOre, OreValue: 8, Predecessors: []int{0}},
		{ID: 3, Tonnage: 5, Destination: model.DestinationOre, OreValue: 2, Predecessors: []int{1, 2}},
	}, Config{DiscountRate: 0.15, Capacity: 15, MiningCost: 0.75})

	_, plan := e.Plan(schedule.Sequence{0, 1, 2, 3})
	sums := e.Summarize(plan)
	if len(sums) != 2 {
		t.Fatalf("got %d periods, want 2", len(sums))
	}

	p1 := sums[0]
	if p1.Period != 1 || p1.Blocks != 2 {
		t.Errorf("period 1 = %+v", p1)
	}
	if !almost(p1.OreTonnage, 10) || !almost(p1.WasteTonnage, 10) {
		t.Errorf("period 1 tonnage = %v ore / %v waste, want 10/10", p1.OreTonnage, p1.WasteTonnage)
	}
	if !almost(p1.CashFlow, -10) || !almost(p1.Discounted, -10) {
		t.Errorf("period 1 cash = %v disc = %v, want -10/-10", p1.CashFlow, p1.Discounted)
	}
	if !almost(p1.StripRatio(), 1) {
		t.Errorf("period 1 strip ratio = %v, want 1", p1.StripRatio())
	}

	p2 := sums[1]
	if p2.Period != 2 || p2.Blocks != 2 {
		t.Errorf("period 2 = %+v", p2)
	}
	if !almost(p2.OreTonnage, 15) || !almost(p2.WasteTonnage, 0) {
		t.Errorf("period 2 tonnage = %v ore / %v waste, want 15/0", p2.OreTonnage, p2.WasteTonnage)
	}
	if !almost(p2.CashFlow, -1.25) || !almost(p2.Discounted, -1.25/1.15) {
		t.Errorf("period 2 cash = %v disc = %v", p2.CashFlow, p2.Discounted)
	}
	if p2.StripRatio() != 0 {
		t.Errorf("period 2 strip ratio = %v, want 0", p2.StripRatio())
	}
}

func TestSummarizeEmptyPlan(t *testing.T) {
	e := newEval(t, []model.Block{
		{ID: 0, Tonnage: 10, Destination: model.DestinationOre, OreValue: 5},
	}, Config{})
	if sums := e.Summarize(nil); len(sums) != 0 {
		t.Fatalf("got %d periods for empty plan", len(sums))
	}
}

func TestStripRatioAllWaste(t *testing.T) {
	p := PeriodSummary{WasteTonnage: 30}
	if got := p.StripRatio(); got != 30 {
		t.Errorf("StripRatio = %v, want 30", got)
	}
	if got := (PeriodSummary{}).StripRatio(); got != 0 {
		t.Errorf("StripRatio zero = %v, want 0", got)
	}
}
