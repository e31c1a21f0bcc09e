package economics

import "sort"

// PeriodSummary aggregates the plan rows of one extraction period.
type PeriodSummary struct {
	Period       int     `json:"period"`
	Blocks       int     `json:"blocks"`
	OreTonnage   float64 `json:"ore_tonnage"`
	WasteTonnage float64 `json:"waste_tonnage"`
	CashFlow     float64 `json:"cash_flow"`
	Discounted   float64 `json:"discounted"`
}

// StripRatio returns the tonnes of waste moved per tonne of ore. All-waste
// periods report the waste tonnage itself so the ratio stays finite.
func (p PeriodSummary) StripRatio() float64 {
	if p.OreTonnage == 0 {
		if p.WasteTonnage == 0 {
			return 0
		}
		return p.WasteTonnage
	}
	return p.WasteTonnage / p.OreTonnage
}

// Summarize aggregates a plan by period, ordered by period number.
func (e *Evaluator) Summarize(plan []Assignment) []PeriodSummary {
	byPeriod := map[int]*PeriodSummary{}
	for _, a := range plan {
		s := byPeriod[a.Period]
		if s == nil {
			s = &PeriodSummary{Period: a.Period}
			byPeriod[a.Period] = s
		}
		s.Blocks++
		if e.m.IsOre(a.BlockID) {
			s.OreTonnage += e.m.Tonnage(a.BlockID)
		} else {
			s.WasteTonnage += e.m.Tonnage(a.BlockID)
		}
		s.CashFlow += a.CashFlow
		s.Discounted += a.Discounted
	}
	out := make([]PeriodSummary, 0, len(byPeriod))
	for _, s := range byPeriod {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}
