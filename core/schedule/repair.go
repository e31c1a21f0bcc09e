package schedule

import (
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/model"
)

// Repair reorders s so predecessors come before their dependents. Each
// block's unmet predecessor chain is emitted immediately before it, walking
// the predecessor lists depth first in listed order; blocks already emitted
// are skipped. For an acyclic model the result is always feasible, repairing
// a feasible sequence returns it in the same order, and repairing a full
// permutation yields a permutation of the same ids.
func Repair(m *model.BlockModel, s Sequence) Sequence {
	out := make(Sequence, 0, len(s))
	done := make(map[int]bool, len(s))
	var emit func(id int)
	emit = func(id int) {
		if done[id] {
			return
		}
		done[id] = true
		for _, p := range m.Predecessors(id) {
			emit(p)
		}
		out = append(out, id)
	}
	for _, id := range s {
		emit(id)
	}
	return out
}
