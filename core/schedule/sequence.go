// Package schedule holds the extraction-order type shared by the solvers and
// the operators that keep orders consistent with block precedence.
package schedule

import (
	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/model"
)

// Sequence is an extraction order over block ids.
type Sequence []int

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// IsFeasible reports whether every block in s appears after all of its
// predecessors. The sequence does not have to cover the whole model, a
// downward-closed subset in a valid order is feasible.
func IsFeasible(m *model.BlockModel, s Sequence) bool {
	done := make(map[int]bool, len(s))
	for _, id := range s {
		for _, p := range m.Predecessors(id) {
			if !done[p] {
				return false
			}
		}
		done[id] = true
	}
	return true
}
