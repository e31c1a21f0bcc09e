package solver

import (
	cp "github.com/jinzhu/copier"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/schedule"
)

// Solution is an evaluated extraction order.
type Solution struct {
	Sequence schedule.Sequence `json:"sequence"`
	Value    float64           `json:"value"`
}

// Clone returns a deep copy. The elite is cloned so later operator work on
// population members can never reach back into it.
func (s *Solution) Clone() *Solution {
	clone := &Solution{}
	cp.Copy(clone, s)
	return clone
}
