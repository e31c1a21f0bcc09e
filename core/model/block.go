package model

// Destination codes carried by instance files. Anything other than ore is
// treated as waste by the economic evaluator.
const (
	DestinationWaste = 0
	DestinationOre   = 1
)

// Defaults applied by loaders when an optional column is absent from the
// instance file.
const (
	DefaultTonnage     = 100.0
	DefaultDestination = DestinationOre

	// depthValueFactor scales the depth-ramp fallback for missing ore values.
	depthValueFactor = 10.0
)

// Block is one extraction unit of a mine instance: its position, mass,
// routing decision and economic value, plus the ids of the blocks that must
// be extracted before it.
type Block struct {
	ID           int
	X, Y, Z      float64
	Tonnage      float64
	Destination  int
	OreValue     float64
	Predecessors []int
}

// IsOre reports whether the block is routed to the processing plant and
// therefore consumes period capacity.
func (b Block) IsOre() bool { return b.Destination == DestinationOre }

// DefaultOreValue is the fallback used when an instance carries no value
// column: deeper blocks are worth more, proportional to their depth below
// the highest bench.
func DefaultOreValue(z, maxZ float64) float64 { return (maxZ - z) * depthValueFactor }
