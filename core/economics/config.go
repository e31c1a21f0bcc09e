package economics

import "errors"

// Defaults applied when a field is left at zero.
const (
	DefaultDiscountRate = 0.15
	DefaultCapacity     = 10_000_000.0
	DefaultMiningCost   = 0.75
)

// Config holds the economic parameters of a valuation.
type Config struct {
	// DiscountRate is the per-period rate applied as (1+rate)^(period-1).
	DiscountRate float64 `json:"discount_rate" yaml:"discount_rate"`
	// Capacity is the ore tonnage a single period may absorb.
	Capacity float64 `json:"capacity" yaml:"capacity"`
	// MiningCost is the extraction cost per tonne, ore and waste alike.
	MiningCost float64 `json:"mining_cost" yaml:"mining_cost"`
}

// SetDefaults fills zero fields with the standard parameters.
func (c *Config) SetDefaults() {
	if c.DiscountRate == 0 {
		c.DiscountRate = DefaultDiscountRate
	}
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	if c.MiningCost == 0 {
		c.MiningCost = DefaultMiningCost
	}
}

// Validate rejects parameters the evaluator cannot work with.
func (c Config) Validate() error {
	if c.DiscountRate < 0 {
		return errors.New("economics: discount rate must not be negative")
	}
	if c.Capacity <= 0 {
		return errors.New("economics: capacity must be positive")
	}
	if c.MiningCost < 0 {
		return errors.New("economics: mining cost must not be negative")
	}
	return nil
}
