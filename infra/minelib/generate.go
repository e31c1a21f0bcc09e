package minelib

import (
	"errors"
	"math/rand"

	"github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/model"
)

const benchHeight = 10.0

// GenerateConfig controls the synthetic pit generator.
// Zero fields get defaults.
type GenerateConfig struct {
	NX      int     `json:"nx" yaml:"nx"`
	NY      int     `json:"ny" yaml:"ny"`
	NZ      int     `json:"nz" yaml:"nz"`
	Tonnage float64 `json:"tonnage" yaml:"tonnage"`
	Noise   float64 `json:"noise" yaml:"noise"`
	Seed    int64   `json:"seed" yaml:"seed"`
}

// SetDefaults fills zero fields with defaults.
func (c *GenerateConfig) SetDefaults() {
	if c.NX == 0 {
		c.NX = 6
	}
	if c.NY == 0 {
		c.NY = 6
	}
	if c.NZ == 0 {
		c.NZ = 4
	}
	if c.Tonnage == 0 {
		c.Tonnage = model.DefaultTonnage
	}
	if c.Noise == 0 {
		c.Noise = 20
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
}

// Validate checks the configuration.
func (c GenerateConfig) Validate() error {
	if c.NX < 1 || c.NY < 1 || c.NZ < 1 {
		return errors.New("minelib: grid dimensions must be at least 1")
	}
	if c.Tonnage <= 0 {
		return errors.New("minelib: tonnage must be positive")
	}
	if c.Noise < 0 {
		return errors.New("minelib: noise must not be negative")
	}
	return nil
}

// Generate builds a synthetic NX*NY*NZ pit. Bench 0 is the surface; every
// deeper block lists the up-to-five blocks in the cross pattern one bench
// above as predecessors, so instances carry multi-level precedence chains.
// Ore value follows the depth ramp plus seeded noise; destination comes
// from the value sign. The result is deterministic for a fixed config.
func Generate(cfg GenerateConfig) ([]model.Block, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	id := func(i, j, k int) int { return k*cfg.NX*cfg.NY + j*cfg.NX + i }
	maxZ := float64(cfg.NZ-1) * benchHeight

	blocks := make([]model.Block, 0, cfg.NX*cfg.NY*cfg.NZ)
	for k := 0; k < cfg.NZ; k++ {
		for j := 0; j < cfg.NY; j++ {
			for i := 0; i < cfg.NX; i++ {
				z := float64(cfg.NZ-1-k) * benchHeight
				val := model.DefaultOreValue(z, maxZ) + cfg.Noise*(2*rng.Float64()-1)
				dest := model.DestinationWaste
				if val > 0 {
					dest = model.DestinationOre
				}
				var preds []int
				if k > 0 {
					preds = append(preds, id(i, j, k-1))
					if i > 0 {
						preds = append(preds, id(i-1, j, k-1))
					}
					if i < cfg.NX-1 {
						preds = append(preds, id(i+1, j, k-1))
					}
					if j > 0 {
						preds = append(preds, id(i, j-1, k-1))
					}
					if j < cfg.NY-1 {
						preds = append(preds, id(i, j+1, k-1))
					}
				}
				blocks = append(blocks, model.Block{
					ID:           id(i, j, k),
					X:            float64(i) * benchHeight,
					Y:            float64(j) * benchHeight,
					Z:            z,
					Tonnage:      cfg.Tonnage,
					Destination:  dest,
					OreValue:     val,
					Predecessors: preds,
				})
			}
		}
	}
	return blocks, nil
}
