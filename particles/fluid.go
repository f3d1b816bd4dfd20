package particles

import "github.com/lluisalemanypuig/physim/math/lin"

// FluidParticle is an SPH sample point: besides the base particle
// state, it carries the density and pressure computed each step from
// its neighborhood, grounded in physim's fluid_particle.
type FluidParticle struct {
	Base
	Density  float32
	Pressure float32
}

// NewFluidParticle returns a fluid particle at pos with zero density
// and pressure.
func NewFluidParticle(pos lin.V3) *FluidParticle {
	return &FluidParticle{Base: NewBase(pos)}
}
