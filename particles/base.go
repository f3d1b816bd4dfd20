// Package particles implements physim's particle kinds: the minimal
// state every simulated point shares (Base), particles that collide
// with static geometry (Free), particles with a spatial extent (Sized),
// steering agents (Agent), mesh particles (MeshParticle), and fluid
// particles (FluidParticle). Go doesn't have inheritance, so the
// original class chain base_particle -> free_particle -> sized_particle
// -> agent_particle is flattened into struct embedding: each kind
// embeds the one "below" it and inherits its fields and methods
// directly, grounded in physim's original particles module.
package particles

import "github.com/lluisalemanypuig/physim/math/lin"

// Kind names a particle's concrete role. Particles do not store a
// Kind: the simulator keeps one population slice per kind and
// dispatches on that.
type Kind int

const (
	KindFree Kind = iota
	KindSized
	KindAgent
	KindMesh
	KindFluid
)

// Base is the state every particle kind carries: position (current and
// at the previous step), velocity, accumulated force, mass, and the
// stable index assigned by the simulator when the particle is added to
// a population.
type Base struct {
	PrevPos lin.V3
	CurPos  lin.V3
	CurVel  lin.V3
	Force   lin.V3
	Mass    float32
	Index   int
}

// NewBase returns a Base at pos, at rest, with unit mass.
func NewBase(pos lin.V3) Base {
	return Base{CurPos: pos, PrevPos: pos, Mass: 1}
}

// Translate shifts the current position by v.
func (b *Base) Translate(v lin.V3) { b.CurPos = b.CurPos.Add(v) }

// Accelerate adds v to the current velocity.
func (b *Base) Accelerate(v lin.V3) { b.CurVel = b.CurVel.Add(v) }

// AddForce accumulates f into the particle's force for this step.
func (b *Base) AddForce(f lin.V3) { b.Force = b.Force.Add(f) }

// SavePosition copies the current position into the previous one,
// called once per step before the position is advanced.
func (b *Base) SavePosition() { b.PrevPos = b.CurPos }

// AsBase returns b itself. Promoted through every particle kind that
// embeds Base (directly or, for Sized/Agent, transitively through
// Free), it lets kind-agnostic code (the solver, force accumulation)
// operate uniformly on any particle kind's shared state.
func (b *Base) AsBase() *Base { return b }
