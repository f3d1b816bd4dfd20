// Package simulator owns a physim scene end to end: the particle
// populations, meshes, fluids, static geometry, force fields, and
// emitters, and drives them one time step at a time. Grounded in
// physim's simulator class and its per-kind _simulate_* methods, styled
// after gazed-vu's physics.Simulate entry point and move.Mover.Step.
package simulator

import (
	"errors"

	"github.com/lluisalemanypuig/physim/emitters"
	"github.com/lluisalemanypuig/physim/fields"
	"github.com/lluisalemanypuig/physim/fluids"
	"github.com/lluisalemanypuig/physim/geometry"
	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/lluisalemanypuig/physim/meshes"
	"github.com/lluisalemanypuig/physim/particles"
)

// Simulator owns every dynamic object inserted into it: free, sized,
// and agent particle populations, meshes, fluids, static geometry, and
// force fields. It is the sole mutator of that state; callers drive it
// by calling Step once per frame.
type Simulator struct {
	dt       float32
	solver   Solver
	viscDrag float32
	gravity  *fields.Gravity
	partPart bool

	Fields []fields.Field
	Scene  []geometry.Geometry

	Free   []*particles.Free
	Sized  []*particles.Sized
	Agents []*particles.Agent

	Chains []*meshes.Chain
	Grids  []*meshes.Grid
	Fluids []*fluids.Fluid

	freeIDs   []EntityID
	sizedIDs  []EntityID
	agentIDs  []EntityID
	chainIDs  []EntityID
	gridIDs   []EntityID
	fluidIDs  []EntityID

	FreeEmitter  *emitters.FreeEmitter
	SizedEmitter *emitters.SizedEmitter
	AgentEmitter *emitters.SizedEmitter
}

// New returns a Simulator with physim's default tuning: dt = 1/60s,
// semi-implicit Euler, no viscous drag, no gravity, particle-particle
// collisions disabled.
func New() *Simulator {
	return &Simulator{
		dt:     1.0 / 60.0,
		solver: EulerSemi,
	}
}

// SetTimeStep sets the per-step duration in seconds. Returns an error
// if dt is not strictly positive.
func (s *Simulator) SetTimeStep(dt float32) error {
	if dt <= 0 {
		return errors.New("simulator: time step must be positive")
	}
	s.dt = dt
	return nil
}

// TimeStep returns the current per-step duration in seconds.
func (s *Simulator) TimeStep() float32 { return s.dt }

// SetSolver selects the integrator used for every particle kind.
func (s *Simulator) SetSolver(sv Solver) { s.solver = sv }

// SetViscousDrag sets the uniform drag coefficient subtracted from
// every particle's force each step, proportional to its velocity.
func (s *Simulator) SetViscousDrag(drag float32) { s.viscDrag = drag }

// SetGravity installs (or replaces) a uniform acceleration field equal
// to accel, the convenience wrapper spec.md's external API names
// instead of requiring the caller to build a fields.Gravity themselves.
func (s *Simulator) SetGravity(accel lin.V3) {
	if s.gravity == nil {
		s.gravity = &fields.Gravity{Acceleration: accel}
		s.Fields = append(s.Fields, s.gravity)
		return
	}
	s.gravity.Acceleration = accel
}

// SetParticleParticleCollisions toggles free, sized, and agent
// particle-particle collision resolution.
func (s *Simulator) SetParticleParticleCollisions(on bool) { s.partPart = on }

// AddGeometry appends a static collidable to the scene.
func (s *Simulator) AddGeometry(g geometry.Geometry) { s.Scene = append(s.Scene, g) }

// AddField appends a force field applied to every particle kind.
func (s *Simulator) AddField(f fields.Field) { s.Fields = append(s.Fields, f) }

// AddFree inserts a new free particle, assigns it the next index, runs
// the installed FreeEmitter (if any), and backfills PrevPos for Verlet.
func (s *Simulator) AddFree() EntityID {
	p := particles.NewFree(lin.V3{})
	return addTo(s, &s.Free, &s.freeIDs, p, func(p *particles.Free) {
		if s.FreeEmitter != nil {
			s.FreeEmitter.Emit(p)
		}
	})
}

// AddSized inserts a new sized particle, assigns it the next index,
// runs the installed SizedEmitter (if any), and backfills PrevPos for
// Verlet.
func (s *Simulator) AddSized() EntityID {
	p := particles.NewSized(lin.V3{})
	return addTo(s, &s.Sized, &s.sizedIDs, p, func(p *particles.Sized) {
		if s.SizedEmitter != nil {
			s.SizedEmitter.EmitSized(p)
		}
	})
}

// AddAgent inserts a new steering agent, assigns it the next index,
// runs the installed AgentEmitter (if any, applied to the agent's Sized
// half), and backfills PrevPos for Verlet.
func (s *Simulator) AddAgent() EntityID {
	p := particles.NewAgent(lin.V3{})
	return addTo(s, &s.Agents, &s.agentIDs, p, func(p *particles.Agent) {
		if s.AgentEmitter != nil {
			s.AgentEmitter.EmitSized(&p.Sized)
		}
	})
}

// addTo is the shared insertion routine for every particle kind: index
// assignment, emitter application, and Verlet prev-pos backfill.
func addTo[P interface{ AsBase() *particles.Base }](
	s *Simulator, pop *[]P, ids *[]EntityID, p P, emit func(P),
) EntityID {
	b := p.AsBase()
	b.Index = len(*pop)
	emit(p)
	if s.solver == Verlet {
		b.PrevPos = b.CurPos.Sub(b.CurVel.Scale(s.dt))
	}
	id := NewEntityID()
	*pop = append(*pop, p)
	*ids = append(*ids, id)
	return id
}

// AddChain inserts a 1-D spring mesh and materializes its initial
// state (rest lengths) from its particles' current positions.
func (s *Simulator) AddChain(c *meshes.Chain) EntityID {
	c.MakeInitialState()
	id := NewEntityID()
	s.Chains = append(s.Chains, c)
	s.chainIDs = append(s.chainIDs, id)
	return id
}

// AddGrid inserts a 2-D regular spring mesh and materializes its
// initial state (rest lengths per edge class) from its particles'
// current positions.
func (s *Simulator) AddGrid(g *meshes.Grid) EntityID {
	g.MakeInitialState()
	id := NewEntityID()
	s.Grids = append(s.Grids, g)
	s.gridIDs = append(s.gridIDs, id)
	return id
}

// AddFluid inserts an SPH fluid and materializes its initial density
// and pressure field from its particles' current positions.
func (s *Simulator) AddFluid(f *fluids.Fluid) EntityID {
	f.MakeInitialState()
	id := NewEntityID()
	s.Fluids = append(s.Fluids, f)
	s.fluidIDs = append(s.fluidIDs, id)
	return id
}

// ClearFree removes every free particle.
func (s *Simulator) ClearFree() { s.Free, s.freeIDs = nil, nil }

// ClearSized removes every sized particle.
func (s *Simulator) ClearSized() { s.Sized, s.sizedIDs = nil, nil }

// ClearAgents removes every agent.
func (s *Simulator) ClearAgents() { s.Agents, s.agentIDs = nil, nil }

// ClearMeshes removes every chain and grid.
func (s *Simulator) ClearMeshes() {
	s.Chains, s.chainIDs = nil, nil
	s.Grids, s.gridIDs = nil, nil
}

// ClearFluids removes every fluid.
func (s *Simulator) ClearFluids() { s.Fluids, s.fluidIDs = nil, nil }

// ClearAll resets the entire scene: populations, meshes, fluids,
// geometry, and fields.
func (s *Simulator) ClearAll() {
	s.ClearFree()
	s.ClearSized()
	s.ClearAgents()
	s.ClearMeshes()
	s.ClearFluids()
	s.Scene = nil
	s.Fields = nil
	s.gravity = nil
}

// NumFree, NumSized, and NumAgents report the current population sizes.
func (s *Simulator) NumFree() int   { return len(s.Free) }
func (s *Simulator) NumSized() int  { return len(s.Sized) }
func (s *Simulator) NumAgents() int { return len(s.Agents) }

// FreeAt, SizedAt, and AgentAt look up a particle by its current
// population index. Indices are stable only for the lifetime of the
// population (a Clear* invalidates every index into it); EntityID is
// the handle to use across a clear/re-insertion cycle.
func (s *Simulator) FreeAt(i int) *particles.Free   { return s.Free[i] }
func (s *Simulator) SizedAt(i int) *particles.Sized { return s.Sized[i] }
func (s *Simulator) AgentAt(i int) *particles.Agent { return s.Agents[i] }

// Solver returns the integrator currently selected.
func (s *Simulator) Solver() Solver { return s.solver }

// ViscousDrag returns the uniform drag coefficient currently in use.
func (s *Simulator) ViscousDrag() float32 { return s.viscDrag }

// ParticleParticleCollisions reports whether particle-particle
// collision resolution is enabled.
func (s *Simulator) ParticleParticleCollisions() bool { return s.partPart }
