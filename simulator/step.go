package simulator

import (
	"github.com/lluisalemanypuig/physim/geometry"
	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/lluisalemanypuig/physim/particles"
)

// Step advances the whole scene by one time step, running the fluid
// update sequentially. Equivalent to StepWorkers(0), matching physim's
// apply_time_step().
func (s *Simulator) Step() {
	s.StepWorkers(0)
}

// StepWorkers advances the whole scene by one time step: sized
// particles, then agents, then free particles, then meshes, then
// fluids, each population visited in index order. This fixed order,
// and the per-kind stepping logic below, is grounded in physim's
// simulator::simulate_sized_particles / _simulate_agent_particles /
// simulate_free_particles / _simulate_meshes / _simulate_fluids.
//
// workers selects the fluid update's execution path: workers <= 1
// runs fluids.Fluid.UpdateForces sequentially, workers > 1 partitions
// it across that many goroutines via fluids.Fluid.UpdateForcesWorkers.
// Every other population is stepped sequentially regardless of
// workers, matching spec.md's "the engine is single-threaded by
// default" scheduling model, in which only the fluid update's
// per-particle loops are eligible for partitioning.
func (s *Simulator) StepWorkers(workers int) {
	s.stepSized()
	s.stepAgents()
	s.stepFree()
	s.stepMeshes()
	s.stepFluids(workers)
}

// resetFree re-seeds a dead free-like particle via its emitter (or,
// absent one, leaves it at rest at the origin) and marks it alive
// again for a full lifetime, matching physim's init_particle. The
// particle keeps its population index.
func resetFree(f *particles.Free, emit func(*particles.Free)) {
	idx := f.Index
	*f = *particles.NewFree(lin.V3{})
	f.Index = idx
	if emit != nil {
		emit(f)
	}
}

func (s *Simulator) stepSized() {
	for i, p := range s.Sized {
		if p.Fixed {
			continue
		}
		if p.IsDead() {
			resetFree(&p.Free, nil)
			if s.SizedEmitter != nil {
				s.SizedEmitter.EmitSized(p)
			}
			continue
		}
		p.ReduceStarttime(s.dt)
		if !p.CanMove() {
			continue
		}

		p.Force = lin.V3{}
		ComputeForces(&p.Base, s.Fields, s.viscDrag)
		p.ReduceLifetime(s.dt)

		predPos, predVel := ApplySolver(&p.Base, s.dt, s.solver)

		collided, finalPos, finalVel := s.resolveSceneFirstHitSphere(
			p.CurPos, predPos, predVel, p.CurVel, p.R, p.Bouncing, p.Friction)

		if collided {
			p.SavePosition()
			p.CurPos, p.CurVel = finalPos, finalVel
			if s.solver == Verlet {
				p.PrevPos = p.CurPos.Sub(p.CurVel.Scale(s.dt))
			}
		} else {
			p.SavePosition()
			p.CurPos, p.CurVel = predPos, predVel
		}

		if s.partPart {
			s.resolveSizedSizedCollision(p, i)
		}
	}
}

func (s *Simulator) stepAgents() {
	for i, p := range s.Agents {
		if p.Fixed {
			continue
		}
		p.ReduceLifetime(s.dt)

		steer := p.ApplyTargetBehaviours().
			Add(p.ApplySceneAvoidance(s.Scene)).
			Add(p.ApplyAgentBehaviours(s.Agents))
		p.Force = steer.Truncate(p.MaxForce)

		accel := p.Force.Scale(1 / p.Mass)
		predVel := p.CurVel.Add(accel.Scale(s.dt))
		predPos := p.CurPos.Add(predVel.Scale(s.dt))

		collided, finalPos, finalVel := s.resolveSceneFirstHitSphere(
			p.CurPos, predPos, predVel, p.CurVel, p.R, p.Bouncing, p.Friction)

		if collided {
			p.SavePosition()
			p.CurPos, p.CurVel = finalPos, finalVel
		} else {
			p.SavePosition()
			p.CurPos, p.CurVel = predPos, predVel
		}

		if s.partPart {
			s.resolveAgentAgentCollision(p, i)
		}

		alignment := p.CurVel.Sub(p.Orientation)
		if alignment.Len() > lin.Epsilon {
			p.Orientation = p.Orientation.Add(alignment.Unit().Scale(p.AlignWeight)).Unit()
		}
	}
}

func (s *Simulator) stepFree() {
	for i, p := range s.Free {
		if p.Fixed {
			continue
		}
		if p.IsDead() {
			resetFree(p, func(f *particles.Free) {
				if s.FreeEmitter != nil {
					s.FreeEmitter.Emit(f)
				}
			})
			continue
		}
		p.ReduceStarttime(s.dt)
		if !p.CanMove() {
			continue
		}

		ComputeForces(&p.Base, s.Fields, s.viscDrag)
		p.ReduceLifetime(s.dt)

		predPos, predVel := ApplySolver(&p.Base, s.dt, s.solver)

		collided, finalPos, finalVel, finalPrev := s.resolveSceneAllHitsPoint(
			p.CurPos, predPos, predVel, p.CurVel, p.Bouncing, p.Friction, s.solver == Verlet, s.dt)

		if collided {
			p.SavePosition()
			p.CurPos, p.CurVel = finalPos, finalVel
			if s.solver == Verlet {
				p.PrevPos = finalPrev
			}
		} else {
			p.SavePosition()
			p.CurPos, p.CurVel = predPos, predVel
		}

		if s.partPart {
			s.resolveFreeFreeCollision(p, i)
		}

		p.Force = lin.V3{}
	}
}

// freeContactRadius is the proximity threshold used to detect a
// free-free particle collision: free particles carry no Radius field,
// so "touching" is defined as being within this distance of each
// other rather than by overlapping spheres, per the zero-radius
// point-point proximity rule decided for free-free pairs.
const freeContactRadius = 10 * geometry.Tolerance

// resolveFreeFreeCollision resolves p against every already-stepped
// free particle j < i this step: when the pair is closer than
// freeContactRadius, the pair separates along the line connecting them
// and p's velocity component along that line is damped by its bounce
// and friction coefficients, mirroring the plane response used
// elsewhere in this package but specialized to a point-point contact.
func (s *Simulator) resolveFreeFreeCollision(p *particles.Free, i int) {
	for j := 0; j < i; j++ {
		other := s.Free[j]
		d := p.CurPos.Sub(other.CurPos)
		dist := d.Len()
		if dist >= freeContactRadius || dist < lin.Epsilon {
			continue
		}
		n := d.Scale(1 / dist)
		p.CurPos = other.CurPos.Add(n.Scale(freeContactRadius))

		nv := n.Dot(p.CurVel)
		p.CurVel = p.CurVel.Sub(n.Scale((1 + p.Bouncing) * nv))

		vt := p.CurVel.Sub(n.Scale(n.Dot(p.CurVel)))
		p.CurVel = p.CurVel.Sub(vt.Scale(p.Friction))
	}
}

func (s *Simulator) stepMeshes() {
	for _, c := range s.Chains {
		for _, p := range c.Particles {
			p.Force = lin.V3{}
		}
		c.UpdateForces()
		s.integrateMeshParticles(c.Particles)
	}
	for _, g := range s.Grids {
		for _, p := range g.Particles {
			p.Force = lin.V3{}
		}
		g.UpdateForces()
		s.integrateMeshParticles(g.Particles)
	}
}

// integrateMeshParticles runs the shared per-particle half of a mesh
// step: field forces, solver, and geometry collision, matching physim's
// _simulate_meshes. Mesh particles take no part in particle-particle
// collision.
func (s *Simulator) integrateMeshParticles(mps []*particles.MeshParticle) {
	for _, mp := range mps {
		if mp.Fixed {
			mp.Force = lin.V3{}
			continue
		}

		ComputeForces(&mp.Base, s.Fields, s.viscDrag)

		predPos, predVel := ApplySolver(&mp.Base, s.dt, s.solver)

		collided, finalPos, finalVel, finalPrev := s.resolveSceneAllHitsPoint(
			mp.CurPos, predPos, predVel, mp.CurVel, mp.Bouncing, mp.Friction, s.solver == Verlet, s.dt)

		if collided {
			mp.SavePosition()
			mp.CurPos, mp.CurVel = finalPos, finalVel
			if s.solver == Verlet {
				mp.PrevPos = finalPrev
			}
		} else {
			mp.SavePosition()
			mp.CurPos, mp.CurVel = predPos, predVel
		}

		mp.Force = lin.V3{}
	}
}

func (s *Simulator) stepFluids(workers int) {
	for _, f := range s.Fluids {
		f.ClearForces()
		if workers > 1 {
			f.UpdateForcesWorkers(workers)
		} else {
			f.UpdateForces()
		}

		const bounce = 0.1
		friction := f.Viscosity / 50000

		for _, fp := range f.Particles {
			ComputeForces(&fp.Base, s.Fields, s.viscDrag)

			predPos, predVel := ApplySolver(&fp.Base, s.dt, s.solver)

			collided, finalPos, finalVel, finalPrev := s.resolveSceneAllHitsPoint(
				fp.CurPos, predPos, predVel, fp.CurVel, bounce, friction, s.solver == Verlet, s.dt)

			if collided {
				fp.SavePosition()
				fp.CurPos, fp.CurVel = finalPos, finalVel
				if s.solver == Verlet {
					fp.PrevPos = finalPrev
				}
			} else {
				fp.SavePosition()
				fp.CurPos, fp.CurVel = predPos, predVel
			}

			fp.Force = lin.V3{}
		}
	}
}

// resolveSceneFirstHitSphere implements physim's "first hit wins"
// geometry collision rule used for sized particles and agents: the
// first scene primitive whose segment test against (curPos, predPos)
// succeeds resolves the collision and no further primitive is tried.
func (s *Simulator) resolveSceneFirstHitSphere(
	curPos, predPos, predVel, curVel lin.V3, radius, bounce, friction float32,
) (collided bool, finalPos, finalVel lin.V3) {
	for _, g := range s.Scene {
		if !g.IntersectsSegment(curPos, predPos) {
			continue
		}
		finalPos, finalVel = g.ResolveSphere(curPos, predPos, predVel, curVel, radius, bounce, friction)
		return true, finalPos, finalVel
	}
	return false, predPos, predVel
}

// resolveSceneAllHitsPoint implements physim's free-particle geometry
// collision rule: every scene primitive is tried in order, and each
// collision updates the running "predicted particle" using the latest
// predicted position as the new segment endpoint, so a particle may be
// deflected more than once in a single step. Matches
// simulator::simulate_free_particles.
func (s *Simulator) resolveSceneAllHitsPoint(
	curPos, predPos, predVel, curVel lin.V3, bounce, friction float32, verlet bool, dt float32,
) (collided bool, finalPos, finalVel, finalPrev lin.V3) {
	finalPos, finalVel = predPos, predVel
	for _, g := range s.Scene {
		if !g.IntersectsSegment(curPos, finalPos) {
			continue
		}
		collided = true
		finalPos, finalVel = g.ResolvePoint(curPos, finalPos, finalVel, curVel, bounce, friction)
		if verlet {
			finalPrev = finalPos.Sub(finalVel.Scale(dt))
		}
	}
	return collided, finalPos, finalVel, finalPrev
}

// resolveSizedSizedCollision resolves p against every already-stepped
// sized particle j < i this step, treating each as a momentarily static
// sphere obstacle. physim's own find_update_partcoll_sized was not
// available to ground this against directly; this is a direct
// application of the same sphere collision response (geometry.Sphere)
// already used for scene geometry, applied symmetrically pair by pair.
func (s *Simulator) resolveSizedSizedCollision(p *particles.Sized, i int) {
	for j := 0; j < i; j++ {
		other := s.Sized[j]
		sphere, err := geometry.NewSphere(other.CurPos, other.R)
		if err != nil {
			continue
		}
		if !sphere.IntersectsSphere(p.CurPos, p.R) {
			continue
		}
		p.CurPos, p.CurVel = sphere.ResolveSphere(p.PrevPos, p.CurPos, p.CurVel, p.CurVel, p.R, p.Bouncing, p.Friction)
	}
}

// resolveAgentAgentCollision is resolveSizedSizedCollision specialized
// to the agent population.
func (s *Simulator) resolveAgentAgentCollision(p *particles.Agent, i int) {
	for j := 0; j < i; j++ {
		other := s.Agents[j]
		sphere, err := geometry.NewSphere(other.CurPos, other.R)
		if err != nil {
			continue
		}
		if !sphere.IntersectsSphere(p.CurPos, p.R) {
			continue
		}
		p.CurPos, p.CurVel = sphere.ResolveSphere(p.PrevPos, p.CurPos, p.CurVel, p.CurVel, p.R, p.Bouncing, p.Friction)
	}
}
