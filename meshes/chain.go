package meshes

import "github.com/lluisalemanypuig/physim/particles"

// Chain is a 1-D mass-spring mesh: particles indexed 0..N-1, with a
// spring between every consecutive pair, grounded in physim's
// mesh type d1 (a mesh_type with no dedicated mesh2d_regular-style
// subclass, since a 1-D spring chain needs no edge-class machinery).
type Chain struct {
	Particles []*particles.MeshParticle

	Ke float32
	Kd float32

	restLen []float32
}

// NewChain allocates a chain of n particles with total mass kg
// (distributed evenly) and physim's default spring/particle
// coefficients (Ke=100, Kd=0.05, bouncing=0.8, friction=0.2).
func NewChain(n int, kg float32) *Chain {
	return &Chain{
		Particles: newMeshParticles(n, kg, 0.8, 0.2),
		Ke:        100,
		Kd:        0.05,
	}
}

// MakeInitialState records the current distance between every
// consecutive pair of particles as that spring's rest length. Must be
// called once the particles have been given their starting positions,
// and before the first call to UpdateForces.
func (c *Chain) MakeInitialState() {
	c.restLen = make([]float32, max0(len(c.Particles)-1))
	for i := 0; i+1 < len(c.Particles); i++ {
		c.restLen[i] = c.Particles[i].CurPos.Dist(c.Particles[i+1].CurPos)
	}
}

// UpdateForces accumulates, for every spring i<->i+1, the Hookean plus
// damped force onto both of its endpoints. It does not clear forces
// first: callers are expected to have already zeroed Force for this
// step, matching physim's update_forces precondition.
func (c *Chain) UpdateForces() {
	for i := 0; i+1 < len(c.Particles); i++ {
		springForce(c.Particles[i], c.Particles[i+1], c.restLen[i], c.Ke, c.Kd)
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
