// Package meshes implements mass-spring structured entities: 1-D spring
// chains and 2-D regular cloth-like grids. Both are simulated as plain
// mesh particles whose per-step force is augmented, before integration,
// with the Hookean-plus-damping spring forces contributed by their
// mesh neighbors, grounded in physim's meshes::mesh hierarchy.
package meshes

import (
	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/lluisalemanypuig/physim/particles"
)

// springForce is the force law shared by every spring in every mesh
// kind: F = (Ke*(len-restLen) + Kd*(dv.u))*u, applied +F on a and -F on
// b, where u is the unit vector from a to b.
func springForce(a, b *particles.MeshParticle, restLen, ke, kd float32) {
	d := b.CurPos.Sub(a.CurPos)
	length := d.Len()
	if length < lin.Epsilon {
		return
	}
	u := d.Scale(1 / length)
	dv := b.CurVel.Sub(a.CurVel)
	f := u.Scale(ke*(length-restLen) + kd*dv.Dot(u))

	a.AddForce(f)
	b.AddForce(f.Neg())
}

// newMeshParticles builds n mesh particles, each with mass Kg/n,
// assigning the local index 0..n-1, matching physim's mesh::allocate.
func newMeshParticles(n int, kg, bouncing, friction float32) []*particles.MeshParticle {
	ps := make([]*particles.MeshParticle, n)
	perParticle := kg / float32(n)
	for i := range ps {
		p := particles.NewMeshParticle(lin.V3{})
		p.Mass = perParticle
		p.Bouncing = bouncing
		p.Friction = friction
		p.Index = i
		ps[i] = p
	}
	return ps
}
