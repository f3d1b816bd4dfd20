package particles

import "github.com/lluisalemanypuig/physim/math/lin"

// MeshParticle is a mass point belonging to a 1-D chain or 2-D grid
// mesh: it still collides with static geometry like any Free particle,
// but its force also includes the spring contributions from its mesh
// neighbors, computed by the meshes package. Its Fixed flag anchors it
// in place: fixed mesh particles still receive neighbor forces (so
// their pull shows up on the particles attached to them) but are never
// integrated.
type MeshParticle struct {
	Free
}

// NewMeshParticle returns a mesh particle at pos with physim's default
// free-particle attribute values.
func NewMeshParticle(pos lin.V3) *MeshParticle {
	return &MeshParticle{Free: *NewFree(pos)}
}
