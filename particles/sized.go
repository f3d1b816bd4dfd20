package particles

import "github.com/lluisalemanypuig/physim/math/lin"

// Sized is a Free particle that also occupies a sphere of radius R
// centered at its current position, and so collides with other sized
// particles, not only with static geometry. Grounded in physim's
// sized_particle.
type Sized struct {
	Free
	R float32
}

// NewSized returns a Sized particle at pos with radius 1.
func NewSized(pos lin.V3) *Sized {
	return &Sized{Free: *NewFree(pos), R: 1}
}
