// Package fields implements physim's force fields: a vector field that,
// given a particle's position and mass, yields a force acting on it.
// Grounded in physim's original fields module (physim/fields/field.hpp),
// generalized here to operate on bare (position, mass) pairs rather than
// on each concrete particle kind, so the same field implementation
// serves free, mesh, and fluid particles alike without this package
// depending on the particles package.
package fields

import "github.com/lluisalemanypuig/physim/math/lin"

// Field computes the force a field exerts on a particle of the given
// mass located at pos.
type Field interface {
	Force(pos lin.V3, mass float32) lin.V3
}

// Gravity is a uniform acceleration field: every particle feels the
// same acceleration regardless of position, so its force scales with
// mass (F = m*a).
type Gravity struct {
	Acceleration lin.V3
}

// Force returns Acceleration scaled by mass.
func (g Gravity) Force(_ lin.V3, mass float32) lin.V3 {
	return g.Acceleration.Scale(mass)
}

// Punctual is a point-source attractor: the force on a particle points
// from its position towards Center, with magnitude Strength*mass
// divided by the squared distance to the center (an inverse-square
// gravitational pull), matching physim's fields::punctual.
type Punctual struct {
	Center   lin.V3
	Strength float32
}

// Force returns the attraction towards Center. Particles exactly at
// Center feel no force (the field is undefined there).
func (p Punctual) Force(pos lin.V3, mass float32) lin.V3 {
	d := p.Center.Sub(pos)
	r2 := d.LenSqr()
	if r2 < lin.Epsilon {
		return lin.V3{}
	}
	return d.Unit().Scale(p.Strength * mass / r2)
}

var (
	_ Field = Gravity{}
	_ Field = Punctual{}
)
