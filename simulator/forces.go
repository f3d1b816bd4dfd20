package simulator

import (
	"github.com/lluisalemanypuig/physim/fields"
	"github.com/lluisalemanypuig/physim/particles"
)

// ComputeForces accumulates the force every field in fields exerts on
// b, then applies viscous drag (-viscDrag*velocity), matching physim's
// simulator::compute_forces. Force fields read the particle's position
// and mass only; drag reads velocity.
func ComputeForces(b *particles.Base, flds []fields.Field, viscDrag float32) {
	for _, f := range flds {
		b.AddForce(f.Force(b.CurPos, b.Mass))
	}
	b.AddForce(b.CurVel.Scale(-viscDrag))
}
