package simulator

import (
	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/lluisalemanypuig/physim/particles"
)

// Solver selects the numerical integrator used to predict a particle's
// next position and velocity from its current state and accumulated
// force, grounded in physim's solver_type.
type Solver int

const (
	// EulerOrig is explicit (original) Euler: position advances using
	// the *current* velocity, velocity advances using the force.
	EulerOrig Solver = iota
	// EulerSemi is semi-implicit Euler: velocity advances first, and
	// position advances using the *updated* velocity. Unconditionally
	// more stable than EulerOrig for stiff spring systems.
	EulerSemi
	// Verlet predicts the next position from the current and previous
	// positions directly, without storing velocity as primary state;
	// velocity is then derived from the position delta.
	Verlet
)

// ApplySolver predicts the next position and velocity of b under dt
// seconds, using solver s. It does not mutate b.
func ApplySolver(b *particles.Base, dt float32, s Solver) (predPos, predVel lin.V3) {
	invMass := 1 / b.Mass

	switch s {
	case EulerOrig:
		predPos = b.CurPos.Add(b.CurVel.Scale(dt))
		predVel = b.CurVel.Add(b.Force.Scale(dt * invMass))

	case EulerSemi:
		predVel = b.CurVel.Add(b.Force.Scale(dt * invMass))
		predPos = b.CurPos.Add(predVel.Scale(dt))

	case Verlet:
		predPos = b.CurPos.Sub(b.PrevPos).Add(b.CurPos).Add(b.Force.Scale(dt * dt * invMass))
		predVel = predPos.Sub(b.CurPos).Scale(1 / dt)

	default:
		predPos, predVel = b.CurPos, b.CurVel
	}
	return predPos, predVel
}
