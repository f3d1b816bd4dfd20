package particles

import "github.com/lluisalemanypuig/physim/math/lin"

// Free is a particle subject to forces and static-geometry collision,
// and, when the simulator enables it, to point-point collision with
// other free particles. Grounded in physim's free_particle.
type Free struct {
	Base

	Bouncing  float32
	Friction  float32
	Charge    float32
	Lifetime  float32
	Starttime float32
	Fixed     bool
}

// NewFree returns a Free particle at pos with physim's default
// attribute values (bouncing 0.8, friction 0.2, lifetime 10s).
func NewFree(pos lin.V3) *Free {
	return &Free{
		Base:      NewBase(pos),
		Bouncing:  0.8,
		Friction:  0.2,
		Lifetime:  10,
		Starttime: 0,
	}
}

// ReduceLifetime decreases Lifetime by t (t >= 0).
func (f *Free) ReduceLifetime(t float32) { f.Lifetime -= t }

// ReduceStarttime decreases Starttime by t (t >= 0), clamped at 0.
func (f *Free) ReduceStarttime(t float32) {
	f.Starttime -= t
	if f.Starttime < 0 {
		f.Starttime = 0
	}
}

// IsDead reports whether the particle's lifetime has been exhausted
// and it must be reset before simulating it further.
func (f *Free) IsDead() bool { return f.Lifetime <= 0 }

// CanMove reports whether Starttime has elapsed, i.e. whether the
// particle is allowed to move this step.
func (f *Free) CanMove() bool { return f.Starttime <= 0 }
