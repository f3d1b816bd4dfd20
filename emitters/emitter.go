// Package emitters builds free, sized, and agent particles by running a
// fixed pipeline of small attribute-initialiser functions over them,
// grounded in physim's base_emitter/free_emitter/sized_emitter classes.
//
// An emitter is not one big constructor: it is a handful of function
// fields, one per attribute, each defaulting to a no-op because
// particles.NewFree/NewSized/NewAgent already set sane defaults. Setting
// only the fields a scene needs keeps emitter configuration declarative
// and composable, the same way physim's set_*_initialiser setters do.
package emitters

import "github.com/lluisalemanypuig/physim/particles"

// PosFunc, VelFunc, ... name the single-attribute initialisers an
// emitter runs over a freshly added particle.
type (
	PosFunc       func(p *particles.Free)
	VelFunc       func(p *particles.Free)
	MassFunc      func(p *particles.Free)
	ChargeFunc    func(p *particles.Free)
	FrictionFunc  func(p *particles.Free)
	BounceFunc    func(p *particles.Free)
	LifetimeFunc  func(p *particles.Free)
	StarttimeFunc func(p *particles.Free)
	FixedFunc     func(p *particles.Free)
)

// FreeEmitter initialises the attributes of a Free particle. The
// functions are applied in the order they are declared below: Pos, Vel,
// Mass, Charge, Friction, Bounce, Lifetime, Starttime, Fixed. Because
// earlier functions run first, Pos may be used to derive Vel, and so
// on. It is guaranteed that the particle's Index has already been
// assigned by the simulator before Emit runs.
type FreeEmitter struct {
	Pos       PosFunc
	Vel       VelFunc
	Mass      MassFunc
	Charge    ChargeFunc
	Friction  FrictionFunc
	Bounce    BounceFunc
	Lifetime  LifetimeFunc
	Starttime StarttimeFunc
	Fixed     FixedFunc
}

// Emit runs every configured initialiser over p in the fixed order
// documented on FreeEmitter, skipping any left nil.
func (e *FreeEmitter) Emit(p *particles.Free) {
	if e.Pos != nil {
		e.Pos(p)
	}
	if e.Vel != nil {
		e.Vel(p)
	}
	if e.Mass != nil {
		e.Mass(p)
	}
	if e.Charge != nil {
		e.Charge(p)
	}
	if e.Friction != nil {
		e.Friction(p)
	}
	if e.Bounce != nil {
		e.Bounce(p)
	}
	if e.Lifetime != nil {
		e.Lifetime(p)
	}
	if e.Starttime != nil {
		e.Starttime(p)
	}
	if e.Fixed != nil {
		e.Fixed(p)
	}
}

// Source is anything that can initialise a Free particle's attributes,
// satisfied by FreeEmitter and every type that embeds it.
type Source interface {
	Emit(p *particles.Free)
}
