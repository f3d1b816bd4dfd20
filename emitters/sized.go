package emitters

import "github.com/lluisalemanypuig/physim/particles"

// RadiusFunc initialises a Sized particle's radius.
type RadiusFunc func(p *particles.Sized)

// SizedEmitter is a FreeEmitter that additionally initialises a Sized
// particle's radius, grounded in physim's sized_emitter. Radius runs
// last, after every FreeEmitter attribute.
type SizedEmitter struct {
	FreeEmitter
	Radius RadiusFunc
}

// EmitSized runs the embedded FreeEmitter over p.Free and then Radius
// over p, if set.
func (e *SizedEmitter) EmitSized(p *particles.Sized) {
	e.FreeEmitter.Emit(&p.Free)
	if e.Radius != nil {
		e.Radius(p)
	}
}
