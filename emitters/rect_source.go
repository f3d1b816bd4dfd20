package emitters

import (
	"math/rand"
	"time"

	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/lluisalemanypuig/physim/particles"
)

// RectangleSource is a FreeEmitter whose Pos is generated uniformly at
// random over a parallelogram, grounded in physim's rect_source.
//
// The parallelogram is parametrised as S + l*w*U + m*h*V for l, m
// uniform in [0,1), where S is a corner, U and V are (not necessarily
// orthogonal) unit vectors spanning the plane, and w, h are the side
// lengths along U and V respectively. No velocity initialiser is
// installed; callers set Vel directly.
type RectangleSource struct {
	FreeEmitter

	rng *rand.Rand

	s, u, v lin.V3
	w, h    float32
}

// NewRectangleSource builds a rectangular (or, if u and v are not
// perpendicular, parallelogram) position source with corner s, spanning
// unit vectors u and v, and side lengths w and h.
func NewRectangleSource(s, u, v lin.V3, w, h float32) *RectangleSource {
	r := &RectangleSource{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		s:   s, u: u, v: v, w: w, h: h,
	}
	r.Pos = r.randomPos
	return r
}

// NewStraightSource is the axis-aligned special case of
// NewRectangleSource, spanning the XZ plane (u = +X, v = +Z).
func NewStraightSource(s lin.V3, w, h float32) *RectangleSource {
	return NewRectangleSource(s, lin.V3{X: 1}, lin.V3{Z: 1}, w, h)
}

func (r *RectangleSource) randomPos(p *particles.Free) {
	l := r.rng.Float32()
	m := r.rng.Float32()
	p.CurPos = r.s.Add(r.u.Scale(l * r.w)).Add(r.v.Scale(m * r.h))
	p.SavePosition()
}
