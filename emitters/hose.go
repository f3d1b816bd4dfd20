package emitters

import (
	"math"
	"math/rand"
	"time"

	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/lluisalemanypuig/physim/particles"
)

// Hose is a FreeEmitter that abstracts a hose as a cone: particles are
// born at the cone's apex (source) with a velocity aimed at a random
// point on the cone's circular base, grounded in physim's hose emitter.
//
// The minimum particle speed is the cone's height h (aimed at the
// center of the base) and the maximum is sqrt(h*h + r*r) (aimed at the
// rim).
type Hose struct {
	FreeEmitter

	rng *rand.Rand

	source lin.V3
	dir    lin.V3
	v, w   lin.V3
	r, h   float32
}

// NewHose builds a hose with apex source, axis unit vector dir pointing
// from the apex to the center of the base (h away), base radius r, and
// height h.
func NewHose(source, dir lin.V3, r, h float32) *Hose {
	dir = dir.Unit()
	v := dir.Perp()
	w := dir.Cross(v)

	ho := &Hose{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		source: source,
		dir:    dir,
		v:      v, w: w,
		r: r, h: h,
	}
	ho.Pos = ho.fixedPos
	ho.Vel = ho.randomVel
	return ho
}

func (h *Hose) fixedPos(p *particles.Free) {
	p.CurPos = h.source
	p.SavePosition()
}

func (h *Hose) randomVel(p *particles.Free) {
	u1 := h.rng.Float32()
	u2 := h.rng.Float32()
	theta := float32(2*math.Pi) * u2
	radius := h.r * sqrt32(u1)

	base := h.source.Add(h.dir.Scale(h.h))
	offset := h.v.Scale(radius * cos32(theta)).Add(h.w.Scale(radius * sin32(theta)))
	target := base.Add(offset)

	p.CurVel = target.Sub(h.source)
}

func sqrt32(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }
func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }
