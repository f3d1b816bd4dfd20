package emitters

import (
	"testing"

	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/lluisalemanypuig/physim/particles"
	"github.com/stretchr/testify/assert"
)

func TestFreeEmitterRunsInOrder(t *testing.T) {
	var order []string
	e := FreeEmitter{
		Pos:       func(p *particles.Free) { order = append(order, "pos") },
		Vel:       func(p *particles.Free) { order = append(order, "vel") },
		Mass:      func(p *particles.Free) { order = append(order, "mass") },
		Charge:    func(p *particles.Free) { order = append(order, "charge") },
		Friction:  func(p *particles.Free) { order = append(order, "friction") },
		Bounce:    func(p *particles.Free) { order = append(order, "bounce") },
		Lifetime:  func(p *particles.Free) { order = append(order, "lifetime") },
		Starttime: func(p *particles.Free) { order = append(order, "starttime") },
		Fixed:     func(p *particles.Free) { order = append(order, "fixed") },
	}
	p := particles.NewFree(lin.V3{})
	e.Emit(p)

	assert.Equal(t, []string{
		"pos", "vel", "mass", "charge", "friction",
		"bounce", "lifetime", "starttime", "fixed",
	}, order)
}

func TestFreeEmitterSkipsNilFuncs(t *testing.T) {
	e := FreeEmitter{}
	p := particles.NewFree(lin.V3{})
	assert.NotPanics(t, func() { e.Emit(p) })
}

func TestSizedEmitterAppliesRadiusAfterFree(t *testing.T) {
	e := SizedEmitter{
		FreeEmitter: FreeEmitter{
			Mass: func(p *particles.Free) { p.Mass = 2 },
		},
		Radius: func(p *particles.Sized) { p.R = p.Mass * 3 },
	}
	p := particles.NewSized(lin.V3{})
	e.EmitSized(p)

	assert.Equal(t, float32(2), p.Mass)
	assert.Equal(t, float32(6), p.R)
}

func TestRectangleSourceGeneratesPointsWithinBounds(t *testing.T) {
	src := NewStraightSource(lin.V3{}, 2, 3)
	for i := 0; i < 50; i++ {
		p := particles.NewFree(lin.V3{})
		src.Emit(p)
		assert.GreaterOrEqual(t, p.CurPos.X, float32(0))
		assert.LessOrEqual(t, p.CurPos.X, float32(2))
		assert.GreaterOrEqual(t, p.CurPos.Z, float32(0))
		assert.LessOrEqual(t, p.CurPos.Z, float32(3))
		assert.Equal(t, p.CurPos, p.PrevPos)
	}
}

func TestHoseVelocityWithinSpeedBounds(t *testing.T) {
	source := lin.V3{}
	h := NewHose(source, lin.V3{Y: 1}, 2, 5)
	for i := 0; i < 50; i++ {
		p := particles.NewFree(lin.V3{})
		h.Emit(p)
		assert.Equal(t, source, p.CurPos)
		speed := p.CurVel.Len()
		assert.GreaterOrEqual(t, speed, float32(5)-1e-3)
		assert.LessOrEqual(t, speed, float32(5.3851648)+1e-3)
	}
}

func TestMultisourceDispatchesByPopulationChunk(t *testing.T) {
	var firstHits, secondHits int
	first := &FreeEmitter{Pos: func(p *particles.Free) { firstHits++ }}
	second := &FreeEmitter{Pos: func(p *particles.Free) { secondHits++ }}

	ms := Multisource[*FreeEmitter]{
		Sources:    []*FreeEmitter{first, second},
		Population: 10,
	}

	for i := 0; i < 10; i++ {
		p := particles.NewFree(lin.V3{})
		p.Index = i
		ms.Emit(p)
	}

	assert.Equal(t, 5, firstHits)
	assert.Equal(t, 5, secondHits)
}

func TestMultisourceEmptyIsNoop(t *testing.T) {
	ms := Multisource[*FreeEmitter]{}
	p := particles.NewFree(lin.V3{})
	assert.NotPanics(t, func() { ms.Emit(p) })
}
