package simulator

import (
	"testing"

	"github.com/lluisalemanypuig/physim/geometry"
	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/lluisalemanypuig/physim/meshes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTimeStepRejectsNonPositive(t *testing.T) {
	s := New()
	assert.Error(t, s.SetTimeStep(0))
	assert.Error(t, s.SetTimeStep(-1))
	assert.NoError(t, s.SetTimeStep(0.01))
	assert.Equal(t, float32(0.01), s.TimeStep())
}

func TestAddFreeAssignsIndexAndEntityID(t *testing.T) {
	s := New()
	id0 := s.AddFree()
	id1 := s.AddFree()

	assert.Equal(t, 0, s.Free[0].Index)
	assert.Equal(t, 1, s.Free[1].Index)
	assert.NotEqual(t, id0, id1)
	assert.Equal(t, 2, s.NumFree())
}

func TestFreeParticleFallsUnderGravityAndBouncesOffFloor(t *testing.T) {
	s := New()
	s.SetGravity(lin.V3{Y: -9.8})
	_ = s.SetTimeStep(1.0 / 60.0)

	floor, err := geometry.NewPlane(lin.V3{Y: 1}, lin.V3{})
	require.NoError(t, err)
	s.AddGeometry(floor)

	s.AddFree()
	p := s.Free[0]
	p.CurPos = lin.V3{Y: 1}
	p.PrevPos = p.CurPos
	p.CurVel = lin.V3{}
	p.Bouncing = 0.5
	p.Friction = 0

	for i := 0; i < 600 && p.CurVel.Y <= 0; i++ {
		s.Step()
	}

	// the particle must not have tunnelled through the floor, and must
	// still have an upward-pointing velocity shortly after bouncing
	assert.GreaterOrEqual(t, p.CurPos.Y, float32(-0.2))
	assert.Greater(t, p.CurVel.Y, float32(0))
}

func TestSizedParticleCollidesWithFloorFirstHit(t *testing.T) {
	s := New()
	s.SetGravity(lin.V3{Y: -9.8})
	_ = s.SetTimeStep(1.0 / 60.0)

	floor, err := geometry.NewPlane(lin.V3{Y: 1}, lin.V3{})
	require.NoError(t, err)
	s.AddGeometry(floor)

	s.AddSized()
	p := s.Sized[0]
	p.CurPos = lin.V3{Y: 0.5}
	p.PrevPos = p.CurPos
	p.R = 0.5
	p.Bouncing = 0.3
	p.Friction = 0.1

	for i := 0; i < 300; i++ {
		s.Step()
	}

	assert.False(t, isNaN(p.CurPos.Y))
	assert.GreaterOrEqual(t, p.CurPos.Y, float32(-0.1))
}

func TestChainAtRestStaysNearInitialElongation(t *testing.T) {
	s := New()
	_ = s.SetTimeStep(1.0 / 120.0)
	s.SetGravity(lin.V3{Y: -9.8})
	s.SetViscousDrag(0.5)

	c := meshes.NewChain(4, 1)
	c.Particles[0].CurPos = lin.V3{X: 0}
	c.Particles[1].CurPos = lin.V3{X: 1}
	c.Particles[2].CurPos = lin.V3{X: 2}
	c.Particles[3].CurPos = lin.V3{X: 3}
	c.Particles[0].Fixed = true
	for _, p := range c.Particles {
		p.PrevPos = p.CurPos
	}
	s.AddChain(c)

	for i := 0; i < 600; i++ {
		s.Step()
	}

	// the chain should sag under gravity but stay bounded near the
	// fixed end, not fly apart to infinity or collapse to NaN
	last := c.Particles[3]
	assert.False(t, isNaN(last.CurPos.X))
	assert.False(t, isNaN(last.CurPos.Y))
	assert.InDelta(t, 0, last.CurPos.Dist(c.Particles[0].CurPos), 4)
}

func TestClearAllRemovesEveryPopulation(t *testing.T) {
	s := New()
	s.AddFree()
	s.AddSized()
	s.AddAgent()
	s.AddGeometry(mustSphere())

	s.ClearAll()

	assert.Equal(t, 0, s.NumFree())
	assert.Equal(t, 0, s.NumSized())
	assert.Equal(t, 0, s.NumAgents())
	assert.Empty(t, s.Scene)
}

func mustSphere() geometry.Geometry {
	sp, err := geometry.NewSphere(lin.V3{}, 1)
	if err != nil {
		panic(err)
	}
	return sp
}

func isNaN(f float32) bool { return f != f }
