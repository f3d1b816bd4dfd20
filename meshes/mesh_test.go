package meshes

import (
	"testing"

	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/stretchr/testify/assert"
)

func TestNewChainAssignsIndicesAndMass(t *testing.T) {
	c := NewChain(5, 10)
	for i, p := range c.Particles {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, float32(2), p.Mass)
	}
}

func TestChainSpringForceIsZeroAtRestLength(t *testing.T) {
	c := NewChain(2, 2)
	c.Particles[0].CurPos = lin.V3{}
	c.Particles[1].CurPos = lin.V3{X: 1}
	c.MakeInitialState()

	c.UpdateForces()
	assert.Equal(t, lin.V3{}, c.Particles[0].Force)
	assert.Equal(t, lin.V3{}, c.Particles[1].Force)
}

func TestChainSpringForceIsAntisymmetric(t *testing.T) {
	c := NewChain(2, 2)
	c.Particles[0].CurPos = lin.V3{}
	c.Particles[1].CurPos = lin.V3{X: 1}
	c.MakeInitialState()

	c.Particles[1].CurPos = lin.V3{X: 2}
	c.UpdateForces()

	sum := c.Particles[0].Force.Add(c.Particles[1].Force)
	assert.InDelta(t, 0, sum.X, 1e-5)
	assert.InDelta(t, 0, sum.Y, 1e-5)
	assert.InDelta(t, 0, sum.Z, 1e-5)
	assert.Greater(t, c.Particles[0].Force.X, float32(0))
}

func TestChainSingleParticleHasNoSprings(t *testing.T) {
	c := NewChain(1, 1)
	c.MakeInitialState()
	assert.NotPanics(t, func() { c.UpdateForces() })
}

func TestGridIndexMatchesRowMajorLayout(t *testing.T) {
	g := NewGrid(3, 4, 12)
	assert.Equal(t, 0, g.Index(0, 0))
	assert.Equal(t, 4, g.Index(1, 0))
	assert.Equal(t, 5, g.Index(1, 1))
	assert.Same(t, g.Particles[5], g.At(1, 1))
}

func TestGridEdgeCountsMatchClasses(t *testing.T) {
	g := NewGrid(3, 3, 9)
	for i, p := range g.Particles {
		p.CurPos = lin.V3{X: float32(i % 3), Z: float32(i / 3)}
	}
	g.MakeInitialState()

	// stretch: 2 per row * 3 rows (i,j+1) + 2 per col * 3 cols (i+1,j) = 6+6
	assert.Len(t, g.stretch, 12)
	// shear: (i+1,j+1) for i in 0..1,j in 0..1 = 4; (i-1,j+1) for i in 1..2,j in 0..1 = 4
	assert.Len(t, g.shear, 8)
	// bend: (i,j+2) for j=0 only, all 3 rows = 3; (i+2,j) for i=0 only, all 3 cols = 3
	assert.Len(t, g.bend, 6)
}

func TestGridRestAtZeroForceWhenUndisturbed(t *testing.T) {
	g := NewGrid(2, 2, 4)
	g.At(0, 0).CurPos = lin.V3{X: 0, Z: 0}
	g.At(0, 1).CurPos = lin.V3{X: 1, Z: 0}
	g.At(1, 0).CurPos = lin.V3{X: 0, Z: 1}
	g.At(1, 1).CurPos = lin.V3{X: 1, Z: 1}
	g.MakeInitialState()

	g.UpdateForces()
	for _, p := range g.Particles {
		assert.InDelta(t, 0, p.Force.Len(), 1e-4)
	}
}

func TestGridDisabledClassContributesNoForce(t *testing.T) {
	g := NewGrid(2, 2, 4)
	g.At(0, 0).CurPos = lin.V3{X: 0, Z: 0}
	g.At(0, 1).CurPos = lin.V3{X: 1, Z: 0}
	g.At(1, 0).CurPos = lin.V3{X: 0, Z: 1}
	g.At(1, 1).CurPos = lin.V3{X: 1, Z: 1}
	g.MakeInitialState()

	g.SimulateStretch = false
	g.SimulateShear = false
	g.SimulateBend = false
	g.At(1, 1).CurPos = lin.V3{X: 2, Z: 2}
	g.UpdateForces()

	for _, p := range g.Particles {
		assert.Equal(t, lin.V3{}, p.Force)
	}
}
