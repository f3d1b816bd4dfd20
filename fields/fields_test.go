package fields

import (
	"testing"

	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/stretchr/testify/require"
)

func TestGravityScalesWithMass(t *testing.T) {
	g := Gravity{Acceleration: lin.V3{X: 0, Y: -9.8, Z: 0}}
	f := g.Force(lin.V3{X: 1, Y: 2, Z: 3}, 2)
	require.Equal(t, lin.V3{X: 0, Y: -19.6, Z: 0}, f)
}

func TestPunctualPullsTowardsCenter(t *testing.T) {
	p := Punctual{Center: lin.V3{X: 0, Y: 0, Z: 0}, Strength: 10}
	f := p.Force(lin.V3{X: 2, Y: 0, Z: 0}, 1)
	require.Less(t, f.X, float32(0))
	require.InDelta(t, 0, f.Y, 1e-6)
}

func TestPunctualAtCenterIsZero(t *testing.T) {
	p := Punctual{Center: lin.V3{}, Strength: 10}
	f := p.Force(lin.V3{}, 1)
	require.Equal(t, lin.V3{}, f)
}
