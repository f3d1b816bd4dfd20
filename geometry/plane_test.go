package geometry

import (
	"testing"

	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/stretchr/testify/require"
)

func TestNewPlaneZeroDistanceAtPoint(t *testing.T) {
	p, err := NewPlane(lin.V3{X: 0, Y: 1, Z: 0}, lin.V3{X: 5, Y: 2, Z: -3})
	require.NoError(t, err)
	require.InDelta(t, 0, p.SignedDist(lin.V3{X: 5, Y: 2, Z: -3}), 1e-5)
}

func TestNewPlaneDegenerateNormal(t *testing.T) {
	_, err := NewPlane(lin.V3{}, lin.V3{X: 1, Y: 0, Z: 0})
	require.Error(t, err)
}

func TestPlaneIntersectsSegmentCommutative(t *testing.T) {
	p, _ := NewPlane(lin.V3{X: 0, Y: 1, Z: 0}, lin.V3{})
	a, b := lin.V3{X: 0, Y: -1, Z: 0}, lin.V3{X: 0, Y: 1, Z: 0}
	require.True(t, p.IntersectsSegment(a, b))
	require.True(t, p.IntersectsSegment(b, a))
}

func TestPlaneIntersectsSegmentPoint(t *testing.T) {
	p, _ := NewPlane(lin.V3{X: 0, Y: 1, Z: 0}, lin.V3{})
	a, b := lin.V3{X: 0, Y: -2, Z: 0}, lin.V3{X: 0, Y: 2, Z: 0}
	pt, hit := p.IntersectsSegmentPoint(a, b)
	require.True(t, hit)
	require.InDelta(t, 0, pt.Y, 1e-5)
}

func TestPlaneResolvePointRestingContactIsIdempotent(t *testing.T) {
	p, _ := NewPlane(lin.V3{X: 0, Y: 1, Z: 0}, lin.V3{})
	pos := lin.V3{X: 0, Y: 0, Z: 0}
	vel := lin.V3{X: 1, Y: 0, Z: 0}
	newPos, newVel := p.ResolvePoint(pos, pos, vel, vel, 0, 0)
	require.InDelta(t, 0, newPos.Y, 1e-5)
	require.InDelta(t, 0, newVel.Y, 1e-5)
}

func TestPlaneResolveSpherePushesOutOfPenetration(t *testing.T) {
	p, _ := NewPlane(lin.V3{X: 0, Y: 1, Z: 0}, lin.V3{})
	pos := lin.V3{X: 0, Y: 0.2, Z: 0}
	vel := lin.V3{X: 0, Y: -1, Z: 0}
	newPos, _ := p.ResolveSphere(pos, pos, vel, vel, 1.0, 0, 0)
	require.GreaterOrEqual(t, newPos.Y, float32(0.99))
}
