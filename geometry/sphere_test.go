package geometry

import (
	"testing"

	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/stretchr/testify/require"
)

func TestNewSphereRejectsNonPositiveRadius(t *testing.T) {
	_, err := NewSphere(lin.V3{}, 0)
	require.Error(t, err)
}

func TestSphereIsInside(t *testing.T) {
	s, _ := NewSphere(lin.V3{}, 2)
	require.True(t, s.IsInside(lin.V3{X: 1, Y: 0, Z: 0}, 1e-5))
	require.False(t, s.IsInside(lin.V3{X: 3, Y: 0, Z: 0}, 1e-5))
}

func TestSphereIntersectsSegmentPoint(t *testing.T) {
	s, _ := NewSphere(lin.V3{}, 1)
	a := lin.V3{X: -2, Y: 0, Z: 0}
	b := lin.V3{X: 2, Y: 0, Z: 0}
	pt, hit := s.IntersectsSegmentPoint(a, b)
	require.True(t, hit)
	require.InDelta(t, 1, pt.Len(), 1e-4)
}

func TestSphereIntersectsSphere(t *testing.T) {
	s, _ := NewSphere(lin.V3{}, 1)
	require.True(t, s.IntersectsSphere(lin.V3{X: 1.5, Y: 0, Z: 0}, 1))
	require.False(t, s.IntersectsSphere(lin.V3{X: 10, Y: 0, Z: 0}, 1))
}

func TestSphereResolvePointLandsOnSurface(t *testing.T) {
	s, _ := NewSphere(lin.V3{}, 1)
	prev := lin.V3{X: 2, Y: 0, Z: 0}
	pred := lin.V3{X: 0.5, Y: 0, Z: 0}
	vel := lin.V3{X: -1, Y: 0, Z: 0}
	newPos, _ := s.ResolvePoint(prev, pred, vel, vel, 0, 0)
	require.InDelta(t, 1, newPos.Len(), 1e-3)
}

func TestSphereResolveSphereRestsAtSumOfRadii(t *testing.T) {
	s, _ := NewSphere(lin.V3{}, 1)
	prev := lin.V3{X: 3, Y: 0, Z: 0}
	pred := lin.V3{X: 1, Y: 0, Z: 0}
	vel := lin.V3{X: -1, Y: 0, Z: 0}
	newPos, _ := s.ResolveSphere(prev, pred, vel, vel, 0.5, 0, 0)
	require.InDelta(t, 1.5, newPos.Len(), 1e-3)
}
