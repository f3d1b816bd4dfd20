package geometry

import (
	"testing"

	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/stretchr/testify/require"
)

func rightTriangle() *Triangle {
	t, _ := NewTriangle(
		lin.V3{X: 0, Y: 0, Z: 0},
		lin.V3{X: 1, Y: 0, Z: 0},
		lin.V3{X: 0, Y: 1, Z: 0},
	)
	return t
}

func TestNewTriangleDegenerate(t *testing.T) {
	_, err := NewTriangle(lin.V3{X: 0, Y: 0, Z: 0}, lin.V3{X: 1, Y: 0, Z: 0}, lin.V3{X: 2, Y: 0, Z: 0})
	require.Error(t, err)
}

func TestTriangleVerticesAreInside(t *testing.T) {
	tri := rightTriangle()
	require.True(t, tri.IsInside(tri.P0, 1e-4))
	require.True(t, tri.IsInside(tri.P1, 1e-4))
	require.True(t, tri.IsInside(tri.P2, 1e-4))
}

func TestTriangleCentroidIsInside(t *testing.T) {
	tri := rightTriangle()
	centroid := tri.P0.Add(tri.P1).Add(tri.P2).Scale(1.0 / 3.0)
	require.True(t, tri.IsInside(centroid, 1e-5))
}

func TestTriangleOutsidePointIsNotInside(t *testing.T) {
	tri := rightTriangle()
	require.False(t, tri.IsInside(lin.V3{X: 2, Y: 2, Z: 0}, 1e-5))
}

func TestTriangleIntersectsSegmentThroughFace(t *testing.T) {
	tri := rightTriangle()
	a := lin.V3{X: 0.2, Y: 0.2, Z: -1}
	b := lin.V3{X: 0.2, Y: 0.2, Z: 1}
	pt, hit := tri.IntersectsSegmentPoint(a, b)
	require.True(t, hit)
	require.InDelta(t, 0, pt.Z, 1e-5)
}

func TestTriangleClosestPointVertex(t *testing.T) {
	tri := rightTriangle()
	require.True(t, tri.IntersectsSphere(lin.V3{X: -1, Y: -1, Z: 0}, 1.5))
	require.False(t, tri.IntersectsSphere(lin.V3{X: -10, Y: -10, Z: 0}, 1))
}

func TestTriangleResolveSphereRestsAtRadius(t *testing.T) {
	tri := rightTriangle()
	pos := lin.V3{X: 0.2, Y: 0.2, Z: 0.1}
	vel := lin.V3{X: 0, Y: 0, Z: -1}
	newPos, _ := tri.ResolveSphere(pos, pos, vel, vel, 0.5, 0, 0)
	cp := tri.closestPoint(newPos)
	require.InDelta(t, 0.5, newPos.Dist(cp), 1e-4)
}
