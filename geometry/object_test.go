package geometry

import (
	"testing"

	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/stretchr/testify/require"
)

// unitSquareObject builds a 1x1 square in the z=0 plane from two
// triangles, a minimal triangle soup exercising Object's octree-backed
// queries.
func unitSquareObject(t *testing.T) *Object {
	t.Helper()
	verts := []lin.V3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
	}
	tris := []int{0, 1, 2, 0, 2, 3}
	obj, err := NewObject(verts, tris, 1)
	require.NoError(t, err)
	return obj
}

func TestNewObjectRejectsBadTriangleList(t *testing.T) {
	_, err := NewObject([]lin.V3{{}, {}, {}}, []int{0, 1}, 1)
	require.Error(t, err)
}

func TestObjectIsInsideEitherTriangle(t *testing.T) {
	obj := unitSquareObject(t)
	require.True(t, obj.IsInside(lin.V3{X: 0.2, Y: 0.2, Z: 0}, 1e-4))
	require.True(t, obj.IsInside(lin.V3{X: 0.8, Y: 0.8, Z: 0}, 1e-4))
	require.False(t, obj.IsInside(lin.V3{X: 2, Y: 2, Z: 0}, 1e-4))
}

func TestObjectIntersectsSegment(t *testing.T) {
	obj := unitSquareObject(t)
	a := lin.V3{X: 0.5, Y: 0.5, Z: -1}
	b := lin.V3{X: 0.5, Y: 0.5, Z: 1}
	require.True(t, obj.IntersectsSegment(a, b))
}

func TestObjectIntersectsSphere(t *testing.T) {
	obj := unitSquareObject(t)
	require.True(t, obj.IntersectsSphere(lin.V3{X: 0.5, Y: 0.5, Z: 0.1}, 0.2))
	require.False(t, obj.IntersectsSphere(lin.V3{X: 50, Y: 50, Z: 50}, 0.2))
}

func TestObjectResolvePoint(t *testing.T) {
	obj := unitSquareObject(t)
	prev := lin.V3{X: 0.5, Y: 0.5, Z: 1}
	pred := lin.V3{X: 0.5, Y: 0.5, Z: -1}
	vel := lin.V3{X: 0, Y: 0, Z: -1}
	newPos, _ := obj.ResolvePoint(prev, pred, vel, vel, 0, 0)
	require.InDelta(t, 0, newPos.Z, 1e-4)
}
