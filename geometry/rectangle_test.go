package geometry

import (
	"testing"

	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/stretchr/testify/require"
)

func unitRectangle() *Rectangle {
	r, _ := NewRectangle(
		lin.V3{X: 0, Y: 0, Z: 0},
		lin.V3{X: 1, Y: 0, Z: 0},
		lin.V3{X: 1, Y: 1, Z: 0},
		lin.V3{X: 0, Y: 1, Z: 0},
	)
	return r
}

func TestNewRectangleAllFourVerticesInside(t *testing.T) {
	r := unitRectangle()
	for _, v := range []lin.V3{r.P1, r.P2, r.P3, r.P4} {
		require.True(t, r.IsInside(v, 1e-4))
	}
}

func TestNewRectangleNonCoplanarFourthVertex(t *testing.T) {
	_, err := NewRectangle(
		lin.V3{X: 0, Y: 0, Z: 0},
		lin.V3{X: 1, Y: 0, Z: 0},
		lin.V3{X: 1, Y: 1, Z: 0},
		lin.V3{X: 0, Y: 1, Z: 5},
	)
	require.Error(t, err)
}

func TestRectangleOutsideBoundingBoxOnPlane(t *testing.T) {
	r := unitRectangle()
	require.False(t, r.IsInside(lin.V3{X: 2, Y: 2, Z: 0}, 1e-5))
}

func TestRectangleIntersectsSegment(t *testing.T) {
	r := unitRectangle()
	a := lin.V3{X: 0.5, Y: 0.5, Z: -1}
	b := lin.V3{X: 0.5, Y: 0.5, Z: 1}
	require.True(t, r.IntersectsSegment(a, b))

	c := lin.V3{X: 5, Y: 5, Z: -1}
	d := lin.V3{X: 5, Y: 5, Z: 1}
	require.False(t, r.IntersectsSegment(c, d))
}
