package geometry

import (
	"errors"
	"math"

	"github.com/lluisalemanypuig/physim/math/lin"
)

// Sphere is a static sphere primitive: center C and radius R.
type Sphere struct {
	C lin.V3
	R float32
}

// NewSphere builds a sphere. Returns an error for a non-positive radius
// (geometric degeneracy rejected at insertion).
func NewSphere(c lin.V3, r float32) (*Sphere, error) {
	if r <= 0 {
		return nil, errors.New("geometry: sphere radius must be positive")
	}
	return &Sphere{C: c, R: r}, nil
}

// IsInside reports whether p lies within tol of the sphere's interior.
func (s *Sphere) IsInside(p lin.V3, tol float32) bool {
	return s.C.DistSqr(p)-s.R*s.R <= tol
}

// IntersectsSegment reports whether exactly one of the segment's
// endpoints lies inside the sphere (the segment crosses its boundary).
func (s *Sphere) IntersectsSegment(p, q lin.V3) bool {
	pIn, qIn := s.IsInside(p, 0), s.IsInside(q, 0)
	return pIn != qIn
}

// IntersectsSegmentPoint solves for the point I = (1-L)p + Lq on the
// segment closest to the sphere boundary, picking whichever root of the
// quadratic |I-C|^2 = R^2 lies closest to [0,1], matching physim's
// sphere::intersec_segment.
func (s *Sphere) IntersectsSegmentPoint(p, q lin.V3) (lin.V3, bool) {
	if !s.IntersectsSegment(p, q) {
		return lin.V3{}, false
	}
	v := q.Sub(p)
	a := v.Dot(v)
	b := 2 * p.Sub(s.C).Dot(v)
	c := s.C.Dot(s.C) + p.Dot(p) - 2*p.Dot(s.C) - s.R*s.R

	discr := b*b - 4*a*c
	if discr < 0 {
		discr = 0
	}
	sq := sqrt32(discr)
	lp := (-b + sq) / (2 * a)
	lm := (-b - sq) / (2 * a)

	dev := func(l float32) float32 {
		switch {
		case l < 0:
			return -l
		case l > 1:
			return l - 1
		default:
			return 0
		}
	}
	l := lp
	if dev(lm) < dev(lp) {
		l = lm
	}
	return p.Lerp(q, l), true
}

// IntersectsSphere reports whether a sphere of radius r centered at c
// touches or overlaps this sphere.
func (s *Sphere) IntersectsSphere(c lin.V3, r float32) bool {
	rr := s.R + r
	return s.C.DistSqr(c) <= rr*rr
}

// ResolvePoint defines a plane tangent to the sphere at the point where
// the motion segment [prevPos,predPos] crosses it, normal C - I, and
// delegates to that plane's response, matching physim's
// sphere::update_upon_collision.
func (s *Sphere) ResolvePoint(prevPos, predPos, predVel, curVel lin.V3, bounce, friction float32) (lin.V3, lin.V3) {
	i, hit := s.IntersectsSegmentPoint(prevPos, predPos)
	if !hit {
		return predPos, predVel
	}
	normal := s.C.Sub(i)
	tangent, err := NewPlane(normal, i)
	if err != nil {
		// the intersection point coincides with the center; fall back to the
		// direction of travel reversed, an arbitrary but stable choice.
		return predPos, predVel.Neg()
	}
	return tangent.ResolvePoint(prevPos, predPos, predVel, curVel, bounce, friction)
}

// ResolveSphere treats the moving particle as a point against a sphere
// grown by radius, then reuses ResolvePoint.
func (s *Sphere) ResolveSphere(prevPos, predPos, predVel, curVel lin.V3, radius, bounce, friction float32) (lin.V3, lin.V3) {
	grown := &Sphere{C: s.C, R: s.R + radius}
	return grown.ResolvePoint(prevPos, predPos, predVel, curVel, bounce, friction)
}

func sqrt32(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}

var _ Geometry = (*Sphere)(nil)
