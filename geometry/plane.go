package geometry

import (
	"errors"

	"github.com/lluisalemanypuig/physim/math/lin"
)

// Plane is the infinite plane {x : n·x + d = 0}, n a unit normal.
type Plane struct {
	Normal lin.V3
	D      float32
}

// NewPlane builds a plane from a (not necessarily unit) normal and a
// point it passes through. Returns an error if normal is degenerate
// (geometric degeneracy is rejected at insertion, per physim's error
// handling design).
func NewPlane(normal, point lin.V3) (*Plane, error) {
	if normal.Len() < lin.Epsilon {
		return nil, errors.New("geometry: plane normal has zero length")
	}
	n := normal.Unit()
	return &Plane{Normal: n, D: -n.Dot(point)}, nil
}

// NewPlaneFromPoints builds a plane through three points, normal
// directed by (p1-p0)x(p2-p0).
func NewPlaneFromPoints(p0, p1, p2 lin.V3) (*Plane, error) {
	n := p1.Sub(p0).Cross(p2.Sub(p0))
	return NewPlane(n, p0)
}

// SignedDist returns n·p + d: positive in front of the plane (in the
// direction of the normal), negative behind.
func (p *Plane) SignedDist(pt lin.V3) float32 { return p.Normal.Dot(pt) + p.D }

// ClosestPoint returns the point on the plane closest to pt.
func (p *Plane) ClosestPoint(pt lin.V3) lin.V3 {
	r := -p.D - p.Normal.Dot(pt)
	return pt.Add(p.Normal.Scale(r))
}

// IsInside reports whether pt is on or behind the plane, within tol.
func (p *Plane) IsInside(pt lin.V3, tol float32) bool { return p.SignedDist(pt) <= tol }

// IntersectsSegment reports whether segment [a,b] crosses the plane.
// Product-of-signed-distances <= 0 counts as intersection (a zero on
// either endpoint counts), matching physim's degenerate-endpoint rule.
func (p *Plane) IntersectsSegment(a, b lin.V3) bool {
	return p.SignedDist(a)*p.SignedDist(b) <= 0
}

// IntersectsSegmentPoint is IntersectsSegment, also returning the point
// of intersection.
func (p *Plane) IntersectsSegmentPoint(a, b lin.V3) (lin.V3, bool) {
	if !p.IntersectsSegment(a, b) {
		return lin.V3{}, false
	}
	denom := p.Normal.Dot(b.Sub(a))
	if lin.AeqZ(denom) {
		// segment lies in the plane: any endpoint qualifies.
		return a, true
	}
	r := (-p.D - p.Normal.Dot(a)) / denom
	return a.Lerp(b, r), true
}

// IntersectsSphere reports whether a sphere of radius r centered at c
// touches or crosses the plane.
func (p *Plane) IntersectsSphere(c lin.V3, r float32) bool {
	d := p.SignedDist(c)
	return d*d <= r*r
}

// ResolvePoint implements the plane collision response described by
// resolveAgainstPlane. prevPos is unused: the plane's normal does not
// depend on where the motion segment crossed it.
func (p *Plane) ResolvePoint(prevPos, predPos, predVel, curVel lin.V3, bounce, friction float32) (lin.V3, lin.V3) {
	return resolveAgainstPlane(p.Normal, p.D, predPos, predVel, curVel, bounce, friction)
}

// ResolveSphere resolves as if against a plane shifted back by radius
// along the normal, so that the response leaves the sphere resting
// with its center at distance radius from the real plane rather than
// collapsed onto it.
func (p *Plane) ResolveSphere(prevPos, predPos, predVel, curVel lin.V3, radius, bounce, friction float32) (lin.V3, lin.V3) {
	return resolveAgainstPlane(p.Normal, p.D-radius, predPos, predVel, curVel, bounce, friction)
}

var _ Geometry = (*Plane)(nil)
