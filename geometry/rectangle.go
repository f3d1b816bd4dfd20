package geometry

import (
	"errors"

	"github.com/lluisalemanypuig/physim/math/lin"
)

// Rectangle is a planar quad described by four coplanar vertices. Inside
// tests reduce to a plane check plus an axis-aligned bounding-box check,
// matching physim's rectangle::is_inside.
type Rectangle struct {
	P1, P2, P3, P4 lin.V3
	Plane          Plane
	Box            AABB
}

// NewRectangle builds a rectangle from four vertices; p1, p2, p3 define
// the plane and p4 must lie on it (within Tolerance). Returns an error
// for a degenerate plane or a non-coplanar fourth vertex.
func NewRectangle(p1, p2, p3, p4 lin.V3) (*Rectangle, error) {
	pl, err := NewPlaneFromPoints(p1, p2, p3)
	if err != nil {
		return nil, err
	}
	if d := pl.SignedDist(p4); d > Tolerance || d < -Tolerance {
		return nil, errDegenerateRectangle
	}
	return &Rectangle{
		P1: p1, P2: p2, P3: p3, P4: p4,
		Plane: *pl,
		Box:   boundsOf(p1, p2, p3, p4),
	}, nil
}

var errDegenerateRectangle = errors.New("geometry: fourth rectangle vertex is not coplanar")

// IsInside reports whether p lies on the rectangle's plane (within tol)
// and within its bounding box.
func (r *Rectangle) IsInside(p lin.V3, tol float32) bool {
	if d := r.Plane.SignedDist(p); d > tol || d < -tol {
		return false
	}
	return r.Box.Min.X <= p.X && p.X <= r.Box.Max.X &&
		r.Box.Min.Y <= p.Y && p.Y <= r.Box.Max.Y &&
		r.Box.Min.Z <= p.Z && p.Z <= r.Box.Max.Z
}

// IntersectsSegment is the plane segment test followed by the
// bounding-box inside test on the intersection point.
func (r *Rectangle) IntersectsSegment(a, b lin.V3) bool {
	_, hit := r.IntersectsSegmentPoint(a, b)
	return hit
}

// IntersectsSegmentPoint is IntersectsSegment, also returning the
// intersection point.
func (r *Rectangle) IntersectsSegmentPoint(a, b lin.V3) (lin.V3, bool) {
	p, hit := r.Plane.IntersectsSegmentPoint(a, b)
	if !hit || !r.IsInside(p, Tolerance) {
		return lin.V3{}, false
	}
	return p, true
}

// IntersectsSphere reports whether a sphere of radius rad centered at c
// touches or overlaps the rectangle's bounding box and plane.
func (r *Rectangle) IntersectsSphere(c lin.V3, rad float32) bool {
	return r.Plane.IntersectsSphere(c, rad) && r.Box.IntersectsSphere(c, rad)
}

// ResolvePoint delegates to the rectangle's plane.
func (r *Rectangle) ResolvePoint(prevPos, predPos, predVel, curVel lin.V3, bounce, friction float32) (lin.V3, lin.V3) {
	return r.Plane.ResolvePoint(prevPos, predPos, predVel, curVel, bounce, friction)
}

// ResolveSphere delegates to the rectangle's plane, same penetration
// correction as Plane.ResolveSphere.
func (r *Rectangle) ResolveSphere(prevPos, predPos, predVel, curVel lin.V3, radius, bounce, friction float32) (lin.V3, lin.V3) {
	return r.Plane.ResolveSphere(prevPos, predPos, predVel, curVel, radius, bounce, friction)
}

var _ Geometry = (*Rectangle)(nil)
