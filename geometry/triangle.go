package geometry

import (
	"errors"

	"github.com/lluisalemanypuig/physim/math/lin"
)

// Triangle is a flat triangular primitive. Besides its three vertices and
// associated plane, it precomputes a 2D local frame (in-plane basis,
// vertex 2D coordinates, edge vectors, outward edge normals) so that
// inside/segment tests never redo that work in the hot path, per
// physim's triangle precomputation design.
type Triangle struct {
	P0, P1, P2 lin.V3
	Plane      Plane

	axisU, axisV lin.V3  // in-plane orthonormal basis.
	q0, q1, q2   lin.V2  // vertices in the local 2D frame.
	edgeStart    [3]lin.V2
	edgeNormal   [3]lin.V2 // outward unit normals, one per edge.
}

// NewTriangle builds a triangle from three vertices, in the order given
// (the plane's normal direction depends on winding, same as physim).
// Returns an error for a degenerate (zero-area) triangle.
func NewTriangle(p0, p1, p2 lin.V3) (*Triangle, error) {
	pl, err := NewPlaneFromPoints(p0, p1, p2)
	if err != nil {
		return nil, errors.New("geometry: degenerate triangle (zero area)")
	}
	t := &Triangle{P0: p0, P1: p1, P2: p2, Plane: *pl}
	t.precompute()
	return t, nil
}

func (t *Triangle) precompute() {
	t.axisU = t.P1.Sub(t.P0).Unit()
	t.axisV = t.Plane.Normal.Cross(t.axisU)

	to2D := func(p lin.V3) lin.V2 {
		d := p.Sub(t.P0)
		return lin.V2{X: t.axisU.Dot(d), Y: t.axisV.Dot(d)}
	}
	t.q0 = to2D(t.P0)
	t.q1 = to2D(t.P1)
	t.q2 = to2D(t.P2)

	qs := [3]lin.V2{t.q0, t.q1, t.q2}
	for i := 0; i < 3; i++ {
		a, b, c := qs[i], qs[(i+1)%3], qs[(i+2)%3]
		edge := b.Sub(a)
		n := lin.V2{X: edge.Y, Y: -edge.X}.Unit()
		if n.Dot(c.Sub(a)) > 0 {
			n = n.Neg()
		}
		t.edgeStart[i] = a
		t.edgeNormal[i] = n
	}
}

// to2D projects p onto the triangle's plane and expresses it in the
// triangle's local 2D frame.
func (t *Triangle) to2D(p lin.V3) lin.V2 {
	d := p.Sub(t.P0)
	return lin.V2{X: t.axisU.Dot(d), Y: t.axisV.Dot(d)}
}

// IsInside reports whether p, projected onto the triangle's plane, lies
// within the triangle to within tol: sign-consistency against the three
// outward edge normals.
func (t *Triangle) IsInside(p lin.V3, tol float32) bool {
	local := t.to2D(p)
	for i := 0; i < 3; i++ {
		if local.Sub(t.edgeStart[i]).Dot(t.edgeNormal[i]) > tol {
			return false
		}
	}
	return true
}

// IntersectsSegment is the plane segment test followed by an
// inside-triangle test on the intersection point.
func (t *Triangle) IntersectsSegment(a, b lin.V3) bool {
	_, hit := t.IntersectsSegmentPoint(a, b)
	return hit
}

// IntersectsSegmentPoint is IntersectsSegment, also returning the point
// of intersection.
func (t *Triangle) IntersectsSegmentPoint(a, b lin.V3) (lin.V3, bool) {
	p, hit := t.Plane.IntersectsSegmentPoint(a, b)
	if !hit || !t.IsInside(p, Tolerance) {
		return lin.V3{}, false
	}
	return p, true
}

// closestPoint returns the point on the (bounded) triangle closest to p,
// using the standard Voronoi-region classification (Ericson, Real-Time
// Collision Detection §5.1.5), referenced by the moving-sphere-vs-
// triangle test physim's original documentation cites.
func (t *Triangle) closestPoint(p lin.V3) lin.V3 {
	a, b, c := t.P0, t.P1, t.P2
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := p.Sub(a)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}
	bp := p.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return a.Add(ab.Scale(v))
	}
	cp := p.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return a.Add(ac.Scale(w))
	}
	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return b.Add(c.Sub(b).Scale(w))
	}
	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return a.Add(ab.Scale(v)).Add(ac.Scale(w))
}

// IntersectsSphere reports whether a sphere of radius r centered at c
// touches or crosses the bounded triangle.
func (t *Triangle) IntersectsSphere(c lin.V3, r float32) bool {
	cp := t.closestPoint(c)
	return cp.DistSqr(c) <= r*r
}

// ResolvePoint delegates to the triangle's plane.
func (t *Triangle) ResolvePoint(prevPos, predPos, predVel, curVel lin.V3, bounce, friction float32) (lin.V3, lin.V3) {
	return t.Plane.ResolvePoint(prevPos, predPos, predVel, curVel, bounce, friction)
}

// ResolveSphere resolves against a virtual plane through the bounded
// closest point (which may fall on an edge or vertex, not just the
// face) with normal pointing from that point towards the sphere's
// center, shifted back by radius: the response leaves the sphere
// resting with its center at distance radius from the true closest
// point rather than collapsed onto the triangle.
func (t *Triangle) ResolveSphere(prevPos, predPos, predVel, curVel lin.V3, radius, bounce, friction float32) (lin.V3, lin.V3) {
	cp := t.closestPoint(predPos)
	normal := predPos.Sub(cp)
	if normal.Len() < lin.Epsilon {
		normal = t.Plane.Normal
	} else {
		normal = normal.Unit()
	}
	d := -normal.Dot(cp) - radius
	return resolveAgainstPlane(normal, d, predPos, predVel, curVel, bounce, friction)
}

var _ Geometry = (*Triangle)(nil)
