package geometry

import (
	"errors"

	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/lluisalemanypuig/physim/structures"
)

// Object is a triangle soup (or mesh) accelerated by an octree keyed on
// triangle centroids, grounded in physim's original geometry::object.
type Object struct {
	Triangles []*Triangle
	Box       AABB

	partition *structures.Octree
}

// NewObject builds an object from a vertex pool and a flat list of
// vertex-index triples, one per triangle, and constructs its octree
// partition. lod is the octree's level-of-detail threshold (see
// structures.DefaultLOD if zero).
func NewObject(vertices []lin.V3, tris []int, lod int) (*Object, error) {
	if len(tris)%3 != 0 {
		return nil, errors.New("geometry: triangle index list length must be a multiple of 3")
	}
	n := len(tris) / 3
	o := &Object{Triangles: make([]*Triangle, n)}
	for i := 0; i < n; i++ {
		t, err := NewTriangle(vertices[tris[3*i]], vertices[tris[3*i+1]], vertices[tris[3*i+2]])
		if err != nil {
			return nil, err
		}
		o.Triangles[i] = t
		if i == 0 {
			o.Box = boundsOf(t.P0, t.P1, t.P2)
		} else {
			o.Box = o.Box.Union(boundsOf(t.P0, t.P1, t.P2))
		}
	}
	o.partition = structures.NewFromTriangles(vertices, tris, lod)
	return o, nil
}

// candidates returns the triangle indices sharing a cell with p.
func (o *Object) candidates(p lin.V3) []int {
	return o.partition.IndicesForPoint(p)
}

// candidatesSphere returns the triangle indices sharing a cell that
// overlaps the sphere of radius r centered at c.
func (o *Object) candidatesSphere(c lin.V3, r float32) []int {
	return o.partition.IndicesInSphere(c, r)
}

// IsInside reports whether p is inside any triangle whose cell
// contains p, matching physim's object::is_inside.
func (o *Object) IsInside(p lin.V3, tol float32) bool {
	if !(o.Box.Min.X <= p.X && p.X <= o.Box.Max.X &&
		o.Box.Min.Y <= p.Y && p.Y <= o.Box.Max.Y &&
		o.Box.Min.Z <= p.Z && p.Z <= o.Box.Max.Z) {
		return false
	}
	for _, idx := range o.candidates(p) {
		if o.Triangles[idx].IsInside(p, tol) {
			return true
		}
	}
	return false
}

// IntersectsSegment reports whether [p,q] crosses any triangle whose
// cell contains p or q (candidates from both endpoints are unioned).
func (o *Object) IntersectsSegment(p, q lin.V3) bool {
	_, hit := o.IntersectsSegmentPoint(p, q)
	return hit
}

// IntersectsSegmentPoint is IntersectsSegment, also returning the
// intersection point of whichever triangle hit first.
func (o *Object) IntersectsSegmentPoint(p, q lin.V3) (lin.V3, bool) {
	for _, idx := range o.uniqueCandidates(p, q) {
		if pt, hit := o.Triangles[idx].IntersectsSegmentPoint(p, q); hit {
			return pt, true
		}
	}
	return lin.V3{}, false
}

func (o *Object) uniqueCandidates(p, q lin.V3) []int {
	seen := map[int]bool{}
	var out []int
	for _, idx := range o.candidates(p) {
		if !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	for _, idx := range o.candidates(q) {
		if !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	return out
}

// IntersectsSphere reports whether a sphere of radius r centered at c
// touches or overlaps any triangle whose cell overlaps the sphere.
func (o *Object) IntersectsSphere(c lin.V3, r float32) bool {
	for _, idx := range o.candidatesSphere(c, r) {
		if o.Triangles[idx].IntersectsSphere(c, r) {
			return true
		}
	}
	return false
}

// ResolvePoint finds the first triangle (among predPos's cell
// candidates) whose face the motion segment [prevPos,predPos] crosses
// and resolves against it; if none is crossed, the particle is
// returned unmodified.
func (o *Object) ResolvePoint(prevPos, predPos, predVel, curVel lin.V3, bounce, friction float32) (lin.V3, lin.V3) {
	for _, idx := range o.candidates(predPos) {
		if o.Triangles[idx].IntersectsSegment(prevPos, predPos) {
			return o.Triangles[idx].ResolvePoint(prevPos, predPos, predVel, curVel, bounce, friction)
		}
	}
	return predPos, predVel
}

// ResolveSphere finds the first triangle (among the sphere's cell
// candidates) the predicted sphere intersects and resolves against it;
// if none intersects, the particle is returned unmodified.
func (o *Object) ResolveSphere(prevPos, predPos, predVel, curVel lin.V3, radius, bounce, friction float32) (lin.V3, lin.V3) {
	for _, idx := range o.candidatesSphere(predPos, radius) {
		if o.Triangles[idx].IntersectsSphere(predPos, radius) {
			return o.Triangles[idx].ResolveSphere(prevPos, predPos, predVel, curVel, radius, bounce, friction)
		}
	}
	return predPos, predVel
}

// Partition exposes the underlying octree, matching physim's
// object::get_partition (useful for debug visualization of cell boxes).
func (o *Object) Partition() *structures.Octree { return o.partition }

var _ Geometry = (*Object)(nil)
