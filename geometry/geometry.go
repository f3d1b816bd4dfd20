// Package geometry implements physim's static collision primitives: plane,
// triangle, rectangle, sphere, and composite triangular object. Each
// primitive exposes inside/segment/sphere tests and a deterministic
// collision response, grounded in physim's original geometry module
// (physim/geometry/*.cpp in the project this engine is descended from).
package geometry

import "github.com/lluisalemanypuig/physim/math/lin"

// Tolerance is the default distance tolerance used by inside/segment
// tests unless a caller supplies its own, matching physim's numerical
// semantics (distance tests default to 1e-6).
const Tolerance float32 = 1e-6

// Geometry is implemented by every static collision primitive: Plane,
// Triangle, Rectangle, Sphere, and Object (a triangle soup accelerated by
// an octree). The simulator holds a `[]Geometry` and type-switches only
// where a primitive-specific shortcut applies; the vast majority of the
// per-step collision loop only ever calls through this interface.
type Geometry interface {
	// IsInside reports whether p lies within tol of the primitive's
	// interior (for a plane: on or behind it).
	IsInside(p lin.V3, tol float32) bool

	// IntersectsSegment reports whether the segment [p,q] crosses the
	// primitive.
	IntersectsSegment(p, q lin.V3) bool

	// IntersectsSegmentPoint is IntersectsSegment, additionally
	// returning the point of intersection closest to p when found.
	IntersectsSegmentPoint(p, q lin.V3) (point lin.V3, hit bool)

	// IntersectsSphere reports whether a sphere of radius r centered at
	// center touches or overlaps the primitive.
	IntersectsSphere(center lin.V3, r float32) bool

	// ResolvePoint computes the post-collision (position, velocity) for
	// a point (zero-radius) particle that moved from prevPos to the
	// predicted predPos with predicted velocity predVel, whose velocity
	// prior to prediction was curVel, using the given restitution
	// (bounce) and friction coefficients. prevPos locates the contact
	// point for primitives (e.g. Sphere) whose response depends on
	// where the motion segment actually crossed the surface.
	ResolvePoint(prevPos, predPos, predVel, curVel lin.V3, bounce, friction float32) (lin.V3, lin.V3)

	// ResolveSphere is ResolvePoint for a sized (sphere) particle of
	// the given radius: if the predicted sphere penetrates the
	// primitive, the center is first pushed out along the contact
	// normal before the plane response is applied.
	ResolveSphere(prevPos, predPos, predVel, curVel lin.V3, radius, bounce, friction float32) (lin.V3, lin.V3)
}

// resolveAgainstPlane is the single collision response routine every
// primitive in this package delegates to, matching physim's
// plane::update_upon_collision.
//
//	W  = (n·x + d)·n                         -- plane-to-position vector
//	x' = x - (1+bounce)·W                    -- new position
//	v' = predVel - (1+bounce)·(n·predVel)·n  -- bounced velocity
//	vt = curVel - (n·curVel)·n               -- tangential component at curVel
//	v' = v' - friction·vt
func resolveAgainstPlane(normal lin.V3, d float32, predPos, predVel, curVel lin.V3, bounce, friction float32) (lin.V3, lin.V3) {
	w := normal.Scale(normal.Dot(predPos) + d)
	newPos := predPos.Sub(w.Scale(1 + bounce))

	nv := normal.Dot(predVel)
	newVel := predVel.Sub(normal.Scale((1 + bounce) * nv))

	vt := curVel.Sub(normal.Scale(normal.Dot(curVel)))
	newVel = newVel.Sub(vt.Scale(friction))

	return newPos, newVel
}

// AABB is an axis-aligned bounding box, min/max corners.
type AABB struct {
	Min, Max lin.V3
}

// Overlaps reports whether AABB a and b intersect (touching along a
// single point/edge/face does not count as overlapping).
func (a AABB) Overlaps(b AABB) bool {
	return a.Max.X > b.Min.X && a.Min.X < b.Max.X &&
		a.Max.Y > b.Min.Y && a.Min.Y < b.Max.Y &&
		a.Max.Z > b.Min.Z && a.Min.Z < b.Max.Z
}

// IntersectsSphere reports whether AABB a touches or overlaps a sphere
// of radius r centered at c.
func (a AABB) IntersectsSphere(c lin.V3, r float32) bool {
	d2 := float32(0)
	if c.X < a.Min.X {
		d2 += (a.Min.X - c.X) * (a.Min.X - c.X)
	} else if c.X > a.Max.X {
		d2 += (c.X - a.Max.X) * (c.X - a.Max.X)
	}
	if c.Y < a.Min.Y {
		d2 += (a.Min.Y - c.Y) * (a.Min.Y - c.Y)
	} else if c.Y > a.Max.Y {
		d2 += (c.Y - a.Max.Y) * (c.Y - a.Max.Y)
	}
	if c.Z < a.Min.Z {
		d2 += (a.Min.Z - c.Z) * (a.Min.Z - c.Z)
	} else if c.Z > a.Max.Z {
		d2 += (c.Z - a.Max.Z) * (c.Z - a.Max.Z)
	}
	return d2 <= r*r
}

// Union returns the smallest AABB containing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// UnionPoint returns the smallest AABB containing a and the point p.
func (a AABB) UnionPoint(p lin.V3) AABB {
	return AABB{Min: a.Min.Min(p), Max: a.Max.Max(p)}
}

// boundsOf computes the AABB enclosing the given points. Panics if
// points is empty; callers are expected to have at least one vertex.
func boundsOf(points ...lin.V3) AABB {
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.UnionPoint(p)
	}
	return box
}
