// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// vector.go implements the fixed-dimension vector value types: V2, V3, V4
// and V6. V3 is the workhorse used by particles and geometry; V2 backs the
// triangle's local 2D frame; V4 is a homogeneous point/direction; V6 packs
// two 3-vectors (e.g. a position and a velocity) into one value.
//
// Two arithmetic styles are offered:
//   - value operators (Add, Sub, Scale, ...) return a new vector and never
//     modify the receiver or its arguments: pure value semantics.
//   - in-place operators (AddEq, SubEq, ScaleEq, ...) mutate the receiver
//     and return it, for the hot paths where an allocation would show up
//     in a profile. V2 and V3 have the full set, V4 only Set and AddEq,
//     and V6 none.

// V2 is a 2 element vector.
type V2 struct{ X, Y float32 }

// V3 is a 3 element vector. This can also be used as a point.
type V3 struct{ X, Y, Z float32 }

// V4 is a 4 element vector. It can be used for points and directions
// where, as a point it would have W:1, and as a direction it would have
// W:0.
type V4 struct{ X, Y, Z, W float32 }

// V6 is a 6 element vector, used to carry a position and a velocity (or
// any other paired 3-vectors) through a single scratch value.
type V6 struct{ X, Y, Z, U, V, W float32 }

// V2
// ============================================================================

func (v V2) Eq(a V2) bool   { return v.X == a.X && v.Y == a.Y }
func (v V2) Aeq(a V2) bool  { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) }
func (v V2) Add(a V2) V2    { return V2{v.X + a.X, v.Y + a.Y} }
func (v V2) Sub(a V2) V2    { return V2{v.X - a.X, v.Y - a.Y} }
func (v V2) Mul(a V2) V2    { return V2{v.X * a.X, v.Y * a.Y} }
func (v V2) Scale(s float32) V2 { return V2{v.X * s, v.Y * s} }
func (v V2) Neg() V2        { return V2{-v.X, -v.Y} }
func (v V2) Dot(a V2) float32    { return v.X*a.X + v.Y*a.Y }
func (v V2) LenSqr() float32     { return v.Dot(v) }
func (v V2) Len() float32        { return sqrtf(v.LenSqr()) }
func (v V2) DistSqr(a V2) float32 { return v.Sub(a).LenSqr() }
func (v V2) Dist(a V2) float32   { return sqrtf(v.DistSqr(a)) }
func (v V2) Min(a V2) V2 {
	return V2{minf(v.X, a.X), minf(v.Y, a.Y)}
}
func (v V2) Max(a V2) V2 {
	return V2{maxf(v.X, a.X), maxf(v.Y, a.Y)}
}
func (v V2) Unit() V2 {
	l := v.Len()
	if l < Epsilon {
		return v
	}
	return v.Scale(1 / l)
}
func (v V2) Perp() V2 { return V2{-v.Y, v.X} }

func (v *V2) AddEq(a V2) *V2 { v.X, v.Y = v.X+a.X, v.Y+a.Y; return v }
func (v *V2) SubEq(a V2) *V2 { v.X, v.Y = v.X-a.X, v.Y-a.Y; return v }
func (v *V2) ScaleEq(s float32) *V2 { v.X, v.Y = v.X*s, v.Y*s; return v }
func (v *V2) Set(a V2) *V2   { v.X, v.Y = a.X, a.Y; return v }

// V3
// ============================================================================

// Eq (==) returns true if each element in v equals the corresponding
// element in a.
func (v V3) Eq(a V3) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// Aeq (~=) almost-equals returns true if v and a are equal to within
// Epsilon componentwise.
func (v V3) Aeq(a V3) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z) }

// Add (+) returns the sum of v and a. v and a are unchanged.
func (v V3) Add(a V3) V3 { return V3{v.X + a.X, v.Y + a.Y, v.Z + a.Z} }

// Sub (-) returns v minus a. v and a are unchanged.
func (v V3) Sub(a V3) V3 { return V3{v.X - a.X, v.Y - a.Y, v.Z - a.Z} }

// Mul (*) returns the componentwise product of v and a.
func (v V3) Mul(a V3) V3 { return V3{v.X * a.X, v.Y * a.Y, v.Z * a.Z} }

// Div (/) returns the componentwise quotient of v over a. Any zero
// component of a leaves the corresponding component of v unchanged,
// the same zero-guard the teacher engine applies to scalar Div.
func (v V3) Div(a V3) V3 {
	r := v
	if a.X != 0 {
		r.X = v.X / a.X
	}
	if a.Y != 0 {
		r.Y = v.Y / a.Y
	}
	if a.Z != 0 {
		r.Z = v.Z / a.Z
	}
	return r
}

// Scale (*=) returns v with every element multiplied by s.
func (v V3) Scale(s float32) V3 { return V3{v.X * s, v.Y * s, v.Z * s} }

// Neg (-) returns the negation of v.
func (v V3) Neg() V3 { return V3{-v.X, -v.Y, -v.Z} }

// Abs returns v with every element replaced by its absolute value.
func (v V3) Abs() V3 { return V3{absf(v.X), absf(v.Y), absf(v.Z)} }

// Dot returns the dot product of v and a.
func (v V3) Dot(a V3) float32 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z }

// Cross returns the cross product of v and a: a vector perpendicular
// to both. Only meaningful in 3 (or 7) dimensions.
func (v V3) Cross(a V3) V3 {
	return V3{v.Y*a.Z - v.Z*a.Y, v.Z*a.X - v.X*a.Z, v.X*a.Y - v.Y*a.X}
}

// LenSqr returns the squared length of v.
func (v V3) LenSqr() float32 { return v.Dot(v) }

// Len returns the length of v.
func (v V3) Len() float32 { return sqrtf(v.LenSqr()) }

// DistSqr returns the squared distance between points v and a.
func (v V3) DistSqr(a V3) float32 { return v.Sub(a).LenSqr() }

// Dist returns the distance between points v and a.
func (v V3) Dist(a V3) float32 { return sqrtf(v.DistSqr(a)) }

// Min returns the componentwise minimum of v and a.
func (v V3) Min(a V3) V3 {
	return V3{minf(v.X, a.X), minf(v.Y, a.Y), minf(v.Z, a.Z)}
}

// Max returns the componentwise maximum of v and a.
func (v V3) Max(a V3) V3 {
	return V3{maxf(v.X, a.X), maxf(v.Y, a.Y), maxf(v.Z, a.Z)}
}

// Unit returns v scaled to length 1. v is returned unchanged if its
// length is within Epsilon of zero.
func (v V3) Unit() V3 {
	l := v.Len()
	if l < Epsilon {
		return v
	}
	return v.Scale(1 / l)
}

// Ang returns the angle in radians between v and a, clamping the acos
// argument to [-1,1] per physim's numerical semantics. Returns 0 if
// either vector has zero magnitude.
func (v V3) Ang(a V3) float32 {
	mag := sqrtf(v.Dot(v) * a.Dot(a))
	if mag < Epsilon {
		return 0
	}
	return ClampAcos(v.Dot(a) / mag)
}

// Truncate returns v scaled down so its length does not exceed max. If
// v is already shorter than max, v is returned unchanged.
func (v V3) Truncate(max float32) V3 {
	l := v.Len()
	if l <= max || l < Epsilon {
		return v
	}
	return v.Scale(max / l)
}

// Perp returns an arbitrary vector perpendicular to v. Based on bullet
// physics' btVector3::btPlaneSpace1, also used by the teacher engine.
func (v V3) Perp() V3 {
	const sqrt12 = 0.7071067811865475244008443621048490
	if absf(v.Z) > sqrt12 {
		a := v.Y*v.Y + v.Z*v.Z
		k := 1 / sqrtf(a)
		return V3{0, -v.Z * k, v.Y * k}
	}
	a := v.X*v.X + v.Y*v.Y
	k := 1 / sqrtf(a)
	return V3{-v.Y * k, v.X * k, 0}
}

// Lerp returns the linear interpolation between v and a by ratio.
func (v V3) Lerp(a V3, ratio float32) V3 {
	return V3{Lerp(v.X, a.X, ratio), Lerp(v.Y, a.Y, ratio), Lerp(v.Z, a.Z, ratio)}
}

// in-place (mutating) operators. Each returns the receiver.

func (v *V3) Set(a V3) *V3 { v.X, v.Y, v.Z = a.X, a.Y, a.Z; return v }
func (v *V3) SetS(x, y, z float32) *V3 { v.X, v.Y, v.Z = x, y, z; return v }
func (v *V3) AddEq(a V3) *V3 { v.X, v.Y, v.Z = v.X+a.X, v.Y+a.Y, v.Z+a.Z; return v }
func (v *V3) SubEq(a V3) *V3 { v.X, v.Y, v.Z = v.X-a.X, v.Y-a.Y, v.Z-a.Z; return v }
func (v *V3) ScaleEq(s float32) *V3 { v.X, v.Y, v.Z = v.X*s, v.Y*s, v.Z*s; return v }
func (v *V3) NegEq() *V3 { v.X, v.Y, v.Z = -v.X, -v.Y, -v.Z; return v }
func (v *V3) UnitEq() *V3 { *v = v.Unit(); return v }

// V4
// ============================================================================

func (v V4) Eq(a V4) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z && v.W == a.W }
func (v V4) Aeq(a V4) bool {
	return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) && Aeq(v.Z, a.Z) && Aeq(v.W, a.W)
}
func (v V4) Add(a V4) V4 { return V4{v.X + a.X, v.Y + a.Y, v.Z + a.Z, v.W + a.W} }
func (v V4) Sub(a V4) V4 { return V4{v.X - a.X, v.Y - a.Y, v.Z - a.Z, v.W - a.W} }
func (v V4) Mul(a V4) V4 { return V4{v.X * a.X, v.Y * a.Y, v.Z * a.Z, v.W * a.W} }
func (v V4) Scale(s float32) V4 { return V4{v.X * s, v.Y * s, v.Z * s, v.W * s} }
func (v V4) Neg() V4     { return V4{-v.X, -v.Y, -v.Z, -v.W} }
func (v V4) Dot(a V4) float32 { return v.X*a.X + v.Y*a.Y + v.Z*a.Z + v.W*a.W }
func (v V4) LenSqr() float32  { return v.Dot(v) }
func (v V4) Len() float32     { return sqrtf(v.LenSqr()) }
func (v V4) Unit() V4 {
	l := v.Len()
	if l < Epsilon {
		return v
	}
	return v.Scale(1 / l)
}
func (v V4) XYZ() V3 { return V3{v.X, v.Y, v.Z} }

func (v *V4) Set(a V4) *V4 { v.X, v.Y, v.Z, v.W = a.X, a.Y, a.Z, a.W; return v }
func (v *V4) AddEq(a V4) *V4 {
	v.X, v.Y, v.Z, v.W = v.X+a.X, v.Y+a.Y, v.Z+a.Z, v.W+a.W
	return v
}

// V6
// ============================================================================

func (v V6) Add(a V6) V6 {
	return V6{v.X + a.X, v.Y + a.Y, v.Z + a.Z, v.U + a.U, v.V + a.V, v.W + a.W}
}
func (v V6) Sub(a V6) V6 {
	return V6{v.X - a.X, v.Y - a.Y, v.Z - a.Z, v.U - a.U, v.V - a.V, v.W - a.W}
}
func (v V6) Scale(s float32) V6 {
	return V6{v.X * s, v.Y * s, v.Z * s, v.U * s, v.V * s, v.W * s}
}
func (v V6) Dot(a V6) float32 {
	return v.X*a.X + v.Y*a.Y + v.Z*a.Z + v.U*a.U + v.V*a.V + v.W*a.W
}
func (v V6) LenSqr() float32 { return v.Dot(v) }
func (v V6) Len() float32    { return sqrtf(v.LenSqr()) }

// Upper returns the first 3 elements of v as a V3 (e.g. position half
// of a packed position/velocity V6).
func (v V6) Upper() V3 { return V3{v.X, v.Y, v.Z} }

// Lower returns the last 3 elements of v as a V3 (e.g. velocity half
// of a packed position/velocity V6).
func (v V6) Lower() V3 { return V3{v.U, v.V, v.W} }

// NewV6 packs two V3s (e.g. position, velocity) into a V6.
func NewV6(upper, lower V3) V6 {
	return V6{upper.X, upper.Y, upper.Z, lower.X, lower.Y, lower.Z}
}

// shared helpers
// ============================================================================

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
