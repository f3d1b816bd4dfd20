// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestV3AddSub(t *testing.T) {
	a, b := V3{1, 2, 3}, V3{4, 5, 6}
	require.Equal(t, V3{5, 7, 9}, a.Add(b))
	require.Equal(t, V3{-3, -3, -3}, a.Sub(b))
	// a, b unchanged
	require.Equal(t, V3{1, 2, 3}, a)
}

func TestV3Dot(t *testing.T) {
	require.Equal(t, float32(32), V3{1, 2, 3}.Dot(V3{4, 5, 6}))
}

func TestV3Cross(t *testing.T) {
	x, y := V3{1, 0, 0}, V3{0, 1, 0}
	require.True(t, x.Cross(y).Eq(V3{0, 0, 1}))
}

func TestV3UnitNormalizeThenNorm(t *testing.T) {
	v := V3{3, 4, 0}
	u := v.Unit()
	require.InDelta(t, 1, u.Len(), 1e-6)
}

func TestV3UnitZeroVector(t *testing.T) {
	var v V3
	require.Equal(t, v, v.Unit())
}

func TestV3Truncate(t *testing.T) {
	v := V3{10, 0, 0}
	require.InDelta(t, 5, v.Truncate(5).Len(), 1e-6)
	short := V3{1, 0, 0}
	require.Equal(t, short, short.Truncate(5))
}

func TestV3AngSelf(t *testing.T) {
	v := V3{1, 0, 0}
	require.InDelta(t, 0, v.Ang(v), 1e-5)
}

func TestV3AngOrthogonal(t *testing.T) {
	require.InDelta(t, float64(HalfPi), V3{1, 0, 0}.Ang(V3{0, 1, 0}), 1e-5)
}

func TestV3DistSqr(t *testing.T) {
	require.Equal(t, float32(25), V3{0, 0, 0}.DistSqr(V3{3, 4, 0}))
}

func TestV3MinMax(t *testing.T) {
	a, b := V3{1, -2, 3}, V3{-1, 2, -3}
	require.Equal(t, V3{-1, -2, -3}, a.Min(b))
	require.Equal(t, V3{1, 2, 3}, a.Max(b))
}

func TestV3InPlaceMutatesReceiverOnly(t *testing.T) {
	v := V3{1, 1, 1}
	a := V3{2, 2, 2}
	v.AddEq(a)
	require.Equal(t, V3{3, 3, 3}, v)
	require.Equal(t, V3{2, 2, 2}, a) // argument unaffected
}

func TestV3Perp(t *testing.T) {
	v := V3{0, 0, 1}
	p := v.Perp()
	require.InDelta(t, 0, p.Dot(v), 1e-6)
	require.InDelta(t, 1, p.Len(), 1e-6)
}

func TestV6UpperLower(t *testing.T) {
	pos, vel := V3{1, 2, 3}, V3{4, 5, 6}
	packed := NewV6(pos, vel)
	require.Equal(t, pos, packed.Upper())
	require.Equal(t, vel, packed.Lower())
}

func TestV2Basics(t *testing.T) {
	a, b := V2{1, 2}, V2{3, 4}
	require.Equal(t, V2{4, 6}, a.Add(b))
	require.InDelta(t, 1, a.Unit().Len(), 1e-6)
}

func TestV4DotLen(t *testing.T) {
	v := V4{1, 0, 0, 0}
	require.InDelta(t, 1, v.Len(), 1e-6)
}

func TestClampAcosOutOfRange(t *testing.T) {
	// drift slightly outside [-1,1]; must not panic or return NaN.
	got := ClampAcos(1.0000001)
	require.InDelta(t, 0, got, 1e-4)
}
