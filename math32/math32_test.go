// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-6)

func TestVector3(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(3, 2, 1)
	assert.Equal(t, Vec3(4, 4, 4), a.Add(b))
	assert.Equal(t, Vec3(-2, 0, 2), a.Sub(b))
	assert.Equal(t, float32(10), a.Dot(b))
	assert.Equal(t, Vec3(-4, 8, -4), a.Cross(b))
	assert.Equal(t, Vec3(2, 2, 2), a.Lerp(b, 0.5))
	assert.Equal(t, Vector3{}, a.DivScalar(0))
	assert.InDelta(t, 1, Vec3(3, 4, 0).Normal().Length(), 1e-6)
}

func TestQuat(t *testing.T) {
	q := NewQuatAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	assert.InDelta(t, 1, q.Length(), 1e-6)
	id := QuatIdentity()
	r := q.Mul(id)
	assert.InDelta(t, q.Z, r.Z, 1e-6)
	var z Quat
	z.Normalize()
	assert.Equal(t, QuatIdentity(), z)
}

func TestColor(t *testing.T) {
	c := NewColor(1, 0.5, 0, 2)
	b := c.ToByte()
	assert.Equal(t, ColorB{255, 128, 0, 255}, b)
	assert.InDelta(t, 0.50196, b.ToFloat().G, 1e-4)
}

func TestColorSRGB(t *testing.T) {
	assert.InDelta(t, 0.21404, SRGBToLinear(0.5), 1e-4)
	assert.InDelta(t, 0.73536, LinearToSRGB(0.5), 1e-4)
	assert.Equal(t, float32(0), SRGBToLinear(-0.5))
	assert.Equal(t, float32(0), LinearToSRGB(-0.5))
	assert.InDelta(t, 1, SRGBToLinear(1), 1e-6)

	var b ColorB
	b.SetSRGB(NewColor(0.5, -1, 1.2, 0.25))
	assert.Equal(t, ColorB{128, 0, 255, 64}, b)
	assert.InDelta(t, 0.25098, b.SRGB().A, 1e-4)

	lin := ColorB{255, 0, 128, 51}.Linear()
	assert.InDelta(t, 1, lin.R, 1e-6)
	assert.Equal(t, float32(0), lin.G)
	assert.InDelta(t, 0.21586, lin.B, 1e-4)
	assert.InDelta(t, 0.2, lin.A, 1e-6)

	for v := range 256 {
		in := ColorB{uint8(v), uint8(255 - v), uint8(v / 2), uint8(v)}
		var out ColorB
		out.SetLinear(in.Linear())
		assert.Equal(t, in, out)
	}

	f := NewColor(0.2, 0.5, 1, 0.3)
	back := ColorFromSRGB(f.SRGB())
	assert.InDelta(t, f.R, back.R, 1e-5)
	assert.InDelta(t, f.G, back.G, 1e-5)
	assert.Equal(t, f.A, back.A)
}

func TestMatrix4(t *testing.T) {
	m := Translation4(Vec3(1, 2, 3))
	id := Identity4()
	assert.Equal(t, m, m.Mul(&id))
	p := m.MulVector3AsPoint(Vec3(1, 1, 1))
	assert.True(t, p.IsEqualTol(Vec3(2, 3, 4), standardTol))
	assert.Equal(t, Vec3(1, 2, 3), m.Translation())
}

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())
	b.ExpandByPoints([]Vector3{Vec3(-1, 0, 2), Vec3(1, 4, -2)})
	assert.Equal(t, Vec3(0, 2, 0), b.Center())
	assert.Equal(t, Vec3(2, 4, 4), b.Size())
	assert.True(t, b.ContainsPoint(Vec3(0, 1, 0)))
	assert.False(t, b.ContainsPoint(Vec3(0, 5, 0)))

	assert.Equal(t, b, b.Union(B3Empty()))
	u := b.Union(Box3{Min: Vec3(0, 0, 0), Max: Vec3(5, 1, 1)})
	assert.Equal(t, Vec3(5, 4, 2), u.Max)

	m := Translation4(Vec3(10, 0, 0))
	moved := b.Transform(&m)
	assert.Equal(t, Vec3(9, 0, -2), moved.Min)
	assert.Equal(t, Vec3(11, 4, 2), moved.Max)
	assert.True(t, B3Empty().Transform(&m).IsEmpty())

	s := B3Empty()
	s.ExpandBySphere(Vec3(1, 1, 1), 0.5)
	assert.Equal(t, Vec3(0.5, 0.5, 0.5), s.Min)
	assert.Equal(t, Vec3(1.5, 1.5, 1.5), s.Max)
}

func TestInt2(t *testing.T) {
	e := Int2{3, 7}
	assert.Equal(t, int32(7), e.Other(3))
	assert.Equal(t, int32(3), e.Other(7))
	assert.Equal(t, int32(-1), e.Other(1))
}
