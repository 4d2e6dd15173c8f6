// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import (
	"testing"

	"cogentcore.org/geometry/gtype"
	"cogentcore.org/geometry/math32"
	"github.com/stretchr/testify/assert"
)

func TestSpan(t *testing.T) {
	vals := []float32{1, 2, 3, 4}
	s := SpanOf(vals)
	assert.Equal(t, 4, s.Size())
	assert.Same(t, gtype.Of[float32](), s.Type())
	assert.Equal(t, float32(3), *(*float32)(s.At(2)))
	sub := s.Slice(1, 2)
	assert.Equal(t, []float32{2, 3}, Typed[float32](sub))
	assert.True(t, s.Slice(4, 0).IsEmpty())

	ms := MutableSpanOf(vals)
	TypedMutable[float32](ms)[0] = 10
	assert.Equal(t, float32(10), vals[0])

	assert.True(t, SpanOf[int32](nil).IsEmpty())
}

func TestArray(t *testing.T) {
	a := NewArray(gtype.Of[math32.Vector3](), 3)
	assert.Equal(t, 3, a.Size())
	vs := TypedMutable[math32.Vector3](a.AsMutableSpan())
	vs[1] = math32.Vec3(1, 2, 3)

	c := a.Clone()
	vs[1] = math32.Vec3(0, 0, 0)
	assert.Equal(t, math32.Vec3(1, 2, 3), Typed[math32.Vector3](c.AsSpan())[1])

	m := c.Move()
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, math32.Vec3(1, 2, 3), *(*math32.Vector3)(m.At(1)))

	m.Free()
	assert.True(t, m.IsEmpty())

	s := ArrayOf([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, Typed[string](s.AsSpan()))
	s.Reinitialize(1)
	assert.Equal(t, []string{""}, Typed[string](s.AsSpan()))

	f := ArrayOf([]float32{1, 2, 3})
	f.Reinitialize(5)
	assert.Equal(t, 5, f.Size())
	assert.Equal(t, make([]float32, 5), Typed[float32](f.AsSpan()))
}

func TestArrayReinitializeDefault(t *testing.T) {
	q := NewArray(gtype.Of[math32.Quat](), 2)
	assert.Equal(t, []math32.Quat{math32.QuatIdentity(), math32.QuatIdentity()}, Typed[math32.Quat](q.AsSpan()))

	TypedMutable[math32.Quat](q.AsMutableSpan())[0] = math32.Quat{X: 1}
	q.Reinitialize(1)
	assert.Equal(t, []math32.Quat{math32.QuatIdentity()}, Typed[math32.Quat](q.AsSpan()))

	q.Reinitialize(3)
	assert.Equal(t, 3, q.Size())
	for _, v := range Typed[math32.Quat](q.AsSpan()) {
		assert.Equal(t, math32.QuatIdentity(), v)
	}
}
