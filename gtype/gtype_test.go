// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gtype

import (
	"testing"
	"unsafe"

	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/math32"
	"github.com/stretchr/testify/assert"
)

func TestOfIsUnique(t *testing.T) {
	assert.Same(t, Of[float32](), Of[float32]())
	assert.NotSame(t, Of[float32](), Of[int32]())
	assert.True(t, Is[math32.Vector3](Of[math32.Vector3]()))
	assert.Equal(t, 12, Of[math32.Vector3]().Size())
	assert.Equal(t, 4, Of[math32.Vector3]().Alignment())
	assert.True(t, Of[math32.Vector3]().IsTrivial())
	assert.False(t, Of[string]().IsTrivial())
}

type custom struct {
	A int32
	B []int
}

func TestRegisterOptions(t *testing.T) {
	ct := Register(WithName[custom]("custom"),
		WithDefault(custom{A: 7}),
		WithEqual(func(a, b custom) bool { return a.A == b.A }))
	assert.Equal(t, "custom", ct.Name())
	assert.Same(t, ct, Of[custom]())
	assert.Equal(t, int32(7), Value[custom](ct, ct.DefaultValue()).A)
	assert.True(t, ct.IsEqualityComparable())
	assert.False(t, ct.IsHashable())
	assert.False(t, ct.IsTrivial())

	a, b := custom{A: 1, B: []int{1}}, custom{A: 1}
	assert.True(t, ct.IsEqual(unsafe.Pointer(&a), unsafe.Pointer(&b)))

	// second registration keeps the first descriptor
	again := Register(WithName[custom]("other"))
	assert.Same(t, ct, again)
	assert.Equal(t, "custom", again.Name())
}

func TestDefaultValues(t *testing.T) {
	q := Value[math32.Quat](Of[math32.Quat](), Of[math32.Quat]().DefaultValue())
	assert.Equal(t, math32.QuatIdentity(), q)
	m := Value[math32.Matrix4](Of[math32.Matrix4](), Of[math32.Matrix4]().DefaultValue())
	assert.Equal(t, math32.Identity4(), m)
	assert.Equal(t, float32(0), *(*float32)(Of[float32]().DefaultValue()))

	qs := make([]math32.Quat, 3)
	qt := Of[math32.Quat]()
	qt.DefaultConstructIndices(unsafe.Pointer(&qs[0]), indexmask.FromIndices([]int{0, 2}))
	assert.Equal(t, []math32.Quat{math32.QuatIdentity(), {}, math32.QuatIdentity()}, qs)
	qt.ValueInitialize(unsafe.Pointer(&qs[2]))
	assert.Equal(t, math32.Quat{}, qs[2])
}

func TestCopyIndices(t *testing.T) {
	ty := Of[int32]()
	src := []int32{1, 2, 3, 4, 5}
	dst := make([]int32, 5)
	ty.CopyAssignIndices(unsafe.Pointer(&src[0]), unsafe.Pointer(&dst[0]), indexmask.FromIndices([]int{0, 2, 4}))
	assert.Equal(t, []int32{1, 0, 3, 0, 5}, dst)

	comp := make([]int32, 3)
	ty.CopyAssignCompressed(unsafe.Pointer(&src[0]), unsafe.Pointer(&comp[0]), indexmask.FromIndices([]int{1, 3, 4}))
	assert.Equal(t, []int32{2, 4, 5}, comp)

	comp = make([]int32, 2)
	ty.CopyConstructCompressed(unsafe.Pointer(&src[0]), unsafe.Pointer(&comp[0]), indexmask.FromRange(indexmask.Range{Start: 2, Size: 2}))
	assert.Equal(t, []int32{3, 4}, comp)
}

func TestFillRelocateDestruct(t *testing.T) {
	ty := Of[string]()
	dst := make([]string, 4)
	v := "x"
	ty.FillAssignIndices(unsafe.Pointer(&v), unsafe.Pointer(&dst[0]), indexmask.FromIndices([]int{1, 3}))
	assert.Equal(t, []string{"", "x", "", "x"}, dst)

	other := make([]string, 4)
	ty.RelocateAssignIndices(unsafe.Pointer(&dst[0]), unsafe.Pointer(&other[0]), indexmask.FromSize(4))
	assert.Equal(t, []string{"", "x", "", "x"}, other)
	assert.Equal(t, []string{"", "", "", ""}, dst)

	ty.DestructIndices(unsafe.Pointer(&other[0]), indexmask.FromIndices([]int{3}))
	assert.Equal(t, []string{"", "x", "", ""}, other)

	ty.FillConstructN(unsafe.Pointer(&v), unsafe.Pointer(&other[0]), 2)
	assert.Equal(t, []string{"x", "x", "", ""}, other)
}

func TestEmptyMaskAllowsNil(t *testing.T) {
	ty := Of[float32]()
	ty.CopyAssignIndices(nil, nil, indexmask.Mask{})
	ty.DestructIndices(nil, indexmask.Mask{})
}

func TestHashAndEqual(t *testing.T) {
	ty := Of[float32]()
	a, b := float32(0), float32(0)
	b = -b
	assert.True(t, ty.IsEqual(unsafe.Pointer(&a), unsafe.Pointer(&b)))
	assert.Equal(t, ty.Hash(unsafe.Pointer(&a)), ty.Hash(unsafe.Pointer(&b)))

	vt := Of[math32.Vector3]()
	v1 := math32.Vec3(1, 2, 3)
	v2 := math32.Vec3(1, 2, 3)
	v3 := math32.Vec3(1, 2, 4)
	assert.Equal(t, vt.Hash(unsafe.Pointer(&v1)), vt.Hash(unsafe.Pointer(&v2)))
	assert.NotEqual(t, vt.Hash(unsafe.Pointer(&v1)), vt.Hash(unsafe.Pointer(&v3)))

	st := Of[string]()
	s1, s2 := "abc", "ab"+"c"
	assert.Equal(t, st.Hash(unsafe.Pointer(&s1)), st.Hash(unsafe.Pointer(&s2)))

	it := Of[math32.Int2]()
	assert.True(t, it.IsHashable())
}

func TestPrint(t *testing.T) {
	f := float32(1.5)
	assert.Equal(t, "1.5", Of[float32]().Print(unsafe.Pointer(&f)))
	b := true
	assert.Equal(t, "true", Of[bool]().Print(unsafe.Pointer(&b)))
}

func TestNewBuffer(t *testing.T) {
	keep, data := Of[math32.Vector3]().NewBuffer(3)
	s := keep.([]math32.Vector3)
	assert.Len(t, s, 3)
	assert.Equal(t, unsafe.Pointer(&s[0]), data)
	assert.True(t, Of[math32.Vector3]().PointerCanPointToInstance(data))

	_, data = Of[math32.Vector3]().NewBuffer(0)
	assert.Nil(t, data)
}
