// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"testing"
	"unsafe"

	"cogentcore.org/geometry/generic"
	"cogentcore.org/geometry/gtype"
	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroIsInvalid(t *testing.T) {
	var v VArray[float32]
	assert.False(t, v.Valid())
	assert.Equal(t, 0, v.Size())
	var g GVArray
	assert.False(t, g.Valid())
	assert.Nil(t, g.Type())
	assert.False(t, FromVArray(v).Valid())
	assert.False(t, Typed[float32](g).Valid())
}

func TestCanonicalImpls(t *testing.T) {
	data := []int32{1, 2, 3}
	s := ForSpan(data)
	assert.True(t, s.IsSpan())
	assert.False(t, s.CommonInfo().MayHaveOwnership)
	assert.Equal(t, int32(2), s.Get(1))
	assert.Equal(t, data, s.InternalSpan())

	c := ForContainer([]int32{4})
	assert.True(t, c.CommonInfo().MayHaveOwnership)

	one := ForSingle[int32](7, 4)
	assert.True(t, one.IsSingle())
	assert.Equal(t, int32(7), one.InternalSingle())
	assert.Equal(t, []int32{7, 7, 7, 7}, one.ToSlice())

	f := ForFunc(3, func(i int) int32 { return int32(i * i) })
	assert.False(t, f.IsSpan())
	assert.False(t, f.IsSingle())
	assert.Equal(t, []int32{0, 1, 4}, f.ToSlice())

	m := ForMutableSpan(data)
	m.Set(0, 10)
	assert.Equal(t, int32(10), data[0])
	m.SetAll([]int32{5, 6, 7})
	assert.Equal(t, []int32{5, 6, 7}, data)
}

type vertex struct {
	Position math32.Vector3
	Weight   float32
}

func TestDerivedSpan(t *testing.T) {
	verts := []vertex{{Position: math32.Vec3(1, 0, 0), Weight: 1}, {Position: math32.Vec3(0, 2, 0), Weight: 2}}
	w := ForMutableDerivedSpan(verts,
		func(v *vertex) float32 { return v.Weight },
		func(v *vertex, f float32) { v.Weight = f })
	assert.Equal(t, []float32{1, 2}, w.ToSlice())
	w.Set(1, 5)
	assert.Equal(t, float32(5), verts[1].Weight)
	w.SetAll([]float32{3, 4})
	assert.Equal(t, float32(3), verts[0].Weight)
	assert.Equal(t, float32(4), verts[1].Weight)

	p := ForDerivedSpan(verts, func(v *vertex) math32.Vector3 { return v.Position })
	assert.Equal(t, math32.Vec3(0, 2, 0), p.Get(1))
}

func TestMaterialize(t *testing.T) {
	mask := indexmask.FromIndices([]int{0, 2, 3})
	for _, v := range []VArray[float32]{
		ForSpan([]float32{1, 2, 3, 4}),
		ForSingle[float32](9, 4),
		ForFunc(4, func(i int) float32 { return float32(i) + 0.5 }),
	} {
		dst := make([]float32, 4)
		v.Materialize(mask, dst)
		for _, i := range []int{0, 2, 3} {
			assert.Equal(t, v.Get(i), dst[i])
		}
		assert.Equal(t, float32(0), dst[1])

		comp := make([]float32, 3)
		v.MaterializeCompressed(mask, comp)
		assert.Equal(t, []float32{v.Get(0), v.Get(2), v.Get(3)}, comp)
	}
}

func TestGVArray(t *testing.T) {
	data := []float32{1, 2, 3}
	g := ForGSpan(generic.SpanOf(data))
	assert.Same(t, gtype.Of[float32](), g.Type())
	assert.True(t, g.IsSpan())
	var f float32
	g.Get(2, unsafe.Pointer(&f))
	assert.Equal(t, float32(3), f)

	dst := make([]float32, 3)
	g.MaterializeCompressed(indexmask.FromIndices([]int{0, 2}), unsafe.Pointer(&dst[0]))
	assert.Equal(t, []float32{1, 3, 0}, dst)

	v := float32(4)
	single := ForGSingle(gtype.Of[float32](), unsafe.Pointer(&v), 3)
	v = 0
	assert.True(t, single.IsSingle())
	assert.Equal(t, []float32{4, 4, 4}, generic.Typed[float32](single.ToArray().AsSpan()))

	q := ForGSingleDefault(gtype.Of[math32.Quat](), 2)
	assert.Equal(t, math32.QuatIdentity(), Typed[math32.Quat](q).Get(1))

	empty := ForEmpty(gtype.Of[int32]())
	assert.True(t, empty.Valid())
	assert.True(t, empty.IsEmpty())

	a := generic.ArrayOf([]int32{1, 2, 3, 4})
	owned := ForGMutableArray(a)
	assert.True(t, owned.MayHaveOwnership())
	x := int32(8)
	owned.SetByCopy(1, unsafe.Pointer(&x))
	owned.Fill(unsafe.Pointer(&x))
	assert.Equal(t, []int32{8, 8, 8, 8}, generic.Typed[int32](a.AsSpan()))
	owned.SetAll(generic.SpanOf([]int32{4, 3, 2, 1}))
	assert.Equal(t, []int32{4, 3, 2, 1}, generic.Typed[int32](a.AsSpan()))
}

func TestSlice(t *testing.T) {
	r := indexmask.Range{Start: 1, Size: 2}
	g := ForGSpan(generic.SpanOf([]int32{1, 2, 3, 4}))
	assert.Equal(t, []int32{2, 3}, Typed[int32](g.Slice(r)).ToSlice())
	assert.True(t, g.Slice(r).IsSpan())

	f := FromVArray(ForFunc(4, func(i int) int32 { return int32(10 * i) }))
	sf := f.Slice(r)
	assert.Equal(t, 2, sf.Size())
	assert.Equal(t, []int32{10, 20}, Typed[int32](sf).ToSlice())

	s := ForSingle[int32](3, 10).Slice(r)
	assert.True(t, s.IsSingle())
	assert.Equal(t, 2, s.Size())
}

func TestConversionUnwraps(t *testing.T) {
	v := ForFunc(3, func(i int) int32 { return int32(i) })
	g := FromVArray(v)
	back := Typed[int32](g)
	assert.Same(t, v.Impl(), back.Impl())

	gs := ForGSpan(generic.SpanOf([]int32{1, 2}))
	tv := Typed[int32](gs)
	assert.Same(t, gs.Impl(), FromVArray(tv).Impl())
	assert.True(t, tv.IsSpan())

	data := []int32{1, 2}
	mv := ForMutableSpan(data)
	gm := FromVMutableArray(mv)
	mback := TypedMutable[int32](gm)
	assert.Same(t, mv.MutableImpl(), mback.MutableImpl())
	y := int32(5)
	gm.SetByCopy(0, unsafe.Pointer(&y))
	assert.Equal(t, int32(5), data[0])

	ga := ForGMutableArray(generic.ArrayOf([]int32{0, 0}))
	tm := TypedMutable[int32](ga)
	tm.Set(1, 3)
	assert.Same(t, ga.MutableImpl(), FromVMutableArray(tm).MutableImpl())
	var out int32
	ga.Get(1, unsafe.Pointer(&out))
	assert.Equal(t, int32(3), out)
}

func TestDevirtualizeEquivalence(t *testing.T) {
	mask := indexmask.FromIndices([]int{1, 2, 4})
	for _, v := range []VArray[math32.Vector3]{
		ForSpan([]math32.Vector3{{X: 1}, {Y: 2}, {Z: 3}, {X: 4}, {Y: 5}}),
		ForSingle(math32.Vec3(1, 2, 3), 5),
		ForFunc(5, func(i int) math32.Vector3 { return math32.Vector3Scalar(float32(i)) }),
	} {
		virt := make([]math32.Vector3, 5)
		fast := make([]math32.Vector3, 5)
		v.Materialize(mask, virt)
		Foreach(v, mask, func(i int, value math32.Vector3) { fast[i] = value })
		assert.Equal(t, virt, fast)

		d := Devirtualize(v)
		for i := range v.Size() {
			assert.Equal(t, v.Get(i), d.Get(i))
		}
	}
}

func TestVisit(t *testing.T) {
	var got string
	visit := func(v VArray[int32]) {
		Visit(v, func(s []int32) { got = "span" },
			func(int32) { got = "single" },
			func(VArray[int32]) { got = "virtual" })
	}
	visit(ForSpan([]int32{1}))
	assert.Equal(t, "span", got)
	visit(ForSingle[int32](1, 3))
	assert.Equal(t, "single", got)
	visit(ForFunc(2, func(i int) int32 { return int32(i) }))
	assert.Equal(t, "virtual", got)
}

func TestDevirtualizeMany(t *testing.T) {
	a := Virtual(ForSpan([]int32{1, 2}))
	b := Virtual(ForSingle(float32(2), 2))
	c := Virtual(ForFunc(2, func(i int) math32.Vector3 { return math32.Vector3Scalar(float32(i)) }))
	require.True(t, DevirtualizeMany(&a, &b, &c))
	assert.Equal(t, InfoSpan, a.Shape)
	assert.Equal(t, InfoSingle, b.Shape)
	assert.Equal(t, InfoAny, c.Shape)
	assert.Equal(t, int32(2), a.Get(1))
	assert.Equal(t, float32(2), b.Get(0))
	assert.Equal(t, math32.Vector3Scalar(1), c.Get(1))

	ds := make([]Devirtualized[int32], MaxDevirtualizedParams+1)
	rs := make([]Resolver, len(ds))
	for i := range ds {
		ds[i] = Virtual(ForSingle(int32(i), 2))
		rs[i] = &ds[i]
	}
	assert.False(t, DevirtualizeMany(rs...))
	assert.Equal(t, InfoAny, ds[3].Shape)
	assert.Equal(t, int32(3), ds[3].Get(1))
	assert.True(t, DevirtualizeMany(rs[:MaxDevirtualizedParams]...))
	assert.Equal(t, InfoSingle, ds[3].Shape)

	var sum int32
	Foreach(ForSpan([]int32{1, 2, 3}), indexmask.FromSize(3), func(_ int, v int32) { sum += v })
	assert.Equal(t, int32(6), sum)
}
