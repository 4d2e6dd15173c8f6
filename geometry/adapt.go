// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"sync"

	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/attrmath"
	"cogentcore.org/geometry/curves"
	"cogentcore.org/geometry/gtype"
	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/math32"
	"cogentcore.org/geometry/mesh"
	"cogentcore.org/geometry/parallel"
	"cogentcore.org/geometry/varray"
)

// adapter adapts generic arrays of one value type between domains.
type adapter interface {
	mesh(m *mesh.Mesh, v varray.GVArray, from, to attribute.Domain) varray.GVArray
	curves(c *curves.Curves, v varray.GVArray, from, to attribute.Domain) varray.GVArray
}

type typedAdapter[T any] struct{}

func (typedAdapter[T]) mesh(m *mesh.Mesh, v varray.GVArray, from, to attribute.Domain) varray.GVArray {
	out := adaptMesh(m, varray.Typed[T](v), from, to)
	if !out.Valid() {
		return varray.GVArray{}
	}
	return varray.FromVArray(out)
}

func (typedAdapter[T]) curves(c *curves.Curves, v varray.GVArray, from, to attribute.Domain) varray.GVArray {
	out := adaptCurves(c, varray.Typed[T](v), from, to)
	if !out.Valid() {
		return varray.GVArray{}
	}
	return varray.FromVArray(out)
}

// evaluator interpolates point values to evaluated curve points.
type evaluator func(c *curves.Curves, v varray.GVArray) varray.GVArray

func evaluateTyped[T any](c *curves.Curves, v varray.GVArray) varray.GVArray {
	src := varray.Typed[T](v).ToSlice()
	return varray.FromVArray(varray.ForContainer(curves.InterpolateAllToEvaluated(c, src)))
}

var evaluators = sync.OnceValue(func() map[*gtype.Type]evaluator {
	return map[*gtype.Type]evaluator{
		gtype.Of[float32]():        evaluateTyped[float32],
		gtype.Of[math32.Vector2](): evaluateTyped[math32.Vector2],
		gtype.Of[math32.Vector3](): evaluateTyped[math32.Vector3],
		gtype.Of[int32]():          evaluateTyped[int32],
		gtype.Of[math32.Int2]():    evaluateTyped[math32.Int2],
		gtype.Of[int8]():           evaluateTyped[int8],
		gtype.Of[bool]():           evaluateTyped[bool],
		gtype.Of[math32.Color]():   evaluateTyped[math32.Color],
		gtype.Of[math32.ColorB]():  evaluateTyped[math32.ColorB],
		gtype.Of[math32.Quat]():    evaluateTyped[math32.Quat],
		gtype.Of[math32.Matrix4](): evaluateTyped[math32.Matrix4],
		gtype.Of[string]():         evaluateTyped[string],
	}
})

var adapters = sync.OnceValue(func() map[*gtype.Type]adapter {
	return map[*gtype.Type]adapter{
		gtype.Of[float32]():        typedAdapter[float32]{},
		gtype.Of[math32.Vector2](): typedAdapter[math32.Vector2]{},
		gtype.Of[math32.Vector3](): typedAdapter[math32.Vector3]{},
		gtype.Of[int32]():          typedAdapter[int32]{},
		gtype.Of[math32.Int2]():    typedAdapter[math32.Int2]{},
		gtype.Of[int8]():           typedAdapter[int8]{},
		gtype.Of[bool]():           typedAdapter[bool]{},
		gtype.Of[math32.Color]():   typedAdapter[math32.Color]{},
		gtype.Of[math32.ColorB]():  typedAdapter[math32.ColorB]{},
		gtype.Of[math32.Quat]():    typedAdapter[math32.Quat]{},
		gtype.Of[math32.Matrix4](): typedAdapter[math32.Matrix4]{},
		gtype.Of[string]():         typedAdapter[string]{},
	}
})

// adapterFor returns the adapter of the value type of v, or nil.
func adapterFor(v varray.GVArray) adapter {
	return adapters()[v.Type()]
}

// broadcast returns a lazy array of size values reading src at the
// index given by srcIndex. A single value stays single.
func broadcast[T any](src varray.VArray[T], size int, srcIndex func(i int) int) varray.VArray[T] {
	if src.IsSingle() {
		return varray.ForSingle(src.InternalSingle(), size)
	}
	d := varray.Devirtualize(src)
	return varray.ForFunc(size, func(i int) T {
		return d.Get(srcIndex(i))
	})
}

// contributions calls add for every pair of a destination element and
// a source element contributing to it. Calls for different destination
// elements may be concurrent.
type contributions func(add func(dst, src int))

// mixMean averages the contributing source values of every destination
// element. Elements without contributions get the zero value. It
// returns an invalid array for types that cannot be mixed.
func mixMean[T any](src varray.VArray[T], size int, each contributions) varray.VArray[T] {
	out := make([]T, size)
	mixer := attrmath.NewDefaultMixer(out)
	if mixer == nil {
		return varray.VArray[T]{}
	}
	d := varray.Devirtualize(src)
	each(func(dst, s int) {
		mixer.MixIn(dst, d.Get(s), 1)
	})
	mixer.Finalize()
	return varray.ForContainer(out)
}

// mixAnd sets every destination element to whether all its
// contributing values are true. Elements selected by loose are false.
func mixAnd(src varray.VArray[bool], size int, each contributions, loose indexmask.Mask) varray.VArray[bool] {
	out := make([]bool, size)
	for i := range out {
		out[i] = true
	}
	d := varray.Devirtualize(src)
	each(func(dst, s int) {
		if !d.Get(s) {
			out[dst] = false
		}
	})
	parallel.ForMask(loose, adaptGrain, func(i int) {
		out[i] = false
	})
	return varray.ForContainer(out)
}

// reduce picks the boolean AND reduction for bool values and the mean
// otherwise. Single values go through the same path so that loose
// elements get false or the zero value whatever the storage of src.
func reduce[T any](src varray.VArray[T], size int, each contributions, loose indexmask.Mask) varray.VArray[T] {
	if b, ok := any(src).(varray.VArray[bool]); ok {
		return any(mixAnd(b, size, each, loose)).(varray.VArray[T])
	}
	return mixMean(src, size, each)
}

// gather calls add for every source element contributing to dst.
type gather func(dst int, add func(src int))

// contributions runs g for every destination element in parallel.
func (g gather) contributions(size int) contributions {
	return func(add func(dst, src int)) {
		parallel.ForEach(indexmask.RangeOf(size), adaptGrain, func(dst int) {
			g(dst, func(src int) { add(dst, src) })
		})
	}
}

// adaptGrain is the number of destination elements per parallel task.
const adaptGrain = 2048
