// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"unsafe"

	"cogentcore.org/geometry/base/debug"
	"cogentcore.org/geometry/gtype"
	"cogentcore.org/geometry/indexmask"
)

// typedAssigner is implemented by generic implementations that wrap
// a typed virtual array, so that converting back unwraps it.
type typedAssigner interface {
	tryAssignVArray(dst any) bool
	tryAssignVMutableArray(dst any) bool
}

// genericAssigner is implemented by typed implementations that wrap
// a generic virtual array.
type genericAssigner interface {
	tryAssignGVArray(dst *GVArray) bool
	tryAssignGVMutableArray(dst *GVMutableArray) bool
}

// gForVArray exposes a typed virtual array as a generic one.
type gForVArray[T any] struct {
	v   VArray[T]
	mut VMutableArray[T]
	typ *gtype.Type
}

func (g *gForVArray[T]) Type() *gtype.Type      { return g.typ }
func (g *gForVArray[T]) Size() int              { return g.v.impl.Size() }
func (g *gForVArray[T]) CommonInfo() CommonInfo { return g.v.impl.CommonInfo() }

func (g *gForVArray[T]) Get(i int, dst unsafe.Pointer) {
	*(*T)(dst) = g.v.impl.Get(i)
}

func (g *gForVArray[T]) Set(i int, src unsafe.Pointer) {
	g.mut.mimpl.Set(i, *(*T)(src))
}

func (g *gForVArray[T]) SetAll(src unsafe.Pointer) {
	g.mut.SetAll(unsafe.Slice((*T)(src), g.Size()))
}

func (g *gForVArray[T]) Materialize(mask indexmask.Mask, dst unsafe.Pointer, _ bool) {
	g.v.Materialize(mask, unsafe.Slice((*T)(dst), mask.MinArraySize()))
}

func (g *gForVArray[T]) MaterializeCompressed(mask indexmask.Mask, dst unsafe.Pointer, _ bool) {
	g.v.MaterializeCompressed(mask, unsafe.Slice((*T)(dst), mask.Size()))
}

func (g *gForVArray[T]) tryAssignVArray(dst any) bool {
	p, ok := dst.(*VArray[T])
	if ok {
		*p = g.v
	}
	return ok
}

func (g *gForVArray[T]) tryAssignVMutableArray(dst any) bool {
	p, ok := dst.(*VMutableArray[T])
	if ok && g.mut.Valid() {
		*p = g.mut
		return true
	}
	return false
}

// vForGVArray exposes a generic virtual array as a typed one.
type vForGVArray[T any] struct {
	g   GVArray
	mut GVMutableArray
}

func (v *vForGVArray[T]) Size() int              { return v.g.impl.Size() }
func (v *vForGVArray[T]) CommonInfo() CommonInfo { return v.g.impl.CommonInfo() }

func (v *vForGVArray[T]) Get(i int) T {
	var value T
	v.g.impl.Get(i, unsafe.Pointer(&value))
	return value
}

func (v *vForGVArray[T]) Set(i int, value T) {
	v.mut.mimpl.Set(i, unsafe.Pointer(&value))
}

func (v *vForGVArray[T]) Materialize(mask indexmask.Mask, dst []T) {
	v.g.Materialize(mask, unsafe.Pointer(unsafe.SliceData(dst)))
}

func (v *vForGVArray[T]) MaterializeCompressed(mask indexmask.Mask, dst []T) {
	v.g.MaterializeCompressed(mask, unsafe.Pointer(unsafe.SliceData(dst)))
}

func (v *vForGVArray[T]) tryAssignGVArray(dst *GVArray) bool {
	*dst = v.g
	return true
}

func (v *vForGVArray[T]) tryAssignGVMutableArray(dst *GVMutableArray) bool {
	if !v.mut.Valid() {
		return false
	}
	*dst = v.mut
	return true
}

// FromVArray returns v as a generic virtual array. If v wraps a
// generic array, that array is returned.
func FromVArray[T any](v VArray[T]) GVArray {
	if !v.Valid() {
		return GVArray{}
	}
	if a, ok := v.impl.(genericAssigner); ok {
		var g GVArray
		if a.tryAssignGVArray(&g) {
			return g
		}
	}
	return NewG(&gForVArray[T]{v: v, typ: gtype.Of[T]()})
}

// FromVMutableArray returns v as a generic mutable virtual array.
func FromVMutableArray[T any](v VMutableArray[T]) GVMutableArray {
	if !v.Valid() {
		return GVMutableArray{}
	}
	if a, ok := v.mimpl.(genericAssigner); ok {
		var g GVMutableArray
		if a.tryAssignGVMutableArray(&g) {
			return g
		}
	}
	return NewGMutable(&gForVArray[T]{v: v.VArray, mut: v, typ: gtype.Of[T]()})
}

// Typed returns g as a typed virtual array; g must have type T. If g
// wraps a typed array, that array is returned.
func Typed[T any](g GVArray) VArray[T] {
	if !g.Valid() {
		return VArray[T]{}
	}
	debug.Assert(gtype.Is[T](g.Type()), "varray.Typed: %s is not %s", g.Type(), gtype.Of[T]())
	if a, ok := g.impl.(typedAssigner); ok {
		var v VArray[T]
		if a.tryAssignVArray(&v) {
			return v
		}
	}
	return New[T](&vForGVArray[T]{g: g})
}

// TypedMutable returns g as a typed mutable virtual array.
func TypedMutable[T any](g GVMutableArray) VMutableArray[T] {
	if !g.Valid() {
		return VMutableArray[T]{}
	}
	debug.Assert(gtype.Is[T](g.Type()), "varray.TypedMutable: %s is not %s", g.Type(), gtype.Of[T]())
	if a, ok := g.mimpl.(typedAssigner); ok {
		var v VMutableArray[T]
		if a.tryAssignVMutableArray(&v) {
			return v
		}
	}
	return NewMutable[T](&vForGVArray[T]{g: g.GVArray, mut: g})
}
