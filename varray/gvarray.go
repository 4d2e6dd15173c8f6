// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"unsafe"

	"cogentcore.org/geometry/base/debug"
	"cogentcore.org/geometry/generic"
	"cogentcore.org/geometry/gtype"
	"cogentcore.org/geometry/indexmask"
)

// GImpl is the interface implemented by virtual array storage
// whose element type is described by a [gtype.Type].
type GImpl interface {
	Type() *gtype.Type
	Size() int

	// Get copies element i into the initialized value at dst.
	Get(i int, dst unsafe.Pointer)

	CommonInfo() CommonInfo
}

// GMutableImpl is a writable [GImpl].
type GMutableImpl interface {
	GImpl

	// Set copies the value at src into element i.
	Set(i int, src unsafe.Pointer)
}

// GMaterializer is implemented by [GImpl] types with a faster
// bulk copy than the default one based on [CommonInfo].
type GMaterializer interface {
	Materialize(mask indexmask.Mask, dst unsafe.Pointer, uninitialized bool)
	MaterializeCompressed(mask indexmask.Mask, dst unsafe.Pointer, uninitialized bool)
}

// GAllSetter is implemented by [GMutableImpl] types with a faster
// bulk assignment than calling Set for every index.
type GAllSetter interface {
	SetAll(src unsafe.Pointer)
}

// GVArray is a read-only virtual array of runtime type.
type GVArray struct {
	impl GImpl
}

// NewG returns a [GVArray] using the given implementation.
func NewG(impl GImpl) GVArray {
	return GVArray{impl: impl}
}

func (g GVArray) Valid() bool { return g.impl != nil }

func (g GVArray) Impl() GImpl { return g.impl }

// Type returns the element type; nil for an invalid array.
func (g GVArray) Type() *gtype.Type {
	if g.impl == nil {
		return nil
	}
	return g.impl.Type()
}

// Size returns the number of elements; 0 for an invalid array.
func (g GVArray) Size() int {
	if g.impl == nil {
		return 0
	}
	return g.impl.Size()
}

func (g GVArray) IsEmpty() bool { return g.Size() == 0 }

// Get copies element i into the initialized value at dst.
func (g GVArray) Get(i int, dst unsafe.Pointer) {
	debug.Assert(i >= 0 && i < g.impl.Size(), "gvarray index %d out of range [0, %d)", i, g.impl.Size())
	g.impl.Get(i, dst)
}

// GetToUninitialized constructs element i at dst.
func (g GVArray) GetToUninitialized(i int, dst unsafe.Pointer) {
	g.Get(i, dst)
}

func (g GVArray) CommonInfo() CommonInfo { return g.impl.CommonInfo() }

func (g GVArray) IsSpan() bool {
	return g.impl != nil && g.impl.CommonInfo().Type == InfoSpan
}

func (g GVArray) IsSingle() bool {
	return g.impl != nil && g.impl.CommonInfo().Type == InfoSingle
}

// MayHaveOwnership reports whether the array may own its storage.
func (g GVArray) MayHaveOwnership() bool {
	return g.impl.CommonInfo().MayHaveOwnership
}

// InternalSpan returns the stored elements; the array must be a span.
func (g GVArray) InternalSpan() generic.Span {
	info := g.impl.CommonInfo()
	debug.Assert(info.Type == InfoSpan, "gvarray is not a span")
	return generic.NewSpan(g.impl.Type(), info.Data, g.impl.Size())
}

// InternalSingle copies the common value into dst; the array must be single.
func (g GVArray) InternalSingle(dst unsafe.Pointer) {
	info := g.impl.CommonInfo()
	debug.Assert(info.Type == InfoSingle, "gvarray is not single")
	g.impl.Type().CopyAssign(info.Data, dst)
}

func elemPtr(base unsafe.Pointer, i int, t *gtype.Type) unsafe.Pointer {
	return unsafe.Add(base, uintptr(i)*uintptr(t.Size()))
}

// Materialize copies the selected elements to the same indexes of
// the initialized buffer dst.
func (g GVArray) Materialize(mask indexmask.Mask, dst unsafe.Pointer) {
	g.materialize(mask, dst, false)
}

// MaterializeToUninitialized constructs the selected elements at the
// same indexes of dst.
func (g GVArray) MaterializeToUninitialized(mask indexmask.Mask, dst unsafe.Pointer) {
	g.materialize(mask, dst, true)
}

func (g GVArray) materialize(mask indexmask.Mask, dst unsafe.Pointer, uninitialized bool) {
	if mask.IsEmpty() {
		return
	}
	debug.Assert(mask.MinArraySize() <= g.Size(), "materialize mask exceeds array size %d", g.Size())
	if m, ok := g.impl.(GMaterializer); ok {
		m.Materialize(mask, dst, uninitialized)
		return
	}
	t := g.impl.Type()
	info := g.impl.CommonInfo()
	switch info.Type {
	case InfoSpan:
		if uninitialized {
			t.CopyConstructIndices(info.Data, dst, mask)
		} else {
			t.CopyAssignIndices(info.Data, dst, mask)
		}
	case InfoSingle:
		if uninitialized {
			t.FillConstructIndices(info.Data, dst, mask)
		} else {
			t.FillAssignIndices(info.Data, dst, mask)
		}
	default:
		mask.Foreach(func(i int) { g.impl.Get(i, elemPtr(dst, i, t)) })
	}
}

// MaterializeCompressed copies the selected elements to the first
// mask.Size() elements of the initialized buffer dst.
func (g GVArray) MaterializeCompressed(mask indexmask.Mask, dst unsafe.Pointer) {
	g.materializeCompressed(mask, dst, false)
}

// MaterializeCompressedToUninitialized is [GVArray.MaterializeCompressed]
// for an uninitialized buffer.
func (g GVArray) MaterializeCompressedToUninitialized(mask indexmask.Mask, dst unsafe.Pointer) {
	g.materializeCompressed(mask, dst, true)
}

func (g GVArray) materializeCompressed(mask indexmask.Mask, dst unsafe.Pointer, uninitialized bool) {
	if mask.IsEmpty() {
		return
	}
	debug.Assert(mask.MinArraySize() <= g.Size(), "materialize mask exceeds array size %d", g.Size())
	if m, ok := g.impl.(GMaterializer); ok {
		m.MaterializeCompressed(mask, dst, uninitialized)
		return
	}
	t := g.impl.Type()
	info := g.impl.CommonInfo()
	switch info.Type {
	case InfoSpan:
		if uninitialized {
			t.CopyConstructCompressed(info.Data, dst, mask)
		} else {
			t.CopyAssignCompressed(info.Data, dst, mask)
		}
	case InfoSingle:
		t.FillAssignN(info.Data, dst, mask.Size())
	default:
		mask.ForeachPos(func(pos, i int) { g.impl.Get(i, elemPtr(dst, pos, t)) })
	}
}

// ToArray returns all elements in a new [generic.Array].
func (g GVArray) ToArray() *generic.Array {
	a := generic.NewArray(g.Type(), g.Size())
	g.MaterializeToUninitialized(indexmask.FromSize(g.Size()), a.Data())
	return a
}

// Slice returns the elements in r, sharing storage.
func (g GVArray) Slice(r indexmask.Range) GVArray {
	debug.Assert(r.End() <= g.Size(), "gvarray slice %v out of range %d", r, g.Size())
	info := g.impl.CommonInfo()
	switch info.Type {
	case InfoSpan:
		return ForGSpan(g.InternalSpan().Slice(r.Start, r.Size))
	case InfoSingle:
		return ForGSingleRef(g.impl.Type(), info.Data, r.Size)
	}
	return NewG(&gSliceImpl{inner: g.impl, start: r.Start, size: r.Size})
}

// GVMutableArray is a writable virtual array of runtime type.
type GVMutableArray struct {
	GVArray
	mimpl GMutableImpl
}

// NewGMutable returns a [GVMutableArray] using the given implementation.
func NewGMutable(impl GMutableImpl) GVMutableArray {
	return GVMutableArray{GVArray: GVArray{impl: impl}, mimpl: impl}
}

func (g GVMutableArray) MutableImpl() GMutableImpl { return g.mimpl }

// AsGVArray returns the read-only view.
func (g GVMutableArray) AsGVArray() GVArray { return g.GVArray }

// SetByCopy copies the value at src into element i.
func (g GVMutableArray) SetByCopy(i int, src unsafe.Pointer) {
	debug.Assert(i >= 0 && i < g.mimpl.Size(), "gvarray index %d out of range [0, %d)", i, g.mimpl.Size())
	g.mimpl.Set(i, src)
}

// SetByRelocate moves the value at src into element i and destructs src.
func (g GVMutableArray) SetByRelocate(i int, src unsafe.Pointer) {
	g.SetByCopy(i, src)
	g.mimpl.Type().Destruct(src)
}

// SetAll copies every element from src, which must have the array type and size.
func (g GVMutableArray) SetAll(src generic.Span) {
	debug.Assert(src.Type() == g.mimpl.Type() && src.Size() == g.mimpl.Size(), "SetAll span mismatch")
	if src.IsEmpty() {
		return
	}
	if s, ok := g.mimpl.(GAllSetter); ok {
		s.SetAll(src.Data())
		return
	}
	if info := g.mimpl.CommonInfo(); info.Type == InfoSpan {
		g.mimpl.Type().CopyAssignIndices(src.Data(), info.Data, indexmask.FromSize(src.Size()))
		return
	}
	for i := range src.Size() {
		g.mimpl.Set(i, src.At(i))
	}
}

// InternalMutableSpan returns the stored elements for writing; the
// array must be a span.
func (g GVMutableArray) InternalMutableSpan() generic.MutableSpan {
	s := g.InternalSpan()
	return generic.NewMutableSpan(s.Type(), s.Data(), s.Size())
}

// Fill sets every element to the value at value.
func (g GVMutableArray) Fill(value unsafe.Pointer) {
	if info := g.mimpl.CommonInfo(); info.Type == InfoSpan {
		g.mimpl.Type().FillAssignN(value, info.Data, g.mimpl.Size())
		return
	}
	for i := range g.mimpl.Size() {
		g.mimpl.Set(i, value)
	}
}
