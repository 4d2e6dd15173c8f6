// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"unsafe"

	"cogentcore.org/geometry/generic"
	"cogentcore.org/geometry/gtype"
)

type gSpanImpl struct {
	span generic.Span
	own  *generic.Array
}

func (s *gSpanImpl) Type() *gtype.Type { return s.span.Type() }
func (s *gSpanImpl) Size() int         { return s.span.Size() }

func (s *gSpanImpl) Get(i int, dst unsafe.Pointer) {
	s.span.Type().CopyAssign(s.span.At(i), dst)
}

func (s *gSpanImpl) Set(i int, src unsafe.Pointer) {
	s.span.Type().CopyAssign(src, s.span.At(i))
}

func (s *gSpanImpl) CommonInfo() CommonInfo {
	return CommonInfo{Type: InfoSpan, MayHaveOwnership: s.own != nil, Data: s.span.Data()}
}

// ForGSpan returns a virtual array viewing s, which must outlive it.
func ForGSpan(s generic.Span) GVArray {
	return NewG(&gSpanImpl{span: s})
}

// ForGMutableSpan returns a mutable virtual array viewing s.
func ForGMutableSpan(s generic.MutableSpan) GVMutableArray {
	return NewGMutable(&gSpanImpl{span: s.Span})
}

// ForGArray returns a virtual array that owns a.
func ForGArray(a *generic.Array) GVArray {
	return NewG(&gSpanImpl{span: a.AsSpan(), own: a})
}

// ForGMutableArray returns a mutable virtual array that owns a.
func ForGMutableArray(a *generic.Array) GVMutableArray {
	return NewGMutable(&gSpanImpl{span: a.AsSpan(), own: a})
}

// ForEmpty returns a valid virtual array of type t with no elements.
func ForEmpty(t *gtype.Type) GVArray {
	return ForGSpan(generic.EmptySpan(t))
}

type gSingleImpl struct {
	typ   *gtype.Type
	keep  any
	value unsafe.Pointer
	size  int
}

func (s *gSingleImpl) Type() *gtype.Type { return s.typ }
func (s *gSingleImpl) Size() int         { return s.size }

func (s *gSingleImpl) Get(_ int, dst unsafe.Pointer) {
	s.typ.CopyAssign(s.value, dst)
}

func (s *gSingleImpl) CommonInfo() CommonInfo {
	return CommonInfo{Type: InfoSingle, MayHaveOwnership: s.keep != nil, Data: s.value}
}

// ForGSingle returns a virtual array of size copies of the value at value.
// The value is copied.
func ForGSingle(t *gtype.Type, value unsafe.Pointer, size int) GVArray {
	keep, data := t.NewBuffer(1)
	t.CopyConstruct(value, data)
	return NewG(&gSingleImpl{typ: t, keep: keep, value: data, size: size})
}

// ForGSingleRef is [ForGSingle] without copying; value must outlive
// the array.
func ForGSingleRef(t *gtype.Type, value unsafe.Pointer, size int) GVArray {
	return NewG(&gSingleImpl{typ: t, value: value, size: size})
}

// ForGSingleDefault returns a virtual array of size default values of t.
func ForGSingleDefault(t *gtype.Type, size int) GVArray {
	return ForGSingleRef(t, t.DefaultValue(), size)
}

type gSliceImpl struct {
	inner GImpl
	start int
	size  int
}

func (s *gSliceImpl) Type() *gtype.Type { return s.inner.Type() }
func (s *gSliceImpl) Size() int         { return s.size }

func (s *gSliceImpl) Get(i int, dst unsafe.Pointer) {
	s.inner.Get(s.start+i, dst)
}

func (s *gSliceImpl) CommonInfo() CommonInfo {
	return CommonInfo{MayHaveOwnership: s.inner.CommonInfo().MayHaveOwnership}
}
