// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package varray provides virtual arrays: array-like values whose
// storage is abstracted behind an implementation that may be a
// contiguous buffer, a single value repeated, a function, or a view
// derived from another array.
//
// [VArray] and [VMutableArray] are the typed forms, [GVArray] and
// [GVMutableArray] the forms whose element type is only known at
// runtime. Both convert into each other without adding a layer of
// indirection when the value already wraps the other form.
//
// The zero value of every virtual array type is invalid, and is used
// to signal an absent array.
package varray

import (
	"unsafe"

	"cogentcore.org/geometry/base/debug"
	"cogentcore.org/geometry/indexmask"
)

// InfoType is the storage shape reported by [CommonInfo].
type InfoType uint8

const (
	// InfoAny means the storage has no special shape.
	InfoAny InfoType = iota

	// InfoSpan means the values are stored contiguously at Data.
	InfoSpan

	// InfoSingle means every element equals the value at Data.
	InfoSingle
)

func (t InfoType) String() string {
	switch t {
	case InfoSpan:
		return "Span"
	case InfoSingle:
		return "Single"
	}
	return "Any"
}

// CommonInfo describes the storage shape of a virtual array so that
// callers can special case spans and single values.
type CommonInfo struct {
	Type InfoType

	// MayHaveOwnership is true if the array may own its storage, in
	// which case Data is only valid while the array is referenced.
	MayHaveOwnership bool

	// Data points to the first element for InfoSpan and to the value
	// for InfoSingle.
	Data unsafe.Pointer
}

// Impl is the interface implemented by typed virtual array storage.
type Impl[T any] interface {
	Size() int
	Get(i int) T
	CommonInfo() CommonInfo
}

// MutableImpl is a writable [Impl].
type MutableImpl[T any] interface {
	Impl[T]
	Set(i int, v T)
}

// Materializer is implemented by [Impl] types with a faster bulk
// copy than the default one based on [CommonInfo].
type Materializer[T any] interface {
	// Materialize writes the selected elements to the same indexes of dst.
	Materialize(mask indexmask.Mask, dst []T)

	// MaterializeCompressed writes the selected elements to dst[0:mask.Size()].
	MaterializeCompressed(mask indexmask.Mask, dst []T)
}

// AllSetter is implemented by [MutableImpl] types with a faster bulk
// assignment than calling Set for every index.
type AllSetter[T any] interface {
	SetAll(src []T)
}

// VArray is a read-only virtual array of T.
type VArray[T any] struct {
	impl Impl[T]
}

// New returns a [VArray] using the given implementation.
func New[T any](impl Impl[T]) VArray[T] {
	return VArray[T]{impl: impl}
}

// Valid returns whether the array has an implementation.
func (v VArray[T]) Valid() bool { return v.impl != nil }

// Impl returns the implementation.
func (v VArray[T]) Impl() Impl[T] { return v.impl }

// Size returns the number of elements; 0 for an invalid array.
func (v VArray[T]) Size() int {
	if v.impl == nil {
		return 0
	}
	return v.impl.Size()
}

func (v VArray[T]) IsEmpty() bool { return v.Size() == 0 }

// Get returns element i.
func (v VArray[T]) Get(i int) T {
	debug.Assert(i >= 0 && i < v.impl.Size(), "varray index %d out of range [0, %d)", i, v.impl.Size())
	return v.impl.Get(i)
}

// CommonInfo returns the storage shape.
func (v VArray[T]) CommonInfo() CommonInfo {
	return v.impl.CommonInfo()
}

// IsSpan returns whether the elements are stored contiguously.
func (v VArray[T]) IsSpan() bool {
	return v.impl != nil && v.impl.CommonInfo().Type == InfoSpan
}

// IsSingle returns whether all elements are equal.
func (v VArray[T]) IsSingle() bool {
	return v.impl != nil && v.impl.CommonInfo().Type == InfoSingle
}

// InternalSpan returns the stored elements; the array must be a span.
func (v VArray[T]) InternalSpan() []T {
	info := v.impl.CommonInfo()
	debug.Assert(info.Type == InfoSpan, "varray is not a span")
	return unsafe.Slice((*T)(info.Data), v.impl.Size())
}

// InternalSingle returns the common value; the array must be single.
func (v VArray[T]) InternalSingle() T {
	info := v.impl.CommonInfo()
	debug.Assert(info.Type == InfoSingle, "varray is not single")
	return *(*T)(info.Data)
}

// Materialize writes the selected elements to the same indexes of dst.
func (v VArray[T]) Materialize(mask indexmask.Mask, dst []T) {
	if mask.IsEmpty() {
		return
	}
	debug.Assert(mask.MinArraySize() <= v.Size() && mask.MinArraySize() <= len(dst), "materialize mask exceeds array")
	if m, ok := v.impl.(Materializer[T]); ok {
		m.Materialize(mask, dst)
		return
	}
	info := v.impl.CommonInfo()
	switch info.Type {
	case InfoSpan:
		src := unsafe.Slice((*T)(info.Data), v.impl.Size())
		if r, ok := mask.AsRange(); ok {
			copy(dst[r.Start:r.End()], src[r.Start:r.End()])
			return
		}
		mask.Foreach(func(i int) { dst[i] = src[i] })
	case InfoSingle:
		value := *(*T)(info.Data)
		mask.Foreach(func(i int) { dst[i] = value })
	default:
		mask.Foreach(func(i int) { dst[i] = v.impl.Get(i) })
	}
}

// MaterializeCompressed writes the selected elements to dst[0:mask.Size()].
func (v VArray[T]) MaterializeCompressed(mask indexmask.Mask, dst []T) {
	if mask.IsEmpty() {
		return
	}
	debug.Assert(mask.MinArraySize() <= v.Size() && mask.Size() <= len(dst), "materialize mask exceeds array")
	if m, ok := v.impl.(Materializer[T]); ok {
		m.MaterializeCompressed(mask, dst)
		return
	}
	info := v.impl.CommonInfo()
	switch info.Type {
	case InfoSpan:
		src := unsafe.Slice((*T)(info.Data), v.impl.Size())
		if r, ok := mask.AsRange(); ok {
			copy(dst, src[r.Start:r.End()])
			return
		}
		mask.ForeachPos(func(pos, i int) { dst[pos] = src[i] })
	case InfoSingle:
		value := *(*T)(info.Data)
		for pos := range mask.Size() {
			dst[pos] = value
		}
	default:
		mask.ForeachPos(func(pos, i int) { dst[pos] = v.impl.Get(i) })
	}
}

// ToSlice returns all elements in a new slice.
func (v VArray[T]) ToSlice() []T {
	out := make([]T, v.Size())
	if len(out) > 0 {
		v.Materialize(indexmask.FromSize(len(out)), out)
	}
	return out
}

// Slice returns the elements in r as a new virtual array, sharing storage.
func (v VArray[T]) Slice(r indexmask.Range) VArray[T] {
	debug.Assert(r.End() <= v.Size(), "varray slice %v out of range %d", r, v.Size())
	info := v.impl.CommonInfo()
	switch info.Type {
	case InfoSpan:
		return ForSpan(v.InternalSpan()[r.Start:r.End()])
	case InfoSingle:
		return ForSingle(*(*T)(info.Data), r.Size)
	}
	return ForFunc(r.Size, func(i int) T { return v.impl.Get(r.Start + i) })
}

// VMutableArray is a writable virtual array of T.
type VMutableArray[T any] struct {
	VArray[T]
	mimpl MutableImpl[T]
}

// NewMutable returns a [VMutableArray] using the given implementation.
func NewMutable[T any](impl MutableImpl[T]) VMutableArray[T] {
	return VMutableArray[T]{VArray: VArray[T]{impl: impl}, mimpl: impl}
}

// MutableImpl returns the implementation.
func (v VMutableArray[T]) MutableImpl() MutableImpl[T] { return v.mimpl }

// AsVArray returns the read-only view.
func (v VMutableArray[T]) AsVArray() VArray[T] { return v.VArray }

// Set sets element i.
func (v VMutableArray[T]) Set(i int, value T) {
	debug.Assert(i >= 0 && i < v.mimpl.Size(), "varray index %d out of range [0, %d)", i, v.mimpl.Size())
	v.mimpl.Set(i, value)
}

// SetAll sets every element from src, which must have the array size.
func (v VMutableArray[T]) SetAll(src []T) {
	debug.Assert(len(src) == v.mimpl.Size(), "SetAll size %d != %d", len(src), v.mimpl.Size())
	if s, ok := v.mimpl.(AllSetter[T]); ok {
		s.SetAll(src)
		return
	}
	if info := v.mimpl.CommonInfo(); info.Type == InfoSpan {
		copy(unsafe.Slice((*T)(info.Data), len(src)), src)
		return
	}
	for i, value := range src {
		v.mimpl.Set(i, value)
	}
}

// InternalMutableSpan returns the stored elements for writing; the
// array must be a span.
func (v VMutableArray[T]) InternalMutableSpan() []T {
	return v.InternalSpan()
}
