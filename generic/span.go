// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package generic provides spans and arrays whose element type is
// only known at runtime through a [gtype.Type].
package generic

import (
	"unsafe"

	"cogentcore.org/geometry/base/debug"
	"cogentcore.org/geometry/gtype"
)

// Span is a read-only view of contiguous values of a runtime type.
type Span struct {
	typ  *gtype.Type
	data unsafe.Pointer
	size int
}

// NewSpan returns a span of size values of type t starting at data.
func NewSpan(t *gtype.Type, data unsafe.Pointer, size int) Span {
	debug.Assert(size >= 0, "negative span size %d", size)
	debug.Assert(size == 0 || t.PointerCanPointToInstance(data), "invalid span data pointer for %s", t)
	return Span{typ: t, data: data, size: size}
}

// EmptySpan returns an empty span of type t.
func EmptySpan(t *gtype.Type) Span {
	return Span{typ: t}
}

// SpanOf returns a span viewing the elements of s.
func SpanOf[T any](s []T) Span {
	return Span{typ: gtype.Of[T](), data: unsafe.Pointer(unsafe.SliceData(s)), size: len(s)}
}

func (s Span) Type() *gtype.Type    { return s.typ }
func (s Span) Data() unsafe.Pointer { return s.data }
func (s Span) Size() int            { return s.size }
func (s Span) IsEmpty() bool        { return s.size == 0 }

// At returns a pointer to element i.
func (s Span) At(i int) unsafe.Pointer {
	debug.Assert(i >= 0 && i < s.size, "span index %d out of range [0, %d)", i, s.size)
	return unsafe.Add(s.data, uintptr(i)*uintptr(s.typ.Size()))
}

// Slice returns the sub-span of size elements starting at start.
func (s Span) Slice(start, size int) Span {
	debug.Assert(start >= 0 && size >= 0 && start+size <= s.size, "span slice [%d:+%d] out of range %d", start, size, s.size)
	if size == 0 {
		return Span{typ: s.typ}
	}
	return Span{typ: s.typ, data: unsafe.Add(s.data, uintptr(start)*uintptr(s.typ.Size())), size: size}
}

// Typed returns the span as a slice of T, which must match the span type.
func Typed[T any](s Span) []T {
	debug.Assert(gtype.Is[T](s.typ), "generic.Typed: span of %s is not %T", s.typ, *new(T))
	return unsafe.Slice((*T)(s.data), s.size)
}

// MutableSpan is a writable view of contiguous values of a runtime type.
type MutableSpan struct {
	Span
}

// NewMutableSpan returns a mutable span of size values of type t at data.
func NewMutableSpan(t *gtype.Type, data unsafe.Pointer, size int) MutableSpan {
	return MutableSpan{NewSpan(t, data, size)}
}

// MutableSpanOf returns a mutable span viewing the elements of s.
func MutableSpanOf[T any](s []T) MutableSpan {
	return MutableSpan{SpanOf(s)}
}

// Slice returns the mutable sub-span of size elements starting at start.
func (s MutableSpan) Slice(start, size int) MutableSpan {
	return MutableSpan{s.Span.Slice(start, size)}
}

// TypedMutable returns the span as a slice of T.
func TypedMutable[T any](s MutableSpan) []T {
	return Typed[T](s.Span)
}
