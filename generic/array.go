// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generic

import (
	"unsafe"

	"cogentcore.org/geometry/gtype"
	"cogentcore.org/geometry/indexmask"
)

// Array is an owned buffer of values of a runtime type.
// The zero value is an empty array with no type.
type Array struct {
	typ  *gtype.Type
	keep any // Go allocation backing data
	data unsafe.Pointer
	size int
}

// NewArray returns an array of size values of type t, each set to
// the default value of t.
func NewArray(t *gtype.Type, size int) *Array {
	a := &Array{typ: t}
	a.Reinitialize(size)
	return a
}

// ArrayFromSpan returns a new array holding a copy of the span values.
func ArrayFromSpan(s Span) *Array {
	a := NewArray(s.Type(), s.Size())
	s.Type().CopyConstructIndices(s.Data(), a.data, indexmask.FromSize(s.Size()))
	return a
}

func (a *Array) Type() *gtype.Type    { return a.typ }
func (a *Array) Size() int            { return a.size }
func (a *Array) IsEmpty() bool        { return a.size == 0 }
func (a *Array) Data() unsafe.Pointer { return a.data }
func (a *Array) Keep() any            { return a.keep }

// At returns a pointer to element i.
func (a *Array) At(i int) unsafe.Pointer {
	return a.AsSpan().At(i)
}

// AsSpan returns a read-only span of the array.
func (a *Array) AsSpan() Span {
	return Span{typ: a.typ, data: a.data, size: a.size}
}

// AsMutableSpan returns a mutable span of the array.
func (a *Array) AsMutableSpan() MutableSpan {
	return MutableSpan{a.AsSpan()}
}

// Reinitialize replaces the contents with size default values of the
// array type. A shrinking array keeps its buffer; a growing one
// constructs a new buffer before releasing the old one.
func (a *Array) Reinitialize(size int) {
	old := indexmask.FromSize(a.size)
	if a.data != nil && size <= a.size {
		a.typ.DestructIndices(a.data, old)
		a.typ.DefaultConstructIndices(a.data, indexmask.FromSize(size))
		a.size = size
		return
	}
	keep, data := a.typ.NewBuffer(size)
	a.typ.DefaultConstructIndices(data, indexmask.FromSize(size))
	if a.size > 0 {
		a.typ.DestructIndices(a.data, old)
	}
	a.keep, a.data, a.size = keep, data, size
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	return ArrayFromSpan(a.AsSpan())
}

// Move returns a new array taking over the buffer of a, which
// becomes empty.
func (a *Array) Move() *Array {
	out := &Array{typ: a.typ, keep: a.keep, data: a.data, size: a.size}
	a.keep, a.data, a.size = nil, nil, 0
	return out
}

// Free destructs the values and releases the buffer.
func (a *Array) Free() {
	if a.size > 0 {
		a.typ.DestructIndices(a.data, indexmask.FromSize(a.size))
	}
	a.keep, a.data, a.size = nil, nil, 0
}

// ArrayOf returns an array that takes ownership of s.
func ArrayOf[T any](s []T) *Array {
	a := &Array{typ: gtype.Of[T](), keep: s, size: len(s)}
	if len(s) > 0 {
		a.data = unsafe.Pointer(&s[0])
	}
	return a
}
