// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"unsafe"
)

type spanImpl[T any] struct {
	data []T
	own  bool
}

func (s *spanImpl[T]) Size() int      { return len(s.data) }
func (s *spanImpl[T]) Get(i int) T    { return s.data[i] }
func (s *spanImpl[T]) Set(i int, v T) { s.data[i] = v }
func (s *spanImpl[T]) SetAll(src []T) { copy(s.data, src) }

func (s *spanImpl[T]) CommonInfo() CommonInfo {
	return CommonInfo{Type: InfoSpan, MayHaveOwnership: s.own, Data: unsafe.Pointer(unsafe.SliceData(s.data))}
}

// ForSpan returns a virtual array viewing data. The caller keeps
// ownership of data, which must outlive the array.
func ForSpan[T any](data []T) VArray[T] {
	return New[T](&spanImpl[T]{data: data})
}

// ForMutableSpan returns a mutable virtual array viewing data.
func ForMutableSpan[T any](data []T) VMutableArray[T] {
	return NewMutable[T](&spanImpl[T]{data: data})
}

// ForContainer returns a virtual array that owns data.
func ForContainer[T any](data []T) VArray[T] {
	return New[T](&spanImpl[T]{data: data, own: true})
}

// ForMutableContainer returns a mutable virtual array that owns data.
func ForMutableContainer[T any](data []T) VMutableArray[T] {
	return NewMutable[T](&spanImpl[T]{data: data, own: true})
}

type singleImpl[T any] struct {
	value T
	size  int
}

func (s *singleImpl[T]) Size() int { return s.size }
func (s *singleImpl[T]) Get(int) T { return s.value }
func (s *singleImpl[T]) CommonInfo() CommonInfo {
	return CommonInfo{Type: InfoSingle, MayHaveOwnership: true, Data: unsafe.Pointer(&s.value)}
}

// ForSingle returns a virtual array of size elements all equal to value.
func ForSingle[T any](value T, size int) VArray[T] {
	return New[T](&singleImpl[T]{value: value, size: size})
}

// ForSingleRef is [ForSingle] with the value read from a pointer.
func ForSingleRef[T any](value *T, size int) VArray[T] {
	return ForSingle(*value, size)
}

type funcImpl[T any] struct {
	size int
	fn   func(i int) T
}

func (f *funcImpl[T]) Size() int              { return f.size }
func (f *funcImpl[T]) Get(i int) T            { return f.fn(i) }
func (f *funcImpl[T]) CommonInfo() CommonInfo { return CommonInfo{MayHaveOwnership: true} }

// ForFunc returns a virtual array computing element i as fn(i).
// fn must be safe to call concurrently.
func ForFunc[T any](size int, fn func(i int) T) VArray[T] {
	return New[T](&funcImpl[T]{size: size, fn: fn})
}

type derivedSpanImpl[S, T any] struct {
	data []S
	get  func(s *S) T
	set  func(s *S, v T)
}

func (d *derivedSpanImpl[S, T]) Size() int              { return len(d.data) }
func (d *derivedSpanImpl[S, T]) Get(i int) T            { return d.get(&d.data[i]) }
func (d *derivedSpanImpl[S, T]) Set(i int, v T)         { d.set(&d.data[i], v) }
func (d *derivedSpanImpl[S, T]) CommonInfo() CommonInfo { return CommonInfo{} }

func (d *derivedSpanImpl[S, T]) SetAll(src []T) {
	for i := range d.data {
		d.set(&d.data[i], src[i])
	}
}

// ForDerivedSpan returns a virtual array of values extracted from each
// element of data by get, for example one field of a struct array.
func ForDerivedSpan[S, T any](data []S, get func(s *S) T) VArray[T] {
	return New[T](&derivedSpanImpl[S, T]{data: data, get: get})
}

// ForMutableDerivedSpan is [ForDerivedSpan] where set stores a value
// back into an element of data.
func ForMutableDerivedSpan[S, T any](data []S, get func(s *S) T, set func(s *S, v T)) VMutableArray[T] {
	return NewMutable[T](&derivedSpanImpl[S, T]{data: data, get: get, set: set})
}
