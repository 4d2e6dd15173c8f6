// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package varray

import (
	"cogentcore.org/geometry/indexmask"
)

// MaxDevirtualizedParams is the largest number of arrays that
// [DevirtualizeMany] resolves to spans or single values at once.
// Beyond it every array falls back to virtual calls.
const MaxDevirtualizedParams = 7

// Visit resolves the storage shape of v once and calls exactly one of
// the functions: span with the stored elements, single with the value
// shared by all elements, or virtual with v itself.
func Visit[T any](v VArray[T], span func(s []T), single func(value T), virtual func(v VArray[T])) {
	if v.Valid() {
		switch v.impl.CommonInfo().Type {
		case InfoSpan:
			span(v.InternalSpan())
			return
		case InfoSingle:
			single(v.InternalSingle())
			return
		}
	}
	virtual(v)
}

// Devirtualized is a virtual array resolved to its storage shape.
// Get reads through an accessor picked once at resolution.
type Devirtualized[T any] struct {
	// Shape selects which of Span, Single or VArray holds the values.
	Shape InfoType

	Span   []T
	Single T
	VArray VArray[T]

	get  func(i int) T
	size int
}

// Devirtualize resolves v to its storage shape.
func Devirtualize[T any](v VArray[T]) Devirtualized[T] {
	d := Virtual(v)
	d.resolve()
	return d
}

// Virtual returns v without resolving its shape.
func Virtual[T any](v VArray[T]) Devirtualized[T] {
	d := Devirtualized[T]{VArray: v, size: v.Size()}
	if v.Valid() {
		d.get = v.impl.Get
	}
	return d
}

func (d *Devirtualized[T]) resolve() {
	Visit(d.VArray, func(s []T) {
		d.Shape, d.Span = InfoSpan, s
		d.get = func(i int) T { return s[i] }
	}, func(value T) {
		d.Shape, d.Single = InfoSingle, value
		d.get = func(int) T { return value }
	}, func(VArray[T]) {})
}

func (d *Devirtualized[T]) Size() int { return d.size }

// Get returns element i.
func (d *Devirtualized[T]) Get(i int) T {
	return d.get(i)
}

// Resolver is implemented by *[Devirtualized] of any element type.
type Resolver interface {
	resolve()
}

// DevirtualizeMany resolves the storage shape of up to
// [MaxDevirtualizedParams] arrays made with [Virtual], which may have
// different element types. With more arrays none is resolved, all of
// them keep using virtual calls and false is returned.
func DevirtualizeMany(ds ...Resolver) bool {
	if len(ds) > MaxDevirtualizedParams {
		return false
	}
	for _, d := range ds {
		d.resolve()
	}
	return true
}

// Foreach calls fn with every selected index and element, resolving
// the storage shape once.
func Foreach[T any](v VArray[T], mask indexmask.Mask, fn func(i int, value T)) {
	Visit(v, func(s []T) {
		mask.Foreach(func(i int) { fn(i, s[i]) })
	}, func(value T) {
		mask.Foreach(func(i int) { fn(i, value) })
	}, func(v VArray[T]) {
		mask.Foreach(func(i int) { fn(i, v.impl.Get(i)) })
	})
}
