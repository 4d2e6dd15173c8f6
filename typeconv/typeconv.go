// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package typeconv converts attribute values between types, so that
// an attribute stored as one type can be read or written as another.
package typeconv

import (
	"sync"
	"unsafe"

	"cogentcore.org/geometry/base/debug"
	"cogentcore.org/geometry/generic"
	"cogentcore.org/geometry/gtype"
	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/varray"
)

type key struct {
	from, to *gtype.Type
}

type conversion struct {
	from, to *gtype.Type

	// fn is the typed func(From) To.
	fn any

	single  func(src, dst unsafe.Pointer)
	array   func(v varray.GVArray) varray.GVArray
	mutable func(v varray.GVMutableArray, back any) varray.GVMutableArray
}

// Conversions is a set of value conversions between types.
// It is safe for concurrent reads once populated.
type Conversions struct {
	m map[key]*conversion
}

// New returns an empty set of conversions.
func New() *Conversions {
	return &Conversions{m: map[key]*conversion{}}
}

// Add registers the conversion fn from From to To.
func Add[From, To any](c *Conversions, fn func(From) To) {
	from, to := gtype.Of[From](), gtype.Of[To]()
	c.m[key{from, to}] = &conversion{
		from: from,
		to:   to,
		fn:   fn,
		single: func(src, dst unsafe.Pointer) {
			*(*To)(dst) = fn(*(*From)(src))
		},
		array: func(v varray.GVArray) varray.GVArray {
			tv := varray.Typed[From](v)
			if tv.IsSingle() {
				return varray.FromVArray(varray.ForSingle(fn(tv.InternalSingle()), tv.Size()))
			}
			return varray.FromVArray(varray.ForFunc(tv.Size(), func(i int) To { return fn(tv.Get(i)) }))
		},
		mutable: func(v varray.GVMutableArray, back any) varray.GVMutableArray {
			return varray.FromVMutableArray(varray.NewMutable[To](&convertedMutable[From, To]{
				src:  varray.TypedMutable[From](v),
				to:   fn,
				back: back.(func(To) From),
			}))
		},
	}
}

// convertedMutable reads and writes a mutable array through a pair
// of conversions.
type convertedMutable[From, To any] struct {
	src  varray.VMutableArray[From]
	to   func(From) To
	back func(To) From
}

func (c *convertedMutable[From, To]) Size() int                     { return c.src.Size() }
func (c *convertedMutable[From, To]) Get(i int) To                  { return c.to(c.src.Get(i)) }
func (c *convertedMutable[From, To]) Set(i int, v To)               { c.src.Set(i, c.back(v)) }
func (c *convertedMutable[From, To]) CommonInfo() varray.CommonInfo { return varray.CommonInfo{} }

// IsConvertible returns whether values of from can be converted to to.
// Every type is convertible to itself.
func (c *Conversions) IsConvertible(from, to *gtype.Type) bool {
	if from == to {
		return true
	}
	_, ok := c.m[key{from, to}]
	return ok
}

// Convert converts the value at src of type from into the value at
// dst of type to. The conversion must exist.
func (c *Conversions) Convert(from, to *gtype.Type, src, dst unsafe.Pointer) {
	if from == to {
		from.CopyAssign(src, dst)
		return
	}
	conv, ok := c.m[key{from, to}]
	debug.Assert(ok, "no conversion from %s to %s", from, to)
	conv.single(src, dst)
}

// ConvertSpan converts all values of src into dst, which must have
// the same size.
func (c *Conversions) ConvertSpan(src generic.Span, dst generic.MutableSpan) {
	debug.Assert(src.Size() == dst.Size(), "ConvertSpan size %d != %d", src.Size(), dst.Size())
	if src.Type() == dst.Type() {
		src.Type().CopyAssignIndices(src.Data(), dst.Data(), indexmask.FromSize(src.Size()))
		return
	}
	conv, ok := c.m[key{src.Type(), dst.Type()}]
	debug.Assert(ok, "no conversion from %s to %s", src.Type(), dst.Type())
	for i := range src.Size() {
		conv.single(src.At(i), dst.At(i))
	}
}

// TryConvert returns v with its values converted to type to, computed
// lazily on access. It returns v itself for the same type and an
// invalid array if no conversion exists.
func (c *Conversions) TryConvert(v varray.GVArray, to *gtype.Type) varray.GVArray {
	if !v.Valid() {
		return varray.GVArray{}
	}
	if v.Type() == to {
		return v
	}
	conv, ok := c.m[key{v.Type(), to}]
	if !ok {
		return varray.GVArray{}
	}
	return conv.array(v)
}

// TryConvertMutable returns v read and written as type to. It needs
// conversions in both directions and returns an invalid array otherwise.
func (c *Conversions) TryConvertMutable(v varray.GVMutableArray, to *gtype.Type) varray.GVMutableArray {
	if !v.Valid() {
		return varray.GVMutableArray{}
	}
	if v.Type() == to {
		return v
	}
	conv, ok := c.m[key{v.Type(), to}]
	if !ok {
		return varray.GVMutableArray{}
	}
	back, ok := c.m[key{to, v.Type()}]
	if !ok {
		return varray.GVMutableArray{}
	}
	return conv.mutable(v, back.fn)
}

var defaultConversions = sync.OnceValue(func() *Conversions {
	c := New()
	registerDefaults(c)
	return c
})

// Default returns the conversions between attribute value types.
func Default() *Conversions {
	return defaultConversions()
}
