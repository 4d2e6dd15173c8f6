// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gtype provides runtime type descriptors that allow
// containers and algorithms to store and manipulate values of
// arbitrary types through untyped pointers. There is exactly one
// [Type] per Go type, so descriptors are compared by pointer.
package gtype

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"cogentcore.org/geometry/base/debug"
	"cogentcore.org/geometry/indexmask"
)

// Type describes a Go value type and provides the operations needed
// to construct, copy, relocate, destruct, compare, hash and print
// values of that type in untyped buffers. Types are created once per
// Go type and never destroyed.
//
// Every operation taking a pointer requires it to satisfy [Type.Alignment].
// Operations taking an [indexmask.Mask] act on the selected indexes
// of arrays and produce the same result as calling the single-value
// variant once per selected index.
//
// Go memory is always initialized, so the construct variants behave
// like their assign counterparts; both are kept so that callers state
// whether the destination held a live value.
type Type struct {
	name       string
	rtype      reflect.Type
	size       uintptr
	alignment  uintptr
	trivial    bool
	comparable bool
	hashable   bool
	printable  bool

	// defaultValue points to a value owned by the type.
	defaultValue unsafe.Pointer

	// zeroDefault is set when defaultValue is the zero value.
	zeroDefault bool

	fn funcs
}

// funcs is the dispatch table filled by the generic constructor.
type funcs struct {
	fill         func(value, dst unsafe.Pointer, mask indexmask.Mask)
	copy         func(src, dst unsafe.Pointer, mask indexmask.Mask)
	copyCompress func(src, dst unsafe.Pointer, mask indexmask.Mask)
	destruct     func(ptr unsafe.Pointer, mask indexmask.Mask)
	print        func(ptr unsafe.Pointer) string
	isEqual      func(a, b unsafe.Pointer) bool
	hash         func(ptr unsafe.Pointer) uint64
	newBuffer    func(n int) (any, unsafe.Pointer)
}

var registry sync.Map // reflect.Type -> *Type

// Of returns the [Type] of T, registering it with default
// behavior on first use. Later calls do not allocate.
func Of[T any]() *Type {
	if t, ok := registry.Load(reflect.TypeFor[T]()); ok {
		return t.(*Type)
	}
	return Register[T]()
}

// Is returns whether t describes T.
func Is[T any](t *Type) bool {
	return t == Of[T]()
}

// Register registers T with the given options and returns its [Type].
// If T is already registered, the existing [Type] is returned and the
// options are ignored, so registration must happen before first use
// (typically in an init function).
func Register[T any](opts ...Option[T]) *Type {
	rt := reflect.TypeFor[T]()
	if t, ok := registry.Load(rt); ok {
		return t.(*Type)
	}
	cfg := &config[T]{}
	for _, opt := range opts {
		opt(cfg)
	}
	t := newType(rt, cfg)
	actual, _ := registry.LoadOrStore(rt, t)
	return actual.(*Type)
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

func (t *Type) String() string { return t.name }

// Size returns the size of one value in bytes.
func (t *Type) Size() int { return int(t.size) }

// Alignment returns the required pointer alignment.
func (t *Type) Alignment() int { return int(t.alignment) }

// IsTrivial returns whether values contain no Go pointers, so they can
// be copied as bytes and destructed without releasing references.
func (t *Type) IsTrivial() bool { return t.trivial }

// IsEqualityComparable returns whether [Type.IsEqual] is supported.
func (t *Type) IsEqualityComparable() bool { return t.comparable }

// IsHashable returns whether [Type.Hash] is supported.
func (t *Type) IsHashable() bool { return t.hashable }

// HasPrint returns whether [Type.Print] is supported.
func (t *Type) HasPrint() bool { return t.printable }

// ReflectType returns the Go type.
func (t *Type) ReflectType() reflect.Type { return t.rtype }

// DefaultValue returns a pointer to the default value of the type.
// The value must not be modified.
func (t *Type) DefaultValue() unsafe.Pointer { return t.defaultValue }

// PointerHasValidAlignment returns whether ptr may hold a value of t.
func (t *Type) PointerHasValidAlignment(ptr unsafe.Pointer) bool {
	return uintptr(ptr)%t.alignment == 0
}

// PointerCanPointToInstance returns whether ptr is non-nil and aligned.
func (t *Type) PointerCanPointToInstance(ptr unsafe.Pointer) bool {
	return ptr != nil && t.PointerHasValidAlignment(ptr)
}

func (t *Type) assertPtr(ptr unsafe.Pointer, mask indexmask.Mask) {
	if !debug.Enabled {
		return
	}
	debug.Assert(mask.IsEmpty() || ptr != nil, "%s: nil pointer for non-empty mask", t.name)
	debug.Assert(t.PointerHasValidAlignment(ptr), "%s: pointer %p not aligned to %d", t.name, ptr, t.alignment)
}

func one(i int) indexmask.Mask {
	return indexmask.FromRange(indexmask.Range{Start: i, Size: 1})
}

// DefaultConstruct sets the value at ptr to the default value of t.
func (t *Type) DefaultConstruct(ptr unsafe.Pointer) {
	t.DefaultConstructIndices(ptr, one(0))
}

// DefaultConstructIndices sets the selected elements to the default
// value of t, see [WithDefault].
func (t *Type) DefaultConstructIndices(ptr unsafe.Pointer, mask indexmask.Mask) {
	t.assertPtr(ptr, mask)
	if t.zeroDefault {
		t.fn.destruct(ptr, mask)
		return
	}
	t.fn.fill(t.defaultValue, ptr, mask)
}

// ValueInitialize sets the value at ptr to the zero value.
func (t *Type) ValueInitialize(ptr unsafe.Pointer) {
	t.ValueInitializeIndices(ptr, one(0))
}

// ValueInitializeIndices sets the selected elements to the zero value.
func (t *Type) ValueInitializeIndices(ptr unsafe.Pointer, mask indexmask.Mask) {
	t.assertPtr(ptr, mask)
	t.fn.destruct(ptr, mask)
}

// Destruct releases the value at ptr, leaving the zero value.
func (t *Type) Destruct(ptr unsafe.Pointer) {
	t.DestructIndices(ptr, one(0))
}

// DestructIndices releases the selected elements.
func (t *Type) DestructIndices(ptr unsafe.Pointer, mask indexmask.Mask) {
	t.assertPtr(ptr, mask)
	t.fn.destruct(ptr, mask)
}

// CopyAssign copies the value at src into the live value at dst.
func (t *Type) CopyAssign(src, dst unsafe.Pointer) {
	t.CopyAssignIndices(src, dst, one(0))
}

// CopyAssignIndices copies the selected elements from src to dst.
func (t *Type) CopyAssignIndices(src, dst unsafe.Pointer, mask indexmask.Mask) {
	t.assertPtr(src, mask)
	t.assertPtr(dst, mask)
	t.fn.copy(src, dst, mask)
}

// CopyAssignCompressed copies the selected elements of src into
// consecutive elements of dst starting at index 0.
func (t *Type) CopyAssignCompressed(src, dst unsafe.Pointer, mask indexmask.Mask) {
	t.assertPtr(src, mask)
	t.assertPtr(dst, mask)
	t.fn.copyCompress(src, dst, mask)
}

// CopyConstruct copies the value at src into uninitialized dst.
func (t *Type) CopyConstruct(src, dst unsafe.Pointer) {
	t.CopyAssign(src, dst)
}

// CopyConstructIndices copies the selected elements into uninitialized dst.
func (t *Type) CopyConstructIndices(src, dst unsafe.Pointer, mask indexmask.Mask) {
	t.CopyAssignIndices(src, dst, mask)
}

// CopyConstructCompressed is [Type.CopyAssignCompressed] for uninitialized dst.
func (t *Type) CopyConstructCompressed(src, dst unsafe.Pointer, mask indexmask.Mask) {
	t.CopyAssignCompressed(src, dst, mask)
}

// MoveAssign moves the value at src into dst. src stays valid.
func (t *Type) MoveAssign(src, dst unsafe.Pointer) {
	t.CopyAssign(src, dst)
}

// MoveAssignIndices moves the selected elements from src to dst.
func (t *Type) MoveAssignIndices(src, dst unsafe.Pointer, mask indexmask.Mask) {
	t.CopyAssignIndices(src, dst, mask)
}

// MoveConstruct moves the value at src into uninitialized dst.
func (t *Type) MoveConstruct(src, dst unsafe.Pointer) {
	t.CopyAssign(src, dst)
}

// RelocateAssign moves src into dst and destructs src.
func (t *Type) RelocateAssign(src, dst unsafe.Pointer) {
	t.RelocateAssignIndices(src, dst, one(0))
}

// RelocateAssignIndices moves the selected elements and destructs them in src.
func (t *Type) RelocateAssignIndices(src, dst unsafe.Pointer, mask indexmask.Mask) {
	t.CopyAssignIndices(src, dst, mask)
	t.fn.destruct(src, mask)
}

// RelocateConstruct moves src into uninitialized dst and destructs src.
func (t *Type) RelocateConstruct(src, dst unsafe.Pointer) {
	t.RelocateAssign(src, dst)
}

// RelocateConstructIndices is [Type.RelocateAssignIndices] for uninitialized dst.
func (t *Type) RelocateConstructIndices(src, dst unsafe.Pointer, mask indexmask.Mask) {
	t.RelocateAssignIndices(src, dst, mask)
}

// FillAssignN assigns value to the first n elements of dst.
func (t *Type) FillAssignN(value, dst unsafe.Pointer, n int) {
	t.FillAssignIndices(value, dst, indexmask.FromSize(n))
}

// FillAssignIndices assigns value to the selected elements of dst.
func (t *Type) FillAssignIndices(value, dst unsafe.Pointer, mask indexmask.Mask) {
	t.assertPtr(value, one(0))
	t.assertPtr(dst, mask)
	t.fn.fill(value, dst, mask)
}

// FillConstructN constructs n copies of value in uninitialized dst.
func (t *Type) FillConstructN(value, dst unsafe.Pointer, n int) {
	t.FillAssignN(value, dst, n)
}

// FillConstructIndices constructs value in the selected uninitialized elements.
func (t *Type) FillConstructIndices(value, dst unsafe.Pointer, mask indexmask.Mask) {
	t.FillAssignIndices(value, dst, mask)
}

// Print returns a string representation of the value at ptr.
func (t *Type) Print(ptr unsafe.Pointer) string {
	debug.Assert(t.printable, "%s: type cannot be printed", t.name)
	t.assertPtr(ptr, one(0))
	return t.fn.print(ptr)
}

// IsEqual returns whether the values at a and b are equal.
func (t *Type) IsEqual(a, b unsafe.Pointer) bool {
	debug.Assert(t.comparable, "%s: type is not equality comparable", t.name)
	t.assertPtr(a, one(0))
	t.assertPtr(b, one(0))
	return t.fn.isEqual(a, b)
}

// IsEqualOrFalse is [Type.IsEqual] for types that may not be comparable.
func (t *Type) IsEqualOrFalse(a, b unsafe.Pointer) bool {
	if !t.comparable {
		return false
	}
	return t.IsEqual(a, b)
}

// Hash returns a hash of the value at ptr. Equal values hash equally.
func (t *Type) Hash(ptr unsafe.Pointer) uint64 {
	debug.Assert(t.hashable, "%s: type is not hashable", t.name)
	t.assertPtr(ptr, one(0))
	return t.fn.hash(ptr)
}

// NewBuffer allocates n zero values. The returned keep value must be
// retained for as long as data is used, since it holds the Go
// allocation that data points into.
func (t *Type) NewBuffer(n int) (keep any, data unsafe.Pointer) {
	return t.fn.newBuffer(n)
}

// Value returns the T stored at ptr; t must describe T.
func Value[T any](t *Type, ptr unsafe.Pointer) T {
	debug.Assert(Is[T](t), "gtype.Value: %s is not %s", t.name, reflect.TypeFor[T]())
	return *(*T)(ptr)
}

// SetValue stores v at ptr; t must describe T.
func SetValue[T any](t *Type, ptr unsafe.Pointer, v T) {
	debug.Assert(Is[T](t), "gtype.SetValue: %s is not %s", t.name, reflect.TypeFor[T]())
	*(*T)(ptr) = v
}

// Ptr returns an untyped pointer to v, for passing single values
// to untyped functions.
func Ptr[T any](v *T) unsafe.Pointer {
	return unsafe.Pointer(v)
}

func (t *Type) GoString() string {
	return fmt.Sprintf("gtype.Type{%s size=%d align=%d}", t.name, t.size, t.alignment)
}
