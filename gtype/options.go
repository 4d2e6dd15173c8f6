// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gtype

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"cogentcore.org/geometry/indexmask"
	"github.com/zeebo/blake3"
)

// Option configures a type at registration.
type Option[T any] func(c *config[T])

type config[T any] struct {
	name   string
	def    *T
	print  func(v T) string
	equal  func(a, b T) bool
	hash   func(v T) uint64
	noHash bool
}

// WithName sets the type name, which defaults to the Go type name.
func WithName[T any](name string) Option[T] {
	return func(c *config[T]) { c.name = name }
}

// WithDefault sets the default value, which defaults to the zero value.
func WithDefault[T any](v T) Option[T] {
	return func(c *config[T]) { c.def = &v }
}

// WithPrint sets the print function, which defaults to fmt.Sprint.
func WithPrint[T any](fn func(v T) string) Option[T] {
	return func(c *config[T]) { c.print = fn }
}

// WithEqual sets the equality function. By default Go comparable
// types use ==, and other types are not equality comparable.
func WithEqual[T any](fn func(a, b T) bool) Option[T] {
	return func(c *config[T]) { c.equal = fn }
}

// WithHash sets the hash function. The default hashes the bytes of
// trivial types and the contents of strings; other types are not hashable.
func WithHash[T any](fn func(v T) uint64) Option[T] {
	return func(c *config[T]) { c.hash = fn }
}

// WithoutHash disables hashing.
func WithoutHash[T any]() Option[T] {
	return func(c *config[T]) { c.noHash = true }
}

// HashBytes returns the 64 bit blake3 hash of b.
func HashBytes(b []byte) uint64 {
	sum := blake3.Sum256(b)
	return binary.LittleEndian.Uint64(sum[:8])
}

// HashFloats hashes float components so that 0 and -0 hash equally.
func HashFloats(vals ...float32) uint64 {
	var buf [64]byte
	b := buf[:0]
	for _, v := range vals {
		if v == 0 {
			v = 0
		}
		b = binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
	}
	return HashBytes(b)
}

// isTrivial returns whether rt contains no Go pointers.
func isTrivial(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isTrivial(rt.Elem())
	case reflect.Struct:
		for i := range rt.NumField() {
			if !isTrivial(rt.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}

// hasPadding returns whether the byte representation of a trivial
// type may contain bytes that are not part of any field.
func hasPadding(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Array:
		return hasPadding(rt.Elem())
	case reflect.Struct:
		var sum uintptr
		for i := range rt.NumField() {
			f := rt.Field(i)
			if hasPadding(f.Type) {
				return true
			}
			sum += f.Type.Size()
		}
		return sum != rt.Size()
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		// -0 and 0 have different bytes
		return true
	}
	return false
}

func newType[T any](rt reflect.Type, cfg *config[T]) *Type {
	t := &Type{
		name:      cfg.name,
		rtype:     rt,
		size:      rt.Size(),
		alignment: uintptr(rt.Align()),
		trivial:   isTrivial(rt),
		printable: true,
	}
	if t.name == "" {
		t.name = rt.String()
	}
	def := new(T)
	if cfg.def != nil {
		*def = *cfg.def
	}
	t.defaultValue = unsafe.Pointer(def)
	t.zeroDefault = cfg.def == nil

	var zero T
	t.fn.destruct = func(ptr unsafe.Pointer, mask indexmask.Mask) {
		d := unsafe.Slice((*T)(ptr), mask.MinArraySize())
		if r, ok := mask.AsRange(); ok {
			clear(d[r.Start:r.End()])
			return
		}
		mask.Foreach(func(i int) { d[i] = zero })
	}
	t.fn.copy = func(src, dst unsafe.Pointer, mask indexmask.Mask) {
		n := mask.MinArraySize()
		s := unsafe.Slice((*T)(src), n)
		d := unsafe.Slice((*T)(dst), n)
		if r, ok := mask.AsRange(); ok {
			copy(d[r.Start:r.End()], s[r.Start:r.End()])
			return
		}
		mask.Foreach(func(i int) { d[i] = s[i] })
	}
	t.fn.copyCompress = func(src, dst unsafe.Pointer, mask indexmask.Mask) {
		s := unsafe.Slice((*T)(src), mask.MinArraySize())
		d := unsafe.Slice((*T)(dst), mask.Size())
		if r, ok := mask.AsRange(); ok {
			copy(d, s[r.Start:r.End()])
			return
		}
		mask.ForeachPos(func(pos, i int) { d[pos] = s[i] })
	}
	t.fn.fill = func(value, dst unsafe.Pointer, mask indexmask.Mask) {
		v := *(*T)(value)
		d := unsafe.Slice((*T)(dst), mask.MinArraySize())
		mask.Foreach(func(i int) { d[i] = v })
	}
	t.fn.newBuffer = func(n int) (any, unsafe.Pointer) {
		buf := make([]T, n)
		if n == 0 {
			return buf, nil
		}
		return buf, unsafe.Pointer(&buf[0])
	}

	if cfg.print != nil {
		t.fn.print = func(ptr unsafe.Pointer) string { return cfg.print(*(*T)(ptr)) }
	} else {
		t.fn.print = func(ptr unsafe.Pointer) string { return fmt.Sprint(*(*T)(ptr)) }
	}

	switch {
	case cfg.equal != nil:
		t.comparable = true
		t.fn.isEqual = func(a, b unsafe.Pointer) bool { return cfg.equal(*(*T)(a), *(*T)(b)) }
	case rt.Comparable():
		t.comparable = true
		t.fn.isEqual = func(a, b unsafe.Pointer) bool { return any(*(*T)(a)) == any(*(*T)(b)) }
	}

	switch {
	case cfg.noHash:
	case cfg.hash != nil:
		t.hashable = true
		t.fn.hash = func(ptr unsafe.Pointer) uint64 { return cfg.hash(*(*T)(ptr)) }
	case rt.Kind() == reflect.String:
		t.hashable = true
		t.fn.hash = func(ptr unsafe.Pointer) uint64 {
			return HashBytes([]byte(*(*string)(ptr)))
		}
	case t.trivial && !hasPadding(rt):
		t.hashable = true
		t.fn.hash = func(ptr unsafe.Pointer) uint64 {
			return HashBytes(unsafe.Slice((*byte)(ptr), t.size))
		}
	}
	return t
}
