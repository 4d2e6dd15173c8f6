// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package customdata stores attributes of one geometry domain as
// ordered named layers. Copies of a [CustomData] share layer arrays
// until one of them writes, which then copies the layer first.
package customdata

import (
	"runtime"
	"sync/atomic"

	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/base/debug"
	"cogentcore.org/geometry/base/keylist"
	"cogentcore.org/geometry/generic"
	"cogentcore.org/geometry/indexmask"
)

// sharedArray is a layer array with the number of layers using it.
type sharedArray struct {
	users atomic.Int32
	array *generic.Array
}

// layerRef is the reference of a layer to its array. It is released
// when the layer is removed or garbage collected.
type layerRef struct {
	data *sharedArray
}

func (r *layerRef) release() {
	if r.data != nil {
		r.data.users.Add(-1)
		r.data = nil
	}
}

// Layer is one attribute of a domain.
type Layer struct {
	name     string
	anon     *attribute.AnonymousID
	dataType attribute.DataType
	ref      *layerRef
}

func newLayer(name string, anon *attribute.AnonymousID, dt attribute.DataType, data *sharedArray) *Layer {
	data.users.Add(1)
	l := &Layer{name: name, anon: anon, dataType: dt, ref: &layerRef{data: data}}
	runtime.AddCleanup(l, (*layerRef).release, l.ref)
	return l
}

// Name returns the storage name.
func (l *Layer) Name() string { return l.name }

// ID returns the attribute identifier of the layer.
func (l *Layer) ID() attribute.ID {
	if l.anon != nil {
		return attribute.Anonymous(l.anon)
	}
	return attribute.Named(l.name)
}

func (l *Layer) DataType() attribute.DataType { return l.dataType }

// Size returns the number of elements.
func (l *Layer) Size() int { return l.ref.data.array.Size() }

// IsShared returns whether other layers use the same array.
func (l *Layer) IsShared() bool { return l.ref.data.users.Load() > 1 }

// Span returns the values for reading.
func (l *Layer) Span() generic.Span {
	return l.ref.data.array.AsSpan()
}

// MutableSpan returns the values for writing, first copying them if
// the array is shared.
func (l *Layer) MutableSpan() generic.MutableSpan {
	if l.IsShared() {
		data := &sharedArray{array: l.ref.data.array.Clone()}
		data.users.Add(1)
		l.ref.release()
		l.ref.data = data
	}
	return l.ref.data.array.AsMutableSpan()
}

// CustomData is the ordered set of layers of one domain. The zero value
// is empty and ready to use. It is not safe for concurrent writes.
type CustomData struct {
	layers keylist.List[string, *Layer]
}

// Len returns the number of layers.
func (cd *CustomData) Len() int { return cd.layers.Len() }

// Layers returns the layers in creation order.
func (cd *CustomData) Layers() []*Layer { return cd.layers.Values }

// Layer returns the layer with the given name, or nil.
func (cd *CustomData) Layer(name string) *Layer {
	return cd.layers.At(name)
}

// Has returns whether a layer with the given name exists.
func (cd *CustomData) Has(name string) bool {
	return cd.layers.IndexByKey(name) >= 0
}

// AddLayer adds a layer owning arr, which must have the type of dt.
// It returns nil if the name is taken.
func (cd *CustomData) AddLayer(id attribute.ID, dt attribute.DataType, arr *generic.Array) *Layer {
	debug.Assert(arr.Type() == dt.Type(), "customdata: array of %s for %s layer", arr.Type(), dt)
	if cd.Has(id.Key()) {
		return nil
	}
	l := newLayer(id.Key(), id.AnonymousID(), dt, &sharedArray{array: arr})
	cd.layers.Add(l.name, l)
	return l
}

// CreateLayer adds a layer of size elements initialized as described by
// init. It returns false if the name is taken or init does not match
// the type and size, in which case an [attribute.InitMoveArray] array
// is freed.
func (cd *CustomData) CreateLayer(id attribute.ID, dt attribute.DataType, size int, init attribute.Init) bool {
	t := dt.Type()
	var arr *generic.Array
	switch in := init.(type) {
	case attribute.InitMoveArray:
		if in.Array == nil || in.Array.Type() != t || in.Array.Size() != size || cd.Has(id.Key()) {
			if in.Array != nil {
				in.Array.Free()
			}
			return false
		}
		arr = in.Array.Move()
	default:
		if cd.Has(id.Key()) {
			return false
		}
		arr = generic.NewArray(t, size)
		switch in := init.(type) {
		case attribute.InitDefaultValue:
			t.FillAssignN(t.DefaultValue(), arr.Data(), size)
		case attribute.InitVArray:
			if !in.VArray.Valid() || in.VArray.Type() != t || in.VArray.Size() != size {
				arr.Free()
				return false
			}
			in.VArray.MaterializeToUninitialized(indexmask.FromSize(size), arr.Data())
		}
	}
	if cd.AddLayer(id, dt, arr) == nil {
		arr.Free()
		return false
	}
	return true
}

// Remove removes the layer with the given name.
func (cd *CustomData) Remove(name string) bool {
	l := cd.layers.At(name)
	if l == nil {
		return false
	}
	cd.layers.DeleteByKey(name)
	l.ref.release()
	return true
}

// Clear removes all layers.
func (cd *CustomData) Clear() {
	for _, l := range cd.layers.Values {
		l.ref.release()
	}
	cd.layers.Reset()
}

// Copy returns a copy sharing the layer arrays.
func (cd *CustomData) Copy() *CustomData {
	out := &CustomData{}
	out.layers = *cd.layers.Clone(func(l *Layer) *Layer {
		return newLayer(l.name, l.anon, l.dataType, l.ref.data)
	})
	return out
}

// Get returns the values of the named layer as T, or nil if there is no
// such layer of type T.
func Get[T any](cd *CustomData, name string) []T {
	l := cd.Layer(name)
	if l == nil || !isType[T](l) {
		return nil
	}
	return generic.Typed[T](l.Span())
}

// GetForWrite is [Get] for writing, copying a shared array first.
func GetForWrite[T any](cd *CustomData, name string) []T {
	l := cd.Layer(name)
	if l == nil || !isType[T](l) {
		return nil
	}
	return generic.TypedMutable[T](l.MutableSpan())
}

func isType[T any](l *Layer) bool {
	dt, ok := attribute.DataTypeFor[T]()
	return ok && dt == l.dataType
}
