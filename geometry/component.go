// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry provides geometry components wrapping the concrete
// geometry types, the attribute providers and domain adaptation of
// each component type, and [GeometrySet], a copy-on-write container
// with at most one component of each type.
package geometry

import (
	"fmt"
	"strings"
	"sync/atomic"

	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/base/debug"
)

// ComponentType identifies the kind of a [Component].
type ComponentType int

const (
	ComponentMesh ComponentType = iota
	ComponentPointCloud
	ComponentInstances
	ComponentCurve

	ComponentTypeN
)

var componentTypeNames = [...]string{"mesh", "point_cloud", "instances", "curve"}

func (t ComponentType) String() string {
	if t < 0 || t >= ComponentTypeN {
		return fmt.Sprintf("ComponentType(%d)", int(t))
	}
	return componentTypeNames[t]
}

// ParseComponentType returns the component type with the given name.
func ParseComponentType(s string) (ComponentType, error) {
	for t, n := range componentTypeNames {
		if strings.EqualFold(n, s) {
			return ComponentType(t), nil
		}
	}
	return ComponentMesh, fmt.Errorf("geometry: unknown component type %q", s)
}

// Ownership describes who owns the geometry of a component.
type Ownership int

const (
	// Owned geometry belongs to the component.
	Owned Ownership = iota

	// Editable geometry is owned elsewhere and may be modified.
	Editable

	// ReadOnly geometry is owned elsewhere and must not be modified.
	ReadOnly
)

// Component is a part of a [GeometrySet] holding one kind of geometry.
// Components are shared between sets and counted; a component may only
// be modified when it has a single user.
type Component interface {
	Type() ComponentType

	// Copy returns a new component with one user and owned data.
	Copy() Component

	IsEmpty() bool
	Clear()

	// OwnsDirectData returns whether the geometry is owned, so that it
	// stays valid independently of the code that created it.
	OwnsDirectData() bool
	EnsureOwnsDirectData()

	// Attributes returns an accessor of the geometry attributes. It is
	// invalid if the component has no geometry.
	Attributes() attribute.Accessor

	// AttributesForWrite returns a mutable accessor. The component
	// must be mutable and its geometry not read only.
	AttributesForWrite() attribute.MutableAccessor

	UserAdd()
	UserRemove()
	Users() int
	IsMutable() bool
}

// userCounter counts the users of a component.
type userCounter struct {
	users atomic.Int32
}

func (u *userCounter) UserAdd()    { u.users.Add(1) }
func (u *userCounter) UserRemove() { u.users.Add(-1) }
func (u *userCounter) Users() int  { return int(u.users.Load()) }

// IsMutable returns whether there is exactly one user.
func (u *userCounter) IsMutable() bool { return u.users.Load() == 1 }

// payload is a concrete geometry type.
type payload[P any] interface {
	comparable
	Copy() P
	IsEmpty() bool
}

// holder stores the geometry of a component with its ownership.
type holder[P payload[P]] struct {
	userCounter
	data      P
	ownership Ownership
}

func (h *holder[P]) init(data P, ownership Ownership) {
	h.users.Store(1)
	h.data = data
	h.ownership = ownership
}

// Get returns the geometry, or nil.
func (h *holder[P]) Get() P { return h.data }

// GetForWrite returns the geometry for modification, first copying
// read only geometry. The component must be mutable.
func (h *holder[P]) GetForWrite() P {
	debug.Assert(h.IsMutable(), "geometry: write access to a shared component")
	var zero P
	if h.data != zero && h.ownership == ReadOnly {
		h.data = h.data.Copy()
		h.ownership = Owned
	}
	return h.data
}

// Replace sets the geometry.
func (h *holder[P]) Replace(data P, ownership Ownership) {
	debug.Assert(h.IsMutable(), "geometry: replacing the data of a shared component")
	h.data = data
	h.ownership = ownership
}

// Release returns the geometry and removes it from the component.
func (h *holder[P]) Release() P {
	debug.Assert(h.IsMutable(), "geometry: releasing the data of a shared component")
	var zero P
	data := h.data
	h.data = zero
	h.ownership = Owned
	return data
}

func (h *holder[P]) Clear() {
	var zero P
	h.data = zero
	h.ownership = Owned
}

func (h *holder[P]) Ownership() Ownership { return h.ownership }

func (h *holder[P]) IsEmpty() bool {
	var zero P
	return h.data == zero || h.data.IsEmpty()
}

func (h *holder[P]) OwnsDirectData() bool {
	return h.ownership == Owned
}

func (h *holder[P]) EnsureOwnsDirectData() {
	var zero P
	if h.ownership != Owned && h.data != zero {
		h.data = h.data.Copy()
	}
	h.ownership = Owned
}

// copyData returns owned data for a copy of the component.
func (h *holder[P]) copyData() P {
	var zero P
	if h.data == zero {
		return zero
	}
	return h.data.Copy()
}

// writable returns whether the geometry may be modified in place.
func (h *holder[P]) writable() bool {
	var zero P
	return h.data != zero && h.ownership != ReadOnly
}
