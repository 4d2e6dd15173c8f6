// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"runtime"

	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/curves"
	"cogentcore.org/geometry/instances"
	"cogentcore.org/geometry/math32"
	"cogentcore.org/geometry/mesh"
	"cogentcore.org/geometry/pointcloud"
)

// slots holds the components of a set. It is separate from the set so
// that the cleanup of a collected set can release its components.
type slots [ComponentTypeN]Component

func (s *slots) release() {
	for i, c := range s {
		if c != nil {
			c.UserRemove()
			s[i] = nil
		}
	}
}

// GeometrySet holds at most one component of each type. Copies share
// components, which are copied when a set with a shared component
// requests it for writing. A set must not be written from several
// goroutines at once.
type GeometrySet struct {
	components *slots
}

// NewGeometrySet returns an empty set.
func NewGeometrySet() *GeometrySet {
	gs := &GeometrySet{components: &slots{}}
	runtime.AddCleanup(gs, (*slots).release, gs.components)
	return gs
}

// FromMesh returns a set with a mesh component.
func FromMesh(m *mesh.Mesh, ownership Ownership) *GeometrySet {
	gs := NewGeometrySet()
	gs.ReplaceMesh(m, ownership)
	return gs
}

// FromCurves returns a set with a curve component.
func FromCurves(c *curves.Curves, ownership Ownership) *GeometrySet {
	gs := NewGeometrySet()
	gs.ReplaceCurves(c, ownership)
	return gs
}

// FromPointCloud returns a set with a point cloud component.
func FromPointCloud(pc *pointcloud.PointCloud, ownership Ownership) *GeometrySet {
	gs := NewGeometrySet()
	gs.ReplacePointCloud(pc, ownership)
	return gs
}

// FromInstances returns a set with an instances component.
func FromInstances(in *instances.Instances, ownership Ownership) *GeometrySet {
	gs := NewGeometrySet()
	gs.ReplaceInstances(in, ownership)
	return gs
}

// Copy returns a set sharing the components of gs.
func (gs *GeometrySet) Copy() *GeometrySet {
	out := NewGeometrySet()
	for i, c := range gs.components {
		if c != nil {
			c.UserAdd()
			out.components[i] = c
		}
	}
	return out
}

// Component returns the component of type t, or nil.
func (gs *GeometrySet) Component(t ComponentType) Component {
	return gs.components[t]
}

// Has returns whether the set has a component of type t with data.
func (gs *GeometrySet) Has(t ComponentType) bool {
	c := gs.components[t]
	return c != nil && !c.IsEmpty()
}

// ComponentTypes returns the types of the components in the set.
func (gs *GeometrySet) ComponentTypes() []ComponentType {
	var types []ComponentType
	for i, c := range gs.components {
		if c != nil {
			types = append(types, ComponentType(i))
		}
	}
	return types
}

// IsEmpty returns whether no component has data.
func (gs *GeometrySet) IsEmpty() bool {
	for _, c := range gs.components {
		if c != nil && !c.IsEmpty() {
			return false
		}
	}
	return true
}

// componentForWrite returns the component of type t for writing,
// creating it if missing and copying it if shared.
func (gs *GeometrySet) componentForWrite(t ComponentType) Component {
	c := gs.components[t]
	switch {
	case c == nil:
		c = newComponent(t)
		gs.components[t] = c
	case !c.IsMutable():
		cp := c.Copy()
		c.UserRemove()
		gs.components[t] = cp
		c = cp
	}
	return c
}

// ComponentForRead returns the component of type C, or nil.
func ComponentForRead[C Component](gs *GeometrySet) C {
	var zero C
	c, _ := gs.components[zero.Type()].(C)
	return c
}

// ComponentForWrite returns the component of type C for writing. A
// shared component is replaced by a copy first.
func ComponentForWrite[C Component](gs *GeometrySet) C {
	var zero C
	return gs.componentForWrite(zero.Type()).(C)
}

// Add installs c, which must not be shared, replacing any component of
// the same type.
func (gs *GeometrySet) Add(c Component) {
	gs.Remove(c.Type())
	gs.components[c.Type()] = c
}

// Remove removes the component of type t.
func (gs *GeometrySet) Remove(t ComponentType) {
	if c := gs.components[t]; c != nil {
		c.UserRemove()
		gs.components[t] = nil
	}
}

// Clear removes all components.
func (gs *GeometrySet) Clear() {
	gs.components.release()
}

// EnsureOwnsDirectData makes every component own its data, copying
// shared components whose data is not owned.
func (gs *GeometrySet) EnsureOwnsDirectData() {
	for i, c := range gs.components {
		if c == nil || c.OwnsDirectData() {
			continue
		}
		gs.componentForWrite(ComponentType(i)).EnsureOwnsDirectData()
	}
}

// replace installs a component of type t holding new data.
func (gs *GeometrySet) replace(t ComponentType, isNil bool, install func(c Component)) {
	if isNil {
		gs.Remove(t)
		return
	}
	c := gs.components[t]
	if c == nil || !c.IsMutable() {
		gs.Remove(t)
		c = newComponent(t)
		gs.components[t] = c
	}
	install(c)
}

// ReplaceMesh replaces the mesh; a nil mesh removes the component.
func (gs *GeometrySet) ReplaceMesh(m *mesh.Mesh, ownership Ownership) {
	gs.replace(ComponentMesh, m == nil, func(c Component) { c.(*MeshComponent).Replace(m, ownership) })
}

func (gs *GeometrySet) ReplaceCurves(cv *curves.Curves, ownership Ownership) {
	gs.replace(ComponentCurve, cv == nil, func(c Component) { c.(*CurveComponent).Replace(cv, ownership) })
}

func (gs *GeometrySet) ReplacePointCloud(pc *pointcloud.PointCloud, ownership Ownership) {
	gs.replace(ComponentPointCloud, pc == nil, func(c Component) { c.(*PointCloudComponent).Replace(pc, ownership) })
}

func (gs *GeometrySet) ReplaceInstances(in *instances.Instances, ownership Ownership) {
	gs.replace(ComponentInstances, in == nil, func(c Component) { c.(*InstancesComponent).Replace(in, ownership) })
}

// Mesh returns the mesh, or nil.
func (gs *GeometrySet) Mesh() *mesh.Mesh {
	if c := ComponentForRead[*MeshComponent](gs); c != nil {
		return c.Get()
	}
	return nil
}

// MeshForWrite returns the mesh for modification, or nil.
func (gs *GeometrySet) MeshForWrite() *mesh.Mesh {
	if gs.components[ComponentMesh] == nil {
		return nil
	}
	return ComponentForWrite[*MeshComponent](gs).GetForWrite()
}

func (gs *GeometrySet) Curves() *curves.Curves {
	if c := ComponentForRead[*CurveComponent](gs); c != nil {
		return c.Get()
	}
	return nil
}

func (gs *GeometrySet) CurvesForWrite() *curves.Curves {
	if gs.components[ComponentCurve] == nil {
		return nil
	}
	return ComponentForWrite[*CurveComponent](gs).GetForWrite()
}

func (gs *GeometrySet) PointCloud() *pointcloud.PointCloud {
	if c := ComponentForRead[*PointCloudComponent](gs); c != nil {
		return c.Get()
	}
	return nil
}

func (gs *GeometrySet) PointCloudForWrite() *pointcloud.PointCloud {
	if gs.components[ComponentPointCloud] == nil {
		return nil
	}
	return ComponentForWrite[*PointCloudComponent](gs).GetForWrite()
}

func (gs *GeometrySet) Instances() *instances.Instances {
	if c := ComponentForRead[*InstancesComponent](gs); c != nil {
		return c.Get()
	}
	return nil
}

func (gs *GeometrySet) InstancesForWrite() *instances.Instances {
	if gs.components[ComponentInstances] == nil {
		return nil
	}
	return ComponentForWrite[*InstancesComponent](gs).GetForWrite()
}

// Bounds returns the bounding box of the mesh, curves and points of
// the set, and of instanced geometry sets moved by their transforms.
// It returns false if there is no geometry.
func (gs *GeometrySet) Bounds() (math32.Box3, bool) {
	b := math32.B3Empty()
	add := func(other math32.Box3, ok bool) {
		if ok {
			b = b.Union(other)
		}
	}
	add(gs.Mesh().Bounds())
	add(gs.Curves().Bounds())
	add(gs.PointCloud().Bounds())
	if in := gs.Instances(); !in.IsEmpty() {
		refs := in.References()
		transforms := in.Transforms()
		for i, h := range in.ReferenceHandles() {
			if int(h) >= len(refs) {
				continue
			}
			ref, ok := refs[h].Data.(*GeometrySet)
			if !ok {
				continue
			}
			if rb, ok := ref.Bounds(); ok {
				b = b.Union(rb.Transform(&transforms[i]))
			}
		}
	}
	return b, !b.IsEmpty()
}

// AttributeForeach calls fn for every attribute of the components of
// the given types, all types if none are given, until fn returns false.
func (gs *GeometrySet) AttributeForeach(fn func(id attribute.ID, meta attribute.MetaData, c Component) bool, types ...ComponentType) bool {
	if len(types) == 0 {
		types = gs.ComponentTypes()
	}
	for _, t := range types {
		c := gs.components[t]
		if c == nil {
			continue
		}
		a := c.Attributes()
		if !a.Valid() {
			continue
		}
		if !a.ForAll(func(id attribute.ID, meta attribute.MetaData) bool { return fn(id, meta, c) }) {
			return false
		}
	}
	return true
}
