// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/curves"
	"cogentcore.org/geometry/instances"
	"cogentcore.org/geometry/mesh"
	"cogentcore.org/geometry/pointcloud"
)

// accessor returns an accessor of data, invalid when data is nil.
func accessor[P comparable](data P, fn *attribute.AccessorFunctions) attribute.Accessor {
	var zero P
	if data == zero {
		return attribute.Accessor{}
	}
	return attribute.NewAccessor(data, fn)
}

func mutableAccessor[P comparable](data P, fn *attribute.AccessorFunctions) attribute.MutableAccessor {
	var zero P
	if data == zero {
		return attribute.MutableAccessor{}
	}
	return attribute.NewMutableAccessor(data, fn)
}

// MeshComponent holds a [mesh.Mesh].
type MeshComponent struct {
	holder[*mesh.Mesh]
}

// NewMeshComponent returns a component with one user holding m.
func NewMeshComponent(m *mesh.Mesh, ownership Ownership) *MeshComponent {
	c := &MeshComponent{}
	c.init(m, ownership)
	return c
}

func (c *MeshComponent) Type() ComponentType { return ComponentMesh }

func (c *MeshComponent) Copy() Component {
	return NewMeshComponent(c.copyData(), Owned)
}

func (c *MeshComponent) Attributes() attribute.Accessor {
	return accessor(c.data, meshFunctions())
}

func (c *MeshComponent) AttributesForWrite() attribute.MutableAccessor {
	return mutableAccessor(c.GetForWrite(), meshFunctions())
}

// AttributeEditor returns an editor of the mesh attributes that keeps
// the active color attributes, or nil if the component is empty.
func (c *MeshComponent) AttributeEditor() *attribute.Editor {
	m := c.GetForWrite()
	if m == nil {
		return nil
	}
	return attribute.NewEditor(mutableAccessor(m, meshFunctions()), &m.Attributes, true)
}

// CurveComponent holds [curves.Curves].
type CurveComponent struct {
	holder[*curves.Curves]
}

func NewCurveComponent(c *curves.Curves, ownership Ownership) *CurveComponent {
	cc := &CurveComponent{}
	cc.init(c, ownership)
	return cc
}

func (c *CurveComponent) Type() ComponentType { return ComponentCurve }

func (c *CurveComponent) Copy() Component {
	return NewCurveComponent(c.copyData(), Owned)
}

func (c *CurveComponent) Attributes() attribute.Accessor {
	return accessor(c.data, curveFunctions())
}

func (c *CurveComponent) AttributesForWrite() attribute.MutableAccessor {
	return mutableAccessor(c.GetForWrite(), curveFunctions())
}

func (c *CurveComponent) AttributeEditor() *attribute.Editor {
	cv := c.GetForWrite()
	if cv == nil {
		return nil
	}
	return attribute.NewEditor(mutableAccessor(cv, curveFunctions()), &cv.Attributes, false)
}

// PointCloudComponent holds a [pointcloud.PointCloud].
type PointCloudComponent struct {
	holder[*pointcloud.PointCloud]
}

func NewPointCloudComponent(pc *pointcloud.PointCloud, ownership Ownership) *PointCloudComponent {
	c := &PointCloudComponent{}
	c.init(pc, ownership)
	return c
}

func (c *PointCloudComponent) Type() ComponentType { return ComponentPointCloud }

func (c *PointCloudComponent) Copy() Component {
	return NewPointCloudComponent(c.copyData(), Owned)
}

func (c *PointCloudComponent) Attributes() attribute.Accessor {
	return accessor(c.data, pointCloudFunctions())
}

func (c *PointCloudComponent) AttributesForWrite() attribute.MutableAccessor {
	return mutableAccessor(c.GetForWrite(), pointCloudFunctions())
}

func (c *PointCloudComponent) AttributeEditor() *attribute.Editor {
	pc := c.GetForWrite()
	if pc == nil {
		return nil
	}
	return attribute.NewEditor(mutableAccessor(pc, pointCloudFunctions()), &pc.Attributes, false)
}

// InstancesComponent holds [instances.Instances].
type InstancesComponent struct {
	holder[*instances.Instances]
}

func NewInstancesComponent(in *instances.Instances, ownership Ownership) *InstancesComponent {
	c := &InstancesComponent{}
	c.init(in, ownership)
	return c
}

func (c *InstancesComponent) Type() ComponentType { return ComponentInstances }

func (c *InstancesComponent) Copy() Component {
	return NewInstancesComponent(c.copyData(), Owned)
}

func (c *InstancesComponent) Attributes() attribute.Accessor {
	return accessor(c.data, instancesFunctions())
}

func (c *InstancesComponent) AttributesForWrite() attribute.MutableAccessor {
	return mutableAccessor(c.GetForWrite(), instancesFunctions())
}

// newComponent returns an empty component of type t.
func newComponent(t ComponentType) Component {
	switch t {
	case ComponentMesh:
		return NewMeshComponent(nil, Owned)
	case ComponentPointCloud:
		return NewPointCloudComponent(nil, Owned)
	case ComponentInstances:
		return NewInstancesComponent(nil, Owned)
	case ComponentCurve:
		return NewCurveComponent(nil, Owned)
	}
	return nil
}
