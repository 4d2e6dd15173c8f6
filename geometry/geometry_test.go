// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"testing"

	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/curves"
	"cogentcore.org/geometry/instances"
	"cogentcore.org/geometry/math32"
	"cogentcore.org/geometry/pointcloud"
	"cogentcore.org/geometry/varray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentTypeString(t *testing.T) {
	assert.Equal(t, "mesh", ComponentMesh.String())
	assert.Equal(t, "curve", ComponentCurve.String())
	assert.Equal(t, "ComponentType(9)", ComponentType(9).String())
	ct, err := ParseComponentType("Point_Cloud")
	require.NoError(t, err)
	assert.Equal(t, ComponentPointCloud, ct)
	_, err = ParseComponentType("volume")
	assert.Error(t, err)
}

func TestMeshAttributesRoundTrip(t *testing.T) {
	gs := FromMesh(quad(), Owned)
	tr := &attribute.WriterTracker{}
	a := ComponentForWrite[*MeshComponent](gs).AttributesForWrite().WithTracker(tr)
	require.True(t, a.Valid())

	id := attribute.Named("weight")
	require.True(t, a.Add(id, attribute.DomainPoint, attribute.DataTypeFloat,
		attribute.InitVArray{VArray: gv[float32](1, 2, 3, 4, 5)}))
	r := gs.Mesh()
	got := attribute.Lookup[float32](ComponentForRead[*MeshComponent](gs).Attributes(), id, attribute.DomainPoint)
	assert.Equal(t, []float32{1, 2, 3, 4, 5}, got.ToSlice())

	// read on another domain through adaptation
	onFace := attribute.Lookup[float32](gs.Component(ComponentMesh).Attributes(), id, attribute.DomainFace)
	assert.Equal(t, []float32{2.5}, onFace.ToSlice())

	// conversion to another type
	asInt := attribute.Lookup[int32](gs.Component(ComponentMesh).Attributes(), id, attribute.DomainPoint)
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, asInt.ToSlice())

	w := attribute.LookupForWrite[float32](a, id)
	w.VArray.Set(0, 10)
	w.Finish()
	assert.Equal(t, float32(10), attribute.Lookup[float32](a.Accessor, id, attribute.DomainPoint).Get(0))
	assert.Same(t, r, gs.Mesh())
	assert.Equal(t, 0, tr.Open())
}

func TestMeshBuiltins(t *testing.T) {
	m := quad()
	gs := FromMesh(m, Owned)
	a := ComponentForWrite[*MeshComponent](gs).AttributesForWrite()

	meta, ok := a.LookupMetaData(attribute.Named("position"))
	require.True(t, ok)
	assert.Equal(t, attribute.MetaData{Domain: attribute.DomainPoint, DataType: attribute.DataTypeFloat3}, meta)

	// builtin names are reserved for their domain and type
	assert.False(t, a.Add(attribute.Named("position"), attribute.DomainFace, attribute.DataTypeFloat3, attribute.InitConstruct{}))
	assert.False(t, a.Remove(attribute.Named("position")))
	assert.False(t, a.Add(attribute.Named("material_index"), attribute.DomainPoint, attribute.DataTypeInt32, attribute.InitConstruct{}))

	// validators clamp material indexes
	require.True(t, a.Add(attribute.Named("material_index"), attribute.DomainFace, attribute.DataTypeInt32,
		attribute.InitVArray{VArray: gv[int32](-3)}))
	assert.Equal(t, []int32{0}, m.MaterialIndexes())
	assert.NotNil(t, a.LookupValidator(attribute.Named("material_index")))

	// writing positions invalidates the bounds
	b, _ := m.Bounds()
	assert.Equal(t, float32(3), b.Max.X)
	w := attribute.LookupForWrite[math32.Vector3](a, attribute.Named("position"))
	w.VArray.Set(4, math32.Vec3(0, 0, 0))
	w.Finish()
	b, _ = m.Bounds()
	assert.Equal(t, float32(1), b.Max.X)

	var names []string
	a.ForAll(func(id attribute.ID, meta attribute.MetaData) bool {
		if attribute.AllowProceduralAccess(id.Name()) {
			names = append(names, id.Name())
		}
		return true
	})
	assert.ElementsMatch(t, []string{"position", "material_index"}, names)
	assert.True(t, a.DomainSupported(attribute.DomainCorner))
	assert.False(t, a.DomainSupported(attribute.DomainCurve))
	assert.Equal(t, 0, a.DomainSize(attribute.DomainCurve))
	assert.Equal(t, 4, a.DomainSize(attribute.DomainEdge))
}

func TestCopyOnWrite(t *testing.T) {
	gs := FromMesh(quad(), Owned)
	cp := gs.Copy()
	c := gs.Component(ComponentMesh)
	assert.Same(t, c, cp.Component(ComponentMesh))
	assert.Equal(t, 2, c.Users())
	assert.False(t, c.IsMutable())

	m := cp.MeshForWrite()
	assert.NotSame(t, c, cp.Component(ComponentMesh))
	assert.True(t, c.IsMutable())
	m.PositionsForWrite()[0] = math32.Vec3(7, 7, 7)
	assert.Equal(t, math32.Vec3(0, 0, 0), gs.Mesh().Positions()[0])
	assert.Equal(t, math32.Vec3(7, 7, 7), cp.Mesh().Positions()[0])

	// a mutable component is written in place
	assert.Same(t, gs.Mesh(), gs.MeshForWrite())
}

func TestOwnership(t *testing.T) {
	m := quad()
	gs := FromMesh(m, ReadOnly)
	c := ComponentForRead[*MeshComponent](gs)
	assert.False(t, c.OwnsDirectData())
	assert.Equal(t, ReadOnly, c.Ownership())

	// writing read only data copies it
	w := gs.MeshForWrite()
	assert.NotSame(t, m, w)
	assert.True(t, c.OwnsDirectData())

	gs2 := FromMesh(m, Editable)
	assert.Same(t, m, gs2.MeshForWrite())
	gs2.EnsureOwnsDirectData()
	assert.NotSame(t, m, gs2.Mesh())
	assert.True(t, gs2.Component(ComponentMesh).OwnsDirectData())
}

func TestGeometrySet(t *testing.T) {
	gs := NewGeometrySet()
	assert.True(t, gs.IsEmpty())
	assert.Nil(t, gs.Mesh())
	assert.Nil(t, gs.MeshForWrite())
	assert.Nil(t, ComponentForRead[*CurveComponent](gs))

	pc := pointcloud.New(3)
	gs.ReplacePointCloud(pc, Owned)
	cv := curves.New([]int{2})
	gs.ReplaceCurves(cv, Owned)
	in := instances.New()
	gs.ReplaceInstances(in, Owned)
	assert.True(t, gs.Has(ComponentPointCloud))
	assert.True(t, gs.Has(ComponentCurve))
	assert.False(t, gs.Has(ComponentInstances))
	assert.Equal(t, []ComponentType{ComponentPointCloud, ComponentInstances, ComponentCurve}, gs.ComponentTypes())

	n := 0
	gs.AttributeForeach(func(id attribute.ID, meta attribute.MetaData, c Component) bool {
		n++
		return true
	})
	// point cloud and curve positions, instance reference indexes and transforms
	assert.Equal(t, 4, n)

	gs.AttributeForeach(func(id attribute.ID, meta attribute.MetaData, c Component) bool {
		assert.Equal(t, ComponentCurve, c.Type())
		return true
	}, ComponentCurve)

	gs.ReplacePointCloud(nil, Owned)
	assert.Nil(t, gs.Component(ComponentPointCloud))
	gs.Remove(ComponentCurve)
	assert.Nil(t, gs.Curves())
	gs.Clear()
	assert.Empty(t, gs.ComponentTypes())
}

func TestCurveAndPointCloudAccessors(t *testing.T) {
	cv := curves.New([]int{3})
	gs := FromCurves(cv, Owned)
	a := ComponentForWrite[*CurveComponent](gs).AttributesForWrite()
	require.True(t, a.Add(attribute.Named("resolution"), attribute.DomainCurve, attribute.DataTypeInt32,
		attribute.InitVArray{VArray: gv[int32](0)}))
	assert.Equal(t, 1, cv.Resolution(0))

	w := attribute.LookupOrAdd[bool](a, attribute.Named("cyclic"), attribute.DomainCurve, attribute.InitDefaultValue{})
	require.True(t, w.Valid())
	w.VArray.Set(0, true)
	w.Finish()
	assert.True(t, cv.Cyclic(0))

	onPoints := a.LookupOn(attribute.Named("cyclic"), attribute.DomainPoint)
	assert.Equal(t, []bool{true, true, true}, varray.Typed[bool](onPoints).ToSlice())

	pc := pointcloud.New(2)
	pa := FromPointCloud(pc, Owned).Component(ComponentPointCloud).AttributesForWrite()
	require.True(t, pa.Add(attribute.Named("radius"), attribute.DomainPoint, attribute.DataTypeFloat, attribute.InitDefaultValue{}))
	assert.Equal(t, []float32{0, 0}, pc.Radii())
	assert.False(t, pa.Add(attribute.Named("x"), attribute.DomainFace, attribute.DataTypeFloat, attribute.InitDefaultValue{}))
	assert.False(t, pa.LookupOn(attribute.Named("radius"), attribute.DomainFace).Valid())
}

func TestInstanceIDs(t *testing.T) {
	in := instances.New()
	in.Resize(3)
	gs := FromInstances(in, Owned)
	a := gs.Component(ComponentInstances).AttributesForWrite()
	require.True(t, a.Add(attribute.Named("id"), attribute.DomainInstance, attribute.DataTypeInt32,
		attribute.InitVArray{VArray: gv[int32](4, 4, 4)}))
	ids := in.AlmostUniqueIDs()
	assert.Equal(t, int32(4), ids[0])
	assert.NotEqual(t, ids[1], ids[2])

	w := attribute.LookupForWrite[int32](a, attribute.Named("id"))
	w.VArray.Set(1, 1)
	w.VArray.Set(2, 2)
	w.Finish()
	assert.Equal(t, []int32{4, 1, 2}, in.AlmostUniqueIDs())
}

func TestBounds(t *testing.T) {
	_, ok := NewGeometrySet().Bounds()
	assert.False(t, ok)

	child := FromMesh(quad(), Owned)
	pc := pointcloud.New(1)
	pc.PositionsForWrite()[0] = math32.Vec3(-2, 0, 0)
	pc.RadiiForWrite()[0] = 1
	child.ReplacePointCloud(pc, Owned)
	b, ok := child.Bounds()
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(-3, -1, -1), b.Min)
	assert.Equal(t, math32.Vec3(3, 3, 3), b.Max)

	in := instances.New()
	ref := in.AddReference(instances.Reference{Name: "child", Data: child})
	in.AddInstance(ref, math32.Translation4(math32.Vec3(0, 0, 10)))
	in.AddInstance(in.AddReference(instances.Reference{Name: "other"}), math32.Identity4())
	parent := FromInstances(in, Owned)
	b, ok = parent.Bounds()
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(-3, -1, 9), b.Min)
	assert.Equal(t, math32.Vec3(3, 3, 13), b.Max)
}
