// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"testing"

	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/curves"
	"cogentcore.org/geometry/mesh"
	"cogentcore.org/geometry/varray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meshEditor(t *testing.T) (*GeometrySet, *attribute.Editor) {
	gs := FromMesh(quad(), Owned)
	e := ComponentForWrite[*MeshComponent](gs).AttributeEditor()
	require.NotNil(t, e)
	return gs, e
}

func TestAttributeEditorNew(t *testing.T) {
	gs, e := meshEditor(t)
	m := gs.Mesh()

	id, err := e.New("weight", attribute.DataTypeFloat, attribute.DomainPoint)
	require.NoError(t, err)
	assert.Equal(t, "weight", id.Name())
	id, err = e.New("weight", attribute.DataTypeFloat, attribute.DomainPoint)
	require.NoError(t, err)
	assert.Equal(t, "weight.001", id.Name())
	id, err = e.New("", attribute.DataTypeFloat, attribute.DomainFace)
	require.NoError(t, err)
	assert.Equal(t, attribute.DefaultName, id.Name())
	assert.Equal(t, []float32{0, 0, 0, 0, 0},
		attribute.Lookup[float32](e.Accessor().Accessor, attribute.Named("weight"), attribute.DomainPoint).ToSlice())

	_, err = e.New("x", attribute.DataTypeFloat, attribute.DomainCurve)
	assert.ErrorIs(t, err, attribute.ErrDomainNotSupported)
	// a builtin name is made unique rather than created with the wrong type
	id, err = e.New(mesh.AttrPosition, attribute.DataTypeFloat, attribute.DomainPoint)
	require.NoError(t, err)
	assert.Equal(t, "position.001", id.Name())

	assert.Empty(t, m.Attributes.ActiveColor)
	_, err = e.New("Col", attribute.DataTypeColorByte, attribute.DomainCorner)
	require.NoError(t, err)
	assert.Equal(t, "Col", m.Attributes.ActiveColor)
	assert.Equal(t, "Col", m.Attributes.DefaultColor)
	_, err = e.New("Col2", attribute.DataTypeColorFloat, attribute.DomainPoint)
	require.NoError(t, err)
	assert.Equal(t, "Col", m.Attributes.ActiveColor)
	// a color type on the face domain is not a color attribute
	_, err = e.New("FaceCol", attribute.DataTypeColorFloat, attribute.DomainFace)
	require.NoError(t, err)

	names := func(ids []attribute.ID) []string {
		var out []string
		for _, id := range ids {
			out = append(out, id.Name())
		}
		return out
	}
	assert.Equal(t, []string{"Col2", "Col"}, names(e.ColorIDs()))
	assert.Equal(t, 1, e.ActiveColorIndex())
	assert.Equal(t, 1, e.RenderColorIndex())
	require.NoError(t, e.SetRenderColorIndex(0))
	assert.Equal(t, "Col2", m.Attributes.DefaultColor)
	assert.Equal(t, 0, e.RenderColorIndex())
	assert.Error(t, e.SetActiveColorIndex(2))
	assert.Error(t, e.SetActiveColorIndex(-1))

	assert.ErrorIs(t, e.SetActiveColor("weight"), attribute.ErrNotColor)
	assert.ErrorIs(t, e.SetActiveColor("FaceCol"), attribute.ErrNotColor)
	assert.ErrorIs(t, e.SetDefaultColor("missing"), attribute.ErrNotFound)
	require.NoError(t, e.SetActiveColor("Col2"))
	assert.Equal(t, 0, e.ActiveColorIndex())
	require.NoError(t, e.SetActiveColor(""))
	assert.Equal(t, -1, e.ActiveColorIndex())

	assert.Equal(t, m.Attributes, m.Copy().Attributes)
}

func TestAttributeEditorColorsOnlyForMeshes(t *testing.T) {
	gs := FromCurves(curves.New([]int{2}), Owned)
	c := ComponentForWrite[*CurveComponent](gs)
	e := c.AttributeEditor()
	require.NotNil(t, e)
	_, err := e.New("Col", attribute.DataTypeColorFloat, attribute.DomainPoint)
	require.NoError(t, err)
	assert.Empty(t, gs.Curves().Attributes.ActiveColor)
	assert.Empty(t, gs.Curves().Attributes.DefaultColor)

	assert.Nil(t, ComponentForWrite[*PointCloudComponent](FromCurves(curves.New([]int{1}), Owned)).AttributeEditor())
}

func TestAttributeEditorRemove(t *testing.T) {
	gs, e := meshEditor(t)
	m := gs.Mesh()
	a := e.Accessor()

	assert.True(t, a.IsRequired(attribute.Named(mesh.AttrPosition)))
	assert.True(t, a.IsRequired(attribute.Named(mesh.AttrCornerVert)))
	assert.False(t, a.IsRequired(attribute.Named(mesh.AttrMaterialIndex)))
	assert.False(t, a.IsRequired(attribute.Named("weight")))

	assert.ErrorIs(t, e.Remove(attribute.Named(mesh.AttrPosition)), attribute.ErrRequired)
	assert.ErrorIs(t, e.Remove(attribute.Named(mesh.AttrCornerEdge)), attribute.ErrRequired)
	assert.ErrorIs(t, e.Remove(attribute.Named("missing")), attribute.ErrNotFound)
	assert.True(t, a.ContainsName(mesh.AttrPosition))

	weight, err := e.New("weight", attribute.DataTypeFloat, attribute.DomainPoint)
	require.NoError(t, err)
	col, err := e.New("Col", attribute.DataTypeColorByte, attribute.DomainCorner)
	require.NoError(t, err)
	require.NoError(t, e.SetActive(col))

	require.NoError(t, e.Remove(weight))
	assert.False(t, a.Contains(weight))
	active, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, "Col", active.Name())

	require.NoError(t, e.Remove(col))
	assert.Empty(t, m.Attributes.ActiveColor)
	assert.Empty(t, m.Attributes.DefaultColor)
	assert.Equal(t, len(e.IDs())-1, e.ActiveIndex())
}

func TestAttributeEditorRename(t *testing.T) {
	gs, e := meshEditor(t)
	m := gs.Mesh()
	a := e.Accessor()

	weight, err := e.New("weight", attribute.DataTypeFloat, attribute.DomainPoint)
	require.NoError(t, err)
	w := attribute.LookupForWrite[float32](a, weight)
	w.VArray.SetAll([]float32{1, 2, 3, 4, 5})
	w.Finish()

	assert.True(t, e.NameEditable(weight))
	assert.False(t, e.NameEditable(attribute.Named(mesh.AttrPosition)))
	assert.False(t, e.NameEditable(attribute.Named("missing")))

	name, err := e.Rename(weight, "mass")
	require.NoError(t, err)
	assert.Equal(t, "mass", name)
	assert.False(t, a.Contains(weight))
	assert.Equal(t, []float32{1, 2, 3, 4, 5},
		attribute.Lookup[float32](a.Accessor, attribute.Named("mass"), attribute.DomainPoint).ToSlice())

	name, err = e.Rename(attribute.Named("mass"), "mass")
	require.NoError(t, err)
	assert.Equal(t, "mass", name)

	_, err = e.Rename(attribute.Named(mesh.AttrPosition), "pos")
	assert.ErrorIs(t, err, attribute.ErrRequired)
	_, err = e.Rename(attribute.Named("missing"), "x")
	assert.ErrorIs(t, err, attribute.ErrNotFound)

	other, err := e.New("other", attribute.DataTypeInt32, attribute.DomainEdge)
	require.NoError(t, err)
	name, err = e.Rename(other, "mass")
	require.NoError(t, err)
	assert.Equal(t, "mass.001", name)
	meta, ok := a.LookupMetaData(attribute.Named("mass.001"))
	require.True(t, ok)
	assert.Equal(t, attribute.DomainEdge, meta.Domain)
	assert.Equal(t, attribute.DataTypeInt32, meta.DataType)

	require.NoError(t, e.SetActive(attribute.Named("mass")))
	_, err = e.Rename(attribute.Named("mass"), "density")
	require.NoError(t, err)
	active, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, "density", active.Name())

	col, err := e.New("Col", attribute.DataTypeColorByte, attribute.DomainCorner)
	require.NoError(t, err)
	_, err = e.Rename(col, "Paint")
	require.NoError(t, err)
	assert.Equal(t, "Paint", m.Attributes.ActiveColor)
	assert.Equal(t, "Paint", m.Attributes.DefaultColor)

	require.True(t, a.Add(attribute.Named(mesh.AttrMaterialIndex), attribute.DomainFace, attribute.DataTypeInt32,
		attribute.InitVArray{VArray: varray.FromVArray(varray.ForSpan([]int32{3}))}))
	_, err = e.Rename(attribute.Named(mesh.AttrMaterialIndex), "mat")
	require.NoError(t, err)
	assert.False(t, a.ContainsName(mesh.AttrMaterialIndex))
	assert.Equal(t, []int32{3}, attribute.Lookup[int32](a.Accessor, attribute.Named("mat"), attribute.DomainFace).ToSlice())
}

func TestAttributeEditorActiveIndex(t *testing.T) {
	_, e := meshEditor(t)
	_, err := e.New("weight", attribute.DataTypeFloat, attribute.DomainPoint)
	require.NoError(t, err)
	n := len(e.IDs())

	e.SetActiveIndex(-5)
	assert.Equal(t, -1, e.ActiveIndex())
	_, ok := e.Active()
	assert.False(t, ok)

	e.SetActiveIndex(100)
	assert.Equal(t, n-1, e.ActiveIndex())
	active, ok := e.Active()
	require.True(t, ok)
	assert.Equal(t, "weight", active.Name())

	e.SetActiveIndex(0)
	active, _ = e.Active()
	assert.Equal(t, mesh.AttrPosition, active.Name())

	assert.ErrorIs(t, e.SetActive(attribute.Named("missing")), attribute.ErrNotFound)
	require.NoError(t, e.SetActive(attribute.ID{}))
	assert.Equal(t, -1, e.ActiveIndex())

	assert.True(t, attribute.IsInternal(mesh.AttrCornerVert))
	assert.False(t, attribute.IsInternal(mesh.AttrPosition))
}
