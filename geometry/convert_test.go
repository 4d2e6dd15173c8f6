// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"testing"

	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/curves"
	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshToPointCloud(t *testing.T) {
	m := quad()
	a := attribute.NewMutableAccessor(m, meshFunctions())
	require.True(t, a.Add(attribute.Named("weight"), attribute.DomainPoint, attribute.DataTypeFloat,
		attribute.InitVArray{VArray: gv[float32](1, 2, 3, 4, 5)}))
	require.True(t, a.Add(attribute.Named("face_weight"), attribute.DomainFace, attribute.DataTypeFloat,
		attribute.InitVArray{VArray: gv[float32](9)}))

	pc := MeshToPointCloud(m, indexmask.FromIndices([]int{1, 4}))
	require.NotNil(t, pc)
	assert.Equal(t, 2, pc.PointsNum())
	assert.Equal(t, []math32.Vector3{math32.Vec3(1, 0, 0), math32.Vec3(3, 3, 3)}, pc.Positions())

	pa := NewPointCloudComponent(pc, Owned).Attributes()
	assert.Equal(t, []float32{2, 5}, attribute.Lookup[float32](pa, attribute.Named("weight"), attribute.DomainPoint).ToSlice())
	assert.False(t, pa.ContainsName("face_weight"))

	all := MeshToPointCloud(m, indexmask.FromSize(m.VertsNum()))
	assert.Equal(t, m.Positions(), all.Positions())
	assert.Nil(t, MeshToPointCloud(m, indexmask.Mask{}))
}

func TestCurvesToPointCloud(t *testing.T) {
	c := curves.New([]int{2, 3})
	copy(c.PositionsForWrite(), []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0), math32.Vec3(0, 2, 0), math32.Vec3(0, 3, 0),
	})
	copy(c.RadiiForWrite(), []float32{1, 2, 3, 4, 5})

	pc := CurvesToPointCloud(c)
	require.NotNil(t, pc)
	assert.Equal(t, c.Positions(), pc.Positions())
	assert.Equal(t, []float32{1, 2, 3, 4, 5}, pc.Radii())

	b, ok := pc.Bounds()
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(-5, -2, -5), b.Min)
	assert.Nil(t, CurvesToPointCloud(curves.New(nil)))
}
