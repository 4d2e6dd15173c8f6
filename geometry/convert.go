// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/curves"
	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/mesh"
	"cogentcore.org/geometry/pointcloud"
)

// MeshToPointCloud returns a point cloud with a point for every mesh
// vertex in selection, carrying the point attributes of the mesh.
func MeshToPointCloud(m *mesh.Mesh, selection indexmask.Mask) *pointcloud.PointCloud {
	if m.IsEmpty() || selection.IsEmpty() {
		return nil
	}
	pc := pointcloud.New(selection.Size())
	src := attribute.NewAccessor(m, meshFunctions())
	dst := attribute.NewMutableAccessor(pc, pointCloudFunctions())
	attribute.GatherAttributes(src, attribute.DomainPoint, nil, selection, dst)
	return pc
}

// CurvesToPointCloud returns a point cloud with a point for every
// control point of the curves, carrying their point attributes.
func CurvesToPointCloud(c *curves.Curves) *pointcloud.PointCloud {
	if c.IsEmpty() {
		return nil
	}
	pc := pointcloud.New(c.PointsNum())
	src := attribute.NewAccessor(c, curveFunctions())
	dst := attribute.NewMutableAccessor(pc, pointCloudFunctions())
	attribute.CopyAttributes(src, attribute.DomainPoint, attribute.SkipNames(curves.AttrHandleLeft, curves.AttrHandleRight), dst)
	return pc
}
