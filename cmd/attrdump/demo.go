// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/curves"
	"cogentcore.org/geometry/geometry"
	"cogentcore.org/geometry/instances"
	"cogentcore.org/geometry/math32"
	"cogentcore.org/geometry/mesh"
	"cogentcore.org/geometry/pointcloud"
	"cogentcore.org/geometry/varray"
)

// demoOptions are the sizes of the demo geometry.
type demoOptions struct {
	// Grid is the number of quads along each side of the grid mesh.
	Grid int

	// Points is the number of points of the point cloud.
	Points int

	// Resolution is the evaluated resolution of the curves.
	Resolution int
}

// demoSet returns a geometry set with one component of every type.
func demoSet(opts demoOptions) *geometry.GeometrySet {
	gs := geometry.FromMesh(gridMesh(opts.Grid), geometry.Owned)
	gs.ReplaceCurves(demoCurves(opts.Resolution), geometry.Owned)
	gs.ReplacePointCloud(demoPoints(opts.Points), geometry.Owned)
	gs.ReplaceInstances(demoInstances(), geometry.Owned)
	addMeshAttributes(gs, opts.Grid)
	return gs
}

// gridMesh returns n by n unit quads in the XY plane.
func gridMesh(n int) *mesh.Mesh {
	n = max(n, 1)
	row := n + 1
	positions := make([]math32.Vector3, 0, row*row)
	for y := range row {
		for x := range row {
			positions = append(positions, math32.Vec3(float32(x), float32(y), 0))
		}
	}
	faces := make([][]int, 0, n*n)
	for y := range n {
		for x := range n {
			v := y*row + x
			faces = append(faces, []int{v, v + 1, v + row + 1, v + row})
		}
	}
	return mesh.FromPolygons(positions, faces)
}

// addMeshAttributes writes the user attributes of the grid through
// the attribute API.
func addMeshAttributes(gs *geometry.GeometrySet, n int) {
	a := geometry.ComponentForWrite[*geometry.MeshComponent](gs).AttributesForWrite()

	mat := attribute.LookupOrAdd[int32](a, attribute.Named(mesh.AttrMaterialIndex), attribute.DomainFace, attribute.InitConstruct{})
	for i := range mat.VArray.Size() {
		mat.VArray.Set(i, int32(i%2))
	}
	mat.Finish()

	m := gs.Mesh()
	uv := a.LookupOrAddForWriteOnlySpan(attribute.Named("uv"), attribute.DomainCorner, attribute.DataTypeFloat2)
	uvs := attribute.SpanAs[math32.Vector2](uv)
	positions := m.Positions()
	for i, v := range m.CornerVerts() {
		p := positions[v]
		uvs[i] = math32.Vec2(p.X/float32(n), p.Y/float32(n))
	}
	uv.Finish()

	a.Add(attribute.Named("selected"), attribute.DomainPoint, attribute.DataTypeBool,
		attribute.InitVArray{VArray: varray.FromVArray(varray.ForFunc(m.VertsNum(), func(i int) bool {
			return i%3 == 0
		}))})
}

// demoCurves returns an open NURBS curve and a cyclic poly curve.
func demoCurves(resolution int) *curves.Curves {
	c := curves.New([]int{5, 4})
	positions := c.PositionsForWrite()
	for i := range 5 {
		positions[i] = math32.Vec3(float32(i), float32(i%2), 0)
	}
	square := []math32.Vector3{
		math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 1), math32.Vec3(1, 1, 1), math32.Vec3(0, 1, 1),
	}
	copy(positions[5:], square)

	types := c.CurveTypesForWrite()
	types[0] = int8(curves.CurveTypeNurbs)
	types[1] = int8(curves.CurveTypePoly)
	c.NurbsOrdersForWrite()[0] = 3
	c.KnotsModesForWrite()[0] = int8(curves.KnotsEndpoint)
	c.CyclicForWrite()[1] = true
	resolutions := c.ResolutionsForWrite()
	for i := range resolutions {
		resolutions[i] = int32(max(resolution, 1))
	}
	radii := c.RadiiForWrite()
	for i := range radii {
		radii[i] = 0.1 * float32(i+1)
	}
	return c
}

// demoPoints returns points along a diagonal with growing radii.
func demoPoints(n int) *pointcloud.PointCloud {
	pc := pointcloud.New(n)
	positions := pc.PositionsForWrite()
	radii := pc.RadiiForWrite()
	for i := range n {
		f := float32(i)
		positions[i] = math32.Vec3(f, f, f)
		radii[i] = pointcloud.DefaultRadius * (f + 1)
	}
	return pc
}

// demoInstances returns two instances of a named reference.
func demoInstances() *instances.Instances {
	in := instances.New()
	ref := in.AddReference(instances.Reference{Name: "grid"})
	in.AddInstance(ref, math32.Identity4())
	in.AddInstance(ref, math32.Translation4(math32.Vec3(0, 0, 2)))
	return in
}
