// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/mesh"
	"cogentcore.org/geometry/varray"
)

// AdaptMeshDomain converts values on one mesh domain to another.
// Values are averaged when several elements map to one, except for
// booleans which are true only if all contributing values are true.
// It returns an invalid array for unsupported domains and for value
// types that cannot be averaged where averaging is needed.
func AdaptMeshDomain(m *mesh.Mesh, v varray.GVArray, from, to attribute.Domain) varray.GVArray {
	if !v.Valid() || v.IsEmpty() {
		return varray.GVArray{}
	}
	if from == to {
		return v
	}
	if m == nil || v.Size() != m.DomainSize(from) {
		return varray.GVArray{}
	}
	a := adapterFor(v)
	if a == nil {
		return varray.GVArray{}
	}
	return a.mesh(m, v, from, to)
}

func adaptMesh[T any](m *mesh.Mesh, v varray.VArray[T], from, to attribute.Domain) varray.VArray[T] {
	switch from {
	case attribute.DomainPoint:
		switch to {
		case attribute.DomainEdge:
			return pointToEdge(m, v)
		case attribute.DomainFace:
			return pointToFace(m, v)
		case attribute.DomainCorner:
			return pointToCorner(m, v)
		}
	case attribute.DomainEdge:
		switch to {
		case attribute.DomainPoint:
			return edgeToPoint(m, v)
		case attribute.DomainFace:
			return edgeToFace(m, v)
		case attribute.DomainCorner:
			return edgeToCorner(m, v)
		}
	case attribute.DomainFace:
		switch to {
		case attribute.DomainPoint:
			return faceToPoint(m, v)
		case attribute.DomainEdge:
			return faceToEdge(m, v)
		case attribute.DomainCorner:
			return faceToCorner(m, v)
		}
	case attribute.DomainCorner:
		switch to {
		case attribute.DomainPoint:
			return cornerToPoint(m, v)
		case attribute.DomainEdge:
			return cornerToEdge(m, v)
		case attribute.DomainFace:
			return cornerToFace(m, v)
		}
	}
	return varray.VArray[T]{}
}

func pointToEdge[T any](m *mesh.Mesh, v varray.VArray[T]) varray.VArray[T] {
	edges := m.EdgeVerts()
	g := gather(func(e int, add func(int)) {
		add(int(edges[e].X))
		add(int(edges[e].Y))
	})
	return reduce(v, m.EdgesNum(), g.contributions(m.EdgesNum()), indexmask.Mask{})
}

func pointToFace[T any](m *mesh.Mesh, v varray.VArray[T]) varray.VArray[T] {
	faces := m.FaceOffsets()
	cornerVerts := m.CornerVerts()
	g := gather(func(f int, add func(int)) {
		faces.At(f).Foreach(func(c int) { add(int(cornerVerts[c])) })
	})
	return reduce(v, m.FacesNum(), g.contributions(m.FacesNum()), indexmask.Mask{})
}

func pointToCorner[T any](m *mesh.Mesh, v varray.VArray[T]) varray.VArray[T] {
	cornerVerts := m.CornerVerts()
	return broadcast(v, m.CornersNum(), func(c int) int { return int(cornerVerts[c]) })
}

func edgeToPoint[T any](m *mesh.Mesh, v varray.VArray[T]) varray.VArray[T] {
	edges := m.EdgeVerts()
	each := contributions(func(add func(dst, src int)) {
		for e, verts := range edges {
			add(int(verts.X), e)
			add(int(verts.Y), e)
		}
	})
	return reduce(v, m.VertsNum(), each, m.LooseVerts().Mask)
}

func edgeToFace[T any](m *mesh.Mesh, v varray.VArray[T]) varray.VArray[T] {
	faces := m.FaceOffsets()
	cornerEdges := m.CornerEdges()
	g := gather(func(f int, add func(int)) {
		faces.At(f).Foreach(func(c int) { add(int(cornerEdges[c])) })
	})
	return reduce(v, m.FacesNum(), g.contributions(m.FacesNum()), indexmask.Mask{})
}

// prevCorner returns the corner before c in its face.
func prevCorner(m *mesh.Mesh, faceToCorner []int32, c int) int {
	r := m.FaceOffsets().At(int(faceToCorner[c]))
	if c == r.Start {
		return r.Last()
	}
	return c - 1
}

// nextCorner returns the corner after c in its face.
func nextCorner(m *mesh.Mesh, faceToCorner []int32, c int) int {
	r := m.FaceOffsets().At(int(faceToCorner[c]))
	if c == r.Last() {
		return r.Start
	}
	return c + 1
}

// edgeToCorner mixes the two edges next to every corner.
func edgeToCorner[T any](m *mesh.Mesh, v varray.VArray[T]) varray.VArray[T] {
	cornerEdges := m.CornerEdges()
	cornerFaces := m.CornerToFaceMap()
	g := gather(func(c int, add func(int)) {
		add(int(cornerEdges[c]))
		add(int(cornerEdges[prevCorner(m, cornerFaces, c)]))
	})
	return reduce(v, m.CornersNum(), g.contributions(m.CornersNum()), indexmask.Mask{})
}

func faceToPoint[T any](m *mesh.Mesh, v varray.VArray[T]) varray.VArray[T] {
	vertCorners := m.VertToCornerMap()
	cornerFaces := m.CornerToFaceMap()
	g := gather(func(p int, add func(int)) {
		for _, c := range vertCorners.At(p) {
			add(int(cornerFaces[c]))
		}
	})
	return reduce(v, m.VertsNum(), g.contributions(m.VertsNum()), m.VertsNoFace().Mask)
}

func faceToEdge[T any](m *mesh.Mesh, v varray.VArray[T]) varray.VArray[T] {
	edgeFaces := m.EdgeToFaceMap()
	g := gather(func(e int, add func(int)) {
		for _, f := range edgeFaces.At(e) {
			add(int(f))
		}
	})
	return reduce(v, m.EdgesNum(), g.contributions(m.EdgesNum()), m.LooseEdges().Mask)
}

func faceToCorner[T any](m *mesh.Mesh, v varray.VArray[T]) varray.VArray[T] {
	cornerFaces := m.CornerToFaceMap()
	return broadcast(v, m.CornersNum(), func(c int) int { return int(cornerFaces[c]) })
}

func cornerToPoint[T any](m *mesh.Mesh, v varray.VArray[T]) varray.VArray[T] {
	vertCorners := m.VertToCornerMap()
	g := gather(func(p int, add func(int)) {
		for _, c := range vertCorners.At(p) {
			add(int(c))
		}
	})
	return reduce(v, m.VertsNum(), g.contributions(m.VertsNum()), m.VertsNoFace().Mask)
}

// cornerToEdge mixes the two corners at the ends of every face edge.
func cornerToEdge[T any](m *mesh.Mesh, v varray.VArray[T]) varray.VArray[T] {
	cornerEdges := m.CornerEdges()
	cornerFaces := m.CornerToFaceMap()
	each := contributions(func(add func(dst, src int)) {
		for c, e := range cornerEdges {
			add(int(e), c)
			add(int(e), nextCorner(m, cornerFaces, c))
		}
	})
	return reduce(v, m.EdgesNum(), each, m.LooseEdges().Mask)
}

func cornerToFace[T any](m *mesh.Mesh, v varray.VArray[T]) varray.VArray[T] {
	faces := m.FaceOffsets()
	g := gather(func(f int, add func(int)) {
		faces.At(f).Foreach(add)
	})
	return reduce(v, m.FacesNum(), g.contributions(m.FacesNum()), indexmask.Mask{})
}
