// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides a polygon mesh storing its attributes in
// custom data layers on four domains: vertices (points), edges,
// faces and face corners. Topology is stored as attributes too:
// the vertices of each edge, and the vertex and edge of each corner.
package mesh

import (
	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/customdata"
	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/math32"
)

// Names of the attributes the mesh uses for its own data.
const (
	AttrPosition      = "position"
	AttrEdgeVerts     = ".edge_verts"
	AttrCornerVert    = ".corner_vert"
	AttrCornerEdge    = ".corner_edge"
	AttrMaterialIndex = "material_index"
	AttrSharpFace     = "sharp_face"
	AttrSharpEdge     = "sharp_edge"
	AttrID            = "id"
)

// Mesh is a polygon mesh. Each face is a cycle of corners given by the
// face offsets; corner i belongs to one vertex and to the edge from
// that vertex to the vertex of the next corner of the face.
type Mesh struct {
	vertsNum int
	edgesNum int

	faceOffsets indexmask.Offsets

	VertData   customdata.CustomData
	EdgeData   customdata.CustomData
	FaceData   customdata.CustomData
	CornerData customdata.CustomData

	// Attributes holds the active attribute and the active and
	// default color attribute names.
	Attributes attribute.EditState

	runtime *runtime
}

// New returns a mesh with the given number of vertices and edges and
// a face for each size in faceSizes. Positions and topology are zero.
func New(vertsNum, edgesNum int, faceSizes []int) *Mesh {
	m := &Mesh{
		vertsNum:    vertsNum,
		edgesNum:    edgesNum,
		faceOffsets: indexmask.OffsetsFromCounts(faceSizes),
		runtime:     newRuntime(),
	}
	corners := m.faceOffsets.TotalSize()
	m.VertData.CreateLayer(attribute.Named(AttrPosition), attribute.DataTypeFloat3, vertsNum, attribute.InitConstruct{})
	m.EdgeData.CreateLayer(attribute.Named(AttrEdgeVerts), attribute.DataTypeInt2, edgesNum, attribute.InitConstruct{})
	m.CornerData.CreateLayer(attribute.Named(AttrCornerVert), attribute.DataTypeInt32, corners, attribute.InitConstruct{})
	m.CornerData.CreateLayer(attribute.Named(AttrCornerEdge), attribute.DataTypeInt32, corners, attribute.InitConstruct{})
	return m
}

// FromPolygons returns a mesh with the given vertex positions and faces,
// each face a list of vertex indexes. Edges are created for every pair
// of consecutive face vertices, shared between faces.
func FromPolygons(positions []math32.Vector3, faces [][]int) *Mesh {
	sizes := make([]int, len(faces))
	for i, f := range faces {
		sizes[i] = len(f)
	}
	type edgeKey struct{ a, b int32 }
	edgeIndex := map[edgeKey]int32{}
	var edges []math32.Int2
	cornerEdges := make([]int32, 0)
	for _, f := range faces {
		for i, v := range f {
			a, b := int32(v), int32(f[(i+1)%len(f)])
			k := edgeKey{min(a, b), max(a, b)}
			e, ok := edgeIndex[k]
			if !ok {
				e = int32(len(edges))
				edgeIndex[k] = e
				edges = append(edges, math32.Int2{X: a, Y: b})
			}
			cornerEdges = append(cornerEdges, e)
		}
	}
	m := New(len(positions), len(edges), sizes)
	copy(m.PositionsForWrite(), positions)
	copy(m.EdgeVertsForWrite(), edges)
	copy(m.CornerEdgesForWrite(), cornerEdges)
	cv := m.CornerVertsForWrite()
	c := 0
	for _, f := range faces {
		for _, v := range f {
			cv[c] = int32(v)
			c++
		}
	}
	return m
}

func (m *Mesh) VertsNum() int   { return m.vertsNum }
func (m *Mesh) EdgesNum() int   { return m.edgesNum }
func (m *Mesh) FacesNum() int   { return m.faceOffsets.Size() }
func (m *Mesh) CornersNum() int { return m.faceOffsets.TotalSize() }

// IsEmpty returns whether the mesh has no vertices.
func (m *Mesh) IsEmpty() bool { return m == nil || m.vertsNum == 0 }

// DomainSize returns the number of elements in a mesh domain, or 0 for
// domains meshes do not have.
func (m *Mesh) DomainSize(domain attribute.Domain) int {
	switch domain {
	case attribute.DomainPoint:
		return m.vertsNum
	case attribute.DomainEdge:
		return m.edgesNum
	case attribute.DomainFace:
		return m.FacesNum()
	case attribute.DomainCorner:
		return m.CornersNum()
	}
	return 0
}

// CustomData returns the layers of a domain, or nil.
func (m *Mesh) CustomData(domain attribute.Domain) *customdata.CustomData {
	switch domain {
	case attribute.DomainPoint:
		return &m.VertData
	case attribute.DomainEdge:
		return &m.EdgeData
	case attribute.DomainFace:
		return &m.FaceData
	case attribute.DomainCorner:
		return &m.CornerData
	}
	return nil
}

// FaceOffsets returns the corner ranges of the faces.
func (m *Mesh) FaceOffsets() indexmask.Offsets { return m.faceOffsets }

func (m *Mesh) Positions() []math32.Vector3 {
	return customdata.Get[math32.Vector3](&m.VertData, AttrPosition)
}

// PositionsForWrite returns the positions for writing and tags the
// position dependent caches dirty.
func (m *Mesh) PositionsForWrite() []math32.Vector3 {
	m.TagPositionsChanged()
	return customdata.GetForWrite[math32.Vector3](&m.VertData, AttrPosition)
}

func (m *Mesh) EdgeVerts() []math32.Int2 {
	return customdata.Get[math32.Int2](&m.EdgeData, AttrEdgeVerts)
}

func (m *Mesh) EdgeVertsForWrite() []math32.Int2 {
	m.TagTopologyChanged()
	return customdata.GetForWrite[math32.Int2](&m.EdgeData, AttrEdgeVerts)
}

func (m *Mesh) CornerVerts() []int32 {
	return customdata.Get[int32](&m.CornerData, AttrCornerVert)
}

func (m *Mesh) CornerVertsForWrite() []int32 {
	m.TagTopologyChanged()
	return customdata.GetForWrite[int32](&m.CornerData, AttrCornerVert)
}

func (m *Mesh) CornerEdges() []int32 {
	return customdata.Get[int32](&m.CornerData, AttrCornerEdge)
}

func (m *Mesh) CornerEdgesForWrite() []int32 {
	m.TagTopologyChanged()
	return customdata.GetForWrite[int32](&m.CornerData, AttrCornerEdge)
}

// MaterialIndexes returns the material index of every face, or nil.
func (m *Mesh) MaterialIndexes() []int32 {
	return customdata.Get[int32](&m.FaceData, AttrMaterialIndex)
}

// Copy returns a copy of the mesh sharing the layer arrays until
// either mesh writes to them. Caches are not shared.
func (m *Mesh) Copy() *Mesh {
	return &Mesh{
		vertsNum:    m.vertsNum,
		edgesNum:    m.edgesNum,
		faceOffsets: m.faceOffsets.Clone(),
		VertData:    *m.VertData.Copy(),
		EdgeData:    *m.EdgeData.Copy(),
		FaceData:    *m.FaceData.Copy(),
		CornerData:  *m.CornerData.Copy(),
		Attributes:  m.Attributes,
		runtime:     newRuntime(),
	}
}
