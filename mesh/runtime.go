// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/geometry/base/cachemutex"
	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/math32"
	"cogentcore.org/geometry/parallel"
)

// LooseElements marks the elements of a domain that are not used by
// another domain.
type LooseElements struct {
	// Count is the number of loose elements.
	Count int

	// IsLoose is nil when Count is 0.
	IsLoose []bool

	// Mask selects the loose elements.
	Mask indexmask.Mask
}

// Loose returns whether element i is loose.
func (l *LooseElements) Loose(i int) bool {
	return l.Count > 0 && l.IsLoose[i]
}

// GroupedIndices maps each element of a domain to a group of
// element indexes of another domain.
type GroupedIndices struct {
	Offsets indexmask.Offsets
	Indices []int32
}

// At returns the group of element i.
func (g *GroupedIndices) At(i int) []int32 {
	r := g.Offsets.At(i)
	return g.Indices[r.Start:r.End()]
}

// runtime holds data derived from the mesh, computed on demand.
type runtime struct {
	looseVerts   cachemutex.Cache[LooseElements]
	vertsNoFace  cachemutex.Cache[LooseElements]
	looseEdges   cachemutex.Cache[LooseElements]
	cornerToFace cachemutex.Cache[[]int32]
	vertToCorner cachemutex.Cache[GroupedIndices]
	edgeToFace   cachemutex.Cache[GroupedIndices]
	bounds       cachemutex.Cache[math32.Box3]
}

func newRuntime() *runtime {
	return &runtime{}
}

// TagPositionsChanged tags caches depending on positions dirty.
func (m *Mesh) TagPositionsChanged() {
	m.runtime.bounds.Tag()
}

// TagTopologyChanged tags all caches dirty.
func (m *Mesh) TagTopologyChanged() {
	r := m.runtime
	r.looseVerts.Tag()
	r.vertsNoFace.Tag()
	r.looseEdges.Tag()
	r.cornerToFace.Tag()
	r.vertToCorner.Tag()
	r.edgeToFace.Tag()
	r.bounds.Tag()
}

func looseFromUsed(used []bool) LooseElements {
	var l LooseElements
	for _, u := range used {
		if !u {
			l.Count++
		}
	}
	if l.Count == 0 {
		return l
	}
	l.IsLoose = make([]bool, len(used))
	for i, u := range used {
		l.IsLoose[i] = !u
	}
	l.Mask = indexmask.FromBools(l.IsLoose)
	return l
}

// LooseVerts returns the vertices not used by any edge.
func (m *Mesh) LooseVerts() *LooseElements {
	return m.runtime.looseVerts.Get(func(l *LooseElements) {
		used := make([]bool, m.vertsNum)
		for _, e := range m.EdgeVerts() {
			used[e.X] = true
			used[e.Y] = true
		}
		*l = looseFromUsed(used)
	})
}

// VertsNoFace returns the vertices not used by any face.
func (m *Mesh) VertsNoFace() *LooseElements {
	return m.runtime.vertsNoFace.Get(func(l *LooseElements) {
		used := make([]bool, m.vertsNum)
		for _, v := range m.CornerVerts() {
			used[v] = true
		}
		*l = looseFromUsed(used)
	})
}

// LooseEdges returns the edges not used by any face.
func (m *Mesh) LooseEdges() *LooseElements {
	return m.runtime.looseEdges.Get(func(l *LooseElements) {
		used := make([]bool, m.edgesNum)
		for _, e := range m.CornerEdges() {
			used[e] = true
		}
		*l = looseFromUsed(used)
	})
}

// CornerToFaceMap returns the face of every corner.
func (m *Mesh) CornerToFaceMap() []int32 {
	return *m.runtime.cornerToFace.Get(func(out *[]int32) {
		faces := m.faceOffsets
		res := make([]int32, m.CornersNum())
		parallel.For(indexmask.RangeOf(faces.Size()), 1024, func(sub indexmask.Range) {
			sub.Foreach(func(f int) {
				r := faces.At(f)
				for c := r.Start; c < r.End(); c++ {
					res[c] = int32(f)
				}
			})
		})
		*out = res
	})
}

// group builds a GroupedIndices with size groups from the group of
// each source element.
func group(size int, groupOf []int32) GroupedIndices {
	counts := make([]int, size)
	for _, g := range groupOf {
		counts[g]++
	}
	offsets := indexmask.OffsetsFromCounts(counts)
	indices := make([]int32, len(groupOf))
	fill := make([]int, size)
	for i, g := range groupOf {
		indices[offsets.At(int(g)).Start+fill[g]] = int32(i)
		fill[g]++
	}
	return GroupedIndices{Offsets: offsets, Indices: indices}
}

// VertToCornerMap returns the corners of every vertex.
func (m *Mesh) VertToCornerMap() *GroupedIndices {
	return m.runtime.vertToCorner.Get(func(g *GroupedIndices) {
		*g = group(m.vertsNum, m.CornerVerts())
	})
}

// EdgeToFaceMap returns the faces using every edge.
func (m *Mesh) EdgeToFaceMap() *GroupedIndices {
	return m.runtime.edgeToFace.Get(func(g *GroupedIndices) {
		corners := group(m.edgesNum, m.CornerEdges())
		cornerFaces := m.CornerToFaceMap()
		for i, c := range corners.Indices {
			corners.Indices[i] = cornerFaces[c]
		}
		*g = corners
	})
}

// Bounds returns the bounding box of the positions, and false if the
// mesh has no vertices.
func (m *Mesh) Bounds() (math32.Box3, bool) {
	if m.IsEmpty() {
		return math32.Box3{}, false
	}
	b := m.runtime.bounds.Get(func(b *math32.Box3) {
		*b = math32.B3Empty()
		b.ExpandByPoints(m.Positions())
	})
	return *b, true
}
