// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 is an axis aligned bounding box. An empty box has Min above Max.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3Empty returns an empty box, which any expansion replaces.
func B3Empty() Box3 {
	return Box3{Min: Vector3Scalar(Infinity), Max: Vector3Scalar(-Infinity)}
}

func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

func (b *Box3) ExpandByPoint(p Vector3) {
	b.Min.SetMin(p)
	b.Max.SetMax(p)
}

func (b *Box3) ExpandByPoints(points []Vector3) {
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// ExpandBySphere expands the box to contain the sphere around center.
func (b *Box3) ExpandBySphere(center Vector3, radius float32) {
	b.ExpandByPoint(center.AddScalar(-radius))
	b.ExpandByPoint(center.AddScalar(radius))
}

// Union returns the smallest box containing b and other. Empty boxes
// are ignored.
func (b Box3) Union(other Box3) Box3 {
	if other.IsEmpty() {
		return b
	}
	b.ExpandByPoint(other.Min)
	b.ExpandByPoint(other.Max)
	return b
}

// Transform returns the bounding box of the corners of b moved by m.
func (b Box3) Transform(m *Matrix4) Box3 {
	if b.IsEmpty() {
		return b
	}
	out := B3Empty()
	for i := range 8 {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		out.ExpandByPoint(m.MulVector3AsPoint(c))
	}
	return out
}

func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

func (b Box3) ContainsPoint(p Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
