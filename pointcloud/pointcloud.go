// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pointcloud provides a set of points with attributes.
package pointcloud

import (
	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/base/cachemutex"
	"cogentcore.org/geometry/base/slicesx"
	"cogentcore.org/geometry/customdata"
	"cogentcore.org/geometry/generic"
	"cogentcore.org/geometry/math32"
	"cogentcore.org/geometry/varray"
)

const (
	AttrPosition = "position"
	AttrRadius   = "radius"
	AttrID       = "id"
)

// DefaultRadius is the radius of points without a radius attribute.
const DefaultRadius = 0.05

// PointCloud is a set of points.
type PointCloud struct {
	pointsNum int

	PointData customdata.CustomData

	// Attributes holds the active attribute.
	Attributes attribute.EditState

	bounds *cachemutex.Cache[math32.Box3]
}

// New returns a point cloud with n points at the origin.
func New(n int) *PointCloud {
	pc := &PointCloud{pointsNum: n, bounds: &cachemutex.Cache[math32.Box3]{}}
	pc.PointData.CreateLayer(attribute.Named(AttrPosition), attribute.DataTypeFloat3, n, attribute.InitConstruct{})
	return pc
}

func (pc *PointCloud) PointsNum() int { return pc.pointsNum }

func (pc *PointCloud) IsEmpty() bool { return pc == nil || pc.pointsNum == 0 }

// DomainSize returns the number of points for the point domain and 0
// otherwise.
func (pc *PointCloud) DomainSize(domain attribute.Domain) int {
	if domain == attribute.DomainPoint {
		return pc.pointsNum
	}
	return 0
}

// CustomData returns the point layers for the point domain, or nil.
func (pc *PointCloud) CustomData(domain attribute.Domain) *customdata.CustomData {
	if domain == attribute.DomainPoint {
		return &pc.PointData
	}
	return nil
}

func (pc *PointCloud) Positions() []math32.Vector3 {
	return customdata.Get[math32.Vector3](&pc.PointData, AttrPosition)
}

func (pc *PointCloud) PositionsForWrite() []math32.Vector3 {
	pc.TagPositionsChanged()
	return customdata.GetForWrite[math32.Vector3](&pc.PointData, AttrPosition)
}

// Radii returns nil if the points have no radius attribute.
func (pc *PointCloud) Radii() []float32 {
	return customdata.Get[float32](&pc.PointData, AttrRadius)
}

// RadiiForWrite creates the radius attribute with [DefaultRadius] if
// it does not exist.
func (pc *PointCloud) RadiiForWrite() []float32 {
	if !pc.PointData.Has(AttrRadius) {
		radii := slicesx.Filled[float32](pc.pointsNum, DefaultRadius)
		pc.PointData.CreateLayer(attribute.Named(AttrRadius), attribute.DataTypeFloat, pc.pointsNum,
			attribute.InitMoveArray{Array: generic.ArrayOf(radii)})
	}
	pc.TagPositionsChanged()
	return customdata.GetForWrite[float32](&pc.PointData, AttrRadius)
}

// TagPositionsChanged tags the bounds dirty.
func (pc *PointCloud) TagPositionsChanged() {
	pc.bounds.Tag()
}

// Bounds returns the bounding box of the points grown by their radii,
// and false if there are no points.
func (pc *PointCloud) Bounds() (math32.Box3, bool) {
	if pc.IsEmpty() {
		return math32.Box3{}, false
	}
	b := pc.bounds.Get(func(b *math32.Box3) {
		*b = math32.B3Empty()
		radii := varray.ForSingle[float32](DefaultRadius, pc.pointsNum)
		if r := pc.Radii(); r != nil {
			radii = varray.ForSpan(r)
		}
		pos := varray.Virtual(varray.ForSpan(pc.Positions()))
		rad := varray.Virtual(radii)
		varray.DevirtualizeMany(&pos, &rad)
		for i := range pc.pointsNum {
			b.ExpandBySphere(pos.Get(i), rad.Get(i))
		}
	})
	return *b, true
}

// Copy returns a copy sharing the layer arrays until either writes.
func (pc *PointCloud) Copy() *PointCloud {
	return &PointCloud{
		pointsNum:  pc.pointsNum,
		PointData:  *pc.PointData.Copy(),
		Attributes: pc.Attributes,
		bounds:     &cachemutex.Cache[math32.Box3]{},
	}
}
