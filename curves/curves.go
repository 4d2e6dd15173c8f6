// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curves provides a set of curves storing attributes on
// control points and on curves, and their evaluation to polylines.
package curves

import (
	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/base/slicesx"
	"cogentcore.org/geometry/customdata"
	"cogentcore.org/geometry/generic"
	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/math32"
)

// Names of the attributes with a meaning for curve evaluation.
const (
	AttrPosition    = "position"
	AttrRadius      = "radius"
	AttrTilt        = "tilt"
	AttrHandleLeft  = "handle_left"
	AttrHandleRight = "handle_right"
	AttrNurbsWeight = "nurbs_weight"
	AttrCurveType   = "curve_type"
	AttrNurbsOrder  = "nurbs_order"
	AttrKnotsMode   = "knots_mode"
	AttrResolution  = "resolution"
	AttrCyclic      = "cyclic"
	AttrID          = "id"
)

// Defaults of curve attributes that are not stored.
const (
	DefaultResolution = 12
	DefaultNurbsOrder = 4
	DefaultRadius     = 1
)

// Curves is a set of curves. The control points of curve i are the
// range i of the curve offsets.
type Curves struct {
	curveOffsets indexmask.Offsets

	PointData customdata.CustomData
	CurveData customdata.CustomData

	// Attributes holds the active attribute.
	Attributes attribute.EditState

	runtime *runtime
}

// New returns curves with the given numbers of points. Positions are
// zero and all curves are poly curves.
func New(pointCounts []int) *Curves {
	c := &Curves{
		curveOffsets: indexmask.OffsetsFromCounts(pointCounts),
		runtime:      newRuntime(),
	}
	c.PointData.CreateLayer(attribute.Named(AttrPosition), attribute.DataTypeFloat3, c.PointsNum(), attribute.InitConstruct{})
	return c
}

func (c *Curves) PointsNum() int { return c.curveOffsets.TotalSize() }
func (c *Curves) CurvesNum() int { return c.curveOffsets.Size() }

// IsEmpty returns whether there are no points.
func (c *Curves) IsEmpty() bool { return c == nil || c.PointsNum() == 0 }

// Points returns the control point range of a curve.
func (c *Curves) Points(curve int) indexmask.Range { return c.curveOffsets.At(curve) }

func (c *Curves) CurveOffsets() indexmask.Offsets { return c.curveOffsets }

// DomainSize returns the number of points or curves, or 0 for other
// domains.
func (c *Curves) DomainSize(domain attribute.Domain) int {
	switch domain {
	case attribute.DomainPoint:
		return c.PointsNum()
	case attribute.DomainCurve:
		return c.CurvesNum()
	}
	return 0
}

// CustomData returns the layers of a domain, or nil.
func (c *Curves) CustomData(domain attribute.Domain) *customdata.CustomData {
	switch domain {
	case attribute.DomainPoint:
		return &c.PointData
	case attribute.DomainCurve:
		return &c.CurveData
	}
	return nil
}

func (c *Curves) Positions() []math32.Vector3 {
	return customdata.Get[math32.Vector3](&c.PointData, AttrPosition)
}

// PositionsForWrite returns the positions for writing and tags the
// evaluated positions dirty.
func (c *Curves) PositionsForWrite() []math32.Vector3 {
	c.TagPositionsChanged()
	return customdata.GetForWrite[math32.Vector3](&c.PointData, AttrPosition)
}

// layerForWrite returns a layer for writing, creating it
// filled with value if it does not exist.
func layerForWrite[T any](cd *customdata.CustomData, name string, size int, value T) []T {
	if !cd.Has(name) {
		dt, _ := attribute.DataTypeFor[T]()
		cd.AddLayer(attribute.Named(name), dt, generic.ArrayOf(slicesx.Filled(size, value)))
	}
	return customdata.GetForWrite[T](cd, name)
}

func (c *Curves) HandlePositionsLeft() []math32.Vector3 {
	return customdata.Get[math32.Vector3](&c.PointData, AttrHandleLeft)
}

func (c *Curves) HandlePositionsRight() []math32.Vector3 {
	return customdata.Get[math32.Vector3](&c.PointData, AttrHandleRight)
}

// HandlePositionsLeftForWrite creates the left handles at the point
// positions if they do not exist.
func (c *Curves) HandlePositionsLeftForWrite() []math32.Vector3 {
	c.TagPositionsChanged()
	return c.handlesForWrite(AttrHandleLeft)
}

func (c *Curves) HandlePositionsRightForWrite() []math32.Vector3 {
	c.TagPositionsChanged()
	return c.handlesForWrite(AttrHandleRight)
}

func (c *Curves) handlesForWrite(name string) []math32.Vector3 {
	if !c.PointData.Has(name) {
		c.PointData.AddLayer(attribute.Named(name), attribute.DataTypeFloat3, generic.ArrayOf(append([]math32.Vector3(nil), c.Positions()...)))
	}
	return customdata.GetForWrite[math32.Vector3](&c.PointData, name)
}

// NurbsWeights returns nil when all weights are 1.
func (c *Curves) NurbsWeights() []float32 {
	return customdata.Get[float32](&c.PointData, AttrNurbsWeight)
}

func (c *Curves) NurbsWeightsForWrite() []float32 {
	c.TagPositionsChanged()
	return layerForWrite(&c.PointData, AttrNurbsWeight, c.PointsNum(), float32(1))
}

// Radii returns nil when all radii have the default value.
func (c *Curves) Radii() []float32 {
	return customdata.Get[float32](&c.PointData, AttrRadius)
}

func (c *Curves) RadiiForWrite() []float32 {
	return layerForWrite(&c.PointData, AttrRadius, c.PointsNum(), float32(DefaultRadius))
}

func curveValue[T any](c *Curves, name string, curve int, def T) T {
	if v := customdata.Get[T](&c.CurveData, name); v != nil {
		return v[curve]
	}
	return def
}

// CurveType returns the type of a curve.
func (c *Curves) CurveType(curve int) CurveType {
	return CurveType(curveValue(c, AttrCurveType, curve, int8(CurveTypePoly)))
}

func (c *Curves) CurveTypesForWrite() []int8 {
	c.TagTopologyChanged()
	return layerForWrite(&c.CurveData, AttrCurveType, c.CurvesNum(), int8(CurveTypePoly))
}

// Cyclic returns whether the last point of a curve connects to the first.
func (c *Curves) Cyclic(curve int) bool {
	return curveValue(c, AttrCyclic, curve, false)
}

func (c *Curves) CyclicForWrite() []bool {
	c.TagTopologyChanged()
	return layerForWrite(&c.CurveData, AttrCyclic, c.CurvesNum(), false)
}

// Resolution returns the number of evaluated points per segment, at
// least 1.
func (c *Curves) Resolution(curve int) int {
	return max(1, int(curveValue(c, AttrResolution, curve, int32(DefaultResolution))))
}

func (c *Curves) ResolutionsForWrite() []int32 {
	c.TagTopologyChanged()
	return layerForWrite(&c.CurveData, AttrResolution, c.CurvesNum(), int32(DefaultResolution))
}

// NurbsOrder returns the order of a NURBS curve, at least 1.
func (c *Curves) NurbsOrder(curve int) int {
	return max(1, int(curveValue(c, AttrNurbsOrder, curve, int8(DefaultNurbsOrder))))
}

func (c *Curves) NurbsOrdersForWrite() []int8 {
	c.TagTopologyChanged()
	return layerForWrite(&c.CurveData, AttrNurbsOrder, c.CurvesNum(), int8(DefaultNurbsOrder))
}

func (c *Curves) KnotsMode(curve int) KnotsMode {
	return KnotsMode(curveValue(c, AttrKnotsMode, curve, int8(KnotsNormal)))
}

func (c *Curves) KnotsModesForWrite() []int8 {
	c.TagTopologyChanged()
	return layerForWrite(&c.CurveData, AttrKnotsMode, c.CurvesNum(), int8(KnotsNormal))
}

// Copy returns a copy sharing the layer arrays until either writes.
func (c *Curves) Copy() *Curves {
	return &Curves{
		curveOffsets: c.curveOffsets.Clone(),
		PointData:    *c.PointData.Copy(),
		CurveData:    *c.CurveData.Copy(),
		Attributes:   c.Attributes,
		runtime:      newRuntime(),
	}
}
