// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curves

import (
	"cogentcore.org/geometry/attrmath"
	"cogentcore.org/geometry/base/cachemutex"
	"cogentcore.org/geometry/base/debug"
	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/math32"
	"cogentcore.org/geometry/parallel"
)

// runtime holds data derived from the curves, computed on demand.
type runtime struct {
	evaluatedOffsets   cachemutex.Cache[indexmask.Offsets]
	nurbsBasis         cachemutex.Cache[[]BasisCache]
	evaluatedPositions cachemutex.Cache[[]math32.Vector3]
	pointToCurve       cachemutex.Cache[[]int32]
	bounds             cachemutex.Cache[math32.Box3]
}

func newRuntime() *runtime {
	return &runtime{}
}

// TagPositionsChanged tags caches depending on positions dirty.
func (c *Curves) TagPositionsChanged() {
	c.runtime.evaluatedPositions.Tag()
	c.runtime.bounds.Tag()
}

// TagTopologyChanged tags all caches dirty.
func (c *Curves) TagTopologyChanged() {
	r := c.runtime
	r.evaluatedOffsets.Tag()
	r.nurbsBasis.Tag()
	r.pointToCurve.Tag()
	c.TagPositionsChanged()
}

func (c *Curves) evaluatedNum(curve int) int {
	n := c.Points(curve).Size
	cyclic := c.Cyclic(curve)
	switch c.CurveType(curve) {
	case CurveTypeCatmullRom, CurveTypeBezier:
		return EvaluatedNum(n, cyclic, c.Resolution(curve))
	case CurveTypeNurbs:
		if !NurbsValid(n, c.NurbsOrder(curve), cyclic, c.KnotsMode(curve)) {
			return n
		}
		return EvaluatedNum(n, cyclic, c.Resolution(curve))
	}
	return n
}

// EvaluatedOffsets returns the ranges of the evaluated points of
// every curve.
func (c *Curves) EvaluatedOffsets() indexmask.Offsets {
	return *c.runtime.evaluatedOffsets.Get(func(o *indexmask.Offsets) {
		counts := make([]int, c.CurvesNum())
		for i := range counts {
			counts[i] = c.evaluatedNum(i)
		}
		*o = indexmask.OffsetsFromCounts(counts)
	})
}

// EvaluatedPointsNum returns the total number of evaluated points.
func (c *Curves) EvaluatedPointsNum() int {
	return c.EvaluatedOffsets().TotalSize()
}

// NurbsBasisCaches returns the basis cache of every curve. Curves that
// are not NURBS curves have an empty cache.
func (c *Curves) NurbsBasisCaches() []BasisCache {
	return *c.runtime.nurbsBasis.Get(func(caches *[]BasisCache) {
		evaluated := c.EvaluatedOffsets()
		out := make([]BasisCache, c.CurvesNum())
		parallel.For(indexmask.RangeOf(len(out)), 64, func(sub indexmask.Range) {
			sub.Foreach(func(curve int) {
				if c.CurveType(curve) != CurveTypeNurbs {
					return
				}
				n := c.Points(curve).Size
				order := c.NurbsOrder(curve)
				cyclic := c.Cyclic(curve)
				mode := c.KnotsMode(curve)
				if !NurbsValid(n, order, cyclic, mode) {
					out[curve].Invalid = true
					return
				}
				knots := make([]float32, KnotsNum(n, order, cyclic))
				CalculateKnots(n, mode, order, cyclic, knots)
				CalculateBasisCache(n, evaluated.At(curve).Size, order, cyclic, knots, &out[curve])
			})
		})
		*caches = out
	})
}

// InterpolateToEvaluated evaluates the point values src of one curve
// into dst, which has the size of the curve's evaluated range. Poly
// curves copy the values.
func InterpolateToEvaluated[T any](c *Curves, curve int, src, dst []T) {
	debug.Assert(len(dst) == c.EvaluatedOffsets().At(curve).Size, "curves: %d evaluated values for curve %d", len(dst), curve)
	ct := c.CurveType(curve)
	if ct == CurveTypePoly {
		copy(dst, src)
		return
	}
	ip, ok := attrmath.NewInterpolator[T]()
	if !ok {
		copy(dst, src)
		return
	}
	cyclic := c.Cyclic(curve)
	switch ct {
	case CurveTypeCatmullRom:
		InterpolateCatmullRom(ip, src, cyclic, c.Resolution(curve), dst)
	case CurveTypeBezier:
		InterpolateLinear(ip, src, cyclic, c.Resolution(curve), dst)
	case CurveTypeNurbs:
		cache := &c.NurbsBasisCaches()[curve]
		var weights []float32
		if w := c.NurbsWeights(); w != nil {
			r := c.Points(curve)
			weights = w[r.Start:r.End()]
		}
		InterpolateNurbs(ip, cache, c.NurbsOrder(curve), weights, src, dst)
	}
}

// InterpolateAllToEvaluated evaluates point values of all curves.
func InterpolateAllToEvaluated[T any](c *Curves, src []T) []T {
	evaluated := c.EvaluatedOffsets()
	dst := make([]T, evaluated.TotalSize())
	c.NurbsBasisCaches()
	parallel.For(indexmask.RangeOf(c.CurvesNum()), 128, func(sub indexmask.Range) {
		sub.Foreach(func(curve int) {
			p := c.Points(curve)
			e := evaluated.At(curve)
			InterpolateToEvaluated(c, curve, src[p.Start:p.End()], dst[e.Start:e.End()])
		})
	})
	return dst
}

// EvaluatedPositions returns the positions of the evaluated points.
// Bezier curves use their handles.
func (c *Curves) EvaluatedPositions() []math32.Vector3 {
	return *c.runtime.evaluatedPositions.Get(func(out *[]math32.Vector3) {
		positions := c.Positions()
		evaluated := c.EvaluatedOffsets()
		c.NurbsBasisCaches()
		left, right := c.HandlePositionsLeft(), c.HandlePositionsRight()
		dst := make([]math32.Vector3, evaluated.TotalSize())
		parallel.For(indexmask.RangeOf(c.CurvesNum()), 128, func(sub indexmask.Range) {
			sub.Foreach(func(curve int) {
				p := c.Points(curve)
				e := evaluated.At(curve)
				if c.CurveType(curve) != CurveTypeBezier {
					InterpolateToEvaluated(c, curve, positions[p.Start:p.End()], dst[e.Start:e.End()])
					return
				}
				var l, r []math32.Vector3
				if left != nil {
					l = left[p.Start:p.End()]
				}
				if right != nil {
					r = right[p.Start:p.End()]
				}
				EvaluateBezier(positions[p.Start:p.End()], l, r, c.Cyclic(curve), c.Resolution(curve), dst[e.Start:e.End()])
			})
		})
		*out = dst
	})
}

// PointToCurveMap returns the curve of every point.
func (c *Curves) PointToCurveMap() []int32 {
	return *c.runtime.pointToCurve.Get(func(out *[]int32) {
		res := make([]int32, c.PointsNum())
		for curve := range c.CurvesNum() {
			c.Points(curve).Foreach(func(i int) {
				res[i] = int32(curve)
			})
		}
		*out = res
	})
}

// Bounds returns the bounding box of the evaluated positions, and
// false if there are no points.
func (c *Curves) Bounds() (math32.Box3, bool) {
	if c.IsEmpty() {
		return math32.Box3{}, false
	}
	b := c.runtime.bounds.Get(func(b *math32.Box3) {
		*b = math32.B3Empty()
		b.ExpandByPoints(c.EvaluatedPositions())
	})
	return *b, true
}
