// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/curves"
	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/parallel"
	"cogentcore.org/geometry/varray"
)

// AdaptCurveDomain converts values between the point and curve
// domains. Point values are averaged per curve, booleans with an AND;
// a curve without points gets false or the zero value. Curve values
// are copied to their points.
func AdaptCurveDomain(c *curves.Curves, v varray.GVArray, from, to attribute.Domain) varray.GVArray {
	if !v.Valid() || v.IsEmpty() {
		return varray.GVArray{}
	}
	if from == to {
		return v
	}
	if c == nil || v.Size() != c.DomainSize(from) {
		return varray.GVArray{}
	}
	a := adapterFor(v)
	if a == nil {
		return varray.GVArray{}
	}
	return a.curves(c, v, from, to)
}

func adaptCurves[T any](c *curves.Curves, v varray.VArray[T], from, to attribute.Domain) varray.VArray[T] {
	switch {
	case from == attribute.DomainPoint && to == attribute.DomainCurve:
		return pointToCurve(c, v)
	case from == attribute.DomainCurve && to == attribute.DomainPoint:
		return curveToPoint(c, v)
	}
	return varray.VArray[T]{}
}

func pointToCurve[T any](c *curves.Curves, v varray.VArray[T]) varray.VArray[T] {
	g := gather(func(curve int, add func(int)) {
		c.Points(curve).Foreach(add)
	})
	empty := indexmask.FromPredicate(indexmask.FromSize(c.CurvesNum()), func(curve int) bool {
		return c.Points(curve).IsEmpty()
	})
	return reduce(v, c.CurvesNum(), g.contributions(c.CurvesNum()), empty)
}

func curveToPoint[T any](c *curves.Curves, v varray.VArray[T]) varray.VArray[T] {
	if v.IsSingle() {
		return varray.ForSingle(v.InternalSingle(), c.PointsNum())
	}
	out := make([]T, c.PointsNum())
	parallel.For(indexmask.RangeOf(c.CurvesNum()), 256, func(sub indexmask.Range) {
		varray.Foreach(v, indexmask.FromRange(sub), func(curve int, value T) {
			r := c.Points(curve)
			for i := r.Start; i < r.End(); i++ {
				out[i] = value
			}
		})
	})
	return varray.ForContainer(out)
}

// AdaptCurvesToEvaluated interpolates point values to the evaluated
// points of the curves, following the type of every curve.
func AdaptCurvesToEvaluated(c *curves.Curves, v varray.GVArray) varray.GVArray {
	if !v.Valid() || c == nil || v.Size() != c.PointsNum() {
		return varray.GVArray{}
	}
	e := evaluators()[v.Type()]
	if e == nil {
		return varray.GVArray{}
	}
	return e(c, v)
}
