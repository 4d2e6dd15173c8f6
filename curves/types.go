// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curves

// CurveType is the interpolation used to evaluate a curve.
type CurveType int8

const (
	CurveTypeCatmullRom CurveType = iota
	CurveTypePoly
	CurveTypeBezier
	CurveTypeNurbs

	CurveTypeN
)

var curveTypeNames = [...]string{"catmull_rom", "poly", "bezier", "nurbs"}

func (t CurveType) String() string {
	if t < 0 || t >= CurveTypeN {
		return "unknown"
	}
	return curveTypeNames[t]
}

// KnotsMode selects how the knot vector of a NURBS curve is generated.
type KnotsMode int8

const (
	// KnotsNormal spaces knots uniformly.
	KnotsNormal KnotsMode = iota

	// KnotsEndpoint repeats the end knots so that the curve touches
	// its first and last points.
	KnotsEndpoint

	// KnotsBezier repeats inner knots so that segments behave like
	// Bezier segments.
	KnotsBezier

	KnotsEndpointBezier

	KnotsModeN
)

var knotsModeNames = [...]string{"normal", "endpoint", "bezier", "endpoint_bezier"}

func (m KnotsMode) String() string {
	if m < 0 || m >= KnotsModeN {
		return "unknown"
	}
	return knotsModeNames[m]
}

func (m KnotsMode) isBezier() bool {
	return m == KnotsBezier || m == KnotsEndpointBezier
}

func (m KnotsMode) isEndpoint() bool {
	return m == KnotsEndpoint || m == KnotsEndpointBezier
}

// segmentsNum returns the number of segments between n points.
func segmentsNum(n int, cyclic bool) int {
	if cyclic {
		return n
	}
	return n - 1
}
