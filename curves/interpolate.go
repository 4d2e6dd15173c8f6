// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curves

import (
	"cogentcore.org/geometry/attrmath"
	"cogentcore.org/geometry/math32"
)

// EvaluatedNum returns the number of evaluated points of a segmented
// curve with the given resolution.
func EvaluatedNum(pointsNum int, cyclic bool, resolution int) int {
	if pointsNum <= 1 {
		return pointsNum
	}
	n := resolution * segmentsNum(pointsNum, cyclic)
	if cyclic {
		return n
	}
	return n + 1
}

// catmullRomBasis returns the weights of the four control points at
// parameter t of a uniform Catmull-Rom segment.
func catmullRomBasis(t float32) [4]float32 {
	t2 := t * t
	t3 := t2 * t
	return [4]float32{
		0.5 * (-t3 + 2*t2 - t),
		0.5 * (3*t3 - 5*t2 + 2),
		0.5 * (-3*t3 + 4*t2 + t),
		0.5 * (t3 - t2),
	}
}

// pointIndex wraps i for cyclic curves and clamps it otherwise.
func pointIndex(i, n int, cyclic bool) int {
	if cyclic {
		return ((i % n) + n) % n
	}
	return min(max(i, 0), n-1)
}

// InterpolateCatmullRom evaluates a Catmull-Rom curve. dst must have
// [EvaluatedNum] elements. The ends of non-cyclic curves repeat the
// end points.
func InterpolateCatmullRom[T any](ip attrmath.Interpolator[T], src []T, cyclic bool, resolution int, dst []T) {
	n := len(src)
	if n <= 1 {
		copy(dst, src)
		return
	}
	segments := segmentsNum(n, cyclic)
	for s := range segments {
		a := src[pointIndex(s-1, n, cyclic)]
		b := src[s]
		c := src[pointIndex(s+1, n, cyclic)]
		d := src[pointIndex(s+2, n, cyclic)]
		dst[s*resolution] = b
		for r := 1; r < resolution; r++ {
			dst[s*resolution+r] = ip.Mix4(catmullRomBasis(float32(r)/float32(resolution)), a, b, c, d)
		}
	}
	if !cyclic {
		dst[len(dst)-1] = src[n-1]
	}
}

// InterpolateLinear evaluates values linearly along each segment.
// It is used for the attributes of Bezier curves other than positions.
func InterpolateLinear[T any](ip attrmath.Interpolator[T], src []T, cyclic bool, resolution int, dst []T) {
	n := len(src)
	if n <= 1 {
		copy(dst, src)
		return
	}
	for s := range segmentsNum(n, cyclic) {
		a, b := src[s], src[pointIndex(s+1, n, cyclic)]
		dst[s*resolution] = a
		for r := 1; r < resolution; r++ {
			dst[s*resolution+r] = ip.Mix2(float32(r)/float32(resolution), a, b)
		}
	}
	if !cyclic {
		dst[len(dst)-1] = src[n-1]
	}
}

// EvaluateBezierSegment samples the cubic segment from p0 to p3 with
// handles p1 and p2 at resolution points, excluding p3.
func EvaluateBezierSegment(p0, p1, p2, p3 math32.Vector3, dst []math32.Vector3) {
	res := len(dst)
	for r := range res {
		t := float32(r) / float32(res)
		u := 1 - t
		dst[r] = p0.MulScalar(u * u * u).
			Add(p1.MulScalar(3 * u * u * t)).
			Add(p2.MulScalar(3 * u * t * t)).
			Add(p3.MulScalar(t * t * t))
	}
}

// EvaluateBezier evaluates the positions of a Bezier curve. A nil
// handle slice uses the point positions, giving straight segments.
func EvaluateBezier(positions, left, right []math32.Vector3, cyclic bool, resolution int, dst []math32.Vector3) {
	n := len(positions)
	if n <= 1 {
		copy(dst, positions)
		return
	}
	if left == nil {
		left = positions
	}
	if right == nil {
		right = positions
	}
	for s := range segmentsNum(n, cyclic) {
		next := pointIndex(s+1, n, cyclic)
		EvaluateBezierSegment(positions[s], right[s], left[next], positions[next], dst[s*resolution:(s+1)*resolution])
	}
	if !cyclic {
		dst[len(dst)-1] = positions[n-1]
	}
}
