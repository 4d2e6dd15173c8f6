// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curves

import "cogentcore.org/geometry/attrmath"

// NurbsValid returns whether a NURBS curve with these settings can be
// evaluated. Invalid curves are evaluated as poly curves.
func NurbsValid(pointsNum, order int, cyclic bool, mode KnotsMode) bool {
	if pointsNum < order || order < 1 {
		return false
	}
	if mode.isBezier() {
		if mode == KnotsBezier && pointsNum <= order {
			return false
		}
		return !cyclic || order == 1 || pointsNum%(order-1) == 0
	}
	return true
}

// KnotsNum returns the size of the knot vector.
func KnotsNum(pointsNum, order int, cyclic bool) int {
	if cyclic {
		return pointsNum + order*2 - 1
	}
	return pointsNum + order
}

// CalculateKnots fills knots, of size [KnotsNum], for the given mode.
func CalculateKnots(pointsNum int, mode KnotsMode, order int, cyclic bool, knots []float32) {
	repeatInner := 1
	if mode.isBezier() {
		repeatInner = order - 1
	}
	head := 1
	switch {
	case mode.isEndpoint():
		head = order
		if cyclic {
			head--
		}
	case mode.isBezier():
		head = min(2, repeatInner)
	}
	tail := 0
	switch {
	case cyclic:
		tail = 2*order - 1
	case mode.isEndpoint():
		tail = order
	}

	r := head
	current := float32(0)
	offset := 0
	if mode.isEndpoint() && cyclic {
		offset = 1
		knots[0] = current
		current++
	}
	for i := offset; i < len(knots)-tail; i++ {
		knots[i] = current
		r--
		if r == 0 {
			current++
			r = repeatInner
		}
	}
	tailIndex := len(knots) - tail
	for i := range tail {
		knots[tailIndex+i] = current + (knots[i] - knots[0])
	}
}

// BasisCache holds the non-zero basis function weights of every
// evaluated point of a NURBS curve.
type BasisCache struct {
	// Weights has order weights per evaluated point.
	Weights []float32

	// StartIndices is the first control point of each evaluated point.
	// Indexes past the last point wrap around for cyclic curves.
	StartIndices []int

	// Invalid is set when the curve cannot be evaluated as a NURBS
	// curve and is evaluated as a poly curve instead.
	Invalid bool
}

// basis computes the order non-zero basis functions at u into weights
// and returns the index of the first one.
func basis(u float32, degree int, knots []float32, last int, weights []float32) int {
	// find the knot span containing u, ignoring zero length spans
	span := degree
	for i := degree; i < last; i++ {
		if knots[i] == knots[i+1] {
			continue
		}
		span = i
		if u < knots[i+1] {
			break
		}
	}

	left := make([]float32, degree+1)
	right := make([]float32, degree+1)
	weights[0] = 1
	for j := 1; j <= degree; j++ {
		left[j] = u - knots[span+1-j]
		right[j] = knots[span+j] - u
		saved := float32(0)
		for r := range j {
			den := right[r+1] + left[j-r]
			tmp := float32(0)
			if den != 0 {
				tmp = weights[r] / den
			}
			weights[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		weights[j] = saved
	}
	return span - degree
}

// CalculateBasisCache computes the basis cache of a curve with
// evaluatedNum points.
func CalculateBasisCache(pointsNum, evaluatedNum, order int, cyclic bool, knots []float32, cache *BasisCache) {
	degree := order - 1
	cache.Weights = make([]float32, evaluatedNum*order)
	cache.StartIndices = make([]int, evaluatedNum)
	cache.Invalid = false
	if evaluatedNum == 0 {
		return
	}
	lastControl := pointsNum
	if cyclic {
		lastControl += degree
	}
	start := knots[degree]
	end := knots[lastControl]
	segments := max(1, segmentsNum(evaluatedNum, cyclic))
	step := (end - start) / float32(segments)
	for i := range evaluatedNum {
		u := min(max(start+step*float32(i), start), end)
		cache.StartIndices[i] = basis(u, degree, knots, lastControl, cache.Weights[i*order:(i+1)*order])
	}
}

// InterpolateNurbs evaluates a NURBS curve with control values src
// into dst using the basis cache. controlWeights may be nil for a
// non-rational curve.
func InterpolateNurbs[T any](ip attrmath.Interpolator[T], cache *BasisCache, order int, controlWeights []float32, src, dst []T) {
	if cache.Invalid || len(src) == 0 {
		copy(dst, src)
		return
	}
	weights := make([]float32, order)
	values := make([]T, order)
	for i := range dst {
		start := cache.StartIndices[i]
		w := cache.Weights[i*order : (i+1)*order]
		sum := float32(0)
		for j := range order {
			p := (start + j) % len(src)
			weights[j] = w[j]
			if controlWeights != nil {
				weights[j] *= controlWeights[p]
			}
			sum += weights[j]
			values[j] = src[p]
		}
		if sum != 0 && sum != 1 {
			for j := range weights {
				weights[j] /= sum
			}
		}
		dst[i] = ip.MixN(weights, values)
	}
}
