// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrmath

import "cogentcore.org/geometry/base/debug"

// Interpolator computes weighted sums of values of one type.
// Weights are expected to sum to 1.
type Interpolator[T any] struct {
	mixN func(weights []float32, values []T) T
}

func (l linear[T, A]) interpolator() Interpolator[T] {
	return Interpolator[T]{mixN: func(weights []float32, values []T) T {
		var acc A
		for i, v := range values {
			acc = l.add(acc, l.scale(l.toAcc(v), weights[i]))
		}
		return l.fromAcc(acc)
	}}
}

// NewInterpolator returns the interpolator for T; ok is false if T
// cannot be mixed.
func NewInterpolator[T any]() (ip Interpolator[T], ok bool) {
	b := builderFor[T]()
	if b == nil {
		return ip, false
	}
	return b.interpolator(), true
}

// Valid returns whether the interpolator can be used.
func (ip Interpolator[T]) Valid() bool { return ip.mixN != nil }

// Mix2 returns a*(1-factor) + b*factor.
func (ip Interpolator[T]) Mix2(factor float32, a, b T) T {
	return ip.mixN([]float32{1 - factor, factor}, []T{a, b})
}

// Mix3 returns the weighted sum of three values.
func (ip Interpolator[T]) Mix3(w [3]float32, a, b, c T) T {
	return ip.mixN(w[:], []T{a, b, c})
}

// Mix4 returns the weighted sum of four values.
func (ip Interpolator[T]) Mix4(w [4]float32, a, b, c, d T) T {
	return ip.mixN(w[:], []T{a, b, c, d})
}

// MixN returns the weighted sum of values.
func (ip Interpolator[T]) MixN(weights []float32, values []T) T {
	debug.Assert(len(weights) == len(values), "MixN: %d weights for %d values", len(weights), len(values))
	return ip.mixN(weights, values)
}

// Mix2 interpolates between a and b, for mixable T.
func Mix2[T any](factor float32, a, b T) T {
	ip, ok := NewInterpolator[T]()
	debug.Assert(ok, "attrmath.Mix2: type %T cannot be mixed", a)
	return ip.Mix2(factor, a, b)
}
