// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attrmath provides weighted mixing of attribute values,
// used to average values when several source elements contribute
// to one destination element, and to interpolate along curves.
package attrmath

import (
	"cogentcore.org/geometry/math32"
	"golang.org/x/exp/constraints"
)

// linear describes how values of T are mixed: converted to an
// accumulation type A, summed with weights, and converted back.
type linear[T, A any] struct {
	toAcc   func(v T) A
	fromAcc func(a A) T
	add     func(a, b A) A
	scale   func(a A, s float32) A
}

// builder erases the accumulation type.
type builder[T any] interface {
	newMixer(buffer []T, defaultValue T) mixImpl[T]
	interpolator() Interpolator[T]
}

func identity[T any](v T) T { return v }

func roundInt[T constraints.Signed](a float64) T {
	if a < 0 {
		return T(a - 0.5)
	}
	return T(a + 0.5)
}

func intLinear[T constraints.Signed]() linear[T, float64] {
	return linear[T, float64]{
		toAcc:   func(v T) float64 { return float64(v) },
		fromAcc: roundInt[T],
		add:     func(a, b float64) float64 { return a + b },
		scale:   func(a float64, s float32) float64 { return a * float64(s) },
	}
}

var (
	floatOps = linear[float32, float32]{
		toAcc:   identity[float32],
		fromAcc: identity[float32],
		add:     func(a, b float32) float32 { return a + b },
		scale:   func(a, s float32) float32 { return a * s },
	}
	vec2Ops = linear[math32.Vector2, math32.Vector2]{
		toAcc:   identity[math32.Vector2],
		fromAcc: identity[math32.Vector2],
		add:     math32.Vector2.Add,
		scale:   math32.Vector2.MulScalar,
	}
	vec3Ops = linear[math32.Vector3, math32.Vector3]{
		toAcc:   identity[math32.Vector3],
		fromAcc: identity[math32.Vector3],
		add:     math32.Vector3.Add,
		scale:   math32.Vector3.MulScalar,
	}
	vec4Ops = linear[math32.Vector4, math32.Vector4]{
		toAcc:   identity[math32.Vector4],
		fromAcc: identity[math32.Vector4],
		add:     math32.Vector4.Add,
		scale:   math32.Vector4.MulScalar,
	}
	colorOps = linear[math32.Color, math32.Vector4]{
		toAcc:   math32.Color.Vector4,
		fromAcc: math32.ColorFromVector4,
		add:     math32.Vector4.Add,
		scale:   math32.Vector4.MulScalar,
	}
	colorBOps = linear[math32.ColorB, math32.Vector4]{
		toAcc:   func(c math32.ColorB) math32.Vector4 { return c.ToFloat().Vector4() },
		fromAcc: func(v math32.Vector4) math32.ColorB { return math32.ColorFromVector4(v).ToByte() },
		add:     math32.Vector4.Add,
		scale:   math32.Vector4.MulScalar,
	}
	// quaternions are summed as 4D vectors and normalized
	quatOps = linear[math32.Quat, math32.Vector4]{
		toAcc:   math32.Quat.Vector4,
		fromAcc: func(v math32.Vector4) math32.Quat { return math32.QuatFromVector4(v).Normalized() },
		add:     math32.Vector4.Add,
		scale:   math32.Vector4.MulScalar,
	}
	matrixOps = linear[math32.Matrix4, math32.Matrix4]{
		toAcc:   identity[math32.Matrix4],
		fromAcc: identity[math32.Matrix4],
		add:     math32.Matrix4.Add,
		scale:   math32.Matrix4.MulScalar,
	}
	int2Ops = linear[math32.Int2, [2]float64]{
		toAcc:   func(v math32.Int2) [2]float64 { return [2]float64{float64(v.X), float64(v.Y)} },
		fromAcc: func(a [2]float64) math32.Int2 { return math32.Int2{X: roundInt[int32](a[0]), Y: roundInt[int32](a[1])} },
		add:     func(a, b [2]float64) [2]float64 { return [2]float64{a[0] + b[0], a[1] + b[1]} },
		scale:   func(a [2]float64, s float32) [2]float64 { return [2]float64{a[0] * float64(s), a[1] * float64(s)} },
	}
	// booleans mix to true when at least half the weight is true
	boolOps = linear[bool, float32]{
		toAcc: func(v bool) float32 {
			if v {
				return 1
			}
			return 0
		},
		fromAcc: func(a float32) bool { return a >= 0.5 },
		add:     func(a, b float32) float32 { return a + b },
		scale:   func(a, s float32) float32 { return a * s },
	}
)

// builderFor returns the mixing operations for T, or nil if values
// of T cannot be mixed.
func builderFor[T any]() builder[T] {
	var zero T
	var b any
	switch any(zero).(type) {
	case float32:
		b = floatOps
	case math32.Vector2:
		b = vec2Ops
	case math32.Vector3:
		b = vec3Ops
	case math32.Vector4:
		b = vec4Ops
	case math32.Color:
		b = colorOps
	case math32.ColorB:
		b = colorBOps
	case math32.Quat:
		b = quatOps
	case math32.Matrix4:
		b = matrixOps
	case math32.Int2:
		b = int2Ops
	case int8:
		b = intLinear[int8]()
	case int32:
		b = intLinear[int32]()
	case int64:
		b = intLinear[int64]()
	case int:
		b = intLinear[int]()
	case bool:
		b = boolOps
	default:
		return nil
	}
	return b.(builder[T])
}

// IsMixable returns whether values of T can be mixed.
func IsMixable[T any]() bool {
	return builderFor[T]() != nil
}
