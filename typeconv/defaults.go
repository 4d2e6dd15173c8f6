// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package typeconv

import (
	"math"

	"cogentcore.org/geometry/math32"
	"golang.org/x/exp/constraints"
)

// toInt rounds toward zero and clamps to the range of T.
func toInt[T constraints.Signed](f float32) T {
	if math32.IsNaN(f) {
		return 0
	}
	var lo, hi float64
	switch any(T(0)).(type) {
	case int8:
		lo, hi = math.MinInt8, math.MaxInt8
	default:
		lo, hi = math.MinInt32, math.MaxInt32
	}
	return T(max(lo, min(hi, float64(f))))
}

func clampInt8[T constraints.Signed](v T) int8 {
	return int8(max(math.MinInt8, min(math.MaxInt8, int64(v))))
}

func boolTo[T constraints.Integer | constraints.Float](b bool) T {
	if b {
		return 1
	}
	return 0
}

// luminance of a linear color.
func luminance(c math32.Color) float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

func registerDefaults(c *Conversions) {
	// float
	Add(c, func(f float32) math32.Vector2 { return math32.Vec2(f, f) })
	Add(c, func(f float32) math32.Vector3 { return math32.Vec3(f, f, f) })
	Add(c, toInt[int32])
	Add(c, func(f float32) math32.Int2 { v := toInt[int32](f); return math32.Int2{X: v, Y: v} })
	Add(c, toInt[int8])
	Add(c, func(f float32) bool { return f > 0 })
	Add(c, func(f float32) math32.Color { return math32.NewColor(f, f, f, 1) })
	Add(c, func(f float32) math32.ColorB { return math32.NewColor(f, f, f, 1).ToByte() })

	// float2
	Add(c, func(v math32.Vector2) float32 { return (v.X + v.Y) / 2 })
	Add(c, func(v math32.Vector2) math32.Vector3 { return math32.Vec3(v.X, v.Y, 0) })
	Add(c, func(v math32.Vector2) int32 { return toInt[int32]((v.X + v.Y) / 2) })
	Add(c, func(v math32.Vector2) math32.Int2 { return math32.Int2{X: toInt[int32](v.X), Y: toInt[int32](v.Y)} })
	Add(c, func(v math32.Vector2) int8 { return toInt[int8]((v.X + v.Y) / 2) })
	Add(c, func(v math32.Vector2) bool { return v.X != 0 || v.Y != 0 })
	Add(c, func(v math32.Vector2) math32.Color { return math32.NewColor(v.X, v.Y, 0, 1) })

	// float3
	Add(c, func(v math32.Vector3) float32 { return (v.X + v.Y + v.Z) / 3 })
	Add(c, func(v math32.Vector3) math32.Vector2 { return math32.Vec2(v.X, v.Y) })
	Add(c, func(v math32.Vector3) int32 { return toInt[int32]((v.X + v.Y + v.Z) / 3) })
	Add(c, func(v math32.Vector3) math32.Int2 { return math32.Int2{X: toInt[int32](v.X), Y: toInt[int32](v.Y)} })
	Add(c, func(v math32.Vector3) int8 { return toInt[int8]((v.X + v.Y + v.Z) / 3) })
	Add(c, func(v math32.Vector3) bool { return v.X != 0 || v.Y != 0 || v.Z != 0 })
	Add(c, func(v math32.Vector3) math32.Color { return math32.NewColor(v.X, v.Y, v.Z, 1) })
	Add(c, func(v math32.Vector3) math32.ColorB { return math32.NewColor(v.X, v.Y, v.Z, 1).ToByte() })

	// int32
	Add(c, func(i int32) float32 { return float32(i) })
	Add(c, func(i int32) math32.Vector2 { return math32.Vec2(float32(i), float32(i)) })
	Add(c, func(i int32) math32.Vector3 { return math32.Vector3Scalar(float32(i)) })
	Add(c, func(i int32) math32.Int2 { return math32.Int2{X: i, Y: i} })
	Add(c, clampInt8[int32])
	Add(c, func(i int32) bool { return i > 0 })
	Add(c, func(i int32) math32.Color { f := float32(i); return math32.NewColor(f, f, f, 1) })

	// int2
	Add(c, func(v math32.Int2) float32 { return float32(v.X+v.Y) / 2 })
	Add(c, func(v math32.Int2) math32.Vector2 { return math32.Vec2(float32(v.X), float32(v.Y)) })
	Add(c, func(v math32.Int2) math32.Vector3 { return math32.Vec3(float32(v.X), float32(v.Y), 0) })
	Add(c, func(v math32.Int2) int32 { return (v.X + v.Y) / 2 })
	Add(c, func(v math32.Int2) bool { return v.X != 0 || v.Y != 0 })

	// int8
	Add(c, func(i int8) float32 { return float32(i) })
	Add(c, func(i int8) math32.Vector3 { return math32.Vector3Scalar(float32(i)) })
	Add(c, func(i int8) int32 { return int32(i) })
	Add(c, func(i int8) bool { return i > 0 })

	// bool
	Add(c, boolTo[float32])
	Add(c, func(b bool) math32.Vector2 { f := boolTo[float32](b); return math32.Vec2(f, f) })
	Add(c, func(b bool) math32.Vector3 { return math32.Vector3Scalar(boolTo[float32](b)) })
	Add(c, boolTo[int32])
	Add(c, func(b bool) math32.Int2 { i := boolTo[int32](b); return math32.Int2{X: i, Y: i} })
	Add(c, boolTo[int8])
	Add(c, func(b bool) math32.Color { f := boolTo[float32](b); return math32.NewColor(f, f, f, 1) })
	Add(c, func(b bool) math32.ColorB { f := boolTo[float32](b); return math32.NewColor(f, f, f, 1).ToByte() })

	// color
	Add(c, luminance)
	Add(c, func(col math32.Color) math32.Vector2 { return math32.Vec2(col.R, col.G) })
	Add(c, func(col math32.Color) math32.Vector3 { return math32.Vec3(col.R, col.G, col.B) })
	Add(c, func(col math32.Color) int32 { return toInt[int32](luminance(col)) })
	Add(c, func(col math32.Color) bool { return luminance(col) > 0 })
	Add(c, math32.Color.ToByte)
	Add(c, math32.ColorB.ToFloat)
	Add(c, func(col math32.ColorB) float32 { return luminance(col.ToFloat()) })
	Add(c, func(col math32.ColorB) math32.Vector3 { f := col.ToFloat(); return math32.Vec3(f.R, f.G, f.B) })
	Add(c, func(col math32.ColorB) bool { return luminance(col.ToFloat()) > 0 })
}
