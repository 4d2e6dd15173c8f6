// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and math package
// providing the value types stored in geometry attributes.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * math.Pi / 180
}

func Abs(x float32) float32  { return math32.Abs(x) }
func Sqrt(x float32) float32 { return math32.Sqrt(x) }
func Sin(x float32) float32  { return math32.Sin(x) }
func Cos(x float32) float32  { return math32.Cos(x) }

func Pow(x, y float32) float32 { return math32.Pow(x, y) }

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 { return math32.Round(x) }

// IsNaN reports whether x is not a number. Attribute mixing uses it
// to detect results of degenerate weights.
func IsNaN(x float32) bool { return math32.IsNaN(x) }

func Min(x, y float32) float32 { return math32.Min(x, y) }
func Max(x, y float32) float32 { return math32.Max(x, y) }

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	return min(max(x, lo), hi)
}
