// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Color is a linear, premultiplied-free RGBA color with float
// components, stored in float color attributes.
type Color struct {
	R, G, B, A float32
}

// NewColor returns a new [Color].
func NewColor(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%v, %v, %v, %v)", c.R, c.G, c.B, c.A)
}

// Vector4 returns the components as a [Vector4].
func (c Color) Vector4() Vector4 {
	return Vector4{c.R, c.G, c.B, c.A}
}

// ColorFromVector4 returns the color with the components of v.
func ColorFromVector4(v Vector4) Color {
	return Color{v.X, v.Y, v.Z, v.W}
}

// ToByte converts to a [ColorB], clamping to [0, 1].
func (c Color) ToByte() ColorB {
	cv := func(f float32) uint8 {
		return uint8(Round(Clamp(f, 0, 1) * 255))
	}
	return ColorB{cv(c.R), cv(c.G), cv(c.B), cv(c.A)}
}

// ColorB is a byte RGBA color, stored in byte color attributes.
type ColorB struct {
	R, G, B, A uint8
}

func (c ColorB) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// ToFloat converts to a float [Color] in [0, 1].
func (c ColorB) ToFloat() Color {
	return Color{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// SRGB returns the stored sRGB components as floats in [0, 1].
func (c ColorB) SRGB() Color { return c.ToFloat() }

// SetSRGB stores the sRGB components v, rounded and clamped to bytes.
func (c *ColorB) SetSRGB(v Color) { *c = v.ToByte() }

// Linear returns the color in linear space. Alpha is not converted.
func (c ColorB) Linear() Color {
	return Color{
		SRGBToLinear(float32(c.R) / 255),
		SRGBToLinear(float32(c.G) / 255),
		SRGBToLinear(float32(c.B) / 255),
		float32(c.A) / 255,
	}
}

// SetLinear stores the linear color v converted to sRGB bytes.
func (c *ColorB) SetLinear(v Color) {
	*c = Color{LinearToSRGB(v.R), LinearToSRGB(v.G), LinearToSRGB(v.B), v.A}.ToByte()
}

// SRGB returns the linear color c converted to sRGB. Alpha is kept.
func (c Color) SRGB() Color {
	return Color{LinearToSRGB(c.R), LinearToSRGB(c.G), LinearToSRGB(c.B), c.A}
}

// ColorFromSRGB returns the linear color of the sRGB color v.
func ColorFromSRGB(v Color) Color {
	return Color{SRGBToLinear(v.R), SRGBToLinear(v.G), SRGBToLinear(v.B), v.A}
}

// SRGBToLinear converts an sRGB component to linear. Negative
// values give 0.
func SRGBToLinear(c float32) float32 {
	if c < 0.04045 {
		if c < 0 {
			return 0
		}
		return c / 12.92
	}
	return Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear component to sRGB. Negative
// values give 0.
func LinearToSRGB(c float32) float32 {
	if c < 0.0031308 {
		if c < 0 {
			return 0
		}
		return c * 12.92
	}
	return 1.055*Pow(c, 1/2.4) - 0.055
}
