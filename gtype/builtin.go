// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gtype

import (
	"encoding/binary"
	"math"
	"strconv"

	"cogentcore.org/geometry/math32"
)

func init() {
	Register[bool]()
	Register[int8]()
	Register[int32]()
	Register[int64]()
	Register[int]()
	Register[uint8]()
	Register[uint32]()
	Register[uint64]()
	Register[string]()
	Register(WithHash(func(v float32) uint64 { return HashFloats(v) }),
		WithPrint(func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }))
	Register(WithHash(func(v float64) uint64 {
		if v == 0 {
			v = 0
		}
		return HashBytes(binary.LittleEndian.AppendUint64(nil, math.Float64bits(v)))
	}))
	Register(WithHash(func(v math32.Vector2) uint64 { return HashFloats(v.X, v.Y) }))
	Register(WithHash(func(v math32.Vector3) uint64 { return HashFloats(v.X, v.Y, v.Z) }))
	Register(WithHash(func(v math32.Vector4) uint64 { return HashFloats(v.X, v.Y, v.Z, v.W) }))
	Register(WithHash(func(v math32.Color) uint64 { return HashFloats(v.R, v.G, v.B, v.A) }))
	Register[math32.ColorB]()
	Register[math32.Int2]()
	Register(WithDefault(math32.QuatIdentity()),
		WithHash(func(v math32.Quat) uint64 { return HashFloats(v.X, v.Y, v.Z, v.W) }))
	Register(WithDefault(math32.Identity4()),
		WithHash(func(v math32.Matrix4) uint64 { return HashFloats(v[:]...) }))
}
