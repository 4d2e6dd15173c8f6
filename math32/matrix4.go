// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Matrix4 is 4x4 matrix organized internally as column matrix,
// used for instance transforms.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation4 returns a translation matrix.
func Translation4(t Vector3) Matrix4 {
	m := Identity4()
	m[12] = t.X
	m[13] = t.Y
	m[14] = t.Z
	return m
}

// Translation returns the translation part of the matrix.
func (m *Matrix4) Translation() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// Mul returns this matrix times other matrix: m * other.
func (m *Matrix4) Mul(other *Matrix4) Matrix4 {
	var r Matrix4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[k*4+row] * other[c*4+k]
			}
			r[c*4+row] = s
		}
	}
	return r
}

// MulScalar returns the matrix with every element multiplied by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Add returns the element-wise sum of m and other.
func (m Matrix4) Add(other Matrix4) Matrix4 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

// MulVector3AsPoint returns the point v transformed by m.
func (m *Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return Vec3(
		m[0]*v.X+m[4]*v.Y+m[8]*v.Z+m[12],
		m[1]*v.X+m[5]*v.Y+m[9]*v.Z+m[13],
		m[2]*v.X+m[6]*v.Y+m[10]*v.Z+m[14],
	)
}
