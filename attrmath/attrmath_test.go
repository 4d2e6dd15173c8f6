// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrmath

import (
	"testing"

	"cogentcore.org/geometry/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMixerMean(t *testing.T) {
	buf := make([]float32, 3)
	m := NewDefaultMixer(buf)
	require.NotNil(t, m)
	m.MixIn(0, 1, 1)
	m.MixIn(0, 2, 1)
	m.MixIn(0, 6, 1)
	m.MixIn(1, 4, 1)
	m.Finalize()
	assert.Equal(t, []float32{3, 4, 0}, buf)
}

func TestMixerDefaultForUntouched(t *testing.T) {
	buf := []math32.Quat{{}, {}}
	m := NewMixer(buf, math32.QuatIdentity())
	m.MixIn(0, math32.QuatIdentity(), 1)
	m.MixIn(0, math32.QuatIdentity(), 1)
	m.Finalize()
	assert.Equal(t, math32.QuatIdentity(), buf[0])
	assert.Equal(t, math32.QuatIdentity(), buf[1])
}

func TestMixerInt(t *testing.T) {
	buf := make([]int32, 2)
	m := NewDefaultMixer(buf)
	m.MixIn(0, 1, 1)
	m.MixIn(0, 2, 1)
	m.MixIn(1, -1, 1)
	m.MixIn(1, -2, 1)
	m.Finalize()
	assert.Equal(t, []int32{2, -2}, buf)

	i2 := make([]math32.Int2, 1)
	m2 := NewDefaultMixer(i2)
	m2.MixIn(0, math32.Int2{X: 1, Y: 10}, 1)
	m2.MixIn(0, math32.Int2{X: 3, Y: 20}, 1)
	m2.Finalize()
	assert.Equal(t, math32.Int2{X: 2, Y: 15}, i2[0])
}

func TestMixerWeightsAndSet(t *testing.T) {
	buf := make([]math32.Vector3, 1)
	m := NewDefaultMixer(buf)
	m.MixIn(0, math32.Vec3(100, 0, 0), 1)
	m.Set(0, math32.Vec3(0, 0, 0), 1)
	m.MixIn(0, math32.Vec3(4, 0, 0), 3)
	m.Finalize()
	assert.Equal(t, math32.Vec3(3, 0, 0), buf[0])
}

func TestMixerColorB(t *testing.T) {
	buf := make([]math32.ColorB, 1)
	m := NewDefaultMixer(buf)
	m.MixIn(0, math32.ColorB{R: 0, G: 255, B: 100, A: 255}, 1)
	m.MixIn(0, math32.ColorB{R: 255, G: 255, B: 100, A: 255}, 1)
	m.Finalize()
	assert.Equal(t, math32.ColorB{R: 128, G: 255, B: 100, A: 255}, buf[0])
}

func TestUnmixable(t *testing.T) {
	assert.Nil(t, NewDefaultMixer(make([]string, 1)))
	assert.False(t, IsMixable[string]())
	assert.True(t, IsMixable[bool]())
	_, ok := NewInterpolator[string]()
	assert.False(t, ok)
}

func TestInterpolator(t *testing.T) {
	ip, ok := NewInterpolator[math32.Vector2]()
	require.True(t, ok)
	assert.Equal(t, math32.Vec2(1, 2), ip.Mix2(0.5, math32.Vec2(0, 0), math32.Vec2(2, 4)))
	assert.Equal(t, math32.Vec2(1, 0), ip.Mix3([3]float32{0.25, 0.5, 0.25}, math32.Vec2(0, 0), math32.Vec2(1, 0), math32.Vec2(2, 0)))
	assert.Equal(t, float32(2.5), Mix2[float32](0.25, 2, 4))
	assert.Equal(t, int32(3), Mix2[int32](0.5, 2, 4))
	assert.True(t, Mix2(0.75, false, true))
}
