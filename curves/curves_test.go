// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curves

import (
	"testing"

	"cogentcore.org/geometry/attribute"
	"cogentcore.org/geometry/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateKnots(t *testing.T) {
	tests := []struct {
		name   string
		points int
		order  int
		mode   KnotsMode
		cyclic bool
		want   []float32
	}{
		{"normal", 4, 4, KnotsNormal, false, []float32{0, 1, 2, 3, 4, 5, 6, 7}},
		{"endpoint", 4, 4, KnotsEndpoint, false, []float32{0, 0, 0, 0, 1, 1, 1, 1}},
		{"endpoint linear", 2, 2, KnotsEndpoint, false, []float32{0, 0, 1, 1}},
		{"normal cyclic", 3, 2, KnotsNormal, true, []float32{0, 1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			knots := make([]float32, KnotsNum(tt.points, tt.order, tt.cyclic))
			CalculateKnots(tt.points, tt.mode, tt.order, tt.cyclic, knots)
			assert.Equal(t, tt.want, knots)
		})
	}
}

func TestNurbsValid(t *testing.T) {
	assert.True(t, NurbsValid(4, 4, false, KnotsNormal))
	assert.False(t, NurbsValid(3, 4, false, KnotsNormal))
	assert.False(t, NurbsValid(4, 4, false, KnotsBezier))
	assert.True(t, NurbsValid(7, 4, false, KnotsBezier))
	assert.False(t, NurbsValid(7, 4, true, KnotsEndpointBezier))
}

func TestBasisPartitionOfUnity(t *testing.T) {
	knots := make([]float32, KnotsNum(6, 4, false))
	CalculateKnots(6, KnotsEndpoint, 4, false, knots)
	var cache BasisCache
	CalculateBasisCache(6, 25, 4, false, knots, &cache)
	require.Len(t, cache.StartIndices, 25)
	for i := range 25 {
		sum := float32(0)
		for _, w := range cache.Weights[i*4 : (i+1)*4] {
			assert.GreaterOrEqual(t, w, float32(-1e-6))
			sum += w
		}
		assert.InDelta(t, 1, sum, 1e-5)
		assert.LessOrEqual(t, cache.StartIndices[i]+4, 6)
	}
	// endpoint knots interpolate the end points
	assert.InDelta(t, 1, cache.Weights[0], 1e-6)
	assert.InDelta(t, 1, cache.Weights[24*4+3], 1e-6)
}

func linearNurbs() *Curves {
	c := New([]int{2})
	copy(c.PositionsForWrite(), []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(4, 0, 0)})
	c.CurveTypesForWrite()[0] = int8(CurveTypeNurbs)
	c.NurbsOrdersForWrite()[0] = 2
	c.KnotsModesForWrite()[0] = int8(KnotsEndpoint)
	c.ResolutionsForWrite()[0] = 4
	return c
}

func TestNurbsEvaluation(t *testing.T) {
	c := linearNurbs()
	assert.Equal(t, 5, c.EvaluatedPointsNum())
	pos := c.EvaluatedPositions()
	require.Len(t, pos, 5)
	for i, p := range pos {
		assert.InDelta(t, float32(i), p.X, 1e-5)
	}

	vals := InterpolateAllToEvaluated(c, []float32{0, 8})
	assert.InDeltaSlice(t, []float32{0, 2, 4, 6, 8}, vals, 1e-5)

	// weights pull the curve towards the heavier point
	w := c.NurbsWeightsForWrite()
	w[1] = 3
	pos = c.EvaluatedPositions()
	assert.Greater(t, pos[2].X, float32(2))
}

func TestNurbsInvalidFallsBackToPoly(t *testing.T) {
	c := linearNurbs()
	c.NurbsOrdersForWrite()[0] = 3
	assert.Equal(t, 2, c.EvaluatedPointsNum())
	assert.True(t, c.NurbsBasisCaches()[0].Invalid)
	assert.Equal(t, c.Positions(), c.EvaluatedPositions())
}

func TestCatmullRomPassesThroughPoints(t *testing.T) {
	c := New([]int{4})
	src := []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 2, 0), math32.Vec3(3, 1, 0), math32.Vec3(4, 0, 0)}
	copy(c.PositionsForWrite(), src)
	c.CurveTypesForWrite()[0] = int8(CurveTypeCatmullRom)
	c.ResolutionsForWrite()[0] = 3
	pos := c.EvaluatedPositions()
	require.Len(t, pos, 10)
	for i, p := range src {
		assert.Equal(t, p, pos[i*3])
	}

	c.CyclicForWrite()[0] = true
	assert.Len(t, c.EvaluatedPositions(), 12)
}

func TestBezier(t *testing.T) {
	c := New([]int{2})
	copy(c.PositionsForWrite(), []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(2, 0, 0)})
	c.CurveTypesForWrite()[0] = int8(CurveTypeBezier)
	c.ResolutionsForWrite()[0] = 2
	pos := c.EvaluatedPositions()
	require.Len(t, pos, 3)
	assert.Equal(t, math32.Vec3(1, 0, 0), pos[1])

	c.HandlePositionsRightForWrite()[0] = math32.Vec3(0, 4, 0)
	c.HandlePositionsLeftForWrite()[1] = math32.Vec3(2, 4, 0)
	pos = c.EvaluatedPositions()
	assert.InDelta(t, 3, pos[1].Y, 1e-5)

	radii := InterpolateAllToEvaluated(c, []float32{1, 3})
	assert.Equal(t, []float32{1, 2, 3}, radii)
}

func TestPolyAndDomains(t *testing.T) {
	c := New([]int{3, 1, 2})
	assert.Equal(t, 6, c.DomainSize(attribute.DomainPoint))
	assert.Equal(t, 3, c.DomainSize(attribute.DomainCurve))
	assert.Equal(t, 0, c.DomainSize(attribute.DomainFace))
	assert.Equal(t, []int32{0, 0, 0, 1, 2, 2}, c.PointToCurveMap())
	assert.Equal(t, 6, c.EvaluatedPointsNum())
	vals := InterpolateAllToEvaluated(c, []int32{1, 2, 3, 4, 5, 6})
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, vals)

	cp := c.Copy()
	cp.CyclicForWrite()[1] = true
	assert.False(t, c.Cyclic(1))
	assert.True(t, cp.Cyclic(1))
}
