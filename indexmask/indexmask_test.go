// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexmask

import (
	"testing"

	"cogentcore.org/geometry/base/debug"
	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	r := Range{Start: 2, Size: 3}
	assert.Equal(t, 5, r.End())
	assert.Equal(t, 4, r.Last())
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(5))
	assert.Equal(t, Range{Start: 3, Size: 2}, r.Slice(1, 2))
	assert.Equal(t, "[2, 5)", r.String())
	var seen []int
	r.Foreach(func(i int) { seen = append(seen, i) })
	assert.Equal(t, []int{2, 3, 4}, seen)
}

func TestMask(t *testing.T) {
	m := FromIndices([]int{1, 4, 5, 9})
	assert.False(t, m.IsRange())
	assert.Equal(t, 4, m.Size())
	assert.Equal(t, 10, m.MinArraySize())
	assert.True(t, m.Contains(5))
	assert.False(t, m.Contains(6))
	assert.Equal(t, []int{4, 5}, m.Slice(1, 2).ToIndices())
	assert.True(t, m.Slice(1, 2).IsRange())
	assert.Equal(t, []int{4, 5}, m.SliceContent(Range{Start: 2, Size: 5}).ToIndices())

	var pos []int
	m.ForeachPos(func(p, i int) { pos = append(pos, p*100+i) })
	assert.Equal(t, []int{1, 104, 205, 309}, pos)

	contiguous := FromIndices([]int{3, 4, 5})
	r, ok := contiguous.AsRange()
	assert.True(t, ok)
	assert.Equal(t, Range{Start: 3, Size: 3}, r)

	b := FromBools([]bool{false, true, true, false, true})
	assert.Equal(t, []int{1, 2, 4}, b.ToIndices())
	assert.Equal(t, []bool{false, true, true, false, true}, b.ToBools(5))

	var empty Mask
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.MinArraySize())
	assert.Equal(t, 0, FromSize(4).SliceContent(Range{Start: 6, Size: 2}).Size())

	if !debug.Enabled {
		return
	}
	assert.Panics(t, func() { FromIndices([]int{3, 1}) })
}

func TestOffsets(t *testing.T) {
	o := OffsetsFromCounts([]int{4, 0, 3})
	assert.Equal(t, 3, o.Size())
	assert.Equal(t, 7, o.TotalSize())
	assert.Equal(t, Range{Start: 0, Size: 4}, o.At(0))
	assert.True(t, o.At(1).IsEmpty())
	assert.Equal(t, Range{Start: 4, Size: 3}, o.At(2))
	assert.Equal(t, []int{0, 4, 4, 7}, o.Clone().Data())
	assert.Equal(t, 0, Offsets{}.Size())
}
