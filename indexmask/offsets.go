// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexmask

import "cogentcore.org/geometry/base/debug"

// Offsets describes consecutive groups of elements by an offsets
// array of size n+1, where group i spans [offsets[i], offsets[i+1]).
type Offsets struct {
	data []int
}

// NewOffsets wraps the given offsets, which must be non-decreasing.
// The slice is not copied.
func NewOffsets(data []int) Offsets {
	if debug.Enabled {
		for i := 1; i < len(data); i++ {
			debug.Assert(data[i] >= data[i-1], "offsets decrease at %d", i)
		}
	}
	return Offsets{data: data}
}

// OffsetsFromCounts accumulates group sizes into offsets.
func OffsetsFromCounts(counts []int) Offsets {
	data := make([]int, len(counts)+1)
	for i, c := range counts {
		data[i+1] = data[i] + c
	}
	return Offsets{data: data}
}

// Size returns the number of groups.
func (o Offsets) Size() int {
	if len(o.data) == 0 {
		return 0
	}
	return len(o.data) - 1
}

// TotalSize returns the number of elements in all groups.
func (o Offsets) TotalSize() int {
	if len(o.data) == 0 {
		return 0
	}
	return o.data[len(o.data)-1] - o.data[0]
}

// At returns the element range of group i.
func (o Offsets) At(i int) Range {
	debug.Assert(i >= 0 && i < o.Size(), "offset group %d out of %d", i, o.Size())
	return RangeFromBeginEnd(o.data[i], o.data[i+1])
}

// Data returns the underlying offsets slice.
func (o Offsets) Data() []int {
	return o.data
}

// Clone returns a copy with its own offsets slice.
func (o Offsets) Clone() Offsets {
	return Offsets{data: append([]int(nil), o.data...)}
}
