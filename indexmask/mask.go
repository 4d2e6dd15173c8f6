// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package indexmask provides index ranges, sorted index masks and
// offset indices, used to select subsets of elements and to describe
// groups of elements such as the corners of each face.
package indexmask

import (
	"slices"
	"sort"

	"cogentcore.org/geometry/base/debug"
)

// Mask is an ordered set of unique non-negative indexes. It is either
// a contiguous [Range] or an explicit sorted index list. The zero value
// is the empty mask.
type Mask struct {
	// rng is the selected range when indices is nil.
	rng Range

	// indices are the sorted selected indexes, nil for range masks.
	indices []int
}

// FromRange returns a mask selecting all indexes of the range.
func FromRange(r Range) Mask {
	return Mask{rng: r}
}

// FromSize returns a mask selecting [0, size).
func FromSize(size int) Mask {
	return Mask{rng: RangeOf(size)}
}

// FromIndices returns a mask of the given indexes, which must be sorted
// and unique. The slice is not copied. Contiguous indexes become a
// range mask.
func FromIndices(indices []int) Mask {
	if debug.Enabled {
		for i := 1; i < len(indices); i++ {
			debug.Assert(indices[i] > indices[i-1], "mask indices not sorted and unique at %d", i)
		}
	}
	n := len(indices)
	if n == 0 {
		return Mask{}
	}
	if indices[n-1]-indices[0] == n-1 {
		return Mask{rng: Range{Start: indices[0], Size: n}}
	}
	return Mask{indices: indices}
}

// FromBools returns a mask of the indexes whose value is true.
func FromBools(bools []bool) Mask {
	return FromPredicate(FromSize(len(bools)), func(i int) bool { return bools[i] })
}

// FromPredicate returns the subset of universe for which pred is true.
func FromPredicate(universe Mask, pred func(i int) bool) Mask {
	var indices []int
	universe.Foreach(func(i int) {
		if pred(i) {
			indices = append(indices, i)
		}
	})
	return FromIndices(indices)
}

// Size returns the number of selected indexes.
func (m Mask) Size() int {
	if m.indices == nil {
		return m.rng.Size
	}
	return len(m.indices)
}

// IsEmpty returns true if nothing is selected.
func (m Mask) IsEmpty() bool { return m.Size() == 0 }

// IsRange returns true if the mask is a contiguous range.
func (m Mask) IsRange() bool { return m.indices == nil }

// AsRange returns the range of a range mask.
func (m Mask) AsRange() (Range, bool) {
	if m.indices != nil {
		return Range{}, false
	}
	return m.rng, true
}

// At returns the index at the given position.
func (m Mask) At(pos int) int {
	if m.indices == nil {
		return m.rng.At(pos)
	}
	return m.indices[pos]
}

// First returns the first index; the mask must not be empty.
func (m Mask) First() int { return m.At(0) }

// Last returns the last index; the mask must not be empty.
func (m Mask) Last() int { return m.At(m.Size() - 1) }

// MinArraySize returns the smallest array size that contains
// all selected indexes.
func (m Mask) MinArraySize() int {
	if m.IsEmpty() {
		return 0
	}
	return m.Last() + 1
}

// Contains returns whether i is selected.
func (m Mask) Contains(i int) bool {
	if m.indices == nil {
		return m.rng.Contains(i)
	}
	_, found := slices.BinarySearch(m.indices, i)
	return found
}

// Foreach calls fn for every selected index in order.
func (m Mask) Foreach(fn func(i int)) {
	if m.indices == nil {
		m.rng.Foreach(fn)
		return
	}
	for _, i := range m.indices {
		fn(i)
	}
}

// ForeachPos calls fn with the position within the mask and
// the selected index, for every selected index in order.
func (m Mask) ForeachPos(fn func(pos, i int)) {
	if m.indices == nil {
		for pos := range m.rng.Size {
			fn(pos, m.rng.Start+pos)
		}
		return
	}
	for pos, i := range m.indices {
		fn(pos, i)
	}
}

// Slice returns the sub-mask of size indexes starting at position start.
func (m Mask) Slice(start, size int) Mask {
	debug.Assert(start >= 0 && size >= 0 && start+size <= m.Size(), "mask slice out of range")
	if m.indices == nil {
		return Mask{rng: m.rng.Slice(start, size)}
	}
	return FromIndices(m.indices[start : start+size])
}

// SliceContent returns the sub-mask of selected indexes within r.
func (m Mask) SliceContent(r Range) Mask {
	if m.indices == nil {
		start := max(m.rng.Start, r.Start)
		end := min(m.rng.End(), r.End())
		if end <= start {
			return Mask{}
		}
		return Mask{rng: RangeFromBeginEnd(start, end)}
	}
	lo := sort.SearchInts(m.indices, r.Start)
	hi := sort.SearchInts(m.indices, r.End())
	return FromIndices(m.indices[lo:hi])
}

// ToIndices returns the selected indexes as a new slice.
func (m Mask) ToIndices() []int {
	out := make([]int, 0, m.Size())
	m.Foreach(func(i int) {
		out = append(out, i)
	})
	return out
}

// ToBools returns a boolean selection array of the given size.
func (m Mask) ToBools(size int) []bool {
	out := make([]bool, size)
	m.Foreach(func(i int) {
		out[i] = true
	})
	return out
}
