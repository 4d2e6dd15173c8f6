// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package indexmask

import (
	"fmt"

	"cogentcore.org/geometry/base/debug"
)

// Range is a contiguous range of indexes [Start, Start+Size).
type Range struct {
	Start int
	Size  int
}

// RangeOf returns the range [0, size).
func RangeOf(size int) Range {
	return Range{Size: size}
}

// RangeFromBeginEnd returns the range [begin, end).
func RangeFromBeginEnd(begin, end int) Range {
	debug.Assert(end >= begin, "range end %d before begin %d", end, begin)
	return Range{Start: begin, Size: end - begin}
}

// End returns one past the last index.
func (r Range) End() int { return r.Start + r.Size }

// Last returns the last index in the range, which must not be empty.
func (r Range) Last() int {
	debug.Assert(r.Size > 0, "Last on empty range")
	return r.Start + r.Size - 1
}

// IsEmpty returns true if the range has no indexes.
func (r Range) IsEmpty() bool { return r.Size == 0 }

// Contains returns whether i is in the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.Start+r.Size
}

// At returns the index at the given position in the range.
func (r Range) At(pos int) int {
	debug.Assert(pos >= 0 && pos < r.Size, "range position %d out of %d", pos, r.Size)
	return r.Start + pos
}

// Slice returns a sub-range starting at the given position.
func (r Range) Slice(start, size int) Range {
	debug.Assert(start >= 0 && size >= 0 && start+size <= r.Size, "slice [%d, %d) out of range size %d", start, start+size, r.Size)
	return Range{Start: r.Start + start, Size: size}
}

// Shift returns the range moved by n.
func (r Range) Shift(n int) Range {
	return Range{Start: r.Start + n, Size: r.Size}
}

// Foreach calls fn for every index in the range.
func (r Range) Foreach(fn func(i int)) {
	for i := r.Start; i < r.Start+r.Size; i++ {
		fn(i)
	}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End())
}
