// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parallel runs fork-join loops over index ranges.
package parallel

import (
	"cogentcore.org/geometry/indexmask"
	"cogentcore.org/geometry/settings"
	"golang.org/x/sync/errgroup"
)

// For calls fn on consecutive sub-ranges of r covering it exactly once,
// running sub-ranges concurrently when r has more than grain elements.
// It returns after all calls have finished. fn must not write to
// elements outside its sub-range. A grain of 0 uses the grain size
// from [settings.Get].
func For(r indexmask.Range, grain int, fn func(sub indexmask.Range)) {
	if r.IsEmpty() {
		return
	}
	th := settings.Get().Threading
	if grain <= 0 {
		grain = th.GrainSize
	}
	workers := th.Workers()
	if r.Size <= grain || workers <= 1 {
		fn(r)
		return
	}
	chunks := min((r.Size+grain-1)/grain, workers*4)
	chunk := (r.Size + chunks - 1) / chunks
	var g errgroup.Group
	g.SetLimit(workers)
	for start := r.Start; start < r.End(); start += chunk {
		sub := indexmask.RangeFromBeginEnd(start, min(start+chunk, r.End()))
		g.Go(func() error {
			fn(sub)
			return nil
		})
	}
	g.Wait()
}

// ForEach calls fn for every index of r, using [For].
func ForEach(r indexmask.Range, grain int, fn func(i int)) {
	For(r, grain, func(sub indexmask.Range) {
		for i := sub.Start; i < sub.End(); i++ {
			fn(i)
		}
	})
}

// ForMask calls fn for every index selected by mask, splitting
// the mask into chunks of at least grain indexes.
func ForMask(mask indexmask.Mask, grain int, fn func(i int)) {
	if r, ok := mask.AsRange(); ok {
		ForEach(r, grain, fn)
		return
	}
	For(indexmask.RangeOf(mask.Size()), grain, func(sub indexmask.Range) {
		mask.Slice(sub.Start, sub.Size).Foreach(fn)
	})
}
