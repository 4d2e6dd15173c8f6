// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package debug provides contract assertions that are compiled in
// for all builds except those using the release build tag.
// Contract violations (out of range indexes, misaligned pointers,
// mismatched types) are programmer errors and panic when enabled.
package debug

import "fmt"

// Assert panics with the formatted message if cond is false
// and assertions are [Enabled].
func Assert(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic("assertion failed: " + fmt.Sprintf(format, args...))
	}
}
