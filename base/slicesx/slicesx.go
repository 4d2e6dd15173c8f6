// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slicesx provides additional slice functions
// beyond those in the standard [slices] package.
package slicesx

import "golang.org/x/exp/constraints"

// Filled returns a new slice of length n with every element set to v.
func Filled[E any](n int, v E) []E {
	s := make([]E, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// Iota returns the slice 0, 1, ..., n-1.
func Iota[E constraints.Integer](n int) []E {
	s := make([]E, n)
	for i := range s {
		s[i] = E(i)
	}
	return s
}

// SetLength sets the length of the given slice, reusing its
// capacity when possible. New elements are zero.
func SetLength[E any](s []E, n int) []E {
	if n <= len(s) {
		return s[:n]
	}
	if n <= cap(s) {
		old := len(s)
		s = s[:n]
		clear(s[old:])
		return s
	}
	return append(s, make([]E, n-len(s))...)
}
