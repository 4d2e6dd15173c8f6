// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Int2 is a pair of int32 values, used for edge vertex indexes.
type Int2 struct {
	X int32
	Y int32
}

func (v Int2) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}

// Other returns the component that is not i, or -1 if neither
// component equals i.
func (v Int2) Other(i int32) int32 {
	switch i {
	case v.X:
		return v.Y
	case v.Y:
		return v.X
	}
	return -1
}
