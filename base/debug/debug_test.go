// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true, "never") })
	if Enabled {
		assert.PanicsWithValue(t, "assertion failed: index 3 out of range", func() {
			Assert(false, "index %d out of range", 3)
		})
	}
}
