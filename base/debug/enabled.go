// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !release

package debug

// Enabled is whether assertions and debug-only bookkeeping are active.
const Enabled = true
