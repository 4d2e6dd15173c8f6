// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, UserLevel, ParseLevel(""))
	assert.Equal(t, UserLevel, ParseLevel("loud"))
}

func TestInstall(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	install(&buf)
	SetLevel(slog.LevelInfo)
	slog.Debug("hidden")
	slog.Info("layer added", "name", "position")
	out := buf.String()
	assert.Contains(t, out, "layer added")
	assert.Contains(t, out, "position")
	assert.NotContains(t, out, "hidden")
}
