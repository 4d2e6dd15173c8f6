// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(`
[threading]
grain_size = 64

[log]
level = "debug"
`))
	require.NoError(t, err)
	assert.Equal(t, 64, s.Threading.GrainSize)
	assert.Equal(t, 0, s.Threading.MaxWorkers)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Greater(t, s.Threading.Workers(), 0)

	_, err = Decode(strings.NewReader("[threading]\nunknown = 1\n"))
	assert.Error(t, err)

	s, err = Decode(strings.NewReader("[threading]\ngrain_size = 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Threading.GrainSize)
}

func TestEncodeLoad(t *testing.T) {
	s := Default()
	s.Threading.MaxWorkers = 3
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s))

	path := filepath.Join(t.TempDir(), "geometry.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	ld, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, ld)
	assert.Equal(t, 3, ld.Threading.Workers())

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestGetSet(t *testing.T) {
	prev := *Get()
	defer Set(prev)
	assert.Equal(t, Default().Threading.GrainSize, Get().Threading.GrainSize)
	s := Default()
	s.Threading.GrainSize = 7
	Set(s)
	assert.Equal(t, 7, Get().Threading.GrainSize)
}
