// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings holds process-wide tuning parameters for the
// geometry packages, loaded from TOML files.
package settings

import (
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"cogentcore.org/geometry/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Settings are the tunable parameters.
type Settings struct {
	// Threading controls the fork-join loops used by domain
	// adaptation and materialization.
	Threading Threading `toml:"threading"`

	// Log controls logging output.
	Log Log `toml:"log"`
}

// Threading parameters.
type Threading struct {
	// GrainSize is the default minimum number of elements
	// handled by a single task.
	GrainSize int `toml:"grain_size"`

	// MaxWorkers caps concurrently running tasks; 0 means GOMAXPROCS.
	MaxWorkers int `toml:"max_workers"`
}

// Log parameters.
type Log struct {
	// Level is one of debug, info, warn, error; empty keeps the build default.
	Level string `toml:"level"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		Threading: Threading{
			GrainSize:  2048,
			MaxWorkers: 0,
		},
	}
}

// Workers returns the effective worker limit.
func (s *Threading) Workers() int {
	if s.MaxWorkers > 0 {
		return s.MaxWorkers
	}
	return runtime.GOMAXPROCS(0)
}

// Decode reads settings from TOML, starting from [Default] so
// that missing keys keep their default values.
func Decode(r io.Reader) (Settings, error) {
	s := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Default(), errors.Errorf("settings: decoding: %w", err)
	}
	if s.Threading.GrainSize < 1 {
		s.Threading.GrainSize = 1
	}
	return s, nil
}

// Load reads settings from the TOML file at path.
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Default(), err
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes settings as TOML.
func Encode(w io.Writer, s Settings) error {
	return toml.NewEncoder(w).Encode(s)
}

var (
	current  atomic.Pointer[Settings]
	initOnce sync.Once
)

// Get returns the process-wide settings, initialized to [Default]
// on first use.
func Get() *Settings {
	initOnce.Do(func() {
		if current.Load() == nil {
			s := Default()
			current.Store(&s)
		}
	})
	return current.Load()
}

// Set replaces the process-wide settings.
func Set(s Settings) {
	initOnce.Do(func() {})
	current.Store(&s)
}
