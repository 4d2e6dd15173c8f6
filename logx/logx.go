// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default [slog] logger used by all
// geometry packages, rendering records with charmbracelet/log.
package logx

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// UserLevel is the verbosity [slog.Level] that the user has selected.
// It defaults to Debug for debug builds, Warn for release builds,
// and Info otherwise.
var UserLevel = defaultUserLevel

var (
	initOnce sync.Once
	logger   *log.Logger
)

// Init installs the charmbracelet handler as the [slog] default
// logger writing to stderr at [UserLevel]. It is safe to call more
// than once; only the first call installs the handler.
func Init() {
	initOnce.Do(func() {
		install(os.Stderr)
	})
}

func install(w io.Writer) {
	logger = log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "geometry",
		Level:           log.Level(UserLevel),
	})
	slog.SetDefault(slog.New(logger))
}

// SetLevel changes [UserLevel] and the level of the installed handler.
func SetLevel(level slog.Level) {
	UserLevel = level
	if logger != nil {
		logger.SetLevel(log.Level(level))
	}
}

// ParseLevel parses a level name (debug, info, warn, error)
// as used in settings files. Unknown names return [UserLevel].
func ParseLevel(name string) slog.Level {
	if name == "" {
		return UserLevel
	}
	lv, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return UserLevel
	}
	return slog.Level(lv)
}
