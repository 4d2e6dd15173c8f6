// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command attrdump builds demo geometry and prints its attributes as
// YAML or CBOR. It can read one attribute adapted to another domain
// and converted to another type, which is useful to inspect the
// results of domain adaptation.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/geometry/base/errors"
	"cogentcore.org/geometry/logx"
	"cogentcore.org/geometry/settings"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// config holds the parsed command line.
type config struct {
	demo         demoOptions
	dump         dumpOptions
	format       string
	output       string
	settingsPath string
	logLevel     string
}

func parseFlags(args []string) (*config, *pflag.FlagSet, error) {
	cfg := &config{}
	fs := pflag.NewFlagSet("attrdump", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.demo.Grid, "grid", 2, "number of quads along each side of the demo grid mesh")
	fs.IntVar(&cfg.demo.Points, "points", 4, "number of points of the demo point cloud")
	fs.IntVar(&cfg.demo.Resolution, "resolution", 4, "evaluated resolution of the demo curves")
	fs.BoolVarP(&cfg.dump.All, "all", "a", false, "include attributes hidden from procedural access")
	fs.StringSliceVarP(&cfg.dump.Components, "component", "c", nil, "component types to dump (mesh, point_cloud, instances, curve)")
	fs.BoolVar(&cfg.dump.Values, "values", false, "include the values of every attribute")
	fs.StringVar(&cfg.dump.Attribute, "attribute", "", "include the values of this attribute")
	fs.StringVar(&cfg.dump.Domain, "domain", "", "domain to adapt the printed values to")
	fs.StringVar(&cfg.dump.DataType, "type", "", "data type to convert the printed values to")
	fs.StringVarP(&cfg.format, "format", "f", "yaml", "output format: yaml or cbor")
	fs.StringVarP(&cfg.output, "output", "o", "", "output file (default stdout)")
	fs.StringVar(&cfg.settingsPath, "settings", "", "TOML settings file")
	fs.StringVar(&cfg.logLevel, "log-level", "", "log level: debug, info, warn or error")
	fs.BoolP("help", "h", false, "show help")
	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if fs.NArg() > 0 {
		return nil, fs, errors.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	if cfg.demo.Grid < 1 || cfg.demo.Points < 0 || cfg.demo.Resolution < 1 {
		return nil, fs, errors.New("--grid and --resolution must be positive and --points not negative")
	}
	return cfg, fs, nil
}

func run(args []string, stdout io.Writer) error {
	cfg, fs, err := parseFlags(args)
	if err == pflag.ErrHelp {
		printHelp(stdout, fs)
		return nil
	}
	if err != nil {
		return err
	}
	if help, _ := fs.GetBool("help"); help {
		printHelp(stdout, fs)
		return nil
	}

	logx.Init()
	if cfg.settingsPath != "" {
		s, err := settings.Load(cfg.settingsPath)
		if err != nil {
			return errors.Errorf("loading settings: %w", err)
		}
		settings.Set(s)
		logx.SetLevel(logx.ParseLevel(s.Log.Level))
	}
	if cfg.logLevel != "" {
		logx.SetLevel(logx.ParseLevel(cfg.logLevel))
	}

	slog.Debug("building demo geometry", "grid", cfg.demo.Grid, "points", cfg.demo.Points, "resolution", cfg.demo.Resolution)
	gs := demoSet(cfg.demo)
	r, err := buildReport(gs, cfg.dump)
	if err != nil {
		return err
	}

	w := stdout
	if cfg.output != "" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return err
		}
		defer func() { errors.Log(f.Close()) }()
		w = f
	}
	return encode(w, cfg.format, r)
}

func printHelp(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, `attrdump prints the attributes of demo geometry.

Usage:
  attrdump [flags]

Flags:
%s`, fs.FlagUsages())
}
