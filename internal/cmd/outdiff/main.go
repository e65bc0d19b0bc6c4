// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// outdiff shows the difference between two files the same way a failing output comparison would.
//
// Usage:
//
//	outdiff [flags] expected actual
//	outdiff [flags] -txtar archive
//
// A txtar archive must contain an "expected" and an "actual" file. Flags override the settings of
// an optional TOML configuration file:
//
//	context = 3
//	color = "always"      # auto, always, or never
//	aligner = "difflib"   # myers, optimal-myers, diffmatchpatch, or difflib
//	placeholder = "→"
//
//	[colors]
//	delete = "#ff5f5f"
//	insert = "2"
//
// The exit status is 0 if the inputs are equal, 1 if they are different, and 2 on error.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"golang.org/x/tools/txtar"
	"znkr.io/outdiff"
	"znkr.io/outdiff/align"
	"znkr.io/outdiff/color"
)

// errDifferent is returned by run if the inputs are different.
var errDifferent = errors.New("inputs are different")

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errDifferent):
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

type colorSettings struct {
	Delete  string `toml:"delete"`
	Insert  string `toml:"insert"`
	Change  string `toml:"change"`
	Warning string `toml:"warning"`
}

type settings struct {
	Context     int           `toml:"context"`
	Color       string        `toml:"color"`
	Aligner     string        `toml:"aligner"`
	Placeholder string        `toml:"placeholder"`
	Colors      colorSettings `toml:"colors"`
}

var defaults = settings{
	Context: 2,
	Color:   "auto",
	Aligner: "myers",
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		flags      settings
		configFile string
		archive    string
	)
	fs := flag.NewFlagSet("outdiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&configFile, "config", "", "TOML configuration `file`")
	fs.StringVar(&archive, "txtar", "", "read expected and actual from a txtar `archive`")
	fs.IntVar(&flags.Context, "context", defaults.Context, "number of unchanged lines around a change")
	fs.StringVar(&flags.Color, "color", defaults.Color, "color `mode`: auto, always, or never")
	fs.StringVar(&flags.Aligner, "aligner", defaults.Aligner, "aligner: myers, optimal-myers, diffmatchpatch, or difflib")
	fs.StringVar(&flags.Placeholder, "placeholder", "", "`character` that replaces tabs and other whitespace")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s := defaults
	if configFile != "" {
		var err error
		s, err = loadSettings(configFile)
		if err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "context":
			s.Context = flags.Context
		case "color":
			s.Color = flags.Color
		case "aligner":
			s.Aligner = flags.Aligner
		case "placeholder":
			s.Placeholder = flags.Placeholder
		}
	})

	opts, err := s.options()
	if err != nil {
		return err
	}

	expected, actual, err := readInputs(archive, fs.Args())
	if err != nil {
		return err
	}
	if bytes.Equal(expected, actual) {
		return nil
	}
	if err := outdiff.Fprint(stdout, expected, actual, opts...); err != nil {
		return err
	}
	return errDifferent
}

func loadSettings(filename string) (settings, error) {
	s := defaults
	md, err := toml.DecodeFile(filename, &s)
	if err != nil {
		return settings{}, fmt.Errorf("reading config: %v", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return settings{}, fmt.Errorf("reading config: unknown keys: %s", strings.Join(keys, ", "))
	}
	return s, nil
}

var aligners = map[string]align.Aligner{
	"myers":          align.Myers(),
	"optimal-myers":  align.OptimalMyers(),
	"diffmatchpatch": align.DiffMatchPatch(),
	"difflib":        align.Difflib(),
}

var colorModes = map[string]outdiff.ColorMode{
	"auto":   outdiff.ColorAuto,
	"always": outdiff.ColorAlways,
	"never":  outdiff.ColorNever,
}

func (s *settings) options() ([]outdiff.Option, error) {
	if s.Context < 0 {
		return nil, fmt.Errorf("invalid context %d: must not be negative", s.Context)
	}
	opts := []outdiff.Option{outdiff.Context(s.Context)}

	a, ok := aligners[s.Aligner]
	if !ok {
		return nil, fmt.Errorf("invalid aligner %q, want one of %s", s.Aligner, keys(aligners))
	}
	opts = append(opts, outdiff.WithAligner(a))

	mode, ok := colorModes[s.Color]
	if !ok {
		return nil, fmt.Errorf("invalid color mode %q, want one of %s", s.Color, keys(colorModes))
	}
	var colors []color.Option
	for _, c := range []struct {
		spec string
		opt  func(string) color.Option
	}{
		{s.Colors.Delete, color.Deletes},
		{s.Colors.Insert, color.Inserts},
		{s.Colors.Change, color.Changes},
		{s.Colors.Warning, color.Warnings},
	} {
		if c.spec != "" {
			colors = append(colors, c.opt(c.spec))
		}
	}
	opts = append(opts, outdiff.Colors(mode, colors...))

	if s.Placeholder != "" {
		r, size := utf8.DecodeRuneInString(s.Placeholder)
		if r == utf8.RuneError || size != len(s.Placeholder) {
			return nil, fmt.Errorf("invalid placeholder %q: must be a single character", s.Placeholder)
		}
		opts = append(opts, outdiff.Placeholder(r))
	}
	return opts, nil
}

func keys[V any](m map[string]V) string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	slices.Sort(ks)
	return strings.Join(ks, ", ")
}

func readInputs(archive string, args []string) (expected, actual []byte, err error) {
	if archive != "" {
		if len(args) > 0 {
			return nil, nil, fmt.Errorf("unexpected command line arguments with -txtar: %v", args)
		}
		return readArchive(archive)
	}
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("expected 2 files, got %d", len(args))
	}
	expected, err = os.ReadFile(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("reading expected: %v", err)
	}
	actual, err = os.ReadFile(args[1])
	if err != nil {
		return nil, nil, fmt.Errorf("reading actual: %v", err)
	}
	return expected, actual, nil
}

func readArchive(filename string) (expected, actual []byte, err error) {
	ar, err := txtar.ParseFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("reading archive: %v", err)
	}
	var foundExpected, foundActual bool
	for _, f := range ar.Files {
		switch f.Name {
		case "expected":
			expected, foundExpected = f.Data, true
		case "actual":
			actual, foundActual = f.Data, true
		}
	}
	if !foundExpected || !foundActual {
		return nil, nil, fmt.Errorf("reading archive: %s must contain an expected and an actual file", filename)
	}
	return expected, actual, nil
}
