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


// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// outdiff.Option.
package config

import "znkr.io/outdiff/align"

// ColorMode decides if output is colored.
type ColorMode int

const (
	// Detect the capabilities of the output from the environment.
	ColorAuto ColorMode = iota

	// Always emit ANSI escape sequences.
	ColorAlways

	// Never emit escape sequences.
	ColorNever
)

// ColorConfig holds termenv color specifications (ANSI index, 256-color index, or "#rrggbb") for
// the semantic roles of the output.
type ColorConfig struct {
	Delete  string // removed lines and characters
	Insert  string // added lines and characters
	Change  string // the marker of lines changed in place
	Warning string // advisory messages
}

// Config collects all configurable parameters for the renderers in this module.
type Config struct {
	// Context is the number of unchanged lines shown before and after a change.
	Context int

	// Aligner is used for both lines and characters.
	Aligner align.Aligner

	// Color decides if escape sequences are written.
	Color ColorMode

	// Colors for the semantic roles.
	Colors ColorConfig

	// Placeholder replaces whitespace other than ' ', '\n' and '\r' before diffing.
	Placeholder rune
}

// Default is the default configuration.
var Default = Config{
	Context: 2,
	Aligner: align.Myers(),
	Color:   ColorAuto,
	Colors: ColorConfig{
		Delete:  "1",
		Insert:  "2",
		Change:  "3",
		Warning: "1",
	},
	Placeholder: '░',
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by an entry point.
type Flag int

const (
	Context Flag = 1 << iota
	Aligner
	Color
	Placeholder
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Context:
		return "outdiff.Context"
	case Aligner:
		return "outdiff.WithAligner"
	case Color:
		return "outdiff.Colors"
	case Placeholder:
		return "outdiff.Placeholder"
	default:
		panic("never reached")
	}
}
