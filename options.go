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


package outdiff

import (
	"znkr.io/outdiff/align"
	"znkr.io/outdiff/color"
	"znkr.io/outdiff/internal/config"
)

// Option configures the behavior of rendering functions.
type Option = config.Option

// ColorMode decides if output is colored, see [Colors].
type ColorMode = config.ColorMode

const (
	ColorAuto   = config.ColorAuto   // Color if the output is a terminal, respects NO_COLOR and CLICOLOR_FORCE
	ColorAlways = config.ColorAlways // Always use ANSI colors
	ColorNever  = config.ColorNever  // Never use colors
)

// Context sets the number of unchanged lines shown before and after every change. The default is
// 2.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// Colors sets the color mode and, optionally, custom colors for the output. The default is
// [ColorAuto] with red for removals, green for additions and yellow for in place changes.
func Colors(mode ColorMode, opts ...color.Option) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Color = mode
		cfg.Colors = config.Default.Colors
		for _, opt := range opts {
			opt(&cfg.Colors)
		}
		return config.Color
	}
}

// WithAligner sets the aligner used to compare lines and characters. The default is
// [align.Myers].
func WithAligner(a align.Aligner) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Aligner = a
		return config.Aligner
	}
}

// Placeholder sets the character that replaces whitespace other than spaces and line breaks. The
// default is '░'.
func Placeholder(r rune) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Placeholder = r
		return config.Placeholder
	}
}
