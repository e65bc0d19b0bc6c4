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


// Package color makes it possible to customize the colors of a rendered diff.
//
// Colors are termenv color specifications: An ANSI color index ("1"), a 256-color index ("208"),
// or a hex color ("#ff8700"). Colors are degraded to what the output supports.
package color

import "znkr.io/outdiff/internal/config"

// An Option makes it possible to configure custom colors in [outdiff.Colors].
//
// [outdiff.Colors]: https://pkg.go.dev/znkr.io/outdiff#Colors
type Option func(*config.ColorConfig)

// Deletes colors removed lines and characters. The default is red.
func Deletes(spec string) Option {
	return func(cc *config.ColorConfig) {
		cc.Delete = spec
	}
}

// Inserts colors added lines and characters. The default is green.
func Inserts(spec string) Option {
	return func(cc *config.ColorConfig) {
		cc.Insert = spec
	}
}

// Changes colors the marker of lines that changed in place. The default is yellow.
func Changes(spec string) Option {
	return func(cc *config.ColorConfig) {
		cc.Change = spec
	}
}

// Warnings colors advisory messages. The default is red.
func Warnings(spec string) Option {
	return func(cc *config.ColorConfig) {
		cc.Warning = spec
	}
}
