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


// Package align provides the alignment records consumed by the renderer and a number of aligners
// that produce them.
//
// An alignment of two sequences x and y is a sequence of [Edit] records in the order of a left to
// right scan over both inputs. Within a block of changes, all deletions precede all insertions.
// Renderers rely on this order.
package align

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"znkr.io/outdiff/internal/rvecs"
)

// Op describes an alignment operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Match  Op = iota // The element is present on both sides
	Delete           // The element is only present on the left side
	Insert           // The element is only present on the right side
)

// Edit describes a single alignment record.
//
//   - For Match, both X and Y contain the matching element.
//   - For Delete, X contains the left element and Y is unset (zero value).
//   - For Insert, Y contains the right element and X is unset (zero value).
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// An Aligner aligns two sequences of atomic units, e.g. lines or grapheme clusters.
//
// Aligners must return one record for every element of x and y, in order. They must be safe for
// concurrent use and deterministic: The same inputs always yield the same records.
type Aligner interface {
	Align(x, y []string) []Edit[string]
}

// AlignerFunc adapts an ordinary function to the [Aligner] interface.
type AlignerFunc func(x, y []string) []Edit[string]

// Align calls f(x, y).
func (f AlignerFunc) Align(x, y []string) []Edit[string] { return f(x, y) }

// Lines splits text into lines without line terminators.
//
// Lines are terminated by "\n" or "\r\n". A final line terminator does not start a new, empty,
// line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Graphemes splits text into user-perceived characters (extended grapheme clusters).
func Graphemes(text string) []string {
	var out []string
	iter := graphemes.FromString(text)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// edits translates result vectors into alignment records.
func edits[T any](x, y []T, rx, ry []bool) []Edit[T] {
	out := make([]Edit[T], 0, max(len(x), len(y)))
	for s, t := range rvecs.Pairs(rx, ry) {
		switch {
		case t < 0:
			out = append(out, Edit[T]{Op: Delete, X: x[s]})
		case s < 0:
			out = append(out, Edit[T]{Op: Insert, Y: y[t]})
		default:
			out = append(out, Edit[T]{Op: Match, X: x[s], Y: y[t]})
		}
	}
	return out
}
