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


package printer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"znkr.io/outdiff/align"
	"znkr.io/outdiff/internal/config"
)

// pairKind classifies a removed line followed by an added line.
type pairKind int

const (
	// Only one side has characters (other than whitespace) that the other side doesn't have.
	pure pairKind = iota

	// Both sides have characters that the other side doesn't have.
	mixed
)

// classify classifies the character alignment of a line pair. Whitespace-only differences are
// ignored.
func classify(edits []align.Edit[string]) pairKind {
	var left, right bool
	for _, e := range edits {
		switch e.Op {
		case align.Match:
		case align.Delete:
			left = left || !isSpace(e.X)
		case align.Insert:
			right = right || !isSpace(e.Y)
		default:
			panic("never reached")
		}
	}
	if left && right {
		return mixed
	}
	return pure
}

func isSpace(grapheme string) bool {
	return strings.TrimFunc(grapheme, unicode.IsSpace) == ""
}

// renderPair renders removed line l and added line r.
//
// A mixed pair is rendered as two lines that highlight what's exclusive to each side. A pure pair
// is rendered as a single changed line, an edit in place.
func renderPair(st *styles, aligner align.Aligner, l, r string) []string {
	edits := aligner.Align(align.Graphemes(l), align.Graphemes(r))
	switch classify(edits) {
	case mixed:
		del := builder{styles: st}
		ins := builder{styles: st}
		del.add(removed, "-")
		ins.add(added, "+")
		for _, e := range edits {
			switch e.Op {
			case align.Match:
				del.add(plain, e.X)
				ins.add(plain, e.Y)
			case align.Delete:
				del.add(removed, e.X)
			case align.Insert:
				ins.add(added, e.Y)
			default:
				panic("never reached")
			}
		}
		return []string{del.String(), ins.String()}
	case pure:
		b := builder{styles: st}
		b.add(changed, "~")
		for _, e := range edits {
			switch e.Op {
			case align.Match:
				b.add(plain, e.X)
			case align.Delete:
				b.add(removed, e.X)
			case align.Insert:
				b.add(added, e.Y)
			default:
				panic("never reached")
			}
		}
		return []string{b.String()}
	default:
		panic("never reached")
	}
}

// Pair writes the rendering of removed line l followed by added line r to w.
func Pair(w io.Writer, l, r string, cfg config.Config) error {
	lw := lineWriter{w: w}
	lw.writeLines(renderPair(newStyles(w, cfg), cfg.Aligner, l, r))
	if lw.err != nil {
		return fmt.Errorf("writing line pair: %w", lw.err)
	}
	return nil
}
