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


package align

import (
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/outdiff/internal/myers"
)

// Myers returns an [Aligner] based on Myers' difference algorithm.
//
// For very large inputs with many differences, the search is cut short and the result may not be
// minimal. Use [OptimalMyers] when a minimal alignment is required irrespective of the cost.
func Myers() Aligner { return myersAligner{optimal: false} }

// OptimalMyers returns an [Aligner] based on Myers' difference algorithm that always finds a
// minimal alignment.
func OptimalMyers() Aligner { return myersAligner{optimal: true} }

type myersAligner struct {
	optimal bool
}

func (a myersAligner) Align(x, y []string) []Edit[string] {
	rx, ry := myers.Diff(x, y, a.optimal)
	return edits(x, y, rx, ry)
}

// DiffMatchPatch returns an [Aligner] based on the diff-match-patch library.
//
// The diff-match-patch time limit is disabled to keep the output deterministic.
func DiffMatchPatch() Aligner { return dmpAligner{} }

type dmpAligner struct{}

func (dmpAligner) Align(x, y []string) []Edit[string] {
	rx, ry, ok := toRunes(x, y)
	if !ok {
		return Myers().Align(x, y)
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	diffs := dmp.DiffMainRunes(rx, ry, false)

	out := make([]Edit[string], 0, max(len(x), len(y)))
	var ins []Edit[string] // pending insertions, emitted after the deletions of the same block
	s, t := 0, 0
	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for range n {
				out = append(out, Edit[string]{Op: Delete, X: x[s]})
				s++
			}
		case diffmatchpatch.DiffInsert:
			for range n {
				ins = append(ins, Edit[string]{Op: Insert, Y: y[t]})
				t++
			}
		case diffmatchpatch.DiffEqual:
			out = append(out, ins...)
			ins = ins[:0]
			for range n {
				out = append(out, Edit[string]{Op: Match, X: x[s], Y: y[t]})
				s++
				t++
			}
		default:
			panic("never reached")
		}
	}
	return append(out, ins...)
}

// toRunes maps every distinct unit in x and y to a distinct rune. It reports false if there are
// more distinct units than valid runes.
func toRunes(x, y []string) (rx, ry []rune, ok bool) {
	ids := make(map[string]rune)
	next := rune(1)
	encode := func(units []string) []rune {
		out := make([]rune, len(units))
		for i, u := range units {
			id, found := ids[u]
			if !found {
				if next >= 0xD800 && next <= 0xDFFF {
					next = 0xE000 // skip surrogates, they don't survive a round trip through strings
				}
				if next > utf8.MaxRune {
					return nil
				}
				id = next
				ids[u] = id
				next++
			}
			out[i] = id
		}
		return out
	}
	if rx = encode(x); rx == nil && len(x) > 0 {
		return nil, nil, false
	}
	if ry = encode(y); ry == nil && len(y) > 0 {
		return nil, nil, false
	}
	return rx, ry, true
}

// Difflib returns an [Aligner] based on the Ratcliff/Obershelp matching of go-difflib.
//
// The alignment is not minimal. It prefers long contiguous matches, which often reads more
// naturally for prose. The automatic junk heuristic is disabled.
func Difflib() Aligner { return difflibAligner{} }

type difflibAligner struct{}

func (difflibAligner) Align(x, y []string) []Edit[string] {
	m := difflib.NewMatcherWithJunk(x, y, false, nil)
	out := make([]Edit[string], 0, max(len(x), len(y)))
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for i := range op.I2 - op.I1 {
				out = append(out, Edit[string]{Op: Match, X: x[op.I1+i], Y: y[op.J1+i]})
			}
		case 'd', 'r', 'i':
			for s := op.I1; s < op.I2; s++ {
				out = append(out, Edit[string]{Op: Delete, X: x[s]})
			}
			for t := op.J1; t < op.J2; t++ {
				out = append(out, Edit[string]{Op: Insert, Y: y[t]})
			}
		default:
			panic("never reached")
		}
	}
	return out
}
