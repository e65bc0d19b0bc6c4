// Package benchmarks compares the cost of rendering a difference with the aligners of this
// module and with other Go diff libraries.
package benchmarks

import (
	"bytes"

	"github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"znkr.io/outdiff"
	"znkr.io/outdiff/align"
)

type Impl struct {
	Name string
	Diff func(x, y []byte) []byte
}

func render(a align.Aligner) func(x, y []byte) []byte {
	return func(x, y []byte) []byte {
		return []byte(outdiff.String(x, y, outdiff.Colors(outdiff.ColorNever), outdiff.WithAligner(a)))
	}
}

var Impls = []Impl{
	{Name: "outdiff", Diff: render(align.Myers())},
	{Name: "outdiff-optimal", Diff: render(align.OptimalMyers())},
	{Name: "outdiff-diffmatchpatch", Diff: render(align.DiffMatchPatch())},
	{Name: "outdiff-difflib", Diff: render(align.Difflib())},
	{
		Name: "go-internal",
		Diff: func(x, y []byte) []byte {
			return gointernal.Diff("x", x, "y", y)
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []byte) []byte {
			// Not a unified diff, but close enough to be comparable.
			return []byte(godebug.Diff(string(x), string(y)))
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []byte) []byte {
			// Without context and without line refinement, but close enough to be comparable.
			d := mb0lines{
				x: bytes.SplitAfter(x, []byte("\n")),
				y: bytes.SplitAfter(y, []byte("\n")),
			}
			var buf bytes.Buffer
			for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
				for i := range ch.Del {
					buf.WriteString("-")
					buf.Write(d.x[ch.A+i])
				}
				for i := range ch.Ins {
					buf.WriteString("+")
					buf.Write(d.y[ch.B+i])
				}
			}
			return buf.Bytes()
		},
	},
	{
		Name: "udiff",
		Diff: func(x, y []byte) []byte {
			return []byte(udiff.Unified("x", "y", string(x), string(y)))
		},
	},
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }
