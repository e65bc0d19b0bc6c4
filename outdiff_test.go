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
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
	"znkr.io/outdiff/align"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	for _, tt := range parseTests(t) {
		t.Run(tt.name, func(t *testing.T) {
			for sti, st := range tt.subtests {
				t.Run(st.name, func(t *testing.T) {
					got := String(tt.expected, tt.actual, st.opts...)
					if diff := cmp.Diff(st.want, got); diff != "" {
						t.Errorf("String(...) result are different:\ngot:\n%s\nwant:\n%s\ndiff [-want,+got]:\n%s", got, st.want, diff)
					}
					if *update {
						tt.subtests[sti].want = got
					}
				})
			}

			// Run in a cleanup to makes sure to runs after the subtests have finished.
			t.Cleanup(func() {
				if !*update {
					return
				}
				ar := &txtar.Archive{
					Comment: tt.comment,
					Files: []txtar.File{
						{Name: "expected", Data: []byte(tt.expected)},
						{Name: "actual", Data: []byte(tt.actual)},
					},
				}
				for _, st := range tt.subtests {
					ar.Files = append(ar.Files, txtar.File{
						Name: "diff",
						Data: append([]byte(st.pragmas), st.want...),
					})
				}
				if err := os.WriteFile(tt.filename, txtar.Format(ar), 0o644); err != nil {
					t.Fatalf("error writing golden file: %v", err)
				}
			})
		})
	}
}

func TestFprint(t *testing.T) {
	tests := []struct {
		name             string
		expected, actual string
		opts             []Option
		want             string
	}{
		{
			name: "empty",
			want: "\n",
		},
		{
			name:     "identical",
			expected: "a\nb\nc\n",
			actual:   "a\nb\nc\n",
			want:     " a\n b\n c\n\n",
		},
		{
			name:     "expected-empty",
			expected: "",
			actual:   "one\n",
			want:     "+one\n\n",
		},
		{
			name:     "actual-empty",
			expected: "one\ntwo\n",
			actual:   "",
			want:     "-one\n-two\n\n",
		},
		{
			name:     "substitution",
			expected: "a\nb\nc\n",
			actual:   "a\nX\nc\n",
			want:     " a\n-b\n+X\n c\n\n",
		},
		{
			name:     "missing-final-newline",
			expected: "a\nb",
			actual:   "a\nb\n",
			want:     " a\n b\n\n",
		},
		{
			name:     "crlf",
			expected: "a\r\nb\r\n",
			actual:   "a\nb\n",
			want:     " a\n b\n\n",
		},
		{
			name:     "tab",
			expected: "a\tb\n",
			actual:   "a b\n",
			want:     "~a░ b\n\n",
		},
		{
			name:     "tab-custom-placeholder",
			expected: "\tx\n",
			actual:   "\tx\n",
			opts:     []Option{Placeholder('→')},
			want:     " →x\n\n",
		},
		{
			name:     "invalid-utf8",
			expected: "a\xff\n",
			actual:   "a\n",
			want:     "Non-UTF8 characters in output, diff may be imprecise.\n~a�\n\n",
		},
		{
			name:     "invalid-utf8-both",
			expected: "x\xff\n",
			actual:   "x\xfe\n",
			want:     "Non-UTF8 characters in output, diff may be imprecise.\n x�\n\n",
		},
		{
			name:     "context",
			expected: "1\n2\n3\n4\n5\n6\nx\n",
			actual:   "1\n2\n3\n4\n5\n6\n",
			opts:     []Option{Context(0)},
			want:     "... 6 lines skipped ...\n-x\n\n",
		},
		{
			name:     "colors",
			expected: "a\nb\n",
			actual:   "a\nc\n",
			opts:     []Option{Colors(ColorAlways)},
			want:     " a\n\x1b[31m-b\x1b[0m\n\x1b[32m+c\x1b[0m\n\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Fprint(&buf, tt.expected, tt.actual, tt.opts...); err != nil {
				t.Fatalf("Fprint(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("Fprint(...) result are different [-want,+got]:\n%s", diff)
			}

			// Same result for []byte inputs.
			got := String([]byte(tt.expected), []byte(tt.actual), tt.opts...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("String[[]byte](...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFprintIdempotent(t *testing.T) {
	expected := strings.Repeat("same\n", 20) + "old line\n" + strings.Repeat("same\n", 20)
	actual := strings.Repeat("same\n", 20) + "new line\n" + strings.Repeat("same\n", 20)
	first := String(expected, actual, Colors(ColorAlways))
	second := String(expected, actual, Colors(ColorAlways))
	if first != second {
		t.Errorf("String(...) is not deterministic:\nfirst:\n%q\nsecond:\n%q", first, second)
	}
}

func TestFprintEqualInputs(t *testing.T) {
	expected := strings.Repeat("line\n", 50)
	got := String(expected, expected)
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "+") || strings.HasPrefix(line, "~") {
			t.Errorf("String(x, x) contains a changed line: %q", line)
		}
	}
}

func TestFprintAligners(t *testing.T) {
	expected := "a\nb\nc\nd\ne\n"
	actual := "a\nc\nd\nE\ne\n"
	want := " a\n-b\n c\n d\n+E\n e\n\n"
	for name, a := range map[string]align.Aligner{
		"myers":          align.Myers(),
		"optimal-myers":  align.OptimalMyers(),
		"diffmatchpatch": align.DiffMatchPatch(),
		"difflib":        align.Difflib(),
	} {
		t.Run(name, func(t *testing.T) {
			got := String(expected, actual, WithAligner(a))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("String(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

type failingWriter struct {
	n      int
	writes []string
}

var errWrite = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(w.writes) == w.n {
		return 0, errWrite
	}
	w.writes = append(w.writes, string(p))
	return len(p), nil
}

func TestFprintWriteError(t *testing.T) {
	w := &failingWriter{n: 1}
	err := Fprint(w, "a\nb\nc\n", "x\ny\nz\n")
	if !errors.Is(err, errWrite) {
		t.Errorf("Fprint(...) = %v, want %v", err, errWrite)
	}
	if diff := cmp.Diff([]string{"-a\n"}, w.writes); diff != "" {
		t.Errorf("Fprint(...) wrote unexpected lines [-want,+got]:\n%s", diff)
	}
}

func TestFprintLine(t *testing.T) {
	tests := []struct {
		name           string
		removed, added string
		opts           []Option
		want           string
	}{
		{
			name:    "mixed",
			removed: "foo bar",
			added:   "foo baz",
			want:    "-foo bar\n+foo baz\n",
		},
		{
			name:    "pure",
			removed: "foo",
			added:   "foo ",
			want:    "~foo \n",
		},
		{
			name:    "colors",
			removed: "foo",
			added:   "fooo",
			opts:    []Option{Colors(ColorAlways)},
			want:    "\x1b[33m~\x1b[0mfoo\x1b[32mo\x1b[0m\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := FprintLine(&buf, tt.removed, tt.added, tt.opts...); err != nil {
				t.Fatalf("FprintLine(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("FprintLine(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFprintLineOptionNotAllowed(t *testing.T) {
	defer func() {
		if r := recover(); r != "Option outdiff.Context not allowed here" {
			t.Errorf("FprintLine(...) panicked with %v, want a panic about outdiff.Context", r)
		}
	}()
	_ = FprintLine(&bytes.Buffer{}, "a", "b", Context(1))
}

type test struct {
	name     string
	filename string
	comment  []byte
	expected string
	actual   string
	subtests []subtest
}

type subtest struct {
	name    string
	pragmas string
	opts    []Option
	want    string
}

// parseTests reads txtar test cases from testdata. Every case has an "expected" and an "actual"
// section, followed by one or more "diff" sections. A diff section starts with optional pragma
// lines of the form "# key: value" that configure the rendering.
func parseTests(t testing.TB) []test {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []test
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		test := test{
			name:     strings.TrimPrefix(filename, "testdata/"),
			filename: filename,
			comment:  ar.Comment,
		}
		for _, f := range ar.Files {
			switch f.Name {
			case "expected":
				test.expected = string(f.Data)
			case "actual":
				test.actual = string(f.Data)
			case "diff":
				test.subtests = append(test.subtests, parseSubtest(t, string(f.Data)))
			default:
				t.Fatalf("failed to parse test case: unknown section %q", f.Name)
			}
		}
		tests = append(tests, test)
	}
	return tests
}

func parseSubtest(t testing.TB, data string) subtest {
	t.Helper()
	var st subtest
	var name []string
	for strings.HasPrefix(data, "#") {
		line, rest, found := strings.Cut(data, "\n")
		if !found {
			t.Fatal("failed to parse test case: missing newline after pragma line")
		}
		st.pragmas += line + "\n"
		data = rest

		k, v, found := strings.Cut(strings.TrimPrefix(line, "#"), ":")
		if !found {
			t.Fatal("failed to parse test case: missing ':' in pragma line")
		}
		switch k, v := strings.TrimSpace(k), strings.TrimSpace(v); k {
		case "context":
			n, err := strconv.Atoi(v)
			if err != nil {
				t.Fatalf("invalid value for context: %q", v)
			}
			st.opts = append(st.opts, Context(n))
		case "aligner":
			a, ok := aligners[v]
			if !ok {
				t.Fatalf("invalid value for aligner: %q", v)
			}
			st.opts = append(st.opts, WithAligner(a))
		default:
			t.Fatalf("unknown pragma: %q", k)
		}
		name = append(name, k+"="+v)
	}
	st.want = data
	st.name = strings.Join(name, ",")
	if st.name == "" {
		st.name = "default"
	}
	return st
}

var aligners = map[string]align.Aligner{
	"myers":          align.Myers(),
	"optimal-myers":  align.OptimalMyers(),
	"diffmatchpatch": align.DiffMatchPatch(),
	"difflib":        align.Difflib(),
}
