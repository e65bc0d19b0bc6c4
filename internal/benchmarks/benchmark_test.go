package benchmarks

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

type testdata struct {
	name string
	x, y []byte
}

// loadTestdata uses the inputs of the golden tests of the outdiff package and adds a few larger
// synthetic inputs.
func loadTestdata(t testing.TB) []testdata {
	t.Helper()
	testFiles, err := filepath.Glob("../../testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []testdata
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		test := testdata{name: filepath.Base(filename)}
		for _, f := range ar.Files {
			switch f.Name {
			case "expected":
				test.x = f.Data
			case "actual":
				test.y = f.Data
			}
		}
		tests = append(tests, test)
	}
	for _, n := range []int{100, 1000, 10000} {
		tests = append(tests, synthetic(n))
	}
	return tests
}

// synthetic creates an output of n lines where every 10th line has been changed.
func synthetic(n int) testdata {
	var x, y strings.Builder
	for i := range n {
		fmt.Fprintf(&x, "line %d: some output of a program\n", i)
		if i%10 == 5 {
			fmt.Fprintf(&y, "line %d: some changed output of a program\n", i)
			continue
		}
		fmt.Fprintf(&y, "line %d: some output of a program\n", i)
	}
	return testdata{
		name: fmt.Sprintf("synthetic-%d", n),
		x:    []byte(x.String()),
		y:    []byte(y.String()),
	}
}

func BenchmarkDiffs(b *testing.B) {
	for _, impl := range Impls {
		b.Run("impl="+impl.Name, func(b *testing.B) {
			for _, td := range loadTestdata(b) {
				b.Run("name="+td.name, func(b *testing.B) {
					for b.Loop() {
						_ = impl.Diff(td.x, td.y)
					}
					b.StopTimer()

					out := impl.Diff(td.x, td.y)
					changed := 0
					for _, line := range bytes.Split(out, []byte("\n")) {
						if bytes.HasPrefix(line, []byte{'+'}) || bytes.HasPrefix(line, []byte{'-'}) || bytes.HasPrefix(line, []byte{'~'}) {
							changed++
						}
					}
					b.ReportMetric(float64(changed), "changed")
				})
			}
		})
	}
}
