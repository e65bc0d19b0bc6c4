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
	"io"
	"os"

	"znkr.io/outdiff/align"
	"znkr.io/outdiff/internal/byteview"
	"znkr.io/outdiff/internal/config"
	"znkr.io/outdiff/internal/normalize"
	"znkr.io/outdiff/internal/printer"
)

const lossyWarning = "Non-UTF8 characters in output, diff may be imprecise."

// Fprint writes the difference between expected and actual to w.
//
// Every line is written with a single call to w.Write. If writing fails, rendering stops and the
// error is returned.
//
// The following options are supported: [Context], [Colors], [WithAligner], [Placeholder]
func Fprint[T string | []byte](w io.Writer, expected, actual T, opts ...Option) error {
	cfg := config.FromOptions(opts, config.Context|config.Color|config.Aligner|config.Placeholder)
	return render(w, byteview.From(expected), byteview.From(actual), cfg)
}

// Print writes the difference between expected and actual to [os.Stderr].
//
// The following options are supported: [Context], [Colors], [WithAligner], [Placeholder]
func Print[T string | []byte](expected, actual T, opts ...Option) error {
	return Fprint(os.Stderr, expected, actual, opts...)
}

// String returns the difference between expected and actual.
//
// Colors are only used if requested with [Colors] and [ColorAlways].
//
// The following options are supported: [Context], [Colors], [WithAligner], [Placeholder]
func String[T string | []byte](expected, actual T, opts ...Option) string {
	var buf bytes.Buffer
	// Writing to a bytes.Buffer never fails.
	_ = Fprint(&buf, expected, actual, opts...)
	return buf.String()
}

// FprintLine writes the character level difference between a removed and an added line to w.
//
// The following options are supported: [Colors], [WithAligner]
func FprintLine(w io.Writer, removed, added string, opts ...Option) error {
	cfg := config.FromOptions(opts, config.Color|config.Aligner)
	return printer.Pair(w, removed, added, cfg)
}

func render(w io.Writer, expected, actual byteview.ByteView, cfg config.Config) error {
	x, xlossy := normalize.Decode(expected.Bytes())
	y, ylossy := normalize.Decode(actual.Bytes())

	p := printer.New(w, cfg)
	if xlossy || ylossy {
		p.Warn(lossyWarning)
	}

	x = normalize.Whitespace(x, cfg.Placeholder)
	y = normalize.Whitespace(y, cfg.Placeholder)
	for _, e := range cfg.Aligner.Align(align.Lines(x), align.Lines(y)) {
		p.Process(e)
	}
	return p.Finish()
}
