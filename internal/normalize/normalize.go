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


// Package normalize turns raw output buffers into text that can be diffed and displayed.
package normalize

import (
	"bytes"
	"unicode"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Decode decodes b as UTF-8. Invalid bytes are replaced by U+FFFD and lossy is set.
func Decode(b []byte) (text string, lossy bool) {
	out, err := xunicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		out = bytes.ToValidUTF8(b, []byte(string(unicode.ReplacementChar)))
	}
	return string(out), !bytes.Equal(out, b)
}

// Visible reports whether r is displayed as is. Whitespace other than ' ', '\n' and '\r' is not,
// it's either invisible (e.g. '\v') or indistinguishable from a space (e.g. '\t', U+00A0).
func Visible(r rune) bool {
	return !unicode.IsSpace(r) || r == ' ' || r == '\n' || r == '\r'
}

// Whitespace replaces every rune in text that is not [Visible] with placeholder.
func Whitespace(text string, placeholder rune) string {
	t := runes.Map(func(r rune) rune {
		if Visible(r) {
			return r
		}
		return placeholder
	})
	out, _, err := transform.String(t, text)
	if err != nil {
		// runes.Map never fails on valid input, text has been decoded before.
		panic("never reached: " + err.Error())
	}
	return out
}
