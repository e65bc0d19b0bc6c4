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


// Package outdiff renders a compact, colorized difference between an expected and an actual
// output, to explain why a comparison of two outputs failed.
//
// The rendering is optimized for humans: Long runs of unchanged lines are collapsed into a short
// "... N lines skipped ..." message with a little context around every change, and a removed line
// that is immediately followed by an added line is refined character by character. If both lines
// contribute characters the other one doesn't have, they are shown as a "-" and a "+" line that
// highlight their exclusive characters. Otherwise, the change is shown in place as a single "~"
// line.
//
// Whitespace other than spaces and line breaks is made visible with a placeholder character and
// invalid UTF-8 is decoded on a best effort basis.
//
// The output is meant to be read, not parsed. DO NOT rely on the output being stable.
package outdiff
