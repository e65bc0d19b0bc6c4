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


// Package rvecs contains functions to work with the result vectors, the internal representation
// of an alignment that's used by the myers algorithm and is then translated to alignment records.
//
// A result vector has one entry per element of an input, plus one border element at the end that
// is always false. rx[s] is true if x[s] is not matched and ry[t] is true if y[t] is not matched.
package rvecs

import "iter"

// Make allocates result vectors for x and y, including the border elements.
func Make[T any](x, y []T) (rx, ry []bool) {
	r := make([]bool, (len(x) + len(y) + 2))
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]
	return
}

// Pairs iterates over an alignment in order. It yields (s, -1) for an unmatched x[s], (-1, t)
// for an unmatched y[t], and (s, t) if x[s] is matched with y[t]. Within a run of unmatched
// elements, all elements of x come before all elements of y.
func Pairs(rx, ry []bool) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		n, m := len(rx)-1, len(ry)-1
		for s, t := 0, 0; s < n || t < m; {
			for ; s < n && rx[s]; s++ {
				if !yield(s, -1) {
					return
				}
			}
			for ; t < m && ry[t]; t++ {
				if !yield(-1, t) {
					return
				}
			}
			for ; s < n && t < m && !rx[s] && !ry[t]; s, t = s+1, t+1 {
				if !yield(s, t) {
					return
				}
			}
		}
	}
}
