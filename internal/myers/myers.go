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


// Package myers implements the linear space variant of Myers' O(ND) difference algorithm.
//
// See E. Myers, "An O(ND) Difference Algorithm and Its Variations", Algorithmica 1 (1986). The
// search works on result vectors instead of edit scripts: rx[s] is set if x[s] is deleted and
// ry[t] is set if y[t] is inserted. Every element that is set in neither is part of a match.
package myers

import (
	"math"

	"znkr.io/outdiff/internal/rvecs"
)

// minCostLimit is a lower bound for the TOO_EXPENSIVE heuristic. The heuristic only kicks in for
// large inputs with a lot of differences.
const minCostLimit = 4096

// Diff compares x and y and returns the result vectors describing how to transform x into y.
//
// Both result vectors carry one extra, always unset, element at the end. This border makes it
// possible to iterate over both vectors in lockstep without bounds checks.
//
// If optimal is false, the search is cut short for very expensive inputs and the result is no
// longer guaranteed to be minimal.
func Diff[T comparable](x, y []T, optimal bool) (rx, ry []bool) {
	rx, ry = rvecs.Make(x, y)

	smin, smax, tmin, tmax := trim(x, y, 0, len(x), 0, len(y))
	if smin == smax && tmin == tmax {
		return rx, ry
	}

	N, M := smax-smin, tmax-tmin
	diagonals := N + M
	vlen := 2*diagonals + 3 // +1 for the middle diagonal and +2 for the borders
	buf := make([]int, 2*vlen)

	m := myers[T]{
		x:  x,
		y:  y,
		vf: buf[:vlen],
		vb: buf[vlen:],
		v0: diagonals + 1,
		rx: rx,
		ry: ry,
	}

	// The cost limit is the approximate square root of the number of diagonals.
	costLimit := 1
	for i := diagonals; i != 0; i >>= 2 {
		costLimit <<= 1
	}
	m.costLimit = max(minCostLimit, costLimit)

	m.compare(smin, smax, tmin, tmax, optimal)
	return rx, ry
}

type myers[T comparable] struct {
	x, y []T

	// v-arrays for the forwards and backwards search. The furthest reaching endpoint of a d-path
	// on diagonal k is stored in v[v0+k]. Only s is stored, t = s - k.
	vf, vb []int
	v0     int

	costLimit int

	rx, ry []bool
}

// trim strips the common prefix and suffix of x[smin:smax] and y[tmin:tmax].
func trim[T comparable](x, y []T, smin, smax, tmin, tmax int) (int, int, int, int) {
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}
	return smin, smax, tmin, tmax
}

// compare marks the edits of a shortest path from (smin, tmin) to (smax, tmax).
func (m *myers[T]) compare(smin, smax, tmin, tmax int, optimal bool) {
	smin, smax, tmin, tmax = trim(m.x, m.y, smin, smax, tmin, tmax)
	switch {
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			m.ry[t] = true
		}
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			m.rx[s] = true
		}
	default:
		// The split divides the rectangle into a, possibly empty, rectangle before the middle
		// snake, the snake itself and a, possibly empty, rectangle after it.
		s0, s1, t0, t1, opt0, opt1 := m.split(smin, smax, tmin, tmax, optimal)
		m.compare(smin, s0, tmin, t0, opt0)
		m.compare(s1, smax, t1, tmax, opt1)
	}
}

// split finds the middle snake of a shortest path from (smin, tmin) to (smax, tmax).
//
// x[smin:smax] and y[tmin:tmax] must not share a prefix or a suffix and must not both be empty.
func (m *myers[T]) split(smin, smax, tmin, tmax int, optimal bool) (s0, s1, t0, t1 int, opt0, opt1 bool) {
	x, y := m.x, m.y
	vf, vb, v0 := m.vf, m.vb, m.v0

	// Diagonals are numbered consistently for both directions, k = s - t.
	kmin, kmax := smin-tmax, smax-tmin
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// The length of the shortest path is odd iff N-M is odd (Corollary 1). That decides which of
	// the two searches checks for an overlap.
	odd := ((smax-smin)-(tmax-tmin))%2 != 0

	// Without a common prefix or suffix there is no 0-path, start with d=1.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax
	for d := 1; ; d++ {
		// Forwards search. Diagonals outside of the rectangle are never visited, the borders are
		// initialized so that the k-loop doesn't need special cases.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := v0 + k
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1] // vertical edge
			} else {
				s = vf[k0-1] + 1 // horizontal edge, deletions win ties
			}
			t := s - k
			ss, ts := s, t
			for s < smax && t < tmax && x[s] == y[t] {
				s++
				t++
			}
			vf[k0] = s
			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return ss, s, ts, t, true, true
			}
		}

		// Backwards search, mirrors the forwards search.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := v0 + k
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k
			se, te := s, t
			for s > smin && t > tmin && x[s-1] == y[t-1] {
				s--
				t--
			}
			vb[k0] = s
			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return s, se, t, te, true, true
			}
		}

		if optimal || d < m.costLimit {
			continue
		}

		// TOO_EXPENSIVE: give up on the optimal split and use the furthest reaching path in
		// either direction instead.
		fbest, fbestk := math.MinInt, 0
		for k := fmin; k <= fmax; k += 2 {
			s := vf[v0+k]
			t := s - k
			if smin <= s && s < smax && tmin <= t && t < tmax && fbest < s+t {
				fbest, fbestk = s+t, k
			}
		}
		bbest, bbestk := math.MaxInt, 0
		for k := bmin; k <= bmax; k += 2 {
			s := vb[v0+k]
			t := s - k
			if smin <= s && s < smax && tmin <= t && t < tmax && s+t < bbest {
				bbest, bbestk = s+t, k
			}
		}
		switch {
		case fbest != math.MinInt && (smax+tmax)-bbest < fbest-(smin+tmin):
			s := vf[v0+fbestk]
			t := s - fbestk
			return s, s, t, t, true, false
		case bbest != math.MaxInt:
			s := vb[v0+bbestk]
			t := s - bbestk
			return s, s, t, t, false, true
		}
		// Nothing usable inside of the rectangle yet, keep searching.
	}
}
