// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package ppath

import "cogentcore.org/glyphtrace/math32"

// Dash returns a new path that consists of dashes.
// The elements in d specify the width of the dashes and gaps.
// It will alternate between dashes and gaps when picking widths.
// If d is an array of odd length, it is equivalent of passing d
// twice in sequence. The offset specifies the offset used into d
// (or negative offset into the path).
// Dash will be applied to each subpath independently.
func (p Path) Dash(offset float32, d ...float32) Path {
	offset, d = dashCanonical(offset, d)
	if len(d) == 0 {
		return p.Clone()
	} else if len(d) == 1 && d[0] == 0.0 {
		return Path{}
	}

	if len(d)%2 == 1 {
		// if d is uneven length, dash and space lengths alternate. Duplicate d so that uneven indices are always spaces
		d = append(d, d...)
	}

	i0, pos0 := dashStart(offset, d)

	q := Path{}
	for _, s := range p {
		i := i0
		pos := pos0
		length := s.Length()
		for pos < length {
			end := pos + d[i]
			if i%2 == 0 && 0.0 < end {
				if ds := s.Slice(max(pos, 0), min(end, length)); len(ds.Points) > 1 {
					q = append(q, ds)
				}
			}
			pos = end
			i++
			if i == len(d) {
				i = 0
			}
		}
	}
	return q
}

// Slice returns the open part of the sub-path between arc lengths
// d0 and d1.
func (s Subpath) Slice(d0, d1 float32) Subpath {
	var pts []math32.Vector2
	var acc float32
	for i := range s.NumSegments() {
		if d1 < acc {
			break
		}
		a, b := s.Segment(i)
		l := a.DistanceTo(b)
		if l == 0 {
			continue
		}
		if d0 < acc+l {
			if len(pts) == 0 {
				pts = append(pts, a.Lerp(b, max(d0-acc, 0)/l))
			}
			if acc+l <= d1 {
				pts = append(pts, b)
			} else {
				pts = append(pts, a.Lerp(b, (d1-acc)/l))
			}
		}
		acc += l
	}
	return Subpath{Points: pts}
}

func dashStart(offset float32, d []float32) (int, float32) {
	i0 := 0 // index in d
	for d[i0] <= offset {
		offset -= d[i0]
		i0++
		if i0 == len(d) {
			i0 = 0
		}
	}
	pos0 := -offset // negative if offset is halfway into dash
	if offset < 0.0 {
		dTotal := float32(0.0)
		for _, dd := range d {
			dTotal += dd
		}
		pos0 = -(dTotal + offset) // handle negative offsets
	}
	return i0, pos0
}

// dashCanonical returns an optimized dash array.
func dashCanonical(offset float32, d []float32) (float32, []float32) {
	if len(d) == 0 {
		return 0.0, []float32{}
	}

	// remove zeros except first and last
	for i := 1; i < len(d)-1; i++ {
		if Equal(d[i], 0.0) {
			d[i-1] += d[i+1]
			d = append(d[:i], d[i+2:]...)
			i--
		}
	}

	// remove first zero, collapse with second and last
	if Equal(d[0], 0.0) {
		if len(d) < 3 {
			return 0.0, []float32{0.0}
		}
		offset -= d[1]
		d[len(d)-1] += d[1]
		d = d[2:]
	}

	// remove last zero, collapse with fist and second to last
	if Equal(d[len(d)-1], 0.0) {
		if len(d) < 3 {
			return 0.0, []float32{}
		}
		offset += d[len(d)-2]
		d[0] += d[len(d)-2]
		d = d[:len(d)-2]
	}

	// if there are zeros or negatives, don't draw any dashes
	for i := 0; i < len(d); i++ {
		if d[i] < 0.0 || Equal(d[i], 0.0) {
			return 0.0, []float32{0.0}
		}
	}

	// remove repeated patterns
REPEAT:
	for len(d)%2 == 0 {
		mid := len(d) / 2
		for i := 0; i < mid; i++ {
			if !Equal(d[i], d[mid+i]) {
				break REPEAT
			}
		}
		d = d[:mid]
	}
	return offset, d
}
