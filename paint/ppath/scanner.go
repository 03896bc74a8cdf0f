// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/glyphtrace/math32"
)

// NumSegments returns the number of line segments in the sub-path,
// including the closing segment of a closed sub-path.
func (s Subpath) NumSegments() int {
	n := len(s.Points)
	if n < 2 {
		return 0
	}
	if s.Closed {
		return n
	}
	return n - 1
}

// Segment returns the start and end of segment i of the sub-path.
// The closing segment of a closed sub-path is the last one.
func (s Subpath) Segment(i int) (start, end math32.Vector2) {
	return s.Points[i], s.Points[(i+1)%len(s.Points)]
}

// Scanner returns a path scanner over the line segments of the path.
func (p Path) Scanner() *Scanner {
	return &Scanner{p: p, i: -1}
}

// Scanner scans the line segments of a path, sub-path by sub-path.
type Scanner struct {
	p   Path
	sub int // index of the current sub-path
	i   int // index of the current segment within the sub-path
}

// Scan scans a new path segment and should be called before the other methods.
func (s *Scanner) Scan() bool {
	s.i++
	for s.sub < len(s.p) {
		if s.i < s.p[s.sub].NumSegments() {
			return true
		}
		s.sub++
		s.i = 0
	}
	return false
}

// Subpath returns the index of the sub-path of the current segment.
func (s *Scanner) Subpath() int {
	return s.sub
}

// Index returns the index of the current segment in its sub-path.
func (s *Scanner) Index() int {
	return s.i
}

// Closing returns true if the current segment is the implied
// closing segment of a closed sub-path.
func (s *Scanner) Closing() bool {
	sp := s.p[s.sub]
	return sp.Closed && s.i == len(sp.Points)-1
}

// Start returns the current path segment start position.
func (s *Scanner) Start() math32.Vector2 {
	return s.p[s.sub].Points[s.i]
}

// End returns the current path segment end position.
func (s *Scanner) End() math32.Vector2 {
	_, end := s.p[s.sub].Segment(s.i)
	return end
}

// Line returns the current path segment.
func (s *Scanner) Line() math32.Line2 {
	start, end := s.p[s.sub].Segment(s.i)
	return math32.NewLine2(start, end)
}
