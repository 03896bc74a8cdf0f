// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/glyphtrace/math32"
)

// Length returns the arc length of the sub-path, including
// the closing segment if it is closed.
func (s Subpath) Length() float32 {
	var l float32
	for i := range s.NumSegments() {
		a, b := s.Segment(i)
		l += a.DistanceTo(b)
	}
	return l
}

// Length returns the total arc length of the path over all of its
// sub-paths, including the closing segments of closed sub-paths.
// The gaps between sub-paths do not count.
func (p Path) Length() float32 {
	var l float32
	for _, s := range p {
		l += s.Length()
	}
	return l
}

// first returns the first point of the path.
func (p Path) first() math32.Vector2 {
	for _, s := range p {
		if len(s.Points) > 0 {
			return s.Start()
		}
	}
	return math32.Vector2{}
}

// last returns the last point of the path, which is the start
// of the last sub-path if that is closed.
func (p Path) last() math32.Vector2 {
	for i := len(p) - 1; i >= 0; i-- {
		if len(p[i].Points) > 0 {
			return p[i].End()
		}
	}
	return math32.Vector2{}
}

// PointAtDistance returns the point at arc length d along the path,
// interpolating linearly within the segment that contains it.
// If d is outside of [0, Length] the first or last point is returned
// along with false. An empty path always returns false.
func (p Path) PointAtDistance(d float32) (math32.Vector2, bool) {
	if p.Empty() {
		return math32.Vector2{}, false
	}
	if d < 0 {
		return p.first(), false
	}
	var acc float32
	sc := p.Scanner()
	for sc.Scan() {
		a, b := sc.Start(), sc.End()
		l := a.DistanceTo(b)
		if d <= acc+l {
			var t float32
			if l > 0 {
				t = (d - acc) / l
			}
			return a.Lerp(b, t), true
		}
		acc += l
	}
	return p.last(), d <= acc
}

// Samples returns points every step along the path. Each sub-path
// is sampled on its own, starting again at distance 0, and its start
// and end points are always included. A sub-path of a single point
// contributes just that point. If step is not positive, the vertices
// of the path are returned.
func (p Path) Samples(step float32) []math32.Vector2 {
	var pts []math32.Vector2
	for _, s := range p {
		pts = s.appendSamples(pts, step)
	}
	return pts
}

func (s Subpath) appendSamples(pts []math32.Vector2, step float32) []math32.Vector2 {
	n := s.NumSegments()
	if len(s.Points) == 0 {
		return pts
	}
	pts = append(pts, s.Start())
	if step <= 0 {
		for i := range n {
			_, b := s.Segment(i)
			pts = append(pts, b)
		}
		return pts
	}
	next := step
	var acc float32
	for i := range n {
		a, b := s.Segment(i)
		l := a.DistanceTo(b)
		for next < acc+l {
			pts = append(pts, a.Lerp(b, (next-acc)/l))
			next += step
		}
		acc += l
	}
	if acc > 0 {
		pts = append(pts, s.End())
	}
	return pts
}
