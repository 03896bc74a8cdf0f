// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/glyphtrace/math32"
)

// Path is a flattened geometric path: an ordered list of sub-paths,
// each of which is a polyline. All curves have already been converted
// into line segments, so every consumer works on points only.
type Path []Subpath

// Subpath is one connected polyline of a [Path].
// If Closed is set, there is an implied segment from the last point
// back to the first one; the first point is not repeated at the end.
type Subpath struct {
	Points []math32.Vector2
	Closed bool
}

// Start returns the first point of the sub-path.
func (s Subpath) Start() math32.Vector2 {
	return s.Points[0]
}

// End returns the last point of the sub-path, which for a closed
// sub-path is its start.
func (s Subpath) End() math32.Vector2 {
	if s.Closed {
		return s.Points[0]
	}
	return s.Points[len(s.Points)-1]
}

// Clone returns a deep copy of the sub-path.
func (s Subpath) Clone() Subpath {
	return Subpath{Points: slices.Clone(s.Points), Closed: s.Closed}
}

// Empty returns true if the path has no points.
func (p Path) Empty() bool {
	for _, s := range p {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}

// NumPoints returns the total number of points over all sub-paths.
func (p Path) NumPoints() int {
	n := 0
	for _, s := range p {
		n += len(s.Points)
	}
	return n
}

// Clone returns a deep copy of the path, sharing no points with it.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	q := make(Path, len(p))
	for i, s := range p {
		q[i] = s.Clone()
	}
	return q
}

// Compact returns the path without its empty sub-paths.
// The path is modified in place.
func (p Path) Compact() Path {
	return slices.DeleteFunc(p, func(s Subpath) bool {
		return len(s.Points) == 0
	})
}

// Pos returns the current pen position: the end of the last sub-path.
func (p Path) Pos() math32.Vector2 {
	if len(p) == 0 || len(p[len(p)-1].Points) == 0 {
		return math32.Vector2{}
	}
	return p[len(p)-1].End()
}

// StartPos returns the start of the last sub-path.
func (p Path) StartPos() math32.Vector2 {
	if len(p) == 0 || len(p[len(p)-1].Points) == 0 {
		return math32.Vector2{}
	}
	return p[len(p)-1].Start()
}

// Points returns all of the points of the path in order.
func (p Path) Points() []math32.Vector2 {
	pts := make([]math32.Vector2, 0, p.NumPoints())
	for _, s := range p {
		pts = append(pts, s.Points...)
	}
	return pts
}

// Bounds returns the bounding box of all points in the path.
// The bounds of an empty path is an empty box.
func (p Path) Bounds() math32.Box2 {
	b := math32.B2Empty()
	for _, s := range p {
		for _, pt := range s.Points {
			b.ExpandByPoint(pt)
		}
	}
	return b
}

// Equals returns true if p and q have the same structure and all
// of their points are within tol of each other.
func (p Path) Equals(q Path, tol float32) bool {
	if len(p) != len(q) {
		return false
	}
	for i, s := range p {
		t := q[i]
		if s.Closed != t.Closed || len(s.Points) != len(t.Points) {
			return false
		}
		for j, pt := range s.Points {
			if !pt.InDelta(t.Points[j], tol) {
				return false
			}
		}
	}
	return true
}

// MoveTo starts a new sub-path at the given point.
func (p *Path) MoveTo(pt math32.Vector2) {
	*p = append(*p, Subpath{Points: []math32.Vector2{pt}})
}

// LineTo adds a line segment to the given point. After a [Path.Close]
// a new sub-path is started at the start of the closed one, and on an
// empty path a new sub-path is started at the point itself.
func (p *Path) LineTo(pt math32.Vector2) {
	n := len(*p)
	if n == 0 {
		p.MoveTo(pt)
		return
	}
	last := &(*p)[n-1]
	if last.Closed {
		start := last.Start()
		*p = append(*p, Subpath{Points: []math32.Vector2{start, pt}})
		return
	}
	last.Points = append(last.Points, pt)
}

// Close closes the current sub-path.
func (p *Path) Close() {
	if n := len(*p); n > 0 {
		(*p)[n-1].Closed = true
	}
}

// String returns the path in SVG path syntax, using absolute
// MoveTo, LineTo and ClosePath commands.
func (p Path) String() string {
	var sb strings.Builder
	for _, s := range p {
		for i, pt := range s.Points {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			if i == 0 {
				sb.WriteString("M")
			} else {
				sb.WriteString("L")
			}
			sb.WriteString(num(pt.X))
			sb.WriteByte(' ')
			sb.WriteString(num(pt.Y))
		}
		if s.Closed {
			sb.WriteString(" Z")
		}
	}
	return sb.String()
}

func num(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', Precision, 32)
}
