// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import "cogentcore.org/glyphtrace/math32"

// Caps specifies the end-cap of a stroked line: stroke-linecap property in SVG
type Caps int32

const (
	// CapButt indicates to draw no line caps; it draws a
	// line with the length of the specified length.
	CapButt Caps = iota

	// CapRound indicates to draw a semicircle on each line
	// end with a diameter of the stroke width.
	CapRound

	// CapSquare indicates to draw a rectangle on each line end
	// with a height of the stroke width and a width of half of the
	// stroke width.
	CapSquare
)

// Dash patterns
var (
	Solid          = []float32{}
	Dotted         = []float32{1.0, 2.0}
	Dashed         = []float32{3.0, 3.0}
	SparselyDashed = []float32{3.0, 6.0}
)

// ScaleDash returns the dash offset and pattern scaled by the given factor.
func ScaleDash(scale float32, offset float32, d []float32) (float32, []float32) {
	d2 := make([]float32, len(d))
	for i := range d {
		d2[i] = d[i] * scale
	}
	return offset * scale, d2
}

// Stroke returns the outline of the path stroked with the given width,
// as a set of closed polygons to be filled with the non-zero rule.
// Every segment becomes a rectangle and the vertices between segments
// are joined with circles; the ends of open sub-paths get the given cap.
// All of the polygons have a positive orientation.
func (p Path) Stroke(width float32, cap Caps) Path {
	hw := width / 2
	var q Path
	if hw <= 0 {
		return q
	}
	for _, s := range p {
		n := s.NumSegments()
		if n == 0 {
			if len(s.Points) > 0 {
				q.dot(s.Start(), hw, cap)
			}
			continue
		}
		for i := range n {
			a, b := s.Segment(i)
			d := b.Sub(a)
			l := d.Length()
			if l == 0 {
				continue
			}
			if cap == CapSquare && !s.Closed {
				ext := d.MulScalar(hw / l)
				if i == 0 {
					a = a.Sub(ext)
				}
				if i == n-1 {
					b = b.Add(ext)
				}
			}
			nrm := d.Rot90CCW().MulScalar(hw / l)
			q.Polygon(a.Sub(nrm), b.Sub(nrm), b.Add(nrm), a.Add(nrm))
		}
		for i, pt := range s.Points {
			end := !s.Closed && (i == 0 || i == len(s.Points)-1)
			if !end || cap == CapRound {
				q.Circle(pt.X, pt.Y, hw)
			}
		}
	}
	return q
}

// dot adds the stroke of a single point.
func (p *Path) dot(pt math32.Vector2, hw float32, cap Caps) {
	switch cap {
	case CapRound:
		p.Circle(pt.X, pt.Y, hw)
	case CapSquare:
		p.Rectangle(pt.X-hw, pt.Y-hw, 2*hw, 2*hw)
	}
}
