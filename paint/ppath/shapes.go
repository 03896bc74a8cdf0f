// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/glyphtrace/math32"
)

// CircleSegments is the number of line segments used for a full
// circle or ellipse.
var CircleSegments = 32

// Line adds a line segment of from (x1,y1) to (x2,y2).
func (p *Path) Line(x1, y1, x2, y2 float32) *Path {
	if Equal(x1, x2) && Equal(y1, y2) {
		return p
	}
	p.MoveTo(math32.Vec2(x1, y1))
	p.LineTo(math32.Vec2(x2, y2))
	return p
}

// Polyline adds multiple connected lines, with no final Close.
func (p *Path) Polyline(points ...math32.Vector2) *Path {
	sz := len(points)
	if sz < 2 {
		return p
	}
	p.MoveTo(points[0])
	for i := 1; i < sz; i++ {
		p.LineTo(points[i])
	}
	return p
}

// Polygon adds multiple connected lines with a final Close.
func (p *Path) Polygon(points ...math32.Vector2) *Path {
	p.Polyline(points...)
	p.Close()
	return p
}

// Rectangle adds a rectangle of width w and height h.
func (p *Path) Rectangle(x, y, w, h float32) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return p
	}
	p.MoveTo(math32.Vec2(x, y))
	p.LineTo(math32.Vec2(x+w, y))
	p.LineTo(math32.Vec2(x+w, y+h))
	p.LineTo(math32.Vec2(x, y+h))
	p.Close()
	return p
}

// Circle adds a circle at given center coordinates of radius r.
func (p *Path) Circle(cx, cy, r float32) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse at given center coordinates of radii rx and ry,
// as a closed polygon of [CircleSegments] sides.
func (p *Path) Ellipse(cx, cy, rx, ry float32) *Path {
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return p
	}
	n := CircleSegments
	p.MoveTo(math32.Vec2(cx+rx, cy))
	for i := 1; i < n; i++ {
		sin, cos := math32.Sincos(2 * math32.Pi * float32(i) / float32(n))
		p.LineTo(math32.Vec2(cx+rx*cos, cy+ry*sin))
	}
	p.Close()
	return p
}
