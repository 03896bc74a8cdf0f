// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import "cogentcore.org/glyphtrace/math32"

// FlattenSegments is the number of line segments each Bézier curve
// is flattened into.
const FlattenSegments = 24

// flattenQuad adds the quadratic Bézier from start through
// control point cp to end as [FlattenSegments] line segments.
func (p *Path) flattenQuad(start, cp, end math32.Vector2) {
	for i := 1; i <= FlattenSegments; i++ {
		t := float32(i) / FlattenSegments
		p.LineTo(quadraticBezierPos(start, cp, end, t))
	}
}

// flattenCubic adds the cubic Bézier from start through control
// points cp1 and cp2 to end as [FlattenSegments] line segments.
func (p *Path) flattenCubic(start, cp1, cp2, end math32.Vector2) {
	for i := 1; i <= FlattenSegments; i++ {
		t := float32(i) / FlattenSegments
		p.LineTo(cubicBezierPos(start, cp1, cp2, end, t))
	}
}

// QuadTo adds a quadratic Bézier from the current position through
// control point cp to end, flattened into line segments.
func (p *Path) QuadTo(cp, end math32.Vector2) {
	p.flattenQuad(p.Pos(), cp, end)
}

// CubeTo adds a cubic Bézier from the current position through
// control points cp1 and cp2 to end, flattened into line segments.
func (p *Path) CubeTo(cp1, cp2, end math32.Vector2) {
	p.flattenCubic(p.Pos(), cp1, cp2, end)
}
