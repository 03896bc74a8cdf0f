// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/glyphtrace/math32"
)

// Transform returns a new path with all of its points transformed
// by the given transformation matrix. The path itself is unchanged.
func (p Path) Transform(m math32.Matrix2) Path {
	q := p.Clone()
	if m.IsIdentity() {
		return q
	}
	for _, s := range q {
		for i, pt := range s.Points {
			s.Points[i] = m.MulVector2AsPoint(pt)
		}
	}
	return q
}

// Translate returns a new path translated by (x, y).
func (p Path) Translate(x, y float32) Path {
	return p.Transform(math32.Translate2D(x, y))
}

// Scale returns a new path scaled by (x, y) about the origin.
func (p Path) Scale(x, y float32) Path {
	return p.Transform(math32.Scale2D(x, y))
}
