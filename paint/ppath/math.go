// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/glyphtrace/math32"
)

var (
	//	In C, FLT_EPSILON = 1.19209e-07

	// Epsilon is the smallest number below which we assume the value to be zero.
	// This is to avoid numerical floating point issues.
	Epsilon = float32(1e-7)

	// Precision is the number of significant digits at which floating point
	// value will be printed to output formats.
	Precision = 7
)

// Equal returns true if a and b are equal within an absolute
// tolerance of Epsilon.
func Equal(a, b float32) bool {
	// avoid math32.Abs
	if a < b {
		return b-a <= Epsilon
	}
	return a-b <= Epsilon
}

func EqualPoint(a, b math32.Vector2) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// quadraticBezierPos returns the position at t in [0,1] of the quadratic
// Bézier with start p0, control p1 and end p2.
func quadraticBezierPos(p0, p1, p2 math32.Vector2, t float32) math32.Vector2 {
	mt := 1 - t
	p0 = p0.MulScalar(mt * mt)
	p1 = p1.MulScalar(2 * mt * t)
	p2 = p2.MulScalar(t * t)
	return p0.Add(p1).Add(p2)
}

// cubicBezierPos returns the position at t in [0,1] of the cubic Bézier
// with start p0, controls p1 and p2, and end p3.
func cubicBezierPos(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	mt := 1 - t
	p0 = p0.MulScalar(mt * mt * mt)
	p1 = p1.MulScalar(3 * mt * mt * t)
	p2 = p2.MulScalar(3 * mt * t * t)
	p3 = p3.MulScalar(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}
