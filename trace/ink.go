// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"cogentcore.org/glyphtrace/math32"
	"cogentcore.org/glyphtrace/paint/ppath"
)

// Ink builds the polyline of a stroke being drawn from raw input points.
// Points that move less than Tolerance on both axes from the last
// accepted point are dropped, and with Smooth the accepted points are
// joined by quadratic curves through the midpoints between them.
type Ink struct {
	Tolerance float32
	Smooth    bool

	path ppath.Path

	// last is the last accepted point.
	last math32.Vector2

	// raw is the last point given, accepted or not.
	raw math32.Vector2

	// n is the number of accepted points.
	n int
}

// NewInk returns a new [Ink] with the given tolerance and smoothing.
func NewInk(tolerance float32, smooth bool) *Ink {
	return &Ink{Tolerance: tolerance, Smooth: smooth}
}

// Len returns the number of points accepted so far.
func (k *Ink) Len() int {
	return k.n
}

// Add adds a raw input point, returning whether it was accepted.
// The first point of a stroke is always accepted.
func (k *Ink) Add(p math32.Vector2) bool {
	k.raw = p
	if k.n == 0 {
		k.path.MoveTo(p)
		k.last = p
		k.n = 1
		return true
	}
	if math32.Abs(p.X-k.last.X) < k.Tolerance && math32.Abs(p.Y-k.last.Y) < k.Tolerance {
		return false
	}
	if k.Smooth {
		k.path.QuadTo(k.last, k.last.Add(p).MulScalar(0.5))
	} else {
		k.path.LineTo(p)
	}
	k.last = p
	k.n++
	return true
}

// Path returns the path drawn so far, which should not be modified.
func (k *Ink) Path() ppath.Path {
	return k.path
}

// Finish ends the stroke with a line to the last raw point, and returns
// its path, which is no longer referenced by the ink. The ink is reset
// for the next stroke. It returns nil if no points were added.
func (k *Ink) Finish() ppath.Path {
	if k.n == 0 {
		return nil
	}
	k.path.LineTo(k.raw)
	p := k.path
	k.Reset()
	return p
}

// Reset discards the stroke being drawn.
func (k *Ink) Reset() {
	k.path = nil
	k.n = 0
}

// Transform transforms the stroke being drawn by the given matrix.
func (k *Ink) Transform(m math32.Matrix2) {
	if k.n == 0 {
		return
	}
	k.path = k.path.Transform(m)
	k.last = m.MulVector2AsPoint(k.last)
	k.raw = m.MulVector2AsPoint(k.raw)
}
