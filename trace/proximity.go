// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"cogentcore.org/glyphtrace/math32"
	"cogentcore.org/glyphtrace/paint/ppath"
)

// Probe answers proximity queries against a template stroke, using
// points sampled along the stroke at a fixed step. Distances are thus
// approximate, with an error bounded by half of the step.
type Probe struct {
	samples []math32.Vector2
}

// NewProbe returns a [Probe] for the given stroke, sampled every step
// along each of its sub-paths.
func NewProbe(stroke ppath.Path, step float32) *Probe {
	return &Probe{samples: stroke.Samples(step)}
}

// Empty returns true if the stroke of the probe has no points.
func (pb *Probe) Empty() bool {
	return len(pb.samples) == 0
}

// Distance returns the distance from p to the nearest sample of
// the stroke, which is [math32.Infinity] for an empty stroke.
func (pb *Probe) Distance(p math32.Vector2) float32 {
	d2 := math32.Infinity
	for _, s := range pb.samples {
		d2 = min(d2, p.DistanceToSquared(s))
	}
	return math32.Sqrt(d2)
}

// Near returns true if p is within threshold of the stroke.
func (pb *Probe) Near(p math32.Vector2, threshold float32) bool {
	if threshold < 0 {
		return false
	}
	t2 := threshold * threshold
	for _, s := range pb.samples {
		if p.DistanceToSquared(s) <= t2 {
			return true
		}
	}
	return false
}

// IsNear returns true if the point p is within threshold of the template
// stroke, measured to points sampled every step along each sub-path of
// the stroke. It is always false for an empty stroke.
func IsNear(p math32.Vector2, stroke ppath.Path, threshold, step float32) bool {
	return NewProbe(stroke, step).Near(p, threshold)
}
