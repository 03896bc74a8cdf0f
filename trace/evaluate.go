// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glyphtrace/math32"
	"cogentcore.org/glyphtrace/paint/ppath"
)

// Params are the tunable thresholds of stroke evaluation.
type Params struct {

	// DistanceThreshold is the maximum distance of a traced point
	// from the template stroke.
	DistanceThreshold float32 `toml:"distance_threshold"`

	// Completeness is the minimum ratio of the traced length
	// to the template stroke length.
	Completeness float32 `toml:"completeness"`

	// ProximityStep is the step at which template strokes are
	// sampled for proximity tests.
	ProximityStep float32 `toml:"proximity_step"`

	// SampleStep is the step at which finished user strokes are
	// sampled for evaluation.
	SampleStep float32 `toml:"sample_step"`

	// TouchTolerance is the distance a point must move, on either axis,
	// from the last accepted point to be added to the stroke.
	TouchTolerance float32 `toml:"touch_tolerance"`

	// Smooth joins accepted points with quadratic curves through their
	// midpoints instead of straight lines.
	Smooth bool `toml:"smooth"`
}

// DefaultParams returns the default [Params].
func DefaultParams() Params {
	return Params{
		DistanceThreshold: 50,
		Completeness:      0.98,
		ProximityStep:     10,
		SampleStep:        20,
		TouchTolerance:    4,
		Smooth:            true,
	}
}

// Validate returns an error if the parameters cannot be used.
func (p *Params) Validate() error {
	switch {
	case p.DistanceThreshold < 0:
		return fmt.Errorf("trace: negative distance threshold %g", p.DistanceThreshold)
	case p.Completeness < 0:
		return fmt.Errorf("trace: negative completeness %g", p.Completeness)
	case p.ProximityStep <= 0:
		return fmt.Errorf("trace: proximity step %g must be positive", p.ProximityStep)
	case p.SampleStep <= 0:
		return fmt.Errorf("trace: sample step %g must be positive", p.SampleStep)
	case p.TouchTolerance < 0:
		return fmt.Errorf("trace: negative touch tolerance %g", p.TouchTolerance)
	}
	return nil
}

// steps returns the sampling steps, using the defaults for
// steps that are not positive.
func (p *Params) steps() (proximity, sample float32) {
	d := DefaultParams()
	proximity, sample = p.ProximityStep, p.SampleStep
	if proximity <= 0 {
		proximity = d.ProximityStep
	}
	if sample <= 0 {
		sample = d.SampleStep
	}
	return
}

// Reasons are the outcomes of [Evaluate].
type Reasons int32

const (
	// Accepted means the stroke matches the template stroke.
	Accepted Reasons = iota

	// Empty means the user stroke or the template stroke has no points.
	Empty

	// Incomplete means the user stroke is too short compared
	// to the template stroke.
	Incomplete

	// OffPath means a point of the user stroke is too far from
	// the template stroke.
	OffPath
)

var reasonNames = [...]string{"accepted", "empty", "incomplete", "off path"}

func (r Reasons) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return fmt.Sprintf("Reasons(%d)", int(r))
	}
	return reasonNames[r]
}

// Verdict is the result of [Evaluate].
type Verdict struct {
	Reason Reasons

	// UserLength is the arc length of the user stroke.
	UserLength float32

	// TemplateLength is the arc length of the template stroke.
	TemplateLength float32

	// Completeness is UserLength / TemplateLength, or 0 if the
	// template stroke has no length.
	Completeness float32

	// Miss is the first point of the user stroke found too far from
	// the template stroke, for the OffPath reason.
	Miss math32.Vector2
}

// Accept returns true if the stroke was accepted.
func (v Verdict) Accept() bool {
	return v.Reason == Accepted
}

// Evaluate decides whether the finished user stroke matches the template
// stroke. It is rejected if either is empty, if the user stroke covers
// less than Completeness of the template length, or if any point
// sampled every SampleStep along the user stroke (or just its start and
// end for a stroke shorter than that) is farther than DistanceThreshold
// from the template stroke.
func Evaluate(user, template ppath.Path, prm Params) Verdict {
	v := evaluate(user, template, prm)
	slog.Debug("stroke verdict", "reason", v.Reason, "completeness", v.Completeness, "length", v.UserLength)
	return v
}

func evaluate(user, template ppath.Path, prm Params) Verdict {
	if user.Empty() || template.Empty() {
		return Verdict{Reason: Empty}
	}
	v := Verdict{UserLength: user.Length(), TemplateLength: template.Length()}
	if v.TemplateLength > 0 {
		v.Completeness = v.UserLength / v.TemplateLength
		if v.Completeness < prm.Completeness {
			v.Reason = Incomplete
			return v
		}
	}
	pstep, sstep := prm.steps()
	probe := NewProbe(template, pstep)
	check := func(d float32) bool {
		pt, _ := user.PointAtDistance(d)
		if probe.Near(pt, prm.DistanceThreshold) {
			return true
		}
		v.Reason = OffPath
		v.Miss = pt
		return false
	}
	if v.UserLength < sstep {
		if check(0) {
			check(v.UserLength)
		}
		return v
	}
	for d := float32(0); d <= v.UserLength; d += sstep {
		if !check(d) {
			return v
		}
	}
	return v
}
