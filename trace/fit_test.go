// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"testing"

	"cogentcore.org/glyphtrace/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitToRegion(t *testing.T) {
	tpl := MustLoadTemplate("M 0 0 L 100 0 L 100 100 L 0 100 Z")
	vt, err := FitToRegion(tpl, 400, 800, DefaultFitOptions())
	require.NoError(t, err)

	// padded bounds are -62.5..162.5, 225 wide, filling 80% of the width
	scale := float32(320) / 225
	assert.InDelta(t, scale, vt.Scale, 1.0e-5)
	tolEqualVec2(t, math32.Vec2(40+62.5*scale, 240+62.5*scale), vt.Offset, 1.0e-3)

	ft := tpl.Transform(vt)
	tolEqualVec2(t, math32.Vec2(200, 400), ft.Bounds.Center(), 1.0e-3)
	assert.InDelta(t, 100*scale, ft.Bounds.Size().X, 1.0e-3)
}

func TestFitToRegionFits(t *testing.T) {
	glyphs := [][]string{
		{"M 0 0 L 100 0 L 100 100 L 0 100 Z"},
		{"M 10 80 C 40 10, 65 10, 95 80 S 150 150, 180 80", "M 20 20 L 20 140"},
		{"M -500 -20 L 500 20"},
		{"M 3 4 l 0.5 0.25"},
	}
	regions := []math32.Vector2{{X: 400, Y: 800}, {X: 800, Y: 400}, {X: 100, Y: 100}, {X: 1920, Y: 1080}}
	opts := DefaultFitOptions()
	for _, g := range glyphs {
		tpl := MustLoadTemplate(g...)
		for _, r := range regions {
			ft, vt, err := FitTemplate(tpl, r.X, r.Y, opts)
			require.NoError(t, err)
			region := math32.B2(0, 0, r.X, r.Y)
			b := ft.Bounds
			b.ExpandByScalar((opts.StrokeHalfWidth + opts.Padding) * vt.Scale)
			assert.True(t, region.ContainsBox(b), "%v in %v: %v", g, r, b)

			// uniform scale fills exactly one of the directions
			sz := b.Size()
			fx, fy := sz.X/r.X, sz.Y/r.Y
			assert.InDelta(t, opts.Fill, max(fx, fy), 1.0e-3)
		}
	}
}

func TestFitToRegionErrors(t *testing.T) {
	opts := DefaultFitOptions()
	_, err := FitToRegion(MustLoadTemplate("M 0 0 L 100 0"), 400, 400, opts)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	_, err = FitToRegion(MustLoadTemplate("M 5 5"), 400, 400, opts)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	_, err = FitToRegion(MustLoadTemplate(), 400, 400, opts)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	_, err = FitToRegion(nil, 400, 400, opts)
	assert.ErrorIs(t, err, ErrDegenerateGeometry)

	tpl := MustLoadTemplate("M 0 0 L 100 100")
	_, err = FitToRegion(tpl, 0, 400, opts)
	assert.ErrorIs(t, err, ErrInvalidRegion)
	_, err = FitToRegion(tpl, 400, -1, opts)
	assert.ErrorIs(t, err, ErrInvalidRegion)
	_, err = FitToRegion(tpl, 400, 400, FitOptions{})
	assert.ErrorIs(t, err, ErrInvalidRegion)

	ft, _, err := FitTemplate(tpl, 0, 0, opts)
	assert.Error(t, err)
	assert.Nil(t, ft)
}

func TestViewTransform(t *testing.T) {
	vt := ViewTransform{Scale: 2.5, Offset: math32.Vec2(-10, 30)}
	p := math32.Vec2(4, -8)
	tolEqualVec2(t, math32.Vec2(0, 10), vt.Apply(p))
	tolEqualVec2(t, vt.Apply(p), vt.Matrix().MulVector2AsPoint(p))
	tolEqualVec2(t, p, vt.Invert().Apply(vt.Apply(p)))
	assert.Equal(t, ViewTransform{}, ViewTransform{}.Invert())

	id := IdentityTransform()
	assert.Equal(t, p, id.Apply(p))
	assert.True(t, id.Matrix().IsIdentity())
	assert.Equal(t, "scale(2.5) translate(-10, 30)", vt.String())
}
