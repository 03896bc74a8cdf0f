// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glyphtrace/math32"
)

// FitOptions are the parameters of [FitToRegion].
type FitOptions struct {

	// Fill is the fraction of the region size that the padded
	// template may take up.
	Fill float32 `toml:"fill"`

	// StrokeHalfWidth is half of the widest stroke used to draw
	// the template, so that strokes at the edge are not clipped.
	StrokeHalfWidth float32 `toml:"stroke_half_width"`

	// Padding is added around the template bounds, in addition
	// to StrokeHalfWidth.
	Padding float32 `toml:"padding"`
}

// DefaultFitOptions returns the default [FitOptions].
func DefaultFitOptions() FitOptions {
	return FitOptions{Fill: 0.8, StrokeHalfWidth: 12.5, Padding: 50}
}

// ViewTransform is a uniform scale followed by a translation, mapping
// template coordinates to the coordinates of a drawing region.
// The zero value is not valid: use [IdentityTransform].
type ViewTransform struct {
	Scale  float32
	Offset math32.Vector2
}

// IdentityTransform returns the [ViewTransform] that changes nothing.
func IdentityTransform() ViewTransform {
	return ViewTransform{Scale: 1}
}

// Apply returns the point transformed into region coordinates.
func (vt ViewTransform) Apply(p math32.Vector2) math32.Vector2 {
	return p.MulScalar(vt.Scale).Add(vt.Offset)
}

// Matrix returns the transform as a matrix.
func (vt ViewTransform) Matrix() math32.Matrix2 {
	return math32.Translate2D(vt.Offset.X, vt.Offset.Y).Mul(math32.Scale2D(vt.Scale, vt.Scale))
}

// Invert returns the inverse transform, mapping region coordinates
// back to template coordinates.
func (vt ViewTransform) Invert() ViewTransform {
	if vt.Scale == 0 {
		return ViewTransform{}
	}
	return ViewTransform{Scale: 1 / vt.Scale, Offset: vt.Offset.DivScalar(-vt.Scale)}
}

func (vt ViewTransform) String() string {
	return fmt.Sprintf("scale(%g) translate%v", vt.Scale, vt.Offset)
}

// FitToRegion returns the transform that fits the template into a region
// of the given size. The template bounds are padded by
// StrokeHalfWidth + Padding on all sides, scaled uniformly so that they
// take up at most Fill of the region in both directions, and centered.
// A template without strokes or with a bounding box of zero width or
// height returns [ErrDegenerateGeometry], in which case callers should
// not scale or draw it.
func FitToRegion(tpl *Template, width, height float32, opts FitOptions) (ViewTransform, error) {
	if width <= 0 || height <= 0 || opts.Fill <= 0 {
		return ViewTransform{}, fmt.Errorf("%w: %gx%g with fill %g", ErrInvalidRegion, width, height, opts.Fill)
	}
	if tpl.Len() == 0 {
		return ViewTransform{}, fmt.Errorf("%w: no strokes", ErrDegenerateGeometry)
	}
	b := tpl.Bounds
	if b.IsDegenerate() {
		slog.Warn("not fitting degenerate template", "bounds", b)
		return ViewTransform{}, fmt.Errorf("%w: bounds %v to %v", ErrDegenerateGeometry, b.Min, b.Max)
	}
	b.ExpandByScalar(opts.StrokeHalfWidth + opts.Padding)
	sz := b.Size()
	scale := min(width*opts.Fill/sz.X, height*opts.Fill/sz.Y)
	off := math32.Vec2(
		(width-sz.X*scale)/2-b.Min.X*scale,
		(height-sz.Y*scale)/2-b.Min.Y*scale,
	)
	return ViewTransform{Scale: scale, Offset: off}, nil
}

// FitTemplate fits the template into the region with [FitToRegion] and
// returns the transformed template along with the transform.
func FitTemplate(tpl *Template, width, height float32, opts FitOptions) (*Template, ViewTransform, error) {
	vt, err := FitToRegion(tpl, width, height, opts)
	if err != nil {
		return nil, vt, err
	}
	return tpl.Transform(vt), vt, nil
}
