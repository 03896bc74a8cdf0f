// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"

	"cogentcore.org/glyphtrace/math32"
	"cogentcore.org/glyphtrace/paint/ppath"
	"cogentcore.org/glyphtrace/trace"
)

// Options are the colors and widths used to draw a tracing session.
type Options struct {
	Background color.Color

	// Template is the color of the template strokes not yet traced.
	Template color.Color

	// Active is the color of the template stroke to trace next.
	Active color.Color

	// Done is the color of the template strokes already traced.
	Done color.Color

	// Ink is the color of the user strokes.
	Ink color.Color

	// OffTrack is the color of the stroke being drawn once it has
	// left the template stroke.
	OffTrack color.Color

	// Guide is the color of the dashed center line and the start dot
	// of the active stroke.
	Guide color.Color

	// TemplateWidth is the width of the template strokes, which is
	// twice [trace.FitOptions.StrokeHalfWidth].
	TemplateWidth float32

	// InkWidth is the width of the user strokes.
	InkWidth float32

	// Fit are the options for fitting a template to the image in [Preview].
	Fit trace.FitOptions
}

// DefaultOptions returns the default [Options].
func DefaultOptions() Options {
	fit := trace.DefaultFitOptions()
	return Options{
		Background:    color.White,
		Template:      color.RGBA{0xd0, 0xd0, 0xd0, 0xff},
		Active:        color.RGBA{0x9e, 0xc5, 0xfe, 0xff},
		Done:          color.RGBA{0xa5, 0xd6, 0xa7, 0xff},
		Ink:           color.RGBA{0x1b, 0x5e, 0x20, 0xff},
		OffTrack:      color.RGBA{0xc6, 0x28, 0x28, 0xff},
		Guide:         color.RGBA{0x15, 0x65, 0xc0, 0xff},
		TemplateWidth: 2 * fit.StrokeHalfWidth,
		InkWidth:      10,
		Fit:           fit,
	}
}

// Render draws the given session snapshot, which is in the coordinates
// of the image. The template strokes are drawn first, then the accepted
// user strokes and the stroke being drawn.
func (rs *Renderer) Render(sn *trace.Snapshot, opts *Options) {
	rs.Clear(opts.Background)
	for i, st := range sn.Strokes {
		c := opts.Template
		switch {
		case i < sn.Index:
			c = opts.Done
		case i == sn.Index && sn.State == trace.Active:
			c = opts.Active
		}
		rs.Stroke(st, opts.TemplateWidth, ppath.CapRound, c)
	}
	if sn.State == trace.Active && sn.Index < len(sn.Strokes) {
		st := sn.Strokes[sn.Index]
		gw := max(opts.InkWidth/4, 1)
		rs.StrokeDashed(st, gw, ppath.Dashed, opts.Guide)
		if !st.Empty() {
			rs.Dot(st.StartPos(), opts.InkWidth*0.75, opts.Guide)
		}
	}
	for _, a := range sn.Accepted {
		rs.Stroke(a, opts.InkWidth, ppath.CapRound, opts.Ink)
	}
	ink := opts.Ink
	if !sn.OnTrack {
		ink = opts.OffTrack
	}
	rs.Stroke(sn.Ink, opts.InkWidth, ppath.CapRound, ink)
}

// RenderSnapshot returns a new image of the given size with the given
// session snapshot drawn on it.
func RenderSnapshot(sn *trace.Snapshot, width, height int, opts *Options) *image.RGBA {
	rs := New(math32.Vec2(float32(width), float32(height)), nil)
	rs.Render(sn, opts)
	return rs.Image()
}

// Preview returns a new image of the given size with the given template
// fitted to it and drawn as at the start of tracing.
func Preview(tpl *trace.Template, width, height int, opts *Options) (*image.RGBA, error) {
	ft, _, err := trace.FitTemplate(tpl, float32(width), float32(height), opts.Fit)
	if err != nil {
		return nil, err
	}
	sess := trace.NewSession(ft, trace.DefaultParams())
	return RenderSnapshot(sess.Snapshot(), width, height, opts), nil
}
