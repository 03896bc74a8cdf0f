// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster draws paths, templates and tracing sessions
// onto images with an anti-aliasing vector rasterizer.
package raster

import (
	"image"
	"image/color"

	"cogentcore.org/glyphtrace/math32"
	"cogentcore.org/glyphtrace/paint/ppath"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Renderer fills and strokes paths onto an RGBA image.
type Renderer struct {
	size  math32.Vector2
	image *image.RGBA
	ras   *vector.Rasterizer
}

// New returns a new [Renderer] of the given size, drawing onto the
// given image, or onto a new image if it is nil.
func New(size math32.Vector2, img *image.RGBA) *Renderer {
	psz := size.ToPointCeil()
	if img == nil {
		img = image.NewRGBA(image.Rectangle{Max: psz})
	}
	rs := &Renderer{size: size, image: img}
	rs.ras = vector.NewRasterizer(psz.X, psz.Y)
	return rs
}

// Image returns the image being drawn onto.
func (rs *Renderer) Image() *image.RGBA { return rs.image }

// Size returns the size of the drawing area.
func (rs *Renderer) Size() math32.Vector2 { return rs.size }

// SetSize sets the size of the drawing area, using the given image,
// or a new image if it is nil.
func (rs *Renderer) SetSize(size math32.Vector2, img *image.RGBA) {
	if rs.size == size && img == nil {
		return
	}
	rs.size = size
	psz := size.ToPointCeil()
	if img == nil {
		img = image.NewRGBA(image.Rectangle{Max: psz})
	}
	rs.image = img
	rs.ras.Reset(psz.X, psz.Y)
}

// Clear fills the whole image with the given color.
func (rs *Renderer) Clear(c color.Color) {
	draw.Draw(rs.image, rs.image.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Fill fills the closed polygons of the given path with the given color.
// Overlapping polygons of the same orientation are filled once.
func (rs *Renderer) Fill(p ppath.Path, c color.Color) {
	if p.Empty() {
		return
	}
	psz := rs.size.ToPointCeil()
	rs.ras.Reset(psz.X, psz.Y)
	for _, s := range p {
		if len(s.Points) < 3 {
			continue
		}
		st := s.Start()
		rs.ras.MoveTo(st.X, st.Y)
		for _, pt := range s.Points[1:] {
			rs.ras.LineTo(pt.X, pt.Y)
		}
		rs.ras.ClosePath()
	}
	rs.ras.DrawOp = draw.Over
	rs.ras.Draw(rs.image, rs.image.Bounds(), image.NewUniform(c), image.Point{})
}

// Stroke draws the given path as a line of the given width and cap.
func (rs *Renderer) Stroke(p ppath.Path, width float32, cap ppath.Caps, c color.Color) {
	rs.Fill(p.Stroke(width, cap), c)
}

// StrokeDashed draws the given path as a dashed line of the given width,
// with the dash pattern in units of the line width.
func (rs *Renderer) StrokeDashed(p ppath.Path, width float32, dash []float32, c color.Color) {
	if len(dash) == 0 {
		rs.Stroke(p, width, ppath.CapRound, c)
		return
	}
	offset, d := ppath.ScaleDash(width, 0, dash)
	rs.Stroke(p.Dash(offset, d...), width, ppath.CapButt, c)
}

// Dot draws a filled circle of the given radius.
func (rs *Renderer) Dot(center math32.Vector2, radius float32, c color.Color) {
	var p ppath.Path
	p.Circle(center.X, center.Y, radius)
	rs.Fill(p, c)
}
