// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trace judges freehand strokes traced over glyph templates.
//
// A [Template] is the ordered list of strokes of a glyph, parsed from
// SVG path data. [FitToRegion] computes the [ViewTransform] that fits a
// template into a drawing region. [IsNear] and [Evaluate] decide whether
// points and finished strokes follow a template stroke, and a [Session]
// walks through the strokes of a template in order.
package trace

import (
	"iter"
	"log/slog"
	"slices"

	"cogentcore.org/glyphtrace/base/errors"
	"cogentcore.org/glyphtrace/math32"
	"cogentcore.org/glyphtrace/paint/ppath"
)

// Stroke is one stroke of a [Template].
type Stroke struct {
	// Index is the index of the stroke in the path data the template
	// was loaded from, which differs from its position in
	// [Template.Strokes] when earlier strokes were skipped.
	Index int

	// Source is the SVG path data of the stroke.
	Source string

	// Path is the flattened geometry of the stroke.
	Path ppath.Path

	// Bounds is the bounding box of Path.
	Bounds math32.Box2

	// Length is the arc length of Path.
	Length float32
}

// newStroke returns a stroke with its bounds and length computed from the path.
func newStroke(index int, source string, p ppath.Path) Stroke {
	return Stroke{Index: index, Source: source, Path: p, Bounds: p.Bounds(), Length: p.Length()}
}

// Template is the reference geometry of a glyph: the strokes
// in the order in which they must be traced. A template is
// not modified after it is made, so it can be shared freely.
type Template struct {
	Strokes []Stroke

	// Bounds is the combined bounding box of all strokes.
	Bounds math32.Box2

	// Skipped has the source indexes of the strokes that could
	// not be loaded.
	Skipped []int
}

// LoadTemplate parses the path data of each stroke of a glyph into a
// [Template]. Strokes that fail to parse or have no points are skipped,
// logged, and reported in the returned error as [*StrokeError]s; the
// template of the remaining strokes is always returned.
func LoadTemplate(strokes []string) (*Template, error) {
	tpl := &Template{Bounds: math32.B2Empty()}
	var errs []error
	for i, d := range strokes {
		p, err := ppath.ParseSVGPath(d)
		if err == nil {
			p = p.Compact()
			if p.Empty() {
				err = ErrEmptyStroke
			}
		}
		if err != nil {
			se := &StrokeError{Index: i, Source: d, Err: err}
			slog.Warn("skipping template stroke", "index", i, "err", err)
			errs = append(errs, se)
			tpl.Skipped = append(tpl.Skipped, i)
			continue
		}
		tpl.add(newStroke(i, d, p))
	}
	return tpl, errors.Join(errs...)
}

// MustLoadTemplate is like [LoadTemplate] but panics if any stroke
// could not be loaded. It is intended for templates known at compile time.
func MustLoadTemplate(strokes ...string) *Template {
	return errors.Must1(LoadTemplate(strokes))
}

func (t *Template) add(s Stroke) {
	t.Strokes = append(t.Strokes, s)
	t.Bounds.ExpandByBox(s.Bounds)
}

// Len returns the number of strokes.
func (t *Template) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Strokes)
}

// Paths returns the paths of all strokes, in order.
func (t *Template) Paths() []ppath.Path {
	ps := make([]ppath.Path, len(t.Strokes))
	for i, s := range t.Strokes {
		ps[i] = s.Path
	}
	return ps
}

// Transform returns a new template with all strokes transformed
// by the given view transform.
func (t *Template) Transform(vt ViewTransform) *Template {
	m := vt.Matrix()
	nt := &Template{Bounds: math32.B2Empty(), Skipped: slices.Clone(t.Skipped)}
	for _, s := range t.Strokes {
		nt.add(newStroke(s.Index, s.Source, s.Path.Transform(m)))
	}
	return nt
}

// Store holds templates by glyph name, in the order they were added.
// It is not safe for concurrent mutation.
type Store struct {
	names     []string
	templates map[string]*Template
}

// NewStore returns a new empty [Store].
func NewStore() *Store {
	return &Store{templates: map[string]*Template{}}
}

// Add adds the template under the given name, replacing any
// template of the same name while keeping its position.
func (s *Store) Add(name string, tpl *Template) {
	if _, has := s.templates[name]; !has {
		s.names = append(s.names, name)
	}
	s.templates[name] = tpl
}

// Get returns the template of the given name.
func (s *Store) Get(name string) (*Template, bool) {
	tpl, ok := s.templates[name]
	return tpl, ok
}

// Names returns the names of all templates in order.
func (s *Store) Names() []string {
	return slices.Clone(s.names)
}

// Len returns the number of templates.
func (s *Store) Len() int {
	return len(s.names)
}

// All returns an iterator over the names and templates in order.
func (s *Store) All() iter.Seq2[string, *Template] {
	return func(yield func(string, *Template) bool) {
		for _, n := range s.names {
			if !yield(n, s.templates[n]) {
				return
			}
		}
	}
}
