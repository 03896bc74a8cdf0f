// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glyphs

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"

	"cogentcore.org/glyphtrace/base/errors"
	"cogentcore.org/glyphtrace/trace"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// ErrUnknownGlyph is returned by [Library.Template] for names
// that are not in the library.
var ErrUnknownGlyph = errors.New("unknown glyph")

// MinSimilarity is the minimum similarity of a glyph name
// to be suggested for an unknown name.
var MinSimilarity = 0.5

// Library holds the templates of the glyphs of a [Catalog].
// It is safe for concurrent use: a reload publishes a complete new
// set of templates, and readers see either the old or the new set.
type Library struct {
	current atomic.Pointer[library]
}

// library is one loaded set of glyphs.
type library struct {
	catalog *Catalog
	store   *trace.Store
	glyphs  map[string]*Glyph
}

// NewLibrary returns a new empty [Library].
func NewLibrary() *Library {
	l := &Library{}
	l.current.Store(&library{catalog: &Catalog{}, store: trace.NewStore()})
	return l
}

// OpenLibrary returns a new [Library] with the glyphs of the given catalog file.
func OpenLibrary(filename string) (*Library, error) {
	l := NewLibrary()
	return l, l.Open(filename)
}

// Open loads the glyphs of the given catalog file, replacing the
// current ones. If the catalog cannot be opened, the current
// glyphs are kept.
func (l *Library) Open(filename string) error {
	c, err := OpenCatalog(filename)
	if err != nil {
		return err
	}
	return l.Load(c)
}

// Load builds the templates of the glyphs of the given catalog and
// replaces the current glyphs with them. Glyphs with strokes that do not
// parse keep their other strokes; glyphs without a single usable stroke
// are left out. The returned error joins the errors of all glyphs.
func (l *Library) Load(c *Catalog) error {
	lib := &library{catalog: c, store: trace.NewStore(), glyphs: make(map[string]*Glyph, len(c.Glyphs))}
	var errs []error
	for i := range c.Glyphs {
		g := &c.Glyphs[i]
		tpl, err := trace.LoadTemplate(g.Strokes)
		if err != nil {
			errs = append(errs, fmt.Errorf("glyph %q: %w", g.Name, err))
		}
		if tpl.Len() == 0 {
			slog.Warn("skipping glyph without strokes", "glyph", g.Name)
			continue
		}
		lib.store.Add(g.Name, tpl)
		lib.glyphs[g.Name] = g
	}
	l.current.Store(lib)
	slog.Info("loaded glyphs", "catalog", c.Filename, "glyphs", lib.store.Len())
	return errors.Join(errs...)
}

// Catalog returns the catalog the current glyphs were loaded from.
func (l *Library) Catalog() *Catalog {
	return l.current.Load().catalog
}

// Store returns the current templates.
func (l *Library) Store() *trace.Store {
	return l.current.Load().store
}

// Len returns the number of glyphs.
func (l *Library) Len() int {
	return l.Store().Len()
}

// Names returns the names of the glyphs in catalog order.
func (l *Library) Names() []string {
	return l.Store().Names()
}

// Glyph returns the glyph with the given name.
func (l *Library) Glyph(name string) (*Glyph, bool) {
	g, ok := l.current.Load().glyphs[NormalizeName(name)]
	return g, ok
}

// Template returns the template of the glyph with the given name,
// which is normalized first. The error for an unknown name suggests
// similar names.
func (l *Library) Template(name string) (*trace.Template, error) {
	name = NormalizeName(name)
	if tpl, ok := l.Store().Get(name); ok {
		return tpl, nil
	}
	sug := l.Suggest(name, 3)
	if len(sug) == 0 {
		return nil, fmt.Errorf("%w %q", ErrUnknownGlyph, name)
	}
	return nil, fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownGlyph, name, strings.Join(sug, ", "))
}

// Suggest returns up to n glyph names that are similar to the given name,
// most similar first.
func (l *Library) Suggest(name string, n int) []string {
	type match struct {
		name string
		sim  float64
	}
	name = NormalizeName(name)
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	var ms []match
	for _, nm := range l.Names() {
		sim := strutil.Similarity(name, nm, lev)
		if sim >= MinSimilarity {
			ms = append(ms, match{nm, sim})
		}
	}
	slices.SortStableFunc(ms, func(a, b match) int {
		switch {
		case a.sim > b.sim:
			return -1
		case a.sim < b.sim:
			return 1
		}
		return 0
	})
	var res []string
	for i := range min(n, len(ms)) {
		res = append(res, ms[i].name)
	}
	return res
}

// Cursor returns a new [Cursor] over the current glyph names.
func (l *Library) Cursor() *Cursor {
	return NewCursor(l.Names())
}
