// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glyphs loads the glyphs to trace from catalog files
// and SVG documents, and keeps them in a reloadable [Library].
package glyphs

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"cogentcore.org/glyphtrace/base/errors"
	"cogentcore.org/glyphtrace/base/fsx"
	"cogentcore.org/glyphtrace/base/iox/tomlx"
	"cogentcore.org/glyphtrace/base/iox/yamlx"
	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/unicode/norm"
)

// SupportedVersions is the constraint that the version
// of a catalog must satisfy.
const SupportedVersions = "^1"

var (
	// ErrUnknownFormat is returned for catalog files that are
	// neither TOML nor YAML.
	ErrUnknownFormat = errors.New("unknown catalog format")

	// ErrUnsupportedVersion is returned for catalogs with a version
	// that does not satisfy [SupportedVersions].
	ErrUnsupportedVersion = errors.New("unsupported catalog version")

	// ErrInvalidGlyph is returned for glyphs without a usable definition.
	ErrInvalidGlyph = errors.New("invalid glyph")
)

// Formats are the supported catalog file formats.
type Formats int32

const (
	None Formats = iota
	TOML
	YAML
)

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return None, fmt.Errorf("%w: extension %q", ErrUnknownFormat, ext)
}

// Glyph is one glyph of a [Catalog]: its strokes in tracing order,
// given either inline or as the paths of an SVG file.
type Glyph struct {

	// Name is the unique name of the glyph, in NFC normal form
	// once the catalog is opened.
	Name string `toml:"name" yaml:"name"`

	// Label is the text to show for the glyph, which defaults to the name.
	Label string `toml:"label,omitempty" yaml:"label,omitempty"`

	// Strokes are the SVG path strings of the strokes.
	Strokes []string `toml:"strokes,omitempty" yaml:"strokes,omitempty"`

	// SVG is an SVG file with one path per stroke, relative to the
	// catalog file. It is used when there are no Strokes.
	SVG string `toml:"svg,omitempty" yaml:"svg,omitempty"`
}

// Catalog is an ordered list of glyphs read from a TOML or YAML file.
type Catalog struct {

	// Version is the semantic version of the catalog format.
	Version string `toml:"version" yaml:"version"`

	// Name is the name of the script or set of glyphs.
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	Glyphs []Glyph `toml:"glyphs" yaml:"glyphs"`

	// Filename is the file the catalog was opened from.
	Filename string `toml:"-" yaml:"-"`
}

// OpenCatalog opens a catalog from the given file, which must have
// a .toml, .yaml or .yml extension. The strokes of glyphs that
// refer to an SVG file are read from that file.
func OpenCatalog(filename string) (*Catalog, error) {
	fn, err := fsx.ExpandHome(filename)
	if err != nil {
		return nil, err
	}
	fn, err = filepath.Abs(fn)
	if err != nil {
		return nil, err
	}
	fsys, name, err := fsx.DirFS(fn)
	if err != nil {
		return nil, err
	}
	c, err := OpenCatalogFS(fsys, name)
	if c != nil {
		c.Filename = fn
	}
	return c, err
}

// OpenCatalogFS opens a catalog from the given file in the given
// filesystem, like [OpenCatalog].
func OpenCatalogFS(fsys fs.FS, filename string) (*Catalog, error) {
	f, err := ExtToFormat(path.Ext(filename))
	if err != nil {
		return nil, err
	}
	c := &Catalog{}
	switch f {
	case TOML:
		err = tomlx.OpenFS(c, fsys, filename)
	case YAML:
		err = yamlx.OpenFS(c, fsys, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("glyphs: reading catalog %s: %w", filename, err)
	}
	c.Filename = filename
	if err := c.CheckVersion(); err != nil {
		return nil, err
	}
	dir := path.Dir(filename)
	for i := range c.Glyphs {
		g := &c.Glyphs[i]
		if len(g.Strokes) > 0 || g.SVG == "" {
			continue
		}
		g.Strokes, err = OpenSVGStrokesFS(fsys, path.Join(dir, filepath.ToSlash(g.SVG)))
		if err != nil {
			return nil, fmt.Errorf("glyphs: glyph %q: %w", g.Name, err)
		}
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

// CheckVersion returns an error if the version of the catalog does not
// satisfy [SupportedVersions]. An empty version is taken as 1.0.0.
func (c *Catalog) CheckVersion() error {
	if c.Version == "" {
		return nil
	}
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrUnsupportedVersion, c.Version, err)
	}
	cs := errors.Must1(semver.NewConstraint(SupportedVersions))
	if !cs.Check(v) {
		return fmt.Errorf("%w %s, want %s", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}

// normalize puts the glyph names in NFC form and checks that they
// are unique and that every glyph has strokes.
func (c *Catalog) normalize() error {
	seen := make(map[string]bool, len(c.Glyphs))
	for i := range c.Glyphs {
		g := &c.Glyphs[i]
		g.Name = NormalizeName(g.Name)
		if g.Label == "" {
			g.Label = g.Name
		}
		switch {
		case g.Name == "":
			return fmt.Errorf("%w: glyph %d has no name", ErrInvalidGlyph, i)
		case seen[g.Name]:
			return fmt.Errorf("%w: duplicate glyph %q", ErrInvalidGlyph, g.Name)
		case len(g.Strokes) == 0:
			return fmt.Errorf("%w: glyph %q has no strokes", ErrInvalidGlyph, g.Name)
		}
		seen[g.Name] = true
	}
	return nil
}

// Names returns the names of the glyphs in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Glyphs))
	for i, g := range c.Glyphs {
		names[i] = g.Name
	}
	return names
}

// NormalizeName returns the given glyph name trimmed and in NFC form,
// so that names typed with decomposed vowel signs match the catalog.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
