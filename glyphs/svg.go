// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glyphs

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"cogentcore.org/glyphtrace/base/errors"
	"golang.org/x/net/html/charset"
)

// ErrNoPaths is returned for SVG documents without any path data.
var ErrNoPaths = errors.New("no path data in SVG")

// OpenSVGStrokes reads the strokes of a glyph from the given SVG file.
func OpenSVGStrokes(filename string) ([]string, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadSVGStrokes(bufio.NewReader(fp))
}

// OpenSVGStrokesFS reads the strokes of a glyph from the given SVG file
// in the given filesystem.
func OpenSVGStrokesFS(fsys fs.FS, filename string) ([]string, error) {
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadSVGStrokes(bufio.NewReader(fp))
}

// ReadSVGStrokes reads the strokes of a glyph from an SVG document:
// the d attribute of every path element, in document order, is one
// stroke. Paths without a d attribute are ignored. The strokes are
// not parsed here, so invalid path data is left to the template loader.
func ReadSVGStrokes(reader io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(reader)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	var strokes []string
	for {
		t, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("glyphs: reading SVG: %w", err)
		}
		se, ok := t.(xml.StartElement)
		if !ok || se.Name.Local != "path" {
			continue
		}
		for _, attr := range se.Attr {
			if attr.Name.Local == "d" && attr.Name.Space == "" {
				strokes = append(strokes, strings.TrimSpace(attr.Value))
				break
			}
		}
	}
	if len(strokes) == 0 {
		return nil, ErrNoPaths
	}
	return strokes, nil
}
