// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"fmt"

	"cogentcore.org/glyphtrace/base/errors"
)

var (
	// ErrDegenerateGeometry is returned when a template cannot be fit into
	// a region because its bounding box has zero width or height, or it
	// has no strokes at all.
	ErrDegenerateGeometry = errors.New("degenerate template geometry")

	// ErrInvalidRegion is returned for a target region, or fill fraction,
	// that is not positive.
	ErrInvalidRegion = errors.New("invalid target region")

	// ErrNoTemplate is returned for operations that need a template
	// when none is given.
	ErrNoTemplate = errors.New("no template")

	// ErrEmptyStroke is the error recorded for a stroke whose path
	// parsed without error but has no points.
	ErrEmptyStroke = errors.New("empty stroke")
)

// StrokeError is the error recorded for a stroke of a template
// that could not be loaded.
type StrokeError struct {
	// Index is the index of the stroke in the list passed to [LoadTemplate].
	Index int

	// Source is the path data of the stroke.
	Source string

	Err error
}

func (e *StrokeError) Error() string {
	return fmt.Sprintf("stroke %d: %v", e.Index, e.Err)
}

func (e *StrokeError) Unwrap() error {
	return e.Err
}
