// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import "strconv"

// Command is one of the SVG path drawing commands, independent
// of whether its coordinates are absolute or relative.
type Command int32

const (
	// MoveTo starts a new sub-path at the given point (M, m).
	MoveTo Command = iota

	// LineTo draws a straight line to the given point (L, l).
	LineTo

	// HorizontalLineTo draws a line changing only x (H, h).
	HorizontalLineTo

	// VerticalLineTo draws a line changing only y (V, v).
	VerticalLineTo

	// CubicTo draws a cubic Bézier curve (C, c).
	CubicTo

	// SmoothCubicTo draws a cubic Bézier curve whose first control point
	// is reflected from the previous cubic (S, s).
	SmoothCubicTo

	// QuadTo draws a quadratic Bézier curve (Q, q).
	QuadTo

	// SmoothQuadTo draws a quadratic Bézier curve whose control point
	// is reflected from the previous quadratic (T, t).
	SmoothQuadTo

	// ArcTo draws an elliptical arc (A, a), which is approximated here
	// as a straight line to its end point.
	ArcTo

	// ClosePath closes the current sub-path (Z, z).
	ClosePath
)

var commandLetters = [...]byte{'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z'}

var commandNames = [...]string{"MoveTo", "LineTo", "HorizontalLineTo", "VerticalLineTo", "CubicTo", "SmoothCubicTo", "QuadTo", "SmoothQuadTo", "ArcTo", "ClosePath"}

var commandArgs = [...]int{2, 2, 1, 1, 6, 4, 4, 2, 7, 0}

// NumArgs returns the number of numeric operands the command consumes.
func (c Command) NumArgs() int {
	return commandArgs[c]
}

// String returns the name of the command.
func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "Command(" + strconv.Itoa(int(c)) + ")"
	}
	return commandNames[c]
}

// Cmd is a [Command] together with whether its operands are
// relative to the current point (lower case letters).
type Cmd struct {
	Command Command
	Rel     bool
}

// Letter returns the SVG letter for the command.
func (c Cmd) Letter() byte {
	l := commandLetters[c.Command]
	if c.Rel {
		l += 'a' - 'A'
	}
	return l
}

// String returns the SVG letter for the command.
func (c Cmd) String() string {
	return string(c.Letter())
}

// DecodeCmd decodes a path command letter, returning false
// if the letter is not a path command.
func DecodeCmd(r byte) (Cmd, bool) {
	rel := r >= 'a' && r <= 'z'
	if rel {
		r -= 'a' - 'A'
	}
	for i, l := range commandLetters {
		if l == r {
			return Cmd{Command(i), rel}, true
		}
	}
	return Cmd{}, false
}

// continuation returns the command that implicitly repeats after
// a full set of operands: MoveTo continues as LineTo.
func (c Cmd) continuation() Cmd {
	if c.Command == MoveTo {
		return Cmd{LineTo, c.Rel}
	}
	return c
}
