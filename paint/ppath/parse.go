// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/glyphtrace/base/errors"
	"cogentcore.org/glyphtrace/math32"
	"github.com/tdewolff/parse/v2/strconv"
)

// ParseSVGPath parses an SVG path data string into a flattened [Path].
// Curves are flattened into [FlattenSegments] line segments each, and
// arcs are replaced by a straight line to their end point.
// Any error is a [*ParseError], in which case the returned path is nil.
// An empty string gives an empty path and no error.
func ParseSVGPath(d string) (Path, error) {
	var it interpreter
	var err error
	for t := range Tokens(d) {
		it, err = it.step(t)
		if err != nil {
			return nil, err
		}
	}
	return it.finish(len(d))
}

// MustParseSVGPath is like [ParseSVGPath] but panics on an error.
// It is intended for paths known at compile time.
func MustParseSVGPath(d string) Path {
	return errors.Must1(ParseSVGPath(d))
}

// controlKind is the degree of the curve that produced a control point.
type controlKind uint8

const (
	noControl controlKind = iota
	cubicControl
	quadControl
)

// control is the last control point of the previous command,
// tagged with the kind of curve that produced it.
type control struct {
	kind controlKind
	pt   math32.Vector2
}

// reflect returns the reflection of the control point about cur when
// it was produced by a curve of the given kind, and cur otherwise.
func (c control) reflect(kind controlKind, cur math32.Vector2) math32.Vector2 {
	if c.kind != kind {
		return cur
	}
	return c.pt.Reflect(cur)
}

// interpreter is the state of the path grammar, folded over the
// tokens of a path string by value.
type interpreter struct {
	path  Path
	cur   math32.Vector2
	start math32.Vector2
	ctrl  control

	cmd    Cmd
	hasCmd bool

	// fresh is set when cmd was given by a letter and has not yet
	// received a full set of operands.
	fresh bool

	// moved is set once the first MoveTo has been executed.
	moved bool

	args  [7]float32
	nargs int
}

func (it interpreter) step(t Token) (interpreter, error) {
	if t.Kind == Letter {
		return it.letter(t)
	}
	return it.operand(t)
}

// waiting returns whether the current command still needs operands.
func (it interpreter) waiting() bool {
	return it.nargs > 0 || (it.fresh && it.cmd.Command.NumArgs() > 0)
}

func (it interpreter) fail(kind error, t Token) *ParseError {
	e := &ParseError{Kind: kind, Pos: t.Pos, Token: t.Text}
	if it.hasCmd {
		e.Cmd = it.cmd.String()
	}
	return e
}

func (it interpreter) letter(t Token) (interpreter, error) {
	if it.waiting() {
		return it, it.fail(ErrInvalidNumber, t)
	}
	cmd, ok := DecodeCmd(t.Text[0])
	if !ok {
		return it, it.fail(ErrMalformedGrammar, t)
	}
	it.cmd, it.hasCmd, it.fresh = cmd, true, true
	if cmd.Command != MoveTo && !it.moved {
		return it, it.fail(ErrMalformedGrammar, t)
	}
	if cmd.Command == ClosePath {
		it = it.exec()
		it.fresh = false
	}
	return it, nil
}

func (it interpreter) operand(t Token) (interpreter, error) {
	if !it.hasCmd || it.cmd.Command == ClosePath {
		return it, it.fail(ErrMalformedGrammar, t)
	}
	v, ok := it.number(t.Text)
	if !ok {
		return it, it.fail(ErrInvalidNumber, t)
	}
	it.args[it.nargs] = v
	it.nargs++
	if it.nargs == it.cmd.Command.NumArgs() {
		it = it.exec()
		it.nargs = 0
		it.fresh = false
		it.cmd = it.cmd.continuation()
	}
	return it, nil
}

// number converts an operand. The large-arc and sweep flags of
// an arc must be integers.
func (it interpreter) number(s string) (float32, bool) {
	b := []byte(s)
	if it.cmd.Command == ArcTo && (it.nargs == 3 || it.nargs == 4) {
		i, n := strconv.ParseInt(b)
		return float32(i), n == len(b)
	}
	f, n := strconv.ParseFloat(b)
	v := float32(f)
	return v, n == len(b) && !math32.IsInf(v, 0) && !math32.IsNaN(v)
}

// exec executes the current command with its full set of operands.
func (it interpreter) exec() interpreter {
	a := it.args
	var rel math32.Vector2
	if it.cmd.Rel {
		rel = it.cur
	}
	pt := func(i int) math32.Vector2 {
		return math32.Vec2(a[i], a[i+1]).Add(rel)
	}
	var ctrl control
	switch it.cmd.Command {
	case MoveTo:
		it.cur = pt(0)
		it.start = it.cur
		it.path.MoveTo(it.cur)
		it.moved = true
	case LineTo:
		it.cur = pt(0)
		it.path.LineTo(it.cur)
	case HorizontalLineTo:
		it.cur.X = a[0] + rel.X
		it.path.LineTo(it.cur)
	case VerticalLineTo:
		it.cur.Y = a[0] + rel.Y
		it.path.LineTo(it.cur)
	case CubicTo:
		cp1, cp2, end := pt(0), pt(2), pt(4)
		it.path.flattenCubic(it.cur, cp1, cp2, end)
		ctrl = control{cubicControl, cp2}
		it.cur = end
	case SmoothCubicTo:
		cp1 := it.ctrl.reflect(cubicControl, it.cur)
		cp2, end := pt(0), pt(2)
		it.path.flattenCubic(it.cur, cp1, cp2, end)
		ctrl = control{cubicControl, cp2}
		it.cur = end
	case QuadTo:
		cp, end := pt(0), pt(2)
		it.path.flattenQuad(it.cur, cp, end)
		ctrl = control{quadControl, cp}
		it.cur = end
	case SmoothQuadTo:
		cp := it.ctrl.reflect(quadControl, it.cur)
		end := pt(0)
		it.path.flattenQuad(it.cur, cp, end)
		ctrl = control{quadControl, cp}
		it.cur = end
	case ArcTo:
		it.cur = pt(5)
		it.path.LineTo(it.cur)
	case ClosePath:
		it.path.Close()
		it.cur = it.start
	}
	it.ctrl = ctrl
	return it
}

// finish ends the fold at the end of a path string of length n.
func (it interpreter) finish(n int) (Path, error) {
	if it.waiting() {
		return nil, &ParseError{Kind: ErrOperandUnderflow, Pos: n, Cmd: it.cmd.String()}
	}
	if it.path == nil {
		return Path{}, nil
	}
	return it.path, nil
}
