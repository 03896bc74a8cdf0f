// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"fmt"

	"cogentcore.org/glyphtrace/base/errors"
)

// The kinds of path parsing errors. A [*ParseError] wraps exactly one
// of these, so they can be matched with [errors.Is].
var (
	// ErrMalformedGrammar is an unknown command letter, a number
	// before any command, or a number after a ClosePath.
	ErrMalformedGrammar = errors.New("malformed path grammar")

	// ErrOperandUnderflow is the path ending before the current
	// command received all of its operands.
	ErrOperandUnderflow = errors.New("missing path operands")

	// ErrInvalidNumber is operand text that is not a valid number
	// (including a command letter where an operand is required,
	// and non-integer arc flags).
	ErrInvalidNumber = errors.New("invalid numeric literal")
)

// ParseError is the error returned by [ParseSVGPath].
type ParseError struct {
	// Kind is one of [ErrMalformedGrammar], [ErrOperandUnderflow], [ErrInvalidNumber].
	Kind error

	// Pos is the byte offset in the path string of the offending token,
	// or its length for [ErrOperandUnderflow].
	Pos int

	// Cmd is the command being processed, if any.
	Cmd string

	// Token is the offending token text, if any.
	Token string
}

func (e *ParseError) Error() string {
	s := "bad path: " + e.Kind.Error()
	if e.Token != "" {
		s += fmt.Sprintf(" %q", e.Token)
	}
	if e.Cmd != "" {
		s += fmt.Sprintf(" in command '%s'", e.Cmd)
	}
	return s + fmt.Sprintf(" at position %d", e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
