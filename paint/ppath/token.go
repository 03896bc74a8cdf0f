// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"iter"
	"regexp"
	"slices"
)

// TokenKind is the kind of a path [Token].
type TokenKind int32

const (
	// Letter is a single command letter.
	Letter TokenKind = iota

	// Number is a numeric literal.
	Number
)

func (k TokenKind) String() string {
	if k == Letter {
		return "Letter"
	}
	return "Number"
}

// Token is one lexical element of a path string.
type Token struct {
	Kind TokenKind

	// Text is the token exactly as it appears in the path string.
	Text string

	// Pos is the byte offset of the token in the path string.
	Pos int
}

// tokenRegexp matches a command letter or a numeric literal.
// Anything between matches (commas, whitespace) is a separator.
var tokenRegexp = regexp.MustCompile(`([A-Za-z])|([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)`)

// Tokens returns the sequence of tokens in the path string d.
// The sequence is lazy and can be ranged over any number of times.
func Tokens(d string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		pos := 0
		for pos < len(d) {
			loc := tokenRegexp.FindStringSubmatchIndex(d[pos:])
			if loc == nil {
				return
			}
			kind := Number
			if loc[2] >= 0 {
				kind = Letter
			}
			t := Token{Kind: kind, Text: d[pos+loc[0] : pos+loc[1]], Pos: pos + loc[0]}
			if !yield(t) {
				return
			}
			pos += loc[1]
		}
	}
}

// Tokenize returns all of the tokens in the path string d.
func Tokenize(d string) []Token {
	return slices.Collect(Tokens(d))
}
