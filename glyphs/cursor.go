// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glyphs

import (
	"fmt"
	"slices"
)

// Cursor steps through a list of glyph names in order,
// stopping at either end.
type Cursor struct {
	names []string
	index int
}

// NewCursor returns a new [Cursor] at the first of the given names.
func NewCursor(names []string) *Cursor {
	return &Cursor{names: names}
}

// Len returns the number of names.
func (c *Cursor) Len() int {
	return len(c.names)
}

// Index returns the index of the current name.
func (c *Cursor) Index() int {
	return c.index
}

// Current returns the current name, and false if there are no names.
func (c *Cursor) Current() (string, bool) {
	if len(c.names) == 0 {
		return "", false
	}
	return c.names[c.index], true
}

// Next moves to the next name and returns it. At the last name it
// stays there and returns false.
func (c *Cursor) Next() (string, bool) {
	if c.index >= len(c.names)-1 {
		name, _ := c.Current()
		return name, false
	}
	c.index++
	return c.names[c.index], true
}

// Prev moves to the previous name and returns it. At the first name it
// stays there and returns false.
func (c *Cursor) Prev() (string, bool) {
	if c.index == 0 {
		name, _ := c.Current()
		return name, false
	}
	c.index--
	return c.names[c.index], true
}

// Seek moves to the given name, returning false if it is not found.
func (c *Cursor) Seek(name string) bool {
	i := slices.Index(c.names, NormalizeName(name))
	if i < 0 {
		return false
	}
	c.index = i
	return true
}

// String returns the position of the cursor, such as "2 of 5".
func (c *Cursor) String() string {
	if len(c.names) == 0 {
		return "0 of 0"
	}
	return fmt.Sprintf("%d of %d", c.index+1, len(c.names))
}
