// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"testing"

	"cogentcore.org/glyphtrace/base/errors"
	"cogentcore.org/glyphtrace/math32"
	"cogentcore.org/glyphtrace/paint/ppath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tolEqualVec2(t *testing.T, a, b math32.Vector2, tols ...float64) {
	t.Helper()
	tol := 1.0e-4
	if len(tols) == 1 {
		tol = tols[0]
	}
	assert.InDelta(t, a.X, b.X, tol)
	assert.InDelta(t, a.Y, b.Y, tol)
}

func TestLoadTemplate(t *testing.T) {
	tpl, err := LoadTemplate([]string{"M 0 0 L 100 0", "L 5 5", "", "M 0 50 L 100 50", "M 0 0 C 1 1"})
	require.NotNil(t, tpl)
	require.Error(t, err)
	assert.ErrorIs(t, err, ppath.ErrMalformedGrammar)
	assert.ErrorIs(t, err, ppath.ErrOperandUnderflow)
	assert.ErrorIs(t, err, ErrEmptyStroke)

	var se *StrokeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Index)
	assert.Equal(t, "L 5 5", se.Source)

	assert.Equal(t, []int{1, 2, 4}, tpl.Skipped)
	require.Equal(t, 2, tpl.Len())
	assert.Equal(t, 0, tpl.Strokes[0].Index)
	assert.Equal(t, 3, tpl.Strokes[1].Index)
	assert.Equal(t, "M 0 50 L 100 50", tpl.Strokes[1].Source)
	assert.InDelta(t, 100, tpl.Strokes[1].Length, 1.0e-5)
	assert.Equal(t, math32.B2(0, 50, 100, 50), tpl.Strokes[1].Bounds)
	assert.Equal(t, math32.B2(0, 0, 100, 50), tpl.Bounds)
	assert.Len(t, tpl.Paths(), 2)

	tpl, err = LoadTemplate(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, tpl.Len())
	assert.True(t, tpl.Bounds.IsEmpty())

	assert.Panics(t, func() {
		MustLoadTemplate("M 0 0", "X")
	})
	assert.Equal(t, 0, (*Template)(nil).Len())
}

func TestTemplateTransform(t *testing.T) {
	tpl := MustLoadTemplate("M 0 0 L 100 0", "M 0 0 L 0 50")
	nt := tpl.Transform(ViewTransform{Scale: 2, Offset: math32.Vec2(10, 20)})
	assert.Equal(t, math32.B2(10, 20, 210, 120), nt.Bounds)
	assert.InDelta(t, 200, nt.Strokes[0].Length, 1.0e-4)
	assert.InDelta(t, 100, nt.Strokes[1].Length, 1.0e-4)
	assert.Equal(t, "M 0 0 L 100 0", nt.Strokes[0].Source)

	// the original is unchanged
	assert.Equal(t, math32.B2(0, 0, 100, 50), tpl.Bounds)
	assert.Equal(t, math32.Vec2(100, 0), tpl.Strokes[0].Path[0].Points[1])
}

func TestStore(t *testing.T) {
	s := NewStore()
	a := MustLoadTemplate("M 0 0 L 10 10")
	b := MustLoadTemplate("M 0 0 L 20 20")
	c := MustLoadTemplate("M 0 0 L 30 30")
	s.Add("a", a)
	s.Add("b", b)
	s.Add("a", c)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"a", "b"}, s.Names())
	got, ok := s.Get("a")
	assert.True(t, ok)
	assert.Same(t, c, got)
	_, ok = s.Get("z")
	assert.False(t, ok)

	var names []string
	for n, tpl := range s.All() {
		names = append(names, n)
		assert.NotNil(t, tpl)
	}
	assert.Equal(t, []string{"a", "b"}, names)

	for range s.All() {
		break
	}
}
