// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"cogentcore.org/glyphtrace/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	tests := []struct {
		d string
		l float32
	}{
		{"", 0},
		{"M5 5", 0},
		{"M0 0 L 30 40", 50},
		{"M0 0 L 10 0 L 10 10", 20},
		{"M0 0 L 10 0 L 10 10 Z", 20 + math32.Sqrt(200)},
		{"M0 0 H 10 M 100 100 V 110", 20},
		{"M0 0 H 10 V 10 H 0 z", 40},
	}
	for _, test := range tests {
		p := MustParseSVGPath(test.d)
		assert.InDelta(t, test.l, p.Length(), 1.0e-4, test.d)
	}

	// a flattened quarter curve is a bit shorter than the analytic arc
	p := MustParseSVGPath("M 100 0 C 100 55.228 55.228 100 0 100")
	assert.InDelta(t, 157.08, p.Length(), 0.2)
}

func TestPointAtDistance(t *testing.T) {
	p := MustParseSVGPath("M 0 0 L 10 0 L 10 10 Z")
	tests := []struct {
		d  float32
		pt math32.Vector2
		in bool
	}{
		{0, math32.Vec2(0, 0), true},
		{5, math32.Vec2(5, 0), true},
		{10, math32.Vec2(10, 0), true},
		{15, math32.Vec2(10, 5), true},
		{20 + math32.Sqrt(200)/2, math32.Vec2(5, 5), true},
		{p.Length(), math32.Vec2(0, 0), true},
		{p.Length() + 1, math32.Vec2(0, 0), false},
		{-1, math32.Vec2(0, 0), false},
	}
	for _, test := range tests {
		pt, in := p.PointAtDistance(test.d)
		tolEqualVec2(t, test.pt, pt)
		assert.Equal(t, test.in, in, test.d)
	}

	// past the end of an open path clamps to its last point
	p = MustParseSVGPath("M 0 0 L 10 0 M 0 5 L 0 15")
	pt, in := p.PointAtDistance(15)
	assert.True(t, in)
	tolEqualVec2(t, math32.Vec2(0, 10), pt)
	pt, in = p.PointAtDistance(50)
	assert.False(t, in)
	tolEqualVec2(t, math32.Vec2(0, 15), pt)

	pt, in = Path{}.PointAtDistance(0)
	assert.False(t, in)
	assert.Equal(t, math32.Vector2{}, pt)

	pt, in = MustParseSVGPath("M 3 4").PointAtDistance(0)
	assert.True(t, in)
	assert.Equal(t, math32.Vec2(3, 4), pt)
}

func TestSamples(t *testing.T) {
	pts := MustParseSVGPath("M 0 0 L 25 0").Samples(10)
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 25, Y: 0}}, pts)

	pts = MustParseSVGPath("M 0 0 L 20 0").Samples(10)
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}, pts)

	// each sub-path starts over at distance 0
	pts = MustParseSVGPath("M 0 0 L 15 0 M 0 10 L 15 10").Samples(10)
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 15, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 15, Y: 10}}, pts)

	pts = MustParseSVGPath("M 7 7").Samples(10)
	assert.Equal(t, []math32.Vector2{{X: 7, Y: 7}}, pts)

	pts = MustParseSVGPath("M 0 0 L 10 0 L 10 10 Z").Samples(10)
	require.Len(t, pts, 5)
	tolEqualVec2(t, math32.Vec2(10, 10), pts[2])
	h := float32(10) / math32.Sqrt2
	tolEqualVec2(t, math32.Vec2(10-h, 10-h), pts[3])
	tolEqualVec2(t, math32.Vec2(0, 0), pts[4])

	pts = MustParseSVGPath("M 0 0 L 10 0 L 10 10 Z").Samples(0)
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}, pts)

	assert.Empty(t, Path{}.Samples(10))
}

func TestScanner(t *testing.T) {
	p := MustParseSVGPath("M 0 0 L 10 0 L 10 10 Z M 20 20 M 30 30 L 40 30")
	var lines []math32.Line2
	var closing []bool
	sc := p.Scanner()
	for sc.Scan() {
		lines = append(lines, sc.Line())
		closing = append(closing, sc.Closing())
	}
	require.Len(t, lines, 4)
	assert.Equal(t, []bool{false, false, true, false}, closing)
	assert.Equal(t, math32.NewLine2(math32.Vec2(10, 10), math32.Vec2(0, 0)), lines[2])
	assert.Equal(t, math32.NewLine2(math32.Vec2(30, 30), math32.Vec2(40, 30)), lines[3])
	assert.False(t, sc.Scan())

	assert.False(t, Path{}.Scanner().Scan())
}
