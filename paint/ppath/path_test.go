// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"testing"

	"cogentcore.org/glyphtrace/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tolEqualBox2(t *testing.T, a, b math32.Box2, tols ...float64) {
	t.Helper()
	tol := 1.0e-4
	if len(tols) == 1 {
		tol = tols[0]
	}
	tolEqualVec2(t, b.Min, a.Min, tol)
	tolEqualVec2(t, b.Max, a.Max, tol)
}

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	assert.True(t, p.Empty())

	p.MoveTo(math32.Vec2(5, 2))
	assert.False(t, p.Empty())
	assert.Equal(t, 1, p.NumPoints())

	assert.True(t, Path{{}, {}}.Empty())
	assert.Len(t, Path{{}, {Points: []math32.Vector2{{X: 1, Y: 1}}}, {}}.Compact(), 1)
}

func TestPathEquals(t *testing.T) {
	assert.False(t, MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0"), 0))
	assert.False(t, MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0M5 10"), 0))
	assert.False(t, MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 9"), 0))
	assert.False(t, MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 10z"), 0))
	assert.True(t, MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 9"), 1))
	assert.True(t, MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 10"), 0))
}

func TestPathClone(t *testing.T) {
	p := MustParseSVGPath("M 0 0 L 10 0 L 10 10 Z")
	q := p.Clone()
	q[0].Points[1].X = 50
	q[0].Closed = false
	assert.Equal(t, float32(10), p[0].Points[1].X)
	assert.True(t, p[0].Closed)
	assert.Nil(t, Path(nil).Clone())
}

func TestPathBuild(t *testing.T) {
	p := Path{}
	p.LineTo(math32.Vec2(1, 1))
	p.LineTo(math32.Vec2(2, 1))
	p.Close()
	p.LineTo(math32.Vec2(5, 5))
	p.Close()
	p.Close()
	require.Len(t, p, 2)
	assert.Equal(t, []math32.Vector2{{X: 1, Y: 1}, {X: 2, Y: 1}}, p[0].Points)
	assert.Equal(t, []math32.Vector2{{X: 1, Y: 1}, {X: 5, Y: 5}}, p[1].Points)
	assert.Equal(t, math32.Vec2(1, 1), p.Pos())
	assert.Equal(t, math32.Vec2(1, 1), p.StartPos())
	assert.Len(t, p.Points(), 4)
}

func TestPathBounds(t *testing.T) {
	p := MustParseSVGPath("M 10 20 L 30 5 M -5 12")
	tolEqualBox2(t, math32.B2(-5, 5, 30, 20), p.Bounds())
	assert.True(t, Path{}.Bounds().IsEmpty())

	// curves are bounded by their flattened points, not their control points
	p = MustParseSVGPath("M 0 0 Q 50 100 100 0")
	tolEqualBox2(t, math32.B2(0, 0, 100, 50), p.Bounds())
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "M0 0 L10 0 L10 10 Z", MustParseSVGPath("m0 0 h10 v10 z").String())
	assert.Equal(t, "M1.5 2 M3 4 L5 6", MustParseSVGPath("M1.5 2 M3 4 5 6").String())
	assert.Equal(t, "", Path{}.String())

	// the SVG form parses back to the same path
	p := MustParseSVGPath("M10 80 C 40 10, 65 10, 95 80 S 150 150, 180 80 z")
	assert.True(t, p.Equals(MustParseSVGPath(p.String()), 1.0e-3))
}

func TestPathTransform(t *testing.T) {
	p := MustParseSVGPath("M 0 0 L 10 0 L 10 10 Z")
	q := p.Translate(5, -5)
	assert.Equal(t, []math32.Vector2{{X: 5, Y: -5}, {X: 15, Y: -5}, {X: 15, Y: 5}}, q[0].Points)
	assert.True(t, q[0].Closed)
	assert.Equal(t, math32.Vec2(10, 0), p[0].Points[1])

	q = p.Scale(2, 3)
	assert.Equal(t, []math32.Vector2{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 30}}, q[0].Points)
	assert.InDelta(t, 50+math32.Sqrt(20*20+30*30), q.Length(), 1.0e-3)

	m := math32.Translate2D(1, 1).Mul(math32.Scale2D(2, 2))
	q = p.Transform(m)
	assert.Equal(t, math32.Vec2(21, 1), q[0].Points[1])

	q = p.Transform(math32.Identity2())
	assert.True(t, q.Equals(p, 0))
	q[0].Points[0].X = 9
	assert.Equal(t, float32(0), p[0].Points[0].X)
}

func TestShapes(t *testing.T) {
	p := &Path{}
	p.Rectangle(0, 0, 10, 20)
	require.Len(t, *p, 1)
	assert.True(t, (*p)[0].Closed)
	assert.InDelta(t, 60, p.Length(), 1.0e-5)

	p = &Path{}
	p.Circle(5, 5, 10)
	require.Len(t, *p, 1)
	assert.Len(t, (*p)[0].Points, CircleSegments)
	tolEqualBox2(t, math32.B2(-5, -5, 15, 15), p.Bounds())
	assert.InDelta(t, 2*math32.Pi*10, p.Length(), 0.2)

	p = &Path{}
	p.Line(1, 1, 1, 1).Line(0, 0, 3, 4)
	assert.Len(t, *p, 1)
	assert.InDelta(t, 5, p.Length(), 1.0e-5)

	p = &Path{}
	p.Polyline(math32.Vec2(0, 0)).Polygon(math32.Vec2(0, 0), math32.Vec2(4, 0), math32.Vec2(4, 3))
	require.Len(t, *p, 1)
	assert.InDelta(t, 12, p.Length(), 1.0e-5)

	p = &Path{}
	p.Ellipse(0, 0, 0, 5).Rectangle(0, 0, 0, 5)
	assert.True(t, p.Empty())
}

func TestDash(t *testing.T) {
	p := MustParseSVGPath("M 0 0 L 100 0")
	q := p.Dash(0, 10, 5)
	require.Len(t, q, 7)
	for _, s := range q {
		assert.Len(t, s.Points, 2)
		assert.False(t, s.Closed)
	}
	tolEqualVec2(t, math32.Vec2(15, 0), q[1].Start())
	tolEqualVec2(t, math32.Vec2(90, 0), q[6].Start())
	tolEqualVec2(t, math32.Vec2(100, 0), q[6].End())

	// dashes follow corners
	p = MustParseSVGPath("M 0 0 L 10 0 L 10 10")
	q = p.Dash(0, 15, 5)
	require.Len(t, q, 1)
	assert.Equal(t, 3, q.NumPoints())
	tolEqualVec2(t, math32.Vec2(10, 5), q[0].End())

	// an offset starts part way into the pattern
	q = MustParseSVGPath("M 0 0 L 20 0").Dash(5, 10, 10)
	require.Len(t, q, 2)
	tolEqualVec2(t, math32.Vec2(5, 0), q[0].End())
	tolEqualVec2(t, math32.Vec2(15, 0), q[1].Start())

	assert.True(t, p.Dash(0).Equals(p, 0))
	assert.Empty(t, p.Dash(0, 0))
}

func TestStroke(t *testing.T) {
	p := MustParseSVGPath("M 0 0 L 10 0")
	q := p.Stroke(2, CapButt)
	require.Len(t, q, 1)
	assert.Equal(t, []math32.Vector2{{X: 0, Y: -1}, {X: 10, Y: -1}, {X: 10, Y: 1}, {X: 0, Y: 1}}, q[0].Points)
	assert.True(t, q[0].Closed)

	q = p.Stroke(2, CapRound)
	assert.Len(t, q, 3)
	tolEqualBox2(t, math32.B2(-1, -1, 11, 1), q.Bounds())

	q = p.Stroke(2, CapSquare)
	assert.Len(t, q, 1)
	tolEqualBox2(t, math32.B2(-1, -1, 11, 1), q.Bounds())

	// interior vertices are always joined
	q = MustParseSVGPath("M 0 0 L 10 0 L 10 10").Stroke(2, CapButt)
	assert.Len(t, q, 3)

	q = MustParseSVGPath("M 4 4").Stroke(2, CapRound)
	tolEqualBox2(t, math32.B2(3, 3, 5, 5), q.Bounds())
	assert.Empty(t, MustParseSVGPath("M 4 4").Stroke(2, CapButt))
	assert.Empty(t, p.Stroke(0, CapRound))

	_, d := ScaleDash(2, 0, Dashed)
	assert.Equal(t, []float32{6, 6}, d)
}

func TestPathCurveTo(t *testing.T) {
	p := Path{}
	p.MoveTo(math32.Vec2(0, 0))
	p.QuadTo(math32.Vec2(5, 10), math32.Vec2(10, 0))
	assert.True(t, p.Equals(MustParseSVGPath("M0 0 Q 5 10 10 0"), 1.0e-6))

	p = Path{}
	p.MoveTo(math32.Vec2(0, 0))
	p.CubeTo(math32.Vec2(0, 10), math32.Vec2(10, 10), math32.Vec2(10, 0))
	assert.True(t, p.Equals(MustParseSVGPath("M0 0 C 0 10 10 10 10 0"), 1.0e-6))
	assert.Equal(t, 1+FlattenSegments, p.NumPoints())
}
