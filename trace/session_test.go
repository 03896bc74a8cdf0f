// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"testing"

	"cogentcore.org/glyphtrace/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeBars() *Template {
	return MustLoadTemplate("M 0 0 L 200 0", "M 0 100 L 200 100", "M 0 200 L 200 200")
}

// drawLine feeds the points of a horizontal line every 10 units
// and ends the stroke.
func drawLine(s *Session, y, x0, x1 float32) Result {
	for x := x0; x <= x1; x += 10 {
		s.Point(math32.Vec2(x, y))
	}
	return s.EndStroke()
}

func TestSessionProgress(t *testing.T) {
	s := NewSession(threeBars(), DefaultParams())
	assert.Equal(t, Active, s.State())
	assert.Equal(t, 0, s.Index())

	r := drawLine(s, 0, 0, 200)
	assert.True(t, r.Accepted(), r.Verdict)
	assert.Equal(t, 0, r.Stroke)
	assert.Equal(t, 1, r.Index)
	assert.Equal(t, Active, r.State)
	assert.Equal(t, "Stroke 1 correct", r.Message())

	// the wrong stroke is rejected and nothing changes
	r = drawLine(s, 200, 0, 200)
	assert.False(t, r.Accepted())
	assert.Equal(t, OffPath, r.Verdict.Reason)
	assert.Equal(t, 1, r.Index)
	assert.Equal(t, 1, s.Accepted())
	assert.Equal(t, "Stroke 2 incorrect, try again", r.Message())

	// too short
	r = drawLine(s, 100, 0, 100)
	assert.Equal(t, Incomplete, r.Verdict.Reason)
	assert.Equal(t, 1, s.Index())

	r = drawLine(s, 100, 0, 200)
	assert.True(t, r.Accepted())
	assert.Equal(t, "Stroke 2 correct", r.Message())

	// backwards is fine
	r = drawLine(s, 200, -200, 0)
	assert.False(t, r.Accepted())
	for x := float32(200); x >= 0; x -= 10 {
		s.Point(math32.Vec2(x, 200))
	}
	r = s.EndStroke()
	assert.True(t, r.Accepted(), r.Verdict)
	assert.Equal(t, Complete, r.State)
	assert.Equal(t, 3, r.Index)
	assert.Equal(t, "Character complete", r.Message())
	assert.Equal(t, Complete, s.State())
	assert.Equal(t, 3, s.Accepted())

	// input is ignored once complete
	assert.Equal(t, Feedback{}, s.Point(math32.Vec2(0, 0)))
	r = s.EndStroke()
	assert.Equal(t, Empty, r.Verdict.Reason)
	assert.Equal(t, Complete, r.State)
	assert.Equal(t, "Character already complete", r.Message())
	assert.Equal(t, 3, s.Accepted())

	s.Reset()
	assert.Equal(t, Active, s.State())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 0, s.Accepted())
	assert.True(t, drawLine(s, 0, 0, 200).Accepted())
}

func TestSessionFeedback(t *testing.T) {
	s := NewSession(threeBars(), DefaultParams())
	fb := s.Point(math32.Vec2(0, 10))
	assert.Equal(t, Feedback{Accepted: true, Near: true, OnTrack: true}, fb)

	// filtered points repeat the last feedback
	fb = s.Point(math32.Vec2(1, 11))
	assert.Equal(t, Feedback{Near: true, OnTrack: true}, fb)

	fb = s.Point(math32.Vec2(0, 80))
	assert.Equal(t, Feedback{Accepted: true}, fb)
	assert.False(t, s.OnTrack())

	// coming back near does not put the stroke back on track
	fb = s.Point(math32.Vec2(0, 0))
	assert.Equal(t, Feedback{Accepted: true, Near: true}, fb)

	r := s.EndStroke()
	assert.False(t, r.Accepted())
	assert.True(t, s.OnTrack())

	// starting far away
	fb = s.Point(math32.Vec2(100, 100))
	assert.Equal(t, Feedback{Accepted: true}, fb)
	s.EndStroke()
	assert.Equal(t, 0, s.Index())
}

func TestSessionIdle(t *testing.T) {
	for _, tpl := range []*Template{nil, MustLoadTemplate()} {
		s := NewSession(tpl, DefaultParams())
		assert.Equal(t, Idle, s.State())
		assert.Equal(t, Feedback{}, s.Point(math32.Vec2(1, 2)))
		r := s.EndStroke()
		assert.Equal(t, Empty, r.Verdict.Reason)
		assert.Equal(t, Idle, r.State)
		assert.Equal(t, "No character loaded", r.Message())

		sn := s.Snapshot()
		assert.Equal(t, Idle, sn.State)
		assert.Equal(t, 0, sn.Total)
		assert.Empty(t, sn.Strokes)
	}

	s := NewSession(nil, DefaultParams())
	s.Load(threeBars())
	assert.Equal(t, Active, s.State())
	assert.Equal(t, 3, s.Template().Len())
	assert.Equal(t, "active", s.State().String())
	assert.Equal(t, "States(7)", States(7).String())
}

func TestSessionEmptyStroke(t *testing.T) {
	s := NewSession(threeBars(), DefaultParams())
	r := s.EndStroke()
	assert.Equal(t, Empty, r.Verdict.Reason)
	assert.Equal(t, Active, r.State)
	assert.Equal(t, "Stroke 1 incorrect, try again", r.Message())
}

func TestSessionSnapshot(t *testing.T) {
	s := NewSession(threeBars(), DefaultParams())
	require.True(t, drawLine(s, 0, 0, 200).Accepted())
	s.Point(math32.Vec2(0, 100))
	s.Point(math32.Vec2(50, 100))

	sn := s.Snapshot()
	assert.Equal(t, Active, sn.State)
	assert.Equal(t, 1, sn.Index)
	assert.Equal(t, 3, sn.Total)
	assert.True(t, sn.OnTrack)
	require.Len(t, sn.Strokes, 3)
	require.Len(t, sn.Accepted, 1)
	require.False(t, sn.Ink.Empty())
	assert.Equal(t, math32.Vec2(0, 100), sn.Ink.StartPos())

	sn.Strokes[0][0].Points[0] = math32.Vec2(999, 999)
	sn.Accepted[0][0].Points[0] = math32.Vec2(999, 999)
	sn.Ink[0].Points[0] = math32.Vec2(999, 999)

	sn2 := s.Snapshot()
	assert.Equal(t, math32.Vec2(0, 0), sn2.Strokes[0][0].Points[0])
	assert.Equal(t, math32.Vec2(0, 0), sn2.Accepted[0][0].Points[0])
	assert.Equal(t, math32.Vec2(0, 100), sn2.Ink[0].Points[0])
	assert.Equal(t, math32.Vec2(0, 0), s.Template().Strokes[0].Path[0].Points[0])
}

func TestSessionResize(t *testing.T) {
	base := threeBars()
	from := IdentityTransform()
	s := NewSession(base.Transform(from), DefaultParams())
	require.True(t, drawLine(s, 0, 0, 200).Accepted())
	s.Point(math32.Vec2(0, 100))
	s.Point(math32.Vec2(100, 100))

	to := ViewTransform{Scale: 2, Offset: math32.Vec2(10, 10)}
	require.NoError(t, s.Resize(base.Transform(to), from, to))
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, Active, s.State())

	sn := s.Snapshot()
	tolEqualVec2(t, math32.Vec2(10, 10), sn.Accepted[0][0].Points[0])
	tolEqualVec2(t, math32.Vec2(410, 10), sn.Accepted[0].Pos())
	tolEqualVec2(t, math32.Vec2(10, 210), sn.Ink.StartPos())
	tolEqualVec2(t, math32.Vec2(10, 210), sn.Strokes[1][0].Points[0])

	// the in-progress stroke continues in the new coordinates
	for x := float32(210); x <= 410; x += 10 {
		s.Point(math32.Vec2(x, 210))
	}
	r := s.EndStroke()
	assert.True(t, r.Accepted(), r.Verdict)
	assert.Equal(t, 2, s.Index())

	assert.ErrorIs(t, s.Resize(nil, to, from), ErrNoTemplate)
	assert.Error(t, s.Resize(MustLoadTemplate("M 0 0 L 1 1"), to, from))
	assert.Equal(t, 2, s.Index())
}
