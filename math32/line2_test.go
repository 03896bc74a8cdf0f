// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestLine2(t *testing.T) {
	st := Vec2(6, 12)
	ed := Vec2(12, 24)
	l := NewLine2(st, ed)
	ctr := l.Center()

	tolAssertEqualVector(t, Vec2(9, 18), ctr)
	tolAssertEqualVector(t, Vec2(6, 12), l.Delta())
	assert.InDelta(t, 180, l.LengthSquared(), 1e-4)
	assert.InDelta(t, math32.Sqrt(180), l.Length(), 1e-5)
	tolAssertEqualVector(t, st, l.ClosestPointToPoint(st))
	tolAssertEqualVector(t, ed, l.ClosestPointToPoint(ed))
	tolAssertEqualVector(t, ctr, l.ClosestPointToPoint(ctr))
	tolAssertEqualVector(t, st, l.ClosestPointToPoint(st.Sub(Vec2(2, 2))))
	tolAssertEqualVector(t, ed, l.ClosestPointToPoint(ed.Add(Vec2(2, 2))))
	tolAssertEqualVector(t, Vec2(7.8, 15.6), l.ClosestPointToPoint(st.Add(Vec2(3, 3))), 1e-5)
	tolAssertEqualVector(t, ctr, l.Lerp(0.5))
}

func TestLine2DistanceToPoint(t *testing.T) {
	l := NewLine2(Vec2(0, 0), Vec2(100, 0))
	assert.InDelta(t, 0, l.DistanceToPoint(Vec2(50, 0)), 1e-6)
	assert.InDelta(t, 7, l.DistanceToPoint(Vec2(50, 7)), 1e-6)
	assert.InDelta(t, 5, l.DistanceToPoint(Vec2(-3, 4)), 1e-6)

	pt := NewLine2(Vec2(1, 1), Vec2(1, 1))
	assert.InDelta(t, 5, pt.DistanceToPoint(Vec2(4, 5)), 1e-6)
}
