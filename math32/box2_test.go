// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2(t *testing.T) {
	b := B2Empty()
	assert.True(t, b.IsEmpty())
	assert.True(t, b.IsDegenerate())

	b.ExpandByPoint(Vec2(1, 2))
	assert.False(t, b.IsEmpty())
	assert.True(t, b.IsDegenerate())

	b.ExpandByPoint(Vec2(-3, 6))
	assert.Equal(t, B2(-3, 2, 1, 6), b)
	assert.False(t, b.IsDegenerate())
	assert.Equal(t, Vec2(4, 4), b.Size())
	assert.Equal(t, Vec2(-1, 4), b.Center())

	b.ExpandByScalar(1)
	assert.Equal(t, B2(-4, 1, 2, 7), b)

	assert.True(t, b.ContainsPoint(Vec2(0, 3)))
	assert.False(t, b.ContainsPoint(Vec2(3, 3)))
	assert.True(t, b.ContainsBox(B2(-1, 2, 1, 3)))
	assert.False(t, b.ContainsBox(B2(-1, 2, 5, 3)))

	assert.Equal(t, B2(0, 0, 5, 5), B2(0, 0, 1, 1).Union(B2(4, 4, 5, 5)))
	assert.Equal(t, B2(0, 0, 1, 1), B2(0, 0, 1, 1).Union(B2Empty()))
	assert.Equal(t, B2(1, 1, 2, 2), B2(0, 0, 1, 1).Translate(Vec2(1, 1)))
	assert.Equal(t, image.Rect(-1, 0, 2, 3), B2(-0.5, 0.2, 1.5, 2.1).ToRect())
}

func TestBox2FromPoints(t *testing.T) {
	assert.True(t, B2FromPoints().IsEmpty())
	assert.Equal(t, B2(0, -1, 10, 10), B2FromPoints(Vec2(0, 0), Vec2(10, -1), Vec2(5, 10)))
}

func TestBox2MulMatrix2(t *testing.T) {
	b := B2(0, 0, 10, 20)
	m := Translate2D(5, 5).Mul(Scale2D(2, 2))
	assert.Equal(t, B2(5, 5, 25, 45), b.MulMatrix2(m))
	assert.True(t, B2Empty().MulMatrix2(m).IsEmpty())
}
