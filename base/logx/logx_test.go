// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestLevelFromString(t *testing.T) {
	l, err := LevelFromString("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = LevelFromString("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	l, err = LevelFromString("")
	require.NoError(t, err)
	assert.Equal(t, UserLevel, l)

	_, err = LevelFromString("loud")
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelInfo, termenv.WithProfile(termenv.Ascii)))

	logger.Debug("hidden")
	logger.Info("loaded glyph", "name", "a", "strokes", 3)
	logger.With("session", 2).WithGroup("stroke").Warn("rejected", "index", 1, "reason", "off path")

	assert.Equal(t, "INFO loaded glyph name=a strokes=3\n"+
		"WARN rejected session=2 stroke.index=1 stroke.reason=\"off path\"\n", buf.String())
}

func TestHandlerGroupAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, slog.LevelDebug, termenv.WithProfile(termenv.Ascii)))
	logger.Debug("fit", slog.Group("region", "w", 800, "h", 600), "note", "")
	assert.Equal(t, "DEBUG fit region.w=800 region.h=600 note=\"\"\n", buf.String())
}

func TestDefaultLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	UserLevel = slog.LevelDebug
	SetDefaultLogger()
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	UserLevel = defaultUserLevel
}
