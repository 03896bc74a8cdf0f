// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/glyphtrace/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	return fn
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.NoError(t, c.Validate())
	assert.Equal(t, trace.DefaultParams(), c.Tracing)
	assert.Equal(t, trace.DefaultFitOptions(), c.Fit)
	assert.Equal(t, slog.LevelWarn, c.Level())
}

func TestOpen(t *testing.T) {
	fn := writeConfig(t, `
catalog = "glyphs/malayalam.toml"
log_level = "debug"

[tracing]
distance_threshold = 30
smooth = false

[fit]
fill = 0.9

[server]
addr = ":9000"
origins = ["https://example.com"]
`)
	c, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, fn, c.Filename)
	assert.Equal(t, filepath.Join(filepath.Dir(fn), "glyphs", "malayalam.toml"), c.Catalog)
	assert.Equal(t, slog.LevelDebug, c.Level())

	// unset values keep their defaults
	assert.Equal(t, float32(30), c.Tracing.DistanceThreshold)
	assert.False(t, c.Tracing.Smooth)
	assert.Equal(t, float32(0.98), c.Tracing.Completeness)
	assert.Equal(t, float32(20), c.Tracing.SampleStep)
	assert.Equal(t, float32(0.9), c.Fit.Fill)
	assert.Equal(t, float32(50), c.Fit.Padding)
	assert.Equal(t, ":9000", c.Server.Addr)
	assert.Equal(t, []string{"https://example.com"}, c.Server.Origins)
	assert.Equal(t, int64(64<<10), c.Server.MaxMessageSize)

	fn = writeConfig(t, `catalog = "/srv/glyphs.yaml"`)
	c, err = Open(fn)
	require.NoError(t, err)
	assert.Equal(t, "/srv/glyphs.yaml", c.Catalog)
}

func TestOpenErrors(t *testing.T) {
	for _, data := range []string{
		"colour = 1",
		"[tracing]\nsample_step = 0",
		"[fit]\nfill = 1.5",
		"[region]\nwidth = -1",
		"log_level = \"loud\"",
		"[tracing\n",
	} {
		_, err := Open(writeConfig(t, data))
		assert.Error(t, err, data)
	}
	_, err := Open(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "config.toml")
	c := Default()
	c.Catalog = "/srv/glyphs.toml"
	c.Tracing.TouchTolerance = 2
	c.Server.Origins = []string{"*"}
	require.NoError(t, c.Save(fn))

	got, err := Open(fn)
	require.NoError(t, err)
	got.Filename = ""
	assert.Equal(t, c, got)
}
