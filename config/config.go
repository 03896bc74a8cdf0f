// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the configuration of glyphtrace,
// read from a TOML file over the defaults.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/glyphtrace/base/errors"
	"cogentcore.org/glyphtrace/base/fsx"
	"cogentcore.org/glyphtrace/base/iox"
	"cogentcore.org/glyphtrace/base/iox/tomlx"
	"cogentcore.org/glyphtrace/base/logx"
	"cogentcore.org/glyphtrace/trace"
)

// DefaultFile is the config file used when none is given,
// if it exists.
const DefaultFile = "~/.config/glyphtrace/config.toml"

// Config is the configuration of glyphtrace.
type Config struct {

	// Catalog is the glyph catalog file. A relative path is relative
	// to the directory of the config file.
	Catalog string `toml:"catalog"`

	// LogLevel is the minimum level of log messages: debug, info,
	// warn or error. Command line flags take precedence.
	LogLevel string `toml:"log_level"`

	// Tracing are the thresholds of stroke evaluation.
	Tracing trace.Params `toml:"tracing"`

	// Fit are the options for fitting glyphs to the drawing region.
	Fit trace.FitOptions `toml:"fit"`

	// Region is the default drawing region, used for previews.
	Region Region `toml:"region"`

	Server Server `toml:"server"`

	// Filename is the file the config was opened from, if any.
	Filename string `toml:"-"`
}

// Region is the size of a drawing region.
type Region struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// Server is the configuration of the tracing server.
type Server struct {

	// Addr is the address to listen on.
	Addr string `toml:"addr"`

	// Origins are the allowed origins of websocket connections, in
	// addition to the host of the server itself. A "*" allows all origins.
	Origins []string `toml:"origins"`

	// MaxMessageSize is the maximum size in bytes of a message from a client.
	MaxMessageSize int64 `toml:"max_message_size"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Tracing:  trace.DefaultParams(),
		Fit:      trace.DefaultFitOptions(),
		Region:   Region{Width: 512, Height: 512},
		Server: Server{
			Addr:           "localhost:8080",
			MaxMessageSize: 64 << 10,
		},
	}
}

// Open returns the configuration in the given TOML file, over the
// defaults. Unknown fields are errors. A leading ~ in the file name
// and the catalog path is expanded to the home directory.
func Open(filename string) (*Config, error) {
	fn, err := fsx.ExpandHome(filename)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := iox.Open(c, fn, tomlx.NewStrictDecoder); err != nil {
		return nil, fmt.Errorf("config: %s: %w", fn, err)
	}
	c.Filename = fn
	if c.Catalog != "" {
		cat, err := fsx.ExpandHome(c.Catalog)
		if err != nil {
			return nil, err
		}
		if !filepath.IsAbs(cat) {
			cat = filepath.Join(filepath.Dir(fn), cat)
		}
		c.Catalog = cat
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", fn, err)
	}
	return c, nil
}

// OpenDefault returns the configuration in [DefaultFile] if it exists,
// or the defaults.
func OpenDefault() (*Config, error) {
	fn, err := fsx.ExpandHome(DefaultFile)
	if err != nil {
		return nil, err
	}
	if ok, _ := fsx.FileExists(fn); !ok {
		slog.Debug("no config file, using defaults", "file", fn)
		return Default(), nil
	}
	return Open(fn)
}

// Save saves the configuration to the given TOML file.
func (c *Config) Save(filename string) error {
	return errors.Log(tomlx.Save(c, filename))
}

// Validate returns an error if the configuration cannot be used.
func (c *Config) Validate() error {
	if err := c.Tracing.Validate(); err != nil {
		return err
	}
	if _, err := logx.LevelFromString(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch {
	case c.Fit.Fill <= 0 || c.Fit.Fill > 1:
		return fmt.Errorf("fit.fill %g must be in (0, 1]", c.Fit.Fill)
	case c.Fit.StrokeHalfWidth < 0 || c.Fit.Padding < 0:
		return fmt.Errorf("fit stroke_half_width and padding must not be negative")
	case c.Region.Width <= 0 || c.Region.Height <= 0:
		return fmt.Errorf("region %gx%g must have a positive size", c.Region.Width, c.Region.Height)
	case c.Server.MaxMessageSize <= 0:
		return fmt.Errorf("server.max_message_size must be positive")
	}
	return nil
}

// Level returns the log level of the configuration.
func (c *Config) Level() slog.Level {
	return errors.Log1(logx.LevelFromString(c.LogLevel))
}
