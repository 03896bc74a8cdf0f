// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glyphtrace lists, checks and previews glyph catalogs, and
// serves tracing sessions for them.
package main

import (
	"context"
	"log/slog"
	"os"

	"cogentcore.org/glyphtrace/base/errors"
	"cogentcore.org/glyphtrace/base/logx"
	"cogentcore.org/glyphtrace/config"
	"cogentcore.org/glyphtrace/glyphs"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// app has the global flags and the configuration shared by all commands.
type app struct {
	configFile string
	catalog    string

	verbose     bool
	veryVerbose bool
	quiet       bool

	config *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "glyphtrace",
		Short:        "Trace the strokes of glyphs against their templates",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default "+config.DefaultFile+" if it exists)")
	pf.StringVarP(&a.catalog, "catalog", "c", "", "glyph catalog file, instead of the one in the config")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "show info messages")
	pf.BoolVar(&a.veryVerbose, "vv", false, "show debug messages")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only show errors")

	root.AddCommand(
		a.listCmd(),
		a.parseCmd(),
		a.checkCmd(),
		a.previewCmd(),
		a.serveCmd(),
		a.configCmd(),
	)
	return root
}

// setup opens the config and sets up logging. Log level flags take
// precedence over the level in the config.
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.configFile != "" {
		a.config, err = config.Open(a.configFile)
	} else {
		a.config, err = config.OpenDefault()
	}
	if err != nil {
		return err
	}
	if a.catalog != "" {
		a.config.Catalog = a.catalog
	}
	if a.veryVerbose || a.verbose || a.quiet {
		logx.UserLevel = logx.LevelFromFlags(a.veryVerbose, a.verbose, a.quiet)
	} else {
		logx.UserLevel = a.config.Level()
	}
	logx.SetDefaultLogger()
	slog.Debug("configured", "config", a.config.Filename, "catalog", a.config.Catalog)
	return nil
}

// library opens the library of the configured catalog. Glyphs that
// fail to load are logged; it is only an error if none load.
func (a *app) library() (*glyphs.Library, error) {
	if a.config.Catalog == "" {
		return nil, errors.New("no glyph catalog: use --catalog or set catalog in the config file")
	}
	lib, err := glyphs.OpenLibrary(a.config.Catalog)
	if err != nil {
		if lib.Len() == 0 {
			return nil, err
		}
		slog.Warn("some glyphs could not be loaded", "err", err)
	}
	return lib, nil
}
