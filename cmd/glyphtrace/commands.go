// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/glyphtrace/base/errors"
	"cogentcore.org/glyphtrace/base/iox/imagex"
	"cogentcore.org/glyphtrace/base/iox/tomlx"
	"cogentcore.org/glyphtrace/config"
	"cogentcore.org/glyphtrace/glyphs"
	"cogentcore.org/glyphtrace/paint/ppath"
	"cogentcore.org/glyphtrace/paint/raster"
	"cogentcore.org/glyphtrace/server"
	"cogentcore.org/glyphtrace/trace"
	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the glyphs of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for name, tpl := range lib.Store().All() {
				label := name
				if g, ok := lib.Glyph(name); ok {
					label = g.Label
				}
				fmt.Fprintf(out, "%s\t%s\t%d strokes\n", name, label, tpl.Len())
			}
			return nil
		},
	}
}

func (a *app) parseCmd() *cobra.Command {
	var step float32
	cmd := &cobra.Command{
		Use:   "parse <path data>...",
		Short: "Parse SVG path data and print the flattened paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var errs []error
			for _, d := range args {
				p, err := ppath.ParseSVGPath(d)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				b := p.Bounds()
				fmt.Fprintln(out, p.String())
				fmt.Fprintf(out, "points %d, length %g, bounds %v to %v\n", p.NumPoints(), p.Length(), b.Min, b.Max)
				if step > 0 {
					for _, s := range p.Samples(step) {
						fmt.Fprintf(out, "%g %g\n", s.X, s.Y)
					}
				}
			}
			return errors.Join(errs...)
		},
	}
	cmd.Flags().Float32Var(&step, "samples", 0, "also print points sampled at this arc length step")
	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that every glyph of the catalog loads and fits the region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.config.Catalog == "" {
				return errors.New("no glyph catalog: use --catalog or set catalog in the config file")
			}
			c, err := glyphs.OpenCatalog(a.config.Catalog)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			problems := 0
			report := func(g *glyphs.Glyph, err error) {
				problems++
				fmt.Fprintf(out, "%s: %v\n", g.Name, err)
			}
			for i := range c.Glyphs {
				g := &c.Glyphs[i]
				tpl, err := trace.LoadTemplate(g.Strokes)
				if err != nil {
					for _, e := range unwrapAll(err) {
						report(g, e)
					}
				}
				if _, err := trace.FitToRegion(tpl, a.config.Region.Width, a.config.Region.Height, a.config.Fit); err != nil {
					report(g, err)
				}
			}
			fmt.Fprintf(out, "%d glyphs, %d problems\n", len(c.Glyphs), problems)
			if problems > 0 {
				return fmt.Errorf("%s: %d problems", c.Filename, problems)
			}
			return nil
		},
	}
}

// unwrapAll returns the errors joined in err, or err itself.
func unwrapAll(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

func (a *app) previewCmd() *cobra.Command {
	var output string
	var width, height int
	cmd := &cobra.Command{
		Use:   "preview <glyph>",
		Short: "Save an image of a glyph as it is shown for tracing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library()
			if err != nil {
				return err
			}
			tpl, err := lib.Template(args[0])
			if err != nil {
				return err
			}
			if width <= 0 {
				width = int(a.config.Region.Width)
			}
			if height <= 0 {
				height = int(a.config.Region.Height)
			}
			if output == "" {
				output = glyphs.NormalizeName(args[0]) + ".png"
			}
			opts := raster.DefaultOptions()
			opts.Fit = a.config.Fit
			img, err := raster.Preview(tpl, width, height, &opts)
			if err != nil {
				return err
			}
			if err := imagex.Save(img, output); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "saved", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "image file, with a .png, .jpg, .gif, .tif or .bmp extension (default <glyph>.png)")
	cmd.Flags().IntVar(&width, "width", 0, "image width (default the region width in the config)")
	cmd.Flags().IntVar(&height, "height", 0, "image height (default the region height in the config)")
	return cmd
}

func (a *app) serveCmd() *cobra.Command {
	var addr string
	var watch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tracing sessions over WebSocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := a.library()
			if err != nil {
				return err
			}
			if addr != "" {
				a.config.Server.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if watch {
				go func() {
					if err := lib.Watch(ctx, a.config.Catalog); err != nil {
						fmt.Fprintln(cmd.ErrOrStderr(), "not watching the catalog:", err)
					}
				}()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "serving %d glyphs at http://%s\n", lib.Len(), a.config.Server.Addr)
			return server.New(lib, a.config).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "address to listen on, instead of the one in the config")
	cmd.Flags().BoolVar(&watch, "watch", true, "reload the catalog when it changes")
	return cmd
}

func (a *app) configCmd() *cobra.Command {
	var defaults bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the configuration in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.config
			if defaults {
				c = config.Default()
			}
			return tomlx.Write(c, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, "print the default configuration instead")
	return cmd
}
