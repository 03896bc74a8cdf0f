// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glyphs

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/glyphtrace/base/fsx"
	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the catalog opened from the given file, or the
// error opening it, every time the file is written, created or renamed,
// until the context is done. The directory of the file is watched, so
// that editors replacing the file are seen.
func Watch(ctx context.Context, filename string, fn func(c *Catalog, err error)) error {
	fn0, err := fsx.ExpandHome(filename)
	if err != nil {
		return err
	}
	fabs, err := filepath.Abs(fn0)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(fabs)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fabs {
				continue
			}
			switch {
			case event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create ||
				event.Op&fsnotify.Rename == fsnotify.Rename:
				slog.Debug("catalog changed", "file", fabs, "op", event.Op)
				fn(OpenCatalog(fabs))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watching catalog", "file", fabs, "err", err)
		}
	}
}

// Watch reloads the library every time the given catalog file changes,
// until the context is done. A catalog that fails to open is logged
// and the current glyphs are kept.
func (l *Library) Watch(ctx context.Context, filename string) error {
	return Watch(ctx, filename, func(c *Catalog, err error) {
		if err == nil {
			err = l.Load(c)
		}
		if err != nil {
			slog.Error("reloading glyphs", "file", filename, "err", err)
		}
	})
}
