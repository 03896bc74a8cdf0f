// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server serves tracing sessions over WebSocket connections,
// along with the list of glyphs and PNG previews of them.
//
// Every connection has its own tracing session. A client sends JSON
// [Message]s and gets one JSON reply for each: a [Template] for load,
// region, reset, next and prev messages, a [Feedback] for points, a
// [Result] for the end of a stroke, or an [Error].
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/glyphtrace/base/iox/imagex"
	"cogentcore.org/glyphtrace/config"
	"cogentcore.org/glyphtrace/glyphs"
	"cogentcore.org/glyphtrace/paint/raster"
	"cogentcore.org/glyphtrace/trace"
	"github.com/gorilla/websocket"
)

// MaxPreviewSize is the maximum width and height of a preview image.
const MaxPreviewSize = 4096

// Server is an [http.Handler] serving the glyphs of a library:
//
//	GET /ws               WebSocket tracing sessions
//	GET /glyphs           the glyphs as a JSON list of [GlyphInfo]
//	GET /preview/{glyph}  a PNG preview, sized by the width and height
//	                      query parameters
type Server struct {
	Library *glyphs.Library
	Config  *config.Config

	mux      *http.ServeMux
	upgrader websocket.Upgrader
}

// New returns a new [Server] for the given library and configuration.
func New(lib *glyphs.Library, cfg *config.Config) *Server {
	s := &Server{Library: lib, Config: cfg, mux: http.NewServeMux()}
	s.upgrader.CheckOrigin = s.checkOrigin
	s.mux.HandleFunc("GET /ws", s.serveWS)
	s.mux.HandleFunc("GET /glyphs", s.serveGlyphs)
	s.mux.HandleFunc("GET /preview/{glyph}", s.servePreview)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves on the configured address until the
// context is done, and then shuts the server down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Config.Server.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	slog.Info("serving", "addr", srv.Addr, "glyphs", s.Library.Len())
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(sctx)
}

// checkOrigin allows requests without an origin, from the host of the
// server, and from the configured origins.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}
	ok := slices.ContainsFunc(s.Config.Server.Origins, func(o string) bool {
		return o == "*" || strings.EqualFold(o, origin)
	})
	if !ok {
		slog.Warn("rejected websocket origin", "origin", origin)
	}
	return ok
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied with an error
		slog.Debug("websocket upgrade failed", "err", err)
		return
	}
	defer ws.Close()
	ws.SetReadLimit(s.Config.Server.MaxMessageSize)
	c := newConn(s, ws)
	c.log.Info("connected")
	c.run()
	c.log.Info("disconnected")
}

func (s *Server) serveGlyphs(w http.ResponseWriter, r *http.Request) {
	store := s.Library.Store()
	infos := make([]GlyphInfo, 0, store.Len())
	for name, tpl := range store.All() {
		info := GlyphInfo{Name: name, Label: name, Strokes: tpl.Len()}
		if g, ok := s.Library.Glyph(name); ok {
			info.Label = g.Label
		}
		infos = append(infos, info)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		slog.Warn("writing glyphs", "err", err)
	}
}

func (s *Server) servePreview(w http.ResponseWriter, r *http.Request) {
	tpl, err := s.Library.Template(r.PathValue("glyph"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	width, err := sizeParam(r, "width", int(s.Config.Region.Width))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := sizeParam(r, "height", int(s.Config.Region.Height))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	opts := raster.DefaultOptions()
	opts.Fit = s.Config.Fit
	img, err := raster.Preview(tpl, width, height, &opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := imagex.Write(img, w, imagex.PNG); err != nil {
		slog.Warn("writing preview", "err", err)
	}
}

// sizeParam returns the image size in the given query parameter, or
// the default if it is not set.
func sizeParam(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || n > MaxPreviewSize {
		return 0, fmt.Errorf("%s %q must be an integer in [1, %d]", name, v, MaxPreviewSize)
	}
	return n, nil
}

// fit fits the template to a region with the configured options.
func (s *Server) fit(tpl *trace.Template, width, height float32) (*trace.Template, trace.ViewTransform, error) {
	return trace.FitTemplate(tpl, width, height, s.Config.Fit)
}
