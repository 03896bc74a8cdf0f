// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] for terminal output. It writes one line per
// record: the level tag (colored when the writer is a terminal that
// supports it), the message, and the attributes as key=value pairs.
type Handler struct {
	out    *termenv.Output
	w      io.Writer
	level  slog.Leveler
	prefix string // group prefix for attribute keys
	attrs  string // preformatted attributes from WithAttrs
	mu     *sync.Mutex
}

// NewHandler returns a new [Handler] writing to w at the given level.
// Options are passed to [termenv.NewOutput], so for example
// termenv.WithProfile(termenv.Ascii) disables colors.
func NewHandler(w io.Writer, level slog.Leveler, opts ...termenv.OutputOption) *Handler {
	return &Handler{
		out:   termenv.NewOutput(w, opts...),
		w:     w,
		level: level,
		mu:    &sync.Mutex{},
	}
}

// SetDefaultLogger sets the default logger to a [Handler] on [os.Stderr]
// at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// Enabled implements [slog.Handler].
func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

// levelColor returns the ANSI color code used for the given level.
func levelColor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "9"
	case l >= slog.LevelWarn:
		return "11"
	case l >= slog.LevelInfo:
		return "14"
	default:
		return "8"
	}
}

// Handle implements [slog.Handler].
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	tag := h.out.String(r.Level.String()).Foreground(h.out.Color(levelColor(r.Level))).Bold()
	sb.WriteString(tag.String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

// WithAttrs implements [slog.Handler].
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	for _, a := range attrs {
		writeAttr(&sb, h.prefix, a)
	}
	nh := *h
	nh.attrs += sb.String()
	return &nh
}

// WithGroup implements [slog.Handler].
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix += name + "."
	return &nh
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		gp := prefix
		if a.Key != "" {
			gp += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(sb, gp, ga)
		}
		return
	}
	val := a.Value.String()
	if strings.ContainsAny(val, " \t\n\"=") || val == "" {
		val = strconv.Quote(val)
	}
	fmt.Fprintf(sb, " %s%s=%s", prefix, a.Key, val)
}
