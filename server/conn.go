// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"cogentcore.org/glyphtrace/base/errors"
	"cogentcore.org/glyphtrace/glyphs"
	"cogentcore.org/glyphtrace/math32"
	"cogentcore.org/glyphtrace/trace"
	"github.com/gorilla/websocket"
)

var (
	// ErrUnknownMessage is the error for a message of an unknown type.
	ErrUnknownMessage = errors.New("unknown message type")

	// ErrNoGlyph is the error for a load message without a glyph
	// name or strokes.
	ErrNoGlyph = errors.New("no glyph or strokes to load")

	// ErrEndOfLibrary is the error for moving past the first
	// or last glyph of the library.
	ErrEndOfLibrary = errors.New("no more glyphs")
)

// conn is one client connection with its own tracing session.
// It is only used by the goroutine serving the connection.
type conn struct {
	srv *Server
	ws  *websocket.Conn
	log *slog.Logger

	session *trace.Session
	cursor  *glyphs.Cursor

	// glyph is the name of the loaded glyph, empty for inline strokes.
	glyph string

	// tpl is the loaded template in glyph coordinates.
	tpl *trace.Template

	// vt is the transform of the session template from tpl.
	vt trace.ViewTransform

	width, height float32
}

func newConn(s *Server, ws *websocket.Conn) *conn {
	return &conn{
		srv:     s,
		ws:      ws,
		log:     slog.With("remote", ws.RemoteAddr().String()),
		session: trace.NewSession(nil, s.Config.Tracing),
		cursor:  s.Library.Cursor(),
		vt:      trace.IdentityTransform(),
		width:   s.Config.Region.Width,
		height:  s.Config.Region.Height,
	}
}

// run reads and handles messages until the connection is closed.
func (c *conn) run() {
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Warn("reading message", "err", err)
			}
			return
		}
		var reply any
		var m Message
		if err := json.Unmarshal(data, &m); err != nil {
			reply = errorReply(fmt.Errorf("invalid message: %w", err))
		} else if reply, err = c.handle(&m); err != nil {
			c.log.Debug("message failed", "type", m.Type, "err", err)
			reply = errorReply(err)
		}
		if err := c.ws.WriteJSON(reply); err != nil {
			c.log.Warn("writing reply", "err", err)
			return
		}
	}
}

func errorReply(err error) *Error {
	return &Error{Type: ErrorReply, Error: err.Error()}
}

// handle handles one message and returns the reply to it.
func (c *conn) handle(m *Message) (any, error) {
	switch m.Type {
	case PointMessage:
		fb := c.session.Point(math32.Vec2(m.X, m.Y))
		return &Feedback{Type: FeedbackReply, Accepted: fb.Accepted, Near: fb.Near, OnTrack: fb.OnTrack}, nil
	case EndMessage:
		return c.result(c.session.EndStroke()), nil
	case LoadMessage:
		if err := c.load(m); err != nil {
			return nil, err
		}
	case RegionMessage:
		if err := c.resize(m.Width, m.Height); err != nil {
			return nil, err
		}
	case ResetMessage:
		c.session.Reset()
	case NextMessage, PrevMessage:
		move := c.cursor.Next
		if m.Type == PrevMessage {
			move = c.cursor.Prev
		}
		name, ok := move()
		if !ok {
			return nil, fmt.Errorf("%w after %s", ErrEndOfLibrary, c.cursor)
		}
		if err := c.loadGlyph(name); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMessage, m.Type)
	}
	return c.template(), nil
}

// load loads the glyph or the inline strokes of the message.
func (c *conn) load(m *Message) error {
	if m.Glyph != "" {
		if err := c.loadGlyph(m.Glyph); err != nil {
			return err
		}
		c.cursor.Seek(m.Glyph)
		return nil
	}
	if len(m.Strokes) == 0 {
		return ErrNoGlyph
	}
	tpl, err := trace.LoadTemplate(m.Strokes)
	if tpl.Len() == 0 {
		return err
	}
	if err != nil {
		c.log.Warn("loading inline glyph", "err", err)
	}
	return c.start("", tpl)
}

func (c *conn) loadGlyph(name string) error {
	tpl, err := c.srv.Library.Template(name)
	if err != nil {
		return err
	}
	return c.start(glyphs.NormalizeName(name), tpl)
}

// start fits the template to the region and starts tracing it.
// On failure the current glyph is kept.
func (c *conn) start(name string, tpl *trace.Template) error {
	ft, vt, err := c.srv.fit(tpl, c.width, c.height)
	if err != nil {
		return err
	}
	c.glyph, c.tpl, c.vt = name, tpl, vt
	c.session.Load(ft)
	c.log.Debug("loaded glyph", "glyph", name, "strokes", tpl.Len(), "transform", vt)
	return nil
}

// resize refits the loaded glyph to a new region, keeping
// the progress of the session.
func (c *conn) resize(width, height float32) error {
	if c.tpl == nil {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("%w: %gx%g", trace.ErrInvalidRegion, width, height)
		}
		c.width, c.height = width, height
		return nil
	}
	ft, vt, err := c.srv.fit(c.tpl, width, height)
	if err != nil {
		return err
	}
	if err := c.session.Resize(ft, c.vt, vt); err != nil {
		return err
	}
	c.width, c.height, c.vt = width, height, vt
	return nil
}

func (c *conn) template() *Template {
	ft := c.session.Template()
	m := &Template{
		Type:     TemplateReply,
		Glyph:    c.glyph,
		Strokes:  []string{},
		Scale:    c.vt.Scale,
		Offset:   [2]float32{c.vt.Offset.X, c.vt.Offset.Y},
		Index:    c.session.Index(),
		Total:    ft.Len(),
		State:    c.session.State().String(),
		Position: c.cursor.String(),
		First:    c.cursor.Index() == 0,
		Last:     c.cursor.Index() >= c.cursor.Len()-1,
	}
	if g, ok := c.srv.Library.Glyph(c.glyph); ok {
		m.Label = g.Label
	}
	for i := range ft.Len() {
		m.Strokes = append(m.Strokes, ft.Strokes[i].Path.String())
	}
	return m
}

func (c *conn) result(r trace.Result) *Result {
	return &Result{
		Type:         ResultReply,
		Accepted:     r.Accepted(),
		Reason:       r.Verdict.Reason.String(),
		Stroke:       r.Stroke,
		Index:        r.Index,
		Total:        r.Total,
		State:        r.State.String(),
		Message:      r.Message(),
		Completeness: r.Verdict.Completeness,
	}
}
