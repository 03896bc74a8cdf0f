// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

// The types of messages from a client.
const (
	// LoadMessage loads a glyph by name or from inline strokes,
	// and starts tracing it.
	LoadMessage = "load"

	// RegionMessage sets the size of the drawing region,
	// refitting the loaded glyph.
	RegionMessage = "region"

	// PointMessage adds a point to the stroke being drawn.
	PointMessage = "point"

	// EndMessage finishes the stroke being drawn.
	EndMessage = "end"

	// ResetMessage starts tracing the loaded glyph again.
	ResetMessage = "reset"

	// NextMessage loads the next glyph of the library.
	NextMessage = "next"

	// PrevMessage loads the previous glyph of the library.
	PrevMessage = "prev"
)

// The types of messages to a client.
const (
	TemplateReply = "template"
	FeedbackReply = "feedback"
	ResultReply   = "result"
	ErrorReply    = "error"
)

// Message is a message from a client. Type selects which
// of the other fields are used.
type Message struct {
	Type string `json:"type"`

	// Glyph is the name of the glyph to load.
	Glyph string `json:"glyph,omitempty"`

	// Strokes are the path data of an inline glyph to load
	// when Glyph is empty.
	Strokes []string `json:"strokes,omitempty"`

	Width  float32 `json:"width,omitempty"`
	Height float32 `json:"height,omitempty"`

	X float32 `json:"x,omitempty"`
	Y float32 `json:"y,omitempty"`
}

// Template describes the glyph being traced, fitted to the
// drawing region of the client.
type Template struct {
	Type  string `json:"type"`
	Glyph string `json:"glyph"`
	Label string `json:"label"`

	// Strokes are the fitted template strokes as path data.
	Strokes []string `json:"strokes"`

	// Scale and Offset are the transform from glyph coordinates
	// to region coordinates.
	Scale  float32    `json:"scale"`
	Offset [2]float32 `json:"offset"`

	Index int    `json:"index"`
	Total int    `json:"total"`
	State string `json:"state"`

	// Position is the position of the glyph in the library, such as "2 of 5".
	Position string `json:"position"`
	First    bool   `json:"first"`
	Last     bool   `json:"last"`
}

// Feedback is the live feedback for a point.
type Feedback struct {
	Type     string `json:"type"`
	Accepted bool   `json:"accepted"`
	Near     bool   `json:"near"`
	OnTrack  bool   `json:"on_track"`
}

// Result is the outcome of a finished stroke.
type Result struct {
	Type     string `json:"type"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason"`

	// Stroke is the index of the stroke that was evaluated.
	Stroke int `json:"stroke"`

	// Index is the index of the active stroke after the stroke.
	Index int    `json:"index"`
	Total int    `json:"total"`
	State string `json:"state"`

	// Message is the message to show the user.
	Message      string  `json:"message"`
	Completeness float32 `json:"completeness"`
}

// Error reports a message that could not be handled.
// The connection stays open.
type Error struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// GlyphInfo describes a glyph in the list of glyphs.
type GlyphInfo struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Strokes int    `json:"strokes"`
}
