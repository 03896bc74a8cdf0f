// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trace

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glyphtrace/base/errors"
	"cogentcore.org/glyphtrace/math32"
	"cogentcore.org/glyphtrace/paint/ppath"
	"github.com/jinzhu/copier"
)

// States are the states of a [Session].
type States int32

const (
	// Idle is a session without a template, or with a template
	// that has no strokes.
	Idle States = iota

	// Active is a session waiting for the stroke at its index.
	Active

	// Complete is a session in which all strokes have been accepted.
	Complete
)

var stateNames = [...]string{"idle", "active", "complete"}

func (s States) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("States(%d)", int(s))
	}
	return stateNames[s]
}

// Feedback is the live feedback for an input point.
type Feedback struct {

	// Accepted is whether the point was added to the stroke.
	Accepted bool

	// Near is whether the last accepted point is near the active
	// template stroke.
	Near bool

	// OnTrack is whether all accepted points of the stroke so far
	// have been near the active template stroke.
	OnTrack bool
}

// Result is the outcome of finishing a stroke with [Session.EndStroke].
type Result struct {
	Verdict Verdict

	// Stroke is the index of the stroke that was evaluated.
	Stroke int

	// State is the state of the session after the stroke.
	State States

	// Index is the index of the active stroke after the stroke.
	Index int

	// Total is the number of strokes of the template.
	Total int
}

// Accepted returns true if the stroke was accepted.
func (r Result) Accepted() bool {
	return r.Verdict.Accept()
}

// Message returns the message to show the user for the result.
func (r Result) Message() string {
	switch {
	case r.Total == 0:
		return "No character loaded"
	case r.Accepted() && r.State == Complete:
		return "Character complete"
	case r.Accepted():
		return fmt.Sprintf("Stroke %d correct", r.Stroke+1)
	case r.State == Complete:
		return "Character already complete"
	default:
		return fmt.Sprintf("Stroke %d incorrect, try again", r.Stroke+1)
	}
}

// Session is the state of tracing one template: which stroke is next,
// the accepted user strokes, and the stroke being drawn. The template
// must be fitted to the same coordinates as the input points.
// A Session must only be used by one goroutine at a time.
type Session struct {
	Params Params

	tpl      *Template
	state    States
	index    int
	accepted []ppath.Path
	ink      *Ink
	near     bool
	onTrack  bool

	// probe is the proximity probe for the active stroke.
	probe *Probe
}

// NewSession returns a new session tracing the given template,
// which can be nil for an [Idle] session.
func NewSession(tpl *Template, prm Params) *Session {
	s := &Session{Params: prm}
	s.Load(tpl)
	return s
}

// Load starts tracing a new template from its first stroke.
func (s *Session) Load(tpl *Template) {
	s.tpl = tpl
	s.Reset()
}

// Reset discards all accepted strokes and the stroke being drawn,
// and starts again from the first stroke of the same template.
func (s *Session) Reset() {
	s.accepted = nil
	s.ink = NewInk(s.Params.TouchTolerance, s.Params.Smooth)
	s.onTrack = true
	s.near = false
	s.setIndex(0)
}

// setIndex sets the active stroke index and the matching state.
func (s *Session) setIndex(i int) {
	s.index = i
	s.probe = nil
	switch {
	case s.tpl.Len() == 0:
		s.state = Idle
	case i >= s.tpl.Len():
		s.state = Complete
	default:
		s.state = Active
		pstep, _ := s.Params.steps()
		s.probe = NewProbe(s.tpl.Strokes[i].Path, pstep)
	}
}

// State returns the state of the session.
func (s *Session) State() States {
	return s.state
}

// Index returns the index of the active stroke, which equals the
// number of strokes once the session is [Complete].
func (s *Session) Index() int {
	return s.index
}

// Template returns the template being traced.
func (s *Session) Template() *Template {
	return s.tpl
}

// Accepted returns the number of accepted strokes.
func (s *Session) Accepted() int {
	return len(s.accepted)
}

// OnTrack returns whether the stroke being drawn has stayed near
// the active template stroke so far.
func (s *Session) OnTrack() bool {
	return s.onTrack
}

// Point adds a raw input point to the stroke being drawn, the first
// point starting the stroke. The returned feedback is advisory and
// never blocks drawing. Points are ignored unless the session is [Active].
func (s *Session) Point(p math32.Vector2) Feedback {
	if s.state != Active {
		return Feedback{}
	}
	first := s.ink.Len() == 0
	if !s.ink.Add(p) {
		return Feedback{Near: s.near, OnTrack: s.onTrack}
	}
	s.near = s.probe.Near(p, s.Params.DistanceThreshold)
	if first {
		s.onTrack = s.near
	} else if !s.near {
		s.onTrack = false
	}
	return Feedback{Accepted: true, Near: s.near, OnTrack: s.onTrack}
}

// EndStroke finishes the stroke being drawn and evaluates it against the
// active template stroke. An accepted stroke is kept and the session
// moves on to the next stroke, becoming [Complete] after the last one.
// A rejected stroke is discarded and the same stroke must be traced again.
func (s *Session) EndStroke() Result {
	r := Result{Stroke: s.index, Total: s.tpl.Len()}
	user := s.ink.Finish()
	s.onTrack = true
	s.near = false
	if s.state != Active {
		r.Verdict = Verdict{Reason: Empty}
		r.State, r.Index = s.state, s.index
		return r
	}
	r.Verdict = Evaluate(user, s.tpl.Strokes[s.index].Path, s.Params)
	if r.Verdict.Accept() {
		s.accepted = append(s.accepted, user)
		s.setIndex(s.index + 1)
	}
	r.State, r.Index = s.state, s.index
	slog.Debug("stroke ended", "stroke", r.Stroke, "reason", r.Verdict.Reason, "state", r.State)
	return r
}

// Resize moves the session to a new fitting of its template, such as
// after the drawing region changed size. The accepted strokes and the
// stroke being drawn are mapped from the from transform to the to
// transform, tpl being the template fitted with the to transform.
func (s *Session) Resize(tpl *Template, from, to ViewTransform) error {
	if tpl == nil {
		return ErrNoTemplate
	}
	if tpl.Len() != s.tpl.Len() {
		return fmt.Errorf("trace: resized template has %d strokes instead of %d", tpl.Len(), s.tpl.Len())
	}
	m := to.Matrix().Mul(from.Invert().Matrix())
	for i, a := range s.accepted {
		s.accepted[i] = a.Transform(m)
	}
	s.ink.Transform(m)
	s.tpl = tpl
	s.setIndex(s.index)
	return nil
}

// Snapshot is a copy of the state of a [Session] for drawing it.
type Snapshot struct {
	State States
	Index int
	Total int

	// Strokes are the template strokes.
	Strokes []ppath.Path

	// Accepted are the accepted user strokes.
	Accepted []ppath.Path

	// Ink is the stroke being drawn.
	Ink ppath.Path

	OnTrack bool
}

// Snapshot returns a deep copy of the session state, which shares
// nothing with the session.
func (s *Session) Snapshot() *Snapshot {
	src := &Snapshot{
		State:    s.state,
		Index:    s.index,
		Total:    s.tpl.Len(),
		Accepted: s.accepted,
		Ink:      s.ink.Path(),
		OnTrack:  s.onTrack,
	}
	if s.tpl != nil {
		src.Strokes = s.tpl.Paths()
	}
	sn := &Snapshot{}
	errors.Log(copier.CopyWithOption(sn, src, copier.Option{DeepCopy: true}))
	return sn
}
