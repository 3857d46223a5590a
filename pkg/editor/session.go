/*
 * Copyright 2026 The Verse Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package editor provides the editing session of a rich-text surface: the
// current document, selection, undo history and the commands a toolbar
// issues against them.
package editor

import (
	"github.com/verse-press/verse/pkg/document/model"
)

// EventType is the type of a session event.
type EventType int

const (
	// SelectionChanged is emitted when the selection moves.
	SelectionChanged EventType = iota

	// DocumentChanged is emitted when the document content changes.
	DocumentChanged
)

// Event is emitted to subscribers after a transaction is applied.
type Event struct {
	Type      EventType
	Selection model.Selection
}

// Option configures a Session.
type Option func(*Session)

// WithEditable sets whether the session accepts edits. A read-only session
// is used by viewers.
func WithEditable(editable bool) Option {
	return func(s *Session) {
		s.editable = editable
	}
}

// WithSelection sets the initial selection of the session.
func WithSelection(sel model.Selection) Option {
	return func(s *Session) {
		s.state.selection = sel
	}
}

// Session is the transient state of one editing surface. It is owned by a
// single UI event loop and is not safe for concurrent use.
type Session struct {
	state    *state
	editable bool
	history  *history

	subscribers map[int]func(Event)
	nextSubID   int
}

// New creates a new editing session over the given document. The session
// takes ownership of the document.
func New(doc *model.Document, opts ...Option) *Session {
	if doc == nil {
		doc = model.New()
	}

	s := &Session{
		state:       &state{doc: doc},
		editable:    true,
		history:     newHistory(),
		subscribers: make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state.selection = doc.ClampSelection(s.state.selection)

	return s
}

// Document returns the current document. Callers must not mutate it.
func (s *Session) Document() *model.Document {
	return s.state.doc
}

// Selection returns the current selection.
func (s *Session) Selection() model.Selection {
	return s.state.selection
}

// StoredMarks returns the marks that the next typed text will carry when
// they were set explicitly, and whether they were.
func (s *Session) StoredMarks() (model.Marks, bool) {
	if !s.state.storedSet {
		return nil, false
	}
	return s.state.stored.Copy(), true
}

// Editable returns whether the session accepts edits.
func (s *Session) Editable() bool {
	return s.editable
}

// SetEditable switches between the read-only viewer and the active editor.
func (s *Session) SetEditable(editable bool) {
	s.editable = editable
}

// ActiveMarks returns the marks in effect at the caret: stored marks when
// set, otherwise the marks of the text around the selection start.
func (s *Session) ActiveMarks() model.Marks {
	if s.state.storedSet {
		return s.state.stored.Copy()
	}
	return s.state.doc.MarksAt(s.state.selection.From())
}

// SetSelection moves the selection. Positions are clamped to the document
// and stored marks are dropped.
func (s *Session) SetSelection(sel model.Selection) {
	sel = s.state.doc.ClampSelection(sel)
	if sel == s.state.selection && !s.state.storedSet {
		return
	}

	s.state.selection = sel
	s.state.stored = nil
	s.state.storedSet = false
	s.emit(Event{Type: SelectionChanged, Selection: sel})
}

// Subscribe registers a function called after every change of the session.
// It returns a function that removes the subscription.
func (s *Session) Subscribe(fn func(Event)) func() {
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		delete(s.subscribers, id)
	}
}

// Apply runs fn against a working copy of the session state. When fn
// returns true and the state changed, the change is committed as one undo
// step. It returns whether a change was committed. Apply is a no-op on a
// read-only session.
func (s *Session) Apply(fn func(tx *Tx) bool) bool {
	if !s.editable {
		return false
	}

	tx := newTx(s.state)
	if !fn(tx) {
		return false
	}
	next := tx.commit()
	if next.equal(s.state) {
		return false
	}

	s.history.record(s.state)
	return s.replace(next)
}

// Undo reverts the last committed change.
func (s *Session) Undo() bool {
	if !s.CanUndo() {
		return false
	}
	return s.replace(s.history.undo(s.state))
}

// Redo re-applies the last undone change.
func (s *Session) Redo() bool {
	if !s.CanRedo() {
		return false
	}
	return s.replace(s.history.redo(s.state))
}

// CanUndo returns whether there is a change to undo.
func (s *Session) CanUndo() bool {
	return s.editable && s.history.canUndo()
}

// CanRedo returns whether there is a change to redo.
func (s *Session) CanRedo() bool {
	return s.editable && s.history.canRedo()
}

// replace swaps the session state and notifies subscribers.
func (s *Session) replace(next *state) bool {
	prev := s.state
	s.state = next

	if !prev.doc.Equal(next.doc) {
		s.emit(Event{Type: DocumentChanged, Selection: next.selection})
	}
	if prev.selection != next.selection {
		s.emit(Event{Type: SelectionChanged, Selection: next.selection})
	}
	return true
}

func (s *Session) emit(event Event) {
	for _, fn := range s.subscribers {
		fn(event)
	}
}
