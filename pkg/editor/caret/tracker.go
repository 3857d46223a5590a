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

package caret

import (
	"github.com/verse-press/verse/pkg/editor"
)

// Option configures a Tracker.
type Option func(*Tracker)

// WithOrigin sets where the scrolling container starts in the viewport.
func WithOrigin(origin Point) Option {
	return func(t *Tracker) {
		t.origin = origin
	}
}

// widthSetter is implemented by layouts whose wrap width follows the
// viewport.
type widthSetter interface {
	SetWidth(width int)
}

// Tracker keeps the viewport coordinate of the selection anchor of a
// session up to date. It recomputes on every selection or document change
// of the session and whenever the container scrolls or resizes.
type Tracker struct {
	session *editor.Session
	layout  Layout

	origin Point
	scroll Point
	width  int
	height int

	current   Point
	observers map[int]func(Point)
	nextID    int

	unsubscribe func()
}

// NewTracker creates a tracker of the given session and starts following
// it. Close stops following.
func NewTracker(s *editor.Session, layout Layout, opts ...Option) *Tracker {
	t := &Tracker{
		session:   s,
		layout:    layout,
		observers: make(map[int]func(Point)),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.current = t.compute()
	t.unsubscribe = s.Subscribe(func(editor.Event) {
		t.update()
	})
	return t
}

// CoordinatesAtSelectionAnchor returns the viewport coordinate of the
// selection anchor.
func (t *Tracker) CoordinatesAtSelectionAnchor() Point {
	return t.current
}

// Scroll sets the scroll offset of the container.
func (t *Tracker) Scroll(x, y int) {
	t.scroll = Point{X: x, Y: y}
	t.update()
}

// Resize sets the size of the container. Layouts that wrap to the
// container width are updated.
func (t *Tracker) Resize(width, height int) {
	t.width, t.height = width, height
	if ws, ok := t.layout.(widthSetter); ok {
		ws.SetWidth(width)
	}
	t.update()
}

// Visible returns whether the anchor is inside the container. A container
// that was never resized is treated as unbounded.
func (t *Tracker) Visible() bool {
	if t.width == 0 && t.height == 0 {
		return true
	}
	p := t.current.Sub(t.origin)
	return p.X >= 0 && p.Y >= 0 && p.X <= t.width && p.Y <= t.height
}

// Subscribe registers a function called with the new coordinate whenever it
// changes. It returns a function that removes the subscription.
func (t *Tracker) Subscribe(fn func(Point)) func() {
	id := t.nextID
	t.nextID++
	t.observers[id] = fn

	return func() {
		delete(t.observers, id)
	}
}

// Close stops following the session.
func (t *Tracker) Close() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
	}
}

func (t *Tracker) compute() Point {
	anchor := t.session.Selection().Anchor
	p := t.layout.CoordsAtPos(t.session.Document(), anchor)
	return p.Sub(t.scroll).Add(t.origin)
}

func (t *Tracker) update() {
	next := t.compute()
	if next == t.current {
		return
	}

	t.current = next
	for _, fn := range t.observers {
		fn(next)
	}
}
