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

package link

import (
	"github.com/verse-press/verse/pkg/editor"
	"github.com/verse-press/verse/pkg/editor/caret"
)

// State is the state of a Popover.
type State int

const (
	// Closed is the state of a popover that is not shown.
	Closed State = iota

	// Open is the state of a popover collecting a link.
	Open
)

// String returns the name of the state.
func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Fields is what a renderer needs to draw the popover.
type Fields struct {
	Open            bool
	URL             string
	Text            string
	UseSeparateText bool
	Anchor          caret.Point
}

// AnchorSource provides the viewport coordinate the popover is attached to.
// caret.Tracker implements it.
type AnchorSource interface {
	CoordinatesAtSelectionAnchor() caret.Point
	Subscribe(fn func(caret.Point)) func()
}

// Popover is the link editor of one session. Its fields live only while it
// is open and are reset on every open.
type Popover struct {
	session *editor.Session
	anchors AnchorSource

	state   State
	url     string
	text    string
	useText bool
	anchor  caret.Point

	stopFollowing func()
}

// NewPopover creates a closed popover for the session. anchors may be nil
// when the popover is not drawn.
func NewPopover(s *editor.Session, anchors AnchorSource) *Popover {
	return &Popover{
		session: s,
		anchors: anchors,
	}
}

// State returns the state of the popover.
func (p *Popover) State() State {
	return p.state
}

// Open shows the popover. When the selection is in a link, the fields are
// filled from it. Opening is refused on a read-only session.
func (p *Popover) Open() bool {
	if !p.session.Editable() {
		return false
	}

	p.reset()
	p.state = Open
	p.prefill()

	if p.anchors != nil {
		p.anchor = p.anchors.CoordinatesAtSelectionAnchor()
		p.stopFollowing = p.anchors.Subscribe(func(pt caret.Point) {
			p.anchor = pt
		})
	}
	return true
}

// OpenFunc returns Open as a toolbar hook.
func (p *Popover) OpenFunc() func() {
	return func() {
		p.Open()
	}
}

// SetURL sets the URL field.
func (p *Popover) SetURL(url string) {
	if p.state != Open {
		return
	}
	p.url = url
}

// SetText sets the text field. While the popover does not use a separate
// text, the text field mirrors the URL field and editing it edits the URL.
func (p *Popover) SetText(text string) {
	if p.state != Open {
		return
	}
	if !p.useText {
		p.url = text
		return
	}
	p.text = text
}

// SetUseSeparateText switches between a separate text and the URL as the
// link text.
func (p *Popover) SetUseSeparateText(use bool) {
	if p.state != Open {
		return
	}
	p.useText = use
}

// Fields returns the current fields of the popover.
func (p *Popover) Fields() Fields {
	text := p.url
	if p.useText {
		text = p.text
	}
	return Fields{
		Open:            p.state == Open,
		URL:             p.url,
		Text:            text,
		UseSeparateText: p.useText,
		Anchor:          p.anchor,
	}
}

// Submit closes the popover and applies its fields to the session. It
// returns whether the document or selection changed.
func (p *Popover) Submit() bool {
	if p.state != Open {
		return false
	}

	url := p.url
	var text *string
	if p.useText {
		t := p.text
		text = &t
	}
	p.reset()

	return Apply(p.session, url, text)
}

// Dismiss closes the popover without touching the session.
func (p *Popover) Dismiss() {
	if p.state != Open {
		return
	}
	p.reset()
}

// prefill copies the link at the selection into the fields. The link text
// is the run just before the anchor.
func (p *Popover) prefill() {
	sel := p.session.Selection()
	href := previousURL(p.session.Document(), sel, p.session.ActiveMarks())
	if href == "" {
		return
	}

	p.url = href
	run, ok := p.session.Document().RunBefore(sel.Anchor)
	if !ok {
		return
	}
	p.text = run.Text
	p.useText = run.Text != href
}

func (p *Popover) reset() {
	if p.stopFollowing != nil {
		p.stopFollowing()
		p.stopFollowing = nil
	}
	p.state = Closed
	p.url, p.text, p.useText = "", "", false
	p.anchor = caret.Point{}
}

var _ AnchorSource = (*caret.Tracker)(nil)
