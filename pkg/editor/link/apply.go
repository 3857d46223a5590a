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

// Package link implements the link editing protocol of the editor: a
// popover that collects a URL and an optional separate text, and the
// application of the submitted values to the session.
package link

import (
	"github.com/verse-press/verse/pkg/document/model"
	"github.com/verse-press/verse/pkg/editor"
)

// Apply applies a submitted link to the session as one undoable change.
// text is the separate link text, or nil when the URL doubles as the text.
//
// When the selection is inside a link, the whole link is replaced by the
// new one, or unlinked if url is empty. Otherwise a caret gets a new linked
// run inserted and a range gets linked in place. In every case the text
// typed next is not linked.
func Apply(s *editor.Session, url string, text *string) bool {
	return s.Apply(func(tx *editor.Tx) bool {
		sel := tx.Selection()
		switch {
		case previousURL(tx.Doc, sel, tx.ActiveMarks()) != "":
			return replaceLink(tx, url, text)
		case sel.Collapsed():
			return insertLink(tx, url, text)
		default:
			return linkSelection(tx, url)
		}
	})
}

// replaceLink swaps the link around the selection for a new one.
func replaceLink(tx *editor.Tx, url string, text *string) bool {
	from, to, ok := tx.MarkRange(model.Link)
	if url == "" {
		if !ok {
			return tx.UnsetLink()
		}
		tx.Doc.RemoveMark(from, to, model.Link)
		tx.RemoveStoredMark(model.Link)
		return true
	}

	if ok {
		tx.SetSelection(model.Range(from, to))
	}
	tx.InsertText(textOrURL(url, text), model.NewMarks(model.NewLink(url)))
	tx.RemoveStoredMark(model.Link)
	return true
}

// insertLink inserts a linked run at the caret.
func insertLink(tx *editor.Tx, url string, text *string) bool {
	if url == "" {
		return false
	}

	tx.InsertText(textOrURL(url, text), model.NewMarks(model.NewLink(url)))
	tx.RemoveStoredMark(model.Link)
	return true
}

// linkSelection links the selected text in place and moves the caret to
// the end of the selection.
func linkSelection(tx *editor.Tx, url string) bool {
	if url == "" {
		return tx.UnsetLink()
	}

	sel := tx.Selection()
	tx.Doc.AddMark(sel.From(), sel.To(), model.NewLink(url))
	tx.SetSelection(model.Caret(sel.To()))
	tx.RemoveStoredMark(model.Link)
	return true
}

// previousURL returns the href of the link the selection is in: the link
// in effect at a caret, or the first link inside a range.
func previousURL(doc *model.Document, sel model.Selection, active model.Marks) string {
	if sel.Collapsed() {
		if m, ok := active.Find(model.Link); ok {
			return m.Href
		}
		return ""
	}

	if links := doc.MarksInRange(sel.From(), sel.To(), model.Link); len(links) > 0 {
		return links[0].Href
	}
	return ""
}

func textOrURL(url string, text *string) string {
	if text != nil && *text != "" {
		return *text
	}
	return url
}
