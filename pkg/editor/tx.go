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

package editor

import (
	"github.com/verse-press/verse/pkg/document/model"
)

// state is an immutable snapshot of what the session edits.
type state struct {
	doc       *model.Document
	selection model.Selection
	stored    model.Marks
	storedSet bool
}

func (s *state) equal(other *state) bool {
	if s.selection != other.selection || s.storedSet != other.storedSet {
		return false
	}
	if s.storedSet && !s.stored.Equal(other.stored) {
		return false
	}
	return s.doc.Equal(other.doc)
}

// Tx is a transaction over a working copy of the session state. Commands
// mutate Doc and move the selection through the Tx; nothing is visible to
// the session until the transaction is committed.
type Tx struct {
	Doc *model.Document

	selection model.Selection
	stored    model.Marks
	storedSet bool
}

func newTx(s *state) *Tx {
	return &Tx{
		Doc:       s.doc.Clone(),
		selection: s.selection,
		stored:    s.stored.Copy(),
		storedSet: s.storedSet,
	}
}

// Selection returns the selection of the transaction.
func (tx *Tx) Selection() model.Selection {
	return tx.selection
}

// SetSelection moves the selection of the transaction. Like a selection
// change in the session, it drops stored marks.
func (tx *Tx) SetSelection(sel model.Selection) {
	tx.selection = tx.Doc.ClampSelection(sel)
	tx.stored = nil
	tx.storedSet = false
}

// ActiveMarks returns the marks in effect at the caret of the transaction.
func (tx *Tx) ActiveMarks() model.Marks {
	if tx.storedSet {
		return tx.stored.Copy()
	}
	return tx.Doc.MarksAt(tx.selection.From())
}

// AddStoredMark makes the next typed text carry the mark.
func (tx *Tx) AddStoredMark(mark model.Mark) {
	tx.stored = tx.ActiveMarks().Add(mark)
	tx.storedSet = true
}

// RemoveStoredMark keeps the next typed text from carrying marks of the
// given type.
func (tx *Tx) RemoveStoredMark(t model.MarkType) {
	tx.stored = tx.ActiveMarks().Remove(t)
	tx.storedSet = true
}

// DeleteSelection removes the selected content and collapses the selection
// at its start.
func (tx *Tx) DeleteSelection() {
	from, to := tx.selection.From(), tx.selection.To()
	if from == to {
		return
	}
	tx.Doc.DeleteRange(from, to)
	tx.SetSelection(model.Caret(from))
}

// InsertText replaces the selection with text carrying the given marks and
// places the caret after it. Line breaks split blocks.
func (tx *Tx) InsertText(text string, marks model.Marks) {
	tx.DeleteSelection()

	pos := tx.selection.From()
	for i, line := range splitLines(text) {
		if i > 0 {
			pos = tx.Doc.SplitBlock(pos)
		}
		pos = tx.Doc.InsertText(pos, line, marks)
	}
	tx.SetSelection(model.Caret(pos))
}

// MarkRange returns the selection grown to the whole extent of the marks
// of type t found at its ends. A caret is grown to the mark around it. It
// reports false when no such mark is in the returned range.
func (tx *Tx) MarkRange(t model.MarkType) (model.Pos, model.Pos, bool) {
	sel := tx.selection
	if sel.Collapsed() {
		return tx.Doc.MarkExtent(sel.Anchor, t)
	}

	from, to := sel.From(), sel.To()
	next := model.Pos{Block: from.Block, Offset: from.Offset + 1}
	if tx.Doc.RangeHasMark(from, next, t) {
		from, _, _ = tx.Doc.MarkExtent(from, t)
	}
	if to.Offset > 0 {
		prev := model.Pos{Block: to.Block, Offset: to.Offset - 1}
		if tx.Doc.RangeHasMark(prev, to, t) {
			_, to, _ = tx.Doc.MarkExtent(prev, t)
		}
	}
	return from, to, len(tx.Doc.MarksInRange(from, to, t)) > 0
}

// UnsetLink removes link marks from the selection, or from the whole link
// around a caret, and keeps the next typed text from being linked.
func (tx *Tx) UnsetLink() bool {
	sel := tx.selection
	from, to := sel.From(), sel.To()
	if sel.Collapsed() {
		start, end, ok := tx.Doc.MarkExtent(from, model.Link)
		if !ok {
			if tx.ActiveMarks().Has(model.Link) {
				tx.RemoveStoredMark(model.Link)
				return true
			}
			return false
		}
		from, to = start, end
	}

	removed := tx.Doc.RemoveMark(from, to, model.Link)
	if removed && sel.Collapsed() {
		tx.RemoveStoredMark(model.Link)
	}
	return removed
}

func (tx *Tx) commit() *state {
	return &state{
		doc:       tx.Doc,
		selection: tx.Doc.ClampSelection(tx.selection),
		stored:    tx.stored,
		storedSet: tx.storedSet,
	}
}

func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	return append(lines, text[start:])
}
