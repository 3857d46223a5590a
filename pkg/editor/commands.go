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

// isFormatMark returns whether the mark type can be toggled without
// attributes.
func isFormatMark(t model.MarkType) bool {
	return t == model.Bold || t == model.Italic || t == model.Underline
}

// ToggleMark adds the mark to the selection, or removes it when the whole
// selection already carries it. On a caret it toggles the mark for the text
// typed next.
func (s *Session) ToggleMark(t model.MarkType) bool {
	if !isFormatMark(t) {
		return false
	}

	return s.Apply(func(tx *Tx) bool {
		sel := tx.Selection()
		if sel.Collapsed() {
			if tx.ActiveMarks().Has(t) {
				tx.RemoveStoredMark(t)
			} else {
				tx.AddStoredMark(model.Mark{Type: t})
			}
			return true
		}

		from, to := sel.From(), sel.To()
		if tx.Doc.RangeHasMark(from, to, t) {
			tx.Doc.RemoveMark(from, to, t)
		} else {
			tx.Doc.AddMark(from, to, model.Mark{Type: t})
		}
		return true
	})
}

// IsMarkActive returns whether the mark is in effect for the selection.
func (s *Session) IsMarkActive(t model.MarkType) bool {
	sel := s.state.selection
	if sel.Collapsed() {
		return s.ActiveMarks().Has(t)
	}
	return s.state.doc.RangeHasMark(sel.From(), sel.To(), t)
}

// ToggleHeading converts the block at the selection anchor between a
// paragraph and a heading of the given level. Alignment is preserved.
func (s *Session) ToggleHeading(level int) bool {
	if level < 1 {
		return false
	}

	return s.Apply(func(tx *Tx) bool {
		b := tx.Doc.Block(tx.Selection().Anchor.Block)
		if b == nil {
			return false
		}
		if b.IsHeading(level) {
			b.Type, b.Level = model.Paragraph, 0
		} else {
			b.Type, b.Level = model.Heading, level
		}
		return true
	})
}

// IsHeadingActive returns whether the block at the selection anchor is a
// heading of the given level.
func (s *Session) IsHeadingActive(level int) bool {
	b := s.state.doc.Block(s.state.selection.Anchor.Block)
	return b != nil && b.IsHeading(level)
}

// SetAlignment sets the alignment of every block touched by the selection.
func (s *Session) SetAlignment(align model.Alignment) bool {
	if !align.Valid() {
		return false
	}

	return s.Apply(func(tx *Tx) bool {
		sel := tx.Selection()
		for _, i := range tx.Doc.BlocksBetween(sel.From(), sel.To()) {
			tx.Doc.Blocks[i].Align = align
		}
		return true
	})
}

// IsAlignmentActive returns whether every block touched by the selection
// has the given alignment.
func (s *Session) IsAlignmentActive(align model.Alignment) bool {
	sel := s.state.selection
	indexes := s.state.doc.BlocksBetween(sel.From(), sel.To())
	for _, i := range indexes {
		if s.state.doc.Blocks[i].Align != align {
			return false
		}
	}
	return len(indexes) > 0
}

// SetLink applies a link mark over the selection. On a caret the link is
// applied to the text typed next. An empty href removes links instead.
func (s *Session) SetLink(href, target string) bool {
	if href == "" {
		return s.UnsetLink()
	}
	if target == "" {
		target = model.DefaultLinkTarget
	}
	mark := model.Mark{Type: model.Link, Href: href, Target: target}

	return s.Apply(func(tx *Tx) bool {
		sel := tx.Selection()
		if sel.Collapsed() {
			tx.AddStoredMark(mark)
			return true
		}
		tx.Doc.AddMark(sel.From(), sel.To(), mark)
		return true
	})
}

// UnsetLink removes link marks from the selection. On a caret the whole
// link around it is removed.
func (s *Session) UnsetLink() bool {
	return s.Apply(func(tx *Tx) bool {
		return tx.UnsetLink()
	})
}

// IsLinkActive returns whether the selection is inside a link.
func (s *Session) IsLinkActive() bool {
	return s.IsMarkActive(model.Link)
}

// InsertText types text at the selection with the marks in effect at the
// caret.
func (s *Session) InsertText(text string) bool {
	if text == "" {
		return false
	}

	return s.Apply(func(tx *Tx) bool {
		marks := tx.ActiveMarks()
		tx.InsertText(text, marks)
		return true
	})
}

// DeleteBackward removes the selection, or the code point before the caret.
// At the start of a block it joins the block with the previous one.
func (s *Session) DeleteBackward() bool {
	return s.Apply(func(tx *Tx) bool {
		sel := tx.Selection()
		if !sel.Collapsed() {
			tx.DeleteSelection()
			return true
		}

		pos := sel.Anchor
		var from model.Pos
		switch {
		case pos.Offset > 0:
			from = model.Pos{Block: pos.Block, Offset: pos.Offset - 1}
		case pos.Block > 0:
			from = model.Pos{Block: pos.Block - 1, Offset: tx.Doc.Blocks[pos.Block-1].Len()}
		default:
			return false
		}
		tx.Doc.DeleteRange(from, pos)
		tx.SetSelection(model.Caret(from))
		return true
	})
}

// SplitBlock replaces the selection with a block boundary.
func (s *Session) SplitBlock() bool {
	return s.Apply(func(tx *Tx) bool {
		tx.DeleteSelection()
		pos := tx.Doc.SplitBlock(tx.Selection().From())
		tx.SetSelection(model.Caret(pos))
		return true
	})
}
