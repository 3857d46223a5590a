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

package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verse-press/verse/pkg/document/model"
	"github.com/verse-press/verse/pkg/editor"
)

func paragraphs(lines ...string) *model.Document {
	var blocks []*model.Block
	for _, line := range lines {
		blocks = append(blocks, model.NewParagraph(model.Run{Text: line}))
	}
	return model.New(blocks...)
}

func span(block, from, to int) model.Selection {
	return model.Range(model.Pos{Block: block, Offset: from}, model.Pos{Block: block, Offset: to})
}

func caret(block, offset int) model.Selection {
	return model.Caret(model.Pos{Block: block, Offset: offset})
}

func TestToggleMark(t *testing.T) {
	t.Run("toggle twice restores marks test", func(t *testing.T) {
		s := editor.New(paragraphs("visit example"), editor.WithSelection(span(0, 6, 13)))
		before := s.Document().Clone()

		assert.True(t, s.ToggleMark(model.Bold))
		assert.Equal(t, `p["visit " "example"[bold]]`, s.Document().StructureAsString())
		assert.True(t, s.IsMarkActive(model.Bold))

		assert.True(t, s.ToggleMark(model.Bold))
		assert.True(t, before.Equal(s.Document()))
		assert.False(t, s.IsMarkActive(model.Bold))
	})

	t.Run("partially marked selection is marked entirely test", func(t *testing.T) {
		doc := model.New(model.NewParagraph(
			model.Run{Text: "ab", Marks: model.NewMarks(model.Mark{Type: model.Italic})},
			model.Run{Text: "cd"},
		))
		s := editor.New(doc, editor.WithSelection(span(0, 0, 4)))
		assert.False(t, s.IsMarkActive(model.Italic))

		s.ToggleMark(model.Italic)
		assert.Equal(t, `p["abcd"[italic]]`, s.Document().StructureAsString())
	})

	t.Run("caret toggles the pending mark test", func(t *testing.T) {
		s := editor.New(paragraphs("ab"), editor.WithSelection(caret(0, 2)))
		before := s.Document().Clone()

		assert.True(t, s.ToggleMark(model.Bold))
		assert.True(t, before.Equal(s.Document()))
		assert.True(t, s.IsMarkActive(model.Bold))

		s.InsertText("cd")
		assert.Equal(t, `p["ab" "cd"[bold]]`, s.Document().StructureAsString())

		// typing keeps inheriting the marks of the text before the caret.
		s.InsertText("e")
		assert.Equal(t, `p["ab" "cde"[bold]]`, s.Document().StructureAsString())
	})

	t.Run("moving the caret drops the pending mark test", func(t *testing.T) {
		s := editor.New(paragraphs("ab"), editor.WithSelection(caret(0, 2)))
		s.ToggleMark(model.Underline)
		s.SetSelection(caret(0, 1))
		_, ok := s.StoredMarks()
		assert.False(t, ok)

		s.InsertText("x")
		assert.Equal(t, `p["axb"]`, s.Document().StructureAsString())
	})

	t.Run("link is not a toggleable mark test", func(t *testing.T) {
		s := editor.New(paragraphs("ab"), editor.WithSelection(span(0, 0, 2)))
		assert.False(t, s.ToggleMark(model.Link))
	})
}

func TestToggleHeading(t *testing.T) {
	s := editor.New(paragraphs("title", "body"), editor.WithSelection(caret(0, 2)))
	s.SetAlignment(model.AlignCenter)

	assert.True(t, s.ToggleHeading(1))
	assert.Equal(t, "h1(center)[\"title\"]\np[\"body\"]", s.Document().StructureAsString())
	assert.True(t, s.IsHeadingActive(1))

	assert.True(t, s.ToggleHeading(1))
	assert.Equal(t, "p(center)[\"title\"]\np[\"body\"]", s.Document().StructureAsString())
	assert.False(t, s.IsHeadingActive(1))
}

func TestSetAlignment(t *testing.T) {
	t.Run("collapsed selection aligns only its block test", func(t *testing.T) {
		s := editor.New(paragraphs("one", "two", "three"), editor.WithSelection(caret(1, 1)))
		assert.True(t, s.SetAlignment(model.AlignCenter))

		doc := s.Document()
		assert.Equal(t, model.AlignLeft, doc.Blocks[0].Align)
		assert.Equal(t, model.AlignCenter, doc.Blocks[1].Align)
		assert.Equal(t, model.AlignLeft, doc.Blocks[2].Align)
		assert.True(t, s.IsAlignmentActive(model.AlignCenter))
		assert.False(t, s.IsAlignmentActive(model.AlignLeft))
	})

	t.Run("range aligns every touched block test", func(t *testing.T) {
		sel := model.Range(model.Pos{Block: 0, Offset: 1}, model.Pos{Block: 1, Offset: 1})
		s := editor.New(paragraphs("one", "two", "three"), editor.WithSelection(sel))
		s.SetAlignment(model.AlignJustify)

		doc := s.Document()
		assert.Equal(t, model.AlignJustify, doc.Blocks[0].Align)
		assert.Equal(t, model.AlignJustify, doc.Blocks[1].Align)
		assert.Equal(t, model.AlignLeft, doc.Blocks[2].Align)
	})

	t.Run("unknown alignment is ignored test", func(t *testing.T) {
		s := editor.New(paragraphs("one"))
		assert.False(t, s.SetAlignment("middle"))
		assert.False(t, s.CanUndo())
	})
}

func TestHistory(t *testing.T) {
	t.Run("undo and redo symmetry test", func(t *testing.T) {
		s := editor.New(paragraphs("visit example", "second line"), editor.WithSelection(span(0, 0, 5)))
		initial := s.Document().Clone()

		steps := []func() bool{
			func() bool { return s.ToggleMark(model.Bold) },
			func() bool { return s.SetAlignment(model.AlignRight) },
			func() bool { return s.ToggleHeading(1) },
			func() bool { return s.SetLink("http://x.com", "") },
			func() bool { return s.InsertText("hello") },
		}
		for _, step := range steps {
			assert.True(t, step())
		}
		final := s.Document().Clone()

		for range steps {
			assert.True(t, s.Undo())
		}
		assert.True(t, initial.Equal(s.Document()))
		assert.False(t, s.CanUndo())
		assert.False(t, s.Undo())

		for range steps {
			assert.True(t, s.Redo())
		}
		assert.True(t, final.Equal(s.Document()))
		assert.False(t, s.CanRedo())
	})

	t.Run("new change clears redo test", func(t *testing.T) {
		s := editor.New(paragraphs("ab"), editor.WithSelection(span(0, 0, 2)))
		s.ToggleMark(model.Italic)
		s.Undo()
		assert.True(t, s.CanRedo())

		s.ToggleMark(model.Underline)
		assert.False(t, s.CanRedo())
	})

	t.Run("no-op change is not recorded test", func(t *testing.T) {
		s := editor.New(paragraphs("ab"), editor.WithSelection(caret(0, 1)))
		assert.False(t, s.SetAlignment(model.AlignLeft))
		assert.False(t, s.CanUndo())
	})
}

func TestReadOnlySession(t *testing.T) {
	s := editor.New(paragraphs("ab"), editor.WithEditable(false), editor.WithSelection(span(0, 0, 2)))
	before := s.Document().Clone()

	assert.False(t, s.ToggleMark(model.Bold))
	assert.False(t, s.SetAlignment(model.AlignCenter))
	assert.False(t, s.InsertText("x"))
	assert.True(t, before.Equal(s.Document()))

	s.SetEditable(true)
	assert.True(t, s.ToggleMark(model.Bold))
}

func TestTyping(t *testing.T) {
	t.Run("insert replaces the selection test", func(t *testing.T) {
		s := editor.New(paragraphs("hello world"), editor.WithSelection(span(0, 6, 11)))
		s.InsertText("verse")
		assert.Equal(t, `p["hello verse"]`, s.Document().StructureAsString())
		assert.Equal(t, caret(0, 11), s.Selection())
	})

	t.Run("line breaks split blocks test", func(t *testing.T) {
		s := editor.New(paragraphs(""), editor.WithSelection(caret(0, 0)))
		s.InsertText("one\ntwo")
		assert.Equal(t, "p[\"one\"]\np[\"two\"]", s.Document().StructureAsString())
		assert.Equal(t, caret(1, 3), s.Selection())
	})

	t.Run("delete backward joins blocks test", func(t *testing.T) {
		s := editor.New(paragraphs("one", "two"), editor.WithSelection(caret(1, 0)))
		assert.True(t, s.DeleteBackward())
		assert.Equal(t, `p["onetwo"]`, s.Document().StructureAsString())
		assert.Equal(t, caret(0, 3), s.Selection())

		assert.True(t, s.DeleteBackward())
		assert.Equal(t, `p["ontwo"]`, s.Document().StructureAsString())

		s.SetSelection(caret(0, 0))
		assert.False(t, s.DeleteBackward())
	})

	t.Run("split block test", func(t *testing.T) {
		s := editor.New(paragraphs("onetwo"), editor.WithSelection(caret(0, 3)))
		assert.True(t, s.SplitBlock())
		assert.Equal(t, "p[\"one\"]\np[\"two\"]", s.Document().StructureAsString())
		assert.Equal(t, caret(1, 0), s.Selection())
	})
}

func TestSubscribe(t *testing.T) {
	s := editor.New(paragraphs("ab"), editor.WithSelection(caret(0, 0)))

	var events []editor.EventType
	unsubscribe := s.Subscribe(func(e editor.Event) {
		events = append(events, e.Type)
	})

	s.SetSelection(caret(0, 1))
	s.InsertText("x")
	assert.Equal(t, []editor.EventType{
		editor.SelectionChanged,
		editor.DocumentChanged,
		editor.SelectionChanged,
	}, events)

	unsubscribe()
	s.SetSelection(caret(0, 0))
	assert.Len(t, events, 3)
}
