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

package caret_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verse-press/verse/pkg/document/model"
	"github.com/verse-press/verse/pkg/editor"
	"github.com/verse-press/verse/pkg/editor/caret"
)

func testLayout() *caret.GridLayout {
	return &caret.GridLayout{
		CellWidth:    10,
		CellHeight:   20,
		Columns:      10,
		HeadingScale: 2,
		BlockMargin:  5,
	}
}

func paragraph(text string, align model.Alignment) *model.Block {
	b := model.NewParagraph(model.Run{Text: text})
	b.Align = align
	return b
}

func at(block, offset int) model.Pos {
	return model.Pos{Block: block, Offset: offset}
}

func TestGridLayout(t *testing.T) {
	l := testLayout()

	t.Run("blocks are stacked with a margin test", func(t *testing.T) {
		doc := model.New(paragraph("hello", model.AlignLeft), paragraph("world", model.AlignLeft))
		assert.Equal(t, caret.Point{X: 0, Y: 0}, l.CoordsAtPos(doc, at(0, 0)))
		assert.Equal(t, caret.Point{X: 50, Y: 0}, l.CoordsAtPos(doc, at(0, 5)))
		assert.Equal(t, caret.Point{X: 20, Y: 25}, l.CoordsAtPos(doc, at(1, 2)))
	})

	t.Run("long lines wrap test", func(t *testing.T) {
		doc := model.New(paragraph("abcdefghijklmno", model.AlignLeft), paragraph("x", model.AlignLeft))
		assert.Equal(t, caret.Point{X: 90, Y: 0}, l.CoordsAtPos(doc, at(0, 9)))
		assert.Equal(t, caret.Point{X: 0, Y: 20}, l.CoordsAtPos(doc, at(0, 10)))
		assert.Equal(t, caret.Point{X: 20, Y: 20}, l.CoordsAtPos(doc, at(0, 12)))
		assert.Equal(t, caret.Point{X: 50, Y: 20}, l.CoordsAtPos(doc, at(0, 15)))
		assert.Equal(t, caret.Point{X: 0, Y: 45}, l.CoordsAtPos(doc, at(1, 0)))
	})

	t.Run("wide characters take two cells test", func(t *testing.T) {
		doc := model.New(paragraph("日本語", model.AlignLeft))
		assert.Equal(t, caret.Point{X: 40, Y: 0}, l.CoordsAtPos(doc, at(0, 2)))
	})

	t.Run("grapheme clusters are measured whole test", func(t *testing.T) {
		doc := model.New(paragraph("e\u0301x", model.AlignLeft))
		assert.Equal(t, caret.Point{X: 0, Y: 0}, l.CoordsAtPos(doc, at(0, 1)))
		assert.Equal(t, caret.Point{X: 10, Y: 0}, l.CoordsAtPos(doc, at(0, 2)))
		assert.Equal(t, caret.Point{X: 20, Y: 0}, l.CoordsAtPos(doc, at(0, 3)))
	})

	t.Run("alignment shifts lines test", func(t *testing.T) {
		doc := model.New(
			paragraph("abcd", model.AlignCenter),
			paragraph("abcd", model.AlignRight),
			paragraph("abcd", model.AlignJustify),
		)
		assert.Equal(t, caret.Point{X: 30, Y: 0}, l.CoordsAtPos(doc, at(0, 0)))
		assert.Equal(t, caret.Point{X: 70, Y: 25}, l.CoordsAtPos(doc, at(1, 1)))
		assert.Equal(t, caret.Point{X: 0, Y: 50}, l.CoordsAtPos(doc, at(2, 0)))
	})

	t.Run("headings are scaled test", func(t *testing.T) {
		doc := model.New(model.NewHeading(1, model.Run{Text: "ab"}), paragraph("cd", model.AlignLeft))
		assert.Equal(t, caret.Point{X: 20, Y: 0}, l.CoordsAtPos(doc, at(0, 1)))
		assert.Equal(t, caret.Point{X: 0, Y: 45}, l.CoordsAtPos(doc, at(1, 0)))
	})

	t.Run("empty and out of range positions test", func(t *testing.T) {
		doc := model.New()
		assert.Equal(t, caret.Point{X: 0, Y: 0}, l.CoordsAtPos(doc, at(0, 0)))
		assert.Equal(t, caret.Point{X: 0, Y: 0}, l.CoordsAtPos(doc, at(3, 7)))
	})
}

func TestTracker(t *testing.T) {
	doc := model.New(paragraph("hello", model.AlignLeft), paragraph("world", model.AlignLeft))
	s := editor.New(doc)
	tracker := caret.NewTracker(s, testLayout(), caret.WithOrigin(caret.Point{X: 100, Y: 50}))
	defer tracker.Close()

	var updates []caret.Point
	tracker.Subscribe(func(p caret.Point) {
		updates = append(updates, p)
	})

	t.Run("initial coordinate test", func(t *testing.T) {
		assert.Equal(t, caret.Point{X: 100, Y: 50}, tracker.CoordinatesAtSelectionAnchor())
	})

	t.Run("selection change test", func(t *testing.T) {
		s.SetSelection(model.Caret(at(1, 2)))
		assert.Equal(t, caret.Point{X: 120, Y: 75}, tracker.CoordinatesAtSelectionAnchor())
	})

	t.Run("scroll test", func(t *testing.T) {
		tracker.Scroll(0, 10)
		assert.Equal(t, caret.Point{X: 120, Y: 65}, tracker.CoordinatesAtSelectionAnchor())
	})

	t.Run("resize rewraps test", func(t *testing.T) {
		tracker.Resize(30, 200)
		assert.Equal(t, caret.Point{X: 120, Y: 85}, tracker.CoordinatesAtSelectionAnchor())
		assert.True(t, tracker.Visible())

		tracker.Scroll(0, 100)
		assert.False(t, tracker.Visible())
		tracker.Scroll(0, 10)
	})

	t.Run("document change test", func(t *testing.T) {
		s.SetSelection(model.Caret(at(0, 0)))
		s.InsertText("a")
		assert.Equal(t, caret.Point{X: 110, Y: 40}, tracker.CoordinatesAtSelectionAnchor())
	})

	t.Run("observers test", func(t *testing.T) {
		assert.Equal(t, caret.Point{X: 120, Y: 75}, updates[0])
		assert.Equal(t, tracker.CoordinatesAtSelectionAnchor(), updates[len(updates)-1])

		count := len(updates)
		tracker.Scroll(0, 10)
		assert.Len(t, updates, count)
	})

	t.Run("closed tracker stops following test", func(t *testing.T) {
		tracker.Close()
		before := tracker.CoordinatesAtSelectionAnchor()
		s.SetSelection(model.Caret(at(1, 0)))
		assert.Equal(t, before, tracker.CoordinatesAtSelectionAnchor())
	})
}
