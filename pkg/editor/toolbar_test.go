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
	"github.com/stretchr/testify/require"

	"github.com/verse-press/verse/pkg/document/model"
	"github.com/verse-press/verse/pkg/editor"
)

func buttons(tb *editor.Toolbar) map[string]editor.ButtonState {
	states := make(map[string]editor.ButtonState)
	for _, state := range tb.State() {
		states[state.Name] = state
	}
	return states
}

func TestToolbar(t *testing.T) {
	t.Run("display order test", func(t *testing.T) {
		tb := editor.NewToolbar(editor.New(nil), func() {})
		var names []string
		for _, c := range tb.Commands() {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{
			editor.CmdBold, editor.CmdItalic, editor.CmdUnderline, editor.CmdHeading,
			editor.CmdAlignLeft, editor.CmdAlignCenter, editor.CmdAlignRight, editor.CmdAlignJustify,
			editor.CmdLink, editor.CmdUnlink, editor.CmdUndo, editor.CmdRedo,
		}, names)
	})

	t.Run("initial state test", func(t *testing.T) {
		tb := editor.NewToolbar(editor.New(paragraphs("ab")), func() {})
		states := buttons(tb)

		assert.True(t, states[editor.CmdBold].Enabled)
		assert.False(t, states[editor.CmdBold].Active)
		assert.True(t, states[editor.CmdAlignLeft].Active)
		assert.True(t, states[editor.CmdLink].Enabled)
		assert.False(t, states[editor.CmdUnlink].Enabled)
		assert.False(t, states[editor.CmdUndo].Enabled)
		assert.False(t, states[editor.CmdRedo].Enabled)
	})

	t.Run("state follows the session test", func(t *testing.T) {
		s := editor.New(paragraphs("visit example"), editor.WithSelection(span(0, 6, 13)))
		tb := editor.NewToolbar(s, func() {})

		assert.True(t, tb.Invoke(editor.CmdBold))
		assert.True(t, tb.Invoke(editor.CmdAlignCenter))
		assert.True(t, tb.Invoke(editor.CmdHeading))

		states := buttons(tb)
		assert.True(t, states[editor.CmdBold].Active)
		assert.True(t, states[editor.CmdAlignCenter].Active)
		assert.False(t, states[editor.CmdAlignLeft].Active)
		assert.True(t, states[editor.CmdHeading].Active)
		assert.True(t, states[editor.CmdUndo].Enabled)

		assert.True(t, tb.Invoke(editor.CmdUndo))
		assert.True(t, buttons(tb)[editor.CmdRedo].Enabled)
	})

	t.Run("unlink is enabled inside a link test", func(t *testing.T) {
		doc := model.New(model.NewParagraph(
			model.Run{Text: "old", Marks: model.NewMarks(model.NewLink("http://old.com"))},
			model.Run{Text: " site"},
		))
		s := editor.New(doc, editor.WithSelection(caret(0, 1)))
		tb := editor.NewToolbar(s, func() {})
		assert.True(t, buttons(tb)[editor.CmdUnlink].Enabled)
		assert.True(t, buttons(tb)[editor.CmdLink].Active)

		assert.True(t, tb.Invoke(editor.CmdUnlink))
		assert.Equal(t, `p["old site"]`, s.Document().StructureAsString())
		assert.False(t, buttons(tb)[editor.CmdUnlink].Enabled)
	})

	t.Run("inapplicable command is ignored test", func(t *testing.T) {
		s := editor.New(paragraphs("ab"))
		tb := editor.NewToolbar(s, nil)
		before := s.Document().Clone()

		assert.False(t, tb.Invoke(editor.CmdUndo))
		assert.False(t, tb.Invoke(editor.CmdUnlink))
		assert.False(t, tb.Invoke(editor.CmdLink))
		assert.False(t, tb.Invoke("strike"))
		assert.True(t, before.Equal(s.Document()))
	})

	t.Run("link button opens the editor test", func(t *testing.T) {
		opened := 0
		tb := editor.NewToolbar(editor.New(paragraphs("ab")), func() { opened++ })
		assert.True(t, tb.Invoke(editor.CmdLink))
		assert.Equal(t, 1, opened)
	})

	t.Run("read-only session disables every button test", func(t *testing.T) {
		s := editor.New(paragraphs("ab"), editor.WithEditable(false))
		tb := editor.NewToolbar(s, func() {})
		for _, state := range tb.State() {
			assert.False(t, state.Enabled, state.Name)
		}
	})

	t.Run("set link command test", func(t *testing.T) {
		s := editor.New(paragraphs("example"), editor.WithSelection(span(0, 0, 7)))
		cmd := editor.SetLinkCommand("http://x.com", "")
		require.True(t, cmd.CanApply(s))
		assert.True(t, cmd.Invoke(s))
		assert.True(t, cmd.IsActive(s))
		assert.Equal(t, `p["example"[link(http://x.com)]]`, s.Document().StructureAsString())

		assert.False(t, editor.SetLinkCommand("", "").CanApply(s))
	})
}
