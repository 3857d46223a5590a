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

package poems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/pkg/document/model"
	"github.com/verse-press/verse/pkg/editor"
	"github.com/verse-press/verse/server/authz"
	"github.com/verse-press/verse/server/backend/database"
	"github.com/verse-press/verse/server/poems"
)

func TestEditor(t *testing.T) {
	t.Run("new poem round trip test", func(t *testing.T) {
		be := newBackend(t)
		ctx := asAdmin()

		e, err := poems.NewEditor(ctx, be)
		require.NoError(t, err)
		defer e.Close()
		assert.Equal(t, "p[]", e.Session.Document().StructureAsString())
		assert.True(t, e.HasTitle)

		e.Title = "Fog"
		require.True(t, e.Session.InsertText("The fog comes\non little cat feet."))
		e.Session.SetSelection(model.Range(model.Pos{Block: 1, Offset: 3}, model.Pos{Block: 1, Offset: 9}))
		require.True(t, e.Toolbar.Invoke(editor.CmdBold))

		poem, err := poems.SaveEditor(ctx, be, e)
		require.NoError(t, err)
		assert.Equal(t, "fog", poem.Slug)
		assert.Equal(t, "The fog comes\non little cat feet.", poem.Content)
		assert.Equal(t, poem.ID, e.ID)

		// saving again updates the same poem.
		e.IsDraft = true
		again, err := poems.SaveEditor(ctx, be, e)
		require.NoError(t, err)
		assert.Equal(t, poem.ID, again.ID)
		assert.True(t, again.IsDraft)
	})

	t.Run("open existing poem test", func(t *testing.T) {
		be := newBackend(t)
		ctx := asAdmin()

		fields := types.NewPoemFields("Fog", "The fog comes\n\non little cat feet.")
		fields.ImageLink = "https://example.com/fog.png"
		created, err := poems.Create(ctx, be, fields)
		require.NoError(t, err)

		e, err := poems.OpenEditor(ctx, be, "fog")
		require.NoError(t, err)
		defer e.Close()
		assert.Equal(t, created.ID, e.ID)
		assert.Equal(t, "https://example.com/fog.png", e.ImageLink)
		assert.Equal(t, "p[\"The fog comes\"]\np[\"on little cat feet.\"]", e.Session.Document().StructureAsString())

		e.Title = "Fog Revised"
		poem, err := poems.SaveEditor(ctx, be, e)
		require.NoError(t, err)
		assert.Equal(t, "fog-revised", poem.Slug)
		assert.Equal(t, "The fog comes\non little cat feet.", poem.Content)
	})

	t.Run("link popover edits the document test", func(t *testing.T) {
		be := newBackend(t)

		e, err := poems.NewEditor(asAdmin(), be)
		require.NoError(t, err)
		defer e.Close()

		require.True(t, e.Session.InsertText("visit example"))
		e.Session.SetSelection(model.Range(model.Pos{Block: 0, Offset: 6}, model.Pos{Block: 0, Offset: 13}))
		require.True(t, e.Toolbar.Invoke(editor.CmdLink))
		require.True(t, e.Popover.Fields().Open)

		e.Popover.SetURL("http://x.com")
		require.True(t, e.Popover.Submit())
		assert.Equal(t, `p["visit " "example"[link(http://x.com)]]`, e.Session.Document().StructureAsString())
		assert.Equal(t, "visit example", e.Fields().Content)
	})

	t.Run("save rejects empty submissions test", func(t *testing.T) {
		be := newBackend(t)
		ctx := asAdmin()

		e, err := poems.NewEditor(ctx, be)
		require.NoError(t, err)
		defer e.Close()

		e.Title = "Fog"
		_, err = poems.SaveEditor(ctx, be, e)
		assert.ErrorIs(t, err, poems.ErrEmptyContent)
		assert.Equal(t, "Please add some content to your poem.", err.Error())

		e.Title = "  "
		require.True(t, e.Session.InsertText("The fog comes"))
		_, err = poems.SaveEditor(ctx, be, e)
		assert.ErrorIs(t, err, poems.ErrEmptyTitle)
	})

	t.Run("deleted poem cannot be saved test", func(t *testing.T) {
		be := newBackend(t)
		ctx := asAdmin()

		created, err := poems.Create(ctx, be, types.NewPoemFields("Fog", "The fog comes"))
		require.NoError(t, err)
		e, err := poems.OpenEditor(ctx, be, "fog")
		require.NoError(t, err)
		defer e.Close()

		require.NoError(t, poems.Delete(ctx, be, created.ID))
		_, err = poems.SaveEditor(ctx, be, e)
		assert.ErrorIs(t, err, poems.ErrPoemToEditNotFound)
		assert.ErrorIs(t, err, database.ErrPoemNotFound)
	})

	t.Run("persistence failure is retryable test", func(t *testing.T) {
		be := newBackend(t)
		ctx := asAdmin()

		e, err := poems.NewEditor(ctx, be)
		require.NoError(t, err)
		defer e.Close()
		e.Title = "Fog"
		require.True(t, e.Session.InsertText("The fog comes"))

		be.DB = failingDB{Database: be.DB}
		_, err = poems.SaveEditor(ctx, be, e)
		assert.ErrorIs(t, err, poems.ErrSaveFailed)
		assert.Equal(t, "", e.ID.String())
	})

	t.Run("admin only test", func(t *testing.T) {
		be := newBackend(t)

		_, err := poems.NewEditor(asReader(), be)
		assert.ErrorIs(t, err, authz.ErrNotAdmin)
		_, err = poems.OpenEditor(asReader(), be, "fog")
		assert.ErrorIs(t, err, authz.ErrNotAdmin)
	})
}
