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

package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/internal/validation"
	"github.com/verse-press/verse/pkg/errors"
)

func TestID(t *testing.T) {
	t.Run("validate test", func(t *testing.T) {
		assert.NoError(t, types.ID("65f1a2b3c4d5e6f708192a3b").Validate())

		err := types.ID("not-an-id").Validate()
		assert.ErrorIs(t, err, types.ErrInvalidID)
		assert.True(t, errors.IsKind(err, errors.KindInvalidArgument))
		assert.ErrorIs(t, types.ID("65f1a2").Validate(), types.ErrInvalidID)
	})

	t.Run("join id test", func(t *testing.T) {
		ids := []types.ID{types.ID("id1"), types.ID("id2"), types.ID("id3")}
		assert.Equal(t, "id1,id2,id3", types.JoinIDs(ids))
	})
}

func TestPoem(t *testing.T) {
	t.Run("lines test", func(t *testing.T) {
		p := &types.Poem{Content: "so much depends\nupon"}
		assert.Equal(t, []string{"so much depends", "upon"}, p.Lines())
		assert.Nil(t, (&types.Poem{}).Lines())
	})

	t.Run("filter test", func(t *testing.T) {
		assert.True(t, types.PublishedPoems.Match(false))
		assert.False(t, types.PublishedPoems.Match(true))
		assert.True(t, types.DraftPoems.Match(true))
		assert.False(t, types.DraftPoems.Match(false))
		assert.True(t, types.AllPoems.Match(true))
		assert.Equal(t, "drafts", types.DraftPoems.String())
	})
}

func TestPoemFields(t *testing.T) {
	t.Run("valid fields test", func(t *testing.T) {
		fields := types.NewPoemFields("Fog", "The fog comes\non little cat feet.")
		assert.True(t, fields.HasTitle)
		assert.False(t, fields.IsDraft)
		assert.NoError(t, fields.Validate())

		fields.ImageLink = "https://example.com/fog.png"
		assert.NoError(t, fields.Validate())
	})

	t.Run("invalid fields test", func(t *testing.T) {
		fields := types.NewPoemFields(" ", "")
		fields.ImageLink = "fog.png"

		err := fields.Validate()
		var structErr *validation.StructError
		require.ErrorAs(t, err, &structErr)
		assert.Len(t, structErr.Violations, 3)
	})
}

func TestUser(t *testing.T) {
	assert.Nil(t, types.NewUser("  "))
	assert.Equal(t, "poet@example.com", types.NewUser(" poet@example.com ").Email)
}
