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

package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/server/backend/database"
)

func TestPoemInfo(t *testing.T) {
	t.Run("new poem info test", func(t *testing.T) {
		fields := types.NewPoemFields("Fog", "The fog comes")
		info := database.NewPoemInfo("fog", fields)

		assert.Equal(t, "fog", info.Slug)
		assert.Equal(t, "Fog", info.Title)
		assert.True(t, info.HasTitle)
		assert.Equal(t, info.CreatedAt, info.UpdatedAt)
	})

	t.Run("deep copy test", func(t *testing.T) {
		info := database.NewPoemInfo("fog", types.NewPoemFields("Fog", "The fog comes"))
		clone := info.DeepCopy()
		clone.Title = "Grass"
		assert.Equal(t, "Fog", info.Title)

		var nilInfo *database.PoemInfo
		assert.Nil(t, nilInfo.DeepCopy())
	})

	t.Run("to poem test", func(t *testing.T) {
		fields := types.NewPoemFields("Fog", "The fog comes")
		fields.IsDraft = true
		info := database.NewPoemInfo("fog", fields)
		info.ID = types.ID("65f1a2b3c4d5e6f708192a3b")

		poem := info.ToPoem()
		assert.Equal(t, info.ID, poem.ID)
		assert.Equal(t, "fog", poem.Slug)
		assert.True(t, poem.IsDraft)
		assert.Equal(t, info.CreatedAt, poem.CreatedAt)
	})
}
