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

// Package testcases contains testcases for database. It is used by database
// implementations to test their own implementations with the same testcases.
package testcases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/server/backend/database"
)

const (
	dummyPoemID = types.ID("000000000000000000000000")
)

// RunCreatePoemInfoTest runs the CreatePoemInfo test for the given db.
func RunCreatePoemInfoTest(t *testing.T, db database.Database) {
	t.Run("create poem info test", func(t *testing.T) {
		ctx := context.Background()

		fields := types.NewPoemFields("Fog", "The fog comes\non little cat feet.")
		info, err := db.CreatePoemInfo(ctx, "fog", fields)
		require.NoError(t, err)
		assert.NoError(t, info.ID.Validate())
		assert.Equal(t, "fog", info.Slug)
		assert.Equal(t, fields.Content, info.Content)
		assert.False(t, info.CreatedAt.IsZero())

		found, err := db.FindPoemInfoByID(ctx, info.ID)
		require.NoError(t, err)
		assert.Equal(t, info.Title, found.Title)

		found, err = db.FindPoemInfoBySlug(ctx, "fog")
		require.NoError(t, err)
		assert.Equal(t, info.ID, found.ID)
	})

	t.Run("duplicate slug test", func(t *testing.T) {
		ctx := context.Background()

		_, err := db.CreatePoemInfo(ctx, "grass", types.NewPoemFields("Grass", "Pile the bodies"))
		require.NoError(t, err)

		_, err = db.CreatePoemInfo(ctx, "grass", types.NewPoemFields("Grass", "again"))
		assert.ErrorIs(t, err, database.ErrPoemAlreadyExists)
	})

	t.Run("find missing poem test", func(t *testing.T) {
		ctx := context.Background()

		_, err := db.FindPoemInfoByID(ctx, dummyPoemID)
		assert.ErrorIs(t, err, database.ErrPoemNotFound)

		_, err = db.FindPoemInfoBySlug(ctx, "missing")
		assert.ErrorIs(t, err, database.ErrPoemNotFound)
	})
}

// RunImportPoemInfoTest runs the ImportPoemInfo test for the given db.
func RunImportPoemInfoTest(t *testing.T, db database.Database) {
	t.Run("import keeps timestamps test", func(t *testing.T) {
		ctx := context.Background()

		createdAt := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
		updatedAt := time.Date(2022, 3, 4, 5, 6, 7, 0, time.UTC)
		info, err := db.ImportPoemInfo(ctx, &database.PoemInfo{
			ID:        dummyPoemID,
			Title:     "Chicago",
			Slug:      "chicago",
			Content:   "Hog Butcher for the World",
			HasTitle:  true,
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		})
		require.NoError(t, err)
		assert.NotEqual(t, dummyPoemID, info.ID)

		found, err := db.FindPoemInfoBySlug(ctx, "chicago")
		require.NoError(t, err)
		assert.True(t, createdAt.Equal(found.CreatedAt))
		assert.True(t, updatedAt.Equal(found.UpdatedAt))

		_, err = db.ImportPoemInfo(ctx, &database.PoemInfo{Slug: "chicago", CreatedAt: createdAt})
		assert.ErrorIs(t, err, database.ErrPoemAlreadyExists)
	})
}

// RunUpdatePoemInfoTest runs the UpdatePoemInfo test for the given db.
func RunUpdatePoemInfoTest(t *testing.T, db database.Database) {
	t.Run("update poem info test", func(t *testing.T) {
		ctx := context.Background()

		info, err := db.CreatePoemInfo(ctx, "fog", types.NewPoemFields("Fog", "The fog comes"))
		require.NoError(t, err)

		fields := types.NewPoemFields("Fog again", "It sits looking")
		fields.IsDraft = true
		fields.ImageLink = "https://example.com/fog.png"
		updated, err := db.UpdatePoemInfo(ctx, info.ID, "fog-again", fields)
		require.NoError(t, err)
		assert.Equal(t, info.ID, updated.ID)
		assert.Equal(t, "fog-again", updated.Slug)
		assert.Equal(t, "It sits looking", updated.Content)
		assert.True(t, updated.IsDraft)
		assert.False(t, updated.UpdatedAt.Before(info.UpdatedAt))

		_, err = db.FindPoemInfoBySlug(ctx, "fog")
		assert.ErrorIs(t, err, database.ErrPoemNotFound)

		// keeping its own slug is not a conflict.
		_, err = db.UpdatePoemInfo(ctx, info.ID, "fog-again", fields)
		assert.NoError(t, err)
	})

	t.Run("update conflicts with another slug test", func(t *testing.T) {
		ctx := context.Background()

		_, err := db.CreatePoemInfo(ctx, "grass", types.NewPoemFields("Grass", "Pile the bodies"))
		require.NoError(t, err)
		other, err := db.CreatePoemInfo(ctx, "chicago", types.NewPoemFields("Chicago", "Hog Butcher"))
		require.NoError(t, err)

		_, err = db.UpdatePoemInfo(ctx, other.ID, "grass", types.NewPoemFields("Grass", "x"))
		assert.ErrorIs(t, err, database.ErrPoemAlreadyExists)

		_, err = db.UpdatePoemInfo(ctx, dummyPoemID, "missing", types.NewPoemFields("Missing", "x"))
		assert.ErrorIs(t, err, database.ErrPoemNotFound)
	})
}

// RunDeletePoemInfoTest runs the DeletePoemInfo test for the given db.
func RunDeletePoemInfoTest(t *testing.T, db database.Database) {
	t.Run("delete poem info test", func(t *testing.T) {
		ctx := context.Background()

		info, err := db.CreatePoemInfo(ctx, "fog", types.NewPoemFields("Fog", "The fog comes"))
		require.NoError(t, err)

		assert.NoError(t, db.DeletePoemInfo(ctx, info.ID))
		_, err = db.FindPoemInfoByID(ctx, info.ID)
		assert.ErrorIs(t, err, database.ErrPoemNotFound)

		assert.ErrorIs(t, db.DeletePoemInfo(ctx, info.ID), database.ErrPoemNotFound)

		// the slug is free again.
		_, err = db.CreatePoemInfo(ctx, "fog", types.NewPoemFields("Fog", "The fog comes"))
		assert.NoError(t, err)
	})
}

// RunFindPoemInfoBySlugExceptTest runs the FindPoemInfoBySlugExcept test for
// the given db.
func RunFindPoemInfoBySlugExceptTest(t *testing.T, db database.Database) {
	t.Run("find poem info by slug except test", func(t *testing.T) {
		ctx := context.Background()

		info, err := db.CreatePoemInfo(ctx, "fog", types.NewPoemFields("Fog", "The fog comes"))
		require.NoError(t, err)

		_, err = db.FindPoemInfoBySlugExcept(ctx, "fog", info.ID)
		assert.ErrorIs(t, err, database.ErrPoemNotFound)

		found, err := db.FindPoemInfoBySlugExcept(ctx, "fog", dummyPoemID)
		require.NoError(t, err)
		assert.Equal(t, info.ID, found.ID)
	})
}

// RunListPoemInfosTest runs the ListPoemInfos test for the given db.
func RunListPoemInfosTest(t *testing.T, db database.Database) {
	t.Run("list poem infos newest first test", func(t *testing.T) {
		ctx := context.Background()

		base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		poems := []struct {
			slug    string
			isDraft bool
			days    int
		}{
			{"first", false, 0},
			{"second", true, 1},
			{"third", false, 2},
			{"fourth", true, 3},
		}
		for _, p := range poems {
			_, err := db.ImportPoemInfo(ctx, &database.PoemInfo{
				Title:     p.slug,
				Slug:      p.slug,
				Content:   p.slug,
				IsDraft:   p.isDraft,
				CreatedAt: base.AddDate(0, 0, p.days),
				UpdatedAt: base.AddDate(0, 0, p.days),
			})
			require.NoError(t, err)
		}

		slugs := func(filter types.PoemFilter) []string {
			infos, err := db.ListPoemInfos(ctx, filter)
			require.NoError(t, err)
			var result []string
			for _, info := range infos {
				result = append(result, info.Slug)
			}
			return result
		}

		assert.Equal(t, []string{"third", "first"}, slugs(types.PublishedPoems))
		assert.Equal(t, []string{"fourth", "second"}, slugs(types.DraftPoems))
		assert.Equal(t, []string{"fourth", "third", "second", "first"}, slugs(types.AllPoems))
	})
}

// RunFindAdjacentPoemInfoTest runs the FindNextPoemInfo and FindPrevPoemInfo
// test for the given db.
func RunFindAdjacentPoemInfoTest(t *testing.T, db database.Database) {
	t.Run("find next and prev poem info test", func(t *testing.T) {
		ctx := context.Background()

		var ids []types.ID
		for i, slug := range []string{"one", "two", "three"} {
			fields := types.NewPoemFields(slug, slug)
			fields.IsDraft = i == 1
			info, err := db.CreatePoemInfo(ctx, slug, fields)
			require.NoError(t, err)
			ids = append(ids, info.ID)
		}

		next, err := db.FindNextPoemInfo(ctx, ids[0], types.AllPoems)
		require.NoError(t, err)
		assert.Equal(t, "two", next.Slug)

		next, err = db.FindNextPoemInfo(ctx, ids[0], types.PublishedPoems)
		require.NoError(t, err)
		assert.Equal(t, "three", next.Slug)

		prev, err := db.FindPrevPoemInfo(ctx, ids[2], types.PublishedPoems)
		require.NoError(t, err)
		assert.Equal(t, "one", prev.Slug)

		_, err = db.FindNextPoemInfo(ctx, ids[2], types.AllPoems)
		assert.ErrorIs(t, err, database.ErrPoemNotFound)

		_, err = db.FindPrevPoemInfo(ctx, ids[0], types.AllPoems)
		assert.ErrorIs(t, err, database.ErrPoemNotFound)
	})
}
