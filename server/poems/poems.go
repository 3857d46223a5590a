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

// Package poems provides the poem related business logic: public reads,
// administration and the editor page flow.
package poems

import (
	"context"
	"fmt"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/pkg/errors"
	"github.com/verse-press/verse/server/authz"
	"github.com/verse-press/verse/server/backend"
	"github.com/verse-press/verse/server/backend/database"
	"github.com/verse-press/verse/server/logging"
	"github.com/verse-press/verse/server/users"
)

var (
	// ErrInvalidPoem is returned when the submitted fields are invalid.
	ErrInvalidPoem = errors.InvalidArgument("invalid poem").WithCode("ErrInvalidPoem")
)

// ListPublished returns the published poems, newest first.
func ListPublished(ctx context.Context, be *backend.Backend) ([]*types.Poem, error) {
	return listPoems(ctx, be, types.PublishedPoems)
}

// ListDrafts returns the drafts, newest first. Only administrators may list
// them.
func ListDrafts(ctx context.Context, be *backend.Backend) ([]*types.Poem, error) {
	if err := authz.CheckAdmin(ctx, be, users.From(ctx)); err != nil {
		return nil, err
	}
	return listPoems(ctx, be, types.DraftPoems)
}

// ListAll returns every poem, newest first. Only administrators may list
// them.
func ListAll(ctx context.Context, be *backend.Backend) ([]*types.Poem, error) {
	if err := authz.CheckAdmin(ctx, be, users.From(ctx)); err != nil {
		return nil, err
	}
	return listPoems(ctx, be, types.AllPoems)
}

func listPoems(
	ctx context.Context,
	be *backend.Backend,
	filter types.PoemFilter,
) ([]*types.Poem, error) {
	infos, err := be.DB.ListPoemInfos(ctx, filter)
	if err != nil {
		return nil, err
	}

	poems := make([]*types.Poem, 0, len(infos))
	for _, info := range infos {
		poems = append(poems, info.ToPoem())
	}
	return poems, nil
}

// GetBySlug returns the poem of the given slug. Drafts are only returned to
// administrators.
func GetBySlug(ctx context.Context, be *backend.Backend, slug string) (*types.Poem, error) {
	info, ok := be.PoemCache.Get(slug)
	be.Metrics.AddCacheRequest(be.PoemCache.Name(), ok)
	if !ok {
		var err error
		if info, err = be.DB.FindPoemInfoBySlug(ctx, slug); err != nil {
			return nil, err
		}
		be.PoemCache.Add(slug, info)
	}

	if info.IsDraft && !authz.IsAdmin(be, users.From(ctx)) {
		return nil, fmt.Errorf("%s: %w", slug, database.ErrPoemNotFound)
	}
	return info.ToPoem(), nil
}

// GetNext returns the published poem after the given one, or nil when it is
// the last one.
func GetNext(ctx context.Context, be *backend.Backend, id types.ID) (*types.Poem, error) {
	return adjacent(be.DB.FindNextPoemInfo(ctx, id, types.PublishedPoems))
}

// GetPrev returns the published poem before the given one, or nil when it
// is the first one.
func GetPrev(ctx context.Context, be *backend.Backend, id types.ID) (*types.Poem, error) {
	return adjacent(be.DB.FindPrevPoemInfo(ctx, id, types.PublishedPoems))
}

func adjacent(info *database.PoemInfo, err error) (*types.Poem, error) {
	if errors.Is(err, database.ErrPoemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return info.ToPoem(), nil
}

// Create creates a new poem with a slug generated from its title.
func Create(
	ctx context.Context,
	be *backend.Backend,
	fields *types.PoemFields,
) (poem *types.Poem, err error) {
	defer func() { be.Metrics.AddPoemOperation("create", err) }()

	if err := authz.CheckAdmin(ctx, be, users.From(ctx)); err != nil {
		return nil, err
	}
	if err := fields.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPoem, err)
	}

	slug, err := uniqueSlug(ctx, be, Slugify(fields.Title), "")
	if err != nil {
		return nil, err
	}

	info, err := be.DB.CreatePoemInfo(ctx, slug, fields)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Infof("poem created: %s %s", info.ID, info.Slug)
	return info.ToPoem(), nil
}

// Update replaces the fields of the given poem. The slug is generated again
// from the title.
func Update(
	ctx context.Context,
	be *backend.Backend,
	id types.ID,
	fields *types.PoemFields,
) (poem *types.Poem, err error) {
	defer func() { be.Metrics.AddPoemOperation("update", err) }()

	if err := authz.CheckAdmin(ctx, be, users.From(ctx)); err != nil {
		return nil, err
	}
	if err := fields.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPoem, err)
	}

	prev, err := be.DB.FindPoemInfoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slug, err := uniqueSlug(ctx, be, Slugify(fields.Title), id)
	if err != nil {
		return nil, err
	}

	info, err := be.DB.UpdatePoemInfo(ctx, id, slug, fields)
	if err != nil {
		return nil, err
	}
	be.PoemCache.Remove(prev.Slug)
	be.PoemCache.Remove(info.Slug)

	logging.From(ctx).Infof("poem updated: %s %s", info.ID, info.Slug)
	return info.ToPoem(), nil
}

// Delete deletes the given poem.
func Delete(ctx context.Context, be *backend.Backend, id types.ID) (err error) {
	defer func() { be.Metrics.AddPoemOperation("delete", err) }()

	if err := authz.CheckAdmin(ctx, be, users.From(ctx)); err != nil {
		return err
	}

	info, err := be.DB.FindPoemInfoByID(ctx, id)
	if err != nil {
		return err
	}
	if err := be.DB.DeletePoemInfo(ctx, id); err != nil {
		return err
	}
	be.PoemCache.Remove(info.Slug)

	logging.From(ctx).Infof("poem deleted: %s %s", info.ID, info.Slug)
	return nil
}
