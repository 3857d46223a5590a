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

// Package database provides the database interface for storing poems.
package database

import (
	"context"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/pkg/errors"
)

var (
	// ErrPoemNotFound is returned when the poem could not be found.
	ErrPoemNotFound = errors.NotFound("poem not found").WithCode("ErrPoemNotFound")

	// ErrPoemAlreadyExists is returned when another poem already uses the slug.
	ErrPoemAlreadyExists = errors.AlreadyExists("poem already exists").WithCode("ErrPoemAlreadyExists")
)

// Database represents database which reads or saves poems.
type Database interface {
	// Close all resources of this database.
	Close() error

	// CreatePoemInfo creates a new poem with the given slug and fields.
	CreatePoemInfo(ctx context.Context, slug string, fields *types.PoemFields) (*PoemInfo, error)

	// ImportPoemInfo stores a poem exported elsewhere. The supplied
	// timestamps are kept and a new ID is assigned.
	ImportPoemInfo(ctx context.Context, info *PoemInfo) (*PoemInfo, error)

	// UpdatePoemInfo replaces the fields and the slug of the given poem.
	UpdatePoemInfo(
		ctx context.Context,
		id types.ID,
		slug string,
		fields *types.PoemFields,
	) (*PoemInfo, error)

	// DeletePoemInfo deletes the given poem.
	DeletePoemInfo(ctx context.Context, id types.ID) error

	// FindPoemInfoByID returns the poem of the given ID.
	FindPoemInfoByID(ctx context.Context, id types.ID) (*PoemInfo, error)

	// FindPoemInfoBySlug returns the poem of the given slug.
	FindPoemInfoBySlug(ctx context.Context, slug string) (*PoemInfo, error)

	// FindPoemInfoBySlugExcept returns the poem of the given slug other than
	// the poem of the given ID.
	FindPoemInfoBySlugExcept(ctx context.Context, slug string, id types.ID) (*PoemInfo, error)

	// ListPoemInfos returns the poems selected by the filter, newest first.
	ListPoemInfos(ctx context.Context, filter types.PoemFilter) ([]*PoemInfo, error)

	// FindNextPoemInfo returns the poem selected by the filter with the
	// smallest ID greater than the given ID.
	FindNextPoemInfo(ctx context.Context, id types.ID, filter types.PoemFilter) (*PoemInfo, error)

	// FindPrevPoemInfo returns the poem selected by the filter with the
	// largest ID smaller than the given ID.
	FindPrevPoemInfo(ctx context.Context, id types.ID, filter types.PoemFilter) (*PoemInfo, error)
}
