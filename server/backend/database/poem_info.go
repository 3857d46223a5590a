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

package database

import (
	"time"

	"github.com/verse-press/verse/api/types"
)

// PoemInfo is a structure representing information of a poem.
type PoemInfo struct {
	// ID is the unique ID of the poem.
	ID types.ID `bson:"_id"`

	// Title is the title of the poem.
	Title string `bson:"title"`

	// Slug is the unique path segment of the poem generated from the title.
	Slug string `bson:"slug"`

	// Content is the plain text of the poem.
	Content string `bson:"content"`

	// HasTitle is whether the title is shown above the poem.
	HasTitle bool `bson:"has_title"`

	// IsDraft is whether the poem is hidden from readers.
	IsDraft bool `bson:"is_draft"`

	// ImageLink is an optional image shown with the poem.
	ImageLink string `bson:"image_link"`

	// CreatedAt is the time when the poem was created.
	CreatedAt time.Time `bson:"created_at"`

	// UpdatedAt is the time when the poem was last updated.
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewPoemInfo creates a new PoemInfo of the given slug and fields.
func NewPoemInfo(slug string, fields *types.PoemFields) *PoemInfo {
	now := time.Now()
	info := &PoemInfo{
		CreatedAt: now,
		UpdatedAt: now,
	}
	info.UpdateFields(slug, fields)
	return info
}

// UpdateFields replaces the editable fields and the slug of the poem.
func (i *PoemInfo) UpdateFields(slug string, fields *types.PoemFields) {
	i.Slug = slug
	i.Title = fields.Title
	i.Content = fields.Content
	i.HasTitle = fields.HasTitle
	i.IsDraft = fields.IsDraft
	i.ImageLink = fields.ImageLink
}

// DeepCopy returns a deep copy of the PoemInfo.
func (i *PoemInfo) DeepCopy() *PoemInfo {
	if i == nil {
		return nil
	}

	clone := *i
	return &clone
}

// ToPoem converts the PoemInfo to the public Poem.
func (i *PoemInfo) ToPoem() *types.Poem {
	return &types.Poem{
		ID:        i.ID,
		Title:     i.Title,
		Slug:      i.Slug,
		Content:   i.Content,
		HasTitle:  i.HasTitle,
		IsDraft:   i.IsDraft,
		ImageLink: i.ImageLink,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
