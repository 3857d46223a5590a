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

package types

import (
	"github.com/verse-press/verse/internal/validation"
)

// PoemFields is the set of fields an administrator submits to create or
// update a poem.
type PoemFields struct {
	// Title is the title of the poem. The slug is generated from it.
	Title string `json:"title" validate:"nonblank,max=200"`

	// Content is the plain text of the poem.
	Content string `json:"content" validate:"nonblank"`

	// HasTitle is whether the title is shown above the poem.
	HasTitle bool `json:"hasTitle"`

	// IsDraft is whether the poem is hidden from readers.
	IsDraft bool `json:"isDraft"`

	// ImageLink is an optional image shown with the poem.
	ImageLink string `json:"imageLink" validate:"omitempty,url"`
}

// NewPoemFields returns fields with the defaults of a new poem: the title is
// shown and the poem is published.
func NewPoemFields(title, content string) *PoemFields {
	return &PoemFields{
		Title:    title,
		Content:  content,
		HasTitle: true,
	}
}

// Validate validates the PoemFields.
func (f *PoemFields) Validate() error {
	return validation.ValidateStruct(f)
}
