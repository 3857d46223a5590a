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
	"strings"
	"time"
)

// Poem is a poem as shown to readers. Content is plain text with one line
// per verse line.
type Poem struct {
	ID        ID        `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Slug      string    `json:"slug" yaml:"slug"`
	Content   string    `json:"content" yaml:"content"`
	HasTitle  bool      `json:"hasTitle" yaml:"hasTitle"`
	IsDraft   bool      `json:"isDraft" yaml:"isDraft"`
	ImageLink string    `json:"imageLink" yaml:"imageLink"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Lines returns the lines of the poem content.
func (p *Poem) Lines() []string {
	if p.Content == "" {
		return nil
	}
	return strings.Split(p.Content, "\n")
}

// PoemFilter selects poems by their draft state.
type PoemFilter int

const (
	// PublishedPoems selects poems that are not drafts.
	PublishedPoems PoemFilter = iota

	// DraftPoems selects drafts only.
	DraftPoems

	// AllPoems selects every poem.
	AllPoems
)

// String returns the name of the filter.
func (f PoemFilter) String() string {
	switch f {
	case DraftPoems:
		return "drafts"
	case AllPoems:
		return "all"
	default:
		return "published"
	}
}

// Match returns whether a poem with the given draft state is selected.
func (f PoemFilter) Match(isDraft bool) bool {
	switch f {
	case PublishedPoems:
		return !isDraft
	case DraftPoems:
		return isDraft
	default:
		return true
	}
}
