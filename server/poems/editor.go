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

package poems

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/pkg/document/convert"
	"github.com/verse-press/verse/pkg/document/model"
	"github.com/verse-press/verse/pkg/editor"
	"github.com/verse-press/verse/pkg/editor/caret"
	"github.com/verse-press/verse/pkg/editor/link"
	"github.com/verse-press/verse/pkg/errors"
	"github.com/verse-press/verse/server/authz"
	"github.com/verse-press/verse/server/backend"
	"github.com/verse-press/verse/server/backend/database"
	"github.com/verse-press/verse/server/logging"
	"github.com/verse-press/verse/server/users"
)

var (
	// ErrEmptyContent is returned when an editor is saved without content.
	ErrEmptyContent = errors.InvalidArgument("Please add some content to your poem.").WithCode("ErrEmptyContent")

	// ErrEmptyTitle is returned when an editor is saved without a title.
	ErrEmptyTitle = errors.InvalidArgument("Please add a title to your poem.").WithCode("ErrEmptyTitle")

	// ErrPoemToEditNotFound is returned when the edited poem no longer exists.
	ErrPoemToEditNotFound = errors.NotFound("Could not find the poem to edit.").WithCode("ErrPoemToEditNotFound")

	// ErrSaveFailed is returned when the poem could not be stored. Saving
	// again may succeed.
	ErrSaveFailed = errors.Unavailable("Error updating poem. Please try again.").WithCode("ErrSaveFailed")
)

// Editor is the state of the poem editing page: the form fields next to
// the editing surface with its toolbar, caret tracker and link popover.
type Editor struct {
	// ID is the ID of the edited poem, empty for a new poem.
	ID types.ID

	Title     string
	HasTitle  bool
	IsDraft   bool
	ImageLink string

	Session *editor.Session
	Toolbar *editor.Toolbar
	Tracker *caret.Tracker
	Popover *link.Popover
}

func newEditor(doc *model.Document) *Editor {
	session := editor.New(doc)
	tracker := caret.NewTracker(session, caret.NewGridLayout())
	popover := link.NewPopover(session, tracker)

	return &Editor{
		HasTitle: true,
		Session:  session,
		Toolbar:  editor.NewToolbar(session, popover.OpenFunc()),
		Tracker:  tracker,
		Popover:  popover,
	}
}

// Fields returns the form fields of the editor with the content of its
// document as plain text.
func (e *Editor) Fields() *types.PoemFields {
	return &types.PoemFields{
		Title:     e.Title,
		Content:   convert.SaveToPlainText(e.Session.Document()),
		HasTitle:  e.HasTitle,
		IsDraft:   e.IsDraft,
		ImageLink: e.ImageLink,
	}
}

// Close releases the subscriptions of the editor.
func (e *Editor) Close() {
	e.Popover.Dismiss()
	e.Tracker.Close()
}

// NewEditor opens an editor for a new poem.
func NewEditor(ctx context.Context, be *backend.Backend) (*Editor, error) {
	if err := authz.CheckAdmin(ctx, be, users.From(ctx)); err != nil {
		return nil, err
	}

	return newEditor(model.New()), nil
}

// OpenEditor opens an editor seeded with the poem of the given slug.
func OpenEditor(ctx context.Context, be *backend.Backend, slug string) (*Editor, error) {
	if err := authz.CheckAdmin(ctx, be, users.From(ctx)); err != nil {
		return nil, err
	}

	info, err := be.DB.FindPoemInfoBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	e := newEditor(convert.LoadFromPlainText(info.Content))
	e.ID = info.ID
	e.Title = info.Title
	e.HasTitle = info.HasTitle
	e.IsDraft = info.IsDraft
	e.ImageLink = info.ImageLink
	return e, nil
}

// SaveEditor stores the editor as a new poem, or as the poem it was opened
// with. Persistence failures are reported as ErrSaveFailed.
func SaveEditor(ctx context.Context, be *backend.Backend, e *Editor) (*types.Poem, error) {
	start := time.Now()
	defer func() { be.Metrics.ObserveEditorSaveSeconds(time.Since(start).Seconds()) }()

	if err := authz.CheckAdmin(ctx, be, users.From(ctx)); err != nil {
		return nil, err
	}

	fields := e.Fields()
	if strings.TrimSpace(fields.Content) == "" {
		return nil, ErrEmptyContent
	}
	if strings.TrimSpace(fields.Title) == "" {
		return nil, ErrEmptyTitle
	}

	var poem *types.Poem
	var err error
	if e.ID == "" {
		poem, err = Create(ctx, be, fields)
	} else {
		poem, err = Update(ctx, be, e.ID, fields)
	}

	switch {
	case err == nil:
		e.ID = poem.ID
		return poem, nil
	case errors.Is(err, database.ErrPoemNotFound):
		return nil, fmt.Errorf("%w: %w", ErrPoemToEditNotFound, err)
	case errors.KindOf(err).IsClientError():
		return nil, err
	default:
		logging.From(ctx).Errorf("save poem %s: %v", e.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
}
